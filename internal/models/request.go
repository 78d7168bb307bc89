package models

import (
	"encoding/json"
	"fmt"
)

const (
	FormatBase64 = "base64"
	FormatFile   = "file"

	DeviceCPU  = "cpu"
	DeviceCUDA = "cuda"
)

// ImageList accepts either a single URL string or a list of URLs,
// matching the request shapes clients already send.
type ImageList []string

func (l *ImageList) UnmarshalJSON(data []byte) error {
	var single string
	if err := json.Unmarshal(data, &single); err == nil {
		*l = ImageList{single}
		return nil
	}

	var many []string
	if err := json.Unmarshal(data, &many); err != nil {
		return fmt.Errorf("images must be a URL string or a list of URL strings")
	}

	*l = ImageList(many)
	return nil
}

type RemovalRequest struct {
	Images         ImageList        `json:"images" binding:"required,min=1,dive,url"`
	Watermark      *WatermarkRegion `json:"watermark" binding:"omitempty"`
	Device         string           `json:"device" binding:"omitempty,oneof=cpu cuda"`
	ResponseFormat string           `json:"response_format" binding:"omitempty,oneof=base64 file"`
}

// ApplyDefaults fills unset optional fields; defaultDevice comes from config.
func (r *RemovalRequest) ApplyDefaults(defaultDevice string) {
	if r.Watermark == nil {
		r.Watermark = DefaultWatermarkRegion()
	}
	if r.Device == "" {
		r.Device = defaultDevice
	}
	if r.ResponseFormat == "" {
		r.ResponseFormat = FormatBase64
	}
}
