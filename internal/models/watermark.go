package models

import "fmt"

// WatermarkRegion is a rectangle anchored to the bottom-right corner of
// an image. Offsets are measured from the right and bottom edges; the
// rectangle is clamped to image bounds at use time.
type WatermarkRegion struct {
	Width   int `json:"width" binding:"min=0"`
	Height  int `json:"height" binding:"min=0"`
	OffsetX int `json:"offset_x" binding:"min=0"`
	OffsetY int `json:"offset_y" binding:"min=0"`
}

func DefaultWatermarkRegion() *WatermarkRegion {
	return &WatermarkRegion{Width: 120, Height: 120}
}

// Key returns a stable representation used for cache keys.
func (r WatermarkRegion) Key() string {
	return fmt.Sprintf("%dx%d+%d+%d", r.Width, r.Height, r.OffsetX, r.OffsetY)
}
