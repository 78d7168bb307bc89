package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestImageListUnmarshalSingleString(t *testing.T) {
	var req RemovalRequest
	err := json.Unmarshal([]byte(`{"images":"https://example.com/a.jpg"}`), &req)
	require.NoError(t, err)
	assert.Equal(t, ImageList{"https://example.com/a.jpg"}, req.Images)
}

func TestImageListUnmarshalList(t *testing.T) {
	var req RemovalRequest
	err := json.Unmarshal([]byte(`{"images":["https://example.com/a.jpg","https://example.com/b.jpg"]}`), &req)
	require.NoError(t, err)
	assert.Equal(t, ImageList{"https://example.com/a.jpg", "https://example.com/b.jpg"}, req.Images)
}

func TestImageListUnmarshalInvalidType(t *testing.T) {
	var req RemovalRequest
	err := json.Unmarshal([]byte(`{"images":42}`), &req)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "images must be a URL string or a list")
}

func TestApplyDefaults(t *testing.T) {
	req := RemovalRequest{Images: ImageList{"https://example.com/a.jpg"}}
	req.ApplyDefaults("cpu")

	require.NotNil(t, req.Watermark)
	assert.Equal(t, 120, req.Watermark.Width)
	assert.Equal(t, 120, req.Watermark.Height)
	assert.Equal(t, 0, req.Watermark.OffsetX)
	assert.Equal(t, 0, req.Watermark.OffsetY)
	assert.Equal(t, DeviceCPU, req.Device)
	assert.Equal(t, FormatBase64, req.ResponseFormat)
}

func TestApplyDefaultsKeepsExplicitValues(t *testing.T) {
	region := &WatermarkRegion{Width: 10, Height: 20, OffsetX: 1, OffsetY: 2}
	req := RemovalRequest{
		Images:         ImageList{"https://example.com/a.jpg"},
		Watermark:      region,
		Device:         DeviceCUDA,
		ResponseFormat: FormatFile,
	}
	req.ApplyDefaults("cpu")

	assert.Same(t, region, req.Watermark)
	assert.Equal(t, DeviceCUDA, req.Device)
	assert.Equal(t, FormatFile, req.ResponseFormat)
}

func TestWatermarkRegionKey(t *testing.T) {
	region := WatermarkRegion{Width: 100, Height: 50, OffsetX: 5, OffsetY: 7}
	assert.Equal(t, "100x50+5+7", region.Key())
}
