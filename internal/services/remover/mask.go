package remover

import (
	"image"
	"image/color"

	"github.com/phambaophuc/watermark-removal/internal/models"
)

var colorWhite = color.Gray{Y: 255}

// ResolveRegion computes the watermark rectangle inside an imgW x imgH
// image. The region is anchored to the bottom-right corner: offsets are
// measured from the right and bottom edges, and the result is clamped
// to image bounds. A zero-sized or fully out-of-bounds region yields an
// empty rectangle.
func ResolveRegion(imgW, imgH int, region models.WatermarkRegion) image.Rectangle {
	rectW := min(region.Width, imgW)
	rectH := min(region.Height, imgH)

	right := imgW - region.OffsetX
	bottom := imgH - region.OffsetY
	left := max(0, right-rectW)
	top := max(0, bottom-rectH)

	rect := image.Rect(left, top, right, bottom)
	return rect.Intersect(image.Rect(0, 0, imgW, imgH))
}

// BuildMask renders the resolved region as a binary mask: 255 inside
// the watermark rectangle, 0 elsewhere.
func BuildMask(imgW, imgH int, region models.WatermarkRegion) *image.Gray {
	mask := image.NewGray(image.Rect(0, 0, imgW, imgH))

	rect := ResolveRegion(imgW, imgH, region)
	for y := rect.Min.Y; y < rect.Max.Y; y++ {
		for x := rect.Min.X; x < rect.Max.X; x++ {
			mask.SetGray(x, y, colorWhite)
		}
	}

	return mask
}
