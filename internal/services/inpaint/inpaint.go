package inpaint

import (
	"context"
	"errors"
	"image"
)

// ErrInference covers model runtime failures (model server unreachable,
// device/memory errors, malformed model output).
var ErrInference = errors.New("inference failed")

// Inpainter reconstructs the masked region of an image. The mask is a
// grayscale bitmap where non-zero pixels mark the area to repaint.
// device selects the model runtime (cpu or cuda); empty means the
// configured default.
type Inpainter interface {
	Inpaint(ctx context.Context, img image.Image, mask *image.Gray, device string) (image.Image, error)
}
