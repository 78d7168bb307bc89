package inpaint

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"github.com/disintegration/imaging"
)

// LamaClient talks to a LaMa inpainting model server. The server loads
// the pretrained weights once at startup; this client only ships the
// image and mask over and decodes the cleaned bitmap it gets back.
type LamaClient struct {
	baseURL string
	device  string
	client  *http.Client
}

func NewLamaClient(baseURL, device string, timeout time.Duration) *LamaClient {
	return &LamaClient{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		device:  device,
		client:  &http.Client{Timeout: timeout},
	}
}

func (c *LamaClient) Inpaint(ctx context.Context, img image.Image, mask *image.Gray, device string) (image.Image, error) {
	if device == "" {
		device = c.device
	}

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	if err := c.writeImagePart(writer, "image", "image.png", img); err != nil {
		return nil, err
	}
	if err := c.writeImagePart(writer, "mask", "mask.png", mask); err != nil {
		return nil, err
	}
	if err := writer.WriteField("device", device); err != nil {
		return nil, fmt.Errorf("%w: write device field: %v", ErrInference, err)
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("%w: close multipart writer: %v", ErrInference, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/inpaint", body)
	if err != nil {
		return nil, fmt.Errorf("%w: create request: %v", ErrInference, err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInference, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return nil, fmt.Errorf("%w: model server returned status %d: %s", ErrInference, resp.StatusCode, strings.TrimSpace(string(detail)))
	}

	cleaned, err := imaging.Decode(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: decode model output: %v", ErrInference, err)
	}

	return cleaned, nil
}

// Ping checks that the model server is up and its weights are loaded.
func (c *LamaClient) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/health", nil)
	if err != nil {
		return err
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("model server returned status %d", resp.StatusCode)
	}
	return nil
}

func (c *LamaClient) writeImagePart(writer *multipart.Writer, field, filename string, img image.Image) error {
	part, err := writer.CreateFormFile(field, filename)
	if err != nil {
		return fmt.Errorf("%w: create form file %s: %v", ErrInference, field, err)
	}
	if err := imaging.Encode(part, img, imaging.PNG); err != nil {
		return fmt.Errorf("%w: encode %s: %v", ErrInference, field, err)
	}
	return nil
}
