package utils

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"io"
	"net/http"
	"strings"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

var (
	// ErrFetch covers network failures, non-2xx statuses and
	// non-image payloads while downloading a source image.
	ErrFetch = errors.New("fetch failed")

	// ErrDecode covers corrupt or unsupported image data.
	ErrDecode = errors.New("decode failed")
)

// DownloadImage fetches a remote image with a size cap and returns the
// raw bytes together with the detected content type.
func DownloadImage(ctx context.Context, client *http.Client, imageURL string, maxSize int64) ([]byte, string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, imageURL, nil)
	if err != nil {
		return nil, "", fmt.Errorf("%w: invalid request for %s: %v", ErrFetch, imageURL, err)
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %s: %v", ErrFetch, imageURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, "", fmt.Errorf("%w: %s: status %d", ErrFetch, imageURL, resp.StatusCode)
	}

	imageData, err := io.ReadAll(io.LimitReader(resp.Body, maxSize+1))
	if err != nil {
		return nil, "", fmt.Errorf("%w: %s: %v", ErrFetch, imageURL, err)
	}

	if int64(len(imageData)) > maxSize {
		return nil, "", fmt.Errorf("%w: %s: image exceeds size limit of %d bytes", ErrFetch, imageURL, maxSize)
	}

	if len(imageData) == 0 {
		return nil, "", fmt.Errorf("%w: %s: empty response body", ErrFetch, imageURL)
	}

	contentType := http.DetectContentType(imageData)
	if !IsValidImageType(contentType) {
		return nil, "", fmt.Errorf("%w: %s: invalid content type %s", ErrFetch, imageURL, contentType)
	}

	return imageData, contentType, nil
}

// DecodeImage decodes raw bytes into an in-memory bitmap.
func DecodeImage(data []byte) (image.Image, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	return img, nil
}

// IsValidImageType checks if content type is a valid image type
func IsValidImageType(contentType string) bool {
	validTypes := []string{
		"image/jpeg",
		"image/jpg",
		"image/png",
		"image/gif",
		"image/webp",
		"image/bmp",
		"image/tiff",
	}

	ct := strings.ToLower(contentType)
	for _, validType := range validTypes {
		if strings.Contains(ct, validType) {
			return true
		}
	}
	return false
}
