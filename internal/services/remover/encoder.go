package remover

import (
	"archive/zip"
	"bytes"
	"encoding/base64"
	"fmt"
	"image"

	"github.com/disintegration/imaging"
)

// EncodePNG serializes a bitmap to PNG bytes.
func EncodePNG(img image.Image) ([]byte, error) {
	buffer := &bytes.Buffer{}
	if err := imaging.Encode(buffer, img, imaging.PNG); err != nil {
		return nil, fmt.Errorf("failed to encode image: %w", err)
	}
	return buffer.Bytes(), nil
}

// EncodeBase64 returns the base64 representation used in JSON responses.
func EncodeBase64(pngData []byte) string {
	return base64.StdEncoding.EncodeToString(pngData)
}

// BuildZip packs cleaned PNGs into a single archive with entries named
// cleaned_1.png .. cleaned_N.png in input order.
func BuildZip(pngs [][]byte) ([]byte, error) {
	buffer := &bytes.Buffer{}
	archive := zip.NewWriter(buffer)

	for i, data := range pngs {
		entry, err := archive.Create(fmt.Sprintf("cleaned_%d.png", i+1))
		if err != nil {
			return nil, fmt.Errorf("failed to create zip entry: %w", err)
		}
		if _, err := entry.Write(data); err != nil {
			return nil, fmt.Errorf("failed to write zip entry: %w", err)
		}
	}

	if err := archive.Close(); err != nil {
		return nil, fmt.Errorf("failed to finalize zip: %w", err)
	}

	return buffer.Bytes(), nil
}
