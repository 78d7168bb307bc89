package remover

import (
	"archive/zip"
	"bytes"
	"encoding/base64"
	"image"
	"image/color"
	"io"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func solidImage(w, h int, c color.NRGBA) image.Image {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

func TestEncodePNGRoundTrip(t *testing.T) {
	img := solidImage(4, 3, color.NRGBA{R: 255, A: 255})

	data, err := EncodePNG(img)
	require.NoError(t, err)
	require.NotEmpty(t, data)

	decoded, err := imaging.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, 4, decoded.Bounds().Dx())
	assert.Equal(t, 3, decoded.Bounds().Dy())
	assert.Equal(t, color.NRGBA{R: 255, A: 255}, color.NRGBAModel.Convert(decoded.At(0, 0)))
}

func TestEncodeBase64RoundTrip(t *testing.T) {
	img := solidImage(2, 2, color.NRGBA{G: 255, A: 255})

	data, err := EncodePNG(img)
	require.NoError(t, err)

	encoded := EncodeBase64(data)
	decoded, err := base64.StdEncoding.DecodeString(encoded)
	require.NoError(t, err)

	assert.Equal(t, data, decoded)
}

func TestBuildZip(t *testing.T) {
	first, err := EncodePNG(solidImage(2, 2, color.NRGBA{B: 255, A: 255}))
	require.NoError(t, err)
	second, err := EncodePNG(solidImage(3, 3, color.NRGBA{R: 255, G: 255, A: 255}))
	require.NoError(t, err)

	archive, err := BuildZip([][]byte{first, second})
	require.NoError(t, err)

	reader, err := zip.NewReader(bytes.NewReader(archive), int64(len(archive)))
	require.NoError(t, err)
	require.Len(t, reader.File, 2)

	want := map[string][]byte{
		"cleaned_1.png": first,
		"cleaned_2.png": second,
	}

	for _, entry := range reader.File {
		expected, ok := want[entry.Name]
		require.True(t, ok, "unexpected zip entry %s", entry.Name)

		rc, err := entry.Open()
		require.NoError(t, err)
		content, err := io.ReadAll(rc)
		require.NoError(t, err)
		rc.Close()

		assert.Equal(t, expected, content)
	}
}

func TestBuildZipEmpty(t *testing.T) {
	archive, err := BuildZip(nil)
	require.NoError(t, err)

	reader, err := zip.NewReader(bytes.NewReader(archive), int64(len(archive)))
	require.NoError(t, err)
	assert.Empty(t, reader.File)
}
