package server

import (
	"bytes"
	"image"
	"image/color"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"

	testutils "github.com/inference-gateway/sam3d/server/testutils"
)

func encodeWith(t *testing.T, encode func(io.Writer, image.Image) error) []byte {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, 3, 2))
	for y := 0; y < 2; y++ {
		for x := 0; x < 3; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: uint8(x * 80), G: uint8(y * 120), B: 40, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, encode(&buf, img))
	return buf.Bytes()
}

func TestDecodeImageFile(t *testing.T) {
	tests := []struct {
		name   string
		codec  string
		data   func(t *testing.T) []byte
		width  int
		height int
	}{
		{name: "png", codec: "png", width: 3, height: 2, data: func(t *testing.T) []byte { return encodeWith(t, png.Encode) }},
		{name: "jpeg", codec: "jpeg", width: 3, height: 2, data: func(t *testing.T) []byte {
			return encodeWith(t, func(w io.Writer, m image.Image) error { return jpeg.Encode(w, m, nil) })
		}},
		{name: "gif", codec: "gif", width: 3, height: 2, data: func(t *testing.T) []byte {
			return encodeWith(t, func(w io.Writer, m image.Image) error { return gif.Encode(w, m, nil) })
		}},
		{name: "bmp", codec: "bmp", width: 3, height: 2, data: func(t *testing.T) []byte { return encodeWith(t, bmp.Encode) }},
		{name: "tiff", codec: "tiff", width: 3, height: 2, data: func(t *testing.T) []byte {
			return encodeWith(t, func(w io.Writer, m image.Image) error { return tiff.Encode(w, m, nil) })
		}},
		{name: "webp", codec: "webp", width: 1, height: 1, data: func(t *testing.T) []byte { return testutils.WebP(t) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "image")
			require.NoError(t, os.WriteFile(path, tt.data(t), 0o600))

			img, codec, err := decodeImageFile(path)
			require.NoError(t, err)
			assert.Equal(t, tt.codec, codec)
			assert.Equal(t, tt.width, img.Bounds().Dx())
			assert.Equal(t, tt.height, img.Bounds().Dy())
		})
	}
}

func TestDecodeImageFile_RejectsUnknownData(t *testing.T) {
	path := filepath.Join(t.TempDir(), "image")
	require.NoError(t, os.WriteFile(path, []byte("definitely not an image"), 0o600))

	_, _, err := decodeImageFile(path)
	assert.ErrorIs(t, err, image.ErrFormat)
}
