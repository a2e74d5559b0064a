package testutils

import (
	"bytes"
	"encoding/base64"
	"image"
	"image/color"
	"image/png"
	"mime/multipart"
	"net/http"
	"net/textproto"

	"github.com/stretchr/testify/require"
)

// T is the subset of testing.TB the fixtures need. *rapid.T satisfies it too.
type T interface {
	Helper()
	Errorf(format string, args ...any)
	FailNow()
}

// PNG encodes a w x h gradient image
func PNG(t T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{R: uint8(x * 255 / max(w, 1)), G: uint8(y * 255 / max(h, 1)), B: 128, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

// MaskPNG encodes a w x h grayscale mask with the left half set
func MaskPNG(t T, w, h int) []byte {
	t.Helper()
	img := image.NewGray(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w/2; x++ {
			img.SetGray(x, y, color.Gray{Y: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

// FilePart is one file in a multipart form
type FilePart struct {
	Field       string
	Filename    string
	ContentType string
	Data        []byte
}

// Form builds a multipart/form-data body
type Form struct {
	Files  []FilePart
	Fields map[string]string
}

// Request builds a POST request carrying the form
func (f Form) Request(t T, url string) *http.Request {
	t.Helper()

	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	for _, part := range f.Files {
		h := make(textproto.MIMEHeader)
		h.Set("Content-Disposition", `form-data; name="`+part.Field+`"; filename="`+part.Filename+`"`)
		if part.ContentType != "" {
			h.Set("Content-Type", part.ContentType)
		}
		pw, err := w.CreatePart(h)
		require.NoError(t, err)
		_, err = pw.Write(part.Data)
		require.NoError(t, err)
	}
	for k, v := range f.Fields {
		require.NoError(t, w.WriteField(k, v))
	}
	require.NoError(t, w.Close())

	req, err := http.NewRequest(http.MethodPost, url, &body)
	require.NoError(t, err)
	req.Header.Set("Content-Type", w.FormDataContentType())
	return req
}

// ImageForm is a form with a single PNG image part
func ImageForm(t T, w, h int) Form {
	return Form{Files: []FilePart{{Field: "image", Filename: "image.png", ContentType: "image/png", Data: PNG(t, w, h)}}}
}

// 1x1 lossless WebP
const webp1x1 = "UklGRhoAAABXRUJQVlA4TA0AAAAvAAAAEAcQERGIiP4HAA=="

// WebP returns a 1x1 lossless WebP image. The standard library has no WebP
// encoder, so the bytes are fixed.
func WebP(t T) []byte {
	t.Helper()
	data, err := base64.StdEncoding.DecodeString(webp1x1)
	require.NoError(t, err)
	return data
}
