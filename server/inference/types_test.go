package inference

import (
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewImage_DropsAlpha(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	src.SetNRGBA(0, 0, color.NRGBA{R: 255, A: 255})
	src.SetNRGBA(1, 0, color.NRGBA{G: 255, A: 255})
	src.SetNRGBA(0, 1, color.NRGBA{B: 255, A: 255})
	src.SetNRGBA(1, 1, color.NRGBA{R: 10, G: 20, B: 30, A: 255})

	img := NewImage(src)
	assert.Equal(t, 2, img.Width)
	assert.Equal(t, 2, img.Height)
	assert.Equal(t, []uint8{
		255, 0, 0, 0, 255, 0,
		0, 0, 255, 10, 20, 30,
	}, img.Pix)
}

func TestNewImage_KeepsColourOfTransparentPixels(t *testing.T) {
	tests := []struct {
		name  string
		alpha uint8
	}{
		{name: "fully transparent", alpha: 0},
		{name: "half transparent", alpha: 128},
		{name: "opaque", alpha: 255},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := image.NewNRGBA(image.Rect(0, 0, 1, 1))
			src.SetNRGBA(0, 0, color.NRGBA{R: 200, G: 100, B: 50, A: tt.alpha})

			assert.Equal(t, []uint8{200, 100, 50}, NewImage(src).Pix)
		})
	}
}

func TestNewImage_UnpremultipliesOtherSources(t *testing.T) {
	src := image.NewNRGBA64(image.Rect(0, 0, 1, 1))
	src.SetNRGBA64(0, 0, color.NRGBA64{R: 200 * 257, G: 100 * 257, B: 50 * 257, A: 128 * 257})

	pix := NewImage(src).Pix
	require.Len(t, pix, 3)
	for i, want := range []uint8{200, 100, 50} {
		assert.InDelta(t, want, pix[i], 1)
	}
}

func TestNewImage_OffsetBounds(t *testing.T) {
	src := image.NewRGBA(image.Rect(5, 5, 8, 6))
	img := NewImage(src)
	assert.Equal(t, 3, img.Width)
	assert.Equal(t, 1, img.Height)
	assert.Len(t, img.Pix, 9)
}

func TestNewMask_Normalises(t *testing.T) {
	src := image.NewGray(image.Rect(0, 0, 3, 1))
	src.SetGray(0, 0, color.Gray{Y: 0})
	src.SetGray(1, 0, color.Gray{Y: 255})
	src.SetGray(2, 0, color.Gray{Y: 51})

	m := NewMask(src)
	assert.Equal(t, 3, m.Width)
	assert.Equal(t, 1, m.Height)
	require.Len(t, m.Values, 3)
	assert.InDelta(t, 0.0, m.Values[0], 1e-6)
	assert.InDelta(t, 1.0, m.Values[1], 1e-6)
	assert.InDelta(t, 0.2, m.Values[2], 1e-6)
	for _, v := range m.Values {
		assert.GreaterOrEqual(t, v, float32(0))
		assert.LessOrEqual(t, v, float32(1))
	}
}

func TestNewMask_IgnoresAlpha(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 3, 1))
	src.SetNRGBA(0, 0, color.NRGBA{R: 255, G: 255, B: 255, A: 0})
	src.SetNRGBA(1, 0, color.NRGBA{A: 0})
	src.SetNRGBA(2, 0, color.NRGBA{R: 255, A: 128})

	m := NewMask(src)
	require.Len(t, m.Values, 3)
	assert.InDelta(t, 1.0, m.Values[0], 1e-6)
	assert.InDelta(t, 0.0, m.Values[1], 1e-6)
	assert.InDelta(t, 76.0/255.0, m.Values[2], 1e-6)
}

func TestCheckPrerequisites(t *testing.T) {
	dir := t.TempDir()
	write := func(name, content string) string {
		path := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
		return path
	}

	tests := []struct {
		name    string
		path    string
		wantErr string
	}{
		{name: "disabled", path: ""},
		{name: "valid manifest", path: write("ok.yaml", "pipeline:\n  name: sam-3d-objects\n")},
		{name: "missing", path: filepath.Join(dir, "nope.yaml"), wantErr: "checkpoints not found"},
		{name: "empty", path: write("empty.yaml", ""), wantErr: "is empty"},
		{name: "not a mapping", path: write("list.yaml", "- a\n- b\n"), wantErr: "invalid checkpoint manifest"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckPrerequisites(tt.path)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrUnavailable)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
