package inference

import (
	"image"
	"image/color"
)

// Image is a decoded RGB image stored row-major with three bytes per pixel.
type Image struct {
	Width  int
	Height int
	Pix    []uint8
}

// NewImage converts any decoded image into a dense RGB array, dropping alpha.
// Colour channels are taken unpremultiplied, so transparent pixels keep their
// RGB values.
func NewImage(src image.Image) *Image {
	b := src.Bounds()
	img := &Image{
		Width:  b.Dx(),
		Height: b.Dy(),
		Pix:    make([]uint8, 0, b.Dx()*b.Dy()*3),
	}
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := straightColor(src, x, y)
			img.Pix = append(img.Pix, c.R, c.G, c.B)
		}
	}
	return img
}

// straightColor reads a pixel without alpha premultiplication. NRGBA sources
// are read directly because converting through premultiplied values would
// zero fully transparent pixels.
func straightColor(src image.Image, x, y int) color.NRGBA {
	if n, ok := src.(*image.NRGBA); ok {
		return n.NRGBAAt(x, y)
	}
	return color.NRGBAModel.Convert(src.At(x, y)).(color.NRGBA)
}

// luminance uses ITU-R 601-2 weights on straight RGB, ignoring alpha
func luminance(c color.NRGBA) uint8 {
	return uint8((19595*uint32(c.R) + 38470*uint32(c.G) + 7471*uint32(c.B) + 1<<15) >> 16)
}

// Mask is a single channel intensity field with values in [0,1].
type Mask struct {
	Width  int
	Height int
	Values []float32
}

// NewMask converts a decoded image to luminance and normalises it to [0,1].
// Alpha is ignored.
func NewMask(src image.Image) *Mask {
	b := src.Bounds()
	m := &Mask{
		Width:  b.Dx(),
		Height: b.Dy(),
		Values: make([]float32, 0, b.Dx()*b.Dy()),
	}
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			m.Values = append(m.Values, float32(luminance(straightColor(src, x, y)))/255.0)
		}
	}
	return m
}

// Request is a single reconstruction call
type Request struct {
	Image *Image
	// Mask is optional. When set its dimensions match Image.
	Mask *Mask
	Seed int64
}

// Output is one model output kind. Data is only meaningful when Present is set.
type Output struct {
	Present bool
	Data    []byte
}

// Result holds every output kind the model may produce. No kind is guaranteed.
type Result struct {
	// Splat is the Gaussian splatting reconstruction, serialised as PLY
	Splat Output
	// Mesh is the mesh reconstruction, serialised as GLB
	Mesh Output
}

// LoadOptions are passed to the engine when the model is loaded
type LoadOptions struct {
	CheckpointPath string
	Compile        bool
}
