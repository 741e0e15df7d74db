package scope

import (
	"image"
	"image/color"
)

// Raster is a decoded image as handed over by a codec: Width×Height pixels,
// Channels interleaved 8-bit samples per pixel, rows stored top to bottom.
//
// Supported channel counts are 1 (gray), 3 (RGB) and 4 (RGBA).
type Raster struct {
	Width    int
	Height   int
	Channels int
	Pix      []uint8
}

// Frame is a canonical 3-channel RGB buffer produced by Normalize.
//
// Pix holds Width*Height*3 samples in R, G, B order.
type Frame struct {
	Width  int
	Height int
	Pix    []uint8
}

// NewFrame allocates a black frame of the given size.
func NewFrame(width, height int) *Frame {
	return &Frame{
		Width:  width,
		Height: height,
		Pix:    make([]uint8, width*height*3),
	}
}

// Pixels returns the number of pixels in the frame.
func (f *Frame) Pixels() int {
	return f.Width * f.Height
}

// At returns the RGB triple at (x, y). The caller must ensure the coordinate
// is inside the frame.
func (f *Frame) At(x, y int) RGB {
	i := (y*f.Width + x) * 3
	return RGB{R: f.Pix[i], G: f.Pix[i+1], B: f.Pix[i+2]}
}

// Image wraps the frame as an opaque *image.NRGBA so it can be re-encoded by
// any standard image codec.
func (f *Frame) Image() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, f.Width, f.Height))
	for i, j := 0, 0; i < len(f.Pix); i, j = i+3, j+4 {
		img.Pix[j] = f.Pix[i]
		img.Pix[j+1] = f.Pix[i+1]
		img.Pix[j+2] = f.Pix[i+2]
		img.Pix[j+3] = 0xff
	}
	return img
}

// RGB is an 8-bit color triple.
type RGB struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// RGBA implements color.Color.
func (c RGB) RGBA() (r, g, b, a uint32) {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: 0xff}.RGBA()
}

// Normalize converts a raster with 1, 3 or 4 channels into a canonical RGB
// frame. Gray samples are replicated into R, G and B; a fourth (alpha)
// channel is dropped. The input is never modified.
func Normalize(r *Raster) (*Frame, error) {
	if r == nil {
		return nil, &FormatError{Reason: "nil raster"}
	}
	fail := func(reason string) error {
		return &FormatError{
			Width:    r.Width,
			Height:   r.Height,
			Channels: r.Channels,
			Samples:  len(r.Pix),
			Reason:   reason,
		}
	}

	switch r.Channels {
	case 1, 3, 4:
	default:
		return nil, fail("unsupported channel count")
	}
	if r.Width < 0 || r.Height < 0 {
		return nil, fail("negative dimensions")
	}
	if len(r.Pix) != r.Width*r.Height*r.Channels {
		return nil, fail("sample count does not match dimensions")
	}

	f := NewFrame(r.Width, r.Height)
	switch r.Channels {
	case 1:
		for i, v := range r.Pix {
			j := i * 3
			f.Pix[j], f.Pix[j+1], f.Pix[j+2] = v, v, v
		}
	case 3:
		copy(f.Pix, r.Pix)
	case 4:
		for i, j := 0, 0; i < len(r.Pix); i, j = i+4, j+3 {
			f.Pix[j], f.Pix[j+1], f.Pix[j+2] = r.Pix[i], r.Pix[i+1], r.Pix[i+2]
		}
	}
	return f, nil
}
