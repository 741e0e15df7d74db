package scope

import (
	"bytes"
	"errors"
	"testing"
)

// solidRaster builds a raster with every pixel set to the given samples.
func solidRaster(width, height int, samples ...uint8) *Raster {
	pix := make([]uint8, 0, width*height*len(samples))
	for i := 0; i < width*height; i++ {
		pix = append(pix, samples...)
	}
	return &Raster{Width: width, Height: height, Channels: len(samples), Pix: pix}
}

// gradientFrame builds an RGB frame whose samples vary with position.
func gradientFrame(width, height int) *Frame {
	f := NewFrame(width, height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			i := (y*width + x) * 3
			f.Pix[i] = uint8(x * 7)
			f.Pix[i+1] = uint8(y * 13)
			f.Pix[i+2] = uint8(x*y + 31)
		}
	}
	return f
}

func TestNormalize_Gray(t *testing.T) {
	f, err := Normalize(solidRaster(4, 3, 77))
	if err != nil {
		t.Fatalf("Normalize failed: %v", err)
	}
	if f.Width != 4 || f.Height != 3 {
		t.Fatalf("size: got %dx%d, want 4x3", f.Width, f.Height)
	}
	for y := 0; y < f.Height; y++ {
		for x := 0; x < f.Width; x++ {
			if c := f.At(x, y); c != (RGB{77, 77, 77}) {
				t.Fatalf("pixel (%d,%d): got %v, want {77 77 77}", x, y, c)
			}
		}
	}
}

func TestNormalize_RGBA(t *testing.T) {
	r := &Raster{Width: 2, Height: 1, Channels: 4, Pix: []uint8{10, 20, 30, 0, 40, 50, 60, 255}}

	f, err := Normalize(r)
	if err != nil {
		t.Fatalf("Normalize failed: %v", err)
	}
	want := []uint8{10, 20, 30, 40, 50, 60}
	if !bytes.Equal(f.Pix, want) {
		t.Errorf("Pix: got %v, want %v", f.Pix, want)
	}
}

func TestNormalize_RGBCopies(t *testing.T) {
	r := &Raster{Width: 1, Height: 2, Channels: 3, Pix: []uint8{1, 2, 3, 4, 5, 6}}

	f, err := Normalize(r)
	if err != nil {
		t.Fatalf("Normalize failed: %v", err)
	}
	if !bytes.Equal(f.Pix, r.Pix) {
		t.Fatalf("Pix: got %v, want %v", f.Pix, r.Pix)
	}

	f.Pix[0] = 99
	if r.Pix[0] != 1 {
		t.Error("Normalize must not alias the input samples")
	}
}

func TestNormalize_InvalidFormat(t *testing.T) {
	tests := []struct {
		name   string
		raster *Raster
	}{
		{"two channels", &Raster{Width: 1, Height: 1, Channels: 2, Pix: []uint8{1, 2}}},
		{"five channels", &Raster{Width: 1, Height: 1, Channels: 5, Pix: []uint8{1, 2, 3, 4, 5}}},
		{"zero channels", &Raster{Width: 1, Height: 1}},
		{"short samples", &Raster{Width: 2, Height: 2, Channels: 3, Pix: []uint8{1, 2, 3}}},
		{"negative width", &Raster{Width: -1, Height: 1, Channels: 1}},
		{"nil raster", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Normalize(tt.raster)
			if !errors.Is(err, ErrInvalidFormat) {
				t.Fatalf("got %v, want ErrInvalidFormat", err)
			}
			var fe *FormatError
			if !errors.As(err, &fe) {
				t.Fatalf("error %T is not a *FormatError", err)
			}
		})
	}
}

func TestNormalize_EmptyRaster(t *testing.T) {
	f, err := Normalize(&Raster{Width: 0, Height: 0, Channels: 3})
	if err != nil {
		t.Fatalf("Normalize failed: %v", err)
	}
	if f.Pixels() != 0 {
		t.Errorf("Pixels: got %d, want 0", f.Pixels())
	}
}

func TestFrame_Image(t *testing.T) {
	f := gradientFrame(5, 4)
	img := f.Image()

	if img.Bounds().Dx() != 5 || img.Bounds().Dy() != 4 {
		t.Fatalf("bounds: got %v", img.Bounds())
	}
	for y := 0; y < 4; y++ {
		for x := 0; x < 5; x++ {
			c := img.NRGBAAt(x, y)
			want := f.At(x, y)
			if c.R != want.R || c.G != want.G || c.B != want.B || c.A != 255 {
				t.Fatalf("pixel (%d,%d): got %v, want %v", x, y, c, want)
			}
		}
	}
}
