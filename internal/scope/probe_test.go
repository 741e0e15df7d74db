package scope

import (
	"errors"
	"testing"
)

func TestProbe_MatchesFrame(t *testing.T) {
	f := gradientFrame(9, 6)

	for y := 0; y < f.Height; y++ {
		for x := 0; x < f.Width; x++ {
			s, err := Probe(f, x, y)
			if err != nil {
				t.Fatalf("Probe(%d,%d) failed: %v", x, y, err)
			}
			i := (y*f.Width + x) * 3
			want := RGB{R: f.Pix[i], G: f.Pix[i+1], B: f.Pix[i+2]}
			if s.Color != want {
				t.Errorf("Probe(%d,%d) color: got %v, want %v", x, y, s.Color, want)
			}
			if s.Chroma != Chroma(want.R, want.G, want.B) {
				t.Errorf("Probe(%d,%d) chroma differs from Chroma()", x, y)
			}
		}
	}
}

func TestProbe_AgreesWithVectorscope(t *testing.T) {
	f := gradientFrame(30, 20) // 600 pixels, stride 1
	points := Vectorscope(f)

	for i, p := range points {
		s, err := Probe(f, i%f.Width, i/f.Width)
		if err != nil {
			t.Fatalf("Probe failed: %v", err)
		}
		if s.Chroma != p {
			t.Fatalf("pixel %d: probe %+v, vectorscope %+v", i, s.Chroma, p)
		}
	}
}

func TestProbe_OutOfBounds(t *testing.T) {
	f := gradientFrame(3, 3)

	tests := []struct {
		name string
		x, y int
	}{
		{"beyond both", 5, 5},
		{"negative x", -1, 0},
		{"negative y", 0, -1},
		{"x at width", 3, 0},
		{"y at height", 0, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Probe(f, tt.x, tt.y)
			if !errors.Is(err, ErrOutOfBounds) {
				t.Fatalf("got %v, want ErrOutOfBounds", err)
			}
			var be *BoundsError
			if !errors.As(err, &be) {
				t.Fatalf("error %T is not a *BoundsError", err)
			}
			if be.X != tt.x || be.Y != tt.y || be.Width != 3 || be.Height != 3 {
				t.Errorf("BoundsError: got %+v", be)
			}
		})
	}
}

func TestProbe_Gray(t *testing.T) {
	f, err := Normalize(solidRaster(1, 1, 128))
	if err != nil {
		t.Fatalf("Normalize failed: %v", err)
	}
	s, err := Probe(f, 0, 0)
	if err != nil {
		t.Fatalf("Probe failed: %v", err)
	}
	if s.Color != (RGB{128, 128, 128}) {
		t.Errorf("color: got %v", s.Color)
	}
	if s.Chroma != (ChromaPoint{}) {
		t.Errorf("chroma: got %+v, want zero", s.Chroma)
	}
}
