package scope

import (
	"math"
	"reflect"
	"testing"
)

func TestChroma_KnownColors(t *testing.T) {
	tests := []struct {
		name    string
		r, g, b uint8
		wantU   float64
		wantV   float64
	}{
		{"white", 255, 255, 255, 0, 0},
		{"black", 0, 0, 0, 0, 0},
		{"gray", 128, 128, 128, 0, 0},
		{"pure red", 255, 0, 0, 0.492 * -0.299, 0.877 * (1 - 0.299)},
		{"pure blue", 0, 0, 255, 0.492 * (1 - 0.114), 0.877 * -0.114},
		{"pure green", 0, 255, 0, 0.492 * -0.587, 0.877 * -0.587},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Chroma(tt.r, tt.g, tt.b)
			wantU := math.Max(-0.5, math.Min(0.5, tt.wantU))
			wantV := math.Max(-0.5, math.Min(0.5, tt.wantV))
			if math.Abs(p.U-wantU) > 1e-9 {
				t.Errorf("U: got %v, want %v", p.U, wantU)
			}
			if math.Abs(p.V-wantV) > 1e-9 {
				t.Errorf("V: got %v, want %v", p.V, wantV)
			}
		})
	}
}

func TestChroma_Clipped(t *testing.T) {
	// Pure red has v = 0.877*0.701 > 0.5 before clipping.
	if p := Chroma(255, 0, 0); p.V != 0.5 {
		t.Errorf("V: got %v, want 0.5", p.V)
	}

	for r := 0; r < 256; r += 15 {
		for g := 0; g < 256; g += 15 {
			for b := 0; b < 256; b += 15 {
				p := Chroma(uint8(r), uint8(g), uint8(b))
				if p.U < -0.5 || p.U > 0.5 || p.V < -0.5 || p.V > 0.5 {
					t.Fatalf("Chroma(%d,%d,%d) = %+v outside [-0.5,0.5]", r, g, b, p)
				}
			}
		}
	}
}

func TestVectorscope_AllWhite(t *testing.T) {
	f, err := Normalize(solidRaster(2, 2, 255, 255, 255))
	if err != nil {
		t.Fatalf("Normalize failed: %v", err)
	}

	points := Vectorscope(f)
	if len(points) != 4 {
		t.Fatalf("len: got %d, want 4", len(points))
	}
	for i, p := range points {
		if p != (ChromaPoint{}) {
			t.Errorf("point %d: got %+v, want {0 0}", i, p)
		}
	}
}

func TestVectorscope_Bounded(t *testing.T) {
	sizes := []struct{ w, h int }{
		{1, 1},
		{40, 50},   // exactly the cap
		{2001, 1},  // stride 1 would overrun the cap
		{100, 100}, // stride 5
		{1920, 1080},
		{0, 0},
	}

	for _, s := range sizes {
		points := Vectorscope(gradientFrame(s.w, s.h))
		if len(points) > MaxVectorscopePoints {
			t.Errorf("%dx%d: %d points exceeds cap", s.w, s.h, len(points))
		}
		n := s.w * s.h
		if n <= MaxVectorscopePoints && len(points) != n {
			t.Errorf("%dx%d: got %d points, want %d", s.w, s.h, len(points), n)
		}
	}
}

func TestVectorscope_Stride(t *testing.T) {
	f := gradientFrame(100, 100)
	points := Vectorscope(f)

	// 10000 pixels, stride 5.
	if len(points) != 2000 {
		t.Fatalf("len: got %d, want 2000", len(points))
	}
	for k, p := range points {
		i := k * 5
		x, y := i%f.Width, i/f.Width
		c := f.At(x, y)
		if want := Chroma(c.R, c.G, c.B); p != want {
			t.Fatalf("point %d: got %+v, want %+v (pixel %d)", k, p, want, i)
		}
	}
}

func TestVectorscope_Deterministic(t *testing.T) {
	f := gradientFrame(333, 77)
	first := Vectorscope(f)
	for i := 0; i < 3; i++ {
		if !reflect.DeepEqual(first, Vectorscope(f)) {
			t.Fatal("Vectorscope returned different points for the same frame")
		}
	}
}

func TestVectorscope_SmallFrameKeepsLeadingPixels(t *testing.T) {
	// 2500 pixels: stride 1, so the cap cuts sampling at pixel 1999.
	f := NewFrame(50, 50)
	for y := 40; y < 50; y++ {
		for x := 0; x < 50; x++ {
			i := (y*50 + x) * 3
			f.Pix[i] = 255
		}
	}

	points := Vectorscope(f)
	if len(points) != MaxVectorscopePoints {
		t.Fatalf("len: got %d, want %d", len(points), MaxVectorscopePoints)
	}
	for k, p := range points {
		if p != (ChromaPoint{}) {
			t.Fatalf("point %d: got %+v, want neutral (rows 40-49 are never sampled)", k, p)
		}
	}
}
