package scope

import (
	"sync"
	"testing"

	"github.com/anthonynsimon/bild/histogram"
)

func TestComputeHistogram_AllWhite(t *testing.T) {
	f, err := Normalize(solidRaster(2, 2, 255, 255, 255))
	if err != nil {
		t.Fatalf("Normalize failed: %v", err)
	}

	h := ComputeHistogram(f)
	channels := map[string][HistogramBins]int{"r": h.R, "g": h.G, "b": h.B}
	for name, bins := range channels {
		for i, n := range bins {
			want := 0
			if i == 255 {
				want = 4
			}
			if n != want {
				t.Errorf("%s[%d]: got %d, want %d", name, i, n, want)
			}
		}
	}
}

func TestComputeHistogram_SumMatchesPixels(t *testing.T) {
	sizes := []struct{ w, h int }{
		{1, 1},
		{3, 7},
		{64, 64},
		{300, 257}, // above the parallel threshold
		{0, 0},
	}

	for _, s := range sizes {
		f := gradientFrame(s.w, s.h)
		h := ComputeHistogram(f)
		r, g, b := h.Total()
		want := s.w * s.h
		if r != want || g != want || b != want {
			t.Errorf("%dx%d: sums (%d,%d,%d), want %d", s.w, s.h, r, g, b, want)
		}
	}
}

func TestComputeHistogram_MatchesBild(t *testing.T) {
	// Large enough to exercise the sharded path.
	f := gradientFrame(320, 240)
	got := ComputeHistogram(f)
	want := histogram.NewRGBAHistogram(f.Image())

	for i := 0; i < HistogramBins; i++ {
		if got.R[i] != want.R.Bins[i] {
			t.Errorf("R[%d]: got %d, bild %d", i, got.R[i], want.R.Bins[i])
		}
		if got.G[i] != want.G.Bins[i] {
			t.Errorf("G[%d]: got %d, bild %d", i, got.G[i], want.G.Bins[i])
		}
		if got.B[i] != want.B.Bins[i] {
			t.Errorf("B[%d]: got %d, bild %d", i, got.B[i], want.B.Bins[i])
		}
	}
}

func TestComputeHistogram_SerialAndShardedAgree(t *testing.T) {
	f := gradientFrame(400, 300)

	serial := &Histogram{}
	countRows(serial, f, 0, f.Height)

	if sharded := ComputeHistogram(f); *sharded != *serial {
		t.Error("sharded histogram differs from serial count")
	}
}

func TestComputeHistogram_Concurrent(t *testing.T) {
	f := gradientFrame(128, 128)
	want := ComputeHistogram(f)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if got := ComputeHistogram(f); *got != *want {
				t.Error("concurrent histogram differs")
			}
		}()
	}
	wg.Wait()
}

func TestBin(t *testing.T) {
	tests := []struct {
		in, want int
	}{
		{-5, 0},
		{0, 0},
		{128, 128},
		{255, 255},
		{300, 255},
	}
	for _, tt := range tests {
		if got := bin(tt.in); got != tt.want {
			t.Errorf("bin(%d): got %d, want %d", tt.in, got, tt.want)
		}
	}
}
