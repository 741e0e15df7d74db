package scope

import (
	"runtime"

	"golang.org/x/sync/errgroup"
)

// HistogramBins is the number of intensity bins per channel.
const HistogramBins = 256

// parallelHistogramPixels is the frame size above which counting is split
// across row bands.
const parallelHistogramPixels = 1 << 16

// Histogram holds per-channel intensity counts.
//
// For a frame of W×H pixels every channel sums to W*H.
type Histogram struct {
	R [HistogramBins]int `json:"r"`
	G [HistogramBins]int `json:"g"`
	B [HistogramBins]int `json:"b"`
}

// Total returns the sum of the red, green and blue bins respectively.
func (h *Histogram) Total() (r, g, b int) {
	for i := 0; i < HistogramBins; i++ {
		r += h.R[i]
		g += h.G[i]
		b += h.B[i]
	}
	return r, g, b
}

// add merges other into h by element-wise summation.
func (h *Histogram) add(other *Histogram) {
	for i := 0; i < HistogramBins; i++ {
		h.R[i] += other.R[i]
		h.G[i] += other.G[i]
		h.B[i] += other.B[i]
	}
}

// ComputeHistogram counts the occurrences of every intensity value in each
// channel of f.
func ComputeHistogram(f *Frame) *Histogram {
	if f.Pixels() < parallelHistogramPixels {
		h := &Histogram{}
		countRows(h, f, 0, f.Height)
		return h
	}

	workers := runtime.GOMAXPROCS(0)
	if workers > f.Height {
		workers = f.Height
	}
	rowsPer := (f.Height + workers - 1) / workers

	partials := make([]Histogram, workers)
	var g errgroup.Group
	for w := 0; w < workers; w++ {
		start := w * rowsPer
		end := min(start+rowsPer, f.Height)
		if start >= end {
			continue
		}
		part := &partials[w]
		g.Go(func() error {
			countRows(part, f, start, end)
			return nil
		})
	}
	// Workers never fail.
	_ = g.Wait()

	h := &Histogram{}
	for i := range partials {
		h.add(&partials[i])
	}
	return h
}

func countRows(h *Histogram, f *Frame, startRow, endRow int) {
	pix := f.Pix[startRow*f.Width*3 : endRow*f.Width*3]
	for i := 0; i < len(pix); i += 3 {
		h.R[bin(int(pix[i]))]++
		h.G[bin(int(pix[i+1]))]++
		h.B[bin(int(pix[i+2]))]++
	}
}

// bin maps an intensity to its bin, truncating toward zero and clamping into
// the bin range so every sample is counted exactly once.
func bin(v int) int {
	switch {
	case v < 0:
		return 0
	case v >= HistogramBins:
		return HistogramBins - 1
	}
	return v
}
