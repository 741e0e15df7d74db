package scope

import (
	"fmt"
	"math"

	"github.com/anthonynsimon/bild/parallel"
)

// DefaultPeakingThreshold is the edge strength, in 8-bit code values, at
// which FocusPeaking starts highlighting.
const DefaultPeakingThreshold = 48.0

// PeakingColor is the default focus peaking highlight.
var PeakingColor = RGB{R: 255, G: 0, B: 0}

var (
	sobelX = [3][3]float64{
		{-1, 0, 1},
		{-2, 0, 2},
		{-1, 0, 1},
	}
	sobelY = [3][3]float64{
		{-1, -2, -1},
		{0, 0, 0},
		{1, 2, 1},
	}
)

// FocusPeaking highlights in-focus detail of f. Edge strength is the Sobel
// gradient magnitude of luma, scaled so a hard black-to-white step reads 255.
// Pixels at or above threshold take the highlight color; the rest are copied
// unchanged. Frame borders replicate their edge pixels.
func FocusPeaking(f *Frame, threshold float64, highlight RGB) (*Frame, error) {
	if math.IsNaN(threshold) || threshold <= 0 {
		return nil, fmt.Errorf("peaking threshold must be positive, got %v", threshold)
	}

	out := NewFrame(f.Width, f.Height)
	copy(out.Pix, f.Pix)
	if f.Pixels() == 0 {
		return out, nil
	}

	luma := make([]float64, f.Pixels())
	for i := range luma {
		j := i * 3
		luma[i] = Luma(f.Pix[j], f.Pix[j+1], f.Pix[j+2]) * 255
	}

	parallel.Line(f.Height, func(start, end int) {
		for y := start; y < end; y++ {
			for x := 0; x < f.Width; x++ {
				if edgeStrength(luma, f.Width, f.Height, x, y) < threshold {
					continue
				}
				i := (y*f.Width + x) * 3
				out.Pix[i] = highlight.R
				out.Pix[i+1] = highlight.G
				out.Pix[i+2] = highlight.B
			}
		}
	})
	return out, nil
}

func edgeStrength(luma []float64, width, height, x, y int) float64 {
	var gx, gy float64
	for ky := -1; ky <= 1; ky++ {
		py := clampInt(y+ky, 0, height-1)
		for kx := -1; kx <= 1; kx++ {
			px := clampInt(x+kx, 0, width-1)
			v := luma[py*width+px]
			gx += v * sobelX[ky+1][kx+1]
			gy += v * sobelY[ky+1][kx+1]
		}
	}
	return math.Sqrt(gx*gx+gy*gy) / 4
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
