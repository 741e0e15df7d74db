package scope

// PixelSample is the color of one pixel together with its chrominance and
// luma.
type PixelSample struct {
	X      int         `json:"x"`
	Y      int         `json:"y"`
	Color  RGB         `json:"color"`
	Chroma ChromaPoint `json:"vectorscope"`
	Luma   float64     `json:"luma"`
}

// Probe returns the color and chrominance of the pixel at (x, y).
//
// Coordinates are 0-based from the top-left corner. A coordinate outside the
// frame yields a *BoundsError.
func Probe(f *Frame, x, y int) (PixelSample, error) {
	if x < 0 || x >= f.Width || y < 0 || y >= f.Height {
		return PixelSample{}, &BoundsError{X: x, Y: y, Width: f.Width, Height: f.Height}
	}

	c := f.At(x, y)
	return PixelSample{
		X:      x,
		Y:      y,
		Color:  c,
		Chroma: Chroma(c.R, c.G, c.B),
		Luma:   Luma(c.R, c.G, c.B),
	}, nil
}
