package scope

// MaxVectorscopePoints caps the number of points returned by Vectorscope.
const MaxVectorscopePoints = 2000

// Rec. 601 luma weights and the u/v scale factors.
const (
	lumaR = 0.299
	lumaG = 0.587
	lumaB = 0.114

	uScale = 0.492
	vScale = 0.877

	chromaLimit = 0.5
)

// ChromaPoint is a chrominance pair, each component within [-0.5, 0.5].
type ChromaPoint struct {
	U float64 `json:"u"`
	V float64 `json:"v"`
}

// Chroma converts an 8-bit RGB triple into its clipped (u, v) chrominance.
//
// Both Vectorscope and Probe go through this function so a probed pixel
// always lands on the same spot as its vectorscope sample.
func Chroma(r, g, b uint8) ChromaPoint {
	rf := float64(r) / 255.0
	gf := float64(g) / 255.0
	bf := float64(b) / 255.0

	// B-Y and R-Y with Y = lumaR*R + lumaG*G + lumaB*B, expanded using
	// lumaR+lumaG+lumaB = 1 so neutral pixels yield exactly zero.
	by := lumaR*(bf-rf) + lumaG*(bf-gf)
	ry := lumaG*(rf-gf) + lumaB*(rf-bf)
	return ChromaPoint{
		U: clip(uScale * by),
		V: clip(vScale * ry),
	}
}

// Luma returns the Rec. 601 luma of an 8-bit RGB triple in [0, 1].
func Luma(r, g, b uint8) float64 {
	return (lumaR*float64(r) + lumaG*float64(g) + lumaB*float64(b)) / 255.0
}

// Vectorscope samples the chrominance of f at a fixed stride over the
// row-major pixel order, starting at pixel 0.
//
// The stride is max(1, N/MaxVectorscopePoints) for N pixels. When integer
// division leaves more than MaxVectorscopePoints candidates the tail is
// dropped, so the result never exceeds the cap. For frames with fewer than
// 2*MaxVectorscopePoints pixels the stride is 1, so only the first
// MaxVectorscopePoints pixels in row-major order are sampled and the bottom
// rows are left out; a 50x50 frame is sampled only through row 39. The output
// is identical for identical frames.
func Vectorscope(f *Frame) []ChromaPoint {
	n := f.Pixels()
	if n == 0 {
		return []ChromaPoint{}
	}

	stride := max(1, n/MaxVectorscopePoints)
	count := min((n+stride-1)/stride, MaxVectorscopePoints)

	points := make([]ChromaPoint, 0, count)
	for i := 0; i < n && len(points) < MaxVectorscopePoints; i += stride {
		j := i * 3
		points = append(points, Chroma(f.Pix[j], f.Pix[j+1], f.Pix[j+2]))
	}
	return points
}

func clip(v float64) float64 {
	switch {
	case v < -chromaLimit:
		return -chromaLimit
	case v > chromaLimit:
		return chromaLimit
	}
	return v
}
