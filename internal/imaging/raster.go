package imaging

import (
	"image"

	"github.com/disintegration/imaging"

	"github.com/ironsheep/cinescope/internal/scope"
)

// ToRaster copies a decoded image into a scope.Raster, preserving gray and
// alpha layouts where the concrete image type exposes them.
func ToRaster(img image.Image) *scope.Raster {
	switch src := img.(type) {
	case *image.Gray:
		return copyRows(src.Pix, src.Stride, src.Rect, 1, 1)
	case *image.Gray16:
		// Big-endian samples: keep the high byte of each.
		return copyRows(src.Pix, src.Stride, src.Rect, 2, 1)
	case *image.NRGBA:
		return copyRows(src.Pix, src.Stride, src.Rect, 4, 4)
	default:
		nrgba := imaging.Clone(img)
		return copyRows(nrgba.Pix, nrgba.Stride, nrgba.Rect, 4, 4)
	}
}

// copyRows gathers rect from a strided pixel buffer. Each pixel occupies
// bytesPer bytes, of which the first byte of every channel-sized group is
// kept when bytesPer > channels.
func copyRows(pix []uint8, stride int, rect image.Rectangle, bytesPer, channels int) *scope.Raster {
	w, h := rect.Dx(), rect.Dy()
	r := &scope.Raster{
		Width:    w,
		Height:   h,
		Channels: channels,
		Pix:      make([]uint8, 0, w*h*channels),
	}
	step := bytesPer / channels
	for y := 0; y < h; y++ {
		row := pix[y*stride : y*stride+w*bytesPer]
		if step == 1 {
			r.Pix = append(r.Pix, row...)
			continue
		}
		for i := 0; i < len(row); i += step {
			r.Pix = append(r.Pix, row[i])
		}
	}
	return r
}

// LoadFrame converts a decoded image into the canonical RGB frame used by
// every analysis.
func LoadFrame(img image.Image) (*scope.Frame, error) {
	return scope.Normalize(ToRaster(img))
}
