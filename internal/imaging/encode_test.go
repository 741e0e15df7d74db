package imaging

import (
	"encoding/base64"
	"image/color"
	"image/png"
	"path/filepath"
	"strings"
	"testing"
)

func TestEncodePNGBase64(t *testing.T) {
	img := createPatternImage(20, 10)

	encoded, err := EncodePNGBase64(img)
	if err != nil {
		t.Fatalf("EncodePNGBase64 failed: %v", err)
	}

	raw, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		t.Fatalf("failed to decode base64: %v", err)
	}
	decoded, err := png.Decode(strings.NewReader(string(raw)))
	if err != nil {
		t.Fatalf("output is not a PNG: %v", err)
	}
	if decoded.Bounds().Dx() != 20 || decoded.Bounds().Dy() != 10 {
		t.Errorf("dimensions: got %v", decoded.Bounds())
	}
}

func TestEncodePNGBase64_RoundTripsThroughDecode(t *testing.T) {
	img := createInMemoryImage(3, 3, color.RGBA{12, 34, 56, 255})

	encoded, err := EncodePNGBase64(img)
	if err != nil {
		t.Fatalf("EncodePNGBase64 failed: %v", err)
	}
	decoded, err := DecodeBase64(encoded, 0)
	if err != nil {
		t.Fatalf("DecodeBase64 failed: %v", err)
	}
	f, err := LoadFrame(decoded)
	if err != nil {
		t.Fatalf("LoadFrame failed: %v", err)
	}
	if got := f.At(1, 1); got.R != 12 || got.G != 34 || got.B != 56 {
		t.Errorf("pixel: got %v, want (12,34,56)", got)
	}
}

func TestPreview(t *testing.T) {
	img := createPatternImage(400, 200)

	tests := []struct {
		name         string
		maxDim       int
		wantW, wantH int
	}{
		{"disabled", 0, 400, 200},
		{"within bounds", 500, 400, 200},
		{"downscaled", 100, 100, 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := Preview(img, tt.maxDim).Bounds()
			if b.Dx() != tt.wantW || b.Dy() != tt.wantH {
				t.Errorf("got %dx%d, want %dx%d", b.Dx(), b.Dy(), tt.wantW, tt.wantH)
			}
		})
	}
}

func TestSave(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.png")

	if err := Save(createPatternImage(8, 8), path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	cache := NewImageCache(0)
	img, err := cache.Load(path)
	if err != nil {
		t.Fatalf("Load of saved image failed: %v", err)
	}
	if img.Bounds().Dx() != 8 {
		t.Errorf("width: got %d, want 8", img.Bounds().Dx())
	}
}

func TestSave_RejectsUnknownExtension(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.xyz")
	if err := Save(createPatternImage(8, 8), path); err == nil {
		t.Error("Save should fail for unsupported extension")
	}
}
