package imaging

import (
	"testing"

	"github.com/ironsheep/cinescope/internal/scope"
)

func TestDescribeColor(t *testing.T) {
	result := DescribeColor(scope.RGB{R: 255, G: 128, B: 64})

	if result.Hex != "#FF8040" {
		t.Errorf("Hex: got %s, want #FF8040", result.Hex)
	}
	if result.RGB != (scope.RGB{R: 255, G: 128, B: 64}) {
		t.Errorf("RGB: got %v", result.RGB)
	}
}

func TestDescribeColor_KnownColors(t *testing.T) {
	tests := []struct {
		name    string
		color   scope.RGB
		wantHex string
		wantHSL HSLColor
	}{
		{"pure red", scope.RGB{R: 255}, "#FF0000", HSLColor{0, 100, 50}},
		{"pure green", scope.RGB{G: 255}, "#00FF00", HSLColor{120, 100, 50}},
		{"pure blue", scope.RGB{B: 255}, "#0000FF", HSLColor{240, 100, 50}},
		{"white", scope.RGB{R: 255, G: 255, B: 255}, "#FFFFFF", HSLColor{0, 0, 100}},
		{"black", scope.RGB{}, "#000000", HSLColor{0, 0, 0}},
		{"gray", scope.RGB{R: 128, G: 128, B: 128}, "#808080", HSLColor{0, 0, 50}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := DescribeColor(tt.color)
			if result.Hex != tt.wantHex {
				t.Errorf("Hex: got %s, want %s", result.Hex, tt.wantHex)
			}
			if result.HSL != tt.wantHSL {
				t.Errorf("HSL: got %+v, want %+v", result.HSL, tt.wantHSL)
			}
		})
	}
}

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		in      string
		want    scope.RGB
		wantErr bool
	}{
		{"#ff0000", scope.RGB{R: 255}, false},
		{"#800080", scope.RGB{R: 128, B: 128}, false},
		{"#FFFF00", scope.RGB{R: 255, G: 255}, false},
		{"#0f0", scope.RGB{G: 255}, false},
		{" #0000ff ", scope.RGB{B: 255}, false},
		{"red", scope.RGB{}, true},
		{"", scope.RGB{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseHexColor(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseHexColor(%q): err %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("ParseHexColor(%q): got %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}
