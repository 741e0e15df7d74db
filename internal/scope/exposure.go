package scope

import (
	"encoding/json"
	"fmt"
	"math"

	"github.com/anthonynsimon/bild/parallel"
)

// Band maps the half-open brightness range [Low, High) to a flat color.
// Brightness is a percentage in [0, 100]; use math.Inf(1) for a band that is
// open at the top.
type Band struct {
	Low   float64
	High  float64
	Color RGB
}

// Contains reports whether brightness falls inside the band.
func (b Band) Contains(brightness float64) bool {
	return brightness >= b.Low && brightness < b.High
}

type bandJSON struct {
	Low   float64  `json:"low"`
	High  *float64 `json:"high"`
	Color RGB      `json:"color"`
}

// MarshalJSON encodes an open upper bound as null.
func (b Band) MarshalJSON() ([]byte, error) {
	out := bandJSON{Low: b.Low, Color: b.Color}
	if !math.IsInf(b.High, 1) {
		high := b.High
		out.High = &high
	}
	return json.Marshal(out)
}

// Profile is a named false-color convention. Bands are evaluated in order and
// the first band containing a pixel's brightness colors it. A profile without
// bands passes frames through unchanged.
type Profile struct {
	Name  string `json:"name"`
	Bands []Band `json:"bands"`
}

// PassThrough reports whether the profile leaves frames untouched.
func (p Profile) PassThrough() bool {
	return len(p.Bands) == 0
}

// Validate checks that every band is a non-empty range starting at or above 0.
func (p Profile) Validate() error {
	if p.Name == "" {
		return fmt.Errorf("profile name is empty")
	}
	for i, b := range p.Bands {
		if math.IsNaN(b.Low) || math.IsNaN(b.High) {
			return fmt.Errorf("profile %s band %d: NaN bound", p.Name, i)
		}
		if b.Low < 0 {
			return fmt.Errorf("profile %s band %d: low %.2f below 0", p.Name, i, b.Low)
		}
		if b.Low >= b.High {
			return fmt.Errorf("profile %s band %d: low %.2f not below high %.2f", p.Name, i, b.Low, b.High)
		}
	}
	return nil
}

// classify returns the overlay color for a brightness percentage.
func (p Profile) classify(brightness float64) RGB {
	for _, b := range p.Bands {
		if b.Contains(brightness) {
			return b.Color
		}
	}
	g := uint8(math.Round(brightness / 100 * 255))
	return RGB{R: g, G: g, B: g}
}

// False-color palette shared by the built-in profiles.
var (
	Red     = RGB{R: 255}
	Yellow  = RGB{R: 255, G: 255}
	Magenta = RGB{R: 255, B: 255}
	Green   = RGB{G: 255}
	Blue    = RGB{B: 255}
	Purple  = RGB{R: 128, B: 128}
)

// BuiltinProfiles returns the camera conventions known out of the box. RED
// and Sony are registered without bands and therefore pass frames through.
func BuiltinProfiles() []Profile {
	open := math.Inf(1)
	return []Profile{
		{
			Name: "ARRI",
			Bands: []Band{
				{Low: 99, High: open, Color: Red},
				{Low: 97, High: 99, Color: Yellow},
				{Low: 52, High: 56, Color: Magenta},
				{Low: 38, High: 42, Color: Green},
				{Low: 2.5, High: 4, Color: Blue},
				{Low: 0, High: 2.5, Color: Purple},
			},
		},
		{
			Name: "Blackmagic",
			Bands: []Band{
				{Low: 91, High: open, Color: Red},
				{Low: 88, High: 91, Color: Yellow},
				{Low: 45, High: 50, Color: Magenta},
				{Low: 36, High: 42, Color: Green},
				{Low: 15, High: 18, Color: Blue},
				{Low: 0, High: 15, Color: Purple},
			},
		},
		{Name: "RED"},
		{Name: "Sony"},
	}
}

// ProfileSet is an immutable registry of profiles keyed by exact name.
type ProfileSet struct {
	byName map[string]Profile
	order  []string
}

// NewProfileSet validates and registers profiles. A later profile replaces an
// earlier one with the same name but keeps its position.
func NewProfileSet(profiles ...Profile) (*ProfileSet, error) {
	s := &ProfileSet{byName: make(map[string]Profile, len(profiles))}
	for _, p := range profiles {
		if err := p.Validate(); err != nil {
			return nil, err
		}
		if _, ok := s.byName[p.Name]; !ok {
			s.order = append(s.order, p.Name)
		}
		bands := make([]Band, len(p.Bands))
		copy(bands, p.Bands)
		s.byName[p.Name] = Profile{Name: p.Name, Bands: bands}
	}
	return s, nil
}

// DefaultProfileSet returns a set holding only the built-in profiles.
func DefaultProfileSet() *ProfileSet {
	s, err := NewProfileSet(BuiltinProfiles()...)
	if err != nil {
		panic(err)
	}
	return s
}

// Lookup returns the profile registered under name.
func (s *ProfileSet) Lookup(name string) (Profile, bool) {
	p, ok := s.byName[name]
	return p, ok
}

// Names lists registered profile names in registration order.
func (s *ProfileSet) Names() []string {
	return append([]string(nil), s.order...)
}

// Profiles lists registered profiles in registration order.
func (s *ProfileSet) Profiles() []Profile {
	out := make([]Profile, 0, len(s.order))
	for _, name := range s.order {
		out = append(out, s.byName[name])
	}
	return out
}

// FalseColor applies the named profile to f. Names without a band table,
// including unknown names, return an unchanged copy of f.
func (s *ProfileSet) FalseColor(f *Frame, name string) *Frame {
	p, ok := s.Lookup(name)
	if !ok {
		p = Profile{Name: name}
	}
	return ApplyProfile(f, p)
}

// Brightness returns max(r, g, b) as a percentage of full scale.
func Brightness(r, g, b uint8) float64 {
	return float64(max(r, g, b)) / 255.0 * 100.0
}

// ApplyProfile renders the false-color overlay of f under p into a new frame.
// Pixels inside a band take the band color; all others become the gray level
// matching their brightness.
func ApplyProfile(f *Frame, p Profile) *Frame {
	out := NewFrame(f.Width, f.Height)
	if p.PassThrough() {
		copy(out.Pix, f.Pix)
		return out
	}

	rowBytes := f.Width * 3
	parallel.Line(f.Height, func(start, end int) {
		for i := start * rowBytes; i < end*rowBytes; i += 3 {
			c := p.classify(Brightness(f.Pix[i], f.Pix[i+1], f.Pix[i+2]))
			out.Pix[i], out.Pix[i+1], out.Pix[i+2] = c.R, c.G, c.B
		}
	})
	return out
}
