package scope

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidFormat is returned when a raster cannot be normalized.
	ErrInvalidFormat = errors.New("invalid raster format")

	// ErrOutOfBounds is returned when a coordinate falls outside a frame.
	ErrOutOfBounds = errors.New("coordinate out of bounds")
)

// FormatError describes a raster that Normalize rejected.
type FormatError struct {
	Width    int
	Height   int
	Channels int
	Samples  int    // length of the sample slice that was supplied
	Reason   string // short human-readable cause
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("%s: %s (%dx%d, %d channels, %d samples)",
		ErrInvalidFormat, e.Reason, e.Width, e.Height, e.Channels, e.Samples)
}

// Unwrap allows errors.Is(err, ErrInvalidFormat).
func (e *FormatError) Unwrap() error { return ErrInvalidFormat }

// BoundsError describes a probe coordinate outside the frame.
type BoundsError struct {
	X, Y          int
	Width, Height int
}

func (e *BoundsError) Error() string {
	return fmt.Sprintf("%s: (%d,%d) outside %dx%d frame", ErrOutOfBounds, e.X, e.Y, e.Width, e.Height)
}

// Unwrap allows errors.Is(err, ErrOutOfBounds).
func (e *BoundsError) Unwrap() error { return ErrOutOfBounds }
