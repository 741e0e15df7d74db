// Package scope implements the exposure and color analysis engine behind the
// cinescope tools.
//
// The engine works on decoded 8-bit pixel buffers and never touches files,
// codecs or the network. A decoded Raster is canonicalized once by Normalize
// into a 3-channel RGB Frame; every analysis then reads that Frame:
//
//   - ComputeHistogram: per-channel intensity counts (256 bins each)
//   - Vectorscope: up to MaxVectorscopePoints chrominance (u, v) samples
//   - ProfileSet.FalseColor / ApplyProfile: false-color exposure overlay
//   - Probe: color and chrominance of a single pixel
//
// # Coordinate System
//
// Pixels are stored row-major with (0,0) at the top-left corner. X grows to
// the right, Y grows downward.
//
// # Thread Safety
//
// All analysis functions are pure: they read their input Frame and allocate
// their own output. They may be called concurrently, including on the same
// Frame. ProfileSet is immutable after construction.
//
// # Error Handling
//
// Only two conditions are errors:
//   - ErrInvalidFormat: a Raster with an unsupported channel count or
//     inconsistent sample length (reported as *FormatError)
//   - ErrOutOfBounds: a probe coordinate outside the Frame (reported as
//     *BoundsError)
//
// An unknown exposure profile name is not an error; the Frame is returned
// unchanged.
package scope
