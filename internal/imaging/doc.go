// Package imaging connects encoded image files to the scope analysis engine.
//
// This package handles everything the engine deliberately knows nothing about:
// reading and decoding files or base64 payloads, converting Go image.Image
// values into scope.Raster buffers, re-encoding analysis output as PNG, and
// reporting image metadata. Decoding and encoding are delegated to
// github.com/disintegration/imaging, which also registers BMP and TIFF
// support from golang.org/x/image.
//
// # Coordinate System
//
// All pixel coordinates in this package are 0-based:
//   - X: horizontal position (0 = leftmost pixel)
//   - Y: vertical position (0 = topmost pixel)
//   - For regions, (x1,y1) is inclusive (top-left), (x2,y2) is exclusive (bottom-right)
//
// # Supported Formats
//
// Files are accepted by extension: .png, .jpg, .jpeg, .bmp, .tif, .tiff and
// .gif. Base64 payloads may be raw or wrapped in a data URL
// ("data:image/png;base64,..."). Both paths enforce a byte limit so a single
// request cannot hand the engine an arbitrarily large buffer.
//
// # Channel Mapping
//
// ToRaster keeps the channel layout of the decoded image where Go exposes it:
//   - *image.Gray, *image.Gray16: 1 channel (16-bit samples keep the high byte)
//   - *image.NRGBA: 4 channels
//   - anything else: converted to non-premultiplied NRGBA, 4 channels
//
// # Thread Safety
//
// The ImageCache type is safe for concurrent use. All other functions are
// stateless.
package imaging
