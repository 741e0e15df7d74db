package imaging

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/disintegration/imaging"
)

// DefaultMaxBytes is the default size limit for a single encoded image (35 MiB).
const DefaultMaxBytes int64 = 35 * 1024 * 1024

// formats maps accepted file extensions to their format names.
var formats = map[string]string{
	".png":  "png",
	".jpg":  "jpeg",
	".jpeg": "jpeg",
	".bmp":  "bmp",
	".tif":  "tiff",
	".tiff": "tiff",
	".gif":  "gif",
}

// FormatName returns the format name for a file path based on its extension,
// or an error when the extension is not accepted.
func FormatName(path string) (string, error) {
	format, ok := formats[strings.ToLower(filepath.Ext(path))]
	if !ok {
		return "", fmt.Errorf("file type not allowed: %s", filepath.Base(path))
	}
	return format, nil
}

// ImageCache provides thread-safe caching of decoded images keyed by file path.
//
// Once an image is loaded, subsequent Load() calls for the same path return the
// cached copy without decoding again, as long as the file's size and
// modification time are unchanged. A changed file is decoded afresh and
// replaces its entry. Cached images remain in memory until removed via
// Evict() or Clear().
//
//	cache := imaging.NewImageCache(imaging.DefaultMaxBytes)
//	img, err := cache.Load("/path/to/frame.tiff")
//	if err != nil {
//	    return err
//	}
//	cache.Evict("/path/to/frame.tiff") // Optional: free memory
type ImageCache struct {
	mu       sync.RWMutex
	images   map[string]cachedImage
	maxBytes int64
}

type cachedImage struct {
	img     image.Image
	size    int64
	modTime time.Time
}

// NewImageCache creates an empty cache that refuses files larger than
// maxBytes. A non-positive limit selects DefaultMaxBytes.
func NewImageCache(maxBytes int64) *ImageCache {
	if maxBytes <= 0 {
		maxBytes = DefaultMaxBytes
	}
	return &ImageCache{
		images:   make(map[string]cachedImage),
		maxBytes: maxBytes,
	}
}

// MaxBytes returns the size limit enforced by Load.
func (c *ImageCache) MaxBytes() int64 {
	return c.maxBytes
}

// Load retrieves an image from the cache or decodes it from disk.
//
// The file extension must be one of the accepted formats and the file must
// not exceed the cache's size limit. EXIF orientation is applied while
// decoding, so the returned image is upright.
func (c *ImageCache) Load(path string) (image.Image, error) {
	if _, err := FormatName(path); err != nil {
		return nil, err
	}

	stat, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image: %w", err)
	}

	c.mu.RLock()
	entry, ok := c.images[path]
	c.mu.RUnlock()
	if ok && entry.size == stat.Size() && entry.modTime.Equal(stat.ModTime()) {
		return entry.img, nil
	}

	if stat.Size() > c.maxBytes {
		return nil, fmt.Errorf("image %s is %d bytes, limit is %d", filepath.Base(path), stat.Size(), c.maxBytes)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image: %w", err)
	}
	defer f.Close()

	img, err := imaging.Decode(f, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	c.mu.Lock()
	c.images[path] = cachedImage{img: img, size: stat.Size(), modTime: stat.ModTime()}
	c.mu.Unlock()

	return img, nil
}

// Clear removes all images from the cache.
func (c *ImageCache) Clear() {
	c.mu.Lock()
	c.images = make(map[string]cachedImage)
	c.mu.Unlock()
}

// Evict removes a specific image from the cache by its path.
func (c *ImageCache) Evict(path string) {
	c.mu.Lock()
	delete(c.images, path)
	c.mu.Unlock()
}

// DecodeBase64 decodes an image sent inline as base64, either raw or as a
// data URL. Payloads whose decoded size would exceed maxBytes are rejected
// before decoding.
func DecodeBase64(data string, maxBytes int64) (image.Image, error) {
	if maxBytes <= 0 {
		maxBytes = DefaultMaxBytes
	}

	payload := strings.TrimSpace(data)
	if strings.HasPrefix(payload, "data:") {
		idx := strings.Index(payload, ",")
		if idx < 0 {
			return nil, fmt.Errorf("malformed data URL")
		}
		payload = payload[idx+1:]
	}
	if payload == "" {
		return nil, fmt.Errorf("no image provided")
	}
	if n := int64(base64.StdEncoding.DecodedLen(len(payload))); n > maxBytes {
		return nil, fmt.Errorf("image payload is about %d bytes, limit is %d", n, maxBytes)
	}

	raw, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to decode base64 image: %w", err)
	}

	img, err := imaging.Decode(bytes.NewReader(raw), imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}
	return img, nil
}

// ImageInfo contains metadata about a decoded image.
type ImageInfo struct {
	// Width is the image width in pixels.
	Width int `json:"width"`

	// Height is the image height in pixels.
	Height int `json:"height"`

	// AspectRatio is width/height, formatted by FormatAspectRatio.
	AspectRatio string `json:"aspect_ratio"`

	// Format is "png", "jpeg", "bmp", "tiff", "gif", or empty for inline images.
	Format string `json:"format,omitempty"`

	// ColorDepth indicates the bit depth per channel: "8-bit" or "16-bit".
	ColorDepth string `json:"color_depth"`

	// Channels is the channel count handed to the analysis engine (1 or 4).
	Channels int `json:"channels"`

	// HasAlpha indicates whether the decoded image carries an alpha channel.
	HasAlpha bool `json:"has_alpha"`

	// FileSizeBytes is the size of the image file on disk, 0 for inline images.
	FileSizeBytes int64 `json:"file_size_bytes,omitempty"`
}

// InfoFor describes an already decoded image.
func InfoFor(img image.Image) *ImageInfo {
	bounds := img.Bounds()

	hasAlpha := false
	colorDepth := "8-bit"
	channels := 4
	switch img.(type) {
	case *image.Gray:
		channels = 1
	case *image.Gray16:
		channels = 1
		colorDepth = "16-bit"
	case *image.RGBA, *image.NRGBA:
		hasAlpha = true
	case *image.RGBA64, *image.NRGBA64:
		hasAlpha = true
		colorDepth = "16-bit"
	}

	return &ImageInfo{
		Width:       bounds.Dx(),
		Height:      bounds.Dy(),
		AspectRatio: FormatAspectRatio(bounds.Dx(), bounds.Dy()),
		ColorDepth:  colorDepth,
		Channels:    channels,
		HasAlpha:    hasAlpha,
	}
}

// LoadImageInfo loads an image through the cache and returns its metadata,
// including the on-disk size and the format derived from the extension.
func LoadImageInfo(cache *ImageCache, path string) (*ImageInfo, error) {
	img, err := cache.Load(path)
	if err != nil {
		return nil, err
	}

	stat, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat file: %w", err)
	}
	format, err := FormatName(path)
	if err != nil {
		return nil, err
	}

	info := InfoFor(img)
	info.Format = format
	info.FileSizeBytes = stat.Size()
	return info, nil
}

// FormatAspectRatio renders width/height as an integer when the ratio is
// whole ("2" for 2:1) and with two decimals otherwise ("1.78" for 16:9).
func FormatAspectRatio(width, height int) string {
	if height == 0 {
		return "0"
	}
	ratio := float64(width) / float64(height)
	if ratio == math.Trunc(ratio) {
		return strconv.Itoa(int(ratio))
	}
	return fmt.Sprintf("%.2f", ratio)
}
