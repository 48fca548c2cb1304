// Package image provides the pixel buffers text is rendered into.
//
// Color formats store premultiplied alpha. L8 stores coverage only.
package image

import "strings"

// Format is a pixel storage format.
type Format uint8

const (
	// FormatL8 is 8-bit luminance, used for coverage masks (1 byte per pixel).
	FormatL8 Format = iota

	// FormatRGBA8 is 32-bit premultiplied RGBA (4 bytes per pixel).
	FormatRGBA8

	// FormatBGRA8 is 32-bit premultiplied BGRA (4 bytes per pixel).
	// Common on Windows and some GPU surfaces.
	FormatBGRA8

	formatCount
)

// FormatInfo contains metadata about a pixel format.
type FormatInfo struct {
	// BytesPerPixel is the number of bytes per pixel.
	BytesPerPixel int

	// Channels is the number of channels.
	Channels int

	// HasColor reports whether the format stores color channels.
	HasColor bool

	// RedOffset and BlueOffset locate the red and blue channels in a pixel.
	RedOffset, BlueOffset int
}

var formatInfoTable = [formatCount]FormatInfo{
	FormatL8: {
		BytesPerPixel: 1,
		Channels:      1,
	},
	FormatRGBA8: {
		BytesPerPixel: 4,
		Channels:      4,
		HasColor:      true,
		RedOffset:     0,
		BlueOffset:    2,
	},
	FormatBGRA8: {
		BytesPerPixel: 4,
		Channels:      4,
		HasColor:      true,
		RedOffset:     2,
		BlueOffset:    0,
	},
}

// Info returns the FormatInfo for this format.
func (f Format) Info() FormatInfo {
	if f >= formatCount {
		return FormatInfo{}
	}
	return formatInfoTable[f]
}

// BytesPerPixel returns the number of bytes per pixel for this format.
func (f Format) BytesPerPixel() int {
	return f.Info().BytesPerPixel
}

// HasColor returns true for the RGBA and BGRA formats.
func (f Format) HasColor() bool {
	return f.Info().HasColor
}

// String returns a string representation of the format.
func (f Format) String() string {
	switch f {
	case FormatL8:
		return "L8"
	case FormatRGBA8:
		return "RGBA8"
	case FormatBGRA8:
		return "BGRA8"
	default:
		return "Unknown"
	}
}

// ParseFormat parses "l8", "rgba8" or "bgra8", case insensitively.
func ParseFormat(s string) (Format, bool) {
	for f := range formatCount {
		if strings.EqualFold(s, f.String()) {
			return f, true
		}
	}
	return 0, false
}

// IsValid returns true if the format is a valid known format.
func (f Format) IsValid() bool {
	return f < formatCount
}

// RowBytes calculates the number of bytes needed for a row of the given width.
func (f Format) RowBytes(width int) int {
	return width * f.BytesPerPixel()
}

// ImageBytes calculates the total number of bytes needed for an image.
func (f Format) ImageBytes(width, height int) int {
	return f.RowBytes(width) * height
}
