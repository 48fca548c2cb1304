package image

import (
	"errors"
	"image/color"
)

// Common errors for buffer operations.
var (
	// ErrInvalidDimensions is returned when width or height is non-positive.
	ErrInvalidDimensions = errors.New("image: invalid dimensions")

	// ErrUnsupportedFormat is returned when the format is not one of L8,
	// RGBA8 or BGRA8.
	ErrUnsupportedFormat = errors.New("image: unsupported format")
)

// Buffer is a contiguous pixel buffer with premultiplied alpha.
//
// Pixels are addressed from the top-left corner. Writes outside the
// buffer are ignored.
//
// Buffer is not safe for concurrent writes.
type Buffer struct {
	data   []byte
	width  int
	height int
	stride int
	format Format
}

// NewBuffer creates a transparent buffer with the given dimensions and format.
func NewBuffer(width, height int, format Format) (*Buffer, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimensions
	}
	if !format.IsValid() {
		return nil, ErrUnsupportedFormat
	}
	stride := format.RowBytes(width)
	return &Buffer{
		data:   make([]byte, stride*height),
		width:  width,
		height: height,
		stride: stride,
		format: format,
	}, nil
}

// Clone creates a deep copy of the buffer.
func (b *Buffer) Clone() *Buffer {
	c := *b
	c.data = append([]byte(nil), b.data...)
	return &c
}

// Width returns the buffer width in pixels.
func (b *Buffer) Width() int {
	return b.width
}

// Height returns the buffer height in pixels.
func (b *Buffer) Height() int {
	return b.height
}

// Stride returns the number of bytes per row.
func (b *Buffer) Stride() int {
	return b.stride
}

// Format returns the pixel format.
func (b *Buffer) Format() Format {
	return b.format
}

// Data returns the raw pixel data.
func (b *Buffer) Data() []byte {
	return b.data
}

// RowBytes returns the pixel data of row y, or nil if y is out of bounds.
func (b *Buffer) RowBytes(y int) []byte {
	if y < 0 || y >= b.height {
		return nil
	}
	start := y * b.stride
	return b.data[start : start+b.format.RowBytes(b.width)]
}

// PixelOffset returns the byte offset of pixel (x, y), or -1 if the
// coordinates are out of bounds.
func (b *Buffer) PixelOffset(x, y int) int {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return -1
	}
	return y*b.stride + x*b.format.BytesPerPixel()
}

// At returns the premultiplied color of pixel (x, y). An L8 pixel reads as
// white with its coverage as alpha. Out of bounds pixels are transparent.
func (b *Buffer) At(x, y int) color.RGBA {
	off := b.PixelOffset(x, y)
	if off < 0 {
		return color.RGBA{}
	}
	if b.format == FormatL8 {
		v := b.data[off]
		return color.RGBA{R: v, G: v, B: v, A: v}
	}
	info := b.format.Info()
	p := b.data[off : off+4]
	return color.RGBA{R: p[info.RedOffset], G: p[1], B: p[info.BlueOffset], A: p[3]}
}

// Set replaces pixel (x, y). L8 stores the alpha of c.
func (b *Buffer) Set(x, y int, c color.RGBA) {
	off := b.PixelOffset(x, y)
	if off < 0 {
		return
	}
	if b.format == FormatL8 {
		b.data[off] = c.A
		return
	}
	info := b.format.Info()
	p := b.data[off : off+4]
	p[info.RedOffset], p[1], p[info.BlueOffset], p[3] = c.R, c.G, c.B, c.A
}

// Blend composites the premultiplied color c over pixel (x, y).
func (b *Buffer) Blend(x, y int, c color.RGBA) {
	if c.A == 0 {
		return
	}
	off := b.PixelOffset(x, y)
	if off < 0 {
		return
	}
	inv := 255 - uint32(c.A)
	if b.format == FormatL8 {
		b.data[off] = over(c.A, b.data[off], inv)
		return
	}
	info := b.format.Info()
	p := b.data[off : off+4]
	p[info.RedOffset] = over(c.R, p[info.RedOffset], inv)
	p[1] = over(c.G, p[1], inv)
	p[info.BlueOffset] = over(c.B, p[info.BlueOffset], inv)
	p[3] = over(c.A, p[3], inv)
}

// BlendCoverage composites c scaled by coverage over pixel (x, y).
func (b *Buffer) BlendCoverage(x, y int, c color.RGBA, coverage uint8) {
	if coverage == 0 {
		return
	}
	b.Blend(x, y, Scale(c, coverage))
}

// FillRect blends c over the pixels of [x0, x1) x [y0, y1), clipped to the
// buffer.
func (b *Buffer) FillRect(x0, y0, x1, y1 int, c color.RGBA) {
	x0, y0 = max(x0, 0), max(y0, 0)
	x1, y1 = min(x1, b.width), min(y1, b.height)
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			b.Blend(x, y, c)
		}
	}
}

// Clear sets every pixel to transparent.
func (b *Buffer) Clear() {
	clear(b.data)
}

// IsTransparent reports whether every pixel has zero alpha.
func (b *Buffer) IsTransparent() bool {
	for y := range b.height {
		for x := range b.width {
			if b.At(x, y).A != 0 {
				return false
			}
		}
	}
	return true
}

// ByteSize returns the total size of the pixel data in bytes.
func (b *Buffer) ByteSize() int {
	return len(b.data)
}

// Scale multiplies every channel of the premultiplied color c by a/255.
func Scale(c color.RGBA, a uint8) color.RGBA {
	if a == 255 {
		return c
	}
	s := uint32(a)
	return color.RGBA{
		R: uint8((uint32(c.R)*s + 127) / 255),
		G: uint8((uint32(c.G)*s + 127) / 255),
		B: uint8((uint32(c.B)*s + 127) / 255),
		A: uint8((uint32(c.A)*s + 127) / 255),
	}
}

// over returns src + dst*inv/255.
func over(src, dst uint8, inv uint32) uint8 {
	v := uint32(src) + (uint32(dst)*inv+127)/255
	if v > 255 {
		v = 255
	}
	return uint8(v)
}
