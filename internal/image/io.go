package image

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
)

// ToStdImage converts the buffer to a standard library image.
// L8 becomes *image.Gray, the color formats become *image.RGBA.
func (b *Buffer) ToStdImage() image.Image {
	rect := image.Rect(0, 0, b.width, b.height)
	if b.format == FormatL8 {
		gray := image.NewGray(rect)
		for y := range b.height {
			copy(gray.Pix[y*gray.Stride:], b.RowBytes(y))
		}
		return gray
	}
	rgba := image.NewRGBA(rect)
	for y := range b.height {
		for x := range b.width {
			rgba.SetRGBA(x, y, b.At(x, y))
		}
	}
	return rgba
}

// EncodePNG encodes the buffer as PNG to w.
func (b *Buffer) EncodePNG(w io.Writer) error {
	if err := png.Encode(w, b.ToStdImage()); err != nil {
		return fmt.Errorf("image: encode PNG: %w", err)
	}
	return nil
}

// SavePNG writes the buffer as a PNG file.
func (b *Buffer) SavePNG(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("image: create %s: %w", path, err)
	}
	if err := b.EncodePNG(f); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
