package image

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"testing"
)

func TestNewBuffer(t *testing.T) {
	tests := []struct {
		name    string
		width   int
		height  int
		format  Format
		wantErr error
	}{
		{"valid RGBA8", 100, 100, FormatRGBA8, nil},
		{"valid BGRA8", 10, 20, FormatBGRA8, nil},
		{"valid L8", 50, 50, FormatL8, nil},
		{"1x1 minimum", 1, 1, FormatRGBA8, nil},
		{"zero width", 0, 100, FormatRGBA8, ErrInvalidDimensions},
		{"zero height", 100, 0, FormatRGBA8, ErrInvalidDimensions},
		{"negative width", -1, 100, FormatRGBA8, ErrInvalidDimensions},
		{"invalid format", 100, 100, Format(255), ErrUnsupportedFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf, err := NewBuffer(tt.width, tt.height, tt.format)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("NewBuffer() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil {
				return
			}
			if buf.Width() != tt.width || buf.Height() != tt.height || buf.Format() != tt.format {
				t.Errorf("got %dx%d %v", buf.Width(), buf.Height(), buf.Format())
			}
			if want := tt.format.ImageBytes(tt.width, tt.height); buf.ByteSize() != want {
				t.Errorf("ByteSize() = %d, want %d", buf.ByteSize(), want)
			}
			if !buf.IsTransparent() {
				t.Error("new buffer is not transparent")
			}
		})
	}
}

func TestFormat(t *testing.T) {
	tests := []struct {
		format Format
		name   string
		bpp    int
		color  bool
	}{
		{FormatL8, "L8", 1, false},
		{FormatRGBA8, "RGBA8", 4, true},
		{FormatBGRA8, "BGRA8", 4, true},
		{Format(42), "Unknown", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.format.String(); got != tt.name {
				t.Errorf("String() = %q, want %q", got, tt.name)
			}
			if got := tt.format.BytesPerPixel(); got != tt.bpp {
				t.Errorf("BytesPerPixel() = %d, want %d", got, tt.bpp)
			}
			if got := tt.format.HasColor(); got != tt.color {
				t.Errorf("HasColor() = %v, want %v", got, tt.color)
			}
			f, ok := ParseFormat(tt.name)
			if ok != tt.format.IsValid() || (ok && f != tt.format) {
				t.Errorf("ParseFormat(%q) = %v, %v", tt.name, f, ok)
			}
		})
	}
	if f, ok := ParseFormat("bgra8"); !ok || f != FormatBGRA8 {
		t.Errorf("ParseFormat(bgra8) = %v, %v", f, ok)
	}
}

func TestBuffer_SetAt(t *testing.T) {
	c := color.RGBA{R: 10, G: 20, B: 30, A: 40}
	tests := []struct {
		format Format
		raw    []byte
		want   color.RGBA
	}{
		{FormatRGBA8, []byte{10, 20, 30, 40}, c},
		{FormatBGRA8, []byte{30, 20, 10, 40}, c},
		{FormatL8, []byte{40}, color.RGBA{R: 40, G: 40, B: 40, A: 40}},
	}
	for _, tt := range tests {
		t.Run(tt.format.String(), func(t *testing.T) {
			buf, _ := NewBuffer(2, 2, tt.format)
			buf.Set(1, 1, c)
			off := buf.PixelOffset(1, 1)
			if got := buf.Data()[off : off+len(tt.raw)]; !bytes.Equal(got, tt.raw) {
				t.Errorf("raw pixel = %v, want %v", got, tt.raw)
			}
			if got := buf.At(1, 1); got != tt.want {
				t.Errorf("At() = %v, want %v", got, tt.want)
			}
			buf.Set(5, 5, c)
			if got := buf.At(-1, 0); got != (color.RGBA{}) {
				t.Errorf("out of bounds At() = %v", got)
			}
		})
	}
}

func TestBuffer_Blend(t *testing.T) {
	buf, _ := NewBuffer(1, 1, FormatRGBA8)
	buf.Set(0, 0, color.RGBA{B: 255, A: 255})
	buf.Blend(0, 0, color.RGBA{R: 128, A: 128})
	got := buf.At(0, 0)
	if got.R != 128 || got.B != 127 || got.A != 255 {
		t.Errorf("Blend() = %v, want {128 0 127 255}", got)
	}

	mask, _ := NewBuffer(1, 1, FormatL8)
	mask.BlendCoverage(0, 0, color.RGBA{R: 255, G: 255, B: 255, A: 255}, 128)
	mask.BlendCoverage(0, 0, color.RGBA{R: 255, G: 255, B: 255, A: 255}, 128)
	if got := mask.At(0, 0).A; got != 192 {
		t.Errorf("L8 coverage = %d, want 192", got)
	}
}

func TestBuffer_FillRect(t *testing.T) {
	buf, _ := NewBuffer(4, 4, FormatL8)
	buf.FillRect(-2, 1, 2, 10, color.RGBA{A: 255})
	for y := range 4 {
		for x := range 4 {
			want := uint8(0)
			if x < 2 && y >= 1 {
				want = 255
			}
			if got := buf.At(x, y).A; got != want {
				t.Errorf("pixel (%d,%d) = %d, want %d", x, y, got, want)
			}
		}
	}
	buf.Clear()
	if !buf.IsTransparent() {
		t.Error("Clear() left opaque pixels")
	}
}

func TestComposite(t *testing.T) {
	dst, _ := NewBuffer(3, 3, FormatBGRA8)
	src, _ := NewBuffer(2, 2, FormatRGBA8)
	src.Set(0, 0, color.RGBA{R: 255, A: 255})
	src.Set(1, 1, color.RGBA{G: 255, A: 255})

	Composite(dst, src, 1, 1)
	if got := dst.At(1, 1); got != (color.RGBA{R: 255, A: 255}) {
		t.Errorf("At(1,1) = %v", got)
	}
	if got := dst.At(2, 2); got != (color.RGBA{G: 255, A: 255}) {
		t.Errorf("At(2,2) = %v", got)
	}
	if got := dst.At(0, 0); got.A != 0 {
		t.Errorf("At(0,0) = %v, want transparent", got)
	}
}

func TestDrawMaskAndImage(t *testing.T) {
	mask := image.NewAlpha(image.Rect(0, 0, 2, 1))
	mask.SetAlpha(0, 0, color.Alpha{A: 255})
	mask.SetAlpha(1, 0, color.Alpha{A: 0})

	dst, _ := NewBuffer(3, 1, FormatRGBA8)
	DrawMask(dst, mask, 1, 0, color.RGBA{B: 255, A: 255})
	if got := dst.At(1, 0); got != (color.RGBA{B: 255, A: 255}) {
		t.Errorf("masked pixel = %v", got)
	}
	if got := dst.At(2, 0); got.A != 0 {
		t.Errorf("uncovered pixel = %v", got)
	}

	src := image.NewNRGBA(image.Rect(0, 0, 1, 1))
	src.SetNRGBA(0, 0, color.NRGBA{R: 255, A: 255})
	DrawImage(dst, src, 0, 0, 255)
	if got := dst.At(0, 0); got != (color.RGBA{R: 255, A: 255}) {
		t.Errorf("image pixel = %v", got)
	}
}

func TestBuffer_EncodePNG(t *testing.T) {
	for _, f := range []Format{FormatL8, FormatRGBA8, FormatBGRA8} {
		t.Run(f.String(), func(t *testing.T) {
			buf, _ := NewBuffer(2, 1, f)
			buf.Set(0, 0, color.RGBA{R: 255, G: 255, B: 255, A: 255})
			var out bytes.Buffer
			if err := buf.EncodePNG(&out); err != nil {
				t.Fatalf("EncodePNG() error = %v", err)
			}
			img, err := png.Decode(&out)
			if err != nil {
				t.Fatalf("png.Decode() error = %v", err)
			}
			if img.Bounds().Dx() != 2 || img.Bounds().Dy() != 1 {
				t.Errorf("decoded bounds = %v", img.Bounds())
			}
			if _, _, _, a := img.At(0, 0).RGBA(); a != 0xffff {
				t.Errorf("decoded alpha = %#x, want 0xffff", a)
			}
		})
	}
}

func TestPool(t *testing.T) {
	p := NewPool(1)
	a, err := p.Get(4, 4, FormatRGBA8)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	a.Set(0, 0, color.RGBA{A: 255})
	p.Put(a)
	b, _ := p.Get(4, 4, FormatRGBA8)
	p.Put(b)
	p.Put(b.Clone())
	if p.Len() != 1 {
		t.Errorf("Len() = %d, want 1", p.Len())
	}

	if b != a {
		t.Error("Get() did not reuse the pooled buffer")
	}
	if !b.IsTransparent() {
		t.Error("reused buffer was not cleared")
	}
	if _, err := p.Get(0, 4, FormatL8); !errors.Is(err, ErrInvalidDimensions) {
		t.Errorf("Get(0, 4) error = %v", err)
	}
}
