package fonts

import (
	"bytes"
	"image"
	"image/draw"
	"image/png"
	"math"

	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/font/opentype/tables"
	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"

	"github.com/gogpu/textkit/text"
)

// italicShear is the horizontal offset per pixel of height for synthetic italics.
const italicShear = 0.2

// GlyphBitmap implements Service.
// Bitmaps are cached per font, glyph and synthesis, including misses.
func (r *Registry) GlyphBitmap(id text.FontID, glyph uint32, synth Synthesis) (*Bitmap, bool) {
	key := bitmapKey{id: id, glyph: glyph, synth: synth}
	if b, ok := r.bitmaps.get(key); ok {
		return b, b != nil
	}
	f, size, ok := r.lookup(id)
	if !ok {
		return nil, false
	}

	var b *Bitmap
	if f.color {
		b = r.colorBitmap(f, size, glyph)
	}
	if b == nil {
		b = outlineBitmap(f, r.pixelSize(size), glyph, synth)
	}
	r.bitmaps.set(key, b)
	return b, b != nil
}

// outlineBitmap rasterizes a vector glyph into a coverage mask.
func outlineBitmap(f *face, px float32, glyph uint32, synth Synthesis) *Bitmap {
	var buf sfnt.Buffer
	segs, err := f.sf.LoadGlyph(&buf, sfnt.GlyphIndex(glyph), floatToFixed(px), nil)
	if err != nil || len(segs) == 0 {
		return nil
	}

	shear := float32(0)
	if synth.Italic {
		shear = italicShear
	}
	// sfnt points have y growing downwards, so the top of a glyph is negative.
	pt := func(p fixed.Point26_6) (float32, float32) {
		x, y := fixedToFloat(p.X), fixedToFloat(p.Y)
		return x - y*shear, y
	}

	minX, minY := float32(math.MaxFloat32), float32(math.MaxFloat32)
	maxX, maxY := -minX, -minY
	for _, s := range segs {
		for i := 0; i < segmentArgs(s.Op); i++ {
			x, y := pt(s.Args[i])
			minX, maxX = min(minX, x), max(maxX, x)
			minY, maxY = min(minY, y), max(maxY, y)
		}
	}
	left, top := int(math.Floor(float64(minX))), int(math.Floor(float64(minY)))
	w := int(math.Ceil(float64(maxX))) - left
	h := int(math.Ceil(float64(maxY))) - top
	if w <= 0 || h <= 0 {
		return nil
	}

	ras := vector.NewRasterizer(w, h)
	ras.DrawOp = draw.Src
	ox, oy := float32(left), float32(top)
	for _, s := range segs {
		x0, y0 := pt(s.Args[0])
		switch s.Op {
		case sfnt.SegmentOpMoveTo:
			ras.MoveTo(x0-ox, y0-oy)
		case sfnt.SegmentOpLineTo:
			ras.LineTo(x0-ox, y0-oy)
		case sfnt.SegmentOpQuadTo:
			x1, y1 := pt(s.Args[1])
			ras.QuadTo(x0-ox, y0-oy, x1-ox, y1-oy)
		case sfnt.SegmentOpCubeTo:
			x1, y1 := pt(s.Args[1])
			x2, y2 := pt(s.Args[2])
			ras.CubeTo(x0-ox, y0-oy, x1-ox, y1-oy, x2-ox, y2-oy)
		}
	}
	ras.ClosePath()

	mask := image.NewAlpha(image.Rect(0, 0, w, h))
	ras.Draw(mask, mask.Bounds(), image.Opaque, image.Point{})
	if synth.Bold {
		mask = embolden(mask)
	}
	return &Bitmap{Image: mask, Left: left, Top: -top}
}

// segmentArgs returns how many points of Segment.Args an op uses.
func segmentArgs(op sfnt.SegmentOp) int {
	switch op {
	case sfnt.SegmentOpQuadTo:
		return 2
	case sfnt.SegmentOpCubeTo:
		return 3
	default:
		return 1
	}
}

// embolden widens a mask by one pixel, keeping the brighter of each pixel
// and its left neighbour.
func embolden(src *image.Alpha) *image.Alpha {
	b := src.Bounds()
	dst := image.NewAlpha(image.Rect(0, 0, b.Dx()+1, b.Dy()))
	for y := 0; y < b.Dy(); y++ {
		for x := 0; x <= b.Dx(); x++ {
			var a, prev uint8
			if x < b.Dx() {
				a = src.AlphaAt(x, y).A
			}
			if x > 0 {
				prev = src.AlphaAt(x-1, y).A
			}
			dst.Pix[y*dst.Stride+x] = max(a, prev)
		}
	}
	return dst
}

// colorBitmap decodes a PNG glyph from sbix or CBDT and scales it to the
// line height of the font at size.
func (r *Registry) colorBitmap(f *face, size text.PointSize26Dot6, glyph uint32) *Bitmap {
	px := r.pixelSize(size)
	gf := font.NewFace(f.gt)
	ppem := uint16(math.Round(float64(px)))
	gf.SetPpem(ppem, ppem)

	data, ok := gf.GlyphDataBitmap(tables.GlyphID(glyph))
	if !ok || data.Format != font.PNG {
		return nil
	}
	src, err := png.Decode(bytes.NewReader(data.Data))
	if err != nil {
		return nil
	}
	sb := src.Bounds()
	if sb.Dx() == 0 || sb.Dy() == 0 {
		return nil
	}

	m := r.metricsFor(f, size)
	h := int(math.Round(float64(m.Ascender - m.Descender)))
	w := int(math.Round(float64(h) * float64(sb.Dx()) / float64(sb.Dy())))
	if w <= 0 || h <= 0 {
		return nil
	}
	dst := image.NewNRGBA(image.Rect(0, 0, w, h))
	xdraw.ApproxBiLinear.Scale(dst, dst.Bounds(), src, sb, xdraw.Src, nil)
	return &Bitmap{Image: dst, Top: int(math.Round(float64(m.Ascender))), IsColor: true}
}
