package typeset

import (
	goimage "image"
	"image/color"

	"github.com/chewxy/math32"

	"github.com/gogpu/textkit/internal/image"
	"github.com/gogpu/textkit/text"
	"github.com/gogpu/textkit/text/fonts"
)

// drawGlyphs draws the glyphs of the range in the color of the style.
func (ps *pass) drawGlyphs() {
	var shift text.Vector2
	if ps.p.Style == StyleShadow {
		shift = ps.v.ShadowOffset
	}
	ps.eachLine(func(l *text.LineRun, from, to text.GlyphIndex) {
		x0 := ps.lineOffset(l) + shift.X
		for g := from; g < to; g++ {
			if ps.isItem(g) {
				continue
			}
			pos := ps.v.GlyphPositions[g]
			ps.drawGlyph(g, round(x0+pos.X), round(pos.Y+ps.p.Offset.Y+shift.Y))
		}
	})
}

// drawGlyph draws glyph g with its pen at (x, baseline).
func (ps *pass) drawGlyph(g text.GlyphIndex, x, baseline int) {
	glyph := ps.v.Glyphs[g]
	bm, ok := ps.t.service.GlyphBitmap(glyph.FontID, glyph.Index, fonts.Synthesis{
		Bold:   glyph.IsBoldRequired,
		Italic: glyph.IsItalicRequired,
	})
	if !ok || bm == nil || bm.Image == nil {
		return
	}
	left, top := x+bm.Left, baseline-bm.Top

	switch {
	case ps.p.Style == StyleOutline:
		r := int(math32.Ceil(ps.v.OutlineWidth))
		image.DrawMask(ps.buf, dilate(bm.Image, r), left-r, top-r, ps.glyphColor(g))
	case bm.IsColor && ps.p.Style == StyleNone:
		// Color glyphs keep their own colors; only the text alpha applies.
		image.DrawImage(ps.buf, bm.Image, left, top, uint8(ps.foreground(g).A*255+0.5))
	default:
		image.DrawMask(ps.buf, bm.Image, left, top, ps.glyphColor(g))
	}
}

// dilate returns the alpha of img spread by r pixels in every direction.
// The result is 2r pixels wider and taller than img.
func dilate(img goimage.Image, r int) *goimage.Alpha {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	src := make([]uint8, w*h)
	for y := range h {
		for x := range w {
			_, _, _, a := img.At(b.Min.X+x, b.Min.Y+y).RGBA()
			src[y*w+x] = uint8(a >> 8)
		}
	}
	out := goimage.NewAlpha(goimage.Rect(0, 0, w+2*r, h+2*r))
	r2 := r * r
	for y := range h {
		for x := range w {
			a := src[y*w+x]
			if a == 0 {
				continue
			}
			for dy := -r; dy <= r; dy++ {
				for dx := -r; dx <= r; dx++ {
					if dx*dx+dy*dy > r2 {
						continue
					}
					px, py := x+r+dx, y+r+dy
					if out.AlphaAt(px, py).A < a {
						out.SetAlpha(px, py, color.Alpha{A: a})
					}
				}
			}
		}
	}
	return out
}
