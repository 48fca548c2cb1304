package typeset

import (
	"image/color"

	"github.com/chewxy/math32"

	"github.com/gogpu/textkit"
	"github.com/gogpu/textkit/text"
	"github.com/gogpu/textkit/text/fonts"
)

// drawBackground fills the background color of every glyph between the
// ascender and the descender of its line.
func (ps *pass) drawBackground() {
	v := ps.v
	ps.eachLine(func(l *text.LineRun, from, to text.GlyphIndex) {
		x0 := ps.lineOffset(l)
		baseline := ps.baseline(l)
		top, bottom := round(baseline-l.Ascender), round(baseline-l.Descender)
		for g := from; g < to; g++ {
			if int(g) >= len(v.BackgroundColorIndices) {
				break
			}
			idx := v.BackgroundColorIndices[g]
			if idx == 0 || int(idx) > len(v.BackgroundColors) {
				continue
			}
			x := x0 + v.GlyphPositions[g].X
			ps.buf.FillRect(round(x), top, round(x+ps.advance(g)), bottom,
				v.BackgroundColors[idx-1].PremultipliedRGBA())
		}
	})
}

func (ps *pass) advance(g text.GlyphIndex) float32 {
	if int(g) < len(ps.v.GlyphAdvances) {
		return ps.v.GlyphAdvances[g]
	}
	return ps.v.Glyphs[g].Advance
}

// span is the horizontal extent [x0, x1) of glyphs sharing a decoration.
type span struct {
	x0, x1 float32
}

// extent returns the extent of the glyphs of run inside [from, to).
func (ps *pass) extent(l *text.LineRun, run text.GlyphRun, from, to text.GlyphIndex) (span, bool) {
	first, last := max(run.Index, from), min(run.End(), to)
	if first >= last {
		return span{}, false
	}
	x0 := ps.lineOffset(l)
	s := span{x0: math32.MaxFloat32, x1: -math32.MaxFloat32}
	for g := first; g < last; g++ {
		x := x0 + ps.v.GlyphPositions[g].X
		s.x0 = math32.Min(s.x0, x)
		s.x1 = math32.Max(s.x1, x+ps.advance(g))
	}
	return s, s.x1 > s.x0
}

// lineMetrics returns the metrics of the tallest font on line l.
func (ps *pass) lineMetrics(l *text.LineRun) fonts.Metrics {
	var best fonts.Metrics
	seen := make(map[text.FontID]bool)
	for g := l.Glyphs.Index; g < l.Glyphs.End() && int(g) < len(ps.v.Glyphs); g++ {
		id := ps.v.Glyphs[g].FontID
		if seen[id] {
			continue
		}
		seen[id] = true
		if m := ps.t.service.Metrics(id); m.Height > best.Height {
			best = m
		}
	}
	return best
}

// drawUnderlines draws the underline runs and, when enabled, the
// underline of the whole text.
func (ps *pass) drawUnderlines() {
	v := ps.v
	def := text.UnderlineProperties{
		Type:      v.UnderlineType,
		Color:     v.UnderlineColor,
		Height:    v.UnderlineHeight,
		DashWidth: v.DashedUnderlineWidth,
		DashGap:   v.DashedUnderlineGap,
	}
	ps.eachLine(func(l *text.LineRun, from, to text.GlyphIndex) {
		m := ps.lineMetrics(l)
		if v.UnderlineEnabled {
			if s, ok := ps.extent(l, l.Glyphs, from, to); ok {
				ps.underline(l, m, s, def)
			}
		}
		for _, run := range v.UnderlineRuns {
			if s, ok := ps.extent(l, run.GlyphRun, from, to); ok {
				ps.underline(l, m, s, def.Overlay(run.Properties))
			}
		}
	})
}

func (ps *pass) underline(l *text.LineRun, m fonts.Metrics, s span, props text.UnderlineProperties) {
	baseline := ps.baseline(l)
	height := props.Height
	if height <= 0 {
		height = m.UnderlineThickness
	}
	height = math32.Max(1, height)
	y := baseline + m.UnderlinePosition
	if limit := baseline - l.Descender; y+height > limit {
		height = math32.Max(1, limit-y)
	}
	c := ps.decorationColor(props.Color)

	switch props.Type {
	case text.UnderlineDashed:
		dash, gap := math32.Max(1, props.DashWidth), math32.Max(0, props.DashGap)
		for x := s.x0; x < s.x1; x += dash + gap {
			ps.fill(x, y, math32.Min(x+dash, s.x1), y+height, c)
		}
	case text.UnderlineDouble:
		ps.fill(s.x0, y, s.x1, y+height, c)
		second := y - 1.5*height
		ps.fill(s.x0, second, s.x1, second+height, c)
	default:
		ps.fill(s.x0, y, s.x1, y+height, c)
	}
}

// drawStrikethroughs draws the strikethrough runs and, when enabled, the
// strikethrough of the whole text.
func (ps *pass) drawStrikethroughs() {
	v := ps.v
	def := text.StrikethroughProperties{
		Color:  v.StrikethroughColor,
		Height: v.StrikethroughHeight,
	}
	ps.eachLine(func(l *text.LineRun, from, to text.GlyphIndex) {
		m := ps.lineMetrics(l)
		if v.StrikethroughEnabled {
			if s, ok := ps.extent(l, l.Glyphs, from, to); ok {
				ps.strikethrough(l, m, s, def)
			}
		}
		for _, run := range v.StrikethroughRuns {
			if s, ok := ps.extent(l, run.GlyphRun, from, to); ok {
				ps.strikethrough(l, m, s, def.Overlay(run.Properties))
			}
		}
	})
}

func (ps *pass) strikethrough(l *text.LineRun, m fonts.Metrics, s span, props text.StrikethroughProperties) {
	height := props.Height
	if height <= 0 {
		height = m.StrikethroughThickness
	}
	height = math32.Max(1, height)
	y := ps.baseline(l) - l.Ascender*0.5 + m.UnderlinePosition
	ps.fill(s.x0, y, s.x1, y+height, ps.decorationColor(props.Color))
}

// decorationColor returns c for the style: white for masks, the shadow
// color for shadows.
func (ps *pass) decorationColor(c textkit.Color) color.RGBA {
	switch ps.p.Style {
	case StyleMask:
		return color.RGBA{R: 255, G: 255, B: 255, A: 255}
	case StyleShadow:
		return ps.v.ShadowColor.PremultipliedRGBA()
	}
	return c.PremultipliedRGBA()
}

func (ps *pass) fill(x0, y0, x1, y1 float32, c color.RGBA) {
	ps.buf.FillRect(round(x0), round(y0), max(round(x1), round(x0)+1), max(round(y1), round(y0)+1), c)
}
