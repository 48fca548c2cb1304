package fonts

import (
	"github.com/go-text/typesetting/font"
	"golang.org/x/image/font/sfnt"

	"github.com/gogpu/textkit/text"
)

// Metrics implements Service.
// Vertical extents come from x/image/sfnt with the configured hinting;
// decoration metrics come from the go-text post and OS/2 tables.
func (r *Registry) Metrics(id text.FontID) Metrics {
	f, size, ok := r.lookup(id)
	if !ok {
		return Metrics{}
	}
	return r.metricsFor(f, size)
}

func (r *Registry) metricsFor(f *face, size text.PointSize26Dot6) Metrics {
	px := r.pixelSize(size)
	scale := px / f.upem
	gf := font.NewFace(f.gt)

	var out Metrics
	var buf sfnt.Buffer
	if m, err := f.sf.Metrics(&buf, floatToFixed(px), r.cfg.hinting); err == nil {
		out.Ascender = fixedToFloat(m.Ascent)
		out.Descender = -fixedToFloat(m.Descent)
		out.Height = fixedToFloat(m.Height)
	} else if ext, ok := gf.FontHExtents(); ok {
		out.Ascender = ext.Ascender * scale
		out.Descender = ext.Descender * scale
		out.Height = (ext.Ascender - ext.Descender + ext.LineGap) * scale
	}
	if out.Height < out.Ascender-out.Descender {
		out.Height = out.Ascender - out.Descender
	}

	out.UnderlinePosition = -gf.LineMetric(font.UnderlinePosition) * scale
	out.UnderlineThickness = gf.LineMetric(font.UnderlineThickness) * scale
	out.StrikethroughPosition = gf.LineMetric(font.StrikethroughPosition) * scale
	out.StrikethroughThickness = gf.LineMetric(font.StrikethroughThickness) * scale

	if out.UnderlineThickness < 1 {
		out.UnderlineThickness = 1
	}
	if out.UnderlinePosition <= 0 {
		out.UnderlinePosition = out.UnderlineThickness
	}
	if out.StrikethroughThickness < 1 {
		out.StrikethroughThickness = out.UnderlineThickness
	}
	if out.StrikethroughPosition <= 0 {
		out.StrikethroughPosition = out.Ascender / 3
	}
	return out
}
