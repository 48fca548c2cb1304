package fonts

import (
	"slices"

	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/textkit/text"
)

// Shape implements Service using the go-text HarfBuzz port.
//
// HarfbuzzShaper and font.Face are not safe for concurrent use, so shapers
// are pooled and a face is created per call around the shared *font.Font.
func (r *Registry) Shape(req ShapeRequest) Shaped {
	if req.End <= req.Start || int(req.End) > len(req.Text) {
		return Shaped{}
	}
	f, size, ok := r.lookup(req.Font)
	if !ok {
		return Shaped{}
	}

	dir := di.DirectionLTR
	if req.RTL {
		dir = di.DirectionRTL
	}
	lang := language.DefaultLanguage()
	if req.Language != "" {
		lang = language.NewLanguage(req.Language)
	}
	input := shaping.Input{
		Text:      req.Text,
		RunStart:  int(req.Start),
		RunEnd:    int(req.End),
		Direction: dir,
		Face:      font.NewFace(f.gt),
		Size:      floatToFixed(r.pixelSize(size)),
		Script:    req.Script.Language(),
		Language:  lang,
	}

	hb := r.shaperPool.Get().(*shaping.HarfbuzzShaper)
	out := hb.Shape(input)
	r.shaperPool.Put(hb)

	glyphs := out.Glyphs
	if req.RTL {
		glyphs = slices.Clone(glyphs)
		slices.Reverse(glyphs)
	}
	return convertGlyphs(glyphs, req.Font)
}

// convertGlyphs converts go-text glyphs, already in logical order.
func convertGlyphs(glyphs []shaping.Glyph, id text.FontID) Shaped {
	res := Shaped{
		Glyphs:   make([]text.GlyphInfo, len(glyphs)),
		Clusters: make([]text.CharacterIndex, len(glyphs)),
	}
	for i, g := range glyphs {
		height := fixedToFloat(g.Height)
		if height < 0 {
			height = -height
		}
		res.Glyphs[i] = text.GlyphInfo{
			FontID:      id,
			Index:       uint32(g.GlyphID),
			Width:       fixedToFloat(g.Width),
			Height:      height,
			XBearing:    fixedToFloat(g.XBearing + g.XOffset),
			YBearing:    fixedToFloat(g.YBearing + g.YOffset),
			Advance:     fixedToFloat(g.Advance),
			ScaleFactor: 1,
		}
		res.Clusters[i] = text.CharacterIndex(g.TextIndex())
	}
	return res
}

func floatToFixed(v float32) fixed.Int26_6 {
	return fixed.Int26_6(v * 64)
}

func fixedToFloat(v fixed.Int26_6) float32 {
	return float32(v) / 64
}
