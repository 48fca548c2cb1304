package model

import (
	"github.com/gogpu/textkit"
	"github.com/gogpu/textkit/text"
)

// UnderlinedGlyphRun underlines a range of glyphs.
type UnderlinedGlyphRun struct {
	text.GlyphRun
	Properties text.UnderlineProperties
}

// StrikethroughGlyphRun strikes through a range of glyphs.
type StrikethroughGlyphRun struct {
	text.GlyphRun
	Properties text.StrikethroughProperties
}

// VisualModel holds shaped glyphs, their layout and the rendering defaults.
//
// Glyphs are stored in logical order. GlyphPositions hold the pen position
// of each glyph relative to the top-left corner of the layout, with y on
// the baseline of the glyph's line.
type VisualModel struct {
	Glyphs             []text.GlyphInfo
	GlyphsToCharacters []text.CharacterIndex
	CharactersPerGlyph []text.Length
	GlyphsPerCharacter []text.Length
	CharactersToGlyph  []text.GlyphIndex
	GlyphPositions     []text.Vector2
	// GlyphAdvances are the laid out advances, including character
	// spacing and embedded item widths.
	GlyphAdvances []float32

	Lines []text.LineRun

	// ColorIndices select per glyph TextColor (0) or Colors[N-1].
	ColorIndices []text.ColorIndex
	Colors       []textkit.Color
	// BackgroundColorIndices select per glyph no background (0) or
	// BackgroundColors[N-1].
	BackgroundColorIndices []text.ColorIndex
	BackgroundColors       []textkit.Color

	UnderlineRuns     []UnderlinedGlyphRun
	StrikethroughRuns []StrikethroughGlyphRun

	ControlSize text.Size
	LayoutSize  text.Size
	NaturalSize text.Size

	TextColor            textkit.Color
	UnderlineEnabled     bool
	UnderlineColor       textkit.Color
	UnderlineHeight      float32
	UnderlineType        text.UnderlineType
	DashedUnderlineWidth float32
	DashedUnderlineGap   float32
	StrikethroughEnabled bool
	StrikethroughColor   textkit.Color
	StrikethroughHeight  float32

	ShadowColor  textkit.Color
	ShadowOffset text.Vector2
	OutlineColor textkit.Color
	OutlineWidth float32

	HorizontalAlignment text.HorizontalAlignment
	VerticalAlignment   text.VerticalAlignment
}

// NewVisualModel returns an empty model with black text and default
// decoration settings.
func NewVisualModel() *VisualModel {
	return &VisualModel{
		TextColor:            textkit.Black,
		UnderlineColor:       textkit.Black,
		StrikethroughColor:   textkit.Black,
		DashedUnderlineWidth: 2,
		DashedUnderlineGap:   1,
		ShadowColor:          textkit.Black,
		OutlineColor:         textkit.White,
	}
}

// ClearGlyphs removes the glyphs and everything derived from them.
func (v *VisualModel) ClearGlyphs() {
	v.Glyphs = v.Glyphs[:0]
	v.GlyphsToCharacters = v.GlyphsToCharacters[:0]
	v.CharactersPerGlyph = v.CharactersPerGlyph[:0]
	v.GlyphsPerCharacter = v.GlyphsPerCharacter[:0]
	v.CharactersToGlyph = v.CharactersToGlyph[:0]
	v.ClearLayout()
}

// ClearLayout removes positions, lines and glyph space style runs.
func (v *VisualModel) ClearLayout() {
	v.GlyphPositions = v.GlyphPositions[:0]
	v.GlyphAdvances = v.GlyphAdvances[:0]
	v.Lines = v.Lines[:0]
	v.ColorIndices = v.ColorIndices[:0]
	v.BackgroundColorIndices = v.BackgroundColorIndices[:0]
	v.UnderlineRuns = v.UnderlineRuns[:0]
	v.StrikethroughRuns = v.StrikethroughRuns[:0]
}

// NumberOfGlyphs returns the number of shaped glyphs.
func (v *VisualModel) NumberOfGlyphs() text.Length {
	return text.Length(len(v.Glyphs))
}

// TotalCharactersCovered returns the sum of CharactersPerGlyph.
func (v *VisualModel) TotalCharactersCovered() text.Length {
	var n text.Length
	for _, c := range v.CharactersPerGlyph {
		n += c
	}
	return n
}

// CreateGlyphsPerCharacterTable rebuilds GlyphsPerCharacter for
// numberOfCharacters characters. Each glyph counts for the first character
// of its cluster; the other characters of a ligature count zero glyphs.
func (v *VisualModel) CreateGlyphsPerCharacterTable(numberOfCharacters text.Length) {
	v.GlyphsPerCharacter = resize(v.GlyphsPerCharacter, int(numberOfCharacters))
	for _, c := range v.GlyphsToCharacters {
		if c < numberOfCharacters {
			v.GlyphsPerCharacter[c]++
		}
	}
}

// CreateCharacterToGlyphTable rebuilds CharactersToGlyph: the first glyph
// of the cluster each character belongs to.
func (v *VisualModel) CreateCharacterToGlyphTable(numberOfCharacters text.Length) {
	v.CharactersToGlyph = resize(v.CharactersToGlyph, int(numberOfCharacters))
	set := make([]bool, numberOfCharacters)
	for g, first := range v.GlyphsToCharacters {
		count := text.Length(1)
		if g < len(v.CharactersPerGlyph) && v.CharactersPerGlyph[g] > 0 {
			count = v.CharactersPerGlyph[g]
		}
		for c := first; c < first+count && c < numberOfCharacters; c++ {
			if !set[c] {
				v.CharactersToGlyph[c] = text.GlyphIndex(g)
				set[c] = true
			}
		}
	}
}

// LineOfGlyph returns the index of the line containing glyph, or -1.
func (v *VisualModel) LineOfGlyph(glyph text.GlyphIndex) int {
	for i, l := range v.Lines {
		if glyph >= l.Glyphs.Index && glyph < l.Glyphs.End() {
			return i
		}
	}
	return -1
}

// resize returns s with length n and every element zeroed.
func resize[T any](s []T, n int) []T {
	if cap(s) < n {
		return make([]T, n)
	}
	s = s[:n]
	clear(s)
	return s
}
