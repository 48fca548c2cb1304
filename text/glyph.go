package text

// GlyphInfo is the shaping output for one glyph.
// Metrics are in pixels; YBearing is the distance from the baseline to the
// top of the glyph bitmap.
type GlyphInfo struct {
	FontID           FontID
	Index            uint32
	Width            float32
	Height           float32
	XBearing         float32
	YBearing         float32
	Advance          float32
	ScaleFactor      float32
	IsItalicRequired bool
	IsBoldRequired   bool
}

// LineRun is a laid out line of glyphs.
// Ascender is positive and Descender negative, both relative to the baseline.
type LineRun struct {
	Glyphs          GlyphRun
	Characters      CharacterRun
	Width           float32
	Ascender        float32
	Descender       float32
	Extra           float32
	AlignmentOffset float32
	LineSpacing     float32
	Direction       CharacterDirection
	Ellipsis        bool
}

// Height returns the vertical space the line occupies.
func (l LineRun) Height() float32 {
	return l.Ascender - l.Descender + l.LineSpacing
}

// Extents describes vertical font metrics in pixels.
type Extents struct {
	Ascender  float32
	Descender float32
}
