package fonts

import (
	"image"

	"github.com/gogpu/textkit/text"
)

// Service is the font backend used by the text pipeline.
//
// Implementations must be safe for concurrent use.
type Service interface {
	// ResolveFont returns the font best matching desc at size,
	// or 0 if no font is available at all.
	ResolveFont(desc text.FontDescription, size text.PointSize26Dot6) text.FontID

	// HasGlyph reports whether the font maps r to a glyph.
	HasGlyph(id text.FontID, r rune) bool

	// FindFallbackFont returns a font at size covering r, preferring the
	// family and style of preferred, and color fonts when preferColor is set.
	// It returns 0 when no font covers r.
	FindFallbackFont(preferred text.FontID, r rune, size text.PointSize26Dot6, preferColor bool) text.FontID

	// FindDefaultFont returns the platform default font at size, preferring
	// one covering r. It returns 0 only when no font is available.
	FindDefaultFont(r rune, size text.PointSize26Dot6) text.FontID

	// IsColorFont reports whether the font carries color glyphs.
	IsColorFont(id text.FontID) bool

	// Shape converts req.Text[req.Start:req.End] into glyphs in logical order.
	Shape(req ShapeRequest) Shaped

	// GlyphBitmap rasterizes a glyph of the font.
	GlyphBitmap(id text.FontID, glyph uint32, synth Synthesis) (*Bitmap, bool)

	// Metrics returns the line metrics of the font in pixels.
	Metrics(id text.FontID) Metrics

	// Description returns the description of the face behind id.
	Description(id text.FontID) text.FontDescription

	// PointSize returns the point size of id.
	PointSize(id text.FontID) text.PointSize26Dot6
}

// ShapeRequest describes one run to shape.
// Text holds the whole paragraph so complex scripts see their context.
type ShapeRequest struct {
	Text       []rune
	Start, End text.CharacterIndex
	Font       text.FontID
	Script     text.Script
	RTL        bool
	Language   string
}

// Shaped is the result of shaping a run.
// Glyphs are in logical order; Clusters holds for every glyph the index of
// the first character it was shaped from.
type Shaped struct {
	Glyphs   []text.GlyphInfo
	Clusters []text.CharacterIndex
}

// Metrics holds line metrics in pixels.
// Ascender is positive, Descender is negative.
// UnderlinePosition is the distance below the baseline of the top of the underline.
// StrikethroughPosition is the distance above the baseline of the top of the strike.
type Metrics struct {
	Ascender               float32
	Descender              float32
	Height                 float32
	UnderlinePosition      float32
	UnderlineThickness     float32
	StrikethroughPosition  float32
	StrikethroughThickness float32
}

// Synthesis requests emboldening or slanting a glyph the face does not provide.
type Synthesis struct {
	Bold   bool
	Italic bool
}

// Bitmap is a rasterized glyph.
// Image is an *image.Alpha coverage mask, or an *image.NRGBA for color glyphs.
// Left and Top place the image relative to the pen position on the baseline:
// the top left pixel lands at (pen.X+Left, baseline-Top).
type Bitmap struct {
	Image   image.Image
	Left    int
	Top     int
	IsColor bool
}
