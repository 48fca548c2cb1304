// Package fonts resolves font descriptions to concrete fonts and exposes
// what the text pipeline needs from them: glyph coverage, shaping,
// line metrics and glyph bitmaps.
//
// The Service interface is the boundary the rest of the pipeline depends on.
// Registry implements it over in-memory OpenType data, parsed with
// go-text/typesetting for shaping and metrics, and golang.org/x/image/font/sfnt
// for outlines and hinted vertical metrics.
//
//	reg := fonts.NewRegistry()
//	if err := fonts.RegisterGoFonts(reg); err != nil {
//		return err
//	}
//	id := reg.ResolveFont(text.DefaultFontDescription(), text.DefaultPointSize)
//	ok := reg.HasGlyph(id, 'A')
//
// A FontID identifies a face at one point size. Zero is never a valid id.
package fonts
