package multilang

import (
	"github.com/gogpu/textkit/text"
	"github.com/gogpu/textkit/text/fonts"
)

// FallbackRequest describes a character the requested font cannot render.
type FallbackRequest struct {
	Character   rune
	Script      text.Script
	Requested   text.FontID
	Description text.FontDescription
	Size        text.PointSize26Dot6
	// Locale is the canonical BCP 47 locale of the Support.
	Locale string
	// NeedsColor is set for emoji, which prefer a color font.
	NeedsColor bool
}

// FallbackPolicy picks a font for a character the requested font lacks.
// Returning 0 lets the Support fall back to the service default font.
type FallbackPolicy interface {
	FindFont(service fonts.Service, cache *FontCache, req FallbackRequest) text.FontID
}

// FallbackFunc adapts a function to FallbackPolicy.
type FallbackFunc func(service fonts.Service, cache *FontCache, req FallbackRequest) text.FontID

// FindFont calls f.
func (f FallbackFunc) FindFont(service fonts.Service, cache *FontCache, req FallbackRequest) text.FontID {
	return f(service, cache, req)
}

// DefaultFallback is the fallback order used when no policy is configured:
//
//  1. the font cached for the script,
//  2. the locale preferred families for Han, Kana and Hangul,
//  3. fonts.Service.FindFallbackFont,
//  4. the font cached for Latin,
//  5. the service default font for 'A'.
type DefaultFallback struct{}

// FindFont implements FallbackPolicy.
func (DefaultFallback) FindFont(service fonts.Service, cache *FontCache, req FallbackRequest) text.FontID {
	r := req.Character
	renders := func(id text.FontID) bool {
		return id != 0 && service.HasGlyph(id, r) && (!req.NeedsColor || service.IsColorFont(id))
	}

	if id, ok := cache.ScriptFont(req.Description, req.Size, req.Script); ok && renders(id) {
		return id
	}
	for _, family := range preferredFamilies(req.Locale, req.Script) {
		desc := req.Description
		desc.Family = family
		if id := cache.Resolve(service, desc, req.Size, req.Script); renders(id) {
			cache.SetScriptFont(req.Description, req.Size, req.Script, id)
			return id
		}
	}
	if id := service.FindFallbackFont(req.Requested, r, req.Size, req.NeedsColor); id != 0 && service.HasGlyph(id, r) {
		if renders(id) {
			cache.SetScriptFont(req.Description, req.Size, req.Script, id)
		}
		return id
	}
	if id, ok := cache.ScriptFont(req.Description, req.Size, text.ScriptLatin); ok {
		return id
	}
	return service.FindDefaultFont('A', req.Size)
}
