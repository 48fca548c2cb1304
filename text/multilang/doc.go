// Package multilang splits text into script runs and resolves a font for
// every character.
//
// A Support is created per text controller with New and shares a
// fonts.Service with the rest of the process:
//
//	ml := multilang.New(registry, multilang.WithLocale("ja"))
//	scripts := ml.SetScripts(runes, 0, len(runes))
//	fonts := ml.ValidateFonts(runes, scripts, nil, desc, size, 0, len(runes))
//
// When the requested font lacks a glyph, a FallbackPolicy picks another
// one. Resolved ids are kept in a FontCache, which may be shared between
// several Support values.
package multilang
