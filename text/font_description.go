package text

import (
	"strconv"
	"strings"
)

// FontWeight is the boldness of a font, using OpenType usWeightClass values.
type FontWeight uint16

// Font weights.
const (
	FontWeightThin       FontWeight = 100
	FontWeightUltraLight FontWeight = 200
	FontWeightLight      FontWeight = 300
	FontWeightBook       FontWeight = 350
	FontWeightNormal     FontWeight = 400
	FontWeightMedium     FontWeight = 500
	FontWeightSemiBold   FontWeight = 600
	FontWeightBold       FontWeight = 700
	FontWeightUltraBold  FontWeight = 800
	FontWeightBlack      FontWeight = 900
)

var fontWeightNames = map[string]FontWeight{
	"thin":        FontWeightThin,
	"ultra-light": FontWeightUltraLight,
	"extra-light": FontWeightUltraLight,
	"light":       FontWeightLight,
	"demi-light":  FontWeightLight,
	"semi-light":  FontWeightLight,
	"book":        FontWeightBook,
	"normal":      FontWeightNormal,
	"regular":     FontWeightNormal,
	"medium":      FontWeightMedium,
	"demi-bold":   FontWeightSemiBold,
	"semi-bold":   FontWeightSemiBold,
	"bold":        FontWeightBold,
	"ultra-bold":  FontWeightUltraBold,
	"extra-bold":  FontWeightUltraBold,
	"black":       FontWeightBlack,
	"heavy":       FontWeightBlack,
	"extra-black": FontWeightBlack,
}

// ParseFontWeight parses a weight name such as "bold" or a numeric weight.
func ParseFontWeight(s string) (FontWeight, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	if w, ok := fontWeightNames[s]; ok {
		return w, true
	}
	if n, err := strconv.Atoi(s); err == nil && n >= 1 && n <= 1000 {
		return FontWeight(n), true
	}
	return FontWeightNormal, false
}

// String returns the string representation of the weight.
func (w FontWeight) String() string {
	switch w {
	case FontWeightThin:
		return "thin"
	case FontWeightUltraLight:
		return "ultra-light"
	case FontWeightLight:
		return "light"
	case FontWeightBook:
		return "book"
	case FontWeightNormal:
		return "normal"
	case FontWeightMedium:
		return "medium"
	case FontWeightSemiBold:
		return "semi-bold"
	case FontWeightBold:
		return "bold"
	case FontWeightUltraBold:
		return "ultra-bold"
	case FontWeightBlack:
		return "black"
	default:
		return strconv.Itoa(int(w))
	}
}

// FontWidth is the horizontal stretch of a font, using OpenType usWidthClass values.
type FontWidth uint8

// Font widths.
const (
	FontWidthUltraCondensed FontWidth = iota + 1
	FontWidthExtraCondensed
	FontWidthCondensed
	FontWidthSemiCondensed
	FontWidthNormal
	FontWidthSemiExpanded
	FontWidthExpanded
	FontWidthExtraExpanded
	FontWidthUltraExpanded
)

var fontWidthNames = map[string]FontWidth{
	"ultra-condensed": FontWidthUltraCondensed,
	"extra-condensed": FontWidthExtraCondensed,
	"condensed":       FontWidthCondensed,
	"semi-condensed":  FontWidthSemiCondensed,
	"normal":          FontWidthNormal,
	"semi-expanded":   FontWidthSemiExpanded,
	"expanded":        FontWidthExpanded,
	"extra-expanded":  FontWidthExtraExpanded,
	"ultra-expanded":  FontWidthUltraExpanded,
}

// ParseFontWidth parses a width name such as "condensed".
func ParseFontWidth(s string) (FontWidth, bool) {
	w, ok := fontWidthNames[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return FontWidthNormal, false
	}
	return w, true
}

// FontSlant is the slant style of a font.
type FontSlant uint8

// Font slants.
const (
	FontSlantNormal FontSlant = iota
	FontSlantItalic
	FontSlantOblique
)

// ParseFontSlant parses "normal", "roman", "italic" or "oblique".
func ParseFontSlant(s string) (FontSlant, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "normal", "roman":
		return FontSlantNormal, true
	case "italic":
		return FontSlantItalic, true
	case "oblique":
		return FontSlantOblique, true
	}
	return FontSlantNormal, false
}

// String returns the string representation of the slant.
func (s FontSlant) String() string {
	switch s {
	case FontSlantNormal:
		return "normal"
	case FontSlantItalic:
		return "italic"
	case FontSlantOblique:
		return "oblique"
	default:
		return unknownStr
	}
}

// IsSlanted reports whether the slant is italic or oblique.
func (s FontSlant) IsSlanted() bool {
	return s == FontSlantItalic || s == FontSlantOblique
}

// FontDescription fully describes a requested font.
type FontDescription struct {
	Family string
	Weight FontWeight
	Width  FontWidth
	Slant  FontSlant
}

// DefaultFontDescription returns a regular font of the platform default family.
func DefaultFontDescription() FontDescription {
	return FontDescription{
		Weight: FontWeightNormal,
		Width:  FontWidthNormal,
		Slant:  FontSlantNormal,
	}
}

// Merge overlays the defined fields of run over d and returns the result
// together with the resolved point size.
func (d FontDescription) Merge(run *FontDescriptionRun, size PointSize26Dot6) (FontDescription, PointSize26Dot6) {
	if run == nil {
		return d, size
	}
	if run.FamilyDefined {
		d.Family = run.Family
	}
	if run.WeightDefined {
		d.Weight = run.Weight
	}
	if run.WidthDefined {
		d.Width = run.Width
	}
	if run.SlantDefined {
		d.Slant = run.Slant
	}
	if run.SizeDefined {
		size = run.Size
	}
	return d, size
}

// Key returns a stable string identifying the description, used as a cache key.
func (d FontDescription) Key() string {
	var b strings.Builder
	b.WriteString(strings.ToLower(d.Family))
	b.WriteByte('|')
	b.WriteString(strconv.Itoa(int(d.Weight)))
	b.WriteByte('|')
	b.WriteString(strconv.Itoa(int(d.Width)))
	b.WriteByte('|')
	b.WriteString(strconv.Itoa(int(d.Slant)))
	return b.String()
}

// MergeFontDescriptionRun merges overlapping runs with later runs overriding
// earlier ones, returning the per-field merged run covering index.
// The second result is false if no run covers index.
func MergeFontDescriptionRun(runs []FontDescriptionRun, index CharacterIndex) (FontDescriptionRun, bool) {
	var out FontDescriptionRun
	found := false
	for i := range runs {
		r := &runs[i]
		if !r.Contains(index) {
			continue
		}
		found = true
		if r.FamilyDefined {
			out.Family, out.FamilyDefined = r.Family, true
		}
		if r.WeightDefined {
			out.Weight, out.WeightDefined = r.Weight, true
		}
		if r.WidthDefined {
			out.Width, out.WidthDefined = r.Width, true
		}
		if r.SlantDefined {
			out.Slant, out.SlantDefined = r.Slant, true
		}
		if r.SizeDefined {
			out.Size, out.SizeDefined = r.Size, true
		}
	}
	out.Index, out.Count = index, 1
	return out, found
}
