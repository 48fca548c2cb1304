package text

// unknownStr is the string returned for unknown enum values.
const unknownStr = "Unknown"

// CharacterIndex is an index into the logical character sequence.
type CharacterIndex = uint32

// GlyphIndex is an index into the glyph sequence of the visual model,
// or a glyph id inside a font when stored in GlyphInfo.Index.
type GlyphIndex = uint32

// Length counts characters or glyphs.
type Length = uint32

// LineIndex is an index into the laid out lines.
type LineIndex = uint32

// FontID identifies a resolved font at a point size. Zero is invalid.
type FontID uint32

// ColorIndex selects a color from a palette. Zero is the default color,
// any other value N selects palette entry N-1.
type ColorIndex = uint16

// PointSize26Dot6 is a point size in 26.6 fixed point (points * 64).
type PointSize26Dot6 = uint32

// DefaultPointSize is 12 points.
const DefaultPointSize PointSize26Dot6 = 12 * 64

// Vector2 is a 2D position or offset in pixels.
type Vector2 struct {
	X, Y float32
}

// Size is a 2D extent in pixels.
type Size struct {
	Width, Height float32
}

// IsZero reports whether both dimensions are zero.
func (s Size) IsZero() bool {
	return s.Width == 0 && s.Height == 0
}

// LayoutDirection is the direction the owning control lays out in.
type LayoutDirection int

const (
	// LayoutDirectionLTR lays out from left to right.
	LayoutDirectionLTR LayoutDirection = iota
	// LayoutDirectionRTL lays out from right to left.
	LayoutDirectionRTL
)

// String returns the string representation of the direction.
func (d LayoutDirection) String() string {
	switch d {
	case LayoutDirectionLTR:
		return "LTR"
	case LayoutDirectionRTL:
		return "RTL"
	default:
		return unknownStr
	}
}

// CharacterDirection is false for left to right characters and true for right to left ones.
type CharacterDirection = bool

// HorizontalAlignment positions lines inside the layout width.
type HorizontalAlignment int

const (
	// HorizontalAlignBegin aligns to the start of the paragraph direction.
	HorizontalAlignBegin HorizontalAlignment = iota
	// HorizontalAlignCenter centers lines.
	HorizontalAlignCenter
	// HorizontalAlignEnd aligns to the end of the paragraph direction.
	HorizontalAlignEnd
)

// String returns the string representation of the alignment.
func (a HorizontalAlignment) String() string {
	switch a {
	case HorizontalAlignBegin:
		return "Begin"
	case HorizontalAlignCenter:
		return "Center"
	case HorizontalAlignEnd:
		return "End"
	default:
		return unknownStr
	}
}

// ParseHorizontalAlignment parses "begin", "center" or "end".
func ParseHorizontalAlignment(s string) (HorizontalAlignment, bool) {
	switch s {
	case "begin":
		return HorizontalAlignBegin, true
	case "center":
		return HorizontalAlignCenter, true
	case "end":
		return HorizontalAlignEnd, true
	}
	return HorizontalAlignBegin, false
}

// VerticalAlignment positions the text block inside the control height.
type VerticalAlignment int

const (
	// VerticalAlignTop places text at the top.
	VerticalAlignTop VerticalAlignment = iota
	// VerticalAlignCenter centers text vertically.
	VerticalAlignCenter
	// VerticalAlignBottom places text at the bottom.
	VerticalAlignBottom
)

// String returns the string representation of the alignment.
func (a VerticalAlignment) String() string {
	switch a {
	case VerticalAlignTop:
		return "Top"
	case VerticalAlignCenter:
		return "Center"
	case VerticalAlignBottom:
		return "Bottom"
	default:
		return unknownStr
	}
}

// LineWrapMode selects where lines may be broken.
type LineWrapMode int

const (
	// WrapWord breaks lines at line break opportunities.
	WrapWord LineWrapMode = iota
	// WrapCharacter breaks lines at any character.
	WrapCharacter
)

// String returns the string representation of the wrap mode.
func (m LineWrapMode) String() string {
	switch m {
	case WrapWord:
		return "Word"
	case WrapCharacter:
		return "Character"
	default:
		return unknownStr
	}
}

// LineBreakInfo classifies the break opportunity after a character.
type LineBreakInfo uint8

const (
	// LineNoBreak forbids a break after the character.
	LineNoBreak LineBreakInfo = iota
	// LineAllowBreak allows a break after the character.
	LineAllowBreak
	// LineMustBreak forces a break after the character.
	LineMustBreak
)

// WordBreakInfo classifies the word boundary after a character.
type WordBreakInfo uint8

const (
	// WordNoBreak means the character does not end a word.
	WordNoBreak WordBreakInfo = iota
	// WordBreak means the character ends a word.
	WordBreak
)
