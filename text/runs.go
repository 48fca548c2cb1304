package text

import "github.com/gogpu/textkit"

// CharacterRun is a half-open range [Index, Index+Count) of characters.
// It is embedded by every typed run.
type CharacterRun struct {
	Index CharacterIndex
	Count Length
}

// End returns the index one past the last character of the run.
func (r CharacterRun) End() CharacterIndex {
	return r.Index + r.Count
}

// Contains reports whether the run covers index.
func (r CharacterRun) Contains(index CharacterIndex) bool {
	return index >= r.Index && index < r.Index+r.Count
}

// Resize sets the number of characters covered by the run.
func (r *CharacterRun) Resize(count Length) {
	r.Count = count
}

func (r *CharacterRun) characterRun() *CharacterRun { return r }

// GlyphRun is a range [Index, Index+Count) of glyphs.
type GlyphRun struct {
	Index GlyphIndex
	Count Length
}

// End returns the index one past the last glyph of the run.
func (r GlyphRun) End() GlyphIndex {
	return r.Index + r.Count
}

// ScriptRun is a range of characters sharing one script.
type ScriptRun struct {
	CharacterRun
	Script Script
}

// FontRun is a range of characters rendered with one resolved font.
type FontRun struct {
	CharacterRun
	FontID           FontID
	IsBoldRequired   bool
	IsItalicRequired bool
}

// ColorRun assigns a color to a range of characters.
type ColorRun struct {
	CharacterRun
	Color textkit.Color
}

// FontDescriptionRun assigns a partial font description to a range of characters.
// Fields not marked as defined fall back to the control defaults.
type FontDescriptionRun struct {
	CharacterRun
	Family string
	Weight FontWeight
	Width  FontWidth
	Slant  FontSlant
	Size   PointSize26Dot6

	FamilyDefined bool
	WeightDefined bool
	WidthDefined  bool
	SlantDefined  bool
	SizeDefined   bool
}

// UnderlinedCharacterRun underlines a range of characters.
type UnderlinedCharacterRun struct {
	CharacterRun
	Properties UnderlineProperties
}

// StrikethroughCharacterRun strikes through a range of characters.
type StrikethroughCharacterRun struct {
	CharacterRun
	Properties StrikethroughProperties
}

// CharacterSpacingCharacterRun adds extra spacing after each character of a range.
type CharacterSpacingCharacterRun struct {
	CharacterRun
	Value float32
}

// BoundedParagraphRun overrides paragraph properties for a range of characters.
type BoundedParagraphRun struct {
	CharacterRun
	HorizontalAlignment        HorizontalAlignment
	HorizontalAlignmentDefined bool
	RelativeLineSize           float32
	RelativeLineSizeDefined    bool
}

// BidirectionalParagraphRun describes a paragraph whose base direction is known.
type BidirectionalParagraphRun struct {
	CharacterRun
	RightToLeft bool
}

// ColorBlendingMode describes how an embedded item is tinted.
type ColorBlendingMode int

const (
	// ColorBlendingNone draws the item with its own colors.
	ColorBlendingNone ColorBlendingMode = iota
	// ColorBlendingMultiply multiplies the item by the text color.
	ColorBlendingMultiply
)

// EmbeddedItem is an inline object occupying one placeholder character.
type EmbeddedItem struct {
	CharacterIndex CharacterIndex
	URL            string
	Width, Height  float32
	ColorBlending  ColorBlendingMode
}

// Anchor is a hyperlink over a character range [StartIndex, EndIndex).
type Anchor struct {
	StartIndex   CharacterIndex
	EndIndex     CharacterIndex
	Href         string
	Color        textkit.Color
	ClickedColor textkit.Color
	IsClicked    bool
}

// Contains reports whether the anchor covers index.
func (a Anchor) Contains(index CharacterIndex) bool {
	return index >= a.StartIndex && index < a.EndIndex
}
