package model

import (
	"errors"
	"slices"

	"github.com/gogpu/textkit/text"
	"github.com/gogpu/textkit/text/segment"
)

// LogicalModel is the text in logical order and its character runs.
//
// Scripts and Fonts are sorted and never overlap. Style runs (colors, font
// descriptions, decorations) may overlap; later runs win when merged per
// character.
type LogicalModel struct {
	Text []rune

	Scripts []text.ScriptRun
	Fonts   []text.FontRun

	Colors            []text.ColorRun
	BackgroundColors  []text.ColorRun
	FontDescriptions  []text.FontDescriptionRun
	Underlines        []text.UnderlinedCharacterRun
	Strikethroughs    []text.StrikethroughCharacterRun
	CharacterSpacings []text.CharacterSpacingCharacterRun
	BoundedParagraphs []text.BoundedParagraphRun

	LineBreaks []text.LineBreakInfo
	WordBreaks []text.WordBreakInfo
	Paragraphs []segment.Paragraph

	EmbeddedItems []text.EmbeddedItem
	Anchors       []text.Anchor
}

// NewLogicalModel returns an empty model.
func NewLogicalModel() *LogicalModel {
	return &LogicalModel{}
}

// Len returns the number of characters.
func (m *LogicalModel) Len() text.Length {
	return text.Length(len(m.Text))
}

// SetText replaces the text and clears every run.
func (m *LogicalModel) SetText(runes []rune) {
	m.Text = append(m.Text[:0], runes...)
	m.ClearRuns()
}

// ClearRuns removes every run and derived per character vector.
func (m *LogicalModel) ClearRuns() {
	m.Scripts = m.Scripts[:0]
	m.Fonts = m.Fonts[:0]
	m.Colors = m.Colors[:0]
	m.BackgroundColors = m.BackgroundColors[:0]
	m.FontDescriptions = m.FontDescriptions[:0]
	m.Underlines = m.Underlines[:0]
	m.Strikethroughs = m.Strikethroughs[:0]
	m.CharacterSpacings = m.CharacterSpacings[:0]
	m.BoundedParagraphs = m.BoundedParagraphs[:0]
	m.LineBreaks = m.LineBreaks[:0]
	m.WordBreaks = m.WordBreaks[:0]
	m.Paragraphs = m.Paragraphs[:0]
	m.EmbeddedItems = m.EmbeddedItems[:0]
	m.Anchors = m.Anchors[:0]
}

// ReplaceText removes removed characters at index and inserts inserted in
// their place, updating every run.
//
// Runs starting at or after an insertion point are shifted; runs strictly
// containing it grow. Runs inside a removed range are dropped and runs
// overlapping it are truncated. Per character break information is
// spliced with zero values and must be recomputed by the caller.
func (m *LogicalModel) ReplaceText(index text.CharacterIndex, removed text.Length, inserted []rune) {
	r := text.NewRange(index, removed).Clamp(m.Len())
	index, removed = r.Start, r.Len()
	added := text.Length(len(inserted))

	m.Text = slices.Replace(m.Text, int(index), int(index+removed), inserted...)

	if removed > 0 {
		m.Scripts = text.RemoveFromRuns(m.Scripts, index, removed)
		m.Fonts = text.RemoveFromRuns(m.Fonts, index, removed)
		m.Colors = text.RemoveFromRuns(m.Colors, index, removed)
		m.BackgroundColors = text.RemoveFromRuns(m.BackgroundColors, index, removed)
		m.FontDescriptions = text.RemoveFromRuns(m.FontDescriptions, index, removed)
		m.Underlines = text.RemoveFromRuns(m.Underlines, index, removed)
		m.Strikethroughs = text.RemoveFromRuns(m.Strikethroughs, index, removed)
		m.CharacterSpacings = text.RemoveFromRuns(m.CharacterSpacings, index, removed)
		m.BoundedParagraphs = text.RemoveFromRuns(m.BoundedParagraphs, index, removed)
	}
	if added > 0 {
		m.Scripts = text.InsertIntoRuns(m.Scripts, index, added)
		m.Fonts = text.InsertIntoRuns(m.Fonts, index, added)
		m.Colors = text.InsertIntoRuns(m.Colors, index, added)
		m.BackgroundColors = text.InsertIntoRuns(m.BackgroundColors, index, added)
		m.FontDescriptions = text.InsertIntoRuns(m.FontDescriptions, index, added)
		m.Underlines = text.InsertIntoRuns(m.Underlines, index, added)
		m.Strikethroughs = text.InsertIntoRuns(m.Strikethroughs, index, added)
		m.CharacterSpacings = text.InsertIntoRuns(m.CharacterSpacings, index, added)
		m.BoundedParagraphs = text.InsertIntoRuns(m.BoundedParagraphs, index, added)
	}

	if len(m.LineBreaks) > 0 {
		m.LineBreaks = slices.Replace(m.LineBreaks, int(index), int(index+removed), make([]text.LineBreakInfo, added)...)
	}
	if len(m.WordBreaks) > 0 {
		m.WordBreaks = slices.Replace(m.WordBreaks, int(index), int(index+removed), make([]text.WordBreakInfo, added)...)
	}
	m.Paragraphs = m.Paragraphs[:0]

	m.replaceItems(index, removed, added)
	m.replaceAnchors(index, removed, added)
}

func (m *LogicalModel) replaceItems(index text.CharacterIndex, removed, added text.Length) {
	end := index + removed
	items := m.EmbeddedItems[:0]
	for _, it := range m.EmbeddedItems {
		switch {
		case it.CharacterIndex < index:
		case it.CharacterIndex < end:
			continue
		default:
			it.CharacterIndex = it.CharacterIndex - removed + added
		}
		items = append(items, it)
	}
	m.EmbeddedItems = items
}

func (m *LogicalModel) replaceAnchors(index text.CharacterIndex, removed, added text.Length) {
	end := index + removed
	anchors := m.Anchors[:0]
	for _, a := range m.Anchors {
		a.StartIndex = shiftRemoved(a.StartIndex, index, end)
		a.EndIndex = shiftRemoved(a.EndIndex, index, end)
		if a.EndIndex <= a.StartIndex {
			continue
		}
		if added > 0 {
			if a.StartIndex >= index {
				a.StartIndex += added
			}
			if a.EndIndex > index {
				a.EndIndex += added
			}
		}
		anchors = append(anchors, a)
	}
	m.Anchors = anchors
}

// shiftRemoved maps a boundary position across the removal of [index, end).
func shiftRemoved(pos, index, end text.CharacterIndex) text.CharacterIndex {
	switch {
	case pos <= index:
		return pos
	case pos < end:
		return index
	default:
		return pos - (end - index)
	}
}

// ColorIndices returns, for each of the first count characters, 0 when no
// color run covers it and otherwise 1 + the index of the last run covering it.
func (m *LogicalModel) ColorIndices(count text.Length) []text.ColorIndex {
	return colorIndices(m.Colors, count)
}

// BackgroundColorIndices is ColorIndices for the background color runs.
func (m *LogicalModel) BackgroundColorIndices(count text.Length) []text.ColorIndex {
	return colorIndices(m.BackgroundColors, count)
}

func colorIndices(runs []text.ColorRun, count text.Length) []text.ColorIndex {
	out := make([]text.ColorIndex, count)
	for i, run := range runs {
		end := min(run.End(), count)
		for c := run.Index; c < end; c++ {
			out[c] = text.ColorIndex(i + 1)
		}
	}
	return out
}

// FontDescriptionAt merges every font description run covering index.
func (m *LogicalModel) FontDescriptionAt(index text.CharacterIndex) (text.FontDescriptionRun, bool) {
	return text.MergeFontDescriptionRun(m.FontDescriptions, index)
}

// UnderlineAt merges every underline run covering index.
// The second result is false if the character is not underlined by a run.
func (m *LogicalModel) UnderlineAt(index text.CharacterIndex) (text.UnderlineProperties, bool) {
	var props text.UnderlineProperties
	found := false
	for _, run := range m.Underlines {
		if run.Contains(index) {
			props = props.Overlay(run.Properties)
			found = true
		}
	}
	return props, found
}

// StrikethroughAt merges every strikethrough run covering index.
func (m *LogicalModel) StrikethroughAt(index text.CharacterIndex) (text.StrikethroughProperties, bool) {
	var props text.StrikethroughProperties
	found := false
	for _, run := range m.Strikethroughs {
		if run.Contains(index) {
			props = props.Overlay(run.Properties)
			found = true
		}
	}
	return props, found
}

// CharacterSpacingAt returns the spacing of the last run covering index.
func (m *LogicalModel) CharacterSpacingAt(index text.CharacterIndex) (float32, bool) {
	for i := len(m.CharacterSpacings) - 1; i >= 0; i-- {
		if m.CharacterSpacings[i].Contains(index) {
			return m.CharacterSpacings[i].Value, true
		}
	}
	return 0, false
}

// BoundedParagraphAt returns the last bounded paragraph covering index.
func (m *LogicalModel) BoundedParagraphAt(index text.CharacterIndex) (text.BoundedParagraphRun, bool) {
	for i := len(m.BoundedParagraphs) - 1; i >= 0; i-- {
		if m.BoundedParagraphs[i].Contains(index) {
			return m.BoundedParagraphs[i], true
		}
	}
	return text.BoundedParagraphRun{}, false
}

// ScriptAt returns the script of the character at index.
func (m *LogicalModel) ScriptAt(index text.CharacterIndex) text.Script {
	if i := text.FindRun(m.Scripts, index); i >= 0 {
		return m.Scripts[i].Script
	}
	return text.ScriptUnknown
}

// FontAt returns the resolved font run covering index.
func (m *LogicalModel) FontAt(index text.CharacterIndex) (text.FontRun, bool) {
	if i := text.FindRun(m.Fonts, index); i >= 0 {
		return m.Fonts[i], true
	}
	return text.FontRun{}, false
}

// AnchorAt returns the anchor covering index.
func (m *LogicalModel) AnchorAt(index text.CharacterIndex) (text.Anchor, bool) {
	for _, a := range m.Anchors {
		if a.Contains(index) {
			return a, true
		}
	}
	return text.Anchor{}, false
}

// ParagraphRange returns the paragraph containing index, including its
// terminating new paragraph character.
func (m *LogicalModel) ParagraphRange(index text.CharacterIndex) text.Range {
	n := m.Len()
	if index > n {
		index = n
	}
	start := index
	for start > 0 && !text.IsNewParagraph(m.Text[start-1]) {
		start--
	}
	end := index
	for end < n {
		end++
		if text.IsNewParagraph(m.Text[end-1]) {
			break
		}
	}
	return text.Range{Start: start, End: end}
}

// CharacterDirections returns whether each character resolves right to
// left. It is nil until bidirectional information is computed.
func (m *LogicalModel) CharacterDirections() []text.CharacterDirection {
	if len(m.Paragraphs) == 0 {
		return nil
	}
	out := make([]text.CharacterDirection, m.Len())
	for _, p := range m.Paragraphs {
		for i, l := range p.Levels {
			if c := int(p.Characters.Index) + i; c < len(out) {
				out[c] = l%2 == 1
			}
		}
	}
	return out
}

// CheckRuns verifies the run invariants: every run inside the text and the
// script and font runs sorted without overlap. It returns a joined
// *text.RunError for each violation.
func (m *LogicalModel) CheckRuns() error {
	n := m.Len()
	errs := []error{
		text.CheckRunOrder("script", m.Scripts, n),
		text.CheckRunOrder("font", m.Fonts, n),
		text.CheckRunBounds("color", m.Colors, n),
		text.CheckRunBounds("background", m.BackgroundColors, n),
		text.CheckRunBounds("font description", m.FontDescriptions, n),
		text.CheckRunBounds("underline", m.Underlines, n),
		text.CheckRunBounds("strikethrough", m.Strikethroughs, n),
		text.CheckRunBounds("character spacing", m.CharacterSpacings, n),
		text.CheckRunBounds("bounded paragraph", m.BoundedParagraphs, n),
	}
	for i, it := range m.EmbeddedItems {
		if it.CharacterIndex >= n {
			errs = append(errs, &text.RunError{Vector: "embedded item", Kind: text.RunPastEnd, Index: i, Length: n})
		}
	}
	for i, a := range m.Anchors {
		if a.EndIndex > n || a.StartIndex > a.EndIndex {
			errs = append(errs, &text.RunError{Vector: "anchor", Kind: text.RunPastEnd, Index: i, Length: n})
		}
	}
	return errors.Join(errs...)
}

// Clamp drops or truncates every run extending past the text.
func (m *LogicalModel) Clamp() {
	n := m.Len()
	m.Scripts = text.ClampRuns(m.Scripts, n)
	m.Fonts = text.ClampRuns(m.Fonts, n)
	m.Colors = text.ClampRuns(m.Colors, n)
	m.BackgroundColors = text.ClampRuns(m.BackgroundColors, n)
	m.FontDescriptions = text.ClampRuns(m.FontDescriptions, n)
	m.Underlines = text.ClampRuns(m.Underlines, n)
	m.Strikethroughs = text.ClampRuns(m.Strikethroughs, n)
	m.CharacterSpacings = text.ClampRuns(m.CharacterSpacings, n)
	m.BoundedParagraphs = text.ClampRuns(m.BoundedParagraphs, n)

	items := m.EmbeddedItems[:0]
	for _, it := range m.EmbeddedItems {
		if it.CharacterIndex < n {
			items = append(items, it)
		}
	}
	m.EmbeddedItems = items
	anchors := m.Anchors[:0]
	for _, a := range m.Anchors {
		a.EndIndex = min(a.EndIndex, n)
		if a.StartIndex < a.EndIndex {
			anchors = append(anchors, a)
		}
	}
	m.Anchors = anchors
}

// ExtendInputStyle grows the style runs ending at end by count characters,
// so text inserted at end takes the style of the character before it.
// Font descriptions, colors and decorations are extended; anchors are not.
func (m *LogicalModel) ExtendInputStyle(end text.CharacterIndex, count text.Length) {
	if end == 0 || count == 0 {
		return
	}
	m.Colors = text.ExtendRunsEndingAt(m.Colors, end, count)
	m.BackgroundColors = text.ExtendRunsEndingAt(m.BackgroundColors, end, count)
	m.FontDescriptions = text.ExtendRunsEndingAt(m.FontDescriptions, end, count)
	m.Underlines = text.ExtendRunsEndingAt(m.Underlines, end, count)
	m.Strikethroughs = text.ExtendRunsEndingAt(m.Strikethroughs, end, count)
	m.CharacterSpacings = text.ExtendRunsEndingAt(m.CharacterSpacings, end, count)
}
