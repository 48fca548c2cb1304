package model

import (
	"errors"
	"reflect"
	"testing"

	"github.com/gogpu/textkit"
	"github.com/gogpu/textkit/text"
)

func cr(index, count uint32) text.CharacterRun {
	return text.CharacterRun{Index: index, Count: count}
}

func newStyled(s string) *LogicalModel {
	m := NewLogicalModel()
	m.SetText([]rune(s))
	m.Scripts = []text.ScriptRun{{CharacterRun: cr(0, m.Len()), Script: text.ScriptLatin}}
	m.Colors = []text.ColorRun{
		{CharacterRun: cr(2, 4), Color: textkit.Red},
		{CharacterRun: cr(4, 2), Color: textkit.Blue},
	}
	m.Underlines = []text.UnderlinedCharacterRun{{CharacterRun: cr(6, 3)}}
	m.EmbeddedItems = []text.EmbeddedItem{{CharacterIndex: 8}}
	m.Anchors = []text.Anchor{{StartIndex: 1, EndIndex: 5, Href: "x"}}
	return m
}

func TestLogicalModel_SetTextClearsRuns(t *testing.T) {
	m := newStyled("0123456789")
	m.SetText([]rune("abc"))
	if m.Len() != 3 {
		t.Fatalf("Len() = %d", m.Len())
	}
	if len(m.Scripts)+len(m.Colors)+len(m.Underlines)+len(m.EmbeddedItems)+len(m.Anchors) != 0 {
		t.Errorf("runs survived SetText")
	}
}

func TestLogicalModel_ColorIndices(t *testing.T) {
	m := newStyled("0123456789")
	got := m.ColorIndices(m.Len())
	want := []text.ColorIndex{0, 0, 1, 1, 2, 2, 0, 0, 0, 0}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ColorIndices = %v, want %v", got, want)
	}
	if got := m.BackgroundColorIndices(m.Len()); !reflect.DeepEqual(got, make([]text.ColorIndex, 10)) {
		t.Errorf("BackgroundColorIndices = %v", got)
	}
	if got := m.ColorIndices(3); !reflect.DeepEqual(got, []text.ColorIndex{0, 0, 1}) {
		t.Errorf("ColorIndices(3) = %v", got)
	}
}

func TestLogicalModel_ReplaceText(t *testing.T) {
	tests := []struct {
		name       string
		index      uint32
		removed    uint32
		inserted   string
		text       string
		colors     []text.CharacterRun
		underlines []text.CharacterRun
		items      []text.CharacterIndex
		anchors    [][2]text.CharacterIndex
	}{
		{
			name: "insert at start", index: 0, inserted: "ab",
			text:       "ab0123456789",
			colors:     []text.CharacterRun{cr(4, 4), cr(6, 2)},
			underlines: []text.CharacterRun{cr(8, 3)},
			items:      []text.CharacterIndex{10},
			anchors:    [][2]text.CharacterIndex{{3, 7}},
		},
		{
			name: "insert inside run", index: 3, inserted: "x",
			text:       "012x3456789",
			colors:     []text.CharacterRun{cr(2, 5), cr(5, 2)},
			underlines: []text.CharacterRun{cr(7, 3)},
			items:      []text.CharacterIndex{9},
			anchors:    [][2]text.CharacterIndex{{1, 6}},
		},
		{
			name: "remove inside", index: 3, removed: 2,
			text:       "01256789",
			colors:     []text.CharacterRun{cr(2, 2), cr(3, 1)},
			underlines: []text.CharacterRun{cr(4, 3)},
			items:      []text.CharacterIndex{6},
			anchors:    [][2]text.CharacterIndex{{1, 3}},
		},
		{
			name: "remove whole run", index: 4, removed: 2,
			text:       "01236789",
			colors:     []text.CharacterRun{cr(2, 2)},
			underlines: []text.CharacterRun{cr(4, 3)},
			items:      []text.CharacterIndex{6},
			anchors:    [][2]text.CharacterIndex{{1, 4}},
		},
		{
			name: "replace item", index: 8, removed: 1, inserted: "zz",
			text:       "01234567zz9",
			colors:     []text.CharacterRun{cr(2, 4), cr(4, 2)},
			underlines: []text.CharacterRun{cr(6, 2)},
			items:      nil,
			anchors:    [][2]text.CharacterIndex{{1, 5}},
		},
		{
			name: "remove past end is clamped", index: 7, removed: 100,
			text:       "0123456",
			colors:     []text.CharacterRun{cr(2, 4), cr(4, 2)},
			underlines: []text.CharacterRun{cr(6, 1)},
			items:      nil,
			anchors:    [][2]text.CharacterIndex{{1, 5}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newStyled("0123456789")
			m.ReplaceText(tt.index, tt.removed, []rune(tt.inserted))
			if got := string(m.Text); got != tt.text {
				t.Fatalf("Text = %q, want %q", got, tt.text)
			}
			var colors, underlines []text.CharacterRun
			for _, r := range m.Colors {
				colors = append(colors, r.CharacterRun)
			}
			for _, r := range m.Underlines {
				underlines = append(underlines, r.CharacterRun)
			}
			if !reflect.DeepEqual(colors, tt.colors) {
				t.Errorf("colors = %v, want %v", colors, tt.colors)
			}
			if !reflect.DeepEqual(underlines, tt.underlines) {
				t.Errorf("underlines = %v, want %v", underlines, tt.underlines)
			}
			var items []text.CharacterIndex
			for _, it := range m.EmbeddedItems {
				items = append(items, it.CharacterIndex)
			}
			if !reflect.DeepEqual(items, tt.items) {
				t.Errorf("items = %v, want %v", items, tt.items)
			}
			var anchors [][2]text.CharacterIndex
			for _, a := range m.Anchors {
				anchors = append(anchors, [2]text.CharacterIndex{a.StartIndex, a.EndIndex})
			}
			if !reflect.DeepEqual(anchors, tt.anchors) {
				t.Errorf("anchors = %v, want %v", anchors, tt.anchors)
			}
			if err := m.CheckRuns(); err != nil {
				t.Errorf("CheckRuns() = %v", err)
			}
		})
	}
}

func TestLogicalModel_ReplaceTextKeepsInvariants(t *testing.T) {
	for index := uint32(0); index <= 10; index++ {
		for removed := uint32(0); removed <= 10-index; removed++ {
			for _, inserted := range []string{"", "a", "xyz"} {
				m := newStyled("0123456789")
				m.LineBreaks = make([]text.LineBreakInfo, 10)
				m.ReplaceText(index, removed, []rune(inserted))
				if err := m.CheckRuns(); err != nil {
					t.Fatalf("ReplaceText(%d, %d, %q): %v", index, removed, inserted, err)
				}
				if len(m.LineBreaks) != len(m.Text) {
					t.Fatalf("ReplaceText(%d, %d, %q): %d line breaks for %d characters",
						index, removed, inserted, len(m.LineBreaks), len(m.Text))
				}
				if len(m.WordBreaks) != 0 {
					t.Fatalf("ReplaceText(%d, %d, %q): word breaks created", index, removed, inserted)
				}
			}
		}
	}
}

func TestLogicalModel_StyleLookups(t *testing.T) {
	m := NewLogicalModel()
	m.SetText([]rune("abcdef"))
	m.Underlines = []text.UnderlinedCharacterRun{
		{CharacterRun: cr(0, 4), Properties: text.UnderlineProperties{Height: 2, HeightDefined: true}},
		{CharacterRun: cr(2, 2), Properties: text.UnderlineProperties{Type: text.UnderlineDouble, TypeDefined: true}},
	}
	m.FontDescriptions = []text.FontDescriptionRun{
		{CharacterRun: cr(1, 3), Weight: text.FontWeightBold, WeightDefined: true},
	}
	m.CharacterSpacings = []text.CharacterSpacingCharacterRun{{CharacterRun: cr(0, 2), Value: 3}}
	m.Strikethroughs = []text.StrikethroughCharacterRun{{CharacterRun: cr(5, 1)}}

	u, ok := m.UnderlineAt(3)
	if !ok || u.Height != 2 || u.Type != text.UnderlineDouble {
		t.Errorf("UnderlineAt(3) = %+v, %v", u, ok)
	}
	if _, ok := m.UnderlineAt(5); ok {
		t.Error("UnderlineAt(5) found a run")
	}
	if fd, ok := m.FontDescriptionAt(2); !ok || fd.Weight != text.FontWeightBold {
		t.Errorf("FontDescriptionAt(2) = %+v, %v", fd, ok)
	}
	if v, ok := m.CharacterSpacingAt(1); !ok || v != 3 {
		t.Errorf("CharacterSpacingAt(1) = %v, %v", v, ok)
	}
	if _, ok := m.StrikethroughAt(5); !ok {
		t.Error("StrikethroughAt(5) not found")
	}
}

func TestLogicalModel_ParagraphRange(t *testing.T) {
	m := NewLogicalModel()
	m.SetText([]rune("ab\ncd\n\nef"))
	tests := []struct {
		index uint32
		want  text.Range
	}{
		{0, text.Range{Start: 0, End: 3}},
		{2, text.Range{Start: 0, End: 3}},
		{3, text.Range{Start: 3, End: 6}},
		{6, text.Range{Start: 6, End: 7}},
		{8, text.Range{Start: 7, End: 9}},
		{9, text.Range{Start: 7, End: 9}},
		{50, text.Range{Start: 7, End: 9}},
	}
	for _, tt := range tests {
		if got := m.ParagraphRange(tt.index); got != tt.want {
			t.Errorf("ParagraphRange(%d) = %+v, want %+v", tt.index, got, tt.want)
		}
	}
}

func TestLogicalModel_CheckRuns(t *testing.T) {
	m := NewLogicalModel()
	m.SetText([]rune("abc"))
	if err := m.CheckRuns(); err != nil {
		t.Fatalf("empty runs: %v", err)
	}

	m.Colors = []text.ColorRun{{CharacterRun: cr(1, 5)}}
	err := m.CheckRuns()
	var re *text.RunError
	if !errors.As(err, &re) || re.Kind != text.RunPastEnd || re.Vector != "color" {
		t.Errorf("CheckRuns() = %v, want color past end", err)
	}

	m.Colors = nil
	m.Fonts = []text.FontRun{{CharacterRun: cr(0, 2)}, {CharacterRun: cr(1, 2)}}
	if !errors.As(m.CheckRuns(), &re) || re.Kind != text.RunUnsorted {
		t.Errorf("overlapping fonts not reported")
	}

	// Overlapping style runs are allowed.
	m.Fonts = nil
	m.Colors = []text.ColorRun{{CharacterRun: cr(0, 3)}, {CharacterRun: cr(1, 1)}}
	if err := m.CheckRuns(); err != nil {
		t.Errorf("nested colors reported: %v", err)
	}

	m.Clamp()
	m.Anchors = []text.Anchor{{StartIndex: 2, EndIndex: 9}}
	m.Clamp()
	if len(m.Anchors) != 1 || m.Anchors[0].EndIndex != 3 {
		t.Errorf("Clamp anchors = %+v", m.Anchors)
	}
}

func TestLogicalModel_AnchorAt(t *testing.T) {
	m := newStyled("0123456789")
	if a, ok := m.AnchorAt(3); !ok || a.Href != "x" {
		t.Errorf("AnchorAt(3) = %+v, %v", a, ok)
	}
	if _, ok := m.AnchorAt(5); ok {
		t.Error("AnchorAt(5) found an anchor")
	}
}
