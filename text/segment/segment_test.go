package segment

import (
	"reflect"
	"testing"

	"github.com/gogpu/textkit/text"
)

func TestScriptOf(t *testing.T) {
	tests := []struct {
		name string
		r    rune
		want text.Script
	}{
		{"latin", 'A', text.ScriptLatin},
		{"cyrillic", 'Ж', text.ScriptCyrillic},
		{"arabic", 'م', text.ScriptArabic},
		{"hebrew", 'ש', text.ScriptHebrew},
		{"han", '中', text.ScriptHan},
		{"devanagari", 'क', text.ScriptDevanagari},
		{"digit", '7', text.ScriptCommon},
		{"emoji", 0x1F600, text.ScriptEmoji},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ScriptOf(tt.r); got != tt.want {
				t.Errorf("ScriptOf(%U) = %v, want %v", tt.r, got, tt.want)
			}
		})
	}
}

func TestIsCommonScript(t *testing.T) {
	for _, r := range []rune{' ', '.', '1', '\n', text.ZeroWidthJoiner, 0x0301} {
		if !IsCommonScript(r) {
			t.Errorf("IsCommonScript(%U) = false", r)
		}
	}
	for _, r := range []rune{'a', 'م', 0x1F600} {
		if IsCommonScript(r) {
			t.Errorf("IsCommonScript(%U) = true", r)
		}
	}
}

func TestScripts_EmojiSequence(t *testing.T) {
	runes := []rune{'a', 0x1F468, text.ZeroWidthJoiner, 0x1F469, ' '}
	want := []text.Script{text.ScriptLatin, text.ScriptEmoji, text.ScriptEmoji, text.ScriptEmoji, text.ScriptCommon}
	if got := Scripts(runes); !reflect.DeepEqual(got, want) {
		t.Errorf("Scripts() = %v, want %v", got, want)
	}
}

func TestLineBreaks(t *testing.T) {
	got := LineBreaks([]rune("ab cd\nef"))
	want := []text.LineBreakInfo{
		text.LineNoBreak, text.LineNoBreak, text.LineAllowBreak,
		text.LineNoBreak, text.LineNoBreak, text.LineMustBreak,
		text.LineNoBreak, text.LineMustBreak,
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("LineBreaks() = %v, want %v", got, want)
	}
	if got := LineBreaks(nil); len(got) != 0 {
		t.Errorf("LineBreaks(nil) = %v", got)
	}
}

func TestWordBreaks(t *testing.T) {
	got := WordBreaks([]rune("hi you"))
	want := []text.WordBreakInfo{
		text.WordNoBreak, text.WordBreak, text.WordBreak,
		text.WordNoBreak, text.WordNoBreak, text.WordBreak,
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("WordBreaks() = %v, want %v", got, want)
	}
}

func TestGraphemeStarts(t *testing.T) {
	got := GraphemeStarts([]rune{'e', 0x0301, 'x'})
	want := []bool{true, false, true}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("GraphemeStarts() = %v, want %v", got, want)
	}
}

func TestBidi(t *testing.T) {
	runes := []rune("Hello مرحبا")
	paras := Bidi(runes, text.Range{Start: 0, End: text.Length(len(runes))}, text.LayoutDirectionLTR, false)
	if len(paras) != 1 {
		t.Fatalf("got %d paragraphs, want 1", len(paras))
	}
	p := paras[0]
	if p.RightToLeft {
		t.Error("paragraph starting with Latin must be LTR")
	}
	if !p.HasRTL {
		t.Error("paragraph with Arabic must report RTL characters")
	}
	dirs := p.Directions()
	for i := 0; i < 5; i++ {
		if dirs[i] {
			t.Errorf("character %d reported RTL", i)
		}
	}
	for i := 6; i < 11; i++ {
		if !dirs[i] {
			t.Errorf("character %d reported LTR", i)
		}
	}
}

func TestBidi_Paragraphs(t *testing.T) {
	runes := []rune("abc\nمرح")
	paras := Bidi(runes, text.Range{Start: 0, End: 7}, text.LayoutDirectionLTR, false)
	if len(paras) != 2 {
		t.Fatalf("got %d paragraphs, want 2", len(paras))
	}
	if paras[0].Characters != (text.CharacterRun{Index: 0, Count: 4}) || paras[0].RightToLeft {
		t.Errorf("first paragraph = %+v", paras[0])
	}
	if paras[1].Characters != (text.CharacterRun{Index: 4, Count: 3}) || !paras[1].RightToLeft {
		t.Errorf("second paragraph = %+v", paras[1])
	}
}

func TestBidi_MatchLayout(t *testing.T) {
	runes := []rune("abc")
	paras := Bidi(runes, text.Range{Start: 0, End: 3}, text.LayoutDirectionRTL, true)
	if len(paras) != 1 || !paras[0].RightToLeft {
		t.Fatalf("paragraph must follow the layout direction: %+v", paras)
	}
	for i, l := range paras[0].Levels {
		if l != 2 {
			t.Errorf("level[%d] = %d, want 2", i, l)
		}
	}
}

func TestReorder(t *testing.T) {
	tests := []struct {
		name   string
		levels []uint8
		want   []int
	}{
		{"empty", nil, []int{}},
		{"ltr", []uint8{0, 0, 0}, []int{0, 1, 2}},
		{"rtl", []uint8{1, 1, 1}, []int{2, 1, 0}},
		{"mixed ltr base", []uint8{0, 0, 1, 1, 1}, []int{0, 1, 4, 3, 2}},
		{"ltr inside rtl", []uint8{1, 2, 2, 1}, []int{3, 1, 2, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Reorder(tt.levels); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Reorder(%v) = %v, want %v", tt.levels, got, tt.want)
			}
		})
	}
}
