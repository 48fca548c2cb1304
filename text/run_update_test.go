package text

import (
	"errors"
	"reflect"
	"testing"

	"github.com/gogpu/textkit"
)

func colorRuns(ranges ...[2]uint32) []ColorRun {
	runs := make([]ColorRun, len(ranges))
	for i, r := range ranges {
		runs[i] = ColorRun{CharacterRun: CharacterRun{Index: r[0], Count: r[1]}, Color: textkit.Red}
	}
	return runs
}

func ranges(runs []ColorRun) [][2]uint32 {
	out := make([][2]uint32, len(runs))
	for i, r := range runs {
		out[i] = [2]uint32{r.Index, r.Count}
	}
	return out
}

func TestInsertIntoRuns(t *testing.T) {
	tests := []struct {
		name  string
		runs  []ColorRun
		index CharacterIndex
		count Length
		want  [][2]uint32
	}{
		{"before all", colorRuns([2]uint32{2, 3}), 0, 2, [][2]uint32{{4, 3}}},
		{"at run start shifts", colorRuns([2]uint32{2, 3}), 2, 1, [][2]uint32{{3, 3}}},
		{"inside run grows", colorRuns([2]uint32{2, 3}), 3, 4, [][2]uint32{{2, 7}}},
		{"at run end untouched", colorRuns([2]uint32{2, 3}), 5, 2, [][2]uint32{{2, 3}}},
		{"zero count", colorRuns([2]uint32{2, 3}), 0, 0, [][2]uint32{{2, 3}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ranges(InsertIntoRuns(tt.runs, tt.index, tt.count))
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("InsertIntoRuns() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRemoveFromRuns(t *testing.T) {
	tests := []struct {
		name  string
		runs  []ColorRun
		index CharacterIndex
		count Length
		want  [][2]uint32
	}{
		{"after run", colorRuns([2]uint32{0, 2}), 4, 2, [][2]uint32{{0, 2}}},
		{"before run shifts", colorRuns([2]uint32{6, 2}), 1, 3, [][2]uint32{{3, 2}}},
		{"run fully inside dropped", colorRuns([2]uint32{2, 2}), 1, 5, [][2]uint32{}},
		{"overlap start truncates", colorRuns([2]uint32{2, 4}), 0, 3, [][2]uint32{{0, 3}}},
		{"overlap end truncates", colorRuns([2]uint32{2, 4}), 4, 5, [][2]uint32{{2, 2}}},
		{"inside run shrinks", colorRuns([2]uint32{0, 10}), 3, 4, [][2]uint32{{0, 6}}},
		{"mixed", colorRuns([2]uint32{0, 2}, [2]uint32{2, 2}, [2]uint32{4, 4}), 1, 4, [][2]uint32{{0, 1}, {1, 3}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ranges(RemoveFromRuns(tt.runs, tt.index, tt.count))
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("RemoveFromRuns() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRemoveFromRuns_StaysInBounds(t *testing.T) {
	const length = 12
	for index := CharacterIndex(0); index < length; index++ {
		for count := Length(0); index+count <= length; count++ {
			runs := colorRuns([2]uint32{0, 3}, [2]uint32{3, 4}, [2]uint32{7, 5})
			runs = RemoveFromRuns(runs, index, count)
			if err := CheckRunOrder("color", runs, length-count); err != nil {
				t.Fatalf("remove(%d,%d): %v", index, count, err)
			}
		}
	}
}

func TestSpliceRuns(t *testing.T) {
	runs := []ScriptRun{
		{CharacterRun{0, 5}, ScriptLatin},
		{CharacterRun{5, 5}, ScriptArabic},
		{CharacterRun{10, 5}, ScriptLatin},
	}
	repl := []ScriptRun{{CharacterRun{3, 9}, ScriptHan}}
	got := SpliceRuns(runs, 3, 9, repl)
	want := []ScriptRun{
		{CharacterRun{0, 3}, ScriptLatin},
		{CharacterRun{3, 9}, ScriptHan},
		{CharacterRun{12, 3}, ScriptLatin},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("SpliceRuns() = %v, want %v", got, want)
	}
	if err := CheckRunOrder("script", got, 15); err != nil {
		t.Errorf("spliced runs invalid: %v", err)
	}
}

func TestSpliceRuns_Empty(t *testing.T) {
	got := SpliceRuns(nil, 0, 4, []ScriptRun{{CharacterRun{0, 4}, ScriptLatin}})
	if len(got) != 1 || got[0].Count != 4 {
		t.Errorf("SpliceRuns(nil) = %v", got)
	}
}

func TestClampRuns(t *testing.T) {
	got := ranges(ClampRuns(colorRuns([2]uint32{0, 4}, [2]uint32{4, 6}, [2]uint32{12, 1}), 8))
	want := [][2]uint32{{0, 4}, {4, 4}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ClampRuns() = %v, want %v", got, want)
	}
}

func TestExtendRunsEndingAt(t *testing.T) {
	runs := colorRuns([2]uint32{0, 3}, [2]uint32{3, 0}, [2]uint32{1, 2}, [2]uint32{3, 2})
	got := ranges(ExtendRunsEndingAt(runs, 3, 2))
	want := [][2]uint32{{0, 5}, {3, 0}, {1, 4}, {3, 2}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ExtendRunsEndingAt() = %v, want %v", got, want)
	}
}

func TestCheckRunOrder(t *testing.T) {
	err := CheckRunOrder("color", colorRuns([2]uint32{0, 4}, [2]uint32{2, 2}), 10)
	var runErr *RunError
	if !errors.As(err, &runErr) || runErr.Kind != RunUnsorted || runErr.Index != 1 {
		t.Errorf("CheckRunOrder() = %v, want unsorted at 1", err)
	}
	err = CheckRunBounds("color", colorRuns([2]uint32{8, 4}), 10)
	if !errors.As(err, &runErr) || runErr.Kind != RunPastEnd {
		t.Errorf("CheckRunBounds() = %v, want past end", err)
	}
}

func TestFindRun(t *testing.T) {
	runs := colorRuns([2]uint32{0, 3}, [2]uint32{3, 2}, [2]uint32{7, 3})
	tests := []struct {
		index CharacterIndex
		want  int
	}{
		{0, 0}, {2, 0}, {3, 1}, {4, 1}, {5, -1}, {7, 2}, {9, 2}, {10, -1},
	}
	for _, tt := range tests {
		if got := FindRun(runs, tt.index); got != tt.want {
			t.Errorf("FindRun(%d) = %d, want %d", tt.index, got, tt.want)
		}
	}
}

func TestMergeFontDescriptionRun(t *testing.T) {
	runs := []FontDescriptionRun{
		{CharacterRun: CharacterRun{0, 10}, Family: "Go", FamilyDefined: true, Size: 20 * 64, SizeDefined: true},
		{CharacterRun: CharacterRun{2, 3}, Weight: FontWeightBold, WeightDefined: true, Size: 30 * 64, SizeDefined: true},
	}
	got, ok := MergeFontDescriptionRun(runs, 3)
	if !ok {
		t.Fatal("expected a covering run")
	}
	if got.Family != "Go" || got.Weight != FontWeightBold || got.Size != 30*64 {
		t.Errorf("merged = %+v", got)
	}
	desc, size := DefaultFontDescription().Merge(&got, DefaultPointSize)
	if desc.Family != "Go" || desc.Weight != FontWeightBold || desc.Slant != FontSlantNormal || size != 30*64 {
		t.Errorf("Merge() = %+v, %d", desc, size)
	}
	if _, ok := MergeFontDescriptionRun(runs, 12); ok {
		t.Error("index 12 must not be covered")
	}
}

func TestParseFontAttributes(t *testing.T) {
	if w, ok := ParseFontWeight("Bold"); !ok || w != FontWeightBold {
		t.Errorf("ParseFontWeight(Bold) = %v, %v", w, ok)
	}
	if w, ok := ParseFontWeight("650"); !ok || w != 650 {
		t.Errorf("ParseFontWeight(650) = %v, %v", w, ok)
	}
	if _, ok := ParseFontWeight("fat"); ok {
		t.Error("ParseFontWeight(fat) should fail")
	}
	if w, ok := ParseFontWidth("condensed"); !ok || w != FontWidthCondensed {
		t.Errorf("ParseFontWidth(condensed) = %v, %v", w, ok)
	}
	if s, ok := ParseFontSlant("roman"); !ok || s != FontSlantNormal {
		t.Errorf("ParseFontSlant(roman) = %v, %v", s, ok)
	}
	if u, ok := ParseUnderlineType("double"); !ok || u != UnderlineDouble {
		t.Errorf("ParseUnderlineType(double) = %v, %v", u, ok)
	}
}

func TestUnderlineProperties_Overlay(t *testing.T) {
	base := UnderlineProperties{Type: UnderlineSolid, Height: 1, HeightDefined: true}
	got := base.Overlay(UnderlineProperties{Type: UnderlineDashed, TypeDefined: true, Color: textkit.Blue, ColorDefined: true})
	if got.Type != UnderlineDashed || got.Height != 1 || got.Color != textkit.Blue {
		t.Errorf("Overlay() = %+v", got)
	}
}
