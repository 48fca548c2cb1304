package segment

import (
	"golang.org/x/text/unicode/bidi"

	"github.com/gogpu/textkit/text"
)

// Paragraph is the bidirectional analysis of one paragraph.
type Paragraph struct {
	// Characters is the paragraph range, including its terminator.
	Characters text.CharacterRun
	// RightToLeft is the resolved base direction.
	RightToLeft bool
	// HasRTL reports whether any character resolved to right to left.
	HasRTL bool
	// Levels holds the embedding level of each character.
	Levels []uint8
}

// Directions returns the direction of every character of the paragraph.
func (p Paragraph) Directions() []text.CharacterDirection {
	dirs := make([]text.CharacterDirection, len(p.Levels))
	for i, l := range p.Levels {
		dirs[i] = l%2 == 1
	}
	return dirs
}

// Bidi analyzes every paragraph intersecting r.
//
// The base direction of a paragraph comes from its first strong character.
// When matchLayout is set, or the paragraph has no strong character,
// the layout direction is used instead.
func Bidi(runes []rune, r text.Range, dir text.LayoutDirection, matchLayout bool) []Paragraph {
	r = r.Clamp(text.Length(len(runes)))
	var out []Paragraph
	start := r.Start
	for i := r.Start; i < r.End; i++ {
		if text.IsNewParagraph(runes[i]) || i+1 == r.End {
			out = append(out, analyzeParagraph(runes[start:i+1], start, dir, matchLayout))
			start = i + 1
		}
	}
	return out
}

func analyzeParagraph(runes []rune, offset text.CharacterIndex, dir text.LayoutDirection, matchLayout bool) Paragraph {
	p := Paragraph{
		Characters: text.CharacterRun{Index: offset, Count: text.Length(len(runes))},
		Levels:     make([]uint8, len(runes)),
	}
	if matchLayout {
		p.RightToLeft = dir == text.LayoutDirectionRTL
	} else if rtl, ok := firstStrong(runes); ok {
		p.RightToLeft = rtl
	} else {
		p.RightToLeft = dir == text.LayoutDirectionRTL
	}

	base := uint8(0)
	defaultDir := bidi.LeftToRight
	if p.RightToLeft {
		base = 1
		defaultDir = bidi.RightToLeft
	}
	for i := range p.Levels {
		p.Levels[i] = base
	}

	var para bidi.Paragraph
	if _, err := para.SetString(string(runes), bidi.DefaultDirection(defaultDir)); err != nil {
		return p
	}
	ordering, err := para.Order()
	if err != nil {
		return p
	}
	for i := 0; i < ordering.NumRuns(); i++ {
		run := ordering.Run(i)
		startRune, endRune := run.Pos()
		level := base
		switch {
		case run.Direction() == bidi.RightToLeft:
			level = 1
			p.HasRTL = true
		case p.RightToLeft:
			level = 2
		}
		for j := startRune; j <= endRune && j < len(p.Levels); j++ {
			p.Levels[j] = level
		}
	}
	if p.RightToLeft {
		p.HasRTL = true
	}
	return p
}

// firstStrong returns the direction of the first strong character.
func firstStrong(runes []rune) (rtl bool, ok bool) {
	for _, r := range runes {
		props, _ := bidi.LookupRune(r)
		switch props.Class() {
		case bidi.L:
			return false, true
		case bidi.R, bidi.AL:
			return true, true
		}
	}
	return false, false
}

// Reorder returns the visual order of a line given the embedding levels of
// its characters in logical order. order[v] is the logical offset displayed
// at visual position v.
func Reorder(levels []uint8) []int {
	order := make([]int, len(levels))
	for i := range order {
		order[i] = i
	}
	if len(levels) == 0 {
		return order
	}
	highest, lowestOdd := uint8(0), uint8(255)
	for _, l := range levels {
		if l > highest {
			highest = l
		}
		if l%2 == 1 && l < lowestOdd {
			lowestOdd = l
		}
	}
	for level := highest; level >= lowestOdd && level > 0; level-- {
		for i := 0; i < len(levels); {
			if levels[order[i]] < level {
				i++
				continue
			}
			j := i
			for j < len(levels) && levels[order[j]] >= level {
				j++
			}
			for a, b := i, j-1; a < b; a, b = a+1, b-1 {
				order[a], order[b] = order[b], order[a]
			}
			i = j
		}
	}
	return order
}
