package segment

import (
	"github.com/go-text/typesetting/segmenter"
	"github.com/rivo/uniseg"

	"github.com/gogpu/textkit/text"
)

// LineBreaks returns the line break opportunity after every character,
// following UAX #14. The last character always reports text.LineMustBreak.
func LineBreaks(runes []rune) []text.LineBreakInfo {
	info := make([]text.LineBreakInfo, len(runes))
	if len(runes) == 0 {
		return info
	}
	var seg segmenter.Segmenter
	seg.Init(runes)
	it := seg.LineIterator()
	for it.Next() {
		line := it.Line()
		last := line.Offset + len(line.Text) - 1
		if last < 0 || last >= len(info) {
			continue
		}
		if line.IsMandatoryBreak {
			info[last] = text.LineMustBreak
		} else {
			info[last] = text.LineAllowBreak
		}
	}
	return info
}

// WordBreaks returns whether a word boundary follows every character,
// following UAX #29. Boundaries inside grapheme clusters are never reported.
func WordBreaks(runes []rune) []text.WordBreakInfo {
	info := make([]text.WordBreakInfo, len(runes))
	rest := string(runes)
	state := -1
	index := 0
	for rest != "" {
		var cluster string
		var boundaries int
		cluster, rest, boundaries, state = uniseg.StepString(rest, state)
		index += runeCount(cluster)
		if boundaries&uniseg.MaskWord != 0 && index > 0 && index <= len(info) {
			info[index-1] = text.WordBreak
		}
	}
	return info
}

// GraphemeStarts reports for every character whether it starts a grapheme cluster.
func GraphemeStarts(runes []rune) []bool {
	starts := make([]bool, len(runes))
	rest := string(runes)
	state := -1
	index := 0
	for rest != "" {
		var cluster string
		cluster, rest, _, state = uniseg.StepString(rest, state)
		if index < len(starts) {
			starts[index] = true
		}
		index += runeCount(cluster)
	}
	return starts
}

func runeCount(s string) int {
	n := 0
	for range s {
		n++
	}
	return n
}
