package controller

import (
	"github.com/gogpu/textkit/text"
	"github.com/gogpu/textkit/text/model"
)

// updateColors maps the character color runs and decorations to glyphs.
// The palettes hold the run colors in run order.
func (c *Controller) updateColors() {
	l, v := c.model.Logical, c.model.Visual
	n := l.Len()

	chars := l.ColorIndices(n)
	backs := l.BackgroundColorIndices(n)
	v.ColorIndices = v.ColorIndices[:0]
	v.BackgroundColorIndices = v.BackgroundColorIndices[:0]
	for _, ch := range v.GlyphsToCharacters {
		var fg, bg text.ColorIndex
		if ch < n {
			fg, bg = chars[ch], backs[ch]
		}
		v.ColorIndices = append(v.ColorIndices, fg)
		v.BackgroundColorIndices = append(v.BackgroundColorIndices, bg)
	}

	v.Colors = v.Colors[:0]
	for _, run := range l.Colors {
		v.Colors = append(v.Colors, run.Color)
	}
	v.BackgroundColors = v.BackgroundColors[:0]
	for _, run := range l.BackgroundColors {
		v.BackgroundColors = append(v.BackgroundColors, run.Color)
	}

	v.UnderlineRuns = v.UnderlineRuns[:0]
	for _, run := range l.Underlines {
		if gr, ok := glyphRange(v, run.CharacterRun, n); ok {
			v.UnderlineRuns = append(v.UnderlineRuns, model.UnderlinedGlyphRun{GlyphRun: gr, Properties: run.Properties})
		}
	}
	v.StrikethroughRuns = v.StrikethroughRuns[:0]
	for _, run := range l.Strikethroughs {
		if gr, ok := glyphRange(v, run.CharacterRun, n); ok {
			v.StrikethroughRuns = append(v.StrikethroughRuns, model.StrikethroughGlyphRun{GlyphRun: gr, Properties: run.Properties})
		}
	}
}

// glyphRange returns the glyphs shaped from the characters of run. A run
// starting inside a cluster includes the whole cluster.
func glyphRange(v *model.VisualModel, run text.CharacterRun, n text.Length) (text.GlyphRun, bool) {
	end := min(run.End(), n)
	if run.Index >= end || int(run.Index) >= len(v.CharactersToGlyph) {
		return text.GlyphRun{}, false
	}
	first := v.CharactersToGlyph[run.Index]
	last := first
	for int(last) < len(v.GlyphsToCharacters) && v.GlyphsToCharacters[last] < end {
		last++
	}
	if last == first {
		return text.GlyphRun{}, false
	}
	return text.GlyphRun{Index: first, Count: last - first}, true
}
