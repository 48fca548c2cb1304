package layout

import (
	"github.com/gogpu/textkit/text"
)

// breakLines splits the glyphs into lines and sets their glyph and
// character runs. Empty text gives one empty line.
func (ps *pass) breakLines() []text.LineRun {
	if ps.n == 0 {
		return []text.LineRun{{}}
	}
	var lines []text.LineRun
	start := 0
	var charStart text.CharacterIndex
	for start < ps.n {
		end := ps.fitLine(start)
		charEnd := ps.lastCharacter(end-1) + 1
		lines = append(lines, text.LineRun{
			Glyphs:     text.GlyphRun{Index: text.GlyphIndex(start), Count: text.Length(end - start)},
			Characters: text.CharacterRun{Index: charStart, Count: charEnd - charStart},
		})
		start, charStart = end, charEnd
	}
	if n := ps.m.Logical.Len(); charStart < n {
		lines[len(lines)-1].Characters.Count = n - lines[len(lines)-1].Characters.Index
		charStart = n
	}

	// A trailing new paragraph opens an empty last line.
	if ps.p.MultiLine && charStart > 0 && text.IsNewParagraph(ps.char(charStart-1)) {
		lines = append(lines, text.LineRun{
			Glyphs:     text.GlyphRun{Index: text.GlyphIndex(ps.n)},
			Characters: text.CharacterRun{Index: charStart},
		})
	}
	return lines
}

// fitLine returns the end of the line starting at glyph start.
//
// White space may overflow the width. A line without a break opportunity
// is broken at the last cluster that fits; a cluster wider than the line is
// laid out alone.
func (ps *pass) fitLine(start int) int {
	limit := Unbounded
	if ps.p.MultiLine && ps.p.bounded() {
		limit = ps.p.Width
	}
	var width float32
	lastBreak := -1
	for g := start; g < ps.n; g++ {
		last := ps.lastCharacter(g)
		r := ps.char(last)
		if ps.p.MultiLine && text.IsNewParagraph(r) && ps.clusterEnd(g) {
			return g + 1
		}
		adv := ps.advances[g]
		if !text.IsWhiteSpace(r) && width+adv > limit && g > start {
			if lastBreak > start {
				return lastBreak
			}
			if b := ps.clusterStart(g); b > start {
				return b
			}
			for g+1 < ps.n && !ps.clusterEnd(g) {
				g++
			}
			return g + 1
		}
		width += adv
		if ps.clusterEnd(g) && ps.canBreakAfter(last) {
			lastBreak = g + 1
		}
	}
	return ps.n
}

func (ps *pass) clusterStart(g int) int {
	for g > 0 && ps.character(g-1) == ps.character(g) {
		g--
	}
	return g
}

func (ps *pass) canBreakAfter(c text.CharacterIndex) bool {
	if ps.p.WrapMode == text.WrapCharacter {
		return true
	}
	breaks := ps.m.Logical.LineBreaks
	return int(c) < len(breaks) && breaks[c] != text.LineNoBreak
}

// measure sets the width, trailing white space, vertical metrics, spacing
// and direction of l.
func (ps *pass) measure(l *text.LineRun) {
	start, end := int(l.Glyphs.Index), int(l.Glyphs.End())

	var width, extra float32
	trailing := true
	for g := end - 1; g >= start; g-- {
		adv := ps.advances[g]
		if trailing && text.IsWhiteSpace(ps.char(ps.lastCharacter(g))) {
			extra += adv
			continue
		}
		trailing = false
		width += adv
	}
	l.Width, l.Extra = width, extra

	var asc, desc float32
	for g := start; g < end; g++ {
		m := ps.fontMetrics(ps.m.Visual.Glyphs[g].FontID)
		asc = max(asc, m.Ascender)
		desc = min(desc, m.Descender)
		if it, ok := ps.items[ps.character(g)]; ok {
			asc = max(asc, it.Height)
		}
	}
	if start == end {
		font := ps.p.DefaultFont
		if ps.n > 0 {
			font = ps.m.Visual.Glyphs[ps.n-1].FontID
		}
		if font != 0 {
			m := ps.fontMetrics(font)
			asc, desc = m.Ascender, m.Descender
		}
	}
	l.Ascender, l.Descender = asc, desc

	l.LineSpacing = ps.p.LineSpacing
	if bp, ok := ps.m.Logical.BoundedParagraphAt(l.Characters.Index); ok && bp.RelativeLineSizeDefined {
		l.LineSpacing += (asc - desc) * (bp.RelativeLineSize - 1)
	}
	l.Direction = ps.paragraphRTL(l.Characters.Index)
}
