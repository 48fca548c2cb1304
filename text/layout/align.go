package layout

import (
	"github.com/gogpu/textkit/text"
	"github.com/gogpu/textkit/text/model"
	"github.com/gogpu/textkit/text/segment"
)

// position sets the pen position of every glyph of l in visual order.
// Trailing white space of a right to left line hangs off its left edge.
func (ps *pass) position(l *text.LineRun, baseline float32, positions []text.Vector2) {
	start, end := int(l.Glyphs.Index), int(l.Glyphs.End())
	if start == end {
		return
	}
	levels := make([]uint8, end-start)
	for g := start; g < end; g++ {
		if c := int(ps.character(g)); c < len(ps.levels) {
			levels[g-start] = ps.levels[c]
		}
	}
	var x float32
	if l.Direction {
		x = -l.Extra
	}
	for _, off := range segment.Reorder(levels) {
		g := start + off
		positions[g] = text.Vector2{X: x, Y: baseline}
		x += ps.advances[g]
	}
}

// align sets the alignment offset of every line inside the wrapping width,
// or inside the widest line when unbounded. Begin and end follow the
// direction of each line's paragraph.
func (ps *pass) align(lines []text.LineRun, layoutWidth float32) {
	box := layoutWidth
	if ps.p.bounded() {
		box = ps.p.Width
	}
	for i := range lines {
		l := &lines[i]
		a := ps.p.Alignment
		if bp, ok := ps.m.Logical.BoundedParagraphAt(l.Characters.Index); ok && bp.HorizontalAlignmentDefined {
			a = bp.HorizontalAlignment
		}
		free := box - l.Width
		switch {
		case a == text.HorizontalAlignCenter:
			l.AlignmentOffset = free / 2
		case (a == text.HorizontalAlignEnd) != l.Direction:
			l.AlignmentOffset = free
		default:
			l.AlignmentOffset = 0
		}
	}
}

// Realign recomputes the alignment offsets of the lines already stored in
// m.Visual without laying the text out again.
func (e *Engine) Realign(m *model.Model, p Parameters) {
	ps := &pass{e: e, m: m, p: p}
	ps.align(m.Visual.Lines, m.Visual.LayoutSize.Width)
}
