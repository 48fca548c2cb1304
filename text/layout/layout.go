package layout

import (
	"github.com/chewxy/math32"

	"github.com/gogpu/textkit/text"
	"github.com/gogpu/textkit/text/fonts"
	"github.com/gogpu/textkit/text/model"
)

// Unbounded is a width that never wraps.
const Unbounded float32 = math32.MaxFloat32

// Parameters configures one layout pass.
type Parameters struct {
	// Width is the wrapping width. Zero, negative or Unbounded never wraps.
	Width float32
	// WrapMode selects word or character wrapping.
	WrapMode text.LineWrapMode
	// MultiLine enables wrapping and new paragraph breaks.
	// A single line control lays everything out on one line.
	MultiLine bool
	// Alignment is the default horizontal alignment of lines.
	Alignment text.HorizontalAlignment
	// LineSpacing is added below every line.
	LineSpacing float32
	// CharacterSpacing is added after every cluster without a character
	// spacing run.
	CharacterSpacing float32
	// DefaultFont provides the line metrics of empty text.
	DefaultFont text.FontID
}

func (p Parameters) bounded() bool {
	return p.Width > 0 && p.Width < Unbounded
}

// Result is the output of a layout pass.
type Result struct {
	Lines     []text.LineRun
	Positions []text.Vector2
	Advances  []float32
	// Size is the extent of the laid out text. The width excludes
	// trailing white space.
	Size text.Size
}

// Apply stores r in v.
func (r Result) Apply(v *model.VisualModel) {
	v.Lines = append(v.Lines[:0], r.Lines...)
	v.GlyphPositions = append(v.GlyphPositions[:0], r.Positions...)
	v.GlyphAdvances = append(v.GlyphAdvances[:0], r.Advances...)
	v.LayoutSize = r.Size
}

// Engine lays out shaped text. It is safe for concurrent use when the
// font service is.
type Engine struct {
	service fonts.Service
}

// NewEngine creates an engine reading line metrics from service.
func NewEngine(service fonts.Service) *Engine {
	return &Engine{service: service}
}

// pass holds the state of one Layout call.
type pass struct {
	e      *Engine
	m      *model.Model
	p      Parameters
	n      int // glyphs
	levels []uint8
	items  map[text.CharacterIndex]text.EmbeddedItem

	metrics  map[text.FontID]fonts.Metrics
	advances []float32
}

// Layout lays out the glyphs of m with p. The model is not modified.
//
// m.Visual must hold the shaped glyphs and their character tables, and
// m.Logical the line breaks and bidirectional paragraphs of the text.
func (e *Engine) Layout(m *model.Model, p Parameters) Result {
	ps := &pass{
		e:       e,
		m:       m,
		p:       p,
		n:       len(m.Visual.Glyphs),
		metrics: make(map[text.FontID]fonts.Metrics),
	}
	ps.levels = characterLevels(m.Logical)
	if len(m.Logical.EmbeddedItems) > 0 {
		ps.items = make(map[text.CharacterIndex]text.EmbeddedItem, len(m.Logical.EmbeddedItems))
		for _, it := range m.Logical.EmbeddedItems {
			ps.items[it.CharacterIndex] = it
		}
	}
	ps.computeAdvances()

	lines := ps.breakLines()
	positions := make([]text.Vector2, ps.n)
	var y, width float32
	for i := range lines {
		l := &lines[i]
		ps.measure(l)
		ps.position(l, y+l.Ascender, positions)
		y += l.Height()
		width = math32.Max(width, l.Width)
	}
	ps.align(lines, width)

	return Result{
		Lines:     lines,
		Positions: positions,
		Advances:  ps.advances,
		Size:      text.Size{Width: width, Height: y},
	}
}

func (ps *pass) fontMetrics(id text.FontID) fonts.Metrics {
	if m, ok := ps.metrics[id]; ok {
		return m
	}
	m := ps.e.service.Metrics(id)
	ps.metrics[id] = m
	return m
}

// character returns the first character of glyph g.
func (ps *pass) character(g int) text.CharacterIndex {
	return ps.m.Visual.GlyphsToCharacters[g]
}

// lastCharacter returns the last character of the cluster of glyph g.
func (ps *pass) lastCharacter(g int) text.CharacterIndex {
	count := text.Length(1)
	if cpg := ps.m.Visual.CharactersPerGlyph; g < len(cpg) && cpg[g] > 0 {
		count = cpg[g]
	}
	return ps.character(g) + count - 1
}

// clusterEnd reports whether glyph g is the last glyph of its cluster.
func (ps *pass) clusterEnd(g int) bool {
	return g+1 >= ps.n || ps.character(g+1) != ps.character(g)
}

func (ps *pass) char(c text.CharacterIndex) rune {
	if int(c) < len(ps.m.Logical.Text) {
		return ps.m.Logical.Text[c]
	}
	return 0
}

func (ps *pass) computeAdvances() {
	ps.advances = make([]float32, ps.n)
	for g, glyph := range ps.m.Visual.Glyphs {
		adv := glyph.Advance
		c := ps.character(g)
		if it, ok := ps.items[c]; ok {
			adv = it.Width
		}
		if ps.clusterEnd(g) && !text.IsNewParagraph(ps.char(ps.lastCharacter(g))) {
			if v, ok := ps.m.Logical.CharacterSpacingAt(c); ok {
				adv += v
			} else {
				adv += ps.p.CharacterSpacing
			}
		}
		ps.advances[g] = adv
	}
}

// characterLevels flattens the embedding levels of every paragraph.
func characterLevels(l *model.LogicalModel) []uint8 {
	levels := make([]uint8, len(l.Text))
	for _, p := range l.Paragraphs {
		for i, lv := range p.Levels {
			if c := int(p.Characters.Index) + i; c < len(levels) {
				levels[c] = lv
			}
		}
	}
	return levels
}

// paragraphRTL returns the base direction of the paragraph containing c.
func (ps *pass) paragraphRTL(c text.CharacterIndex) bool {
	for _, p := range ps.m.Logical.Paragraphs {
		if p.Characters.Contains(c) {
			return p.RightToLeft
		}
	}
	return false
}
