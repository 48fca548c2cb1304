package typeset

import (
	"image/color"

	"github.com/chewxy/math32"

	"github.com/gogpu/textkit"
	"github.com/gogpu/textkit/internal/image"
	"github.com/gogpu/textkit/text"
	"github.com/gogpu/textkit/text/fonts"
	"github.com/gogpu/textkit/text/model"
)

// Style selects what CreateImageBuffer draws.
type Style int

const (
	// StyleNone draws the glyphs in their colors, then underlines and
	// strikethroughs.
	StyleNone Style = iota
	// StyleMask draws the glyphs in opaque white.
	StyleMask
	// StyleShadow draws the glyphs in the shadow color at the shadow offset.
	StyleShadow
	// StyleUnderline draws only the underlines.
	StyleUnderline
	// StyleOutline draws the glyphs dilated by the outline width in the
	// outline color.
	StyleOutline
	// StyleBackground draws only the character background colors.
	StyleBackground
	// StyleStrikethrough draws only the strikethroughs.
	StyleStrikethrough
)

// String returns the string representation of the style.
func (s Style) String() string {
	switch s {
	case StyleNone:
		return "None"
	case StyleMask:
		return "Mask"
	case StyleShadow:
		return "Shadow"
	case StyleUnderline:
		return "Underline"
	case StyleOutline:
		return "Outline"
	case StyleBackground:
		return "Background"
	case StyleStrikethrough:
		return "Strikethrough"
	default:
		return "Unknown"
	}
}

// RenderBehaviour selects the layers Render produces.
type RenderBehaviour int

const (
	// RenderText composites background, shadow, outline, glyphs and
	// decorations into one buffer.
	RenderText RenderBehaviour = iota
	// RenderTextOnly draws the glyphs and their decorations.
	RenderTextOnly
	// RenderStylesOnly draws everything but the glyphs.
	RenderStylesOnly
	// RenderMaskOnly draws the glyph coverage.
	RenderMaskOnly
)

// Typesetter renders a laid out model into pixel buffers.
//
// It reads the model and never modifies it. A Typesetter is not safe for
// concurrent use with edits of its model.
type Typesetter struct {
	model   *model.Model
	service fonts.Service
	pool    *image.Pool
}

// New creates a typesetter for m drawing glyphs rasterized by service.
func New(m *model.Model, service fonts.Service) *Typesetter {
	return &Typesetter{
		model:   m,
		service: service,
		pool:    image.NewPool(2),
	}
}

// Model returns the rendered model.
func (t *Typesetter) Model() *model.Model {
	return t.model
}

// Range selects the glyphs [From, To) to draw. A zero To draws up to the
// last glyph.
type Range struct {
	From, To text.GlyphIndex
}

// Params configures CreateImageBuffer.
type Params struct {
	Width, Height int
	Style         Style
	Format        image.Format
	// IgnoreHorizontalAlignment draws every line at its start edge.
	IgnoreHorizontalAlignment bool
	// Offset moves everything drawn.
	Offset text.Vector2
	Glyphs Range
}

// CreateImageBuffer allocates a transparent buffer and draws p.Style into it.
func (t *Typesetter) CreateImageBuffer(p Params) (*image.Buffer, error) {
	buf, err := image.NewBuffer(p.Width, p.Height, p.Format)
	if err != nil {
		return nil, err
	}
	t.draw(buf, p, false)
	return buf, nil
}

// Render draws the model into a buffer of the given size. The text block
// is placed by the vertical alignment of the model. When the horizontal
// alignment is ignored, lines start at the left edge for
// LayoutDirectionLTR and end at the right edge for LayoutDirectionRTL.
func (t *Typesetter) Render(size text.Size, direction text.LayoutDirection, behaviour RenderBehaviour,
	ignoreHorizontalAlignment bool, format image.Format) (*image.Buffer, error) {
	w, h := int(math32.Ceil(size.Width)), int(math32.Ceil(size.Height))
	out, err := image.NewBuffer(w, h, format)
	if err != nil {
		return nil, err
	}
	v := t.model.Visual
	p := Params{
		Width:                     w,
		Height:                    h,
		Format:                    format,
		IgnoreHorizontalAlignment: ignoreHorizontalAlignment,
		Offset:                    text.Vector2{Y: verticalOffset(v, float32(h))},
	}
	rtl := direction == text.LayoutDirectionRTL

	var styles []Style
	switch behaviour {
	case RenderTextOnly:
		styles = []Style{StyleNone}
	case RenderMaskOnly:
		styles = []Style{StyleMask}
	case RenderStylesOnly:
		styles = append(t.styleLayers(), StyleUnderline, StyleStrikethrough)
	default:
		styles = append(t.styleLayers(), StyleNone)
	}

	for _, s := range styles {
		if s == StyleNone {
			p.Style = StyleNone
			t.draw(out, p, rtl)
			continue
		}
		layer, err := t.pool.Get(w, h, format)
		if err != nil {
			return nil, err
		}
		p.Style = s
		t.draw(layer, p, rtl)
		image.Composite(out, layer, 0, 0)
		t.pool.Put(layer)
	}
	return out, nil
}

// styleLayers returns the enabled layers drawn below the glyphs, bottom
// first.
func (t *Typesetter) styleLayers() []Style {
	v := t.model.Visual
	var out []Style
	if len(v.BackgroundColors) > 0 {
		out = append(out, StyleBackground)
	}
	if v.ShadowOffset != (text.Vector2{}) && !v.ShadowColor.IsTransparent() {
		out = append(out, StyleShadow)
	}
	if v.OutlineWidth > 0 && !v.OutlineColor.IsTransparent() {
		out = append(out, StyleOutline)
	}
	return out
}

func verticalOffset(v *model.VisualModel, height float32) float32 {
	free := height - v.LayoutSize.Height
	switch v.VerticalAlignment {
	case text.VerticalAlignCenter:
		return math32.Floor(free / 2)
	case text.VerticalAlignBottom:
		return free
	default:
		return 0
	}
}

// pass is the state of one draw call.
type pass struct {
	t     *Typesetter
	v     *model.VisualModel
	l     *model.LogicalModel
	buf   *image.Buffer
	p     Params
	rtl   bool
	from  text.GlyphIndex
	to    text.GlyphIndex
	items map[text.CharacterIndex]bool
}

func (t *Typesetter) draw(buf *image.Buffer, p Params, rtl bool) {
	v := t.model.Visual
	ps := &pass{
		t:    t,
		v:    v,
		l:    t.model.Logical,
		buf:  buf,
		p:    p,
		rtl:  rtl,
		from: p.Glyphs.From,
		to:   p.Glyphs.To,
	}
	n := v.NumberOfGlyphs()
	if ps.to == 0 || ps.to > n {
		ps.to = n
	}
	if ps.from >= ps.to || len(v.GlyphPositions) < int(n) {
		return
	}
	if len(ps.l.EmbeddedItems) > 0 {
		ps.items = make(map[text.CharacterIndex]bool, len(ps.l.EmbeddedItems))
		for _, it := range ps.l.EmbeddedItems {
			ps.items[it.CharacterIndex] = true
		}
	}

	switch p.Style {
	case StyleBackground:
		ps.drawBackground()
	case StyleUnderline:
		ps.drawUnderlines()
	case StyleStrikethrough:
		ps.drawStrikethroughs()
	case StyleNone:
		ps.drawGlyphs()
		ps.drawUnderlines()
		ps.drawStrikethroughs()
	default:
		ps.drawGlyphs()
	}
}

// lineOffset returns the horizontal pen offset of line l.
func (ps *pass) lineOffset(l *text.LineRun) float32 {
	x := ps.p.Offset.X
	switch {
	case !ps.p.IgnoreHorizontalAlignment:
		x += l.AlignmentOffset
	case ps.rtl:
		x += float32(ps.buf.Width()) - l.Width
	}
	return x
}

// eachLine calls fn for every line with glyphs in the drawn range, passing
// the clipped glyph range.
func (ps *pass) eachLine(fn func(l *text.LineRun, from, to text.GlyphIndex)) {
	for i := range ps.v.Lines {
		l := &ps.v.Lines[i]
		from := max(l.Glyphs.Index, ps.from)
		to := min(l.Glyphs.End(), ps.to)
		if from < to {
			fn(l, from, to)
		}
	}
}

// baseline returns the baseline of line l in buffer coordinates.
func (ps *pass) baseline(l *text.LineRun) float32 {
	if l.Glyphs.Count == 0 || int(l.Glyphs.Index) >= len(ps.v.GlyphPositions) {
		return 0
	}
	return ps.v.GlyphPositions[l.Glyphs.Index].Y + ps.p.Offset.Y
}

// isItem reports whether glyph g stands for an embedded item.
func (ps *pass) isItem(g text.GlyphIndex) bool {
	if ps.items == nil {
		return false
	}
	return ps.items[ps.v.GlyphsToCharacters[g]]
}

// glyphColor returns the premultiplied color of glyph g for the style.
func (ps *pass) glyphColor(g text.GlyphIndex) color.RGBA {
	v := ps.v
	switch ps.p.Style {
	case StyleMask:
		return color.RGBA{R: 255, G: 255, B: 255, A: 255}
	case StyleShadow:
		return v.ShadowColor.PremultipliedRGBA()
	case StyleOutline:
		return v.OutlineColor.PremultipliedRGBA()
	}
	return ps.foreground(g).PremultipliedRGBA()
}

func (ps *pass) foreground(g text.GlyphIndex) textkit.Color {
	v := ps.v
	if int(g) < len(v.ColorIndices) {
		if idx := v.ColorIndices[g]; idx > 0 && int(idx) <= len(v.Colors) {
			return v.Colors[idx-1]
		}
	}
	return v.TextColor
}

func round(x float32) int {
	return int(math32.Floor(x + 0.5))
}
