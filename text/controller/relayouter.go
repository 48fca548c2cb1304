package controller

import (
	"slices"

	"github.com/gogpu/textkit"
	"github.com/gogpu/textkit/text"
	"github.com/gogpu/textkit/text/fonts"
	"github.com/gogpu/textkit/text/layout"
	"github.com/gogpu/textkit/text/model"
	"github.com/gogpu/textkit/text/segment"
)

// Relayout brings the visual model up to date for a control of the given
// size and layout direction, running only the pending stages.
//
// A size change schedules a new layout, a direction change re-resolves
// paragraph directions. With an empty size nothing runs and QueuedBySize is
// returned; the stages stay pending.
func (c *Controller) Relayout(size text.Size, direction text.LayoutDirection) UpdateTextType {
	if !c.ready {
		return NothingUpdated
	}
	if size != c.controlSize {
		c.controlSize = size
		c.ops |= layoutOperations
	}
	if direction != c.direction {
		c.direction = direction
		c.ops |= UpdateDirection | Align
	}
	if size.Width <= 0 || size.Height <= 0 {
		return QueuedBySize
	}
	if c.ops == NoOperation {
		return NothingUpdated
	}

	textkit.Logger().Debug("controller: relayout", "operations", c.ops, "size", size)
	c.updateLogical(c.ops)
	c.updateGlyphs(c.model.Visual, c.ops)
	c.ops &^= glyphOperations
	if c.ops&(Layout|Reorder) != 0 {
		res := c.engine.Layout(c.model, c.layoutParameters(size.Width))
		res.Apply(c.model.Visual)
		c.ops &^= Layout | Reorder | Align
	}
	if c.ops&Align != 0 {
		c.engine.Realign(c.model, c.layoutParameters(size.Width))
	}
	if c.ops&UpdateLayoutSize != 0 {
		v := c.model.Visual
		v.ControlSize = size
		if c.naturalValid {
			v.NaturalSize = c.natural
		}
	}
	if c.ops&Color != 0 {
		c.updateColors()
	}
	c.ops = NoOperation
	return ModelUpdated
}

// GetNaturalSize returns the size of the text laid out without a width
// limit. The result is cached until the text or a style changes.
func (c *Controller) GetNaturalSize() text.Size {
	if !c.ready {
		return text.Size{}
	}
	if c.naturalValid {
		return c.natural
	}
	c.natural = c.measure(layout.Unbounded).Size
	c.naturalValid = true
	return c.natural
}

// GetHeightForWidth returns the height of the text laid out at width.
// The visual model is not modified.
func (c *Controller) GetHeightForWidth(width float32) float32 {
	if !c.ready {
		return 0
	}
	return c.measure(width).Size.Height
}

// measure lays the text out at width without touching the visual model.
// Pending glyph stages run on a scratch visual model and stay pending for
// the next Relayout.
func (c *Controller) measure(width float32) layout.Result {
	c.updateLogical(c.ops & modelOperations)
	m := c.model
	if c.ops&glyphOperations != 0 {
		m = &model.Model{Logical: c.model.Logical, Visual: c.scratchVisual()}
		c.updateGlyphs(m.Visual, c.ops)
	}
	return c.engine.Layout(m, c.layoutParameters(width))
}

// scratchVisual returns a visual model for a measuring pass. The glyphs
// are copied when they are not reshaped.
func (c *Controller) scratchVisual() *model.VisualModel {
	v := model.NewVisualModel()
	if c.ops&ShapeText == 0 {
		src := c.model.Visual
		v.Glyphs = slices.Clone(src.Glyphs)
		v.GlyphsToCharacters = slices.Clone(src.GlyphsToCharacters)
		v.CharactersPerGlyph = slices.Clone(src.CharactersPerGlyph)
		v.GlyphsPerCharacter = slices.Clone(src.GlyphsPerCharacter)
		v.CharactersToGlyph = slices.Clone(src.CharactersToGlyph)
	}
	return v
}

func (c *Controller) layoutParameters(width float32) layout.Parameters {
	v := c.model.Visual
	return layout.Parameters{
		Width:            width,
		WrapMode:         c.wrapMode,
		MultiLine:        c.multiLine,
		Alignment:        v.HorizontalAlignment,
		LineSpacing:      c.lineSpacing,
		CharacterSpacing: c.characterSpacing,
		DefaultFont:      c.defaultFont(),
	}
}

func (c *Controller) defaultFont() text.FontID {
	return c.support.Cache().Resolve(c.support.Service(), c.cfg.description, c.cfg.pointSize, text.ScriptLatin)
}

// updateLogical runs the logical stages of ops and clears them from the
// pending mask. Glyph stages they invalidate are added to the mask.
func (c *Controller) updateLogical(ops OperationsMask) {
	l := c.model.Logical
	n := l.Len()

	if ops&ConvertToUTF32 != 0 {
		l.Scripts = l.Scripts[:0]
		l.Fonts = l.Fonts[:0]
		l.LineBreaks = l.LineBreaks[:0]
		l.WordBreaks = l.WordBreaks[:0]
		l.Paragraphs = l.Paragraphs[:0]
		c.ops |= glyphOperations
		c.markDirty(text.Range{End: n})
	}
	if ops&GetLineBreaks != 0 {
		l.LineBreaks = segment.LineBreaks(l.Text)
	}
	if ops&GetWordBreaks != 0 {
		l.WordBreaks = segment.WordBreaks(l.Text)
	}

	dirty := c.dirtyParagraphs()
	if ops&GetScripts != 0 && !dirty.Empty() {
		runs := c.support.SetScripts(l.Text, dirty.Start, dirty.Len())
		l.Scripts = text.SpliceRuns(l.Scripts, dirty.Start, dirty.Len(), runs)
	}
	if ops&ValidateFonts != 0 && !dirty.Empty() {
		runs := c.support.ValidateFonts(l.Text, l.Scripts, l.FontDescriptions,
			c.cfg.description, c.cfg.pointSize, dirty.Start, dirty.Len())
		l.Fonts = text.SpliceRuns(l.Fonts, dirty.Start, dirty.Len(), runs)
	}
	if ops&(BidiInfo|UpdateDirection) != 0 {
		before := paragraphDirections(l.Paragraphs)
		l.Paragraphs = segment.Bidi(l.Text, text.Range{End: n}, c.direction, false)
		if ops&BidiInfo == 0 && !equalDirections(before, paragraphDirections(l.Paragraphs)) {
			c.ops |= glyphOperations | layoutOperations | Color
		}
	}

	if ops&(GetScripts|ValidateFonts) != 0 {
		c.clean = true
		c.dirty = text.Range{}
	}
	c.ops &^= ops & logicalOperations
}

// updateGlyphs runs the glyph stages of ops into v.
func (c *Controller) updateGlyphs(v *model.VisualModel, ops OperationsMask) {
	if ops&ShapeText != 0 {
		c.shapeText(v)
		ops |= GetGlyphMetrics
	}
	if ops&GetGlyphMetrics != 0 {
		c.applyFontStyles(v)
	}
}

// dirtyParagraphs widens the dirty range to whole paragraphs.
func (c *Controller) dirtyParagraphs() text.Range {
	l := c.model.Logical
	if c.clean {
		return text.Range{}
	}
	r := c.dirty.Clamp(l.Len())
	if l.Len() == 0 {
		return r
	}
	start := l.ParagraphRange(r.Start).Start
	end := r.End
	if end > r.Start {
		end = l.ParagraphRange(end - 1).End
	} else {
		end = l.ParagraphRange(r.Start).End
	}
	return text.Range{Start: start, End: end}
}

func paragraphDirections(ps []segment.Paragraph) []bool {
	out := make([]bool, len(ps))
	for i, p := range ps {
		out[i] = p.RightToLeft
	}
	return out
}

func equalDirections(a, b []bool) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// shapeText shapes the text in segments of one font, script, direction
// and paragraph.
func (c *Controller) shapeText(v *model.VisualModel) {
	l := c.model.Logical
	v.ClearGlyphs()
	n := int(l.Len())
	if n == 0 {
		return
	}
	levels := make([]uint8, n)
	for _, p := range l.Paragraphs {
		copy(levels[min(int(p.Characters.Index), n):], p.Levels)
	}
	locale := c.support.Locale()
	service := c.support.Service()

	for start := 0; start < n; {
		font, _ := l.FontAt(text.CharacterIndex(start))
		script := l.ScriptAt(text.CharacterIndex(start))
		end := start + 1
		for end < n && !text.IsNewParagraph(l.Text[end-1]) && levels[end] == levels[start] {
			if f, _ := l.FontAt(text.CharacterIndex(end)); f.FontID != font.FontID {
				break
			}
			if l.ScriptAt(text.CharacterIndex(end)) != script {
				break
			}
			end++
		}
		id := font.FontID
		if id == 0 {
			id = c.defaultFont()
		}
		out := service.Shape(fonts.ShapeRequest{
			Text:     l.Text,
			Start:    text.CharacterIndex(start),
			End:      text.CharacterIndex(end),
			Font:     id,
			Script:   script,
			RTL:      levels[start]%2 == 1,
			Language: locale,
		})
		appendShaped(v, out, id, text.CharacterIndex(start), text.CharacterIndex(end))
		start = end
	}
	v.CreateGlyphsPerCharacterTable(l.Len())
	v.CreateCharacterToGlyphTable(l.Len())
}

// appendShaped appends to v the glyphs of the segment [start, end) and
// their cluster tables. A segment the font produced no glyph for gets one empty
// glyph per character so every character stays covered.
func appendShaped(v *model.VisualModel, out fonts.Shaped, id text.FontID, start, end text.CharacterIndex) {
	if len(out.Glyphs) == 0 {
		for i := start; i < end; i++ {
			v.Glyphs = append(v.Glyphs, text.GlyphInfo{FontID: id, ScaleFactor: 1})
			v.GlyphsToCharacters = append(v.GlyphsToCharacters, i)
			v.CharactersPerGlyph = append(v.CharactersPerGlyph, 1)
		}
		return
	}
	clusters := out.Clusters
	clusters[0] = start
	for k := range out.Glyphs {
		cluster := min(max(clusters[k], start), end-1)
		count := text.Length(0)
		if k == 0 || cluster != clusters[k-1] {
			next := end
			for j := k + 1; j < len(clusters); j++ {
				if clusters[j] > cluster {
					next = min(clusters[j], end)
					break
				}
			}
			count = next - cluster
		}
		clusters[k] = cluster
		v.Glyphs = append(v.Glyphs, out.Glyphs[k])
		v.GlyphsToCharacters = append(v.GlyphsToCharacters, cluster)
		v.CharactersPerGlyph = append(v.CharactersPerGlyph, count)
	}
}

// applyFontStyles copies the synthetic style flags of the font runs to
// the glyphs.
func (c *Controller) applyFontStyles(v *model.VisualModel) {
	l := c.model.Logical
	for g := range v.Glyphs {
		glyph := &v.Glyphs[g]
		if glyph.ScaleFactor == 0 {
			glyph.ScaleFactor = 1
		}
		if run, ok := l.FontAt(v.GlyphsToCharacters[g]); ok {
			glyph.IsBoldRequired = run.IsBoldRequired
			glyph.IsItalicRequired = run.IsItalicRequired
		}
	}
}
