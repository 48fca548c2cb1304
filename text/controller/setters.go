package controller

import (
	"github.com/gogpu/textkit"
	"github.com/gogpu/textkit/text"
)

// SetDefaultFontFamily sets the family of text without a font run.
func (c *Controller) SetDefaultFontFamily(family string) {
	if c.cfg.description.Family == family {
		return
	}
	c.cfg.description.Family = family
	c.restyle()
}

// DefaultFontFamily returns the family of text without a font run.
func (c *Controller) DefaultFontFamily() string {
	return c.cfg.description.Family
}

// SetDefaultFontDescription sets the font of text without a font run.
func (c *Controller) SetDefaultFontDescription(desc text.FontDescription) {
	if c.cfg.description == desc {
		return
	}
	c.cfg.description = desc
	c.restyle()
}

// SetDefaultPointSize sets the point size of text without a size run.
// Zero is ignored.
func (c *Controller) SetDefaultPointSize(size text.PointSize26Dot6) {
	if size == 0 || c.cfg.pointSize == size {
		return
	}
	c.cfg.pointSize = size
	c.restyle()
}

// DefaultPointSize returns the point size of text without a size run.
func (c *Controller) DefaultPointSize() text.PointSize26Dot6 {
	return c.cfg.pointSize
}

// restyle re-validates the fonts of the whole text.
func (c *Controller) restyle() {
	c.markDirty(text.Range{End: c.model.Logical.Len()})
	c.invalidate(fontOperations)
}

// SetDefaultColor sets the color of text without a color run.
func (c *Controller) SetDefaultColor(col textkit.Color) {
	c.model.Visual.TextColor = col
	c.ops |= Color
}

// DefaultColor returns the color of text without a color run.
func (c *Controller) DefaultColor() textkit.Color {
	return c.model.Visual.TextColor
}

// SetHorizontalAlignment sets the default alignment of lines.
func (c *Controller) SetHorizontalAlignment(a text.HorizontalAlignment) {
	if c.model.Visual.HorizontalAlignment == a {
		return
	}
	c.model.Visual.HorizontalAlignment = a
	c.ops |= Align
}

// HorizontalAlignment returns the default alignment of lines.
func (c *Controller) HorizontalAlignment() text.HorizontalAlignment {
	return c.model.Visual.HorizontalAlignment
}

// SetVerticalAlignment sets the alignment of the text block in the control.
// It is applied when rendering.
func (c *Controller) SetVerticalAlignment(a text.VerticalAlignment) {
	c.model.Visual.VerticalAlignment = a
}

// VerticalAlignment returns the alignment of the text block.
func (c *Controller) VerticalAlignment() text.VerticalAlignment {
	return c.model.Visual.VerticalAlignment
}

// SetLineWrapMode selects word or character wrapping.
func (c *Controller) SetLineWrapMode(mode text.LineWrapMode) {
	if c.wrapMode == mode {
		return
	}
	c.wrapMode = mode
	c.ops |= layoutOperations
}

// LineWrapMode returns the wrapping mode.
func (c *Controller) LineWrapMode() text.LineWrapMode {
	return c.wrapMode
}

// SetMultiLine enables wrapping and new paragraph breaks.
func (c *Controller) SetMultiLine(enabled bool) {
	if c.multiLine == enabled {
		return
	}
	c.multiLine = enabled
	c.invalidate(layoutOperations)
}

// IsMultiLine reports whether wrapping is enabled.
func (c *Controller) IsMultiLine() bool {
	return c.multiLine
}

// SetLineSpacing sets the space added below every line.
func (c *Controller) SetLineSpacing(spacing float32) {
	if c.lineSpacing == spacing {
		return
	}
	c.lineSpacing = spacing
	c.invalidate(layoutOperations)
}

// LineSpacing returns the space added below every line.
func (c *Controller) LineSpacing() float32 {
	return c.lineSpacing
}

// SetCharacterSpacing sets the space added after every cluster without a
// character spacing run.
func (c *Controller) SetCharacterSpacing(spacing float32) {
	if c.characterSpacing == spacing {
		return
	}
	c.characterSpacing = spacing
	c.invalidate(layoutOperations)
}

// CharacterSpacing returns the global character spacing.
func (c *Controller) CharacterSpacing() float32 {
	return c.characterSpacing
}

// SetUnderlineEnabled underlines the whole text.
func (c *Controller) SetUnderlineEnabled(enabled bool) {
	c.model.Visual.UnderlineEnabled = enabled
	c.ops |= Color
}

// SetUnderlineColor sets the color of underlines without a color of their own.
func (c *Controller) SetUnderlineColor(col textkit.Color) {
	c.model.Visual.UnderlineColor = col
	c.ops |= Color
}

// SetUnderlineHeight sets the thickness of underlines. Zero uses the font's.
func (c *Controller) SetUnderlineHeight(height float32) {
	c.model.Visual.UnderlineHeight = height
	c.ops |= Color
}

// SetUnderlineType selects solid, dashed or double underlines.
func (c *Controller) SetUnderlineType(t text.UnderlineType) {
	c.model.Visual.UnderlineType = t
	c.ops |= Color
}

// SetDashedUnderlineWidth sets the dash length of dashed underlines.
func (c *Controller) SetDashedUnderlineWidth(width float32) {
	c.model.Visual.DashedUnderlineWidth = width
	c.ops |= Color
}

// SetDashedUnderlineGap sets the gap between dashes.
func (c *Controller) SetDashedUnderlineGap(gap float32) {
	c.model.Visual.DashedUnderlineGap = gap
	c.ops |= Color
}

// SetStrikethroughEnabled strikes through the whole text.
func (c *Controller) SetStrikethroughEnabled(enabled bool) {
	c.model.Visual.StrikethroughEnabled = enabled
	c.ops |= Color
}

// SetStrikethroughColor sets the color of strikethroughs without a color
// of their own.
func (c *Controller) SetStrikethroughColor(col textkit.Color) {
	c.model.Visual.StrikethroughColor = col
	c.ops |= Color
}

// SetStrikethroughHeight sets the strikethrough thickness. Zero uses the font's.
func (c *Controller) SetStrikethroughHeight(height float32) {
	c.model.Visual.StrikethroughHeight = height
	c.ops |= Color
}

// SetShadow sets the shadow color and offset. A transparent color or a
// zero offset disables the shadow.
func (c *Controller) SetShadow(col textkit.Color, offset text.Vector2) {
	c.model.Visual.ShadowColor = col
	c.model.Visual.ShadowOffset = offset
}

// SetOutline sets the outline color and width in pixels.
func (c *Controller) SetOutline(col textkit.Color, width float32) {
	c.model.Visual.OutlineColor = col
	c.model.Visual.OutlineWidth = width
}

// SetMarkupEnabled enables markup processing for the next SetText.
func (c *Controller) SetMarkupEnabled(enabled bool) {
	c.cfg.markup = enabled
}

// IsMarkupEnabled reports whether SetText processes markup.
func (c *Controller) IsMarkupEnabled() bool {
	return c.cfg.markup
}

// SetLocale changes the locale used for font fallback and shaping.
// The fonts of the whole text are validated again.
func (c *Controller) SetLocale(locale string) error {
	if locale == c.support.Locale() {
		return nil
	}
	if err := c.support.SetLocale(locale); err != nil {
		return err
	}
	c.restyle()
	return nil
}

// Locale returns the current locale.
func (c *Controller) Locale() string {
	return c.support.Locale()
}
