package async

import (
	"fmt"

	"github.com/chewxy/math32"

	"github.com/gogpu/textkit"
	"github.com/gogpu/textkit/text"
	"github.com/gogpu/textkit/text/controller"
	"github.com/gogpu/textkit/text/fonts"
	"github.com/gogpu/textkit/text/layout"
	"github.com/gogpu/textkit/text/multilang"
	"github.com/gogpu/textkit/text/typeset"
)

// TextLoader lays out and renders text with its own multilanguage support.
// The fonts.Service is shared with the rest of the process.
type TextLoader struct {
	service fonts.Service
	support *multilang.Support
	ctrl    *controller.Controller
	ts      *typeset.Typesetter
}

var _ Loader = (*TextLoader)(nil)

// NewTextLoader creates a loader drawing with service.
func NewTextLoader(service fonts.Service, opts ...multilang.Option) *TextLoader {
	return &TextLoader{
		service: service,
		support: multilang.New(service, opts...),
	}
}

// TextLoaderFactory returns a factory of TextLoaders sharing service.
func TextLoaderFactory(service fonts.Service, opts ...multilang.Option) LoaderFactory {
	return func() Loader {
		return NewTextLoader(service, opts...)
	}
}

// SetLocale implements Loader.
func (l *TextLoader) SetLocale(locale string) error {
	return l.support.SetLocale(locale)
}

// Locale returns the locale of the loader.
func (l *TextLoader) Locale() string {
	return l.support.Locale()
}

// ClearCache implements Loader.
func (l *TextLoader) ClearCache() {
	l.support.ClearCache()
}

// Load implements Loader.
func (l *TextLoader) Load(p Parameters) RenderInfo {
	l.reset(p)
	c := l.ctrl
	info := RenderInfo{RequestType: p.RequestType}

	switch p.RequestType {
	case ComputeNaturalSize:
		info.NaturalSize = c.GetNaturalSize()
		return info
	case ComputeHeightForWidth:
		h := c.GetHeightForWidth(p.Width)
		info.ControlSize = text.Size{Width: p.Width, Height: h}
		info.Height = int(math32.Ceil(h))
		return info
	}
	if !p.RequestType.renders() {
		info.Err = fmt.Errorf("async: unknown request type %d", int(p.RequestType))
		return info
	}

	size := text.Size{Width: p.Width, Height: p.Height}
	if p.RequestType == RenderConstraint {
		info.NaturalSize = c.GetNaturalSize()
		if size.Width <= 0 || size.Width > info.NaturalSize.Width {
			size.Width = info.NaturalSize.Width
		}
	}
	if p.RequestType != RenderFixedSize {
		width := size.Width
		if width <= 0 {
			width = layout.Unbounded
		}
		// Height caps the laid out height when it is set.
		if h := c.GetHeightForWidth(width); size.Height <= 0 || h < size.Height {
			size.Height = h
		}
	}
	info.ControlSize = size

	c.Relayout(size, p.LayoutDirection)
	v := c.Model().Visual
	info.LineCount = len(v.Lines)
	if ps := c.Model().Logical.Paragraphs; len(ps) > 0 {
		info.IsTextDirectionRTL = ps[0].RightToLeft
	}

	w, h := int(math32.Ceil(size.Width)), int(math32.Ceil(size.Height))
	if w <= 0 || h <= 0 {
		// Nothing to draw, e.g. empty text with a constrained size.
		return info
	}
	buf, err := l.ts.Render(size, p.LayoutDirection, typeset.RenderText, false, p.Format)
	if err != nil {
		info.Err = fmt.Errorf("async: render %dx%d %v: %w", w, h, p.Format, err)
		return info
	}
	info.Buffer, info.Width, info.Height = buf, w, h
	return info
}

// reset replaces the controller with one configured by p.
func (l *TextLoader) reset(p Parameters) {
	c := controller.New(l.support, controller.WithMarkup(p.EnableMarkup))
	if p.FontFamily != "" {
		c.SetDefaultFontFamily(p.FontFamily)
	}
	if p.PointSize > 0 {
		c.SetDefaultPointSize(text.PointSize26Dot6(p.PointSize*64 + 0.5))
	}
	c.SetDefaultColor(p.TextColor)
	c.SetMultiLine(p.MultiLine)
	c.SetLineWrapMode(p.LineWrapMode)
	c.SetHorizontalAlignment(p.HorizontalAlignment)
	c.SetVerticalAlignment(p.VerticalAlignment)
	c.SetLineSpacing(p.LineSpacing)
	c.SetCharacterSpacing(p.CharacterSpacing)

	c.SetUnderlineEnabled(p.UnderlineEnabled)
	c.SetUnderlineType(p.UnderlineType)
	c.SetUnderlineColor(p.UnderlineColor)
	c.SetUnderlineHeight(p.UnderlineHeight)
	c.SetDashedUnderlineWidth(p.DashedUnderlineWidth)
	c.SetDashedUnderlineGap(p.DashedUnderlineGap)
	c.SetStrikethroughEnabled(p.StrikethroughEnabled)
	c.SetStrikethroughColor(p.StrikethroughColor)
	c.SetStrikethroughHeight(p.StrikethroughHeight)
	c.SetShadow(p.ShadowColor, p.ShadowOffset)
	c.SetOutline(p.OutlineColor, p.OutlineWidth)

	c.SetText(p.Text)
	l.ctrl = c
	l.ts = typeset.New(c.Model(), l.service)
	textkit.Logger().Debug("async: loader reset", "request", p.RequestType, "characters", c.NumberOfCharacters())
}
