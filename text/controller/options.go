package controller

import (
	"github.com/gogpu/textkit/text"
	"github.com/gogpu/textkit/text/markup"
)

// Option configures a Controller.
type Option func(*config)

type config struct {
	markup         bool
	markupDefaults markup.Defaults
	debugChecks    bool
	locale         string
	description    text.FontDescription
	pointSize      text.PointSize26Dot6
}

func defaultConfig() config {
	return config{
		markupDefaults: markup.DefaultDefaults(),
		description:    text.DefaultFontDescription(),
		pointSize:      text.DefaultPointSize,
	}
}

// WithMarkup enables markup processing in SetText.
func WithMarkup(enabled bool) Option {
	return func(c *config) {
		c.markup = enabled
	}
}

// WithMarkupDefaults sets the anchor colors used by markup processing.
func WithMarkupDefaults(d markup.Defaults) Option {
	return func(c *config) {
		c.markupDefaults = d
	}
}

// WithDebugChecks makes model invariant violations panic instead of being
// logged and clamped.
func WithDebugChecks(enabled bool) Option {
	return func(c *config) {
		c.debugChecks = enabled
	}
}

// WithLocale sets the locale of the multilanguage support.
func WithLocale(locale string) Option {
	return func(c *config) {
		c.locale = locale
	}
}

// WithDefaultFont sets the font description and point size of text
// without font runs. A zero size keeps the default size.
func WithDefaultFont(desc text.FontDescription, size text.PointSize26Dot6) Option {
	return func(c *config) {
		c.description = desc
		if size != 0 {
			c.pointSize = size
		}
	}
}
