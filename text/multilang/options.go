package multilang

import "github.com/gogpu/textkit"

// Option configures a Support.
type Option func(*config)

type config struct {
	policy FallbackPolicy
	locale string
	cache  *FontCache
}

func defaultConfig() config {
	return config{
		policy: DefaultFallback{},
		locale: defaultLocale,
	}
}

// WithFallbackPolicy replaces the default fallback order.
func WithFallbackPolicy(p FallbackPolicy) Option {
	return func(c *config) {
		if p != nil {
			c.policy = p
		}
	}
}

// WithLocale sets the initial locale. An invalid locale is logged and
// ignored.
func WithLocale(locale string) Option {
	return func(c *config) {
		if _, err := parseLocale(locale); err != nil {
			textkit.Logger().Warn("multilang: ignoring locale", "error", err)
			return
		}
		c.locale = locale
	}
}

// WithFontCache shares a font cache between several Support values.
func WithFontCache(cache *FontCache) Option {
	return func(c *config) {
		if cache != nil {
			c.cache = cache
		}
	}
}
