package fonts

import xfont "golang.org/x/image/font"

// RegistryOption configures a Registry.
type RegistryOption func(*registryConfig)

// registryConfig holds configuration for Registry.
type registryConfig struct {
	dpi             float32
	bitmapCacheSize int
	hinting         xfont.Hinting
	defaultFamily   string
}

// defaultRegistryConfig returns the default registry configuration.
func defaultRegistryConfig() registryConfig {
	return registryConfig{
		dpi:             72,
		bitmapCacheSize: 1024,
		hinting:         xfont.HintingNone,
	}
}

// WithDPI sets the resolution used to convert points to pixels.
// At the default of 72 one point is one pixel.
func WithDPI(dpi float32) RegistryOption {
	return func(c *registryConfig) {
		if dpi > 0 {
			c.dpi = dpi
		}
	}
}

// WithBitmapCacheSize sets how many rasterized glyphs are kept.
// A value of 0 disables the limit.
func WithBitmapCacheSize(n int) RegistryOption {
	return func(c *registryConfig) {
		c.bitmapCacheSize = n
	}
}

// WithHinting sets the hinting applied to vertical font metrics.
func WithHinting(h xfont.Hinting) RegistryOption {
	return func(c *registryConfig) {
		c.hinting = h
	}
}

// WithDefaultFamily names the family used for descriptions without one.
// By default the family of the first registered face is used.
func WithDefaultFamily(family string) RegistryOption {
	return func(c *registryConfig) {
		c.defaultFamily = family
	}
}
