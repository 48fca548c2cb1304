package textkit

import (
	"image/color"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Color represents a color with red, green, blue, and alpha components.
// Each component is in the range [0, 1] and is not premultiplied.
type Color struct {
	R, G, B, A float32
}

// RGB creates an opaque color from RGB components.
func RGB(r, g, b float32) Color {
	return Color{R: r, G: g, B: b, A: 1}
}

// RGBA creates a color from RGBA components.
func RGBA(r, g, b, a float32) Color {
	return Color{R: r, G: g, B: b, A: a}
}

// Common colors
var (
	Black       = RGB(0, 0, 0)
	White       = RGB(1, 1, 1)
	Red         = RGB(1, 0, 0)
	Green       = RGB(0, 1, 0)
	Blue        = RGB(0, 0, 1)
	Yellow      = RGB(1, 1, 0)
	Cyan        = RGB(0, 1, 1)
	Magenta     = RGB(1, 0, 1)
	Transparent = RGBA(0, 0, 0, 0)
)

var namedColors = map[string]Color{
	"black":       Black,
	"white":       White,
	"red":         Red,
	"green":       Green,
	"blue":        Blue,
	"yellow":      Yellow,
	"cyan":        Cyan,
	"magenta":     Magenta,
	"transparent": Transparent,
}

// NRGBA converts the color to an 8-bit non-premultiplied color.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{
		R: to255(c.R),
		G: to255(c.G),
		B: to255(c.B),
		A: to255(c.A),
	}
}

// PremultipliedRGBA returns c as an 8-bit premultiplied color.
func (c Color) PremultipliedRGBA() color.RGBA {
	p := c.Premultiply()
	return color.RGBA{R: to255(p.R), G: to255(p.G), B: to255(p.B), A: to255(p.A)}
}

// Premultiply returns the color with RGB scaled by alpha.
func (c Color) Premultiply() Color {
	return Color{R: c.R * c.A, G: c.G * c.A, B: c.B * c.A, A: c.A}
}

// IsTransparent reports whether the alpha component is zero.
func (c Color) IsTransparent() bool {
	return c.A <= 0
}

// ParseColor parses a color string as used in markup attributes.
//
// Supported forms:
//   - named colors: "red", "white", "transparent", ...
//   - "#RGB", "#RRGGBB", "#RRGGBBAA"
//   - "0xAARRGGBB"
//   - "rgb(r,g,b)" and "rgba(r,g,b,a)" with 0-255 components and 0-1 alpha
//
// The second result is false if the string is not a recognized color.
func ParseColor(s string) (Color, bool) {
	s = strings.TrimSpace(strings.ToLower(s))
	if s == "" {
		return Color{}, false
	}
	if c, ok := namedColors[s]; ok {
		return c, true
	}

	switch {
	case strings.HasPrefix(s, "#"):
		return parseHashColor(s)
	case strings.HasPrefix(s, "0x"):
		v, err := strconv.ParseUint(s[2:], 16, 32)
		if err != nil {
			return Color{}, false
		}
		return Color{
			A: float32((v>>24)&0xFF) / 255,
			R: float32((v>>16)&0xFF) / 255,
			G: float32((v>>8)&0xFF) / 255,
			B: float32(v&0xFF) / 255,
		}, true
	case strings.HasPrefix(s, "rgb"):
		return parseFuncColor(s)
	}
	return Color{}, false
}

func parseHashColor(s string) (Color, bool) {
	alpha := float32(1)
	if len(s) == 9 {
		a, err := strconv.ParseUint(s[7:], 16, 8)
		if err != nil {
			return Color{}, false
		}
		alpha = float32(a) / 255
		s = s[:7]
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return Color{}, false
	}
	return Color{R: float32(c.R), G: float32(c.G), B: float32(c.B), A: alpha}, true
}

func parseFuncColor(s string) (Color, bool) {
	open := strings.IndexByte(s, '(')
	if open < 0 || !strings.HasSuffix(s, ")") {
		return Color{}, false
	}
	parts := strings.Split(s[open+1:len(s)-1], ",")
	if len(parts) != 3 && len(parts) != 4 {
		return Color{}, false
	}
	var v [4]float64
	v[3] = 1
	for i, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return Color{}, false
		}
		if i < 3 {
			f /= 255
		}
		v[i] = f
	}
	c := colorful.Color{R: v[0], G: v[1], B: v[2]}.Clamped()
	return Color{R: float32(c.R), G: float32(c.G), B: float32(c.B), A: clamp01(float32(v[3]))}, true
}

func clamp01(x float32) float32 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}

func to255(x float32) uint8 {
	return uint8(clamp01(x)*255 + 0.5)
}
