package markup

import (
	"math"
	"strconv"
	"strings"

	"golang.org/x/net/html"

	"github.com/gogpu/textkit"
	"github.com/gogpu/textkit/text"
)

type attribute struct {
	name  string
	value string
}

// parseTag splits the content of a tag into its lower-cased name and its
// attributes. It reports false for malformed content: an empty or invalid
// name, or an unterminated quoted value.
func parseTag(content string) (string, []attribute, bool) {
	n := 0
	for n < len(content) && isNameByte(content[n]) {
		n++
	}
	if n == 0 || (n < len(content) && !isSpace(content[n])) {
		return "", nil, false
	}
	name := strings.ToLower(content[:n])

	var attrs []attribute
	rest := content[n:]
	for {
		rest = strings.TrimLeft(rest, " \t\r\n")
		if rest == "" {
			return name, attrs, true
		}
		k := 0
		for k < len(rest) && rest[k] != '=' && !isSpace(rest[k]) {
			k++
		}
		if k == 0 {
			return "", nil, false
		}
		a := attribute{name: strings.ToLower(rest[:k])}
		rest = strings.TrimLeft(rest[k:], " \t\r\n")
		if !strings.HasPrefix(rest, "=") {
			attrs = append(attrs, a)
			continue
		}
		rest = strings.TrimLeft(rest[1:], " \t\r\n")
		value, tail, ok := cutValue(rest)
		if !ok {
			return "", nil, false
		}
		a.value = html.UnescapeString(value)
		attrs = append(attrs, a)
		rest = tail
	}
}

// cutValue reads one quoted or unquoted attribute value.
func cutValue(s string) (value, rest string, ok bool) {
	if s == "" {
		return "", "", true
	}
	if q := s[0]; q == '\'' || q == '"' {
		end := strings.IndexByte(s[1:], q)
		if end < 0 {
			return "", "", false
		}
		return s[1 : end+1], s[end+2:], true
	}
	end := strings.IndexAny(s, " \t\r\n")
	if end < 0 {
		return s, "", true
	}
	return s[:end], s[end:], true
}

func isNameByte(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9' || c == '-' || c == '_'
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\r' || c == '\n'
}

func parseFloat(name, value string) (float32, bool) {
	f, err := strconv.ParseFloat(strings.TrimSpace(value), 32)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		textkit.Logger().Warn("markup: invalid number", "attribute", name, "value", value)
		return 0, false
	}
	return float32(f), true
}

func parseColor(name, value string) (textkit.Color, bool) {
	c, ok := textkit.ParseColor(value)
	if !ok {
		textkit.Logger().Warn("markup: invalid color", "attribute", name, "value", value)
	}
	return c, ok
}

// setFontAttribute applies a font attribute (family, size, weight, width
// or slant) to run. It reports whether the attribute was recognized and
// valid.
func setFontAttribute(run *text.FontDescriptionRun, name, value string) bool {
	switch name {
	case "family":
		if value == "" {
			return false
		}
		run.Family, run.FamilyDefined = value, true
	case "size":
		points, ok := parseFloat(name, value)
		if !ok || points <= 0 {
			return false
		}
		run.Size, run.SizeDefined = text.PointSize26Dot6(math.Round(float64(points)*64)), true
	case "weight":
		w, ok := text.ParseFontWeight(value)
		if !ok {
			return false
		}
		run.Weight, run.WeightDefined = w, true
	case "width":
		w, ok := text.ParseFontWidth(value)
		if !ok {
			return false
		}
		run.Width, run.WidthDefined = w, true
	case "slant":
		s, ok := text.ParseFontSlant(value)
		if !ok {
			return false
		}
		run.Slant, run.SlantDefined = s, true
	default:
		return false
	}
	return true
}

// setUnderlineAttribute applies an underline attribute (color, height,
// type, dash-gap or dash-width) to props.
func setUnderlineAttribute(props *text.UnderlineProperties, name, value string) bool {
	switch name {
	case "color":
		c, ok := parseColor(name, value)
		if !ok {
			return false
		}
		props.Color, props.ColorDefined = c, true
	case "height":
		h, ok := parseFloat(name, value)
		if !ok {
			return false
		}
		props.Height, props.HeightDefined = h, true
	case "type":
		t, ok := text.ParseUnderlineType(value)
		if !ok {
			return false
		}
		props.Type, props.TypeDefined = t, true
	case "dash-gap":
		g, ok := parseFloat(name, value)
		if !ok {
			return false
		}
		props.DashGap, props.DashGapDefined = g, true
	case "dash-width":
		w, ok := parseFloat(name, value)
		if !ok {
			return false
		}
		props.DashWidth, props.DashWidthDefined = w, true
	default:
		return false
	}
	return true
}

// setStrikethroughAttribute applies a strikethrough attribute (color or
// height) to props.
func setStrikethroughAttribute(props *text.StrikethroughProperties, name, value string) bool {
	switch name {
	case "color":
		c, ok := parseColor(name, value)
		if !ok {
			return false
		}
		props.Color, props.ColorDefined = c, true
	case "height":
		h, ok := parseFloat(name, value)
		if !ok {
			return false
		}
		props.Height, props.HeightDefined = h, true
	default:
		return false
	}
	return true
}
