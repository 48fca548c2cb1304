package text

import (
	"strings"

	"github.com/gogpu/textkit"
)

// UnderlineType is the line style of an underline.
type UnderlineType int

const (
	// UnderlineSolid draws one continuous line.
	UnderlineSolid UnderlineType = iota
	// UnderlineDashed draws dashes separated by gaps.
	UnderlineDashed
	// UnderlineDouble draws two parallel lines.
	UnderlineDouble
)

// String returns the string representation of the underline type.
func (t UnderlineType) String() string {
	switch t {
	case UnderlineSolid:
		return "solid"
	case UnderlineDashed:
		return "dashed"
	case UnderlineDouble:
		return "double"
	default:
		return unknownStr
	}
}

// ParseUnderlineType parses "solid", "dashed" or "double".
func ParseUnderlineType(s string) (UnderlineType, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "solid":
		return UnderlineSolid, true
	case "dashed":
		return UnderlineDashed, true
	case "double":
		return UnderlineDouble, true
	}
	return UnderlineSolid, false
}

// UnderlineProperties holds underline style with per-field defined flags.
type UnderlineProperties struct {
	Type      UnderlineType
	Color     textkit.Color
	Height    float32
	DashGap   float32
	DashWidth float32

	TypeDefined      bool
	ColorDefined     bool
	HeightDefined    bool
	DashGapDefined   bool
	DashWidthDefined bool
}

// Overlay returns p with the defined fields of other applied on top.
func (p UnderlineProperties) Overlay(other UnderlineProperties) UnderlineProperties {
	if other.TypeDefined {
		p.Type, p.TypeDefined = other.Type, true
	}
	if other.ColorDefined {
		p.Color, p.ColorDefined = other.Color, true
	}
	if other.HeightDefined {
		p.Height, p.HeightDefined = other.Height, true
	}
	if other.DashGapDefined {
		p.DashGap, p.DashGapDefined = other.DashGap, true
	}
	if other.DashWidthDefined {
		p.DashWidth, p.DashWidthDefined = other.DashWidth, true
	}
	return p
}

// StrikethroughProperties holds strikethrough style with per-field defined flags.
type StrikethroughProperties struct {
	Color  textkit.Color
	Height float32

	ColorDefined  bool
	HeightDefined bool
}

// Overlay returns p with the defined fields of other applied on top.
func (p StrikethroughProperties) Overlay(other StrikethroughProperties) StrikethroughProperties {
	if other.ColorDefined {
		p.Color, p.ColorDefined = other.Color, true
	}
	if other.HeightDefined {
		p.Height, p.HeightDefined = other.Height, true
	}
	return p
}
