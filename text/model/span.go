package model

import (
	"fmt"
	"math"

	"github.com/gogpu/textkit"
	"github.com/gogpu/textkit/text"
)

// Span is a style attached to a character range of a SpannableString.
//
// The set of spans is closed: ForegroundColorSpan, BackgroundColorSpan,
// FontSpan, BoldSpan, ItalicSpan, UnderlineSpan, StrikethroughSpan and
// CharacterSpacingSpan. Spans are attached by pointer; each pointer is a
// distinct span.
type Span interface {
	isSpan()
}

// sealed makes every span type non-zero sized so distinct span pointers
// never compare equal.
type sealed struct {
	_ byte
}

func (*sealed) isSpan() {}

// ForegroundColorSpan sets the text color.
type ForegroundColorSpan struct {
	sealed
	Color textkit.Color
}

// BackgroundColorSpan sets the color drawn behind the text.
type BackgroundColorSpan struct {
	sealed
	Color textkit.Color
}

// FontSpan overrides parts of the font description.
// Zero fields are left unset, except Slant which is set by SlantDefined.
type FontSpan struct {
	sealed
	Family       string
	Size         float32 // points
	Weight       text.FontWeight
	Width        text.FontWidth
	Slant        text.FontSlant
	SlantDefined bool
}

// BoldSpan makes text bold.
type BoldSpan struct {
	sealed
}

// ItalicSpan makes text italic.
type ItalicSpan struct {
	sealed
}

// UnderlineSpan underlines text. Undefined properties use the control
// defaults.
type UnderlineSpan struct {
	sealed
	Properties text.UnderlineProperties
}

// StrikethroughSpan strikes text through.
type StrikethroughSpan struct {
	sealed
	Properties text.StrikethroughProperties
}

// CharacterSpacingSpan adds spacing after each character.
type CharacterSpacingSpan struct {
	sealed
	Value float32
}

// lower appends the runs produced by span over run to m.
func lower(span Span, run text.CharacterRun, m *LogicalModel) {
	switch s := span.(type) {
	case *ForegroundColorSpan:
		m.Colors = append(m.Colors, text.ColorRun{CharacterRun: run, Color: s.Color})
	case *BackgroundColorSpan:
		m.BackgroundColors = append(m.BackgroundColors, text.ColorRun{CharacterRun: run, Color: s.Color})
	case *FontSpan:
		fr := text.FontDescriptionRun{CharacterRun: run}
		if s.Family != "" {
			fr.Family, fr.FamilyDefined = s.Family, true
		}
		if s.Size > 0 {
			fr.Size, fr.SizeDefined = text.PointSize26Dot6(math.Round(float64(s.Size)*64)), true
		}
		if s.Weight != 0 {
			fr.Weight, fr.WeightDefined = s.Weight, true
		}
		if s.Width != 0 {
			fr.Width, fr.WidthDefined = s.Width, true
		}
		if s.SlantDefined {
			fr.Slant, fr.SlantDefined = s.Slant, true
		}
		m.FontDescriptions = append(m.FontDescriptions, fr)
	case *BoldSpan:
		m.FontDescriptions = append(m.FontDescriptions, text.FontDescriptionRun{
			CharacterRun:  run,
			Weight:        text.FontWeightBold,
			WeightDefined: true,
		})
	case *ItalicSpan:
		m.FontDescriptions = append(m.FontDescriptions, text.FontDescriptionRun{
			CharacterRun: run,
			Slant:        text.FontSlantItalic,
			SlantDefined: true,
		})
	case *UnderlineSpan:
		m.Underlines = append(m.Underlines, text.UnderlinedCharacterRun{CharacterRun: run, Properties: s.Properties})
	case *StrikethroughSpan:
		m.Strikethroughs = append(m.Strikethroughs, text.StrikethroughCharacterRun{CharacterRun: run, Properties: s.Properties})
	case *CharacterSpacingSpan:
		m.CharacterSpacings = append(m.CharacterSpacings, text.CharacterSpacingCharacterRun{CharacterRun: run, Value: s.Value})
	default:
		panic(fmt.Sprintf("model: unknown span type %T", span))
	}
}
