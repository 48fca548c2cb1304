package fonts

import (
	"bytes"
	"fmt"
	"math"
	"strings"

	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/font/opentype/tables"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"

	"github.com/gogpu/textkit/text"
)

// face is one parsed font file.
// Both parsers read the same bytes: go-text shapes and measures,
// x/image/sfnt loads outlines and hinted metrics.
type face struct {
	desc  text.FontDescription
	data  []byte
	gt    *font.Font
	sf    *opentype.Font
	upem  float32
	color bool
	cover *coverage
}

// parseFace parses OpenType data. A zero desc.Family is read from the name table.
func parseFace(data []byte, desc *text.FontDescription) (*face, error) {
	if len(data) == 0 {
		return nil, text.ErrEmptyFontData
	}
	gtFace, err := font.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", text.ErrInvalidFont, err)
	}
	sf, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", text.ErrInvalidFont, err)
	}

	f := &face{
		data:  data,
		gt:    gtFace.Font,
		sf:    sf,
		upem:  float32(gtFace.Font.Upem()),
		cover: newCoverage(),
	}
	if desc != nil {
		f.desc = *desc
	} else {
		f.desc = describe(gtFace.Font)
		if style, err := sf.Name(nil, sfnt.NameIDSubfamily); err == nil {
			f.desc.Weight = weightFromStyle(style, f.desc.Weight)
		}
	}
	if f.desc.Family == "" {
		if name, err := sf.Name(nil, sfnt.NameIDFamily); err == nil {
			f.desc.Family = name
		}
	}
	f.color = hasColorGlyphs(gtFace)
	return f, nil
}

// describe converts the go-text description of a font.
func describe(f *font.Font) text.FontDescription {
	d := f.Describe()
	out := text.FontDescription{
		Family: d.Family,
		Weight: text.FontWeight(math.Round(float64(d.Aspect.Weight))),
		Width:  widthFromStretch(float32(d.Aspect.Stretch)),
		Slant:  text.FontSlantNormal,
	}
	if d.Aspect.Style == font.StyleItalic {
		out.Slant = text.FontSlantItalic
	}
	if out.Weight == 0 {
		out.Weight = text.FontWeightNormal
	}
	return out
}

// styleWeights maps weight words of a subfamily name, compound words first.
var styleWeights = []struct {
	word   string
	weight text.FontWeight
}{
	{"extrabold", text.FontWeightUltraBold},
	{"ultrabold", text.FontWeightUltraBold},
	{"semibold", text.FontWeightSemiBold},
	{"demibold", text.FontWeightSemiBold},
	{"black", text.FontWeightBlack},
	{"heavy", text.FontWeightBlack},
	{"bold", text.FontWeightBold},
}

// weightFromStyle returns the weight named by a subfamily such as
// "Bold Italic", or fallback when it names none. Some fonts, the Go Bold
// face among them, declare a lighter usWeightClass than their name.
func weightFromStyle(style string, fallback text.FontWeight) text.FontWeight {
	s := strings.NewReplacer(" ", "", "-", "", "_", "").Replace(strings.ToLower(style))
	for _, w := range styleWeights {
		if strings.Contains(s, w.word) {
			return w.weight
		}
	}
	return fallback
}

// stretchClasses are the OpenType usWidthClass stretch factors.
var stretchClasses = [...]float32{0.5, 0.625, 0.75, 0.875, 1, 1.125, 1.25, 1.5, 2}

func widthFromStretch(s float32) text.FontWidth {
	if s <= 0 {
		return text.FontWidthNormal
	}
	best, bestDist := 0, float32(math.MaxFloat32)
	for i, c := range stretchClasses {
		d := c - s
		if d < 0 {
			d = -d
		}
		if d < bestDist {
			best, bestDist = i, d
		}
	}
	return text.FontWidth(best + 1)
}

// hasColorGlyphs reports whether the face has COLR layers or bitmap emoji.
func hasColorGlyphs(f *font.Face) bool {
	if f.Font.COLR != nil {
		return true
	}
	for _, r := range []rune{'\U0001F600', '\u2764', '\U0001F44D'} {
		gid, ok := f.NominalGlyph(r)
		if !ok {
			continue
		}
		if _, ok := f.GlyphDataBitmap(tables.GlyphID(gid)); ok {
			return true
		}
	}
	return false
}

// hasGlyph looks r up in the cmap, memoized per face.
func (f *face) hasGlyph(r rune) bool {
	return f.cover.has(r, func(r rune) bool {
		_, ok := f.gt.NominalGlyph(r)
		return ok
	})
}
