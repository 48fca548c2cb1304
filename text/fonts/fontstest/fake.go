// Package fontstest provides a deterministic fonts.Service for tests.
//
// The fake knows three families:
//
//   - "Fake Sans" covers everything except Arabic, Hebrew, Han and emoji
//   - "Fake Arabic" covers Arabic, Hebrew, ASCII digits and spaces
//   - "Fake Emoji" is a color font covering emoji
//
// Every character shapes to one glyph whose index is the code point.
// Advances are half the pixel size, new paragraph characters advance zero.
package fontstest

import (
	"image"
	"image/color"
	"math"
	"strings"
	"sync"
	"sync/atomic"
	"unicode"

	"github.com/gogpu/textkit/text"
	"github.com/gogpu/textkit/text/emoji"
	"github.com/gogpu/textkit/text/fonts"
)

// Family names served by Service.
const (
	Sans   = "Fake Sans"
	Arabic = "Fake Arabic"
	Emoji  = "Fake Emoji"
)

type key struct {
	family string
	bold   bool
	italic bool
	size   text.PointSize26Dot6
}

// Service is a fake fonts.Service. The zero value is ready to use.
type Service struct {
	mu   sync.Mutex
	ids  map[key]text.FontID
	keys []key

	// ResolveCalls and HasGlyphCalls count calls, for cache tests.
	ResolveCalls  atomic.Int64
	HasGlyphCalls atomic.Int64
}

var _ fonts.Service = (*Service)(nil)

// New returns an empty fake service.
func New() *Service {
	return &Service{}
}

func (s *Service) id(k key) text.FontID {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ids == nil {
		s.ids = make(map[key]text.FontID)
	}
	if id, ok := s.ids[k]; ok {
		return id
	}
	s.keys = append(s.keys, k)
	id := text.FontID(len(s.keys))
	s.ids[k] = id
	return id
}

func (s *Service) key(id text.FontID) (key, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if id == 0 || int(id) > len(s.keys) {
		return key{}, false
	}
	return s.keys[id-1], true
}

func canonicalFamily(family string) string {
	switch strings.ToLower(family) {
	case strings.ToLower(Arabic):
		return Arabic
	case strings.ToLower(Emoji):
		return Emoji
	default:
		return Sans
	}
}

func covers(family string, r rune) bool {
	isRTL := unicode.Is(unicode.Arabic, r) || unicode.Is(unicode.Hebrew, r)
	isEmoji := emoji.IsEmojiPresentation(r)
	switch family {
	case Arabic:
		return isRTL || r == ' ' || (r >= '0' && r <= '9') || text.IsNewParagraph(r)
	case Emoji:
		return isEmoji || r == emoji.ZWJ || r == emoji.EmojiVariation || emoji.IsModifier(r)
	default:
		return !isRTL && !isEmoji && !unicode.Is(unicode.Han, r)
	}
}

// ResolveFont implements fonts.Service.
func (s *Service) ResolveFont(desc text.FontDescription, size text.PointSize26Dot6) text.FontID {
	s.ResolveCalls.Add(1)
	return s.id(key{
		family: canonicalFamily(desc.Family),
		bold:   desc.Weight >= text.FontWeightBold,
		italic: desc.Slant.IsSlanted(),
		size:   size,
	})
}

// HasGlyph implements fonts.Service.
func (s *Service) HasGlyph(id text.FontID, r rune) bool {
	s.HasGlyphCalls.Add(1)
	k, ok := s.key(id)
	return ok && covers(k.family, r)
}

// FindFallbackFont implements fonts.Service.
func (s *Service) FindFallbackFont(preferred text.FontID, r rune, size text.PointSize26Dot6, preferColor bool) text.FontID {
	order := []string{Sans, Arabic, Emoji}
	if preferColor {
		order = []string{Emoji, Sans, Arabic}
	}
	p, _ := s.key(preferred)
	for _, family := range order {
		if covers(family, r) {
			return s.id(key{family: family, bold: p.bold, italic: p.italic, size: size})
		}
	}
	return 0
}

// FindDefaultFont implements fonts.Service.
func (s *Service) FindDefaultFont(r rune, size text.PointSize26Dot6) text.FontID {
	if id := s.FindFallbackFont(0, r, size, false); id != 0 {
		return id
	}
	return s.id(key{family: Sans, size: size})
}

// IsColorFont implements fonts.Service.
func (s *Service) IsColorFont(id text.FontID) bool {
	k, ok := s.key(id)
	return ok && k.family == Emoji
}

// PixelSize returns the pixel size of a font id.
func (s *Service) PixelSize(id text.FontID) float32 {
	k, _ := s.key(id)
	return float32(k.size) / 64
}

// Advance returns the advance of every non paragraph glyph of id.
func (s *Service) Advance(id text.FontID) float32 {
	return s.PixelSize(id) / 2
}

// Shape implements fonts.Service.
func (s *Service) Shape(req fonts.ShapeRequest) fonts.Shaped {
	if req.End <= req.Start || int(req.End) > len(req.Text) {
		return fonts.Shaped{}
	}
	px := s.PixelSize(req.Font)
	n := req.End - req.Start
	out := fonts.Shaped{
		Glyphs:   make([]text.GlyphInfo, 0, n),
		Clusters: make([]text.CharacterIndex, 0, n),
	}
	for i := req.Start; i < req.End; i++ {
		r := req.Text[i]
		advance := px / 2
		if text.IsNewParagraph(r) {
			advance = 0
		}
		out.Glyphs = append(out.Glyphs, text.GlyphInfo{
			FontID:      req.Font,
			Index:       uint32(r),
			Width:       advance,
			Height:      px * 0.7,
			YBearing:    px * 0.7,
			Advance:     advance,
			ScaleFactor: 1,
		})
		out.Clusters = append(out.Clusters, i)
	}
	return out
}

// GlyphBitmap implements fonts.Service.
// Glyphs render as filled boxes one pixel narrower than their advance;
// color glyphs are opaque red.
func (s *Service) GlyphBitmap(id text.FontID, glyph uint32, synth fonts.Synthesis) (*fonts.Bitmap, bool) {
	k, ok := s.key(id)
	r := rune(glyph)
	if !ok || unicode.IsSpace(r) || text.IsNewParagraph(r) {
		return nil, false
	}
	px := float32(k.size) / 64
	w := int(px/2) - 1
	if synth.Bold {
		w++
	}
	h := int(math.Ceil(float64(px * 0.7)))
	if w <= 0 || h <= 0 {
		return nil, false
	}
	rect := image.Rect(0, 0, w, h)
	if k.family == Emoji {
		img := image.NewNRGBA(rect)
		for i := 0; i < len(img.Pix); i += 4 {
			img.Pix[i], img.Pix[i+3] = 0xFF, 0xFF
		}
		return &fonts.Bitmap{Image: img, Top: h, IsColor: true}, true
	}
	img := image.NewAlpha(rect)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetAlpha(x, y, color.Alpha{A: 0xFF})
		}
	}
	return &fonts.Bitmap{Image: img, Top: h}, true
}

// Metrics implements fonts.Service.
func (s *Service) Metrics(id text.FontID) fonts.Metrics {
	px := s.PixelSize(id)
	return fonts.Metrics{
		Ascender:               px * 0.8,
		Descender:              -px * 0.2,
		Height:                 px,
		UnderlinePosition:      max(1, px*0.1),
		UnderlineThickness:     max(1, px/16),
		StrikethroughPosition:  px * 0.3,
		StrikethroughThickness: max(1, px/16),
	}
}

// Description implements fonts.Service.
func (s *Service) Description(id text.FontID) text.FontDescription {
	k, _ := s.key(id)
	d := text.DefaultFontDescription()
	d.Family = k.family
	if k.bold {
		d.Weight = text.FontWeightBold
	}
	if k.italic {
		d.Slant = text.FontSlantItalic
	}
	return d
}

// PointSize implements fonts.Service.
func (s *Service) PointSize(id text.FontID) text.PointSize26Dot6 {
	k, _ := s.key(id)
	return k.size
}
