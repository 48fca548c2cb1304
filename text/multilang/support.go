package multilang

import (
	"sync"
	"unicode"

	"golang.org/x/text/language"

	"github.com/gogpu/textkit"
	"github.com/gogpu/textkit/text"
	"github.com/gogpu/textkit/text/fonts"
	"github.com/gogpu/textkit/text/segment"
)

// Support segments text into script runs and validates fonts.
//
// Support is safe for concurrent use, although a text controller usually
// owns one and calls it from a single goroutine.
type Support struct {
	service fonts.Service
	cache   *FontCache
	policy  FallbackPolicy

	mu     sync.RWMutex
	locale language.Tag
}

// New creates a Support resolving fonts through service.
func New(service fonts.Service, opts ...Option) *Support {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.cache == nil {
		cfg.cache = NewFontCache()
	}
	tag, _ := parseLocale(cfg.locale)
	return &Support{
		service: service,
		cache:   cfg.cache,
		policy:  cfg.policy,
		locale:  tag,
	}
}

// Service returns the font service.
func (s *Support) Service() fonts.Service {
	return s.service
}

// Cache returns the font cache.
func (s *Support) Cache() *FontCache {
	return s.cache
}

// SetLocale sets the locale used for shaping and CJK font preference.
// An invalid locale returns an error wrapping text.ErrInvalidLocale and
// keeps the previous one. A new locale clears the font cache.
func (s *Support) SetLocale(locale string) error {
	tag, err := parseLocale(locale)
	if err != nil {
		return err
	}
	s.mu.Lock()
	changed := tag != s.locale
	s.locale = tag
	s.mu.Unlock()
	if changed {
		s.cache.Clear()
	}
	return nil
}

// Locale returns the canonical BCP 47 form of the locale.
func (s *Support) Locale() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.locale.String()
}

// ClearCache forgets every resolved font id.
func (s *Support) ClearCache() {
	s.cache.Clear()
}

func clampRange(length int, start text.CharacterIndex, count text.Length) (text.CharacterIndex, text.CharacterIndex) {
	r := text.NewRange(start, count).Clamp(text.Length(length))
	return r.Start, r.End
}

// SetScripts returns the script runs of runs[startIndex:startIndex+count].
//
// Common characters such as spaces, digits and punctuation join the run
// before them, or the first real script after them at the start of a
// paragraph. A run of only common characters is Latin. A new paragraph
// character ends the current run.
func (s *Support) SetScripts(runes []rune, startIndex text.CharacterIndex, count text.Length) []text.ScriptRun {
	start, end := clampRange(len(runes), startIndex, count)
	if start == end {
		return nil
	}
	scripts := segment.Scripts(runes[start:end])

	var out []text.ScriptRun
	current := text.ScriptRun{CharacterRun: text.CharacterRun{Index: start}, Script: text.ScriptUnknown}
	closeRun := func(at text.CharacterIndex) {
		if at == current.Index {
			return
		}
		current.Count = at - current.Index
		if current.Script == text.ScriptUnknown {
			current.Script = text.ScriptLatin
		}
		out = append(out, current)
		current = text.ScriptRun{CharacterRun: text.CharacterRun{Index: at}, Script: text.ScriptUnknown}
	}

	for i := start; i < end; i++ {
		script := scripts[i-start]
		switch {
		case script == text.ScriptCommon:
		case current.Script == text.ScriptUnknown:
			current.Script = script
		case script != current.Script:
			closeRun(i)
			current.Script = script
		}
		if text.IsNewParagraph(runes[i]) {
			closeRun(i + 1)
		}
	}
	closeRun(end)
	return out
}

// ValidateFonts returns the font runs of runes[startIndex:startIndex+count].
//
// Each character asks for the font described by fontRuns merged over
// defaultDescription. When that font cannot render the character the
// fallback policy is consulted. A character never ends up with font id 0
// while the service has at least one font.
func (s *Support) ValidateFonts(
	runes []rune,
	scripts []text.ScriptRun,
	fontRuns []text.FontDescriptionRun,
	defaultDescription text.FontDescription,
	defaultPointSize text.PointSize26Dot6,
	startIndex text.CharacterIndex,
	count text.Length,
) []text.FontRun {
	start, end := clampRange(len(runes), startIndex, count)
	if start == end {
		return nil
	}
	charScripts := segment.Scripts(runes[start:end])
	locale := s.Locale()
	descriptions := make(map[text.FontID]text.FontDescription)

	var (
		out           []text.FontRun
		prevFont      text.FontID
		prevRequested text.FontID
		scriptIndex   = text.FindRun(scripts, start)
	)
	for i := start; i < end; i++ {
		r := runes[i]
		charScript := charScripts[i-start]
		script, next := scriptAt(scripts, scriptIndex, i, charScript)
		scriptIndex = next

		merged, _ := text.MergeFontDescriptionRun(fontRuns, i)
		desc, size := defaultDescription.Merge(&merged, defaultPointSize)
		requested := s.cache.Resolve(s.service, desc, size, script)
		needsColor := charScript == text.ScriptEmoji

		var id text.FontID
		switch {
		case charScript == text.ScriptCommon && prevFont != 0 && requested == prevRequested && s.service.HasGlyph(prevFont, r):
			id = prevFont
		case s.renders(requested, r, needsColor):
			id = requested
			if charScript != text.ScriptCommon {
				s.cache.SetScriptFont(desc, size, script, id)
			}
		default:
			id = s.policy.FindFont(s.service, s.cache, FallbackRequest{
				Character:   r,
				Script:      script,
				Requested:   requested,
				Description: desc,
				Size:        size,
				Locale:      locale,
				NeedsColor:  needsColor,
			})
			if id == 0 {
				id = s.service.FindDefaultFont(r, size)
			}
			if id == 0 {
				id = requested
			}
			if unicode.IsGraphic(r) && !unicode.IsSpace(r) && !s.service.HasGlyph(id, r) {
				textkit.Logger().Warn("multilang: no font renders character, using best effort font",
					"char", string(r), "index", i, "script", script, "font", id)
			}
		}

		got, ok := descriptions[id]
		if !ok {
			got = s.service.Description(id)
			descriptions[id] = got
		}
		run := text.FontRun{
			CharacterRun:     text.CharacterRun{Index: i, Count: 1},
			FontID:           id,
			IsBoldRequired:   desc.Weight >= text.FontWeightBold && got.Weight < text.FontWeightSemiBold,
			IsItalicRequired: desc.Slant.IsSlanted() && !got.Slant.IsSlanted(),
		}

		if n := len(out); n > 0 && i > start && !text.IsNewParagraph(runes[i-1]) &&
			out[n-1].FontID == run.FontID &&
			out[n-1].IsBoldRequired == run.IsBoldRequired &&
			out[n-1].IsItalicRequired == run.IsItalicRequired {
			out[n-1].Count++
		} else {
			out = append(out, run)
		}

		if text.IsNewParagraph(r) {
			prevFont, prevRequested = 0, 0
		} else {
			prevFont, prevRequested = id, requested
		}
	}
	return out
}

func (s *Support) renders(id text.FontID, r rune, needsColor bool) bool {
	if id == 0 || !s.service.HasGlyph(id, r) {
		return false
	}
	return !needsColor || s.service.IsColorFont(id)
}

// scriptAt returns the script of the run covering index, starting the
// search at run i, together with the index of that run.
// Characters outside every run use their own script, Latin for common ones.
func scriptAt(runs []text.ScriptRun, i int, index text.CharacterIndex, own text.Script) (text.Script, int) {
	if i < 0 {
		i = 0
	}
	for i < len(runs) && runs[i].End() <= index {
		i++
	}
	if i < len(runs) && runs[i].Contains(index) {
		return runs[i].Script, i
	}
	if own == text.ScriptCommon {
		return text.ScriptLatin, i
	}
	return own, i
}
