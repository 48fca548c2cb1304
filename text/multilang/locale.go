package multilang

import (
	"fmt"

	"golang.org/x/text/language"

	"github.com/gogpu/textkit/text"
)

const defaultLocale = "en"

// parseLocale canonicalizes a BCP 47 locale such as "zh_TW" or "ja-jp".
func parseLocale(s string) (language.Tag, error) {
	tag, err := language.Parse(s)
	if err != nil {
		return language.Und, fmt.Errorf("%w: %q: %w", text.ErrInvalidLocale, s, err)
	}
	return tag, nil
}

var (
	japaneseFamilies = []string{"Noto Sans CJK JP", "Noto Sans JP", "Hiragino Sans", "Yu Gothic", "Meiryo"}
	koreanFamilies   = []string{"Noto Sans CJK KR", "Noto Sans KR", "Apple SD Gothic Neo", "Malgun Gothic"}
	simplifiedHan    = []string{"Noto Sans CJK SC", "Noto Sans SC", "PingFang SC", "Microsoft YaHei"}
	traditionalHan   = []string{"Noto Sans CJK TC", "Noto Sans TC", "PingFang TC", "Microsoft JhengHei"}
)

// preferredFamilies returns the families tried first for CJK characters.
// Han ideographs are shared between Chinese, Japanese and Korean but their
// glyphs differ, so the locale decides which family is tried first.
func preferredFamilies(locale string, script text.Script) []string {
	switch script {
	case text.ScriptHan, text.ScriptHiragana, text.ScriptKatakana, text.ScriptHangul:
	default:
		return nil
	}
	tag, err := language.Parse(locale)
	if err != nil {
		return nil
	}
	base, _ := tag.Base()
	switch base.String() {
	case "ja":
		return japaneseFamilies
	case "ko":
		return koreanFamilies
	case "zh":
		if s, _ := tag.Script(); s.String() == "Hant" {
			return traditionalHan
		}
		return simplifiedHan
	}
	switch script {
	case text.ScriptHiragana, text.ScriptKatakana:
		return japaneseFamilies
	case text.ScriptHangul:
		return koreanFamilies
	}
	return nil
}
