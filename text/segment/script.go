package segment

import (
	"github.com/go-text/typesetting/language"

	"github.com/gogpu/textkit/text"
	"github.com/gogpu/textkit/text/emoji"
)

// ScriptOf returns the script of a single character.
// Emoji presentation characters report text.ScriptEmoji.
func ScriptOf(r rune) text.Script {
	if emoji.IsEmojiPresentation(r) {
		return text.ScriptEmoji
	}
	return text.FromLanguageScript(language.LookupScript(r))
}

// IsCommonScript reports whether r takes the script of its neighbours.
// This covers Common and Inherited characters, joiners and variation selectors.
func IsCommonScript(r rune) bool {
	switch r {
	case text.ZeroWidthJoiner, text.ZeroWidthNonJoiner, emoji.TextVariation, emoji.EmojiVariation:
		return true
	}
	if emoji.IsEmojiPresentation(r) {
		return false
	}
	switch language.LookupScript(r) {
	case language.Common, language.Inherited:
		return true
	}
	return false
}

// Scripts returns the script of every character in runes.
// Characters belonging to an emoji sequence all report text.ScriptEmoji,
// so joiners and selectors stay with the emoji they modify.
func Scripts(runes []rune) []text.Script {
	scripts := make([]text.Script, len(runes))
	for i := 0; i < len(runes); {
		if n := emoji.SequenceLength(runes[i:]); n > 0 {
			for j := i; j < i+n; j++ {
				scripts[j] = text.ScriptEmoji
			}
			i += n
			continue
		}
		if IsCommonScript(runes[i]) {
			scripts[i] = text.ScriptCommon
		} else {
			scripts[i] = ScriptOf(runes[i])
		}
		i++
	}
	return scripts
}
