package text

import "unicode"

// Special characters.
const (
	// ObjectReplacementCharacter is the placeholder of an embedded item.
	ObjectReplacementCharacter = '\uFFFC'
	// ZeroWidthJoiner joins emoji and some scripts.
	ZeroWidthJoiner = '\u200D'
	// ZeroWidthNonJoiner prevents joining.
	ZeroWidthNonJoiner = '\u200C'
)

// IsNewParagraph reports whether r ends a paragraph.
func IsNewParagraph(r rune) bool {
	switch r {
	case '\n', '\v', '\f', '\r', 0x85, 0x2028, 0x2029:
		return true
	}
	return false
}

// IsWhiteSpace reports whether r is a white space character.
func IsWhiteSpace(r rune) bool {
	return unicode.IsSpace(r) || r == 0x200B
}
