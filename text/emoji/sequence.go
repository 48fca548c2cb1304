package emoji

// SequenceLength returns the number of runes forming the emoji sequence that
// starts at runes[0], or 0 if runes does not start with an emoji.
//
// Recognized sequences are flags (two regional indicators), subdivision flags
// (black flag, tags, cancel tag), keycaps (base, optional U+FE0F, U+20E3) and
// ZWJ chains of emoji with optional variation selector and skin tone.
// A text default emoji counts only when followed by U+FE0F, a modifier or a ZWJ.
func SequenceLength(runes []rune) int {
	if len(runes) == 0 {
		return 0
	}
	r := runes[0]
	switch {
	case IsRegionalIndicator(r):
		if len(runes) >= 2 && IsRegionalIndicator(runes[1]) {
			return 2
		}
		return 1
	case r == BlackFlag:
		if n := tagSequenceLength(runes); n > 0 {
			return n
		}
	case IsKeycapBase(r):
		return keycapLength(runes)
	}

	n := elementLength(runes)
	if n == 0 {
		return 0
	}
	for n+1 < len(runes) && runes[n] == ZWJ {
		next := elementLength(runes[n+1:])
		if next == 0 {
			next = textElementLength(runes[n+1:])
		}
		if next == 0 {
			break
		}
		n += 1 + next
	}
	return n
}

// elementLength measures one emoji with its optional selector and modifier.
func elementLength(runes []rune) int {
	r := runes[0]
	n := 1
	switch {
	case IsEmojiPresentation(r):
		if n < len(runes) && runes[n] == TextVariation {
			return 0
		}
	case IsTextDefault(r):
		if n >= len(runes) || !(runes[n] == EmojiVariation || IsModifier(runes[n]) || runes[n] == ZWJ) {
			return 0
		}
	default:
		return 0
	}
	return n + suffixLength(runes[n:], r)
}

// textElementLength measures a text default emoji after a ZWJ, which needs no selector.
func textElementLength(runes []rune) int {
	if len(runes) == 0 || !IsTextDefault(runes[0]) {
		return 0
	}
	return 1 + suffixLength(runes[1:], runes[0])
}

func suffixLength(rest []rune, base rune) int {
	n := 0
	if n < len(rest) && rest[n] == EmojiVariation {
		n++
	}
	if n < len(rest) && IsModifier(rest[n]) && IsModifierBase(base) {
		n++
	}
	return n
}

func tagSequenceLength(runes []rune) int {
	i := 1
	for i < len(runes) && IsTag(runes[i]) {
		i++
	}
	if i > 1 && i < len(runes) && runes[i] == CancelTag {
		return i + 1
	}
	return 0
}

func keycapLength(runes []rune) int {
	i := 1
	if i < len(runes) && runes[i] == EmojiVariation {
		i++
	}
	if i < len(runes) && runes[i] == CombiningKeycap {
		return i + 1
	}
	return 0
}
