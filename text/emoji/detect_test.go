package emoji

import (
	"testing"
)

func TestIsEmoji(t *testing.T) {
	tests := []struct {
		name string
		rune rune
		want bool
	}{
		{"grinning face", 0x1F600, true},
		{"thumbs up", 0x1F44D, true},
		{"red heart", 0x2764, true},
		{"copyright", 0x00A9, true},
		{"letter A", 'A', false},
		{"digit 1", '1', false},
		{"space", ' ', false},
		{"arabic alef", 0x0627, false},
		{"regional A", 0x1F1E6, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsEmoji(tt.rune); got != tt.want {
				t.Errorf("IsEmoji(%U) = %v, want %v", tt.rune, got, tt.want)
			}
		})
	}
}

func TestPresentation(t *testing.T) {
	tests := []struct {
		name         string
		rune         rune
		presentation bool
		textDefault  bool
	}{
		{"grinning face", 0x1F600, true, false},
		{"rocket", 0x1F680, true, false},
		{"heavy heart", 0x2764, false, true},
		{"sun", 0x2600, false, true},
		{"watch", 0x231A, true, false},
		{"trademark", 0x2122, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsEmojiPresentation(tt.rune); got != tt.presentation {
				t.Errorf("IsEmojiPresentation(%U) = %v, want %v", tt.rune, got, tt.presentation)
			}
			if got := IsTextDefault(tt.rune); got != tt.textDefault {
				t.Errorf("IsTextDefault(%U) = %v, want %v", tt.rune, got, tt.textDefault)
			}
		})
	}
}

func TestIsModifier(t *testing.T) {
	tests := []struct {
		name string
		rune rune
		want bool
	}{
		{"light skin", 0x1F3FB, true},
		{"dark", 0x1F3FF, true},
		{"before range", 0x1F3FA, false},
		{"after range", 0x1F400, false},
		{"letter", 'A', false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsModifier(tt.rune); got != tt.want {
				t.Errorf("IsModifier(%U) = %v, want %v", tt.rune, got, tt.want)
			}
		})
	}
}

func TestIsModifierBase(t *testing.T) {
	tests := []struct {
		name string
		rune rune
		want bool
	}{
		{"man", 0x1F468, true},
		{"waving hand", 0x1F44B, true},
		{"index pointing up", 0x261D, true},
		{"grinning face", 0x1F600, false},
		{"letter", 'A', false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsModifierBase(tt.rune); got != tt.want {
				t.Errorf("IsModifierBase(%U) = %v, want %v", tt.rune, got, tt.want)
			}
		})
	}
}

func TestIsComponent(t *testing.T) {
	for _, r := range []rune{ZWJ, TextVariation, EmojiVariation, CombiningKeycap, 0x1F3FB, 0xE0067, CancelTag} {
		if !IsComponent(r) {
			t.Errorf("IsComponent(%U) = false", r)
		}
	}
	for _, r := range []rune{'a', 0x1F600, 0x200C} {
		if IsComponent(r) {
			t.Errorf("IsComponent(%U) = true", r)
		}
	}
}

func TestSequenceLength(t *testing.T) {
	tests := []struct {
		name  string
		runes []rune
		want  int
	}{
		{"empty", nil, 0},
		{"letter", []rune("a"), 0},
		{"single emoji", []rune{0x1F600, 'a'}, 1},
		{"emoji with selector", []rune{0x1F600, EmojiVariation}, 2},
		{"emoji forced to text", []rune{0x1F600, TextVariation}, 0},
		{"text default alone", []rune{0x2764, ' '}, 0},
		{"text default with selector", []rune{0x2764, EmojiVariation}, 2},
		{"skin tone", []rune{0x1F44B, 0x1F3FD}, 2},
		{"modifier on non base ignored", []rune{0x1F600, 0x1F3FD}, 1},
		{"flag", []rune{0x1F1FA, 0x1F1F8, 'x'}, 2},
		{"lone regional indicator", []rune{0x1F1FA}, 1},
		{"keycap", []rune{'1', EmojiVariation, CombiningKeycap}, 3},
		{"keycap without selector", []rune{'#', CombiningKeycap}, 2},
		{"plain digit", []rune("1"), 0},
		{"family zwj", []rune{0x1F468, ZWJ, 0x1F469, ZWJ, 0x1F467}, 5},
		{"zwj with text default", []rune{0x1F3F3, EmojiVariation, ZWJ, 0x26A7, EmojiVariation}, 5},
		{"trailing zwj", []rune{0x1F600, ZWJ}, 1},
		{"england flag", []rune{BlackFlag, 0xE0067, 0xE0062, 0xE0065, 0xE006E, 0xE0067, CancelTag}, 7},
		{"black flag alone", []rune{BlackFlag}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SequenceLength(tt.runes); got != tt.want {
				t.Errorf("SequenceLength(%U) = %d, want %d", tt.runes, got, tt.want)
			}
		})
	}
}
