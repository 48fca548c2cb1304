package text

import "github.com/go-text/typesetting/language"

// Script represents a Unicode script for text segmentation.
// Scripts are used to identify runs of text that should be shaped together.
type Script uint32

// Script constants for the scripts the text pipeline distinguishes.
const (
	// ScriptUnknown is used for unrecognized scripts.
	ScriptUnknown Script = iota
	// ScriptCommon is used for punctuation, numbers, and symbols shared across scripts.
	ScriptCommon
	// ScriptInherited is used for combining marks that inherit the script of the base character.
	ScriptInherited
	// ScriptLatin is used for Latin-based scripts (English, French, German, etc.)
	ScriptLatin
	// ScriptCyrillic is used for Cyrillic script (Russian, Ukrainian, Bulgarian, etc.)
	ScriptCyrillic
	// ScriptGreek is used for Greek script.
	ScriptGreek
	// ScriptArabic is used for Arabic script (Arabic, Persian, Urdu, etc.)
	ScriptArabic
	// ScriptHebrew is used for Hebrew script.
	ScriptHebrew
	// ScriptSyriac is used for Syriac script.
	ScriptSyriac
	// ScriptThaana is used for Thaana script (Dhivehi).
	ScriptThaana
	// ScriptHan is used for Chinese/Japanese Kanji characters.
	ScriptHan
	// ScriptHiragana is used for Japanese Hiragana.
	ScriptHiragana
	// ScriptKatakana is used for Japanese Katakana.
	ScriptKatakana
	// ScriptHangul is used for Korean script.
	ScriptHangul
	// ScriptDevanagari is used for Devanagari script (Hindi, Sanskrit, etc.)
	ScriptDevanagari
	// ScriptBengali is used for Bengali script.
	ScriptBengali
	// ScriptTamil is used for Tamil script.
	ScriptTamil
	// ScriptTelugu is used for Telugu script.
	ScriptTelugu
	// ScriptKannada is used for Kannada script.
	ScriptKannada
	// ScriptMalayalam is used for Malayalam script.
	ScriptMalayalam
	// ScriptGujarati is used for Gujarati script.
	ScriptGujarati
	// ScriptOriya is used for Oriya script.
	ScriptOriya
	// ScriptGurmukhi is used for Gurmukhi script (Punjabi).
	ScriptGurmukhi
	// ScriptSinhala is used for Sinhala script.
	ScriptSinhala
	// ScriptThai is used for Thai script.
	ScriptThai
	// ScriptKhmer is used for Khmer script (Cambodian).
	ScriptKhmer
	// ScriptLao is used for Lao script.
	ScriptLao
	// ScriptMyanmar is used for Myanmar (Burmese) script.
	ScriptMyanmar
	// ScriptTibetan is used for Tibetan script.
	ScriptTibetan
	// ScriptGeorgian is used for Georgian script.
	ScriptGeorgian
	// ScriptArmenian is used for Armenian script.
	ScriptArmenian
	// ScriptEthiopic is used for Ethiopic script.
	ScriptEthiopic
	// ScriptEmoji is used for emoji presentation characters.
	ScriptEmoji
	// ScriptSymbol is used for symbol-only characters that need a symbol font.
	ScriptSymbol

	scriptCount
)

// scriptNames maps Script values to their string names.
var scriptNames = [scriptCount]string{
	ScriptUnknown:    unknownStr,
	ScriptCommon:     "Common",
	ScriptInherited:  "Inherited",
	ScriptLatin:      "Latin",
	ScriptCyrillic:   "Cyrillic",
	ScriptGreek:      "Greek",
	ScriptArabic:     "Arabic",
	ScriptHebrew:     "Hebrew",
	ScriptSyriac:     "Syriac",
	ScriptThaana:     "Thaana",
	ScriptHan:        "Han",
	ScriptHiragana:   "Hiragana",
	ScriptKatakana:   "Katakana",
	ScriptHangul:     "Hangul",
	ScriptDevanagari: "Devanagari",
	ScriptBengali:    "Bengali",
	ScriptTamil:      "Tamil",
	ScriptTelugu:     "Telugu",
	ScriptKannada:    "Kannada",
	ScriptMalayalam:  "Malayalam",
	ScriptGujarati:   "Gujarati",
	ScriptOriya:      "Oriya",
	ScriptGurmukhi:   "Gurmukhi",
	ScriptSinhala:    "Sinhala",
	ScriptThai:       "Thai",
	ScriptKhmer:      "Khmer",
	ScriptLao:        "Lao",
	ScriptMyanmar:    "Myanmar",
	ScriptTibetan:    "Tibetan",
	ScriptGeorgian:   "Georgian",
	ScriptArmenian:   "Armenian",
	ScriptEthiopic:   "Ethiopic",
	ScriptEmoji:      "Emoji",
	ScriptSymbol:     "Symbol",
}

// languageScripts maps go-text script identifiers to Script values.
var languageScripts = map[language.Script]Script{
	language.Common:     ScriptCommon,
	language.Inherited:  ScriptInherited,
	language.Latin:      ScriptLatin,
	language.Cyrillic:   ScriptCyrillic,
	language.Greek:      ScriptGreek,
	language.Arabic:     ScriptArabic,
	language.Hebrew:     ScriptHebrew,
	language.Syriac:     ScriptSyriac,
	language.Thaana:     ScriptThaana,
	language.Han:        ScriptHan,
	language.Hiragana:   ScriptHiragana,
	language.Katakana:   ScriptKatakana,
	language.Hangul:     ScriptHangul,
	language.Devanagari: ScriptDevanagari,
	language.Bengali:    ScriptBengali,
	language.Tamil:      ScriptTamil,
	language.Telugu:     ScriptTelugu,
	language.Kannada:    ScriptKannada,
	language.Malayalam:  ScriptMalayalam,
	language.Gujarati:   ScriptGujarati,
	language.Oriya:      ScriptOriya,
	language.Gurmukhi:   ScriptGurmukhi,
	language.Sinhala:    ScriptSinhala,
	language.Thai:       ScriptThai,
	language.Khmer:      ScriptKhmer,
	language.Lao:        ScriptLao,
	language.Myanmar:    ScriptMyanmar,
	language.Tibetan:    ScriptTibetan,
	language.Georgian:   ScriptGeorgian,
	language.Armenian:   ScriptArmenian,
	language.Ethiopic:   ScriptEthiopic,
}

// scriptLanguages is the inverse of languageScripts.
var scriptLanguages = func() map[Script]language.Script {
	m := make(map[Script]language.Script, len(languageScripts))
	for ls, s := range languageScripts {
		m[s] = ls
	}
	return m
}()

// FromLanguageScript converts a go-text script to a Script.
// Scripts the pipeline does not distinguish map to ScriptUnknown.
func FromLanguageScript(ls language.Script) Script {
	if s, ok := languageScripts[ls]; ok {
		return s
	}
	return ScriptUnknown
}

// Language returns the go-text script used as a shaping hint.
func (s Script) Language() language.Script {
	if ls, ok := scriptLanguages[s]; ok {
		return ls
	}
	return language.Common
}

func (s Script) String() string {
	if s < scriptCount {
		return scriptNames[s]
	}
	return unknownStr
}

// IsRTL reports whether the script is written right to left.
func (s Script) IsRTL() bool {
	switch s {
	case ScriptArabic, ScriptHebrew, ScriptSyriac, ScriptThaana:
		return true
	default:
		return false
	}
}

// RequiresComplexShaping reports whether glyph substitution and positioning
// depend on context for this script.
func (s Script) RequiresComplexShaping() bool {
	switch s {
	case ScriptArabic, ScriptHebrew, ScriptSyriac, ScriptThaana, ScriptDevanagari,
		ScriptBengali, ScriptTamil, ScriptTelugu, ScriptKannada, ScriptMalayalam,
		ScriptGujarati, ScriptOriya, ScriptGurmukhi, ScriptSinhala,
		ScriptKhmer, ScriptLao, ScriptMyanmar, ScriptTibetan, ScriptThai:
		return true
	default:
		return false
	}
}
