package script

import (
	"unicode"

	"langshim/internal/core/lang"
)

// Script is a coarse writing-system class
type Script uint8

// Scripts the engine distinguishes
const (
	None Script = iota
	Latin
	Cyrillic
	Greek
	Han
	Hiragana
	Katakana
	Hangul
	Arabic
	Hebrew
	Thai
	Georgian
	Armenian
	Devanagari
	Other
	numScripts
)

var scriptNames = [numScripts]string{
	"", "Latin", "Cyrillic", "Greek", "Han", "Hiragana", "Katakana", "Hangul",
	"Arabic", "Hebrew", "Thai", "Georgian", "Armenian", "Devanagari", "Other",
}

// String returns the script name; "" for None
func (s Script) String() string {
	if s < numScripts {
		return scriptNames[s]
	}
	return ""
}

// Classify returns the script of a letter rune; None for non-letters
func Classify(r rune) Script {
	if !unicode.IsLetter(r) {
		return None
	}
	switch {
	case unicode.In(r, unicode.Latin):
		return Latin
	case unicode.In(r, unicode.Hangul):
		return Hangul
	case unicode.In(r, unicode.Hiragana):
		return Hiragana
	case unicode.In(r, unicode.Katakana):
		return Katakana
	case unicode.In(r, unicode.Han):
		return Han
	case unicode.In(r, unicode.Arabic):
		return Arabic
	case unicode.In(r, unicode.Hebrew):
		return Hebrew
	case unicode.In(r, unicode.Thai):
		return Thai
	case unicode.In(r, unicode.Greek):
		return Greek
	case unicode.In(r, unicode.Cyrillic):
		return Cyrillic
	case unicode.In(r, unicode.Georgian):
		return Georgian
	case unicode.In(r, unicode.Armenian):
		return Armenian
	case unicode.In(r, unicode.Devanagari):
		return Devanagari
	default:
		return Other
	}
}

// scriptCounts holds per-script letter counts for one segment
type scriptCounts [numScripts]int

// dominant picks the predominant script. Any kana alongside Han reads as
// Japanese text, so Han loses to kana when both are present
func (c *scriptCounts) dominant() Script {
	best, bestN := None, 0
	for s := Latin; s < numScripts; s++ {
		if c[s] > bestN {
			best, bestN = s, c[s]
		}
	}
	if best == Han && c[Hiragana]+c[Katakana] > 0 {
		if c[Hiragana] >= c[Katakana] {
			return Hiragana
		}
		return Katakana
	}
	return best
}

// scriptLanguage maps scripts with a strong single-language reading.
// Latin is scored separately; Other has no mapping
func scriptLanguage(s Script) lang.Language {
	switch s {
	case Hiragana, Katakana:
		return lang.Japanese
	case Hangul:
		return lang.Korean
	case Han:
		return lang.Chinese
	case Arabic:
		return lang.Arabic
	case Hebrew:
		return lang.Hebrew
	case Thai:
		return lang.Thai
	case Greek:
		return lang.Greek
	case Cyrillic:
		return lang.Russian
	case Georgian:
		return lang.Georgian
	case Armenian:
		return lang.Armenian
	case Devanagari:
		return lang.Hindi
	default:
		return lang.UnknownLanguage
	}
}
