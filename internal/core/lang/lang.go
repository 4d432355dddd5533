// Package lang holds the language and encoding codes that cross the boundary.
// Values match the CLD2 enums so codes pass through native engines unchanged
package lang

import (
	"sort"
	"strings"

	"golang.org/x/text/language"
)

// Language is a CLD2 language code
type Language int32

// Languages the engines in this module can report. The list is not exhaustive;
// unlisted codes still pass through the boundary verbatim
const (
	English      Language = 0
	Danish       Language = 1
	Dutch        Language = 2
	Finnish      Language = 3
	French       Language = 4
	German       Language = 5
	Hebrew       Language = 6
	Italian      Language = 7
	Japanese     Language = 8
	Korean       Language = 9
	Norwegian    Language = 10
	Polish       Language = 11
	Portuguese   Language = 12
	Russian      Language = 13
	Spanish      Language = 14
	Swedish      Language = 15
	Chinese      Language = 16
	Czech        Language = 17
	Greek        Language = 18
	Icelandic    Language = 19
	Latvian      Language = 20
	Lithuanian   Language = 21
	Romanian     Language = 22
	Hungarian    Language = 23
	Estonian     Language = 24
	TGUnknown    Language = 25
	Unknown      Language = 26
	Bulgarian    Language = 27
	Croatian     Language = 28
	Serbian      Language = 29
	Irish        Language = 30
	Galician     Language = 31
	Tagalog      Language = 32
	Turkish      Language = 33
	Ukrainian    Language = 34
	Hindi        Language = 35
	Macedonian   Language = 36
	Bengali      Language = 37
	Indonesian   Language = 38
	Latin        Language = 39
	Malay        Language = 40
	Malayalam    Language = 41
	Welsh        Language = 42
	Nepali       Language = 43
	Telugu       Language = 44
	Albanian     Language = 45
	Tamil        Language = 46
	Belarusian   Language = 47
	Javanese     Language = 48
	Occitan      Language = 49
	Urdu         Language = 50
	Bihari       Language = 51
	Gujarati     Language = 52
	Thai         Language = 53
	Arabic       Language = 54
	Catalan      Language = 55
	Esperanto    Language = 56
	Basque       Language = 57
	Interlingua  Language = 58
	Kannada      Language = 59
	Punjabi      Language = 60
	ScotsGaelic  Language = 61
	Swahili      Language = 62
	Slovenian    Language = 63
	Marathi      Language = 64
	Maltese      Language = 65
	Vietnamese   Language = 66
	Frisian      Language = 67
	Slovak       Language = 68
	ChineseT     Language = 69
	Faroese      Language = 70
	Sundanese    Language = 71
	Uzbek        Language = 72
	Amharic      Language = 73
	Azerbaijani  Language = 74
	Georgian     Language = 75
	Tigrinya     Language = 76
	Persian      Language = 77
	Bosnian      Language = 78
	Sinhalese    Language = 79
	NorwegianN   Language = 80
	Armenian     Language = 98
)

// UnknownLanguage is the engine's "no language" sentinel, used for absent hints and empty slots
const UnknownLanguage = Unknown

type entry struct {
	lang Language
	name string
	code string // CLD2 short code
	bcp  string // BCP-47 form handed to x/text
}

var table = []entry{
	{English, "English", "en", "en"},
	{Danish, "Danish", "da", "da"},
	{Dutch, "Dutch", "nl", "nl"},
	{Finnish, "Finnish", "fi", "fi"},
	{French, "French", "fr", "fr"},
	{German, "German", "de", "de"},
	{Hebrew, "Hebrew", "iw", "he"},
	{Italian, "Italian", "it", "it"},
	{Japanese, "Japanese", "ja", "ja"},
	{Korean, "Korean", "ko", "ko"},
	{Norwegian, "Norwegian", "no", "nb"},
	{Polish, "Polish", "pl", "pl"},
	{Portuguese, "Portuguese", "pt", "pt"},
	{Russian, "Russian", "ru", "ru"},
	{Spanish, "Spanish", "es", "es"},
	{Swedish, "Swedish", "sv", "sv"},
	{Chinese, "Chinese", "zh", "zh-Hans"},
	{Czech, "Czech", "cs", "cs"},
	{Greek, "Greek", "el", "el"},
	{Icelandic, "Icelandic", "is", "is"},
	{Latvian, "Latvian", "lv", "lv"},
	{Lithuanian, "Lithuanian", "lt", "lt"},
	{Romanian, "Romanian", "ro", "ro"},
	{Hungarian, "Hungarian", "hu", "hu"},
	{Estonian, "Estonian", "et", "et"},
	{TGUnknown, "TG_UNKNOWN_LANGUAGE", "xxx", ""},
	{Unknown, "Unknown", "un", ""},
	{Bulgarian, "Bulgarian", "bg", "bg"},
	{Croatian, "Croatian", "hr", "hr"},
	{Serbian, "Serbian", "sr", "sr"},
	{Irish, "Irish", "ga", "ga"},
	{Galician, "Galician", "gl", "gl"},
	{Tagalog, "Tagalog", "tl", "fil"},
	{Turkish, "Turkish", "tr", "tr"},
	{Ukrainian, "Ukrainian", "uk", "uk"},
	{Hindi, "Hindi", "hi", "hi"},
	{Macedonian, "Macedonian", "mk", "mk"},
	{Bengali, "Bengali", "bn", "bn"},
	{Indonesian, "Indonesian", "id", "id"},
	{Latin, "Latin", "la", "la"},
	{Malay, "Malay", "ms", "ms"},
	{Malayalam, "Malayalam", "ml", "ml"},
	{Welsh, "Welsh", "cy", "cy"},
	{Nepali, "Nepali", "ne", "ne"},
	{Telugu, "Telugu", "te", "te"},
	{Albanian, "Albanian", "sq", "sq"},
	{Tamil, "Tamil", "ta", "ta"},
	{Belarusian, "Belarusian", "be", "be"},
	{Javanese, "Javanese", "jw", "jv"},
	{Occitan, "Occitan", "oc", "oc"},
	{Urdu, "Urdu", "ur", "ur"},
	{Bihari, "Bihari", "bh", "bho"},
	{Gujarati, "Gujarati", "gu", "gu"},
	{Thai, "Thai", "th", "th"},
	{Arabic, "Arabic", "ar", "ar"},
	{Catalan, "Catalan", "ca", "ca"},
	{Esperanto, "Esperanto", "eo", "eo"},
	{Basque, "Basque", "eu", "eu"},
	{Interlingua, "Interlingua", "ia", "ia"},
	{Kannada, "Kannada", "kn", "kn"},
	{Punjabi, "Punjabi", "pa", "pa"},
	{ScotsGaelic, "Scots Gaelic", "gd", "gd"},
	{Swahili, "Swahili", "sw", "sw"},
	{Slovenian, "Slovenian", "sl", "sl"},
	{Marathi, "Marathi", "mr", "mr"},
	{Maltese, "Maltese", "mt", "mt"},
	{Vietnamese, "Vietnamese", "vi", "vi"},
	{Frisian, "Frisian", "fy", "fy"},
	{Slovak, "Slovak", "sk", "sk"},
	{ChineseT, "ChineseT", "zh-Hant", "zh-Hant"},
	{Faroese, "Faroese", "fo", "fo"},
	{Sundanese, "Sundanese", "su", "su"},
	{Uzbek, "Uzbek", "uz", "uz"},
	{Amharic, "Amharic", "am", "am"},
	{Azerbaijani, "Azerbaijani", "az", "az"},
	{Georgian, "Georgian", "ka", "ka"},
	{Tigrinya, "Tigrinya", "ti", "ti"},
	{Persian, "Persian", "fa", "fa"},
	{Bosnian, "Bosnian", "bs", "bs"},
	{Sinhalese, "Sinhalese", "si", "si"},
	{NorwegianN, "Norwegian Nynorsk", "nn", "nn"},
	{Armenian, "Armenian", "hy", "hy"},
}

var (
	byLang = map[Language]*entry{}
	byCode = map[string]Language{}
	byBase = map[string]Language{}
)

func init() {
	for i := range table {
		e := &table[i]
		byLang[e.lang] = e
		byCode[strings.ToLower(e.code)] = e.lang
		if e.bcp == "" {
			continue
		}
		base, _ := language.Make(e.bcp).Base()
		// first entry wins so zh keeps mapping to simplified Chinese
		if _, dup := byBase[base.String()]; !dup {
			byBase[base.String()] = e.lang
		}
	}
}

// Known reports whether l is in the table
func (l Language) Known() bool {
	_, ok := byLang[l]
	return ok
}

// Name returns the display name, or "Unknown" for codes outside the table
func (l Language) Name() string {
	if e, ok := byLang[l]; ok {
		return e.name
	}
	return "Unknown"
}

// Code returns the CLD2 short code ("un" for codes outside the table)
func (l Language) Code() string {
	if e, ok := byLang[l]; ok {
		return e.code
	}
	return "un"
}

// String implements fmt.Stringer
func (l Language) String() string { return l.Name() }

// Tag returns the BCP-47 tag; language.Und for the unknown sentinels
func (l Language) Tag() language.Tag {
	if e, ok := byLang[l]; ok && e.bcp != "" {
		return language.Make(e.bcp)
	}
	return language.Und
}

// FromTag maps a BCP-47 tag to a Language. Chinese splits on script
func FromTag(t language.Tag) Language {
	if t == language.Und {
		return UnknownLanguage
	}
	base, conf := t.Base()
	if conf == language.No {
		return UnknownLanguage
	}
	if base.String() == "zh" {
		if s, _ := t.Script(); s.String() == "Hant" {
			return ChineseT
		}
		return Chinese
	}
	if l, ok := byBase[base.String()]; ok {
		return l
	}
	return UnknownLanguage
}

// FromCode resolves a CLD2 short code or any BCP-47 tag
func FromCode(code string) Language {
	code = strings.TrimSpace(code)
	if code == "" {
		return UnknownLanguage
	}
	if l, ok := byCode[strings.ToLower(code)]; ok {
		return l
	}
	t, err := language.Parse(code)
	if err != nil {
		return UnknownLanguage
	}
	return FromTag(t)
}

// ParseContentLanguage reads a Content-Language / Accept-Language style hint
// ("fr, en;q=0.5") and returns the known languages in preference order
func ParseContentLanguage(hint string) []Language {
	hint = strings.TrimSpace(hint)
	if hint == "" {
		return nil
	}
	var out []Language
	seen := map[Language]bool{}
	add := func(l Language) {
		if l == UnknownLanguage || seen[l] {
			return
		}
		seen[l] = true
		out = append(out, l)
	}

	tags, _, err := language.ParseAcceptLanguage(hint)
	if err == nil {
		for _, t := range tags {
			add(FromTag(t))
		}
		return out
	}
	// tolerate CLD2-only codes such as "iw" or "jw" mixed with junk
	for _, part := range strings.Split(hint, ",") {
		if i := strings.IndexByte(part, ';'); i >= 0 {
			part = part[:i]
		}
		add(FromCode(part))
	}
	return out
}

// All returns the table sorted by code
func All() []Language {
	out := make([]Language, 0, len(table))
	for _, e := range table {
		out = append(out, e.lang)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
