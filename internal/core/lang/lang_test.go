package lang

import (
	"testing"

	"golang.org/x/text/language"
)

func TestCodesMatchEngineValues(t *testing.T) {
	// spot checks against the engine enum; these values cross the boundary
	cases := []struct {
		l    Language
		want int32
	}{
		{English, 0}, {French, 4}, {Japanese, 8}, {Unknown, 26},
		{Thai, 53}, {Arabic, 54}, {ChineseT, 69}, {NorwegianN, 80},
	}
	for _, c := range cases {
		if int32(c.l) != c.want {
			t.Fatalf("%s = %d, want %d", c.l.Name(), int32(c.l), c.want)
		}
	}
	if UnknownEncoding != 23 || UTF8 != 22 {
		t.Fatalf("encoding sentinels drifted")
	}
}

func TestNameAndCode(t *testing.T) {
	if French.Name() != "French" || French.Code() != "fr" || French.String() != "French" {
		t.Fatalf("French metadata mismatch")
	}
	if Hebrew.Code() != "iw" {
		t.Fatalf("Hebrew uses the engine's legacy code, got %q", Hebrew.Code())
	}
	if Language(4242).Name() != "Unknown" || Language(4242).Code() != "un" || Language(4242).Known() {
		t.Fatalf("out-of-table codes should read as unknown")
	}
	if !Unknown.Known() {
		t.Fatalf("Unknown is a table member")
	}
}

func TestFromCode(t *testing.T) {
	cases := map[string]Language{
		"en":      English,
		" FR ":    French,
		"iw":      Hebrew,
		"he":      Hebrew,
		"jw":      Javanese,
		"zh-Hant": ChineseT,
		"zh-TW":   ChineseT,
		"zh":      Chinese,
		"pt-BR":   Portuguese,
		"nb":      Norwegian,
		"":        Unknown,
		"!!":      Unknown,
	}
	for in, want := range cases {
		if got := FromCode(in); got != want {
			t.Fatalf("FromCode(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestTagRoundTrip(t *testing.T) {
	for _, l := range []Language{English, French, German, Spanish, Russian, Japanese} {
		if got := FromTag(l.Tag()); got != l {
			t.Fatalf("FromTag(%v.Tag()) = %v", l, got)
		}
	}
	if Unknown.Tag() != language.Und || FromTag(language.Und) != Unknown {
		t.Fatalf("unknown should map to und and back")
	}
}

func TestParseContentLanguage(t *testing.T) {
	got := ParseContentLanguage("fr, en;q=0.5, fr-CA")
	if len(got) != 2 || got[0] != French || got[1] != English {
		t.Fatalf("ParseContentLanguage = %v", got)
	}
	if ParseContentLanguage("   ") != nil {
		t.Fatalf("blank hint should yield nil")
	}
	// unknown subtags are dropped rather than mapped to English
	for _, l := range ParseContentLanguage("qaa, de") {
		if l == English {
			t.Fatalf("junk mapped to English: %v", l)
		}
	}
}

func TestAllSorted(t *testing.T) {
	all := All()
	if len(all) != len(table) {
		t.Fatalf("All() len = %d, want %d", len(all), len(table))
	}
	for i := 1; i < len(all); i++ {
		if all[i-1] >= all[i] {
			t.Fatalf("All() not strictly ascending at %d", i)
		}
	}
}

func TestEncodingString(t *testing.T) {
	if UTF8.String() != "UTF-8" || Encoding(999).String() != "Unknown" {
		t.Fatalf("encoding names mismatch")
	}
	if !UTF8.UnicodeCompatible() || JapaneseShiftJIS.UnicodeCompatible() {
		t.Fatalf("UnicodeCompatible mismatch")
	}
}
