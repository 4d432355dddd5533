package script

import (
	"strings"
	"sync"

	"langshim/internal/core/lang"

	"golang.org/x/text/cases"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
	"golang.org/x/text/width"
)

// stopword lists for the Latin-script languages the engine scores
var stopwordLists = map[lang.Language]string{
	lang.English:    "the and of to in is that it was for on are with as his they be at this have from or by not but what we you he she over which there their an were been has would",
	lang.French:     "le la les de des du et est un une il elle dans sur pour pas que qui ne au aux avec ce cette nous vous ils sont mais où été être très je",
	lang.German:     "der die das und ist nicht ein eine ich sie es mit auf für den dem von zu sich auch wir aber wie noch oder",
	lang.Spanish:    "el la los las de y que en un una es por con no para del se su al lo como más pero sus está",
	lang.Italian:    "il la di che e è un una per non con del della sono gli le nel lo ma come anche alla questo più",
	lang.Portuguese: "o a os as de e que um uma é do da em não para com por se dos das mais mas como ao você",
	lang.Dutch:      "de het een en van is dat niet op te zijn met voor ik die er aan ook maar om bij wij naar",
}

// scored lists the Latin languages in code order; ties resolve along it
var scored = []lang.Language{
	lang.English, lang.Dutch, lang.French, lang.German, lang.Italian, lang.Portuguese, lang.Spanish,
}

var stopwords = func() map[string][]lang.Language {
	m := map[string][]lang.Language{}
	for _, l := range scored {
		for _, w := range strings.Fields(stopwordLists[l]) {
			m[w] = append(m[w], l)
		}
	}
	return m
}()

func isScored(l lang.Language) bool {
	for _, s := range scored {
		if s == l {
			return true
		}
	}
	return false
}

// foldPool holds NFC, width-fold and case-fold chains; a transformer is
// stateful and must not be shared
var foldPool = sync.Pool{
	New: func() any { return transform.Chain(norm.NFC, width.Fold, cases.Fold()) },
}

func fold(w string) string {
	tr := foldPool.Get().(transform.Transformer)
	out, _, err := transform.String(tr, w)
	tr.Reset()
	foldPool.Put(tr)
	if err != nil {
		return strings.ToLower(w)
	}
	return out
}

// scoreLatin counts stopword hits per language. Ties prefer the prior, then
// the previous segment's language, then the lowest code. No hits at all
// yields the prior (which may be Unknown)
func scoreLatin(words []string, prior, context lang.Language) (lang.Language, int) {
	counts := map[lang.Language]int{}
	for _, w := range words {
		for _, l := range stopwords[fold(w)] {
			counts[l]++
		}
	}
	best := 0
	for _, n := range counts {
		if n > best {
			best = n
		}
	}
	if best == 0 {
		return prior, 0
	}
	var tied []lang.Language
	for _, l := range scored {
		if counts[l] == best {
			tied = append(tied, l)
		}
	}
	for _, pick := range []lang.Language{prior, context} {
		for _, l := range tied {
			if l == pick {
				return l, best
			}
		}
	}
	return tied[0], best
}
