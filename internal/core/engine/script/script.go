// Package script is a small deterministic language identification engine.
// It classifies text by writing system and separates Latin-script languages
// with stopword counts. Stateless and safe for concurrent use
package script

import (
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"langshim/internal/core/engine"
	"langshim/internal/core/lang"
)

// Name is the registry name of this engine
const Name = "script"

const (
	// MaxChunkBytes is the largest chunk the engine emits; longer runs are split
	MaxChunkBytes = 1<<16 - 1

	minTextBytes     = 16 // below this the overall result is Unknown unless FlagBestEffort
	minReliableBytes = 32
	reliablePercent  = 70
)

func init() { engine.Register(New()) }

// Engine implements engine.Engine
type Engine struct{}

// New returns the script engine
func New() *Engine { return &Engine{} }

// Name implements engine.Engine
func (*Engine) Name() string { return Name }

type segment struct {
	start, end int
	letters    int // letter bytes
	counts     scriptCounts
	words      []string
	lang       lang.Language
	hits       int
}

// Detect implements engine.Engine
func (*Engine) Detect(buf []byte, plainText bool, hints engine.Hints, flags engine.Flags) (engine.Summary, error) {
	sum := engine.Summary{
		Language:  lang.UnknownLanguage,
		Language3: [3]lang.Language{lang.UnknownLanguage, lang.UnknownLanguage, lang.UnknownLanguage},
	}
	if len(buf) == 0 {
		return sum, nil
	}

	segs := split(buf, !plainText || flags.Has(engine.FlagHTML))
	prior := priorFrom(hints)
	label(segs, prior)

	sum.Chunks = chunks(segs)

	type stat struct {
		l     lang.Language
		bytes int
		hits  int
	}
	byLang := map[lang.Language]*stat{}
	for i := range segs {
		s := &segs[i]
		sum.TextBytes += s.letters
		if s.lang == lang.UnknownLanguage || s.letters == 0 {
			continue
		}
		st := byLang[s.lang]
		if st == nil {
			st = &stat{l: s.lang}
			byLang[s.lang] = st
		}
		st.bytes += s.letters
		st.hits += s.hits
	}
	ranked := make([]*stat, 0, len(byLang))
	for _, st := range byLang {
		ranked = append(ranked, st)
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].bytes != ranked[j].bytes {
			return ranked[i].bytes > ranked[j].bytes
		}
		return ranked[i].l < ranked[j].l
	})
	for i := 0; i < len(ranked) && i < 3; i++ {
		st := ranked[i]
		sum.Language3[i] = st.l
		sum.Percent3[i] = st.bytes * 100 / sum.TextBytes
		sum.NormalizedScore3[i] = float64(st.hits) * 1024 / float64(st.bytes)
	}

	if len(ranked) > 0 && (sum.TextBytes >= minTextBytes || flags.Has(engine.FlagBestEffort)) {
		sum.Language = sum.Language3[0]
	}
	sum.Reliable = sum.Language != lang.UnknownLanguage &&
		sum.TextBytes >= minReliableBytes &&
		sum.Percent3[0] >= reliablePercent
	return sum, nil
}

func isBoundary(r rune) bool {
	switch r {
	case '.', '!', '?', '\n', '。', '！', '？', '؟', '।':
		return true
	}
	return false
}

// split walks buf once and cuts it into contiguous segments at sentence
// boundaries. Segments tile [0, len(buf)). Markup between '<' and '>' is
// skipped for scoring when skipTags is set
func split(buf []byte, skipTags bool) []segment {
	var (
		segs  []segment
		cur   segment
		word  strings.Builder
		inTag bool
		i     int
	)
	flushWord := func() {
		if word.Len() > 0 {
			cur.words = append(cur.words, word.String())
			word.Reset()
		}
	}
	cut := func(end int) {
		flushWord()
		cur.end = end
		segs = append(segs, cur)
		cur = segment{start: end}
	}

	for i < len(buf) {
		r, size := utf8.DecodeRune(buf[i:])
		switch {
		case r == utf8.RuneError && size <= 1:
			flushWord()
		case skipTags && inTag:
			if r == '>' {
				inTag = false
			}
		case skipTags && r == '<':
			flushWord()
			inTag = true
		case unicode.IsLetter(r):
			if s := Classify(r); s != None {
				cur.counts[s]++
			}
			cur.letters += size
			word.WriteRune(r)
		case unicode.Is(unicode.Mn, r) && word.Len() > 0:
			// combining marks stay with their base letter
			cur.letters += size
			word.WriteRune(r)
		default:
			flushWord()
			if isBoundary(r) {
				cut(i + size)
			}
		}
		i += size
	}
	if cur.start < len(buf) {
		cut(len(buf))
	}
	return segs
}

// label assigns a language to every segment. Letterless segments inherit the
// previous label, leading ones the first real label
func label(segs []segment, prior lang.Language) {
	context := lang.UnknownLanguage
	first := -1
	for i := range segs {
		s := &segs[i]
		if s.letters == 0 {
			s.lang = context
			continue
		}
		sc := s.counts.dominant()
		if sc == Latin {
			s.lang, s.hits = scoreLatin(s.words, prior, context)
		} else {
			s.lang, s.hits = scriptLanguage(sc), s.counts[sc]
		}
		if first < 0 {
			first = i
		}
		context = s.lang
	}
	if first > 0 {
		for i := 0; i < first; i++ {
			segs[i].lang = segs[first].lang
		}
	}
}

// chunks merges equal-language neighbors and splits runs above MaxChunkBytes
func chunks(segs []segment) []engine.ResultChunk {
	var out []engine.ResultChunk
	emit := func(start, end int, l lang.Language) {
		for off := start; off < end; off += MaxChunkBytes {
			n := min(MaxChunkBytes, end-off)
			out = append(out, engine.ResultChunk{Offset: off, Bytes: n, Lang1: l})
		}
	}
	for i := 0; i < len(segs); {
		j := i + 1
		for j < len(segs) && segs[j].lang == segs[i].lang {
			j++
		}
		emit(segs[i].start, segs[j-1].end, segs[i].lang)
		i = j
	}
	return out
}

var tldLanguage = map[string]lang.Language{
	"fr": lang.French,
	"de": lang.German, "at": lang.German,
	"es": lang.Spanish, "mx": lang.Spanish, "ar": lang.Spanish,
	"it": lang.Italian,
	"pt": lang.Portuguese, "br": lang.Portuguese,
	"nl": lang.Dutch,
	"uk": lang.English, "us": lang.English, "au": lang.English, "nz": lang.English, "ie": lang.English,
}

// priorFrom picks one Latin-script language from the hints, strongest first:
// explicit language, content language, then top-level domain
func priorFrom(h engine.Hints) lang.Language {
	if isScored(h.Language) {
		return h.Language
	}
	for _, l := range lang.ParseContentLanguage(h.ContentLanguage) {
		if isScored(l) {
			return l
		}
	}
	tld := strings.ToLower(strings.TrimPrefix(strings.TrimSpace(h.TLD), "."))
	if l, ok := tldLanguage[tld]; ok {
		return l
	}
	return lang.UnknownLanguage
}
