// Package engine defines the contract between langshim and a language
// identification engine. The engine is an external collaborator: langshim
// calls it once per request and flattens what it returns
package engine

import (
	"langshim/internal/core/lang"
)

// Flags is the engine behavior bitmask. Values match CLD2; unknown bits are
// handed to the engine unchanged
type Flags int32

// Engine flags
const (
	FlagScoreAsQuads Flags = 0x0100
	FlagHTML         Flags = 0x0200
	FlagCR           Flags = 0x0400
	FlagVerbose      Flags = 0x0800
	FlagQuiet        Flags = 0x1000
	FlagEcho         Flags = 0x2000
	FlagBestEffort   Flags = 0x4000
)

// Has reports whether every bit of f2 is set in f
func (f Flags) Has(f2 Flags) bool { return f&f2 == f2 }

// Hints is the normalized hint set handed to an engine. The zero value is NOT
// "no hints": use NoHints, because language 0 is English
type Hints struct {
	ContentLanguage string        // "" = absent
	TLD             string        // "" = absent
	Encoding        lang.Encoding // lang.UnknownEncoding = absent
	Language        lang.Language // lang.UnknownLanguage = absent
}

// NoHints returns a Hints value with every field absent
func NoHints() Hints {
	return Hints{Encoding: lang.UnknownEncoding, Language: lang.UnknownLanguage}
}

// ResultChunk is one contiguous span of the input in a single dominant language
type ResultChunk struct {
	Offset int // byte offset into the input
	Bytes  int // span length in bytes
	Lang1  lang.Language
}

// Summary is everything a single engine call reports
type Summary struct {
	Language         lang.Language // overall result
	Language3        [3]lang.Language
	Percent3         [3]int
	NormalizedScore3 [3]float64
	Chunks           []ResultChunk // ascending by Offset
	TextBytes        int           // bytes actually scored
	Reliable         bool
}

// Engine identifies the languages of a byte buffer.
//
// Implementations must be safe for concurrent use: langshim does not serialize
// calls, and every boundary call reaches Detect directly. Detect must not
// retain buf after returning
type Engine interface {
	Name() string
	Detect(buf []byte, plainText bool, hints Hints, flags Flags) (Summary, error)
}

// Func adapts a plain function to Engine
type Func struct {
	ID string
	Fn func(buf []byte, plainText bool, hints Hints, flags Flags) (Summary, error)
}

// Name implements Engine
func (f Func) Name() string { return f.ID }

// Detect implements Engine
func (f Func) Detect(buf []byte, plainText bool, hints Hints, flags Flags) (Summary, error) {
	return f.Fn(buf, plainText, hints, flags)
}
