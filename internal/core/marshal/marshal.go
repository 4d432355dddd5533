// Package marshal runs one detection and flattens its result into three
// index-aligned arrays (offsets, sizes, languages) plus fixed scalars.
//
// The engine is called exactly once. Arrays are allocated only after the chunk
// count is known, then filled in engine order. Any failure after the first
// allocation releases everything allocated so far before it propagates,
// including a panic raised while copying.
package marshal

import (
	"math"

	"langshim/internal/core/engine"
	"langshim/internal/core/lang"
	perr "langshim/internal/platform/errors"

	"fortio.org/safecast"
)

// Request is one detection call. Buffer is borrowed for the duration of the
// call and never copied. A nil hint means absent
type Request struct {
	Buffer              []byte
	PlainText           bool
	ContentLanguageHint *string
	TLDHint             *string
	EncodingHint        *lang.Encoding
	LanguageHint        *lang.Language
	Flags               engine.Flags
}

// Outcome is the flattened result. Offsets, Sizes and Langs have one entry
// per chunk and share indexes
type Outcome struct {
	Result           lang.Language
	Language3        [3]int32
	Percent3         [3]int32
	NormalizedScore3 [3]float64
	TextBytes        int32
	Reliable         bool

	Offsets []int32
	Sizes   []uint16
	Langs   []uint16
}

// NumChunks returns the chunk count
func (o *Outcome) NumChunks() int { return len(o.Offsets) }

// Release returns the arrays to alloc and clears them. Safe on a partially
// filled outcome and idempotent
func (o *Outcome) Release(alloc Allocator) {
	if o.Offsets != nil {
		alloc.FreeInt32s(o.Offsets)
		o.Offsets = nil
	}
	if o.Sizes != nil {
		alloc.FreeUint16s(o.Sizes)
		o.Sizes = nil
	}
	if o.Langs != nil {
		alloc.FreeUint16s(o.Langs)
		o.Langs = nil
	}
}

// Hints converts request hints into the engine's form. Absent strings become
// "", an absent encoding UnknownEncoding and an absent language
// UnknownLanguage. A present English (0) hint stays English
func (r Request) Hints() engine.Hints {
	h := engine.NoHints()
	if r.ContentLanguageHint != nil {
		h.ContentLanguage = *r.ContentLanguageHint
	}
	if r.TLDHint != nil {
		h.TLD = *r.TLDHint
	}
	if r.EncodingHint != nil {
		h.Encoding = *r.EncodingHint
	}
	if r.LanguageHint != nil {
		h.Language = *r.LanguageHint
	}
	return h
}

// Marshal runs eng on req and copies the result into arrays from alloc.
// Allocation failures carry ErrorCodeOutOfMemory; a value that does not fit
// its output width is an engine contract violation (ErrorCodeEngine)
func Marshal(eng engine.Engine, alloc Allocator, req Request) (out Outcome, err error) {
	sum, err := eng.Detect(req.Buffer, req.PlainText, req.Hints(), req.Flags)
	if err != nil {
		code := perr.ErrorCodeEngine
		if perr.HasCode(err, perr.ErrorCodeOutOfMemory) {
			code = perr.ErrorCodeOutOfMemory
		}
		return Outcome{}, perr.Wrapf(err, code, "%s: detect", eng.Name())
	}

	committed := false
	defer func() {
		if !committed {
			out.Release(alloc)
			out = Outcome{}
		}
	}()

	n := len(sum.Chunks)
	if out.Offsets, err = alloc.Int32s(n); err != nil {
		return out, perr.WrapIf(err, perr.ErrorCodeOutOfMemory, "allocate chunk offsets")
	}
	if out.Sizes, err = alloc.Uint16s(n); err != nil {
		return out, perr.WrapIf(err, perr.ErrorCodeOutOfMemory, "allocate chunk sizes")
	}
	if out.Langs, err = alloc.Uint16s(n); err != nil {
		return out, perr.WrapIf(err, perr.ErrorCodeOutOfMemory, "allocate chunk languages")
	}
	if len(out.Offsets) < n || len(out.Sizes) < n || len(out.Langs) < n {
		return out, perr.Internalf("allocator returned short arrays for %d chunks", n)
	}

	for i, c := range sum.Chunks {
		if out.Offsets[i], err = safecast.Conv[int32](c.Offset); err != nil {
			return out, perr.Wrapf(err, perr.ErrorCodeEngine, "chunk %d offset %d", i, c.Offset)
		}
		if out.Sizes[i], err = safecast.Conv[uint16](c.Bytes); err != nil {
			return out, perr.Wrapf(err, perr.ErrorCodeEngine, "chunk %d size %d", i, c.Bytes)
		}
		if out.Langs[i], err = safecast.Conv[uint16](int32(c.Lang1)); err != nil {
			return out, perr.Wrapf(err, perr.ErrorCodeEngine, "chunk %d language %d", i, c.Lang1)
		}
	}

	for i := range 3 {
		out.Language3[i] = int32(sum.Language3[i])
		if out.Percent3[i], err = safecast.Conv[int32](sum.Percent3[i]); err != nil {
			return out, perr.Wrapf(err, perr.ErrorCodeEngine, "percent3[%d] %d", i, sum.Percent3[i])
		}
		out.NormalizedScore3[i] = sum.NormalizedScore3[i]
	}
	if out.TextBytes, err = safecast.Conv[int32](sum.TextBytes); err != nil {
		return out, perr.Wrapf(err, perr.ErrorCodeEngine, "text bytes %d", sum.TextBytes)
	}
	out.Reliable = sum.Reliable
	out.Result = sum.Language

	committed = true
	return out, nil
}

// Score returns NormalizedScore3[i], or 0 when it is not a finite number
func (o *Outcome) Score(i int) float64 {
	if s := o.NormalizedScore3[i]; !math.IsNaN(s) && !math.IsInf(s, 0) {
		return s
	}
	return 0
}
