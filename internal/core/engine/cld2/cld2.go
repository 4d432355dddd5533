//go:build cld2

package cld2

/*
#cgo CXXFLAGS: -std=c++11
#cgo LDFLAGS: -lcld2 -lstdc++
#include <errno.h>
#include <stdlib.h>
#include "bridge.h"
*/
import "C"

import (
	"math"
	"unsafe"

	"langshim/internal/core/engine"
	"langshim/internal/core/lang"
	perr "langshim/internal/platform/errors"
)

func init() { engine.Register(New()) }

// Engine implements engine.Engine over libcld2. CLD2 keeps no per-call
// state and is safe for concurrent use
type Engine struct{}

// New returns the CLD2 engine
func New() *Engine { return &Engine{} }

// Name implements engine.Engine
func (*Engine) Name() string { return Name }

// cstr returns NULL for an absent hint
func cstr(s string) *C.char {
	if s == "" {
		return nil
	}
	return C.CString(s)
}

// Detect implements engine.Engine
func (*Engine) Detect(buf []byte, plainText bool, hints engine.Hints, flags engine.Flags) (engine.Summary, error) {
	if len(buf) > math.MaxInt32 {
		return engine.Summary{}, perr.InvalidArgf("buffer of %d bytes exceeds the engine limit", len(buf))
	}
	var p *C.char
	if len(buf) > 0 {
		p = (*C.char)(unsafe.Pointer(&buf[0]))
	}
	content, tld := cstr(hints.ContentLanguage), cstr(hints.TLD)
	defer C.free(unsafe.Pointer(content))
	defer C.free(unsafe.Pointer(tld))

	plain := C.int(0)
	if plainText {
		plain = 1
	}

	var out C.langshim_summary
	rc := C.langshim_cld2_detect(p, C.int(len(buf)), plain, content, tld,
		C.int(hints.Encoding), C.int(hints.Language), C.int(flags), &out)
	switch rc {
	case 0:
	case C.ENOMEM:
		return engine.Summary{}, perr.OutOfMemoryf("cld2: bad_alloc")
	default:
		return engine.Summary{}, perr.Enginef("cld2: exception (rc=%d)", int(rc))
	}
	defer C.free(unsafe.Pointer(out.chunks))

	sum := engine.Summary{
		Language:  lang.Language(out.result),
		TextBytes: int(out.text_bytes),
		Reliable:  out.is_reliable != 0,
	}
	for i := range 3 {
		sum.Language3[i] = lang.Language(out.language3[i])
		sum.Percent3[i] = int(out.percent3[i])
		sum.NormalizedScore3[i] = float64(out.normalized_score3[i])
	}
	n := int(out.num_chunks)
	if n > 0 {
		raw := unsafe.Slice(out.chunks, n)
		sum.Chunks = make([]engine.ResultChunk, n)
		for i, c := range raw {
			sum.Chunks[i] = engine.ResultChunk{Offset: int(c.offset), Bytes: int(c.bytes), Lang1: lang.Language(c.lang1)}
		}
	}
	return sum, nil
}
