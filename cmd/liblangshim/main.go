// Command liblangshim builds the C shared library:
//
//	go build -buildmode=c-shared -o liblangshim.so ./cmd/liblangshim
//
// It exports langshim_detect, langshim_free and langshim_engine_name. The
// library never logs; the host process owns stderr.
package main

/*
#include <stddef.h>
#include <stdlib.h>
*/
import "C"

import (
	"sync"
	"unsafe"

	"langshim/internal/core/engine"
	"langshim/internal/core/guard"
	"langshim/internal/core/lang"
)

func gostr(p *C.char) *string {
	if p == nil {
		return nil
	}
	s := C.GoString(p)
	return &s
}

//export langshim_detect
func langshim_detect(
	result *C.int,
	buffer *C.char, bufferLength C.int,
	isPlainText C.int,
	contentLanguageHint *C.char,
	tldHint *C.char,
	encodingHint C.int, languageHint C.int,
	flags C.int,
	language3 *C.int, percent3 *C.int, normalizedScore3 *C.double,
	numChunks *C.size_t,
	chunkOffsets **C.int,
	chunkSizes **C.ushort,
	chunkLangs **C.ushort,
	textBytes *C.int, isReliable *C.int,
) C.int {
	c := call{
		plain:    isPlainText != 0,
		content:  gostr(contentLanguageHint),
		tld:      gostr(tldHint),
		encoding: lang.Encoding(encodingHint),
		language: lang.Language(languageHint),
		flags:    engine.Flags(flags),
		badLen:   bufferLength < 0 || (buffer == nil && bufferLength > 0),
		nilSlot: result == nil || language3 == nil || percent3 == nil || normalizedScore3 == nil ||
			numChunks == nil || chunkOffsets == nil || chunkSizes == nil || chunkLangs == nil ||
			textBytes == nil || isReliable == nil,
	}
	if !c.badLen && bufferLength > 0 {
		// borrowed for the call, the engine never keeps it
		c.buf = unsafe.Slice((*byte)(unsafe.Pointer(buffer)), int(bufferLength))
	}

	alloc := cAlloc{}
	out, st := run(alloc, c)
	if st != guard.StatusOK {
		return C.int(st)
	}

	*result = C.int(out.Result)
	l3 := unsafe.Slice(language3, 3)
	p3 := unsafe.Slice(percent3, 3)
	s3 := unsafe.Slice(normalizedScore3, 3)
	for i := range 3 {
		l3[i] = C.int(out.Language3[i])
		p3[i] = C.int(out.Percent3[i])
		s3[i] = C.double(out.NormalizedScore3[i])
	}
	*numChunks = C.size_t(out.NumChunks())
	*chunkOffsets = (*C.int)(base(out.Offsets))
	*chunkSizes = (*C.ushort)(base(out.Sizes))
	*chunkLangs = (*C.ushort)(base(out.Langs))
	*textBytes = C.int(out.TextBytes)
	*isReliable = 0
	if out.Reliable {
		*isReliable = 1
	}
	return C.int(guard.StatusOK)
}

//export langshim_free
func langshim_free(p unsafe.Pointer) { C.free(p) }

var engineCName = sync.OnceValue(func() *C.char { return C.CString(engineName()) })

//export langshim_engine_name
func langshim_engine_name() *C.char { return engineCName() }

func main() {}
