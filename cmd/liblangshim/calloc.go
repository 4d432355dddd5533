package main

/*
#include <stdlib.h>
*/
import "C"

import (
	"unsafe"

	perr "langshim/internal/platform/errors"
)

// cAlloc hands out arrays from the C heap so the caller can release them
// with langshim_free. Every array has room for at least one element, so a
// zero-length result is never a NULL pointer
type cAlloc struct{}

func callocN(n int, size uintptr) (unsafe.Pointer, error) {
	if n < 0 {
		return nil, perr.InvalidArgf("negative array length %d", n)
	}
	p := C.calloc(C.size_t(max(n, 1)), C.size_t(size))
	if p == nil {
		return nil, perr.OutOfMemoryf("calloc(%d, %d) failed", n, size)
	}
	return p, nil
}

func (cAlloc) Int32s(n int) ([]int32, error) {
	p, err := callocN(n, unsafe.Sizeof(int32(0)))
	if err != nil {
		return nil, err
	}
	return unsafe.Slice((*int32)(p), max(n, 1))[:n], nil
}

func (cAlloc) Uint16s(n int) ([]uint16, error) {
	p, err := callocN(n, unsafe.Sizeof(uint16(0)))
	if err != nil {
		return nil, err
	}
	return unsafe.Slice((*uint16)(p), max(n, 1))[:n], nil
}

func (cAlloc) FreeInt32s(s []int32) { C.free(base(s)) }

func (cAlloc) FreeUint16s(s []uint16) { C.free(base(s)) }

// base returns the start of the C block behind s; cap is always at least 1
func base[T any](s []T) unsafe.Pointer {
	if cap(s) == 0 {
		return nil
	}
	return unsafe.Pointer(unsafe.SliceData(s[:1]))
}
