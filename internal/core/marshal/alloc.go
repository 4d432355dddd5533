package marshal

import (
	perr "langshim/internal/platform/errors"
)

// Allocator hands out the three output arrays of a detection. Arrays it
// returns are owned by the caller of Marshal on success and must be given
// back through the matching Free method otherwise
type Allocator interface {
	Int32s(n int) ([]int32, error)
	Uint16s(n int) ([]uint16, error)
	FreeInt32s(s []int32)
	FreeUint16s(s []uint16)
}

// HeapAllocator allocates on the Go heap. Limit caps the element count of a
// single array; 0 means no cap. Exceeding it reports out of memory
type HeapAllocator struct {
	Limit int
}

func (h HeapAllocator) check(n int) error {
	if n < 0 {
		return perr.InvalidArgf("negative array length %d", n)
	}
	if h.Limit > 0 && n > h.Limit {
		return perr.OutOfMemoryf("array of %d elements exceeds limit %d", n, h.Limit)
	}
	return nil
}

// Int32s implements Allocator
func (h HeapAllocator) Int32s(n int) ([]int32, error) {
	if err := h.check(n); err != nil {
		return nil, err
	}
	return make([]int32, n), nil
}

// Uint16s implements Allocator
func (h HeapAllocator) Uint16s(n int) ([]uint16, error) {
	if err := h.check(n); err != nil {
		return nil, err
	}
	return make([]uint16, n), nil
}

// FreeInt32s is a no-op; the collector owns heap arrays
func (HeapAllocator) FreeInt32s([]int32) {}

// FreeUint16s is a no-op
func (HeapAllocator) FreeUint16s([]uint16) {}
