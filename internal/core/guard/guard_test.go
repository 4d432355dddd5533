package guard

import (
	"errors"
	"fmt"
	"syscall"
	"testing"

	"langshim/internal/core/engine"
	"langshim/internal/core/lang"
	"langshim/internal/core/marshal"
	perr "langshim/internal/platform/errors"
)

func TestProtect_Translation(t *testing.T) {
	cases := []struct {
		name string
		fn   func() (int, error)
		want Status
	}{
		{"ok", func() (int, error) { return 7, nil }, StatusOK},
		{"oom error", func() (int, error) { return 7, perr.OutOfMemoryf("calloc") }, StatusNoMemory},
		{"wrapped oom", func() (int, error) {
			return 7, fmt.Errorf("outer: %w", perr.Wrap(perr.OutOfMemoryf("x"), perr.ErrorCodeEngine, "cld2"))
		}, StatusNoMemory},
		{"plain error", func() (int, error) { return 7, errors.New("nope") }, StatusFailure},
		{"engine error", func() (int, error) { return 7, perr.Enginef("bridge threw") }, StatusFailure},
		{"string panic", func() (int, error) { panic("boom") }, StatusFailure},
		// a panic carrying an out-of-memory error is still out of memory
		{"oom panic", func() (int, error) { panic(perr.OutOfMemoryf("bad_alloc")) }, StatusNoMemory},
		{"runtime panic", func() (int, error) {
			var m map[string]int
			m["x"] = 1
			return 0, nil
		}, StatusFailure},
		{"nil deref", func() (int, error) {
			var p *int
			return *p, nil
		}, StatusFailure},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			v, st := Protect(c.fn)
			if st != c.want {
				t.Fatalf("status = %v, want %v", st, c.want)
			}
			if st == StatusOK && v != 7 {
				t.Fatalf("value = %d", v)
			}
			if st != StatusOK && v != 0 {
				t.Fatalf("failed call leaked value %d", v)
			}
		})
	}
}

func TestStatusValues(t *testing.T) {
	if StatusOK != 0 || StatusFailure != -1 || int(StatusNoMemory) != int(syscall.ENOMEM) {
		t.Fatalf("status constants changed")
	}
	if !StatusNoMemory.Retryable() || StatusFailure.Retryable() || StatusOK.Retryable() {
		t.Fatalf("only no-memory is retryable")
	}
	if StatusOK.State() != Succeeded || StatusNoMemory.State() != OutOfMemory || StatusFailure.State() != Failed {
		t.Fatalf("State mapping mismatch")
	}
	if Status(3).State() != Failed || Status(3).String() != "status(3)" {
		t.Fatalf("unknown status handling")
	}
	if Idle.String() != "idle" || OutOfMemory.String() != "out_of_memory" || State(9).String() != "state(9)" {
		t.Fatalf("State names mismatch")
	}
}

type countAlloc struct {
	failAt, calls, live int
}

func (a *countAlloc) Int32s(n int) ([]int32, error) {
	if a.calls++; a.calls == a.failAt {
		return nil, errors.New("no memory")
	}
	a.live++
	return make([]int32, n), nil
}

func (a *countAlloc) Uint16s(n int) ([]uint16, error) {
	if a.calls++; a.calls == a.failAt {
		return nil, errors.New("no memory")
	}
	a.live++
	return make([]uint16, n), nil
}

func (a *countAlloc) FreeInt32s([]int32)   { a.live-- }
func (a *countAlloc) FreeUint16s([]uint16) { a.live-- }

func summaryEngine(chunks int) engine.Engine {
	return engine.Func{ID: "fake", Fn: func([]byte, bool, engine.Hints, engine.Flags) (engine.Summary, error) {
		s := engine.Summary{
			Language:  lang.German,
			Language3: [3]lang.Language{lang.German, lang.UnknownLanguage, lang.UnknownLanguage},
			Percent3:  [3]int{100, 0, 0},
			TextBytes: 10 * chunks,
			Reliable:  true,
		}
		for i := range chunks {
			s.Chunks = append(s.Chunks, engine.ResultChunk{Offset: 10 * i, Bytes: 10, Lang1: lang.German})
		}
		return s, nil
	}}
}

func TestDetect_Success(t *testing.T) {
	a := &countAlloc{}
	out, st := Detect(summaryEngine(3), a, marshal.Request{})
	if st != StatusOK || out.NumChunks() != 3 || out.Result != lang.German || !out.Reliable {
		t.Fatalf("st=%v out=%+v", st, out)
	}
	if a.live != 3 {
		t.Fatalf("caller should own 3 arrays, live=%d", a.live)
	}
}

func TestDetect_OOMOnEachAllocation(t *testing.T) {
	for failAt := 1; failAt <= 3; failAt++ {
		a := &countAlloc{failAt: failAt}
		out, st := Detect(summaryEngine(2), a, marshal.Request{})
		if st != StatusNoMemory {
			t.Fatalf("failAt=%d status=%v", failAt, st)
		}
		if a.live != 0 || out.Offsets != nil {
			t.Fatalf("failAt=%d leaked live=%d", failAt, a.live)
		}
	}
}

func TestDetect_EnginePanicIsFailure(t *testing.T) {
	eng := engine.Func{ID: "panics", Fn: func([]byte, bool, engine.Hints, engine.Flags) (engine.Summary, error) {
		panic("engine crashed")
	}}
	a := &countAlloc{}
	if _, st := Detect(eng, a, marshal.Request{}); st != StatusFailure {
		t.Fatalf("status = %v", st)
	}
	if a.calls != 0 {
		t.Fatalf("allocations happened after an engine panic")
	}
}

func TestRun_KeepsError(t *testing.T) {
	eng := engine.Func{ID: "panics", Fn: func([]byte, bool, engine.Hints, engine.Flags) (engine.Summary, error) {
		panic("engine crashed")
	}}
	_, err := Run(eng, &countAlloc{}, marshal.Request{})
	if !perr.IsCode(err, perr.ErrorCodePanic) || StatusOf(err) != StatusFailure {
		t.Fatalf("err = %v", err)
	}
	out, err := Run(summaryEngine(1), &countAlloc{}, marshal.Request{})
	if err != nil || StatusOf(err) != StatusOK || out.NumChunks() != 1 {
		t.Fatalf("Run ok path: %v", err)
	}
}

func TestStatusOf(t *testing.T) {
	if StatusOf(nil) != StatusOK {
		t.Fatalf("nil should be ok")
	}
	if StatusOf(perr.Unavailablef("x")) != StatusFailure {
		t.Fatalf("unavailable is not an allocation failure")
	}
}
