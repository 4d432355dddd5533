package main

import (
	"testing"

	"langshim/internal/core/engine"
	"langshim/internal/core/guard"
	"langshim/internal/core/lang"
	"langshim/internal/core/marshal"
	kit "langshim/internal/platform/testkit"
)

func withEngine(t *testing.T, e engine.Engine) {
	t.Helper()
	kit.Serial(t)
	kit.Swap(t, &activeEngine, func() (engine.Engine, error) { return e, nil })
}

func TestRun_PassesHintsThrough(t *testing.T) {
	var seen engine.Hints
	withEngine(t, engine.Func{ID: "spy", Fn: func(b []byte, plain bool, h engine.Hints, f engine.Flags) (engine.Summary, error) {
		seen = h
		return engine.Summary{Chunks: []engine.ResultChunk{{Offset: 0, Bytes: len(b), Lang1: lang.English}}}, nil
	}})

	tld := "fr"
	out, st := run(marshal.HeapAllocator{}, call{
		buf:      []byte("bonjour"),
		tld:      &tld,
		encoding: lang.UnknownEncoding,
		language: lang.English,
	})
	if st != guard.StatusOK || out.NumChunks() != 1 || out.Sizes[0] != 7 {
		t.Fatalf("st=%v out=%+v", st, out)
	}
	if seen.Language != lang.English || seen.TLD != "fr" || seen.ContentLanguage != "" || seen.Encoding != lang.UnknownEncoding {
		t.Fatalf("hints = %+v", seen)
	}
}

func TestRun_InvalidCallsFail(t *testing.T) {
	called := false
	withEngine(t, engine.Func{ID: "never", Fn: func([]byte, bool, engine.Hints, engine.Flags) (engine.Summary, error) {
		called = true
		return engine.Summary{}, nil
	}})
	for _, c := range []call{{badLen: true}, {nilSlot: true}} {
		if _, st := run(marshal.HeapAllocator{}, c); st != guard.StatusFailure {
			t.Fatalf("%+v: status = %v", c, st)
		}
	}
	if called {
		t.Fatalf("engine ran for an invalid call")
	}
}

func TestRun_OutOfMemory(t *testing.T) {
	withEngine(t, engine.Func{ID: "big", Fn: func([]byte, bool, engine.Hints, engine.Flags) (engine.Summary, error) {
		return engine.Summary{Chunks: make([]engine.ResultChunk, 4)}, nil
	}})
	if _, st := run(marshal.HeapAllocator{Limit: 2}, call{}); st != guard.StatusNoMemory {
		t.Fatalf("status = %v", st)
	}
}

func TestRun_DefaultEngine(t *testing.T) {
	out, st := run(marshal.HeapAllocator{}, call{
		buf:      []byte("The cat sat on the mat and it was happy with the sun."),
		plain:    true,
		encoding: lang.UnknownEncoding,
		language: lang.UnknownLanguage,
	})
	if st != guard.StatusOK || out.NumChunks() == 0 {
		t.Fatalf("st=%v chunks=%d", st, out.NumChunks())
	}
	if engineName() == "" {
		t.Fatalf("an engine should be registered")
	}
}

func TestCAlloc_ZeroLengthNonNil(t *testing.T) {
	var a cAlloc
	s, err := a.Int32s(0)
	if err != nil || s == nil || base(s) == nil {
		t.Fatalf("Int32s(0) = %v, %v", s, err)
	}
	a.FreeInt32s(s)

	u, err := a.Uint16s(3)
	if err != nil || len(u) != 3 || u[0] != 0 || u[2] != 0 {
		t.Fatalf("Uint16s(3) = %v, %v", u, err)
	}
	u[2] = 9
	a.FreeUint16s(u)

	if _, err := a.Int32s(-1); err == nil {
		t.Fatalf("negative length should fail")
	}
}

func TestCAlloc_WithMarshal(t *testing.T) {
	withEngine(t, engine.Func{ID: "empty", Fn: func([]byte, bool, engine.Hints, engine.Flags) (engine.Summary, error) {
		return engine.Summary{}, nil
	}})
	a := cAlloc{}
	out, st := run(a, call{})
	if st != guard.StatusOK || out.NumChunks() != 0 {
		t.Fatalf("st=%v n=%d", st, out.NumChunks())
	}
	if base(out.Offsets) == nil || base(out.Sizes) == nil || base(out.Langs) == nil {
		t.Fatalf("zero chunks must still yield non-NULL arrays")
	}
	out.Release(a)
}
