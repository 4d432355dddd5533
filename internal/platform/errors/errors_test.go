package errors

import (
	stderrs "errors"
	"fmt"
	"net/http"
	"testing"
)

func TestHTTPStatusCodeMapping(t *testing.T) {
	cases := []struct {
		code ErrorCode
		want int
	}{
		{ErrorCodeNotFound, http.StatusNotFound},
		{ErrorCodeInvalidArgument, http.StatusUnprocessableEntity},
		{ErrorCodeValidation, http.StatusBadRequest},
		{ErrorCodeJSON, http.StatusBadRequest},
		{ErrorCodeOutOfMemory, http.StatusServiceUnavailable},
		{ErrorCodeUnavailable, http.StatusServiceUnavailable},
		{ErrorCodeEngine, http.StatusInternalServerError},
		{ErrorCodePanic, http.StatusInternalServerError},
		{ErrorCodeUnknown, http.StatusInternalServerError},
		{9999, http.StatusInternalServerError}, // default branch
	}
	for _, c := range cases {
		if got := HTTPStatusCode(c.code); got != c.want {
			t.Fatalf("HTTPStatusCode(%v) = %d, want %d", c.code, got, c.want)
		}
	}
}

func TestErrorCodeString(t *testing.T) {
	if ErrorCodeOutOfMemory.String() != "out_of_memory" {
		t.Fatalf("OutOfMemory name = %q", ErrorCodeOutOfMemory.String())
	}
	if ErrorCode(4242).String() != "unknown" {
		t.Fatalf("unknown code should render as unknown")
	}
}

func TestErrorTypeAndMethods(t *testing.T) {
	// nil *Error should render "<nil>"
	var e *Error
	if e.Error() != "<nil>" {
		t.Fatalf("nil *Error render = %q, want <nil>", e.Error())
	}

	e1 := New(ErrorCodeValidation, "bad stuff")
	if CodeOf(e1) != ErrorCodeValidation {
		t.Fatalf("CodeOf(New) = %v", CodeOf(e1))
	}
	e2 := Newf(ErrorCodeJSON, "bad json %d", 12)
	if got := e2.Error(); got != "bad json 12" {
		t.Fatalf("Newf().Error = %q", got)
	}

	src := stderrs.New("root")
	e3 := Wrap(src, ErrorCodeEngine, "engine failed")
	if u := stderrs.Unwrap(e3); u == nil || u.Error() != "root" {
		t.Fatalf("Wrap did not keep orig")
	}
	e4 := Wrapf(src, ErrorCodeOutOfMemory, "alloc %s", "offsets")
	if want := "alloc offsets: root"; e4.Error() != want {
		t.Fatalf("Wrapf().Error = %q, want %q", e4.Error(), want)
	}

	if got, ok := As(e4); !ok || got.Code() != ErrorCodeOutOfMemory {
		t.Fatalf("As() failed for our error")
	}
	if _, ok := As(src); ok {
		t.Fatalf("As() true for foreign error")
	}

	e5 := WithOp(e3, "marshal")
	if oe, ok := As(e5); !ok || oe.Op() != "marshal" {
		t.Fatalf("WithOp failed")
	}
	if e0, _ := As(e3); e0.Op() != "" {
		t.Fatalf("copy-on-write mutated original")
	}
	if WithOp(src, "x") != src {
		t.Fatalf("WithOp should leave foreign errors alone")
	}

	if wf := WireFrom(nil); wf != (Wire{}) {
		t.Fatalf("WireFrom(nil) expected zero, got %+v", wf)
	}
	if wf := WireFrom(src); wf.Code != ErrorCodeUnknown || wf.Message != "root" {
		t.Fatalf("WireFrom(foreign) mismatch: %+v", wf)
	}
	// WireFrom for our error uses only e.msg (not "msg: orig")
	if wf := WireFrom(e4); wf.Code != ErrorCodeOutOfMemory || wf.Message != "alloc offsets" {
		t.Fatalf("WireFrom(ours) mismatch: %+v", wf)
	}

	if st, _ := HTTP(nil); st != http.StatusOK {
		t.Fatalf("HTTP(nil) status = %d", st)
	}
	if st := HTTPStatus(e3); st != http.StatusInternalServerError {
		t.Fatalf("HTTPStatus mismatch")
	}

	if !IsCode(NotFoundf("x"), ErrorCodeNotFound) ||
		!IsCode(InvalidArgf("x"), ErrorCodeInvalidArgument) ||
		!IsCode(JSONErrf("x"), ErrorCodeJSON) ||
		!IsCode(PanicErrf("x"), ErrorCodePanic) ||
		!IsCode(OutOfMemoryf("x"), ErrorCodeOutOfMemory) ||
		!IsCode(Enginef("x"), ErrorCodeEngine) ||
		!IsCode(Unavailablef("x"), ErrorCodeUnavailable) ||
		!IsCode(Internalf("x"), ErrorCodeUnknown) {
		t.Fatalf("sugar helpers code mismatch")
	}

	if WrapIf(nil, ErrorCodeEngine, "ignored") != nil {
		t.Fatalf("WrapIf(nil) should return nil")
	}
	if WrapIf(src, ErrorCodeEngine, "engine") == nil {
		t.Fatalf("WrapIf(non-nil) should wrap")
	}

	deep := fmt.Errorf("level2: %w", fmt.Errorf("level1: %w", src))
	if got := Root(deep); got == nil || got.Error() != "root" {
		t.Fatalf("Root() failed, got %v", got)
	}

	if !IsCode(ErrNotFound, ErrorCodeNotFound) {
		t.Fatalf("ErrNotFound code mismatch")
	}
}

func TestHasCodeAndRetryable(t *testing.T) {
	oom := OutOfMemoryf("calloc failed")
	outer := Wrap(oom, ErrorCodeEngine, "detect")

	// outermost code is Engine but the chain still carries OOM
	if CodeOf(outer) != ErrorCodeEngine {
		t.Fatalf("CodeOf(outer) = %v", CodeOf(outer))
	}
	if !HasCode(outer, ErrorCodeOutOfMemory) {
		t.Fatalf("HasCode should find OOM deeper in the chain")
	}
	if HasCode(stderrs.New("plain"), ErrorCodeOutOfMemory) {
		t.Fatalf("HasCode true for foreign error")
	}

	if !Retryable(outer) || !Retryable(Unavailablef("busy")) {
		t.Fatalf("OOM and unavailable should be retryable")
	}
	if Retryable(Enginef("bad input")) || Retryable(nil) {
		t.Fatalf("engine errors and nil are not retryable")
	}
}
