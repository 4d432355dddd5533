// Package guard is the failure boundary in front of the marshaler. Nothing
// raised below it, error or panic, escapes as anything other than a Status
package guard

import (
	"fmt"
	"syscall"

	"langshim/internal/core/engine"
	"langshim/internal/core/marshal"
	perr "langshim/internal/platform/errors"
)

// Status is the closed result set reported across the boundary
type Status int

const (
	// StatusOK means the outcome is valid and owned by the caller
	StatusOK Status = 0
	// StatusNoMemory means an allocation failed; the caller may retry
	StatusNoMemory Status = Status(syscall.ENOMEM)
	// StatusFailure covers everything else
	StatusFailure Status = -1
)

func (s Status) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusNoMemory:
		return "no memory"
	case StatusFailure:
		return "failure"
	}
	return fmt.Sprintf("status(%d)", int(s))
}

// Retryable reports whether a fresh call may succeed
func (s Status) Retryable() bool { return s == StatusNoMemory }

// State is where one guarded call stands
type State uint8

const (
	Idle State = iota
	Running
	Succeeded
	OutOfMemory
	Failed
)

var stateNames = [...]string{"idle", "running", "succeeded", "out_of_memory", "failed"}

func (s State) String() string {
	if int(s) < len(stateNames) {
		return stateNames[s]
	}
	return fmt.Sprintf("state(%d)", s)
}

// State returns the terminal state a call reporting s ended in
func (s Status) State() State {
	switch s {
	case StatusOK:
		return Succeeded
	case StatusNoMemory:
		return OutOfMemory
	}
	return Failed
}

// StatusOf maps an error to its Status. nil is StatusOK
func StatusOf(err error) Status {
	switch {
	case err == nil:
		return StatusOK
	case perr.HasCode(err, perr.ErrorCodeOutOfMemory):
		return StatusNoMemory
	}
	return StatusFailure
}

// Protect runs fn and converts its error or panic into a Status. The value
// is returned only with StatusOK; any other status comes with the zero value
func Protect[T any](fn func() (T, error)) (val T, st Status) {
	defer func() {
		if r := recover(); r != nil {
			var zero T
			val, st = zero, StatusOf(panicErr(r))
		}
	}()
	v, err := fn()
	if st = StatusOf(err); st != StatusOK {
		var zero T
		return zero, st
	}
	return v, StatusOK
}

// panicErr keeps error panics (and their codes) and wraps anything else
func panicErr(r any) error {
	if err, ok := r.(error); ok {
		return err
	}
	return perr.PanicErrf("panic: %v", r)
}

// Detect runs one guarded detection
func Detect(eng engine.Engine, alloc marshal.Allocator, req marshal.Request) (marshal.Outcome, Status) {
	return Protect(func() (marshal.Outcome, error) {
		return marshal.Marshal(eng, alloc, req)
	})
}

// Run is Detect with the error kept for callers that log it. The status is
// always StatusOf(err)
func Run(eng engine.Engine, alloc marshal.Allocator, req marshal.Request) (out marshal.Outcome, err error) {
	defer func() {
		if r := recover(); r != nil {
			out, err = marshal.Outcome{}, panicErr(r)
		}
	}()
	return marshal.Marshal(eng, alloc, req)
}
