package result

import (
	"errors"
	"fmt"
)

// ErrNilFailure is substituted when Fail is called with a nil error,
// so that a Result is never a failure without a cause.
var ErrNilFailure = errors.New("result: failure constructed with nil error")

// Result is the outcome of running an effect: a success carrying a value
// of type A, or a failure carrying a non-nil error. Exactly one of the
// two cases is ever populated, and a Result is immutable once produced.
//
// Failures are ordinary values. They propagate through combinator logic,
// never by panicking; see Capture for the one boundary where panics are
// converted into failures.
type Result[A any] struct {
	value A
	err   error
}

// Succeed wraps a value as a successful Result.
func Succeed[A any](value A) Result[A] {
	return Result[A]{value: value}
}

// Fail wraps an error as a failed Result. A nil error is replaced with
// ErrNilFailure.
func Fail[A any](err error) Result[A] {
	if err == nil {
		err = ErrNilFailure
	}
	return Result[A]{err: err}
}

// IsSucc reports whether the Result is a success.
func (r Result[A]) IsSucc() bool { return r.err == nil }

// IsFail reports whether the Result is a failure.
func (r Result[A]) IsFail() bool { return r.err != nil }

// Get returns the carried value and error in the usual Go shape.
func (r Result[A]) Get() (A, error) { return r.value, r.err }

// Err returns the carried error, nil on success.
func (r Result[A]) Err() error { return r.err }

// MustGet returns the carried value, panicking with the carried error
// on failure. This is the throw-on-error escape hatch; prefer Get.
func (r Result[A]) MustGet() A {
	if r.err != nil {
		panic(r.err)
	}
	return r.value
}

// PanicError is the failure produced when a wrapped function panics
// instead of returning. The recovered value is preserved in Val.
type PanicError struct {
	Val any
}

func (p *PanicError) Error() string {
	if err, ok := p.Val.(error); ok {
		return fmt.Sprintf("result: captured panic: %v", err)
	}
	return fmt.Sprintf("result: captured panic: %+v", p.Val)
}

// Unwrap exposes a panicked error value to errors.Is / errors.As.
func (p *PanicError) Unwrap() error {
	if err, ok := p.Val.(error); ok {
		return err
	}
	return nil
}

// Capture invokes fn and converts a panic into Fail(&PanicError{...}).
// This is the single point where uncontrolled faults cross back into
// the result-typed world; everything above it deals in plain values.
func Capture[A any](fn func() Result[A]) (res Result[A]) {
	defer func() {
		if r := recover(); r != nil {
			res = Fail[A](&PanicError{Val: r})
		}
	}()
	return fn()
}
