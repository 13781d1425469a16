package eff

import (
	"github.com/gimlism/language-ext/eff/internal/thunk"
	"github.com/gimlism/language-ext/eff/result"
)

// IO is an environment-free asynchronous effect: the same deferred,
// memoizing computation cell as Eff, for computations that need no
// runtime. Lift with LiftIO to use one where an Eff is expected.
//
// The zero value fails with ErrBottom on every run path.
type IO[A any] struct {
	t *thunk.Thunk[Unit, A]
}

// SucceedIO returns an environment-free effect that immediately
// succeeds with value.
func SucceedIO[A any](value A) IO[A] {
	return IO[A]{t: thunk.New(func(Unit) Result[A] { return result.Succeed(value) })}
}

// FailIO returns an environment-free effect that immediately fails
// with err.
func FailIO[A any](err error) IO[A] {
	return IO[A]{t: thunk.New(func(Unit) Result[A] { return result.Fail[A](err) })}
}

// EffectIO wraps a fallible function as an environment-free effect.
func EffectIO[A any](fn func() (A, error)) IO[A] {
	return IO[A]{t: thunk.New(func(Unit) Result[A] {
		a, err := fn()
		if err != nil {
			return result.Fail[A](err)
		}
		return result.Succeed(a)
	})}
}

// TotalIO wraps a function that always succeeds as an environment-free
// effect.
func TotalIO[A any](fn func() A) IO[A] {
	return IO[A]{t: thunk.New(func(Unit) Result[A] { return result.Succeed(fn()) })}
}

// Run executes the effect, memoizing the first completed outcome.
func (io IO[A]) Run() Result[A] {
	if io.t == nil {
		return result.Fail[A](ErrBottom)
	}
	return io.t.Value(Unit{})
}

// ReRun executes the effect fresh, leaving the memo untouched.
func (io IO[A]) ReRun() Result[A] {
	if io.t == nil {
		return result.Fail[A](ErrBottom)
	}
	return io.t.ReValue(Unit{})
}

// Clone returns a fresh, not-yet-executed copy memoizing independently
// of the original.
func (io IO[A]) Clone() IO[A] {
	if io.t == nil {
		return io
	}
	return IO[A]{t: io.t.Clone()}
}
