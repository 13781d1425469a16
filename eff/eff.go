package eff

import (
	"github.com/gimlism/language-ext/eff/internal/thunk"
	"github.com/gimlism/language-ext/eff/result"
)

// Result re-exports the result type so effect signatures read without a
// second import at most call sites.
type Result[A any] = result.Result[A]

// Unit is the value of effects run for their side effects only.
type Unit struct{}

// Eff is an asynchronous effect value: a deferred, possibly
// side-effecting computation from a runtime RT to a Result[A]. Nothing
// happens until a run method is called; a constructed Eff is safe to
// store, pass around, and run any number of times.
//
// The zero value carries no computation and fails with ErrBottom on
// every run path. All other values are produced by the constructors
// and combinators in this package.
type Eff[RT Runtime[RT], A any] struct {
	t *thunk.Thunk[RT, A]
}

// Succeed returns an effect that immediately succeeds with value.
func Succeed[RT Runtime[RT], A any](value A) Eff[RT, A] {
	return FromResult(func(RT) Result[A] { return result.Succeed(value) })
}

// Fail returns an effect that immediately fails with err.
func Fail[RT Runtime[RT], A any](err error) Eff[RT, A] {
	return FromResult(func(RT) Result[A] { return result.Fail[A](err) })
}

// Effect wraps a fallible function as an effect.
func Effect[RT Runtime[RT], A any](fn func(RT) (A, error)) Eff[RT, A] {
	return FromResult(func(rt RT) Result[A] {
		a, err := fn(rt)
		if err != nil {
			return result.Fail[A](err)
		}
		return result.Succeed(a)
	})
}

// Total wraps a function that always succeeds as an effect.
func Total[RT Runtime[RT], A any](fn func(RT) A) Eff[RT, A] {
	return FromResult(func(rt RT) Result[A] { return result.Succeed(fn(rt)) })
}

// FromResult wraps a result-returning function as an effect. This is
// the primitive constructor the others reduce to.
func FromResult[RT Runtime[RT], A any](fn func(RT) Result[A]) Eff[RT, A] {
	return Eff[RT, A]{t: thunk.New(fn)}
}

// Run executes the effect, memoizing the first completed outcome:
// running an already-completed effect returns the cached result without
// re-invoking the computation. Failures memoize the same as successes.
func (e Eff[RT, A]) Run(rt RT) Result[A] {
	if e.t == nil {
		return result.Fail[A](ErrBottom)
	}
	return e.t.Value(rt)
}

// ReRun executes the effect fresh, ignoring and leaving untouched any
// memoized outcome. Combinators use this path so that recovery and
// retry are never blocked by a previously cached failure.
func (e Eff[RT, A]) ReRun(rt RT) Result[A] {
	if e.t == nil {
		return result.Fail[A](ErrBottom)
	}
	return e.t.ReValue(rt)
}

// MustRun executes the effect and discards the value on success,
// panicking with the carried error on failure. It is the one deliberate
// breach of the result discipline, for call sites that want
// throw-on-error semantics.
func (e Eff[RT, A]) MustRun(rt RT) {
	if err := e.Run(rt).Err(); err != nil {
		panic(err)
	}
}

// Clone returns a fresh, not-yet-executed copy of the effect over the
// same computation. The clone memoizes independently of the original:
// cloning an already-run effect is how callers obtain a re-runnable
// handle without disturbing the original's cached result.
func (e Eff[RT, A]) Clone() Eff[RT, A] {
	if e.t == nil {
		return e
	}
	return Eff[RT, A]{t: e.t.Clone()}
}
