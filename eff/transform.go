package eff

import (
	"github.com/gimlism/language-ext/eff/result"
)

// Transformation combinators live at package level because Go methods
// cannot introduce new type parameters. Like the recovery algebra they
// evaluate the wrapped effect on the non-memoizing path; the composed
// effect memoizes as a whole when run through Run.

// Map transforms the success value of an effect, passing failures
// through unchanged.
func Map[RT Runtime[RT], A, B any](e Eff[RT, A], f func(A) B) Eff[RT, B] {
	return FromResult(func(rt RT) Result[B] {
		a, err := e.ReRun(rt).Get()
		if err != nil {
			return result.Fail[B](err)
		}
		return result.Succeed(f(a))
	})
}

// Bind sequences an effect into the effect its success value produces.
// The produced effect runs against the same runtime.
func Bind[RT Runtime[RT], A, B any](e Eff[RT, A], f func(A) Eff[RT, B]) Eff[RT, B] {
	return FromResult(func(rt RT) Result[B] {
		a, err := e.ReRun(rt).Get()
		if err != nil {
			return result.Fail[B](err)
		}
		return f(a).ReRun(rt)
	})
}

// Then sequences two effects, discarding the first one's success value.
// A failure of the first short-circuits.
func Then[RT Runtime[RT], A, B any](e Eff[RT, A], next Eff[RT, B]) Eff[RT, B] {
	return Bind(e, func(A) Eff[RT, B] { return next })
}

// MapErr transforms the error of a failed effect, passing successes
// through unchanged.
func (e Eff[RT, A]) MapErr(f func(error) error) Eff[RT, A] {
	return FromResult(func(rt RT) Result[A] {
		res := e.ReRun(rt)
		if res.IsSucc() {
			return res
		}
		return result.Fail[A](f(res.Err()))
	})
}
