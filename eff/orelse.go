package eff

import (
	"github.com/gimlism/language-ext/eff/result"
)

// Recovery is the right-hand side of OrElse: a closed set of recovery
// shapes dispatched by type. Values are built with Fallback,
// FallbackIO, Catch, CatchValue, and CatchError; the interface cannot
// be implemented outside this package.
type Recovery[RT Runtime[RT], A any] interface {
	// recoverFrom receives the left side's failed result and either
	// replaces it or returns it unchanged.
	recoverFrom(rt RT, failed Result[A]) Result[A]
}

// OrElse is the sole recovery and fallback mechanism: run the effect
// fresh; on success return that result without constructing or
// consulting the right-hand side; on failure hand the failure to the
// recovery. Evaluation is strictly left to right.
//
// The left side runs on the non-memoizing path, so OrElse composes
// safely over effects that have already run and memoized a failure.
func (e Eff[RT, A]) OrElse(r Recovery[RT, A]) Eff[RT, A] {
	return FromResult(func(rt RT) Result[A] {
		res := e.ReRun(rt)
		if res.IsSucc() {
			return res
		}
		return r.recoverFrom(rt, res)
	})
}

// Fallback recovers from any failure by running alt against the same
// runtime and returning its result, success or failure.
func Fallback[RT Runtime[RT], A any](alt Eff[RT, A]) Recovery[RT, A] {
	return fallback[RT, A]{alt: alt}
}

type fallback[RT Runtime[RT], A any] struct {
	alt Eff[RT, A]
}

func (f fallback[RT, A]) recoverFrom(rt RT, _ Result[A]) Result[A] {
	return f.alt.ReRun(rt)
}

// FallbackIO recovers from any failure by running an environment-free
// alternative.
func FallbackIO[RT Runtime[RT], A any](alt IO[A]) Recovery[RT, A] {
	return fallbackIO[RT, A]{alt: alt}
}

type fallbackIO[RT Runtime[RT], A any] struct {
	alt IO[A]
}

func (f fallbackIO[RT, A]) recoverFrom(_ RT, _ Result[A]) Result[A] {
	return f.alt.ReRun()
}

// Catch recovers from failures matching the predicate by running the
// effect the handler produces for the error. A non-matching failure
// propagates unchanged, carrying the original error value. A nil match
// predicate matches every error.
func Catch[RT Runtime[RT], A any](match func(error) bool, handler func(error) Eff[RT, A]) Recovery[RT, A] {
	return catchEffect[RT, A]{match: match, handler: handler}
}

type catchEffect[RT Runtime[RT], A any] struct {
	match   func(error) bool
	handler func(error) Eff[RT, A]
}

func (c catchEffect[RT, A]) recoverFrom(rt RT, failed Result[A]) Result[A] {
	err := failed.Err()
	if c.match != nil && !c.match(err) {
		return failed
	}
	return c.handler(err).ReRun(rt)
}

// CatchValue recovers from failures matching the predicate by replacing
// the outcome with Succeed(replacement). A nil match predicate matches
// every error.
func CatchValue[RT Runtime[RT], A any](match func(error) bool, replacement A) Recovery[RT, A] {
	return catchValue[RT, A]{match: match, replacement: replacement}
}

type catchValue[RT Runtime[RT], A any] struct {
	match       func(error) bool
	replacement A
}

func (c catchValue[RT, A]) recoverFrom(_ RT, failed Result[A]) Result[A] {
	if c.match != nil && !c.match(failed.Err()) {
		return failed
	}
	return result.Succeed(c.replacement)
}

// CatchError recovers from failures matching the predicate by replacing
// the carried error. A nil match predicate matches every error.
func CatchError[RT Runtime[RT], A any](match func(error) bool, replacement error) Recovery[RT, A] {
	return catchError[RT, A]{match: match, replacement: replacement}
}

type catchError[RT Runtime[RT], A any] struct {
	match       func(error) bool
	replacement error
}

func (c catchError[RT, A]) recoverFrom(_ RT, failed Result[A]) Result[A] {
	if c.match != nil && !c.match(failed.Err()) {
		return failed
	}
	return result.Fail[A](c.replacement)
}
