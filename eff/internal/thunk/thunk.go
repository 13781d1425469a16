// Package thunk implements the deferred-computation cell behind every
// effect value: a function from runtime to result plus a memo slot
// recording the first completed outcome.
package thunk

import (
	"sync/atomic"

	"github.com/gimlism/language-ext/eff/result"
)

// Thunk holds a deferred function from a runtime RT to a Result and
// memoizes the outcome of its first completed invocation. Failures are
// memoized exactly like successes: the cell records "computed once",
// not "computed successfully".
//
// The memo slot is the only mutable state. Its transition is NOT
// guarded by a lock: concurrent first-time calls to Value may each
// invoke the function, and the last completer's result becomes the
// memo. Once a result is stored, every later Value call observes a
// consistent cached result. Callers that need exactly-once execution
// must serialize externally. This relaxed contract is deliberate.
type Thunk[RT any, A any] struct {
	fn   func(RT) result.Result[A]
	memo atomic.Pointer[result.Result[A]]
}

// New returns a Pending cell wrapping fn.
func New[RT any, A any](fn func(RT) result.Result[A]) *Thunk[RT, A] {
	return &Thunk[RT, A]{fn: fn}
}

// Value is the memoizing invocation. A completed cell returns its
// cached result without invoking the function or touching rt; a
// pending cell invokes the function, stores whatever comes back, and
// returns it.
func (t *Thunk[RT, A]) Value(rt RT) result.Result[A] {
	if r := t.memo.Load(); r != nil {
		return *r
	}
	r := t.invoke(rt)
	t.memo.Store(&r)
	return r
}

// ReValue is the always-fresh invocation. It never reads nor writes the
// memo slot, so combinators can retry an underlying effect without
// being blocked by a previously cached failure, and without disturbing
// what memoizing callers observe.
func (t *Thunk[RT, A]) ReValue(rt RT) result.Result[A] {
	return t.invoke(rt)
}

// Clone returns a new pending cell over the same function. The clone
// memoizes independently; no mutable state is shared with the original.
func (t *Thunk[RT, A]) Clone() *Thunk[RT, A] {
	return New(t.fn)
}

// invoke runs the function through the panic-capture boundary, so a
// panicking wrapped function surfaces as an ordinary failure.
func (t *Thunk[RT, A]) invoke(rt RT) result.Result[A] {
	return result.Capture(func() result.Result[A] {
		return t.fn(rt)
	})
}
