package eff

import (
	"time"

	"github.com/gimlism/language-ext/eff/result"
)

// Timeout races the effect against a delay. The wrapped computation
// runs fresh (non-memoizing) on a child runtime, concurrently with the
// delay; whichever finishes first decides the outcome:
//
//   - delay wins: the child's signal is cancelled (best effort — the
//     computation must observe it to actually stop) and the result is
//     Fail(ErrTimedOut);
//   - computation wins: the timer is stopped and its result is
//     returned verbatim, success or failure.
//
// The loser is always told to stop, and telling it never blocks the
// winner's result. Cancelling the caller's runtime is propagated to
// the child for the duration of the race.
func (e Eff[RT, A]) Timeout(d time.Duration) Eff[RT, A] {
	return FromResult(func(rt RT) Result[A] {
		if e.t == nil {
			return result.Fail[A](ErrBottom)
		}

		child := rt.LocalCancel()
		sig := child.CancelSignal()
		stop := rt.CancelSignal().OnCancel(sig.Cancel)
		defer stop()

		timer := time.NewTimer(d)
		defer timer.Stop()

		t := e.t
		done := make(chan Result[A], 1)
		go func() { done <- t.ReValue(child) }()

		select {
		case r := <-done:
			return r
		case <-timer.C:
			sig.Cancel()
			return result.Fail[A](ErrTimedOut)
		}
	})
}

// Race runs two effects concurrently, each on its own child runtime,
// and returns the first completer's result verbatim. The loser's
// signal is cancelled, best effort. Cancelling the caller's runtime is
// propagated to both children while the race is in flight.
func Race[RT Runtime[RT], A any](left, right Eff[RT, A]) Eff[RT, A] {
	return FromResult(func(rt RT) Result[A] {
		leftChild := rt.LocalCancel()
		rightChild := rt.LocalCancel()
		leftSig := leftChild.CancelSignal()
		rightSig := rightChild.CancelSignal()

		parent := rt.CancelSignal()
		stopLeft := parent.OnCancel(leftSig.Cancel)
		defer stopLeft()
		stopRight := parent.OnCancel(rightSig.Cancel)
		defer stopRight()

		done := make(chan Result[A], 2)
		go func() { done <- left.ReRun(leftChild) }()
		go func() { done <- right.ReRun(rightChild) }()

		r := <-done
		leftSig.Cancel()
		rightSig.Cancel()
		return r
	})
}
