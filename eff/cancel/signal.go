// Package cancel provides the cooperative cancellation signal effect
// runtimes hand to the computations they run.
//
// A Signal is a request flag, not a kill switch: requesting cancellation
// sets the flag and fires registered callbacks, and the running function
// must itself observe the signal (poll Requested, select on Done, or run
// on Context) for the request to take effect. A function that ignores
// its signal simply keeps running.
package cancel

import "context"

// Signal is an independently cancellable request flag with callback
// registration. It is safe for concurrent use; Cancel is idempotent and
// monotonic — once requested, a Signal never returns to the
// not-requested state.
type Signal struct {
	ctx    context.Context
	cancel context.CancelFunc
}

// New returns a fresh, not-yet-requested Signal. The Signal is
// independent of every other Signal: cancelling it affects nobody else,
// and nobody else's cancellation reaches it unless explicitly
// propagated via OnCancel.
func New() *Signal {
	ctx, cancel := context.WithCancel(context.Background())
	return &Signal{ctx: ctx, cancel: cancel}
}

// Cancel requests cancellation. Safe to call any number of times from
// any goroutine; calls after the first are no-ops.
func (s *Signal) Cancel() { s.cancel() }

// Requested reports whether cancellation has been requested.
func (s *Signal) Requested() bool { return s.ctx.Err() != nil }

// Done returns a channel closed when cancellation is requested,
// for use in select statements.
func (s *Signal) Done() <-chan struct{} { return s.ctx.Done() }

// Context exposes the signal as a context.Context so that wrapped
// functions can pass it straight into cancellable stdlib and library
// calls.
func (s *Signal) Context() context.Context { return s.ctx }

// OnCancel registers fn to be invoked exactly once when cancellation is
// requested. If the signal is already cancelled, fn is invoked
// immediately in its own goroutine.
//
// The returned stop function unregisters fn; calling it after fn has
// already fired, or calling it more than once, is harmless.
func (s *Signal) OnCancel(fn func()) (stop func()) {
	stopFn := context.AfterFunc(s.ctx, fn)
	return func() { stopFn() }
}
