package eff

import (
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/gimlism/language-ext/eff/result"
)

// Fork turns the effect into a fire-and-forget launch. Running the
// returned effect starts the wrapped computation in the background
// against a child runtime and yields a cancellation handle: an effect
// which, when run, requests cancellation of the forked computation.
//
// The forked computation's own result is discarded — fork exists for
// side effects and explicit cancellation control. Cancelling the
// caller's runtime cancels the fork too: a parent-to-child propagation
// callback is registered on launch and removed, idempotently, once the
// computation completes or the handle fires.
//
// The handle is safe to run zero, one, or many times; cancellation is
// monotonic and a second request is a no-op. The handle returning only
// guarantees that cancellation has been requested, not that the child
// has stopped: the child must observe its signal cooperatively.
func (e Eff[RT, A]) Fork() Eff[RT, Eff[RT, Unit]] {
	return FromResult(func(rt RT) Result[Eff[RT, Unit]] {
		if e.t == nil {
			return result.Fail[Eff[RT, Unit]](ErrBottom)
		}

		child := rt.LocalCancel()
		sig := child.CancelSignal()
		stop := rt.CancelSignal().OnCancel(sig.Cancel)

		logger := loggerOf(rt)
		forkId := uuid.NewString()
		t := e.t

		go func() {
			r := t.Value(child)
			stop()
			if err := r.Err(); err != nil {
				logger.Debug("discarding failed fork result",
					zap.String("fork_id", forkId),
					zap.Error(err),
				)
			}
		}()

		handle := Total[RT](func(RT) Unit {
			sig.Cancel()
			stop()
			return Unit{}
		})
		return result.Succeed(handle)
	})
}
