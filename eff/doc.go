// Package eff provides value-level asynchronous effects for Go.
//
// An Eff[RT, A] is a deferred computation from a runtime RT to a
// Result[A]. Nothing runs until the caller supplies a runtime and asks
// for the value, and the outcome is always an explicit success or
// failure — never a raised fault on the ordinary paths.
//
// # Why effect values?
//
// Representing a computation as a value makes its execution policy a
// caller decision instead of a definition-site decision:
//
//   - Run memoizes the first completed outcome; ReRun always executes
//     fresh; Clone resets an already-run effect.
//   - OrElse composes fallback and recovery without a try/catch
//     construct.
//   - Timeout races the computation against a delay; Fork launches it
//     in the background and hands back a cancellation handle.
//
// # Runtimes and cancellation
//
// Effects run against any type satisfying Runtime: expose a
// cancellation Signal, and derive a child runtime with an independent
// signal. Cancellation is cooperative — the wrapped function must
// observe its signal — and parent-to-child propagation is explicit
// registration done by Fork, Timeout, and Race, never structural
// inheritance. BaseRuntime is a ready-made implementation.
//
// # Shapes and lifts
//
// IO[A] is the environment-free shape, Sync[RT, A] and SyncIO[A] the
// purely synchronous ones. Conversions between shapes are explicit
// lift constructors (LiftIO, LiftSync, LiftSyncIO) that re-execute the
// inner value fresh on every use.
//
// Example:
//
//	rt := eff.NewRuntime()
//	fetch := eff.Effect(func(rt eff.BaseRuntime) ([]byte, error) {
//	    return fetchWith(rt.CancelSignal().Context())
//	})
//	res := fetch.Timeout(time.Second).
//	    OrElse(eff.CatchValue[eff.BaseRuntime, []byte](eff.Is(eff.ErrTimedOut), nil)).
//	    Run(rt)
package eff
