// Package schedule applies retry policies to effect values.
//
// A Policy is built fluently and handed to Retry or RetryWhile, which
// wrap an effect in a new one that re-runs the computation until it
// succeeds, the attempt budget is spent, the wall-clock window closes,
// or the runtime's cancellation signal is requested. Backoff sleeps
// observe the signal, so a cancelled runtime never sits out a delay.
package schedule

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/rickb777/date/v2/timespan"

	"github.com/gimlism/language-ext/eff"
	"github.com/gimlism/language-ext/eff/result"
)

var (
	// ErrAttemptsExhausted wraps the last failure once the attempt
	// budget is spent.
	ErrAttemptsExhausted = errors.New("schedule: attempts exhausted")

	// ErrWindowClosed is returned when a Within window has closed
	// before an attempt could start.
	ErrWindowClosed = errors.New("schedule: retry window closed")
)

// Policy describes how often and how patiently an effect is retried.
// The zero value makes a single attempt with no backoff; build richer
// policies with Times and the With* methods. Policies are values —
// every method returns a modified copy.
type Policy struct {
	maxAttempts    int
	initialBackoff time.Duration
	maxBackoff     time.Duration
	multiplier     float64
	jitterKey      string
	window         timespan.TimeSpan
	hasWindow      bool
}

// Times returns a Policy making at most maxAttempts attempts.
// maxAttempts <= 0 is treated as 1 (no retries).
func Times(maxAttempts int) Policy {
	if maxAttempts <= 0 {
		maxAttempts = 1
	}
	return Policy{maxAttempts: maxAttempts}
}

// WithExponentialBackoff configures exponential backoff:
//
//   - initial is the delay before the first retry,
//   - multiplier > 1 grows the delay each attempt (default 2.0 if <= 0),
//   - max caps the delay; if <= 0 there is no cap.
func (p Policy) WithExponentialBackoff(initial time.Duration, multiplier float64, max time.Duration) Policy {
	if multiplier <= 0 {
		multiplier = 2.0
	}
	p.initialBackoff = initial
	p.multiplier = multiplier
	p.maxBackoff = max
	return p
}

// WithConstantBackoff configures the same delay before every retry.
func (p Policy) WithConstantBackoff(delay time.Duration) Policy {
	p.initialBackoff = delay
	p.multiplier = 1.0
	p.maxBackoff = 0
	return p
}

// Immediate disables any sleep between retries. Retries still respect
// the attempt budget and window.
func (p Policy) Immediate() Policy {
	p.initialBackoff = 0
	p.multiplier = 0
	p.maxBackoff = 0
	return p
}

// WithJitterKey scales each backoff delay by a stable factor in
// [0.5, 1.5) derived from hashing key and the attempt number. Callers
// retrying many effects against one dependency give each a distinct
// key so their retries stay de-synchronized across runs.
func (p Policy) WithJitterKey(key string) Policy {
	p.jitterKey = key
	return p
}

// Within restricts attempts to the given wall-clock window: no attempt
// starts after the window has closed.
func (p Policy) Within(ts timespan.TimeSpan) Policy {
	p.window = ts
	p.hasWindow = true
	return p
}

// Retry wraps an effect so that running it re-runs the computation
// until it succeeds or the policy gives up. Every attempt uses the
// non-memoizing path; a previously cached failure never blocks a retry.
func Retry[RT eff.Runtime[RT], A any](e eff.Eff[RT, A], p Policy) eff.Eff[RT, A] {
	return RetryWhile(e, p, nil)
}

// RetryWhile is Retry restricted to failures matching the predicate:
// a non-matching failure is returned immediately, carrying the
// original error. A nil predicate matches every failure.
func RetryWhile[RT eff.Runtime[RT], A any](e eff.Eff[RT, A], p Policy, while func(error) bool) eff.Eff[RT, A] {
	maxAttempts := p.maxAttempts
	if maxAttempts <= 0 {
		maxAttempts = 1
	}
	return eff.FromResult(func(rt RT) eff.Result[A] {
		sig := rt.CancelSignal()
		for attempt := 1; ; attempt++ {
			if p.hasWindow && !p.window.Contains(time.Now()) {
				return result.Fail[A](ErrWindowClosed)
			}

			res := e.ReRun(rt)
			if res.IsSucc() {
				return res
			}
			err := res.Err()
			if while != nil && !while(err) {
				return res
			}
			if attempt >= maxAttempts {
				return result.Fail[A](fmt.Errorf("%w: %d attempts: %w", ErrAttemptsExhausted, attempt, err))
			}
			if sig.Requested() {
				return res
			}

			if delay := p.backoffFor(attempt); delay > 0 {
				timer := time.NewTimer(delay)
				select {
				case <-timer.C:
				case <-sig.Done():
					timer.Stop()
					return res
				}
			}
		}
	})
}

// backoffFor computes the delay after the given (1-based) failed
// attempt.
func (p Policy) backoffFor(attempt int) time.Duration {
	if p.initialBackoff <= 0 {
		return 0
	}
	delay := float64(p.initialBackoff)
	multiplier := p.multiplier
	if multiplier <= 0 {
		multiplier = 1.0
	}
	for i := 1; i < attempt; i++ {
		delay *= multiplier
	}
	d := time.Duration(delay)
	if p.maxBackoff > 0 && d > p.maxBackoff {
		d = p.maxBackoff
	}
	if p.jitterKey != "" {
		d = jitter(p.jitterKey, attempt, d)
	}
	return d
}

// jitter scales d by a factor in [0.5, 1.5) that is stable for a given
// key and attempt number.
func jitter(key string, attempt int, d time.Duration) time.Duration {
	h := xxhash.Sum64String(key + "#" + strconv.Itoa(attempt))
	frac := float64(h%1024) / 1024.0
	return time.Duration(float64(d) * (0.5 + frac))
}
