package eff

import "errors"

var (
	// ErrBottom is the sentinel failure produced by running an effect
	// value that was never initialized (the zero value of Eff or IO).
	// Seeing it means a constructor was skipped — a usage error, not a
	// runtime condition worth recovering from.
	ErrBottom = errors.New("eff: uninitialized effect value")

	// ErrTimedOut is produced exclusively by the Timeout combinator
	// when the delay wins the race against the wrapped computation.
	ErrTimedOut = errors.New("eff: timed out")
)

// Is returns a predicate matching errors by errors.Is against target,
// for use with the Catch family.
func Is(target error) func(error) bool {
	return func(err error) bool { return errors.Is(err, target) }
}
