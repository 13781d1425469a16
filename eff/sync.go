package eff

import (
	"github.com/gimlism/language-ext/eff/result"
)

// Sync is the purely synchronous sibling of Eff: a computation from a
// runtime to a result with no memo cell and no asynchronous machinery.
// Every ReRun invokes the function fresh. Lift with LiftSync.
type Sync[RT Runtime[RT], A any] struct {
	fn func(RT) Result[A]
}

// NewSync wraps a fallible synchronous function.
func NewSync[RT Runtime[RT], A any](fn func(RT) (A, error)) Sync[RT, A] {
	return Sync[RT, A]{fn: func(rt RT) Result[A] {
		a, err := fn(rt)
		if err != nil {
			return result.Fail[A](err)
		}
		return result.Succeed(a)
	}}
}

// ReRun invokes the computation. Panics are captured into failures at
// the same boundary the asynchronous engine uses.
func (s Sync[RT, A]) ReRun(rt RT) Result[A] {
	if s.fn == nil {
		return result.Fail[A](ErrBottom)
	}
	return result.Capture(func() Result[A] { return s.fn(rt) })
}

// SyncIO is the synchronous, environment-free sibling of IO.
// Lift with LiftSyncIO.
type SyncIO[A any] struct {
	fn func() Result[A]
}

// NewSyncIO wraps a fallible synchronous function needing no runtime.
func NewSyncIO[A any](fn func() (A, error)) SyncIO[A] {
	return SyncIO[A]{fn: func() Result[A] {
		a, err := fn()
		if err != nil {
			return result.Fail[A](err)
		}
		return result.Succeed(a)
	}}
}

// ReRun invokes the computation with panic capture.
func (s SyncIO[A]) ReRun() Result[A] {
	if s.fn == nil {
		return result.Fail[A](ErrBottom)
	}
	return result.Capture(s.fn)
}
