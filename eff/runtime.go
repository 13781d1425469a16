package eff

import (
	"go.uber.org/zap"

	"github.com/gimlism/language-ext/eff/cancel"
)

// Runtime is the capability contract any caller-supplied environment
// must satisfy to run effects: expose a cancellation signal, and derive
// a child environment with its own independently cancellable signal.
//
// LocalCancel must return a copy of the runtime whose signal is fresh
// and unrelated to the parent's. Cancelling the parent does NOT
// automatically cancel the child; Fork and Timeout wire that
// propagation explicitly via Signal.OnCancel, per use.
type Runtime[RT any] interface {
	CancelSignal() *cancel.Signal
	LocalCancel() RT
}

// HasLog is an optional runtime capability. A runtime implementing it
// provides the structured logger used for outcomes nobody awaits, such
// as discarded fork failures. Runtimes without it stay silent.
type HasLog interface {
	Logger() *zap.Logger
}

// BaseRuntime is a ready-made Runtime carrying a cancellation signal
// and a zap logger. It is the runtime to reach for when no
// domain-specific environment is needed, and the template for building
// one when it is.
type BaseRuntime struct {
	sig    *cancel.Signal
	logger *zap.Logger
}

// NewRuntime returns a BaseRuntime with a fresh signal and a no-op
// logger.
func NewRuntime() BaseRuntime {
	return BaseRuntime{sig: cancel.New(), logger: zap.NewNop()}
}

// WithLogger returns a copy of the runtime that logs through l.
func (r BaseRuntime) WithLogger(l *zap.Logger) BaseRuntime {
	r.logger = l
	return r
}

// CancelSignal implements Runtime.
func (r BaseRuntime) CancelSignal() *cancel.Signal { return r.sig }

// LocalCancel implements Runtime: same logger, fresh independent
// signal.
func (r BaseRuntime) LocalCancel() BaseRuntime {
	r.sig = cancel.New()
	return r
}

// Logger implements HasLog.
func (r BaseRuntime) Logger() *zap.Logger { return r.logger }

// loggerOf probes an arbitrary runtime for the HasLog capability.
func loggerOf(rt any) *zap.Logger {
	if h, ok := rt.(HasLog); ok && h.Logger() != nil {
		return h.Logger()
	}
	return zap.NewNop()
}
