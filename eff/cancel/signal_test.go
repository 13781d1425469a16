package cancel_test

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/gimlism/language-ext/eff/cancel"
)

func TestSignal_CancelIsIdempotent(t *testing.T) {
	sig := cancel.New()
	if sig.Requested() {
		t.Fatal("fresh signal must not be requested")
	}

	sig.Cancel()
	sig.Cancel()
	sig.Cancel()

	if !sig.Requested() {
		t.Fatal("signal must stay requested after Cancel")
	}
	select {
	case <-sig.Done():
	default:
		t.Fatal("Done channel must be closed after Cancel")
	}
}

func TestSignal_Independence(t *testing.T) {
	a := cancel.New()
	b := cancel.New()

	a.Cancel()

	if b.Requested() {
		t.Fatal("cancelling one signal must not affect another")
	}
}

func TestSignal_OnCancelFiresOnce(t *testing.T) {
	sig := cancel.New()
	var fired atomic.Int32

	sig.OnCancel(func() { fired.Add(1) })

	sig.Cancel()
	sig.Cancel()

	waitFor(t, func() bool { return fired.Load() == 1 })
	time.Sleep(20 * time.Millisecond)
	if n := fired.Load(); n != 1 {
		t.Fatalf("callback fired %d times, want exactly 1", n)
	}
}

func TestSignal_OnCancelAfterCancel(t *testing.T) {
	sig := cancel.New()
	sig.Cancel()

	fired := make(chan struct{})
	sig.OnCancel(func() { close(fired) })

	select {
	case <-fired:
	case <-time.After(200 * time.Millisecond):
		t.Fatal("callback registered on a cancelled signal must still fire")
	}
}

func TestSignal_StopUnregisters(t *testing.T) {
	sig := cancel.New()
	var fired atomic.Int32

	stop := sig.OnCancel(func() { fired.Add(1) })
	stop()
	stop() // double-unregister must be tolerated

	sig.Cancel()
	time.Sleep(20 * time.Millisecond)
	if n := fired.Load(); n != 0 {
		t.Fatalf("unregistered callback fired %d times", n)
	}
}

func TestSignal_StopAfterFireIsHarmless(t *testing.T) {
	sig := cancel.New()
	fired := make(chan struct{})

	stop := sig.OnCancel(func() { close(fired) })
	sig.Cancel()

	select {
	case <-fired:
	case <-time.After(200 * time.Millisecond):
		t.Fatal("callback did not fire")
	}

	stop()
	stop()
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(500 * time.Millisecond)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(time.Millisecond)
	}
	t.Fatal("condition not reached in time")
}
