package eff_test

import (
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gimlism/language-ext/eff"
	"github.com/gimlism/language-ext/eff/cancel"
)

func TestTimeout_FastPathReturnsOwnResult(t *testing.T) {
	rt := eff.NewRuntime()

	quick := eff.Effect(func(eff.BaseRuntime) (string, error) {
		time.Sleep(10 * time.Millisecond)
		return "done", nil
	})

	v, err := quick.Timeout(200 * time.Millisecond).Run(rt).Get()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != "done" {
		t.Fatalf("unexpected value: %v", v)
	}
}

func TestTimeout_FastPathFailureUnchanged(t *testing.T) {
	rt := eff.NewRuntime()
	boom := errors.New("boom")

	failing := eff.Fail[eff.BaseRuntime, string](boom)

	res := failing.Timeout(200 * time.Millisecond).Run(rt)
	if !res.IsFail() || res.Err() != boom {
		t.Fatalf("own failure must pass through verbatim, got %v", res.Err())
	}
}

func TestTimeout_SlowPathTimesOutAndCancelsChild(t *testing.T) {
	rt := eff.NewRuntime()

	var childSig atomic.Pointer[cancel.Signal]
	stuck := eff.Effect(func(r eff.BaseRuntime) (string, error) {
		childSig.Store(r.CancelSignal())
		<-r.CancelSignal().Done() // never completes on its own
		return "", r.CancelSignal().Context().Err()
	})

	start := time.Now()
	res := stuck.Timeout(20 * time.Millisecond).Run(rt)
	elapsed := time.Since(start)

	if !errors.Is(res.Err(), eff.ErrTimedOut) {
		t.Fatalf("expected ErrTimedOut, got %v", res.Err())
	}
	if elapsed > 500*time.Millisecond {
		t.Fatalf("timeout returned after %v, far beyond the deadline", elapsed)
	}

	sig := childSig.Load()
	if sig == nil {
		t.Fatal("wrapped computation never started")
	}
	if !sig.Requested() {
		t.Fatal("loser's cancellation signal must be requested")
	}
}

func TestTimeout_UsesFreshRunOfWrappedEffect(t *testing.T) {
	rt := eff.NewRuntime()
	boom := errors.New("transient")
	var calls atomic.Int32

	flaky := eff.Effect(func(eff.BaseRuntime) (int, error) {
		if calls.Add(1) == 1 {
			return 0, boom
		}
		return 1, nil
	})

	// Memoize the failure, then go through Timeout: the race re-runs
	// the computation instead of serving the cached failure.
	flaky.Run(rt)

	v, err := flaky.Timeout(200 * time.Millisecond).Run(rt).Get()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != 1 {
		t.Fatalf("unexpected value: %d", v)
	}
}

func TestTimeout_ParentCancelReachesChild(t *testing.T) {
	rt := eff.NewRuntime()

	observed := make(chan struct{})
	stuck := eff.Effect(func(r eff.BaseRuntime) (string, error) {
		<-r.CancelSignal().Done()
		close(observed)
		return "", errors.New("cancelled")
	})

	go func() {
		time.Sleep(20 * time.Millisecond)
		rt.CancelSignal().Cancel()
	}()

	res := stuck.Timeout(time.Second).Run(rt)
	if res.IsSucc() {
		t.Fatal("expected a failure")
	}

	select {
	case <-observed:
	case <-time.After(time.Second):
		t.Fatal("parent cancellation never propagated to the child signal")
	}
}

func TestTimeout_ZeroValueIsBottom(t *testing.T) {
	rt := eff.NewRuntime()

	var e eff.Eff[eff.BaseRuntime, int]
	if err := e.Timeout(10 * time.Millisecond).Run(rt).Err(); !errors.Is(err, eff.ErrBottom) {
		t.Fatalf("expected ErrBottom, got %v", err)
	}
}

func TestRace_FirstCompleterWins(t *testing.T) {
	rt := eff.NewRuntime()

	var slowSig atomic.Pointer[cancel.Signal]
	fast := eff.Effect(func(eff.BaseRuntime) (string, error) {
		time.Sleep(10 * time.Millisecond)
		return "fast", nil
	})
	slow := eff.Effect(func(r eff.BaseRuntime) (string, error) {
		slowSig.Store(r.CancelSignal())
		select {
		case <-r.CancelSignal().Done():
			return "", errors.New("cancelled")
		case <-time.After(2 * time.Second):
			return "slow", nil
		}
	})

	v, err := eff.Race(fast, slow).Run(rt).Get()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != "fast" {
		t.Fatalf("unexpected winner: %v", v)
	}

	deadline := time.Now().Add(500 * time.Millisecond)
	for {
		if sig := slowSig.Load(); sig != nil && sig.Requested() {
			break
		}
		if time.Now().After(deadline) {
			t.Fatal("loser's signal never requested")
		}
		time.Sleep(time.Millisecond)
	}
}

func TestRace_WinnerFailurePassesThrough(t *testing.T) {
	rt := eff.NewRuntime()
	boom := errors.New("boom")

	failingFast := eff.Fail[eff.BaseRuntime, int](boom)
	slow := eff.Effect(func(r eff.BaseRuntime) (int, error) {
		select {
		case <-r.CancelSignal().Done():
		case <-time.After(2 * time.Second):
		}
		return 0, errors.New("slow")
	})

	res := eff.Race(failingFast, slow).Run(rt)
	if res.Err() != boom {
		t.Fatalf("first completer's failure must win, got %v", res.Err())
	}
}
