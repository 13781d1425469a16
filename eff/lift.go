package eff

// Lift constructors make the narrowing conversions between effect
// shapes textually visible at call sites. Each lift wraps a NEW
// computation cell: the lifted effect re-executes the inner value fresh
// on every invocation and never consults or shares the inner value's
// own memo. Reuse a single lifted handle to share a memo.

// LiftIO uses an environment-free effect where a runtime-needing one is
// expected; the supplied runtime is ignored.
func LiftIO[RT Runtime[RT], A any](io IO[A]) Eff[RT, A] {
	return FromResult(func(RT) Result[A] { return io.ReRun() })
}

// LiftSync uses a synchronous effect where an asynchronous one is
// expected.
func LiftSync[RT Runtime[RT], A any](s Sync[RT, A]) Eff[RT, A] {
	return FromResult(func(rt RT) Result[A] { return s.ReRun(rt) })
}

// LiftSyncIO uses a synchronous, environment-free effect where an
// asynchronous runtime-needing one is expected.
func LiftSyncIO[RT Runtime[RT], A any](s SyncIO[A]) Eff[RT, A] {
	return FromResult(func(RT) Result[A] { return s.ReRun() })
}
