/*
Package middleware provides ready-made interceptors for a store's dispatch chain.

  - Logger: structured slog records per dispatch, tagged with a dispatch ID and the changed fields.
  - Instrument: Prometheus counters and histograms per action kind, counting panicked and swallowed dispatches.
  - Recoverer: turns panics from the rest of the chain into logged errors.
  - Filter: drops actions rejected by a predicate, before they reach inner middleware or reducers.

Order matters: the first middleware passed to Store.Middleware runs first.
Put Recoverer first to protect everything else, and Logger before Filter to
see actions that get dropped.
*/
package middleware
