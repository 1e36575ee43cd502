// Package schedule assigns curated puzzles to consecutive calendar dates and
// owns the versioned, append-only challenge ledger the live game reads.
//
// Model: the scheduler is a state machine over a single linear sequence of
// dates (Empty → Populating → Published), not over gameplay. Assignment is
// purely positional (the i-th highest-ranked surviving puzzle lands on
// startDate + i days) and is never reshuffled once assigned.
//
// Publication invariant: once a ledger is published, any entry whose date is
// on or before the current publication date must survive regeneration
// unchanged. Re-running against a superseding candidate pool may only
// replace entries strictly in the future. This is a correctness rule, not an
// optimization: a challenge someone may already have played can never change
// retroactively.
//
// Persistence: the ledger is pretty-printed JSON written via a temp file and
// an atomic rename in the target directory, so a crash mid-write can never
// leave a parseable-but-truncated ledger, and a failed write leaves the
// previously published file untouched.
//
// Errors (sentinel):
//
//	– ErrInsufficientPuzzles if the pool cannot cover the requested span
//	  (the ledger is never silently truncated).
//	– ErrLedgerWrite       wraps any persistence failure.
//	– ErrNoChallenge       if a queried date has no entry.
package schedule
