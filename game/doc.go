// Package game layers the play-time surface over the engine: a small session
// state machine and the two-call query service the UI consumes.
//
// A Session tracks one attempt at one challenge. It needs no graph
// algorithm: every move is a ranked-neighbor lookup plus an equality check
// against the target word.
//
//	Playing ──Choose(target)──▶ Won
//	Playing ──GiveUp()───────▶ GaveUp
//
// Terminal states refuse further moves.
//
// The Service wraps the loaded graph and the published ledger behind exactly
// two calls, NeighborsOf and TodaysChallenge, and never propagates an
// internal error to the UI layer: anything the player cannot act on
// collapses into ErrNotAvailable.
package game
