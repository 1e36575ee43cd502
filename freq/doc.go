// Package freq provides the word rarity index used to score puzzle
// desirability and to surface the hardest achievement-eligible words.
//
// Convention (fixed): a score is a relative corpus frequency, so
// LOWER = RARER. Rarest(n) therefore ascends by score.
//
// The index is derived, not authoritative: Build drops every entry of the
// raw frequency table whose word is outside the supplied vocabulary (graph
// vocabulary ∪ definitions vocabulary), and reports retained vs. dropped
// counts for observability. Given identical inputs the index, its ordering,
// and its serialized form are byte-for-byte reproducible.
//
// Like the word graph, an Index is built once and immutable afterwards;
// concurrent readers need no coordination.
package freq
