// Package pipeline wires the engine's components into the offline curation
// batch: load the graph snapshot, build the rarity index, evaluate the
// candidate pool against the solver in a bounded worker pool, rank the
// survivors, assign them to calendar dates, and persist the challenge
// ledger atomically.
//
// The pipeline is configured from a YAML document (see Config) and logs
// structured progress with zap: the frequency filter's retained/dropped
// counts, per-reason rejection tallies, and the final schedule summary.
//
// Error policy mirrors the engine's propagation rules: malformed inputs
// (graph, ledger, config) abort the run; a rejected candidate never does;
// a ledger write failure aborts the run and leaves any previously published
// ledger untouched.
package pipeline
