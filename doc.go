// Command mwds (see cmd/mwds) approximates a Minimum-Weight Dominating Set
// on an undirected, vertex-weighted graph using CC2FS (Configuration
// Checking with 2-level forbidding and Frequency-based Scoring), a
// time-bounded local-search metaheuristic.
//
// The module is organized leaves-first:
//
//	bitset/   — dense word-backed vertex-subset representation
//	wgraph/   — immutable dense-indexed vertex-weighted graph, N1/N2 queries
//	cc2fs/    — the search core: scoring, configuration-change rules,
//	            the anytime CC2FS main loop
//	core/     — named (string-ID) graph used to validate external input
//	            before compilation to wgraph.Graph
//	ioshell/  — text parsing, name<->index mapping, result formatting
//	metrics/  — Prometheus textfile instrumentation for one search run
//	cmd/mwds/ — the CLI entry point
//
// The search core (cc2fs) is strictly single-threaded and synchronous: the
// only externally observable effect inside a search is the clock read at
// the top of each outer loop iteration, which is also the sole point of
// termination. It never retries and never partially fails — every
// operation is total on a well-formed graph.
package mwds
