// Package cc2fs implements CC2FS (Configuration Checking with 2-level
// forbidding and Frequency-based Scoring), a time-bounded local-search
// metaheuristic for the Minimum-Weight Dominating Set problem.
//
// # What & why
//
// Given a wgraph.Graph, Run selects a subset S of vertices minimizing total
// weight such that every vertex is in S or adjacent to a member of S. The
// problem is NP-hard; CC2FS trades optimality for an anytime guarantee: it
// always returns a feasible cover (found by an initial greedy pass) and
// improves on it until a caller-supplied deadline.
//
// # Algorithm sketch
//
//   - init_greedy builds a feasible cover by repeatedly adding the vertex
//     covering the most still-uncovered vertices.
//   - The main loop alternates two regimes:
//   - feasible: record S if it improves on the best found so far, then
//     evict one vertex to force exploration of a different reinsertion.
//   - infeasible: evict one vertex (outside a short forbid list), then
//     greedily reinsert vertices from the conf_change pool until feasible
//     again.
//   - Configuration-change bookkeeping (conf_change) prevents immediately
//     re-selecting a vertex that was just evicted, the way tabu search
//     prevents cycling.
//   - A frequency counter biases future scoring toward vertices that have
//     stayed uncovered across iterations (clause-weighting, as in SAT local
//     search); age breaks ties toward the lowest age, i.e. the most
//     recently toggled vertex (age resets to 0 on every toggle).
//
// # Determinism
//
// Run is deterministic given a fixed Clock and fixed iteration order — the
// only external input is wall-clock time, which governs solely when the
// loop stops, never which moves it takes. Tie-breaking beyond the stated
// "lowest age, first-encountered-wins" rule is not specified and must not be
// relied upon across runs.
//
// # Concurrency
//
// Run is strictly synchronous and single-threaded; it holds no locks and
// spawns no goroutines. The sole point where control can leave the loop is
// the clock read at the top of each outer iteration.
package cc2fs
