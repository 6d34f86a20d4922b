package cc2fs

import (
	"time"

	"github.com/katalvlaran/mwds/wgraph"
)

// Run executes CC2FS on g until deadline passes, returning the best
// dominating set found, its total weight, and how many outer loop
// iterations ran.
//
// Errors: Run never returns an error on well-formed input; the return type
// exists for API symmetry with callers that also parse external input
// (see ioshell), where a non-nil error is possible before Run is ever
// reached.
func Run(g *wgraph.Graph, deadline time.Time) (Result, error) {
	return run(g, SystemClock{}, deadline)
}

// run is the Clock-injectable entry point used by tests to control time
// deterministically.
func run(g *wgraph.Graph, clock Clock, deadline time.Time) (Result, error) {
	if g.N() == 0 {
		return Result{Cover: nil, Weight: 0}, nil
	}

	sr := newSearcher(g, clock)
	sr.ruleInit()
	sr.initGreedy()
	sr.sStar.CopyFrom(sr.s)
	sr.markIsolatedVertices()

	var iterations int64
	for clock.Now().Before(deadline) {
		iterations++
		if sr.uncoveredCount() == 0 {
			w := sr.weightOf(sr.s)
			if w < sr.sStarWt {
				sr.sStar.CopyFrom(sr.s)
				sr.sStarWt = w
			}
			v := sr.pickHighestScoreInS(false)
			if v != noVertex {
				sr.removeFromS(v)
				sr.rule2(v)
			}
			continue
		}

		v := sr.pickHighestScoreInS(true)
		if v != noVertex {
			sr.removeFromS(v)
			sr.rule2(v)
		}
		sr.forbid.Clear()
		for sr.uncoveredCount() > 0 {
			ins := sr.pickInsertionCandidate()
			if ins == noVertex {
				break
			}
			sr.addToS(ins)
			sr.rule3(ins)
			sr.forbid.Add(ins)
			sr.updateFreq()
		}
		sr.increaseAge()
	}

	if sr.sStarWt == noWeight {
		sr.sStarWt = sr.weightOf(sr.sStar)
	}

	return Result{Cover: sr.sStar.Slice(), Weight: sr.sStarWt, Iterations: iterations}, nil
}

// initGreedy builds a feasible cover: while some vertex remains uncovered,
// add the not-yet-chosen vertex whose first neighborhood covers the most
// still-uncovered vertices, breaking ties by lowest index (stable).
func (sr *searcher) initGreedy() {
	inPool := make([]bool, sr.n)
	for v := range inPool {
		inPool[v] = true
	}
	for sr.uncoveredCount() != 0 {
		best, bestCov := -1, -1
		for v := 0; v < sr.n; v++ {
			if !inPool[v] {
				continue
			}
			cov := sr.uncoveredNeighborCount(v)
			if cov > bestCov {
				bestCov, best = cov, v
			}
		}
		sr.addToS(best)
		inPool[best] = false
	}
}

// uncoveredNeighborCount returns |N1(v) \ covered_vertices|.
func (sr *searcher) uncoveredNeighborCount(v int) int {
	count := 0
	sr.g.N1(v).Each(func(u int) {
		if !sr.covered.Has(u) {
			count++
		}
	})
	return count
}

// updateFreq increments freq[v] for every currently-uncovered vertex.
func (sr *searcher) updateFreq() {
	for v := 0; v < sr.n; v++ {
		if !sr.covered.Has(v) {
			sr.freq[v]++
		}
	}
}

// increaseAge increments age[v] for every vertex. It runs once per outer
// iteration that takes the infeasible branch; the feasible branch skips it.
func (sr *searcher) increaseAge() {
	for v := 0; v < sr.n; v++ {
		sr.age[v]++
	}
}
