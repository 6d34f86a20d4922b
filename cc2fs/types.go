package cc2fs

import (
	"math"

	"github.com/katalvlaran/mwds/bitset"
	"github.com/katalvlaran/mwds/wgraph"
)

// Result is the outcome of a search: the best dominating set found, its
// total weight, and how many outer loop iterations the search ran.
type Result struct {
	// Cover holds the vertex indices of S_star, in ascending order.
	Cover []int
	// Weight is the sum of vertex_weight over Cover.
	Weight int64
	// Iterations counts how many times the main loop's body executed.
	Iterations int64
}

// searcher owns every piece of mutable search state. It is never shared:
// one searcher per Run call, never reused across invocations (there is no
// incremental recomputation across separate invocations).
type searcher struct {
	g     *wgraph.Graph
	clock Clock
	n     int

	s       bitset.Set // current cover S
	sStar   bitset.Set // best cover found, S_star
	sStarWt int64      // weight of S_star; sentinel noWeight means "not yet recorded"
	covered bitset.Set // S ∪ N1(S)

	confChange bitset.Set // vertices eligible for (re)insertion
	forbid     bitset.Set // vertices banned from removal this pass

	freq  []int64
	score []float64
	age   []int
}

// noWeight stands in for the reference's +infinity S_star_weight sentinel.
const noWeight int64 = math.MaxInt64

func newSearcher(g *wgraph.Graph, clock Clock) *searcher {
	n := g.N()
	sr := &searcher{
		g:          g,
		clock:      clock,
		n:          n,
		s:          bitset.New(n),
		sStar:      bitset.New(n),
		sStarWt:    noWeight,
		covered:    bitset.New(n),
		confChange: bitset.New(n),
		forbid:     bitset.New(n),
		freq:       make([]int64, n),
		score:      make([]float64, n),
		age:        make([]int, n),
	}
	for v := 0; v < n; v++ {
		sr.freq[v] = 1
	}
	return sr
}

// weightOf sums vertex_weight over the members of set.
func (sr *searcher) weightOf(set bitset.Set) int64 {
	var total int64
	set.Each(func(v int) { total += sr.g.Weight(v) })
	return total
}
