package cc2fs

// addToS inserts v into S, resets its age, and extends covered_vertices by
// v and its first neighborhood. O(n/64): one bitset union.
func (sr *searcher) addToS(v int) {
	sr.s.Add(v)
	sr.age[v] = 0
	sr.covered.Add(v)
	sr.covered.UnionWith(sr.g.N1(v))
}

// removeFromS evicts v from S, resets its age, and recomputes
// covered_vertices from scratch as S ∪ N1(S).
//
// Full recomputation (rather than incremental deletion) is mandated by the
// algorithm: a vertex removed from S may still be dominated by another
// member of S, and recomputation is simple and cheap relative to scoring.
func (sr *searcher) removeFromS(v int) {
	sr.s.Remove(v)
	sr.age[v] = 0
	sr.recomputeCovered()
}

// recomputeCovered sets covered_vertices = S ∪ N1(S).
func (sr *searcher) recomputeCovered() {
	sr.covered.CopyFrom(sr.g.N1OfSet(sr.s))
	sr.covered.UnionWith(sr.s)
}

// uncoveredCount returns n - |covered_vertices|.
func (sr *searcher) uncoveredCount() int {
	return sr.n - sr.covered.Count()
}
