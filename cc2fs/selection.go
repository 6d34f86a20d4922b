package cc2fs

// noVertex is returned by the selectors when no candidate is available,
// standing in for the reference's None.
const noVertex = -1

// pickBest scans candidates in ascending vertex order and returns the one
// with maximal score, breaking ties by lowest age; on an exact tie it keeps
// the first-encountered vertex (stable, matching the reference's
// stable-sort-then-scan behavior).
func (sr *searcher) pickBest(candidates []int) int {
	if len(candidates) == 0 {
		return noVertex
	}
	best := candidates[0]
	for _, v := range candidates[1:] {
		switch {
		case sr.score[v] > sr.score[best]:
			best = v
		case sr.score[v] == sr.score[best] && sr.age[v] < sr.age[best]:
			best = v
		}
	}
	return best
}

// pickHighestScoreInS returns the highest-scoring member of S, optionally
// excluding forbid_list, or noVertex if the candidate pool is empty.
func (sr *searcher) pickHighestScoreInS(useForbidList bool) int {
	sr.updateScoreF()
	candidates := make([]int, 0, sr.s.Count())
	sr.s.Each(func(v int) {
		if useForbidList && sr.forbid.Has(v) {
			return
		}
		candidates = append(candidates, v)
	})
	return sr.pickBest(candidates)
}

// pickInsertionCandidate returns the highest-scoring vertex in
// conf_change \ S, or noVertex if the candidate pool is empty.
func (sr *searcher) pickInsertionCandidate() int {
	sr.updateScoreF()
	candidates := make([]int, 0, sr.confChange.Count())
	sr.confChange.Each(func(v int) {
		if sr.s.Has(v) {
			return
		}
		candidates = append(candidates, v)
	})
	return sr.pickBest(candidates)
}
