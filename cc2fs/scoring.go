package cc2fs

import "github.com/katalvlaran/mwds/bitset"

// c1 returns (N1(v) ∪ {v}) \ N1(S): the vertices that would become covered
// by inserting v. Only meaningful for v ∉ S.
func (sr *searcher) c1(v int) bitset.Set {
	set := sr.g.N1(v).Clone()
	set.Add(v)
	n1S := sr.g.N1OfSet(sr.s)
	set.Each(func(u int) {
		if n1S.Has(u) {
			set.Remove(u)
		}
	})
	return set
}

// c2 returns (N1(v) ∪ {v}) \ N1(S \ {v}): the vertices that would become
// uncovered if v were evicted from S. Only meaningful for v ∈ S.
func (sr *searcher) c2(v int) bitset.Set {
	sMinusV := sr.s.Clone()
	sMinusV.Remove(v)
	n1SMinusV := sr.g.N1OfSet(sMinusV)

	set := sr.g.N1(v).Clone()
	set.Add(v)
	set.Each(func(u int) {
		if n1SMinusV.Has(u) {
			set.Remove(u)
		}
	})
	return set
}

// updateScoreF recomputes score_f for every vertex from the current S and
// freq. Must be called before each selection (pickHighestScoreInS,
// pickInsertionCandidate).
func (sr *searcher) updateScoreF() {
	for v := 0; v < sr.n; v++ {
		w := float64(sr.g.Weight(v))
		if sr.s.Has(v) {
			sr.score[v] = -sr.sumFreq(sr.c2(v)) / w
		} else {
			sr.score[v] = sr.sumFreq(sr.c1(v)) / w
		}
	}
}

func (sr *searcher) sumFreq(set bitset.Set) float64 {
	var total int64
	set.Each(func(u int) { total += sr.freq[u] })
	return float64(total)
}
