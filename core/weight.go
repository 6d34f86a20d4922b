// File: weight.go
// Role: vertex-weight accessors and the Compile step that turns a
// validated named Graph into the dense wgraph.Graph the search core
// runs over, using the parser's name->index table.
package core

import (
	"errors"

	"github.com/katalvlaran/mwds/wgraph"
)

// ErrMissingWeight indicates Compile was asked to compile a vertex that
// never had SetWeight called on it.
var ErrMissingWeight = errors.New("core: vertex has no weight assigned")

const weightKey = "weight"

// SetWeight assigns v's dominating-set weight. w must be positive; callers
// (ioshell.Parse) are responsible for rejecting non-positive input before
// calling this, since the error here cannot report which name failed.
func (g *Graph) SetWeight(id string, w int64) error {
	g.muVert.Lock()
	defer g.muVert.Unlock()
	vx, ok := g.vertices[id]
	if !ok {
		return ErrVertexNotFound
	}
	vx.Metadata[weightKey] = w
	return nil
}

// Weight returns the weight previously assigned to id via SetWeight.
func (g *Graph) Weight(id string) (int64, bool) {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	vx, ok := g.vertices[id]
	if !ok {
		return 0, false
	}
	w, ok := vx.Metadata[weightKey].(int64)
	return w, ok
}

// Compile converts g into a dense wgraph.Graph, preserving g.Vertices()'s
// insertion order as the dense index assignment, plus the index->name
// table callers need to translate wgraph results back to external names.
//
// Every declared vertex must carry a weight (via SetWeight) before Compile
// is called; a missing weight is an input-validation bug, not a runtime
// condition this package recovers from.
func (g *Graph) Compile() (*wgraph.Graph, []string, error) {
	names := g.Vertices()
	n := len(names)
	weights := make([]int64, n)
	index := make(map[string]int, n)
	for i, name := range names {
		w, ok := g.Weight(name)
		if !ok {
			return nil, nil, ErrMissingWeight
		}
		weights[i] = w
		index[name] = i
	}

	seen := make(map[[2]int]struct{})
	var edges [][2]int
	for _, name := range names {
		u := index[name]
		for _, nbr := range g.Neighbors(name) {
			v := index[nbr]
			key := [2]int{u, v}
			if key[0] > key[1] {
				key[0], key[1] = key[1], key[0]
			}
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}
			edges = append(edges, [2]int{u, v})
		}
	}

	wg, err := wgraph.Build(n, weights, edges)
	if err != nil {
		return nil, nil, err
	}
	return wg, names, nil
}
