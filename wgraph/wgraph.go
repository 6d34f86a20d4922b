// Package wgraph provides the immutable vertex-weighted undirected graph
// that cc2fs searches over.
//
// Vertices are dense integer indices in [0,n). The Graph is built once via
// Build and never mutated afterward; every query method is pure and safe for
// concurrent readers, though cc2fs itself never needs that because the
// search loop is single-threaded (see cc2fs package doc).
//
// Neighborhoods are returned as bitset.Set rather than []int or map[int]bool:
// cc2fs recomputes N1-of-a-set unions on most outer iterations, and a dense
// word-vector union is materially cheaper than repeated map merges at the
// graph sizes this search targets (n up to a few hundred).
package wgraph

import (
	"errors"

	"github.com/katalvlaran/mwds/bitset"
)

// Sentinel errors for Build. The core itself never returns an error once a
// Graph exists — only construction can fail on malformed input.
var (
	// ErrNegativeVertexCount indicates n < 0.
	ErrNegativeVertexCount = errors.New("wgraph: negative vertex count")

	// ErrWeightCountMismatch indicates len(weights) != n.
	ErrWeightCountMismatch = errors.New("wgraph: weights length does not match vertex count")

	// ErrNonPositiveWeight indicates a weight less than 1; vertex weights must be >= 1.
	ErrNonPositiveWeight = errors.New("wgraph: vertex weight must be >= 1")

	// ErrEdgeOutOfRange indicates an edge endpoint outside [0,n).
	ErrEdgeOutOfRange = errors.New("wgraph: edge endpoint out of range")

	// ErrSelfLoop indicates an edge (v,v); self-loops are not part of this model.
	ErrSelfLoop = errors.New("wgraph: self-loops are not allowed")
)

// Graph is an immutable vertex-weighted undirected graph over [0,n).
type Graph struct {
	n       int
	weights []int64
	adj     []bitset.Set // adj[v] = N1(v), as a dense bit vector over [0,n)
}

// Build constructs a Graph from n vertices, their weights, and an edge list.
// Edges are unordered pairs (u,v), u != v; duplicates are idempotent (adding
// the same edge twice leaves adjacency unchanged, matching the reference
// Python's set-based add_edge).
func Build(n int, weights []int64, edges [][2]int) (*Graph, error) {
	if n < 0 {
		return nil, ErrNegativeVertexCount
	}
	if len(weights) != n {
		return nil, ErrWeightCountMismatch
	}
	for _, w := range weights {
		if w < 1 {
			return nil, ErrNonPositiveWeight
		}
	}

	g := &Graph{
		n:       n,
		weights: append([]int64(nil), weights...),
		adj:     make([]bitset.Set, n),
	}
	for v := 0; v < n; v++ {
		g.adj[v] = bitset.New(n)
	}
	for _, e := range edges {
		u, v := e[0], e[1]
		if u < 0 || u >= n || v < 0 || v >= n {
			return nil, ErrEdgeOutOfRange
		}
		if u == v {
			return nil, ErrSelfLoop
		}
		g.adj[u].Add(v)
		g.adj[v].Add(u)
	}

	return g, nil
}

// N returns the vertex count.
func (g *Graph) N() int { return g.n }

// Weight returns the weight of v.
func (g *Graph) Weight(v int) int64 { return g.weights[v] }

// Degree returns |N1(v)|.
func (g *Graph) Degree(v int) int { return g.adj[v].Count() }

// N1 returns the first neighborhood of v, excluding v itself.
func (g *Graph) N1(v int) bitset.Set {
	return g.adj[v]
}

// N1OfSet returns the union of N1(v) over every v in a, not including a
// itself unless some member is also a neighbor of another member.
func (g *Graph) N1OfSet(a bitset.Set) bitset.Set {
	out := bitset.New(g.n)
	a.Each(func(v int) { out.UnionWith(g.adj[v]) })
	return out
}

// N2 returns the second neighborhood of v: every vertex reachable within two
// hops, excluding v itself.
func (g *Graph) N2(v int) bitset.Set {
	out := bitset.New(g.n)
	g.adj[v].Each(func(u int) {
		out.Add(u)
		out.UnionWith(g.adj[u])
	})
	out.Remove(v)
	return out
}
