package wgraph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mwds/wgraph"
)

func TestBuild_Validation(t *testing.T) {
	_, err := wgraph.Build(-1, nil, nil)
	assert.ErrorIs(t, err, wgraph.ErrNegativeVertexCount)

	_, err = wgraph.Build(2, []int64{1}, nil)
	assert.ErrorIs(t, err, wgraph.ErrWeightCountMismatch)

	_, err = wgraph.Build(2, []int64{1, 0}, nil)
	assert.ErrorIs(t, err, wgraph.ErrNonPositiveWeight)

	_, err = wgraph.Build(2, []int64{1, 1}, [][2]int{{0, 2}})
	assert.ErrorIs(t, err, wgraph.ErrEdgeOutOfRange)

	_, err = wgraph.Build(2, []int64{1, 1}, [][2]int{{0, 0}})
	assert.ErrorIs(t, err, wgraph.ErrSelfLoop)
}

func TestBuild_DuplicateEdgesIdempotent(t *testing.T) {
	g, err := wgraph.Build(2, []int64{1, 1}, [][2]int{{0, 1}, {1, 0}, {0, 1}})
	require.NoError(t, err)
	assert.Equal(t, 1, g.Degree(0))
	assert.Equal(t, 1, g.Degree(1))
}

// path a-b-c
func buildPath(t *testing.T) *wgraph.Graph {
	t.Helper()
	g, err := wgraph.Build(3, []int64{10, 1, 10}, [][2]int{{0, 1}, {1, 2}})
	require.NoError(t, err)
	return g
}

func TestN1(t *testing.T) {
	g := buildPath(t)
	assert.Equal(t, []int{1}, g.N1(0).Slice())
	assert.Equal(t, []int{0, 2}, g.N1(1).Slice())
	assert.Equal(t, []int{1}, g.N1(2).Slice())
}

func TestN1OfSet(t *testing.T) {
	g := buildPath(t)
	a := g.N1(0).Clone()
	a.Add(2)
	union := g.N1OfSet(a)
	assert.Equal(t, []int{0, 1, 2}, union.Slice())
}

func TestN2(t *testing.T) {
	g := buildPath(t)
	// N2(a) = {b} U N1(b) \ {a} = {b,c}
	assert.Equal(t, []int{1, 2}, g.N2(0).Slice())
	// N2(b) = {a,c} U N1(a) U N1(c) \ {b} = {a,c}
	assert.Equal(t, []int{0, 2}, g.N2(1).Slice())
}

func TestN2_IsolatedVertex(t *testing.T) {
	g, err := wgraph.Build(1, []int64{5}, nil)
	require.NoError(t, err)
	assert.Equal(t, 0, g.Degree(0))
	assert.Empty(t, g.N2(0).Slice())
}

func TestWeightAndDegree(t *testing.T) {
	g := buildPath(t)
	assert.Equal(t, int64(10), g.Weight(0))
	assert.Equal(t, int64(1), g.Weight(1))
	assert.Equal(t, 2, g.Degree(1))
	assert.Equal(t, 3, g.N())
}
