package cc2fs_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mwds/cc2fs"
	"github.com/katalvlaran/mwds/wgraph"
)

// budget gives every scenario ample wall-clock time to converge; CC2FS is
// anytime, so a generous deadline only helps it settle on the optimum.
func budget() time.Time { return time.Now().Add(2 * time.Second) }

func TestScenario1_SingleVertex(t *testing.T) {
	g, err := wgraph.Build(1, []int64{5}, nil)
	require.NoError(t, err)
	res, err := cc2fs.Run(g, budget())
	require.NoError(t, err)
	assert.Equal(t, []int{0}, res.Cover)
	assert.Equal(t, int64(5), res.Weight)
}

func TestScenario2_TwoIsolatedVertices(t *testing.T) {
	g, err := wgraph.Build(2, []int64{3, 7}, nil)
	require.NoError(t, err)
	res, err := cc2fs.Run(g, budget())
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1}, res.Cover)
	assert.Equal(t, int64(10), res.Weight)
}

func TestScenario3_Path(t *testing.T) {
	// a-b-c, weights a:10 b:1 c:10
	g, err := wgraph.Build(3, []int64{10, 1, 10}, [][2]int{{0, 1}, {1, 2}})
	require.NoError(t, err)
	res, err := cc2fs.Run(g, budget())
	require.NoError(t, err)
	assert.Equal(t, []int{1}, res.Cover)
	assert.Equal(t, int64(1), res.Weight)
	assert.Greater(t, res.Iterations, int64(0))
}

func TestScenario4_Star(t *testing.T) {
	// center c=0, leaves l1..l4 = 1..4
	weights := []int64{5, 100, 100, 100, 100}
	edges := [][2]int{{0, 1}, {0, 2}, {0, 3}, {0, 4}}
	g, err := wgraph.Build(5, weights, edges)
	require.NoError(t, err)
	res, err := cc2fs.Run(g, budget())
	require.NoError(t, err)
	assert.Equal(t, []int{0}, res.Cover)
	assert.Equal(t, int64(5), res.Weight)
}

func TestScenario5_K4(t *testing.T) {
	// K4 on a,b,c,d with weights a:1 b:9 c:9 d:9
	weights := []int64{1, 9, 9, 9}
	edges := [][2]int{{0, 1}, {0, 2}, {0, 3}, {1, 2}, {1, 3}, {2, 3}}
	g, err := wgraph.Build(4, weights, edges)
	require.NoError(t, err)
	res, err := cc2fs.Run(g, budget())
	require.NoError(t, err)
	assert.Equal(t, []int{0}, res.Cover)
	assert.Equal(t, int64(1), res.Weight)
}

func TestScenario6_TwoDisjointEdges(t *testing.T) {
	// a-b, c-d, weights a:1 b:2 c:3 d:4
	weights := []int64{1, 2, 3, 4}
	edges := [][2]int{{0, 1}, {2, 3}}
	g, err := wgraph.Build(4, weights, edges)
	require.NoError(t, err)
	res, err := cc2fs.Run(g, budget())
	require.NoError(t, err)
	// Any single-vertex cover per component; weight must be 1 (min of a,b) + 3 (min of c,d) = 4.
	assert.Equal(t, int64(4), res.Weight)
	assert.Len(t, res.Cover, 2)
	assert.True(t, res.Cover[0] == 0 || res.Cover[0] == 1)
	assert.True(t, res.Cover[1] == 2 || res.Cover[1] == 3)
}

func TestRun_FeasibilityAndCoverageIdentity(t *testing.T) {
	weights := []int64{1, 9, 9, 9}
	edges := [][2]int{{0, 1}, {0, 2}, {0, 3}, {1, 2}, {1, 3}, {2, 3}}
	g, err := wgraph.Build(4, weights, edges)
	require.NoError(t, err)
	res, err := cc2fs.Run(g, budget())
	require.NoError(t, err)

	dominated := make([]bool, 4)
	inCover := make(map[int]bool, len(res.Cover))
	for _, v := range res.Cover {
		inCover[v] = true
		dominated[v] = true
	}
	for _, v := range res.Cover {
		neighbors := g.N1(v)
		neighbors.Each(func(u int) { dominated[u] = true })
	}
	for v := 0; v < 4; v++ {
		assert.True(t, dominated[v], "vertex %d must be dominated", v)
	}
}
