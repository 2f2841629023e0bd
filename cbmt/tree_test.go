package cbmt

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildTreeEmpty(t *testing.T) {
	tree := BuildTree[int32](deltaMerger{}, nil)
	assert.Empty(t, tree.Nodes())
	assert.Equal(t, uint64(0), tree.LeafCount())
	assert.Equal(t, int32(0), tree.Root())
}

func TestBuildTreeOne(t *testing.T) {
	m := &countingMerger{}
	tree := BuildTree[int32](m, []int32{1})
	assert.Equal(t, []int32{1}, tree.Nodes())
	assert.Equal(t, int32(1), tree.Root())
	// a single item commits to itself, no merge is invoked
	assert.Zero(t, m.merges)

	assert.Equal(t, int32(1), BuildRoot[int32](m, []int32{1}))
	assert.Zero(t, m.merges)
}

func TestBuildTreeTwo(t *testing.T) {
	tree := BuildTree[int32](deltaMerger{}, []int32{1, 2})
	assert.Equal(t, []int32{1, 1, 2}, tree.Nodes())
}

func TestBuildTreeFive(t *testing.T) {
	tree := BuildTree[int32](deltaMerger{}, fiveLeaves)
	assert.Equal(t, fiveNodes, tree.Nodes())
	assert.Equal(t, int32(4), tree.Root())
}

func TestBuildTreeSix(t *testing.T) {
	tree := BuildTree[int32](deltaMerger{}, sixLeaves)
	assert.Equal(t, sixNodes, tree.Nodes())
	assert.Equal(t, int32(1), tree.Root())
}

func TestBuildRootDirectly(t *testing.T) {
	assert.Equal(t, int32(0), BuildRoot[int32](deltaMerger{}, nil))
	assert.Equal(t, int32(4), BuildRoot[int32](deltaMerger{}, fiveLeaves))
	assert.Equal(t, int32(1), BuildRoot[int32](deltaMerger{}, sixLeaves))
}

// TestBuildRootMatchesTreeRoot exercises every leaf count up to 257 with
// generated leaves, checking the queue based BuildRoot against the node array
// construction, and that both are deterministic over a rebuild.
func TestBuildRootMatchesTreeRoot(t *testing.T) {
	rng := rand.New(rand.NewSource(20191116))

	for n := 0; n <= 257; n++ {
		leaves := make([]int32, n)
		for i := range leaves {
			leaves[i] = rng.Int31()
		}

		root := BuildRoot[int32](deltaMerger{}, leaves)
		tree := BuildTree[int32](deltaMerger{}, leaves)
		require.Equal(t, tree.Root(), root, "leaf count %d", n)
		require.Equal(t, root, BuildRoot[int32](deltaMerger{}, leaves), "leaf count %d", n)

		if n > 0 {
			require.Len(t, tree.Nodes(), 2*n-1)
		}
	}
}

func TestTreeLeafAccessors(t *testing.T) {
	tree := BuildTree[int32](deltaMerger{}, sixLeaves)
	require.Equal(t, uint64(len(sixLeaves)), tree.LeafCount())
	for pos, want := range sixLeaves {
		assert.Equal(t, want, tree.Leaf(uint64(pos)))
	}
}
