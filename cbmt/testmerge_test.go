package cbmt

// Test fixtures for the tree and proof tests.
//
// deltaMerger is the canonical toy merger from the nervosnetwork merkle-cbt
// test suite: parent = right - left. It is deliberately non commutative so
// that any child order mistake changes the result, and the known answer
// trees below are taken directly from that suite so the layouts stay wire
// compatible.
//
// Note that right - left is linear in its inputs, so it cannot stand in for
// a digest in tests about tamper detection: distinct claims can reconstruct
// coincidentally equal roots. Those tests use digest items, see
// proofroundtrip_test.go.

type deltaMerger struct{}

func (deltaMerger) Merge(left, right int32) int32 { return right - left }

func (deltaMerger) Compare(a, b int32) int {
	if a < b {
		return -1
	}
	if a > b {
		return 1
	}
	return 0
}

func (deltaMerger) Zero() int32 { return 0 }

// countingMerger wraps deltaMerger to observe how many merges a build
// performs.
type countingMerger struct {
	deltaMerger
	merges int
}

func (c *countingMerger) Merge(left, right int32) int32 {
	c.merges++
	return c.deltaMerger.Merge(left, right)
}

// The canonical five and six leaf trees, node array indices:
//
//	five leaves                six leaves
//	        0                          0
//	     /     \                    /     \
//	    1       2                  1       2
//	   / \     / \               /   \    / \
//	  3   4   5   6             3     4  5   6
//	 / \                       / \   / \
//	7   8                     7   8 9  10
//
//	items at 4..8              items at 5..10
var (
	fiveLeaves = []int32{2, 3, 5, 7, 11}
	fiveNodes  = []int32{4, -2, 2, 4, 2, 3, 5, 7, 11}

	sixLeaves = []int32{2, 3, 5, 7, 11, 13}
	sixNodes  = []int32{1, 0, 1, 2, 2, 2, 3, 5, 7, 11, 13}
)
