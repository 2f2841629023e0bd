package cbmt

// Tree is an immutable CBMT over an ordered list of items. Build one with
// [BuildTree] and retain it when issuing many proofs against the same list;
// there is no caching anywhere in this package, a retained Tree is the only
// way to avoid re-deriving the 2n-1 nodes per proof.
type Tree[T any] struct {
	m     Merger[T]
	nodes []T
}

// BuildRoot computes the CBMT root of leaves without materializing the node
// array. An empty list commits to m.Zero(); a single item commits to itself
// with no merge invoked.
//
// The node array form is never needed for the root alone: pairing the items
// right to left and re-queueing each merged pair reproduces the bottom-up
// array computation while holding at most (n+1)/2 nodes. On an odd count the
// leftmost item has no partner on the bottom level and is promoted to the
// head of the queue.
func BuildRoot[T any](m Merger[T], leaves []T) T {
	if len(leaves) == 0 {
		return m.Zero()
	}

	queue := make([]T, 0, (len(leaves)+1)>>1)

	if len(leaves)&1 == 1 {
		queue = append(queue, leaves[0])
	}
	for i := len(leaves); i >= 2; i -= 2 {
		queue = append(queue, m.Merge(leaves[i-2], leaves[i-1]))
	}

	// The queue was filled right to left, so the front node is always the
	// right child of the pair.
	var head int
	for len(queue)-head > 1 {
		right := queue[head]
		left := queue[head+1]
		head += 2
		queue = append(queue, m.Merge(left, right))
	}
	return queue[head]
}

// BuildTree computes every node of the CBMT over leaves and returns the
// result as a Tree. The computation is identical to [BuildRoot] but the full
// node array is retained for proof generation.
func BuildTree[T any](m Merger[T], leaves []T) *Tree[T] {
	n := len(leaves)
	if n == 0 {
		return &Tree[T]{m: m}
	}

	nodes := make([]T, 2*n-1)
	copy(nodes[n-1:], leaves)

	// Descending order guarantees both children are already final.
	for i := n - 2; i >= 0; i-- {
		nodes[i] = m.Merge(nodes[2*i+1], nodes[2*i+2])
	}
	return &Tree[T]{m: m, nodes: nodes}
}

// Root returns the root committing to the tree's items, or the merger's zero
// value for an empty tree.
func (t *Tree[T]) Root() T {
	if len(t.nodes) == 0 {
		return t.m.Zero()
	}
	return t.nodes[0]
}

// Nodes returns the backing node array: 2n-1 nodes in breadth first order,
// root first, items at [n-1, 2n-2]. The array is shared with the tree and
// must not be modified.
func (t *Tree[T]) Nodes() []T {
	return t.nodes
}

// LeafCount returns the number of items the tree commits to.
func (t *Tree[T]) LeafCount() uint64 {
	return uint64(len(t.nodes)+1) >> 1
}

// Leaf returns the item at the given position in the original list order.
// The position is not range checked.
func (t *Tree[T]) Leaf(position uint64) T {
	return t.nodes[LeafNodeIndex(t.LeafCount(), position)]
}
