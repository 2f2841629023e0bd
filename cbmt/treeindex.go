package cbmt

// Navigation primitives for the flat CBMT node array. As with the mmr
// package, these are deliberately unguarded: calling Parent or Sibling on the
// root index 0 yields nonsense rather than an error, and the caller is
// expected to know better. The Tree and Proof types provide the safety rails.

// Parent returns the node index of the parent of i. Valid for i > 0.
func Parent(i uint64) uint64 {
	return (i - 1) >> 1
}

// Sibling returns the node index of the other child of i's parent. Valid for
// i > 0.
//
// Converting to the 1 based position makes siblings differ only in their
// lowest bit, so the xor form needs no left/right branch:
//
//	Sibling(i) = ((i+1) ^ 1) - 1
func Sibling(i uint64) uint64 {
	return ((i + 1) ^ 1) - 1
}

// IsLeft reports whether node i is the left child of its parent. The root is
// nobody's child; IsLeft(0) is false.
func IsLeft(i uint64) bool {
	return i&1 == 1
}

// LeftChild returns the node index of the left child of i. The result is only
// in-array for internal nodes, i <= leafCount-2.
func LeftChild(i uint64) uint64 {
	return (i << 1) + 1
}

// RightChild returns the node index of the right child of i. The result is
// only in-array for internal nodes, i <= leafCount-2.
func RightChild(i uint64) uint64 {
	return (i << 1) + 2
}

// LeafNodeIndex converts an item position (0 based, in the original list
// order) to its node array index for a tree over leafCount items.
func LeafNodeIndex(leafCount, position uint64) uint64 {
	return position + leafCount - 1
}

// LeafPosition converts a node array index in the leaf range [leafCount-1,
// 2*leafCount-2] back to the item position it commits.
func LeafPosition(leafCount, nodeIndex uint64) uint64 {
	return nodeIndex + 1 - leafCount
}
