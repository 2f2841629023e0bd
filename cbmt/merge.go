package cbmt

// Merger supplies the three item capabilities the tree and proof primitives
// require. Implementations must be stateless or safe for concurrent use; the
// same Merger value is shared by every operation on a Tree or Proof built
// with it.
type Merger[T any] interface {
	// Merge derives a parent node from its two children. Left/right order is
	// significant and is always preserved by the callers; Merge is not
	// required to be commutative.
	Merge(left, right T) T

	// Compare is a total order over items, returning <0, 0 or >0 in the
	// manner of bytes.Compare. It is used only to order the indices of a
	// multi-item proof and to decide root equality during verification.
	Compare(a, b T) int

	// Zero returns the item used as the root of a tree with no items.
	Zero() T
}
