package cbmt

import "fmt"

// RetrieveLeaves selects, from the full item list a tree was built over, the
// items a proof commits to, in the proof's index order. The result is
// suitable to pass directly to [Proof.CalculateRoot] or [Proof.Verify].
//
// Every proof index must lie in the leaf range [n-1, 2n-2] for the given
// list; a proof carried over from a tree of a different size does not
// resolve.
func RetrieveLeaves[T any](proof *Proof[T], leaves []T) ([]T, error) {
	if len(leaves) == 0 {
		return nil, ErrEmptyTree
	}
	if len(proof.indices) == 0 {
		return nil, ErrEmptyProofInput
	}

	leafCount := uint64(len(leaves))

	retrieved := make([]T, len(proof.indices))
	for i, index := range proof.indices {
		if index < leafCount-1 || index > 2*leafCount-2 {
			return nil, fmt.Errorf(
				"%w: node index %d outside leaf range [%d, %d]",
				ErrIndexOutOfRange, index, leafCount-1, 2*leafCount-2)
		}
		retrieved[i] = leaves[LeafPosition(leafCount, index)]
	}
	return retrieved, nil
}
