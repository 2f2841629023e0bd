package cbmt

import (
	"fmt"
	"slices"
)

type frontierEntry[T any] struct {
	index uint64
	node  T
}

// CalculateRoot reconstructs the root committed by the proof from the claimed
// leaves. The leaves must be supplied in the proof's index order (ascending
// by value, see [Proof]); the pairing of leaves to indices is positional and
// is not re-derived, so a re-ordered claim reconstructs a different root.
//
// The reconstruction replays the same frontier walk as proof generation, with
// lemmas standing in for the sibling subtrees that were not claimed: each
// frontier node is paired with either the adjacent frontier node when that is
// its sibling, or the next unconsumed lemma, merged in child order (left =
// smaller index) and promoted to the parent index. Success requires the
// frontier to collapse to exactly node 0 with every lemma consumed.
func (p *Proof[T]) CalculateRoot(leaves []T) (T, error) {
	var zero T

	if len(leaves) == 0 || len(leaves) != len(p.indices) {
		return zero, fmt.Errorf(
			"%w: %d leaves for %d proven indices", ErrProofInconsistent, len(leaves), len(p.indices))
	}

	queue := make([]frontierEntry[T], 0, len(leaves))
	for i, index := range p.indices {
		queue = append(queue, frontierEntry[T]{index: index, node: leaves[i]})
	}
	// Proof indices are value sorted; the walk needs descending index order.
	slices.SortFunc(queue, func(a, b frontierEntry[T]) int {
		if a.index > b.index {
			return -1
		}
		if a.index < b.index {
			return 1
		}
		return 0
	})

	var nextLemma int
	for head := 0; head < len(queue); head++ {
		e := queue[head]

		if e.index == 0 {
			if nextLemma != len(p.lemmas) || head+1 != len(queue) {
				return zero, fmt.Errorf(
					"%w: %d lemmas and %d frontier nodes left at the root",
					ErrProofInconsistent, len(p.lemmas)-nextLemma, len(queue)-head-1)
			}
			return e.node, nil
		}

		var sibling T
		if head+1 < len(queue) && queue[head+1].index == Sibling(e.index) {
			sibling = queue[head+1].node
			head++
		} else if nextLemma < len(p.lemmas) {
			sibling = p.lemmas[nextLemma]
			nextLemma++
		} else {
			return zero, fmt.Errorf(
				"%w: no sibling available for node %d", ErrProofInconsistent, e.index)
		}

		var parent T
		if IsLeft(e.index) {
			parent = p.m.Merge(e.node, sibling)
		} else {
			parent = p.m.Merge(sibling, e.node)
		}
		queue = append(queue, frontierEntry[T]{index: Parent(e.index), node: parent})
	}

	// Unreachable for well formed indices: every iteration either returns at
	// the root or promotes to a strictly smaller index.
	return zero, fmt.Errorf("%w: frontier exhausted before the root", ErrProofInconsistent)
}

// Verify reports whether the claimed leaves, in the proof's index order,
// reconstruct the claimed root. It returns a verdict only and never an error;
// any structural inconsistency in the proof is a false verdict, which makes
// it safe to expose directly to untrusted proof data.
func (p *Proof[T]) Verify(root T, leaves []T) bool {
	calculated, err := p.CalculateRoot(leaves)
	if err != nil {
		return false
	}
	return p.m.Compare(calculated, root) == 0
}
