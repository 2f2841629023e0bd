package cbmt

import (
	"fmt"
	"slices"

	"github.com/bits-and-blooms/bitset"
)

// Proof is a self contained multi-item inclusion proof. It owns its index and
// lemma sequences outright and keeps no reference to the tree that produced
// it.
//
// The format is fixed for interoperability:
//
//   - lemmas are the sibling nodes required to recompute the root, in
//     descending node index order;
//   - indices are the node array indices of the proven items, sorted
//     ascending by the item's value under the merger's total order, with
//     equal values remaining in descending index order.
//
// Verification consumes claimed items in exactly the indices order.
type Proof[T any] struct {
	m       Merger[T]
	indices []uint64
	lemmas  []T
}

// NewProof reconstitutes a transported proof from its index and lemma
// sequences, for example after decoding it from a peer. The sequences are
// trusted to be in the proof format order; a misordered or otherwise corrupt
// proof does not verify.
func NewProof[T any](m Merger[T], indices []uint64, lemmas []T) *Proof[T] {
	return &Proof[T]{m: m, indices: indices, lemmas: lemmas}
}

// Indices returns the node array indices of the proven items, in the proof
// format order. The slice is shared with the proof and must not be modified.
func (p *Proof[T]) Indices() []uint64 {
	return p.indices
}

// Lemmas returns the sibling nodes of the proof in descending node index
// order. The slice is shared with the proof and must not be modified.
func (p *Proof[T]) Lemmas() []T {
	return p.lemmas
}

// InclusionProof builds a proof for the items at the given positions (0
// based, in the original list order). Duplicate positions are collapsed; the
// positions form a set.
//
// Lemmas are collected by walking a frontier of known node indices, leaf
// level first in descending index order, toward the root. A node whose
// sibling is also in the frontier needs no lemma, and the two contribute a
// single shared parent, which is how paths that merge at an ancestor avoid
// duplicate siblings. Descending processing order is what makes the adjacency
// check sufficient, and it emits the lemmas directly in the format order.
func (t *Tree[T]) InclusionProof(positions []uint64) (*Proof[T], error) {
	if len(positions) == 0 {
		return nil, ErrEmptyProofInput
	}
	if len(t.nodes) == 0 {
		return nil, ErrEmptyTree
	}

	leafCount := t.LeafCount()

	requested := bitset.New(uint(leafCount))
	for _, pos := range positions {
		if pos >= leafCount {
			return nil, fmt.Errorf("%w: position %d, %d leaves", ErrIndexOutOfRange, pos, leafCount)
		}
		requested.Set(uint(pos))
	}

	// Gather the deduplicated positions in ascending order, then walk them
	// backwards to seed the frontier queue in descending node index order.
	ascending := make([]uint, 0, requested.Count())
	for pos, ok := requested.NextSet(0); ok; pos, ok = requested.NextSet(pos + 1) {
		ascending = append(ascending, pos)
	}

	queue := make([]uint64, 0, len(ascending))
	for i := len(ascending) - 1; i >= 0; i-- {
		queue = append(queue, LeafNodeIndex(leafCount, uint64(ascending[i])))
	}

	var lemmas []T
	for head := 0; head < len(queue); head++ {
		index := queue[head]
		if index == 0 {
			break
		}

		sibling := Sibling(index)
		if head+1 < len(queue) && queue[head+1] == sibling {
			// The sibling subtree is independently covered; consume it and
			// contribute the shared parent only once.
			head++
		} else {
			lemmas = append(lemmas, t.nodes[sibling])
		}

		if parent := Parent(index); parent != 0 {
			queue = append(queue, parent)
		}
	}

	indices := queue[:len(ascending)]

	// The index sequence is a format contract: ascending by item value, and
	// the stable sort leaves equal values in the descending index order
	// established above.
	slices.SortStableFunc(indices, func(a, b uint64) int {
		return t.m.Compare(t.nodes[a], t.nodes[b])
	})

	return &Proof[T]{m: t.m, indices: indices, lemmas: lemmas}, nil
}

// BuildProof builds the tree over leaves and generates an inclusion proof for
// the items at the given positions. Callers proving repeatedly against the
// same list should use [BuildTree] once and call [Tree.InclusionProof] per
// request instead.
func BuildProof[T any](m Merger[T], leaves []T, positions []uint64) (*Proof[T], error) {
	return BuildTree(m, leaves).InclusionProof(positions)
}
