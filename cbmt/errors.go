package cbmt

import "errors"

var (
	// ErrEmptyProofInput is returned when a proof is requested for zero item
	// positions.
	ErrEmptyProofInput = errors.New("at least one leaf position is required to build a proof")

	// ErrIndexOutOfRange is returned when a requested position is not less
	// than the item count, or a transported proof carries a node index
	// outside the leaf range of the tree it is applied to.
	ErrIndexOutOfRange = errors.New("leaf position out of range for the tree")

	// ErrEmptyTree is returned when a proof is requested against a tree with
	// no items.
	ErrEmptyTree = errors.New("cannot prove inclusion in an empty tree")

	// ErrProofInconsistent is returned by CalculateRoot when the supplied
	// leaves and the proof's indices and lemmas do not collapse to a single
	// root: wrong leaf count, an entry that cannot be paired at its expected
	// point, or leftover unconsumed lemmas.
	ErrProofInconsistent = errors.New("proof is inconsistent with the supplied leaves")
)
