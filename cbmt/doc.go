package cbmt

/*

# Complete Binary Merkle Tree primitives

This package commits to an ordered, static list of items with a Complete
Binary Merkle Tree (CBMT), and produces and verifies compact multi-item
inclusion proofs against the resulting root.

It follows the same "functional primitives" style as `go-merklelog/mmr`:

- small, composable functions
- index/position arithmetic where possible
- a burden of knowledge on the caller for hot paths
- opinionated interfaces (Tree, Proof) on top, with appropriate safety rails

## Why a flat array

A CBMT over n items is a full binary tree (every internal node has exactly two
children) and is stored as a dense array of 2n-1 nodes in breadth first order,
root at index 0. The items occupy indices [n-1, 2n-2] in their original order;
internal nodes occupy [0, n-2].

For any node index i of that array:

	Parent(i)  = (i-1)/2         (i > 0)
	Sibling(i) = ((i+1)^1)-1     (i > 0)
	children   = 2i+1, 2i+2      (both in-array whenever i <= n-2)

These hold uniformly for every n >= 1, no matter where the last level is
irregular. That is the whole trick: filling the array from index n-2 down to 0
computes every internal node in O(n) merges with no branching on tree shape,
where a top down construction would need recursion bookkeeping for the
irregular bottom level.

So for 6 items a-f the array indices lay out as

	          0
	       /     \
	      1       2
	    /   \    / \
	   3     4  5   6
	  / \   / \
	 7   8 9  10

with the items stored at indices 5..10 (a at 5, b at 6, c..f at 7..10).

## The item contract

The tree is generic over the item type. A [Merger] supplies the only three
capabilities the package needs: an order sensitive merge to derive a parent
from its two children, a total order used for the proof index ordering
contract, and a zero value used as the root of the empty tree. Collision
resistance of the merge is the caller's responsibility; see the cbmthash
package for digest backed implementations.

## Proof format

A proof carries the sibling nodes ("lemmas") needed to recompute the root, in
descending node index order, and the node indices being proven, sorted
ascending by the committed item's value (not by position). Both orderings are
interoperability contracts inherited from the nervosnetwork merkle-cbt format,
which CKB uses for transaction commitment proofs. Trees are rebuilt from
scratch whenever the item list changes; nothing here supports incremental
mutation.

*/
