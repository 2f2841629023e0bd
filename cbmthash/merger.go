package cbmthash

import (
	"crypto/sha256"

	"golang.org/x/crypto/blake2b"
)

// RFC 6962 style domain separation prefixes used by the *DomainMerger
// variants and the *DomainLeaf helpers.
const (
	LeafPrefix = byte(0x00)
	NodePrefix = byte(0x01)
)

// SHA256Merger merges digests as SHA256(left || right), the plain merkle-cbt
// convention. It implements cbmt.Merger[Digest] and is safe for concurrent
// use.
type SHA256Merger struct{}

func (SHA256Merger) Merge(left, right Digest) Digest {
	var buf [2 * DigestBytes]byte
	copy(buf[:DigestBytes], left[:])
	copy(buf[DigestBytes:], right[:])
	return sha256.Sum256(buf[:])
}

func (SHA256Merger) Compare(a, b Digest) int { return CompareDigests(a, b) }

func (SHA256Merger) Zero() Digest { return Digest{} }

// SHA256Leaf hashes raw leaf content to the digest item committed by a tree
// built with [SHA256Merger].
func SHA256Leaf(data []byte) Digest {
	return sha256.Sum256(data)
}

// Blake2b256Merger merges digests as BLAKE2b-256(left || right). CKB commits
// transaction batches with exactly this pairing. It implements
// cbmt.Merger[Digest] and is safe for concurrent use.
type Blake2b256Merger struct{}

func (Blake2b256Merger) Merge(left, right Digest) Digest {
	var buf [2 * DigestBytes]byte
	copy(buf[:DigestBytes], left[:])
	copy(buf[DigestBytes:], right[:])
	return blake2b.Sum256(buf[:])
}

func (Blake2b256Merger) Compare(a, b Digest) int { return CompareDigests(a, b) }

func (Blake2b256Merger) Zero() Digest { return Digest{} }

// Blake2b256Leaf hashes raw leaf content to the digest item committed by a
// tree built with [Blake2b256Merger].
func Blake2b256Leaf(data []byte) Digest {
	return blake2b.Sum256(data)
}
