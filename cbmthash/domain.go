package cbmthash

import (
	"crypto/sha256"

	"golang.org/x/crypto/blake2b"
)

// SHA256DomainMerger merges digests as SHA256(0x01 || left || right), the
// RFC 6962 interior node form. Pair it with [SHA256DomainLeaf] so that leaf
// and node preimages can never collide.
type SHA256DomainMerger struct{}

func (SHA256DomainMerger) Merge(left, right Digest) Digest {
	var buf [1 + 2*DigestBytes]byte
	buf[0] = NodePrefix
	copy(buf[1:1+DigestBytes], left[:])
	copy(buf[1+DigestBytes:], right[:])
	return sha256.Sum256(buf[:])
}

func (SHA256DomainMerger) Compare(a, b Digest) int { return CompareDigests(a, b) }

func (SHA256DomainMerger) Zero() Digest { return Digest{} }

// SHA256DomainLeaf hashes raw leaf content as SHA256(0x00 || data), the
// RFC 6962 leaf form.
func SHA256DomainLeaf(data []byte) Digest {
	h := sha256.New()
	h.Write([]byte{LeafPrefix})
	h.Write(data)
	var d Digest
	h.Sum(d[:0])
	return d
}

// Blake2b256DomainMerger merges digests as BLAKE2b-256(0x01 || left ||
// right). Pair it with [Blake2b256DomainLeaf].
type Blake2b256DomainMerger struct{}

func (Blake2b256DomainMerger) Merge(left, right Digest) Digest {
	var buf [1 + 2*DigestBytes]byte
	buf[0] = NodePrefix
	copy(buf[1:1+DigestBytes], left[:])
	copy(buf[1+DigestBytes:], right[:])
	return blake2b.Sum256(buf[:])
}

func (Blake2b256DomainMerger) Compare(a, b Digest) int { return CompareDigests(a, b) }

func (Blake2b256DomainMerger) Zero() Digest { return Digest{} }

// Blake2b256DomainLeaf hashes raw leaf content as BLAKE2b-256(0x00 || data).
func Blake2b256DomainLeaf(data []byte) Digest {
	h, _ := blake2b.New256(nil)
	h.Write([]byte{LeafPrefix})
	h.Write(data)
	var d Digest
	h.Sum(d[:0])
	return d
}
