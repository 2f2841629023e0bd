package cbmthash

import (
	"bytes"
	"encoding/hex"
)

// DigestBytes is the size of every digest item, for both hash families.
const DigestBytes = 32

// Digest is a 32 byte hash value used as the CBMT item type.
type Digest [DigestBytes]byte

// String renders the digest as lowercase hex.
func (d Digest) String() string {
	return hex.EncodeToString(d[:])
}

// CompareDigests is the total order shared by all digest mergers:
// lexicographic byte order, exactly bytes.Compare over the raw digests.
func CompareDigests(a, b Digest) int {
	return bytes.Compare(a[:], b[:])
}
