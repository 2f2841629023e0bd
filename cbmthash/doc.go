// Package cbmthash provides digest backed item types and mergers for the
// cbmt package.
//
// The plain SHA256 and Blake2b256 mergers hash the simple concatenation
// left||right and are wire compatible with the nervosnetwork merkle-cbt
// conventions (CKB pairs its CBMT with blake2b-256). The domain separated
// variants prefix leaf and node hashes with the RFC 6962 0x00/0x01 bytes,
// which defends against leaf/node confusion when leaves are themselves
// hashes of attacker supplied data.
package cbmthash
