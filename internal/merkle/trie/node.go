// Package trie computes the 32-byte root of a binary Merkle Patricia
// trie over an opaque key-value set (spec §4.4). It is deliberately
// generic: it knows nothing about state discriminators or field
// shapes, only 31-byte keys and byte-string values, mirroring how
// strawberry's internal/merkle/trie package sits below its state
// layer rather than inside it.
package trie

import "github.com/jamcore/statecodec/internal/crypto"

// KeyLength is the fixed width every trie key must have (spec §3.3).
const KeyLength = 31

// Hasher is the narrow crypto dependency the trie needs: a single
// collision-resistant hash function. Any type satisfying it — in
// particular crypto.Default — can drive root computation, so the
// trie's output depends only on this function, never on any other
// primitive (spec §4.5, property P7).
type Hasher interface {
	Blake2b256(data []byte) crypto.Hash
}

// Entry is one key-value pair to be inserted into the trie.
type Entry struct {
	Key   []byte
	Value []byte
}

const (
	leafTag   = 0x00
	branchTag = 0x01
)

// getBit reads bit i of key, numbering bits MSB-first starting at 0
// (spec §4.4: keys are split from the most significant bit down).
func getBit(key []byte, i int) bool {
	byteIdx := i / 8
	bitIdx := 7 - (i % 8)
	return key[byteIdx]&(1<<uint(bitIdx)) != 0
}
