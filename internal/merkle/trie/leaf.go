package trie

import "github.com/jamcore/statecodec/internal/crypto"

// encodeLeaf builds the 64-byte leaf node encoding: a 0x00 tag, the
// 31-byte key, and the Blake2b-256 hash of the value (spec §4.4). The
// value itself is never embedded directly; every leaf hashes its
// value first, unlike strawberry's embedded-value optimization for
// short values.
func encodeLeaf(h Hasher, key []byte, value []byte) []byte {
	valueHash := h.Blake2b256(value)
	out := make([]byte, 0, 1+KeyLength+crypto.HashSize)
	out = append(out, leafTag)
	out = append(out, key...)
	out = append(out, valueHash[:]...)
	return out
}

// leafHash returns the node hash of a leaf holding (key, value).
func leafHash(h Hasher, key []byte, value []byte) crypto.Hash {
	return h.Blake2b256(encodeLeaf(h, key, value))
}
