package trie

import "github.com/jamcore/statecodec/internal/crypto"

// encodeBranch builds the 65-byte branch node encoding: a 0x01 tag
// followed by the left and right child hashes in full, with no
// truncation (spec §4.4). strawberry's real GP trie packs the left
// hash's top bit into the tag byte to save space; this core keeps the
// simpler untruncated form the spec calls for.
func encodeBranch(left, right crypto.Hash) []byte {
	out := make([]byte, 0, 1+crypto.HashSize*2)
	out = append(out, branchTag)
	out = append(out, left[:]...)
	out = append(out, right[:]...)
	return out
}

func branchHash(h Hasher, left, right crypto.Hash) crypto.Hash {
	return h.Blake2b256(encodeBranch(left, right))
}
