package trie

import "github.com/jamcore/statecodec/internal/crypto"

// Root computes the 32-byte state root over entries (spec §4.4). An
// empty entry set roots to 32 zero bytes without any hashing.
// Duplicate keys and keys not exactly KeyLength bytes are rejected,
// since the recursive split below assumes both.
func Root(h Hasher, entries []Entry) (crypto.Hash, error) {
	if err := validate(entries); err != nil {
		return crypto.Hash{}, err
	}
	if len(entries) == 0 {
		return crypto.Hash{}, nil
	}
	return merklize(h, entries, 0), nil
}

func validate(entries []Entry) error {
	seen := make(map[string]bool, len(entries))
	for _, e := range entries {
		if len(e.Key) != KeyLength {
			return &ErrKeyLength{Got: len(e.Key)}
		}
		k := string(e.Key)
		if seen[k] {
			var key [KeyLength]byte
			copy(key[:], e.Key)
			return &ErrDuplicateKey{Key: key}
		}
		seen[k] = true
	}
	return nil
}

// merklize recursively computes the subtrie root over entries, all of
// which share the same first `depth` key bits (spec §4.4). A single
// remaining entry becomes a leaf. More than one is split by the bit at
// depth; as long as every entry agrees on that bit, the split is
// degenerate (one side empty) and merklize recurses straight to
// depth+1 without emitting a branch node, since a branch's precondition
// is that both sides are non-empty. Only once entries actually diverge
// does a branch(left, right) get emitted.
func merklize(h Hasher, entries []Entry, depth int) crypto.Hash {
	if len(entries) == 1 {
		return leafHash(h, entries[0].Key, entries[0].Value)
	}

	var left, right []Entry
	for _, e := range entries {
		if getBit(e.Key, depth) {
			right = append(right, e)
		} else {
			left = append(left, e)
		}
	}

	if len(left) == 0 {
		return merklize(h, right, depth+1)
	}
	if len(right) == 0 {
		return merklize(h, left, depth+1)
	}

	leftHash := merklize(h, left, depth+1)
	rightHash := merklize(h, right, depth+1)
	return branchHash(h, leftHash, rightHash)
}
