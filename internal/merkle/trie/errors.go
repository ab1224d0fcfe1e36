package trie

import "fmt"

// ErrDuplicateKey is returned when two entries share the same trie key
// (spec §7).
type ErrDuplicateKey struct {
	Key [31]byte
}

func (e *ErrDuplicateKey) Error() string {
	return fmt.Sprintf("trie: duplicate key %x", e.Key)
}

// ErrKeyLength is returned when an entry's key is not exactly 31
// bytes wide (spec §7).
type ErrKeyLength struct {
	Got int
}

func (e *ErrKeyLength) Error() string {
	return fmt.Sprintf("trie: key must be 31 bytes, got %d", e.Got)
}
