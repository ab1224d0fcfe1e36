// Package statekey builds the 31-byte trie keys the state assembler
// derives from a one-byte discriminator (spec §3.2, §6.1). Grounded on
// strawberry's internal/state/serialization/statekey.NewBasic; this
// core only ever needs the single-arity constructor since it has no
// service-account dictionary.
package statekey

// StateKey is a 31-byte opaque trie key (spec §3.3).
type StateKey [31]byte

// New builds the trie key for a top-level state field: the
// discriminator byte followed by 30 zero bytes.
func New(discriminator byte) StateKey {
	var k StateKey
	k[0] = discriminator
	return k
}
