package crypto

import (
	"crypto/ed25519"

	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/sha3"
)

// Hash is the fixed-width 32-byte value produced by the state root and
// used as the H256 primitive throughout the codec (spec §3.1).
type Hash [HashSize]byte

// Blake2b256 hashes data with Blake2b-256, the hash function the trie
// (spec §4.4) and the field codecs use everywhere a H256 digest is
// required.
func Blake2b256(data []byte) Hash {
	return blake2b.Sum256(data)
}

// Keccak256 hashes data with Keccak-256. Nothing in this core calls it;
// it exists purely as part of the crypto adapter's dependency surface
// (spec §4.5, §6.2) for collaborators such as the STF.
func Keccak256(data []byte) Hash {
	h := sha3.NewLegacyKeccak256()
	h.Write(data)
	var out Hash
	copy(out[:], h.Sum(nil))
	return out
}

// Ed25519Verify checks an Ed25519 signature over msg. Exposed on the
// adapter per spec §4.5; the codec and trie never call it themselves.
func Ed25519Verify(pubKey [Ed25519PublicSize]byte, msg []byte, sig [Ed25519SignatureSize]byte) bool {
	return ed25519.Verify(pubKey[:], msg, sig[:])
}

// Adapter is the narrow interface the core consumes for cryptographic
// operations (spec §4.5). It exists so the trie and codecs never reach
// for a concrete hash implementation directly, and so tests can supply
// a stub that records calls without touching real Blake2b/Keccak/Ed25519.
type Adapter interface {
	Blake2b256(data []byte) Hash
	Keccak256(data []byte) Hash
	Ed25519Verify(pubKey [Ed25519PublicSize]byte, msg []byte, sig [Ed25519SignatureSize]byte) bool
}

// Default is the production Adapter backed by golang.org/x/crypto and
// stdlib crypto/ed25519.
type Default struct{}

func (Default) Blake2b256(data []byte) Hash { return Blake2b256(data) }
func (Default) Keccak256(data []byte) Hash  { return Keccak256(data) }
func (Default) Ed25519Verify(pubKey [Ed25519PublicSize]byte, msg []byte, sig [Ed25519SignatureSize]byte) bool {
	return Ed25519Verify(pubKey, msg, sig)
}
