package crypto

// ValidatorKey is the 256-byte composite public-key record carried by
// κ, λ and ι (spec §3.1): bandersnatch[32] . ed25519[32] . bls[144] .
// metadata[48]. Metadata is opaque to this core but MUST be preserved
// verbatim across decode/encode to satisfy roundtrip.
type ValidatorKey struct {
	Bandersnatch [BandersnatchSize]byte
	Ed25519      [Ed25519PublicSize]byte
	Bls          [BLSSize]byte
	Metadata     [MetadataSize]byte
}

// RingCommitment is the bandersnatch ring commitment carried alongside
// entropy (discriminator 0x13, see SPEC_FULL.md §2).
type RingCommitment [RingCommitmentSize]byte
