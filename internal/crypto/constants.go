package crypto

// Fixed sizes for the primitive value space (spec §3.1, §4.5).
const (
	HashSize             = 32
	BandersnatchSize     = 32
	Ed25519PublicSize    = 32
	Ed25519SignatureSize = 64
	BLSSize              = 144
	MetadataSize         = 48
	RingCommitmentSize   = 144

	// ValidatorKeySize is the fixed width of the composite validator
	// key record: bandersnatch[32] . ed25519[32] . bls[144] . metadata[48].
	ValidatorKeySize = BandersnatchSize + Ed25519PublicSize + BLSSize + MetadataSize
)
