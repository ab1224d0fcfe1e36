package state

import (
	"github.com/jamcore/statecodec/internal/crypto"
	"github.com/jamcore/statecodec/pkg/serialization/codec/jam"
)

// encodeEntropy writes η as a flat run of hashes with no internal
// length prefix; the payload length alone distinguishes a genesis
// stub (one hash) from steady-state entropy (four accumulators)
// (spec §3.2).
func encodeEntropy(w *jam.Writer, v *EntropyPool) {
	for _, h := range v.Hashes {
		jam.PutHash(w, h)
	}
}

func decodeEntropy(r *jam.Reader) (*EntropyPool, error) {
	switch r.Remaining() {
	case crypto.HashSize:
		h, err := jam.GetHash(r)
		if err != nil {
			return nil, wrapField("entropy", err)
		}
		return &EntropyPool{Hashes: []crypto.Hash{h}}, nil
	case crypto.HashSize * 4:
		hs := make([]crypto.Hash, 0, 4)
		for i := 0; i < 4; i++ {
			h, err := jam.GetHash(r)
			if err != nil {
				return nil, wrapField("entropy", err)
			}
			hs = append(hs, h)
		}
		return &EntropyPool{Hashes: hs}, nil
	default:
		return nil, wrapField("entropy", jam.ErrFieldShape)
	}
}
