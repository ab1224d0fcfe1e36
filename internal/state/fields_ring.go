package state

import "github.com/jamcore/statecodec/pkg/serialization/codec/jam"

// encodeRingCommitment and decodeRingCommitment handle the
// Bandersnatch ring commitment: a fixed-width blob with no length
// prefix (spec §3.2 supplement).
func encodeRingCommitment(w *jam.Writer, v *RingCommitment) {
	w.Write(v[:])
}

func decodeRingCommitment(r *jam.Reader) (*RingCommitment, error) {
	b, err := r.ReadN(len(RingCommitment{}))
	if err != nil {
		return nil, wrapField("bandersnatch_ring_commitment", err)
	}
	var v RingCommitment
	copy(v[:], b)
	return &v, nil
}
