package state

import "github.com/jamcore/statecodec/pkg/serialization/codec/jam"

// encodeTimeslot and decodeTimeslot handle τ: a raw fixed-width u32,
// no length prefix (spec §3.2).
func encodeTimeslot(w *jam.Writer, v uint32) {
	jam.PutUint32(w, v)
}

func decodeTimeslot(r *jam.Reader) (uint32, error) {
	v, err := jam.GetUint32(r)
	if err != nil {
		return 0, wrapField("timeslot", err)
	}
	return v, nil
}
