package state

import "github.com/jamcore/statecodec/pkg/serialization/codec/jam"

// encodeSafroleState and decodeSafroleState treat γ as opaque bytes
// with roundtrip (spec §9 Design Notes): the embedding assembler
// slices out exactly the bytes belonging to this discriminator, and
// this codec's only job is to hand them back unchanged.
func encodeSafroleState(w *jam.Writer, v *OpaqueField) {
	w.Write(v.Bytes)
}

func decodeSafroleState(r *jam.Reader) (*OpaqueField, error) {
	b, err := r.ReadN(r.Remaining())
	if err != nil {
		return nil, wrapField("safrole_state", err)
	}
	return &OpaqueField{Bytes: b}, nil
}
