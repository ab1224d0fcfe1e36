package state

import (
	"github.com/jamcore/statecodec/internal/crypto"
	"github.com/jamcore/statecodec/pkg/serialization/codec/jam"
)

func putValidatorKey(w *jam.Writer, k crypto.ValidatorKey) {
	w.Write(k.Bandersnatch[:])
	w.Write(k.Ed25519[:])
	w.Write(k.Bls[:])
	w.Write(k.Metadata[:])
}

func getValidatorKey(r *jam.Reader) (crypto.ValidatorKey, error) {
	var k crypto.ValidatorKey
	b, err := r.ReadN(crypto.ValidatorKeySize)
	if err != nil {
		return k, err
	}
	copy(k.Bandersnatch[:], b[0:32])
	copy(k.Ed25519[:], b[32:64])
	copy(k.Bls[:], b[64:208])
	copy(k.Metadata[:], b[208:256])
	return k, nil
}

// encodeCurrentValidators writes κ: a u16 count followed by that many
// validator keys (spec §3.2, §4.2).
func encodeCurrentValidators(w *jam.Writer, v *ValidatorSet) {
	jam.PutUint16(w, uint16(len(v.Keys)))
	for _, k := range v.Keys {
		putValidatorKey(w, k)
	}
}

// decodeCurrentValidators reads κ. The wire count is authoritative for
// how many keys follow; the resulting struct trivially satisfies
// ExpectedCount == len(Keys) because that is exactly what was read.
func decodeCurrentValidators(r *jam.Reader) (*ValidatorSet, error) {
	count, err := jam.GetUint16(r)
	if err != nil {
		return nil, wrapField("current_validators.count", err)
	}
	keys := make([]crypto.ValidatorKey, 0, count)
	for i := uint16(0); i < count; i++ {
		k, err := getValidatorKey(r)
		if err != nil {
			return nil, wrapField("current_validators.keys", err)
		}
		keys = append(keys, k)
	}
	return &ValidatorSet{ExpectedCount: count, Keys: keys}, nil
}

// encodeValidatorList writes λ or ι: a flat run of validator keys with
// no count prefix (spec §4.2).
func encodeValidatorList(w *jam.Writer, v *ValidatorList) {
	for _, k := range v.Keys {
		putValidatorKey(w, k)
	}
}

// decodeValidatorList reads λ or ι from a payload whose length must be
// an exact multiple of one key's width; anything else is a shape
// error, since there is no length prefix to appeal to (spec §7).
func decodeValidatorList(r *jam.Reader) (*ValidatorList, error) {
	if r.Remaining()%crypto.ValidatorKeySize != 0 {
		return nil, wrapField("validator_list", jam.ErrFieldShape)
	}
	n := r.Remaining() / crypto.ValidatorKeySize
	keys := make([]crypto.ValidatorKey, 0, n)
	for i := 0; i < n; i++ {
		k, err := getValidatorKey(r)
		if err != nil {
			return nil, wrapField("validator_list", err)
		}
		keys = append(keys, k)
	}
	return &ValidatorList{Keys: keys}, nil
}
