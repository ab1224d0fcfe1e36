package state

import (
	"github.com/jamcore/statecodec/internal/crypto"
	"github.com/jamcore/statecodec/pkg/serialization/codec/jam"
)

func putHashList(w *jam.Writer, hs []crypto.Hash) {
	jam.PutCompact(w, uint64(len(hs)))
	for _, h := range hs {
		jam.PutHash(w, h)
	}
}

func getHashList(r *jam.Reader) ([]crypto.Hash, error) {
	n, err := jam.GetCompactUint64(r)
	if err != nil {
		return nil, err
	}
	out := make([]crypto.Hash, 0, n)
	for i := uint64(0); i < n; i++ {
		h, err := jam.GetHash(r)
		if err != nil {
			return nil, err
		}
		out = append(out, h)
	}
	return out, nil
}

// encodePastJudgements writes ψ as three independently
// Compact(len)-prefixed hash lists, in the fixed order good, bad,
// wonky (spec §3.2).
func encodePastJudgements(w *jam.Writer, v *Judgements) {
	putHashList(w, v.Good)
	putHashList(w, v.Bad)
	putHashList(w, v.Wonky)
}

func decodePastJudgements(r *jam.Reader) (*Judgements, error) {
	good, err := getHashList(r)
	if err != nil {
		return nil, wrapField("past_judgements.good", err)
	}
	bad, err := getHashList(r)
	if err != nil {
		return nil, wrapField("past_judgements.bad", err)
	}
	wonky, err := getHashList(r)
	if err != nil {
		return nil, wrapField("past_judgements.wonky", err)
	}
	return &Judgements{Good: good, Bad: bad, Wonky: wonky}, nil
}
