package state

import (
	"github.com/jamcore/statecodec/internal/crypto"
	"github.com/jamcore/statecodec/pkg/serialization/codec/jam"
)

// encodeCoreAuthorizerHashes writes α: Compact(coreCount) followed by
// one Compact(len)-prefixed hash list per core (spec §3.2 supplement).
func encodeCoreAuthorizerHashes(w *jam.Writer, v *PerCoreHashLists) {
	jam.PutCompact(w, uint64(len(v.Cores)))
	for _, hashes := range v.Cores {
		putHashList(w, hashes)
	}
}

func decodeCoreAuthorizerHashes(r *jam.Reader) (*PerCoreHashLists, error) {
	n, err := jam.GetCompactUint64(r)
	if err != nil {
		return nil, wrapField("core_authorizer_hashes.cores", err)
	}
	cores := make([][]crypto.Hash, 0, n)
	for i := uint64(0); i < n; i++ {
		hashes, err := getHashList(r)
		if err != nil {
			return nil, wrapField("core_authorizer_hashes.hashes", err)
		}
		cores = append(cores, hashes)
	}
	return &PerCoreHashLists{Cores: cores}, nil
}
