package state

import "github.com/jamcore/statecodec/pkg/serialization/codec/jam"

func putAuthEntryList(w *jam.Writer, entries []AuthEntry) {
	jam.PutCompact(w, uint64(len(entries)))
	for _, e := range entries {
		w.Write(e[:])
	}
}

func getAuthEntryList(r *jam.Reader) ([]AuthEntry, error) {
	n, err := jam.GetCompactUint64(r)
	if err != nil {
		return nil, err
	}
	out := make([]AuthEntry, 0, n)
	for i := uint64(0); i < n; i++ {
		b, err := r.ReadN(AuthEntrySize)
		if err != nil {
			return nil, err
		}
		var e AuthEntry
		copy(e[:], b)
		out = append(out, e)
	}
	return out, nil
}

func putAuthEntryLists(w *jam.Writer, cores [][]AuthEntry) {
	jam.PutCompact(w, uint64(len(cores)))
	for _, entries := range cores {
		putAuthEntryList(w, entries)
	}
}

func getAuthEntryLists(r *jam.Reader) ([][]AuthEntry, error) {
	n, err := jam.GetCompactUint64(r)
	if err != nil {
		return nil, err
	}
	out := make([][]AuthEntry, 0, n)
	for i := uint64(0); i < n; i++ {
		entries, err := getAuthEntryList(r)
		if err != nil {
			return nil, err
		}
		out = append(out, entries)
	}
	return out, nil
}

// encodeAuthorizations writes φ: the per-core pools followed by the
// equivalently shaped per-core queues, each entry padded to
// AuthEntrySize bytes (spec §3.2).
func encodeAuthorizations(w *jam.Writer, v *Authorizations) {
	putAuthEntryLists(w, v.Pools)
	putAuthEntryLists(w, v.Queues)
}

func decodeAuthorizations(r *jam.Reader) (*Authorizations, error) {
	pools, err := getAuthEntryLists(r)
	if err != nil {
		return nil, wrapField("authorizations.pools", err)
	}
	queues, err := getAuthEntryLists(r)
	if err != nil {
		return nil, wrapField("authorizations.queues", err)
	}
	return &Authorizations{Pools: pools, Queues: queues}, nil
}
