package state

import (
	"github.com/jamcore/statecodec/pkg/serialization/codec/jam"
)

func putOptionalHash(w *jam.Writer, h OptionalHash) {
	if h.Present {
		w.WriteByte(0x01)
		jam.PutHash(w, h.Hash)
	} else {
		w.WriteByte(0x00)
	}
}

func getOptionalHash(r *jam.Reader) (OptionalHash, error) {
	flag, err := r.ReadByte()
	if err != nil {
		return OptionalHash{}, err
	}
	switch flag {
	case 0x00:
		return OptionalHash{}, nil
	case 0x01:
		h, err := jam.GetHash(r)
		if err != nil {
			return OptionalHash{}, err
		}
		return OptionalHash{Present: true, Hash: h}, nil
	default:
		return OptionalHash{}, jam.ErrFieldShape
	}
}

func putOptionalHashList(w *jam.Writer, entries []OptionalHash) {
	jam.PutCompact(w, uint64(len(entries)))
	for _, e := range entries {
		putOptionalHash(w, e)
	}
}

func getOptionalHashList(r *jam.Reader) ([]OptionalHash, error) {
	n, err := jam.GetCompactUint64(r)
	if err != nil {
		return nil, err
	}
	out := make([]OptionalHash, 0, n)
	for i := uint64(0); i < n; i++ {
		e, err := getOptionalHash(r)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, nil
}

func putHashPairList(w *jam.Writer, pairs []HashPair) {
	jam.PutCompact(w, uint64(len(pairs)))
	for _, p := range pairs {
		jam.PutHash(w, p.Key)
		jam.PutHash(w, p.Value)
	}
}

func getHashPairList(r *jam.Reader) ([]HashPair, error) {
	n, err := jam.GetCompactUint64(r)
	if err != nil {
		return nil, err
	}
	out := make([]HashPair, 0, n)
	for i := uint64(0); i < n; i++ {
		k, err := jam.GetHash(r)
		if err != nil {
			return nil, err
		}
		v, err := jam.GetHash(r)
		if err != nil {
			return nil, err
		}
		out = append(out, HashPair{Key: k, Value: v})
	}
	return out, nil
}

func putHistoryEntry(w *jam.Writer, e HistoryEntry) {
	jam.PutHash(w, e.HeaderHash)
	jam.PutHash(w, e.StateRoot)
	putOptionalHashList(w, e.AccumulationPeaks)
	putHashPairList(w, e.WorkReportHashes)
}

func getHistoryEntry(r *jam.Reader) (HistoryEntry, error) {
	var e HistoryEntry
	var err error
	if e.HeaderHash, err = jam.GetHash(r); err != nil {
		return e, err
	}
	if e.StateRoot, err = jam.GetHash(r); err != nil {
		return e, err
	}
	if e.AccumulationPeaks, err = getOptionalHashList(r); err != nil {
		return e, err
	}
	if e.WorkReportHashes, err = getHashPairList(r); err != nil {
		return e, err
	}
	return e, nil
}

// encodeRecentHistory writes β: Compact(len), the entries themselves,
// then a single 0x00 terminator byte that is present even when the
// list is empty (spec §3.2 edge case).
func encodeRecentHistory(w *jam.Writer, v *RecentHistory) {
	jam.PutCompact(w, uint64(len(v.Entries)))
	for _, e := range v.Entries {
		putHistoryEntry(w, e)
	}
	w.WriteByte(0x00)
}

func decodeRecentHistory(r *jam.Reader) (*RecentHistory, error) {
	n, err := jam.GetCompactUint64(r)
	if err != nil {
		return nil, wrapField("recent_history.len", err)
	}
	entries := make([]HistoryEntry, 0, n)
	for i := uint64(0); i < n; i++ {
		e, err := getHistoryEntry(r)
		if err != nil {
			return nil, wrapField("recent_history.entries", err)
		}
		entries = append(entries, e)
	}
	term, err := r.ReadByte()
	if err != nil {
		return nil, wrapField("recent_history.terminator", err)
	}
	if term != 0x00 {
		return nil, wrapField("recent_history.terminator", jam.ErrFieldShape)
	}
	return &RecentHistory{Entries: entries}, nil
}
