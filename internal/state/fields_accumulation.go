package state

import (
	"github.com/jamcore/statecodec/internal/crypto"
	"github.com/jamcore/statecodec/pkg/serialization/codec/jam"
)

// encodeAccumulationQueue writes ϑ: Compact(coreCount) then, per core,
// a Compact(len)-prefixed list of individually length-framed opaque
// items (spec §3.2 supplement; items are work-report-shaped blobs this
// core does not interpret, the same opacity policy as ρ).
func encodeAccumulationQueue(w *jam.Writer, v *PerCoreOpaqueLists) {
	jam.PutCompact(w, uint64(len(v.Cores)))
	for _, items := range v.Cores {
		jam.PutCompact(w, uint64(len(items)))
		for _, item := range items {
			jam.PutBytes(w, item)
		}
	}
}

func decodeAccumulationQueue(r *jam.Reader) (*PerCoreOpaqueLists, error) {
	nCores, err := jam.GetCompactUint64(r)
	if err != nil {
		return nil, wrapField("accumulation_queue.cores", err)
	}
	cores := make([][][]byte, 0, nCores)
	for i := uint64(0); i < nCores; i++ {
		nItems, err := jam.GetCompactUint64(r)
		if err != nil {
			return nil, wrapField("accumulation_queue.items", err)
		}
		items := make([][]byte, 0, nItems)
		for j := uint64(0); j < nItems; j++ {
			item, err := jam.GetBytes(r)
			if err != nil {
				return nil, wrapField("accumulation_queue.item", err)
			}
			items = append(items, item)
		}
		cores = append(cores, items)
	}
	return &PerCoreOpaqueLists{Cores: cores}, nil
}

// encodeAccumulationHistory writes ξ: Compact(epochCount) then, per
// tracked epoch slot, a Compact(len)-prefixed hash list
// (spec §3.2 supplement).
func encodeAccumulationHistory(w *jam.Writer, v *PerEpochHashLists) {
	jam.PutCompact(w, uint64(len(v.Epochs)))
	for _, hashes := range v.Epochs {
		putHashList(w, hashes)
	}
}

func decodeAccumulationHistory(r *jam.Reader) (*PerEpochHashLists, error) {
	n, err := jam.GetCompactUint64(r)
	if err != nil {
		return nil, wrapField("accumulation_history.epochs", err)
	}
	epochs := make([][]crypto.Hash, 0, n)
	for i := uint64(0); i < n; i++ {
		hashes, err := getHashList(r)
		if err != nil {
			return nil, wrapField("accumulation_history.hashes", err)
		}
		epochs = append(epochs, hashes)
	}
	return &PerEpochHashLists{Epochs: epochs}, nil
}

// encodeAccumulationOutputLog writes the accumulation output log: a
// Compact(len)-prefixed list of (serviceID, hash) records
// (spec §3.2 supplement).
func encodeAccumulationOutputLog(w *jam.Writer, v *OutputLog) {
	jam.PutCompact(w, uint64(len(v.Entries)))
	for _, e := range v.Entries {
		jam.PutUint32(w, e.ServiceID)
		jam.PutHash(w, e.Hash)
	}
}

func decodeAccumulationOutputLog(r *jam.Reader) (*OutputLog, error) {
	n, err := jam.GetCompactUint64(r)
	if err != nil {
		return nil, wrapField("accumulation_output_log.len", err)
	}
	entries := make([]OutputLogEntry, 0, n)
	for i := uint64(0); i < n; i++ {
		sid, err := jam.GetUint32(r)
		if err != nil {
			return nil, wrapField("accumulation_output_log.service_id", err)
		}
		h, err := jam.GetHash(r)
		if err != nil {
			return nil, wrapField("accumulation_output_log.hash", err)
		}
		entries = append(entries, OutputLogEntry{ServiceID: sid, Hash: h})
	}
	return &OutputLog{Entries: entries}, nil
}

// encodeAccumulationResultMMR writes the running MMR peak list: a
// Compact(len)-prefixed list of optional hashes, since a Merkle
// mountain range can have unset peaks at some heights
// (spec §3.2 supplement).
func encodeAccumulationResultMMR(w *jam.Writer, v *OptionalHashList) {
	putOptionalHashList(w, v.Entries)
}

func decodeAccumulationResultMMR(r *jam.Reader) (*OptionalHashList, error) {
	entries, err := getOptionalHashList(r)
	if err != nil {
		return nil, wrapField("accumulation_result_mmr", err)
	}
	return &OptionalHashList{Entries: entries}, nil
}
