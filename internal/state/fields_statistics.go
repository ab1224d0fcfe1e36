package state

import "github.com/jamcore/statecodec/pkg/serialization/codec/jam"

func putStatisticsRecord(w *jam.Writer, r StatisticsRecord) {
	jam.PutUint32(w, r.NumBlocks)
	jam.PutUint64(w, r.NumTickets)
	jam.PutUint64(w, r.NumPreimages)
	jam.PutUint64(w, r.NumBytesAllPreimages)
	jam.PutUint64(w, r.NumGuaranteedReports)
	jam.PutUint64(w, r.NumAvailabilityAssurances)
}

func getStatisticsRecord(r *jam.Reader) (StatisticsRecord, error) {
	var rec StatisticsRecord
	var err error
	if rec.NumBlocks, err = jam.GetUint32(r); err != nil {
		return rec, err
	}
	if rec.NumTickets, err = jam.GetUint64(r); err != nil {
		return rec, err
	}
	if rec.NumPreimages, err = jam.GetUint64(r); err != nil {
		return rec, err
	}
	if rec.NumBytesAllPreimages, err = jam.GetUint64(r); err != nil {
		return rec, err
	}
	if rec.NumGuaranteedReports, err = jam.GetUint64(r); err != nil {
		return rec, err
	}
	if rec.NumAvailabilityAssurances, err = jam.GetUint64(r); err != nil {
		return rec, err
	}
	return rec, nil
}

// encodeStatisticsTable writes χ[0] or χ[1]: exactly ValidatorSlotCount
// fixed-width records with no length prefix (spec §3.2).
func encodeStatisticsTable(w *jam.Writer, v *StatisticsTable) {
	for _, rec := range v.Records {
		putStatisticsRecord(w, rec)
	}
}

func decodeStatisticsTable(r *jam.Reader) (*StatisticsTable, error) {
	var t StatisticsTable
	for i := 0; i < ValidatorSlotCount; i++ {
		rec, err := getStatisticsRecord(r)
		if err != nil {
			return nil, wrapField("statistics.records", err)
		}
		t.Records[i] = rec
	}
	return &t, nil
}
