package state

import "github.com/jamcore/statecodec/pkg/serialization/codec/jam"

// encodeWorkReportsPerCore writes ρ: Compact(coreCount), then for each
// core a presence flag and, if present, a Compact(len)-prefixed opaque
// report body this core never interprets beyond roundtrip
// (spec §9 Design Notes).
func encodeWorkReportsPerCore(w *jam.Writer, v *WorkReportsPerCore) {
	jam.PutCompact(w, uint64(len(v.Cores)))
	for _, slot := range v.Cores {
		if slot.Present {
			w.WriteByte(0x01)
			jam.PutBytes(w, slot.Report)
		} else {
			w.WriteByte(0x00)
		}
	}
}

func decodeWorkReportsPerCore(r *jam.Reader) (*WorkReportsPerCore, error) {
	n, err := jam.GetCompactUint64(r)
	if err != nil {
		return nil, wrapField("work_reports_per_core.cores", err)
	}
	cores := make([]WorkReportSlot, 0, n)
	for i := uint64(0); i < n; i++ {
		flag, err := r.ReadByte()
		if err != nil {
			return nil, wrapField("work_reports_per_core.flag", err)
		}
		switch flag {
		case 0x00:
			cores = append(cores, WorkReportSlot{})
		case 0x01:
			report, err := jam.GetBytes(r)
			if err != nil {
				return nil, wrapField("work_reports_per_core.report", err)
			}
			cores = append(cores, WorkReportSlot{Present: true, Report: report})
		default:
			return nil, wrapField("work_reports_per_core.flag", jam.ErrFieldShape)
		}
	}
	return &WorkReportsPerCore{Cores: cores}, nil
}
