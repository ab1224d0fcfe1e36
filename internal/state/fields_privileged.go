package state

import "github.com/jamcore/statecodec/pkg/serialization/codec/jam"

// encodePrivilegedServices writes the three privileged service role
// identifiers followed by a Compact(len)-prefixed gas allowance table
// (spec §3.2 supplement).
func encodePrivilegedServices(w *jam.Writer, v *PrivilegedServices) {
	jam.PutUint32(w, v.Manager)
	jam.PutUint32(w, v.Assigner)
	jam.PutUint32(w, v.Delegator)
	jam.PutCompact(w, uint64(len(v.Gas)))
	for _, g := range v.Gas {
		jam.PutUint32(w, g.ServiceID)
		jam.PutUint64(w, g.Gas)
	}
}

func decodePrivilegedServices(r *jam.Reader) (*PrivilegedServices, error) {
	var v PrivilegedServices
	var err error
	if v.Manager, err = jam.GetUint32(r); err != nil {
		return nil, wrapField("privileged_services.manager", err)
	}
	if v.Assigner, err = jam.GetUint32(r); err != nil {
		return nil, wrapField("privileged_services.assigner", err)
	}
	if v.Delegator, err = jam.GetUint32(r); err != nil {
		return nil, wrapField("privileged_services.delegator", err)
	}
	n, err := jam.GetCompactUint64(r)
	if err != nil {
		return nil, wrapField("privileged_services.gas.len", err)
	}
	v.Gas = make([]PrivilegedServiceGas, 0, n)
	for i := uint64(0); i < n; i++ {
		sid, err := jam.GetUint32(r)
		if err != nil {
			return nil, wrapField("privileged_services.gas.service_id", err)
		}
		gas, err := jam.GetUint64(r)
		if err != nil {
			return nil, wrapField("privileged_services.gas.amount", err)
		}
		v.Gas = append(v.Gas, PrivilegedServiceGas{ServiceID: sid, Gas: gas})
	}
	return &v, nil
}
