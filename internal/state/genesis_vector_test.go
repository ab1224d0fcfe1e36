package state

import (
	"path/filepath"
	"testing"

	"github.com/jamcore/statecodec/internal/config"
	"github.com/jamcore/statecodec/internal/crypto"
	"github.com/jamcore/statecodec/internal/statekey"
	"github.com/jamcore/statecodec/internal/testutils"
	"github.com/stretchr/testify/require"
)

// fillHash returns a hash with every byte set to b, matching the
// fixture generator's convention of one repeated fill byte per field.
func fillHash(b byte) crypto.Hash {
	var h crypto.Hash
	for i := range h {
		h[i] = b
	}
	return h
}

// fillValidatorKey returns a validator key whose four components are
// each filled with their own byte, matching how the genesis vector's
// validator entries were generated.
func fillValidatorKey(band, ed, bls, meta byte) crypto.ValidatorKey {
	var k crypto.ValidatorKey
	for i := range k.Bandersnatch {
		k.Bandersnatch[i] = band
	}
	for i := range k.Ed25519 {
		k.Ed25519[i] = ed
	}
	for i := range k.Bls {
		k.Bls[i] = bls
	}
	for i := range k.Metadata {
		k.Metadata[i] = meta
	}
	return k
}

// expectedGenesisState is the State this package's field codecs must
// produce from testdata/genesis_vector.json. It is built independently
// of the fixture bytes (by hand, from the same field-by-field values
// the fixture generator used) so the test genuinely checks the decode
// path rather than reflecting the fixture back at itself.
func expectedGenesisState() *State {
	timeslot := uint32(1000)

	statsCompleted := &StatisticsTable{}
	statsCompleted.Records[0] = StatisticsRecord{
		NumBlocks: 1, NumTickets: 2, NumPreimages: 3,
		NumBytesAllPreimages: 4, NumGuaranteedReports: 5, NumAvailabilityAssurances: 6,
	}
	statsCurrent := &StatisticsTable{}
	statsCurrent.Records[0] = StatisticsRecord{
		NumBlocks: 2, NumTickets: 3, NumPreimages: 4,
		NumBytesAllPreimages: 5, NumGuaranteedReports: 6, NumAvailabilityAssurances: 7,
	}

	return &State{
		CurrentValidators: &ValidatorSet{
			ExpectedCount: 2,
			Keys: []crypto.ValidatorKey{
				fillValidatorKey(0x10, 0x11, 0x12, 0x13),
				fillValidatorKey(0x20, 0x21, 0x22, 0x23),
			},
		},
		PreviousValidators: &ValidatorList{
			Keys: []crypto.ValidatorKey{fillValidatorKey(0x30, 0x31, 0x32, 0x33)},
		},
		RecentHistory: &RecentHistory{
			Entries: []HistoryEntry{
				{
					HeaderHash: fillHash(1),
					StateRoot:  fillHash(2),
					AccumulationPeaks: []OptionalHash{
						{Present: false},
						{Present: true, Hash: fillHash(3)},
					},
					WorkReportHashes: []HashPair{
						{Key: fillHash(4), Value: fillHash(5)},
					},
				},
			},
		},
		SafroleState: &OpaqueField{Bytes: []byte{0xDE, 0xAD, 0xBE, 0xEF, 0x01, 0x02}},
		PastJudgements: &Judgements{
			Good:  []crypto.Hash{fillHash(6)},
			Bad:   []crypto.Hash{},
			Wonky: []crypto.Hash{fillHash(7), fillHash(8)},
		},
		QueuedValidators: &ValidatorList{
			Keys: []crypto.ValidatorKey{
				fillValidatorKey(0x40, 0x41, 0x42, 0x43),
				fillValidatorKey(0x50, 0x51, 0x52, 0x53),
			},
		},
		StatisticsCompleted: statsCompleted,
		StatisticsCurrent:   statsCurrent,
		CoreAuthorizerHashes: &PerCoreHashLists{
			Cores: [][]crypto.Hash{
				{fillHash(9), fillHash(10)},
				{},
			},
		},
		Entropy: &EntropyPool{
			Hashes: []crypto.Hash{fillHash(11), fillHash(12), fillHash(13), fillHash(14)},
		},
		Timeslot: &timeslot,
		WorkReportsPerCore: &WorkReportsPerCore{
			Cores: []WorkReportSlot{
				{Present: false},
				{Present: true, Report: []byte{1, 2, 3, 4, 5}},
			},
		},
		Authorizations: &Authorizations{
			Pools:  [][]AuthEntry{{authEntry(0x01)}},
			Queues: [][]AuthEntry{{authEntry(0x02), authEntry(0x03)}},
		},
		AccumulationQueue: &PerCoreOpaqueLists{
			Cores: [][][]byte{
				{{7, 8, 9}},
				{},
			},
		},
		AccumulationHistory: &PerEpochHashLists{
			Epochs: [][]crypto.Hash{
				{fillHash(15)},
				{},
			},
		},
		PrivilegedServices: &PrivilegedServices{
			Manager: 1, Assigner: 2, Delegator: 3,
			Gas: []PrivilegedServiceGas{{ServiceID: 42, Gas: 9999}},
		},
		AccumulationOutputLog: &OutputLog{
			Entries: []OutputLogEntry{{ServiceID: 5, Hash: fillHash(16)}},
		},
		AccumulationResultMMR: &OptionalHashList{
			Entries: []OptionalHash{
				{Present: true, Hash: fillHash(17)},
				{Present: false},
			},
		},
		BandersnatchRingCommitment: authRing(),
	}
}

// authEntry returns a fixed-width authorization pool/queue slot whose
// leading byte is tag and whose remaining bytes are the zero padding
// the fixture generator left in place.
func authEntry(tag byte) AuthEntry {
	var e AuthEntry
	e[0] = tag
	return e
}

// authRing returns the Bandersnatch ring commitment the fixture
// generator filled with a single repeated byte.
func authRing() *RingCommitment {
	var r RingCommitment
	for i := range r {
		r[i] = 0x99
	}
	return &r
}

// TestGenesisVectorRoundtrip is spec §8's required end-to-end scenario
// 6: parse the full 19-field genesis state vector, re-emit it, and
// observe byte-equal output for every discriminator's payload.
func TestGenesisVectorRoundtrip(t *testing.T) {
	var raw map[string]string
	testutils.LoadJSONVector(t, filepath.Join("testdata", "genesis_vector.json"), &raw)
	require.Len(t, raw, 19, "genesis vector must exercise all 19 discriminators")

	kvs := make([]KeyValue, 0, len(raw))
	for hexDisc, hexPayload := range raw {
		b := testutils.MustHex(t, hexDisc)
		require.Len(t, b, 1)
		kvs = append(kvs, KeyValue{
			Key:   statekey.New(b[0]),
			Value: testutils.MustHex(t, hexPayload),
		})
	}

	parsed, err := ParseKeyVals(config.Default(), kvs)
	require.NoError(t, err)
	require.Equal(t, expectedGenesisState(), parsed)

	reEmitted, err := EmitKeyVals(parsed)
	require.NoError(t, err)
	require.Len(t, reEmitted, 19)

	original := make(map[Discriminator][]byte, len(kvs))
	for _, kv := range kvs {
		original[Discriminator(kv.Key[0])] = kv.Value
	}
	for _, kv := range reEmitted {
		d := Discriminator(kv.Key[0])
		require.True(t, d.Known())
		require.Equal(t, original[d], kv.Value, "discriminator %s payload must roundtrip byte-for-byte", d.Name())
	}
}
