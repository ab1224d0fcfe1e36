package state

import (
	"testing"

	"github.com/jamcore/statecodec/internal/crypto"
	"github.com/jamcore/statecodec/pkg/serialization/codec/jam"
	"github.com/stretchr/testify/require"
)

// roundtripBytes wraps the bytes an encoder wrote to w in a fresh
// Reader, so each test below can decode them straight back -
// property P3 exercised uniformly across every field codec.
func roundtripBytes(w *jam.Writer) *jam.Reader {
	return jam.NewReader(w.Bytes())
}

func TestValidatorSetRoundtrip(t *testing.T) {
	v := &ValidatorSet{ExpectedCount: 2, Keys: []crypto.ValidatorKey{{}, {}}}
	v.Keys[1].Metadata[0] = 0xFF

	w := jam.NewWriter()
	encodeCurrentValidators(w, v)
	got, err := decodeCurrentValidators(roundtripBytes(w))
	require.NoError(t, err)
	require.Equal(t, v, got)
}

func TestEntropyGenesisStub(t *testing.T) {
	v := &EntropyPool{Hashes: []crypto.Hash{{0x01}}}
	w := jam.NewWriter()
	encodeEntropy(w, v)
	require.Len(t, w.Bytes(), crypto.HashSize)

	got, err := decodeEntropy(roundtripBytes(w))
	require.NoError(t, err)
	require.Equal(t, v, got)
}

func TestEntropySteadyState(t *testing.T) {
	v := &EntropyPool{Hashes: []crypto.Hash{{0x01}, {0x02}, {0x03}, {0x04}}}
	w := jam.NewWriter()
	encodeEntropy(w, v)
	require.Len(t, w.Bytes(), crypto.HashSize*4)

	got, err := decodeEntropy(roundtripBytes(w))
	require.NoError(t, err)
	require.Equal(t, v, got)
}

func TestEntropyBadLengthRejected(t *testing.T) {
	_, err := decodeEntropy(jam.NewReader(make([]byte, 10)))
	require.Error(t, err)
}

func TestStatisticsTableRoundtrip(t *testing.T) {
	var v StatisticsTable
	v.Records[0] = StatisticsRecord{NumBlocks: 1, NumTickets: 2, NumPreimages: 3, NumBytesAllPreimages: 4, NumGuaranteedReports: 5, NumAvailabilityAssurances: 6}
	v.Records[ValidatorSlotCount-1] = StatisticsRecord{NumBlocks: 99}

	w := jam.NewWriter()
	encodeStatisticsTable(w, &v)
	require.Len(t, w.Bytes(), ValidatorSlotCount*44)

	got, err := decodeStatisticsTable(roundtripBytes(w))
	require.NoError(t, err)
	require.Equal(t, &v, got)
}

func TestWorkReportsPerCoreRoundtrip(t *testing.T) {
	v := &WorkReportsPerCore{Cores: []WorkReportSlot{
		{Present: false},
		{Present: true, Report: []byte{0x01, 0x02, 0x03}},
	}}
	w := jam.NewWriter()
	encodeWorkReportsPerCore(w, v)
	got, err := decodeWorkReportsPerCore(roundtripBytes(w))
	require.NoError(t, err)
	require.Equal(t, v, got)
}

func TestAuthorizationsRoundtrip(t *testing.T) {
	var pool0, pool1 AuthEntry
	pool0[0] = 0x11
	pool1[AuthEntrySize-1] = 0x22

	v := &Authorizations{
		Pools:  [][]AuthEntry{{pool0}, {}},
		Queues: [][]AuthEntry{{pool1, pool0}},
	}
	w := jam.NewWriter()
	encodeAuthorizations(w, v)
	got, err := decodeAuthorizations(roundtripBytes(w))
	require.NoError(t, err)
	require.Equal(t, v, got)
}

func TestAccumulationQueueRoundtrip(t *testing.T) {
	v := &PerCoreOpaqueLists{Cores: [][][]byte{
		{{0x01}, {0x02, 0x03}},
		{},
	}}
	w := jam.NewWriter()
	encodeAccumulationQueue(w, v)
	got, err := decodeAccumulationQueue(roundtripBytes(w))
	require.NoError(t, err)
	require.Equal(t, v, got)
}

func TestAccumulationHistoryRoundtrip(t *testing.T) {
	v := &PerEpochHashLists{Epochs: [][]crypto.Hash{
		{{0x01}, {0x02}},
		nil,
	}}
	w := jam.NewWriter()
	encodeAccumulationHistory(w, v)
	got, err := decodeAccumulationHistory(roundtripBytes(w))
	require.NoError(t, err)
	require.Equal(t, len(v.Epochs), len(got.Epochs))
	require.Equal(t, v.Epochs[0], got.Epochs[0])
	require.Empty(t, got.Epochs[1])
}

func TestPrivilegedServicesRoundtrip(t *testing.T) {
	v := &PrivilegedServices{
		Manager: 1, Assigner: 2, Delegator: 3,
		Gas: []PrivilegedServiceGas{{ServiceID: 7, Gas: 1000}},
	}
	w := jam.NewWriter()
	encodePrivilegedServices(w, v)
	got, err := decodePrivilegedServices(roundtripBytes(w))
	require.NoError(t, err)
	require.Equal(t, v, got)
}

func TestAccumulationOutputLogRoundtrip(t *testing.T) {
	v := &OutputLog{Entries: []OutputLogEntry{{ServiceID: 5, Hash: crypto.Hash{0x09}}}}
	w := jam.NewWriter()
	encodeAccumulationOutputLog(w, v)
	got, err := decodeAccumulationOutputLog(roundtripBytes(w))
	require.NoError(t, err)
	require.Equal(t, v, got)
}

func TestAccumulationResultMMRRoundtrip(t *testing.T) {
	v := &OptionalHashList{Entries: []OptionalHash{
		{Present: true, Hash: crypto.Hash{0x01}},
		{Present: false},
	}}
	w := jam.NewWriter()
	encodeAccumulationResultMMR(w, v)
	got, err := decodeAccumulationResultMMR(roundtripBytes(w))
	require.NoError(t, err)
	require.Equal(t, v, got)
}

func TestRingCommitmentRoundtrip(t *testing.T) {
	var v RingCommitment
	v[0] = 0xAB
	v[len(v)-1] = 0xCD

	w := jam.NewWriter()
	encodeRingCommitment(w, &v)
	got, err := decodeRingCommitment(roundtripBytes(w))
	require.NoError(t, err)
	require.Equal(t, &v, got)
}

func TestCoreAuthorizerHashesRoundtrip(t *testing.T) {
	v := &PerCoreHashLists{Cores: [][]crypto.Hash{
		{{0x01}, {0x02}},
		{},
	}}
	w := jam.NewWriter()
	encodeCoreAuthorizerHashes(w, v)
	got, err := decodeCoreAuthorizerHashes(roundtripBytes(w))
	require.NoError(t, err)
	require.Equal(t, len(v.Cores), len(got.Cores))
	require.Equal(t, v.Cores[0], got.Cores[0])
	require.Empty(t, got.Cores[1])
}
