package state

import (
	"testing"

	"github.com/jamcore/statecodec/internal/config"
	"github.com/jamcore/statecodec/internal/crypto"
	"github.com/jamcore/statecodec/internal/statekey"
	"github.com/stretchr/testify/require"
)

func kv(disc byte, value []byte) KeyValue {
	return KeyValue{Key: statekey.New(disc), Value: value}
}

// TestParseUnknownDiscriminator and TestParseDuplicateDiscriminator
// cover the two structural rejections spec §7 calls for.
func TestParseUnknownDiscriminator(t *testing.T) {
	_, err := ParseKeyVals(config.Default(), []KeyValue{kv(0x99, nil)})
	var unknown *ErrUnknownDiscriminator
	require.ErrorAs(t, err, &unknown)
	require.Equal(t, byte(0x99), unknown.Discriminator)
}

func TestParseDuplicateDiscriminator(t *testing.T) {
	ts := kv(byte(DiscTimeslot), []byte{0x01, 0x00, 0x00, 0x00})
	_, err := ParseKeyVals(config.Default(), []KeyValue{ts, ts})
	var dup *ErrDuplicateDiscriminator
	require.ErrorAs(t, err, &dup)
}

// TestStateRoundtrip is property P4: parsing an emitted key-value set
// reproduces the original state, and re-emitting it reproduces the
// original bytes.
func TestStateRoundtrip(t *testing.T) {
	timeslot := uint32(42)
	orig := &State{
		Timeslot: &timeslot,
		Entropy: &EntropyPool{Hashes: []crypto.Hash{
			{0x01}, {0x02}, {0x03}, {0x04},
		}},
		PreviousValidators: &ValidatorList{Keys: []crypto.ValidatorKey{{}, {}}},
		PastJudgements: &Judgements{
			Good:  []crypto.Hash{{0xAA}},
			Bad:   []crypto.Hash{},
			Wonky: []crypto.Hash{{0xBB}, {0xCC}},
		},
		SafroleState: &OpaqueField{Bytes: []byte{0xDE, 0xAD, 0xBE, 0xEF}},
		RecentHistory: &RecentHistory{Entries: []HistoryEntry{
			{
				HeaderHash: crypto.Hash{0x11},
				StateRoot:  crypto.Hash{0x22},
				AccumulationPeaks: []OptionalHash{
					{Present: false},
					{Present: true, Hash: crypto.Hash{0x33}},
				},
				WorkReportHashes: []HashPair{
					{Key: crypto.Hash{0x44}, Value: crypto.Hash{0x55}},
				},
			},
		}},
	}

	kvs, err := EmitKeyVals(orig)
	require.NoError(t, err)

	parsed, err := ParseKeyVals(config.Default(), kvs)
	require.NoError(t, err)
	require.Equal(t, orig, parsed)

	kvs2, err := EmitKeyVals(parsed)
	require.NoError(t, err)
	require.Equal(t, kvs, kvs2)
}

// TestRecentHistoryEmptyStillHasTerminator is the β edge case: an
// empty history still emits its 0x00 terminator byte.
func TestRecentHistoryEmptyStillHasTerminator(t *testing.T) {
	empty := &RecentHistory{}
	got, err := ParseKeyVals(config.Default(), EmitOne(t, DiscRecentHistory, empty))
	require.NoError(t, err)
	require.Empty(t, got.RecentHistory.Entries)
}

// EmitOne is a small test helper building a single-field key-value set
// via the real dispatch table, used to exercise one field codec in
// isolation.
func EmitOne(t *testing.T, d Discriminator, value interface{}) []KeyValue {
	t.Helper()
	s := &State{}
	switch d {
	case DiscRecentHistory:
		s.RecentHistory = value.(*RecentHistory)
	default:
		t.Fatalf("EmitOne: unsupported discriminator %v", d)
	}
	kvs, err := EmitKeyVals(s)
	require.NoError(t, err)
	return kvs
}
