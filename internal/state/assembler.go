// Package state assembles the 19-field chain-state snapshot to and
// from the flat key-value set the trie stores (spec §4.3). Each field
// is dispatched by its one-byte discriminator through a data-driven
// table rather than a macro or a reflection-based generic marshaler
// (spec §9 Design Notes): a discriminator names an encode function, a
// decode function, and nothing else, so adding a field never touches
// existing dispatch logic.
package state

import (
	"sort"

	"github.com/jamcore/statecodec/internal/config"
	"github.com/jamcore/statecodec/internal/statekey"
	"github.com/jamcore/statecodec/pkg/log"
	"github.com/jamcore/statecodec/pkg/serialization/codec/jam"
)

// KeyValue is one raw trie entry: a 31-byte state key and its
// payload bytes. The payload's length is authoritative framing for
// field codecs that carry no internal length prefix of their own
// (e.g. γ, λ, ι, η) — spec §6.1.
type KeyValue struct {
	Key   statekey.StateKey
	Value []byte
}

type fieldOps struct {
	decode func(s *State, r *jam.Reader) error
	encode func(s *State, w *jam.Writer) (bool, error) // false: field absent, nothing written
}

var dispatch = map[Discriminator]fieldOps{
	DiscCurrentValidators: {
		decode: func(s *State, r *jam.Reader) error {
			v, err := decodeCurrentValidators(r)
			if err != nil {
				return err
			}
			s.CurrentValidators = v
			return nil
		},
		encode: func(s *State, w *jam.Writer) (bool, error) {
			if s.CurrentValidators == nil {
				return false, nil
			}
			encodeCurrentValidators(w, s.CurrentValidators)
			return true, nil
		},
	},
	DiscPreviousValidators: {
		decode: func(s *State, r *jam.Reader) error {
			v, err := decodeValidatorList(r)
			if err != nil {
				return err
			}
			s.PreviousValidators = v
			return nil
		},
		encode: func(s *State, w *jam.Writer) (bool, error) {
			if s.PreviousValidators == nil {
				return false, nil
			}
			encodeValidatorList(w, s.PreviousValidators)
			return true, nil
		},
	},
	DiscRecentHistory: {
		decode: func(s *State, r *jam.Reader) error {
			v, err := decodeRecentHistory(r)
			if err != nil {
				return err
			}
			s.RecentHistory = v
			return nil
		},
		encode: func(s *State, w *jam.Writer) (bool, error) {
			if s.RecentHistory == nil {
				return false, nil
			}
			encodeRecentHistory(w, s.RecentHistory)
			return true, nil
		},
	},
	DiscSafroleState: {
		decode: func(s *State, r *jam.Reader) error {
			v, err := decodeSafroleState(r)
			if err != nil {
				return err
			}
			s.SafroleState = v
			return nil
		},
		encode: func(s *State, w *jam.Writer) (bool, error) {
			if s.SafroleState == nil {
				return false, nil
			}
			encodeSafroleState(w, s.SafroleState)
			return true, nil
		},
	},
	DiscPastJudgements: {
		decode: func(s *State, r *jam.Reader) error {
			v, err := decodePastJudgements(r)
			if err != nil {
				return err
			}
			s.PastJudgements = v
			return nil
		},
		encode: func(s *State, w *jam.Writer) (bool, error) {
			if s.PastJudgements == nil {
				return false, nil
			}
			encodePastJudgements(w, s.PastJudgements)
			return true, nil
		},
	},
	DiscQueuedValidators: {
		decode: func(s *State, r *jam.Reader) error {
			v, err := decodeValidatorList(r)
			if err != nil {
				return err
			}
			s.QueuedValidators = v
			return nil
		},
		encode: func(s *State, w *jam.Writer) (bool, error) {
			if s.QueuedValidators == nil {
				return false, nil
			}
			encodeValidatorList(w, s.QueuedValidators)
			return true, nil
		},
	},
	DiscStatisticsCompleted: {
		decode: func(s *State, r *jam.Reader) error {
			v, err := decodeStatisticsTable(r)
			if err != nil {
				return err
			}
			s.StatisticsCompleted = v
			return nil
		},
		encode: func(s *State, w *jam.Writer) (bool, error) {
			if s.StatisticsCompleted == nil {
				return false, nil
			}
			encodeStatisticsTable(w, s.StatisticsCompleted)
			return true, nil
		},
	},
	DiscStatisticsCurrent: {
		decode: func(s *State, r *jam.Reader) error {
			v, err := decodeStatisticsTable(r)
			if err != nil {
				return err
			}
			s.StatisticsCurrent = v
			return nil
		},
		encode: func(s *State, w *jam.Writer) (bool, error) {
			if s.StatisticsCurrent == nil {
				return false, nil
			}
			encodeStatisticsTable(w, s.StatisticsCurrent)
			return true, nil
		},
	},
	DiscCoreAuthorizerHashes: {
		decode: func(s *State, r *jam.Reader) error {
			v, err := decodeCoreAuthorizerHashes(r)
			if err != nil {
				return err
			}
			s.CoreAuthorizerHashes = v
			return nil
		},
		encode: func(s *State, w *jam.Writer) (bool, error) {
			if s.CoreAuthorizerHashes == nil {
				return false, nil
			}
			encodeCoreAuthorizerHashes(w, s.CoreAuthorizerHashes)
			return true, nil
		},
	},
	DiscEntropy: {
		decode: func(s *State, r *jam.Reader) error {
			v, err := decodeEntropy(r)
			if err != nil {
				return err
			}
			s.Entropy = v
			return nil
		},
		encode: func(s *State, w *jam.Writer) (bool, error) {
			if s.Entropy == nil {
				return false, nil
			}
			encodeEntropy(w, s.Entropy)
			return true, nil
		},
	},
	DiscTimeslot: {
		decode: func(s *State, r *jam.Reader) error {
			v, err := decodeTimeslot(r)
			if err != nil {
				return err
			}
			s.Timeslot = &v
			return nil
		},
		encode: func(s *State, w *jam.Writer) (bool, error) {
			if s.Timeslot == nil {
				return false, nil
			}
			encodeTimeslot(w, *s.Timeslot)
			return true, nil
		},
	},
	DiscWorkReportsPerCore: {
		decode: func(s *State, r *jam.Reader) error {
			v, err := decodeWorkReportsPerCore(r)
			if err != nil {
				return err
			}
			s.WorkReportsPerCore = v
			return nil
		},
		encode: func(s *State, w *jam.Writer) (bool, error) {
			if s.WorkReportsPerCore == nil {
				return false, nil
			}
			encodeWorkReportsPerCore(w, s.WorkReportsPerCore)
			return true, nil
		},
	},
	DiscAuthorizations: {
		decode: func(s *State, r *jam.Reader) error {
			v, err := decodeAuthorizations(r)
			if err != nil {
				return err
			}
			s.Authorizations = v
			return nil
		},
		encode: func(s *State, w *jam.Writer) (bool, error) {
			if s.Authorizations == nil {
				return false, nil
			}
			encodeAuthorizations(w, s.Authorizations)
			return true, nil
		},
	},
	DiscAccumulationQueue: {
		decode: func(s *State, r *jam.Reader) error {
			v, err := decodeAccumulationQueue(r)
			if err != nil {
				return err
			}
			s.AccumulationQueue = v
			return nil
		},
		encode: func(s *State, w *jam.Writer) (bool, error) {
			if s.AccumulationQueue == nil {
				return false, nil
			}
			encodeAccumulationQueue(w, s.AccumulationQueue)
			return true, nil
		},
	},
	DiscAccumulationHistory: {
		decode: func(s *State, r *jam.Reader) error {
			v, err := decodeAccumulationHistory(r)
			if err != nil {
				return err
			}
			s.AccumulationHistory = v
			return nil
		},
		encode: func(s *State, w *jam.Writer) (bool, error) {
			if s.AccumulationHistory == nil {
				return false, nil
			}
			encodeAccumulationHistory(w, s.AccumulationHistory)
			return true, nil
		},
	},
	DiscPrivilegedServices: {
		decode: func(s *State, r *jam.Reader) error {
			v, err := decodePrivilegedServices(r)
			if err != nil {
				return err
			}
			s.PrivilegedServices = v
			return nil
		},
		encode: func(s *State, w *jam.Writer) (bool, error) {
			if s.PrivilegedServices == nil {
				return false, nil
			}
			encodePrivilegedServices(w, s.PrivilegedServices)
			return true, nil
		},
	},
	DiscAccumulationOutputLog: {
		decode: func(s *State, r *jam.Reader) error {
			v, err := decodeAccumulationOutputLog(r)
			if err != nil {
				return err
			}
			s.AccumulationOutputLog = v
			return nil
		},
		encode: func(s *State, w *jam.Writer) (bool, error) {
			if s.AccumulationOutputLog == nil {
				return false, nil
			}
			encodeAccumulationOutputLog(w, s.AccumulationOutputLog)
			return true, nil
		},
	},
	DiscAccumulationResultMMR: {
		decode: func(s *State, r *jam.Reader) error {
			v, err := decodeAccumulationResultMMR(r)
			if err != nil {
				return err
			}
			s.AccumulationResultMMR = v
			return nil
		},
		encode: func(s *State, w *jam.Writer) (bool, error) {
			if s.AccumulationResultMMR == nil {
				return false, nil
			}
			encodeAccumulationResultMMR(w, s.AccumulationResultMMR)
			return true, nil
		},
	},
	DiscBandersnatchRingCommitment: {
		decode: func(s *State, r *jam.Reader) error {
			v, err := decodeRingCommitment(r)
			if err != nil {
				return err
			}
			s.BandersnatchRingCommitment = v
			return nil
		},
		encode: func(s *State, w *jam.Writer) (bool, error) {
			if s.BandersnatchRingCommitment == nil {
				return false, nil
			}
			encodeRingCommitment(w, s.BandersnatchRingCommitment)
			return true, nil
		},
	},
}

// ParseKeyVals decodes a flat key-value set into a State (spec §4.3).
// An unrecognized discriminator or one seen twice is rejected rather
// than silently ignored, since a malformed or truncated state must
// fail loudly (spec §7). spec is the profile driving
// ChainSpec.StrictCompact (spec §6.3): every nested compact integer a
// field decoder reads inherits this cursor's strictness, since it is
// the cursor - not a parameter threaded through each field function -
// that carries the flag. A nil spec decodes leniently, same as the
// zero-value ChainSpec.
func ParseKeyVals(spec *config.ChainSpec, kvs []KeyValue) (*State, error) {
	strict := spec != nil && spec.StrictCompact
	s := &State{}
	seen := make(map[Discriminator]bool, len(kvs))
	for _, kv := range kvs {
		d := Discriminator(kv.Key[0])
		if !d.Known() {
			log.State.Warn().Uint8("discriminator", kv.Key[0]).Msg("unknown discriminator")
			return nil, &ErrUnknownDiscriminator{Discriminator: kv.Key[0]}
		}
		if seen[d] {
			log.State.Warn().Str("field", d.Name()).Msg("duplicate discriminator")
			return nil, &ErrDuplicateDiscriminator{Discriminator: kv.Key[0]}
		}
		seen[d] = true

		ops := dispatch[d]
		r := jam.NewReaderStrict(kv.Value, strict)
		if err := ops.decode(s, r); err != nil {
			log.State.Error().Err(err).Str("field", d.Name()).Int("offset", r.Offset()).Msg("field decode failed")
			return nil, wrapField(d.Name(), err)
		}
		if !r.AtEnd() {
			log.State.Error().Str("field", d.Name()).Int("offset", r.Offset()).Msg("trailing bytes after field decode")
			return nil, wrapField(d.Name(), jam.ErrFieldShape)
		}
	}
	log.State.Debug().Int("fields", len(kvs)).Msg("parsed state key-values")
	return s, nil
}

// EmitKeyVals encodes a State back into a flat key-value set, in
// ascending discriminator order (spec §4.3, §4.4: the trie is
// order-independent, but a stable emission order keeps output
// deterministic for callers that compare byte streams directly).
// Fields left nil are omitted rather than emitted as zero values.
func EmitKeyVals(s *State) ([]KeyValue, error) {
	discs := make([]Discriminator, 0, len(dispatch))
	for d := range dispatch {
		discs = append(discs, d)
	}
	sort.Slice(discs, func(i, j int) bool { return discs[i] < discs[j] })

	out := make([]KeyValue, 0, len(discs))
	for _, d := range discs {
		ops := dispatch[d]
		w := jam.NewWriter()
		present, err := ops.encode(s, w)
		if err != nil {
			log.State.Error().Err(err).Str("field", d.Name()).Msg("field encode failed")
			return nil, wrapField(d.Name(), err)
		}
		if !present {
			continue
		}
		out = append(out, KeyValue{Key: statekey.New(byte(d)), Value: w.Bytes()})
	}
	log.State.Debug().Int("fields", len(out)).Msg("emitted state key-values")
	return out, nil
}
