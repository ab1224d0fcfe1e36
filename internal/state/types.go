package state

import "github.com/jamcore/statecodec/internal/crypto"

// State holds one 19-field chain-state snapshot (spec §3.2). Every
// field is a pointer so an absent discriminator leaves it nil rather
// than zero-valued: a genesis state that omits ρ looks different from
// one that sets it to an explicit empty value.
type State struct {
	CurrentValidators  *ValidatorSet
	PreviousValidators *ValidatorList
	RecentHistory      *RecentHistory
	SafroleState       *OpaqueField
	PastJudgements     *Judgements
	QueuedValidators   *ValidatorList

	StatisticsCompleted *StatisticsTable
	StatisticsCurrent   *StatisticsTable

	CoreAuthorizerHashes *PerCoreHashLists
	Entropy              *EntropyPool
	Timeslot             *uint32

	WorkReportsPerCore *WorkReportsPerCore
	Authorizations     *Authorizations

	AccumulationQueue   *PerCoreOpaqueLists
	AccumulationHistory *PerEpochHashLists

	PrivilegedServices    *PrivilegedServices
	AccumulationOutputLog *OutputLog
	AccumulationResultMMR *OptionalHashList

	BandersnatchRingCommitment *RingCommitment
}

// ValidatorSet is κ: an expected count paired with the validator keys
// actually present on the wire (spec §3.2, §4.2).
type ValidatorSet struct {
	ExpectedCount uint16
	Keys          []crypto.ValidatorKey
}

// ValidatorList is the shape shared by λ and ι: a flat run of
// validator keys with no explicit count, inferred from the payload
// length (spec §4.2).
type ValidatorList struct {
	Keys []crypto.ValidatorKey
}

// HashPair is an ordered (key, value) pair of 32-byte hashes. Grouped
// records that map one hash to another (e.g. β's per-block work
// report index) are kept as an ordered slice of pairs rather than a
// Go map so that decode-then-encode reproduces the original byte
// order exactly (spec §3.4 byte-identical roundtrip).
type HashPair struct {
	Key   crypto.Hash
	Value crypto.Hash
}

// OptionalHash models a hash slot that may be absent, used by MMR peak
// lists where individual peaks can be unset (spec §3.2 discriminator
// 0x12; strawberry's BlockState.AccumulationResultMMR is the same
// shape, []*Hash).
type OptionalHash struct {
	Present bool
	Hash    crypto.Hash
}

// OptionalHashList is a Compact(len)-prefixed list of OptionalHash
// entries.
type OptionalHashList struct {
	Entries []OptionalHash
}

// HistoryEntry is one per-block record inside β (spec §3.2, grounded
// on strawberry's internal/state/block.go BlockState).
type HistoryEntry struct {
	HeaderHash        crypto.Hash
	StateRoot         crypto.Hash
	AccumulationPeaks []OptionalHash
	WorkReportHashes  []HashPair
}

// RecentHistory is β: a Compact(len)-prefixed run of HistoryEntry
// records terminated by a single 0x00 byte (spec §3.2 edge case:
// terminator present even when the list is empty).
type RecentHistory struct {
	Entries []HistoryEntry
}

// OpaqueField wraps a field this core does not interpret beyond
// byte-identical roundtrip (spec §9 Design Notes: γ and ρ are
// "opaque bytes with roundtrip"). The embedding caller's framing
// determines exactly which bytes belong to the field; the field
// codec never needs to look inside them.
type OpaqueField struct {
	Bytes []byte
}

// Judgements is ψ: three independently length-prefixed hash lists
// (spec §3.2).
type Judgements struct {
	Good  []crypto.Hash
	Bad   []crypto.Hash
	Wonky []crypto.Hash
}

// StatisticsRecord is one validator's per-epoch activity counters,
// grounded on strawberry's internal/state ValidatorStatistics.
type StatisticsRecord struct {
	NumBlocks               uint32
	NumTickets               uint64
	NumPreimages             uint64
	NumBytesAllPreimages     uint64
	NumGuaranteedReports     uint64
	NumAvailabilityAssurances uint64
}

// ValidatorSlotCount is the fixed number of statistics records packed
// into χ's completed and current tables (spec §3.2: "252 validator
// slots, no length prefix").
const ValidatorSlotCount = 252

// StatisticsTable is χ[0] or χ[1]: exactly ValidatorSlotCount fixed
// records with no length prefix, one per validator slot.
type StatisticsTable struct {
	Records [ValidatorSlotCount]StatisticsRecord
}

// PerCoreHashLists is α: one Compact(len)-prefixed hash list per core
// (spec §3.2, the queued core authorizer pool hashes).
type PerCoreHashLists struct {
	Cores [][]crypto.Hash
}

// PerCoreOpaqueLists is ϑ: one Compact(len)-prefixed list of opaque,
// individually length-framed byte blobs per core (spec §3.2, the
// accumulation queue holds work-report-shaped items this core does
// not interpret).
type PerCoreOpaqueLists struct {
	Cores [][][]byte
}

// PerEpochHashLists is ξ: one Compact(len)-prefixed hash list per
// tracked epoch slot (spec §3.2, accumulation history).
type PerEpochHashLists struct {
	Epochs [][]crypto.Hash
}

// EntropyPool is η. The real chain always carries four accumulator
// hashes, but a genesis vector may supply a single stub hash instead;
// the two shapes are disambiguated purely by payload length (32 bytes
// vs 128 bytes), since η carries no internal length prefix.
type EntropyPool struct {
	Hashes []crypto.Hash // len is 1 (genesis stub) or 4 (steady state)
}

// WorkReportSlot is one core's entry in ρ: either absent, or present
// carrying an opaque, length-framed report body this core never
// interprets (spec §9 Design Notes; grounded on strawberry's
// per-core CoreAssignments, where a core need not have an
// in-progress report).
type WorkReportSlot struct {
	Present bool
	Report  []byte
}

// WorkReportsPerCore is ρ: one WorkReportSlot per core.
type WorkReportsPerCore struct {
	Cores []WorkReportSlot
}

// AuthEntrySize is the fixed padded width of one authorization pool
// or queue entry (spec §3.2). The entry's real content occupies a
// prefix of these bytes; the remainder is padding that must be
// preserved byte-for-byte across a decode/encode roundtrip even
// though it is conventionally zero.
const AuthEntrySize = 305

// AuthEntry is one fixed-width, opaque authorization pool/queue slot.
type AuthEntry [AuthEntrySize]byte

// Authorizations is φ: a Compact(len)-prefixed list of per-core
// AuthEntry pools, followed by the equivalently shaped queues
// (spec §3.2).
type Authorizations struct {
	Pools  [][]AuthEntry
	Queues [][]AuthEntry
}

// PrivilegedServiceGas pairs a service identifier with a fixed gas
// allowance (spec §3.2 supplemented field: privileged services).
type PrivilegedServiceGas struct {
	ServiceID uint32
	Gas       uint64
}

// PrivilegedServices names the three privileged service roles plus an
// arbitrary-length gas allowance table (spec §3.2 supplement, grounded
// on the Gray Paper's manager/assign/designate service roles).
type PrivilegedServices struct {
	Manager   uint32
	Assigner  uint32
	Delegator uint32
	Gas       []PrivilegedServiceGas
}

// OutputLogEntry pairs a service identifier with the hash it wrote to
// the accumulation output log (spec §3.2 supplement).
type OutputLogEntry struct {
	ServiceID uint32
	Hash      crypto.Hash
}

// OutputLog is the accumulation output log: a Compact(len)-prefixed
// list of OutputLogEntry records (spec §3.2 supplement).
type OutputLog struct {
	Entries []OutputLogEntry
}

// RingCommitment reuses the crypto package's fixed-width Bandersnatch
// ring commitment type (spec §3.2 supplement, discriminator 0x13).
type RingCommitment = crypto.RingCommitment
