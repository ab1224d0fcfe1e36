package state

// Discriminator identifies one top-level state field on the wire
// (spec §3.2). The set below is closed: an unrecognized byte is
// rejected on decode as UnknownDiscriminator.
type Discriminator byte

const (
	DiscCurrentValidators          Discriminator = 0x01 // κ
	DiscPreviousValidators         Discriminator = 0x02 // λ
	DiscRecentHistory              Discriminator = 0x03 // β
	DiscSafroleState               Discriminator = 0x04 // γ
	DiscPastJudgements             Discriminator = 0x05 // ψ
	DiscQueuedValidators           Discriminator = 0x06 // ι
	DiscStatisticsCompleted        Discriminator = 0x07 // χ[0]
	DiscStatisticsCurrent          Discriminator = 0x08 // χ[1]
	DiscCoreAuthorizerHashes       Discriminator = 0x09 // α
	DiscEntropy                    Discriminator = 0x0A // η
	DiscTimeslot                   Discriminator = 0x0B // τ
	DiscWorkReportsPerCore         Discriminator = 0x0C // ρ
	DiscAuthorizations             Discriminator = 0x0D // φ
	DiscAccumulationQueue          Discriminator = 0x0E // ϑ
	DiscAccumulationHistory        Discriminator = 0x0F // ξ
	DiscPrivilegedServices         Discriminator = 0x10
	DiscAccumulationOutputLog      Discriminator = 0x11
	DiscAccumulationResultMMR      Discriminator = 0x12
	DiscBandersnatchRingCommitment Discriminator = 0x13
)

// fieldNames gives every known discriminator an explicit English name
// for error messages and logging (spec Design Notes: Greek letters are
// human-facing labels, the discriminator byte is the stable identity).
var fieldNames = map[Discriminator]string{
	DiscCurrentValidators:         "current_validators",
	DiscPreviousValidators:        "previous_validators",
	DiscRecentHistory:             "recent_history",
	DiscSafroleState:              "safrole_state",
	DiscPastJudgements:            "past_judgements",
	DiscQueuedValidators:          "queued_validators",
	DiscStatisticsCompleted:       "statistics_completed",
	DiscStatisticsCurrent:         "statistics_current",
	DiscCoreAuthorizerHashes:      "core_authorizer_hashes",
	DiscEntropy:                   "entropy",
	DiscTimeslot:                  "timeslot",
	DiscWorkReportsPerCore:        "work_reports_per_core",
	DiscAuthorizations:            "authorizations",
	DiscAccumulationQueue:         "accumulation_queue",
	DiscAccumulationHistory:       "accumulation_history",
	DiscPrivilegedServices:        "privileged_services",
	DiscAccumulationOutputLog:     "accumulation_output_log",
	DiscAccumulationResultMMR:     "accumulation_result_mmr",
	DiscBandersnatchRingCommitment: "bandersnatch_ring_commitment",
}

// Name returns the field's English name, or "unknown" if the
// discriminator is not part of the closed set.
func (d Discriminator) Name() string {
	if name, ok := fieldNames[d]; ok {
		return name
	}
	return "unknown"
}

// Known reports whether d is one of the 19 recognized discriminators.
func (d Discriminator) Known() bool {
	_, ok := fieldNames[d]
	return ok
}
