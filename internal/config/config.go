// Package config loads the chain profile parameters the codec and
// trie need at the edges: how many validators a slot table expects,
// and whether the compact codec should reject non-canonical input.
// Grounded on bureau-foundation-bureau's lib/config package, trimmed
// to this core's much smaller surface.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Profile names a chain parameter set (spec §2: Tiny and Full test
// profiles are the two the vector suite exercises).
type Profile string

const (
	Tiny Profile = "tiny"
	Full Profile = "full"
)

// ChainSpec holds the parameters that vary between test profiles
// without changing wire format.
type ChainSpec struct {
	Profile Profile `yaml:"profile"`

	// StrictCompact rejects non-shortest-form compact integers
	// (spec §4.1, P2) instead of silently accepting them. Vector
	// suites that assert canonicality set this true.
	StrictCompact bool `yaml:"strict_compact"`

	// ValidatorCount is the expected validator set size. It is
	// informational: no decoder reads it, κ's count is taken from the
	// wire, and it does not change how any field is framed.
	ValidatorCount uint16 `yaml:"validator_count"`

	// CoreCount is the expected number of cores. Like ValidatorCount it
	// is informational; the per-core fields (α, ρ, ϑ, φ) take their core
	// count from the wire.
	CoreCount uint16 `yaml:"core_count"`
}

// Default returns the Full profile's parameters.
func Default() *ChainSpec {
	return &ChainSpec{
		Profile:        Full,
		StrictCompact:  true,
		ValidatorCount: 1023,
		CoreCount:      341,
	}
}

// TinyDefault returns the Tiny profile's parameters, used by the small
// deterministic vector fixtures.
func TinyDefault() *ChainSpec {
	return &ChainSpec{
		Profile:        Tiny,
		StrictCompact:  true,
		ValidatorCount: 6,
		CoreCount:      2,
	}
}

// LoadFile reads a ChainSpec from a YAML file, starting from the Full
// profile's defaults so an incomplete file still yields a usable spec.
func LoadFile(path string) (*ChainSpec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: reading %s: %w", path, err)
	}

	spec := Default()
	if err := yaml.Unmarshal(data, spec); err != nil {
		return nil, fmt.Errorf("config: parsing %s: %w", path, err)
	}
	return spec, nil
}
