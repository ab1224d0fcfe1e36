// Package testutils holds the thin, test-only glue that loads JSON
// fixture vectors from disk, grounded on strawberry's
// tests/integration vector-loading helpers. It is deliberately small:
// walking a vector directory or running a suite runner is out of
// scope for this core (spec §1 Non-goals), but individual tests still
// need a one-line way to decode a fixture file.
package testutils

import (
	"encoding/hex"
	"encoding/json"
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

// LoadJSONVector unmarshals a JSON fixture file into v, failing the
// test immediately if the file is missing or malformed.
func LoadJSONVector(t *testing.T, path string, v interface{}) {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(data, v))
}

// MustHex decodes a hex string, failing the test on malformed input.
func MustHex(t *testing.T, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	require.NoError(t, err)
	return b
}
