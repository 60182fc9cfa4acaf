package telemetry

import (
	"crypto/sha256"
	"encoding/hex"
	"runtime"
	"testing"

	"github.com/google/uuid"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestCollectProperties verifies the full property set: platform facts,
// a parseable session id, and a machine id hash derived from the
// machine-id file.
func TestCollectProperties(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/etc/machine-id", []byte("abc123\n"), 0o644))

	props := NewCollector(fs).Collect()

	assert.Equal(t, runtime.GOOS, props[KeyOS])
	assert.Equal(t, runtime.GOARCH, props[KeyArch])

	_, err := uuid.Parse(props[KeySessionID])
	assert.NoError(t, err, "session id should be a valid UUID")

	// The hash is the salted sha256 of the trimmed file content.
	sum := sha256.Sum256([]byte(hashSalt + "abc123"))
	assert.Equal(t, hex.EncodeToString(sum[:]), props[KeyMachineIDHash])

	// Never the raw identifier.
	assert.NotEqual(t, "abc123", props[KeyMachineIDHash])
}

// TestCollectSessionIDFresh verifies that each invocation gets its own
// session id while host-stable values repeat.
func TestCollectSessionIDFresh(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/etc/machine-id", []byte("abc123"), 0o644))
	c := NewCollector(fs)

	first := c.Collect()
	second := c.Collect()

	assert.NotEqual(t, first[KeySessionID], second[KeySessionID])
	assert.Equal(t, first[KeyMachineIDHash], second[KeyMachineIDHash])
}

// TestMachineIDFallback verifies that a missing machine-id file still
// yields a non-empty hash (hostname fallback).
func TestMachineIDFallback(t *testing.T) {
	props := NewCollector(afero.NewMemMapFs()).Collect()

	assert.NotEmpty(t, props[KeyMachineIDHash])
	assert.Len(t, props[KeyMachineIDHash], 64, "sha256 hex digest length")
}

// TestCIDetection verifies the CI marker.
func TestCIDetection(t *testing.T) {
	for _, name := range ciEnvVars {
		t.Setenv(name, "")
	}
	props := NewCollector(afero.NewMemMapFs()).Collect()
	assert.Equal(t, "false", props[KeyCI])

	t.Setenv("CI", "true")
	props = NewCollector(afero.NewMemMapFs()).Collect()
	assert.Equal(t, "true", props[KeyCI])
}
