package telemetry

import (
	"crypto/sha256"
	"encoding/hex"
	"os"
	"runtime"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/afero"
)

// Property keys. Consumers (debug logging, future sinks) key off these
// rather than positional data.
const (
	KeyOS            = "os"
	KeyArch          = "arch"
	KeySessionID     = "session id"
	KeyMachineIDHash = "machine id hash"
	KeyCI            = "ci"
)

// hashSalt is mixed into the machine identifier before hashing so the
// resulting value cannot be matched against hashes of the same
// identifier produced by other tools.
const hashSalt = "sln-cli-2024"

// machineIDPaths are the host files consulted for a stable machine
// identifier, in preference order.
var machineIDPaths = []string{
	"/etc/machine-id",
	"/var/lib/dbus/machine-id",
}

// ciEnvVars mark well-known CI environments.
var ciEnvVars = []string{"CI", "TF_BUILD", "GITHUB_ACTIONS", "BUILD_ID"}

// Properties is one invocation's collected telemetry key/value set.
type Properties map[string]string

// Collector computes telemetry properties. It reads host files through
// an injected filesystem so tests can fix the machine identifier.
type Collector struct {
	fs afero.Fs
}

// NewCollector creates a Collector over the given filesystem.
func NewCollector(fs afero.Fs) *Collector {
	return &Collector{fs: fs}
}

// Collect computes the full property set for one invocation. Every call
// produces a fresh session id; all other values are stable per host.
func (c *Collector) Collect() Properties {
	return Properties{
		KeyOS:            runtime.GOOS,
		KeyArch:          runtime.GOARCH,
		KeySessionID:     uuid.NewString(),
		KeyMachineIDHash: c.machineIDHash(),
		KeyCI:            boolString(runningInCI()),
	}
}

// machineIDHash returns the salted sha256 of the host's machine
// identifier, hex-encoded. Falls back to the hostname when no machine-id
// file is readable, and to a fixed token when even that fails — the
// value must always be present and must never be the raw identifier.
func (c *Collector) machineIDHash() string {
	id := ""
	for _, path := range machineIDPaths {
		data, err := afero.ReadFile(c.fs, path)
		if err != nil {
			continue
		}
		id = strings.TrimSpace(string(data))
		break
	}
	if id == "" {
		if host, err := os.Hostname(); err == nil {
			id = host
		} else {
			id = "unknown"
		}
	}

	sum := sha256.Sum256([]byte(hashSalt + id))
	return hex.EncodeToString(sum[:])
}

// runningInCI reports whether any well-known CI marker variable is set.
func runningInCI() bool {
	for _, name := range ciEnvVars {
		if os.Getenv(name) != "" {
			return true
		}
	}
	return false
}

func boolString(b bool) string {
	if b {
		return "true"
	}
	return "false"
}
