// Package config loads the optional sln tool configuration.
//
// Configuration is a small YAML file controlling parser policy and
// telemetry opt-out. It is looked up first as .slnconfig.yaml in the
// working directory, then as sln/config.yaml under the user config
// directory. A missing file yields the defaults; a malformed file is an
// error, since silently ignoring a policy file would be worse than
// failing loudly.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

// FileName is the per-directory configuration file name.
const FileName = ".slnconfig.yaml"

// OptOutEnv is the environment variable that disables telemetry
// collection regardless of configuration. Any truthy value counts.
const OptOutEnv = "SLN_TELEMETRY_OPTOUT"

// Config is the parsed tool configuration.
type Config struct {
	Parser    ParserConfig    `yaml:"parser"`
	Telemetry TelemetryConfig `yaml:"telemetry"`
}

// ParserConfig controls solution parsing policy.
type ParserConfig struct {
	// Strict aborts parsing on a malformed project-declaration line.
	// Unset means strict; lenient mode must be opted into.
	Strict *bool `yaml:"strict"`
}

// TelemetryConfig controls telemetry property collection.
type TelemetryConfig struct {
	// OptOut disables collection entirely.
	OptOut bool `yaml:"optOut"`
}

// StrictProjects reports the effective malformed-declaration policy.
func (c *Config) StrictProjects() bool {
	if c.Parser.Strict == nil {
		return true
	}
	return *c.Parser.Strict
}

// TelemetryEnabled reports whether telemetry properties should be
// collected, honoring both the config file and OptOutEnv.
func (c *Config) TelemetryEnabled() bool {
	if c.Telemetry.OptOut {
		return false
	}
	if v := os.Getenv(OptOutEnv); v != "" {
		if optOut, err := strconv.ParseBool(v); err == nil && optOut {
			return false
		}
	}
	return true
}

// Load reads the configuration for a command running in workDir.
// The working-directory file wins over the user-level file; when
// neither exists the zero-value defaults apply.
func Load(fs afero.Fs, workDir string) (*Config, error) {
	candidates := []string{filepath.Join(workDir, FileName)}
	if userDir, err := os.UserConfigDir(); err == nil {
		candidates = append(candidates, filepath.Join(userDir, "sln", "config.yaml"))
	}

	for _, path := range candidates {
		data, err := afero.ReadFile(fs, path)
		if err != nil {
			continue
		}

		var cfg Config
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
		return &cfg, nil
	}

	return &Config{}, nil
}
