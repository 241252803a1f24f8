// Package config loads the pci-report configuration file.
//
// All settings have working defaults; a missing config file is not an error.
package config

import (
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/dstergiou/pci-host-report/internal/errors"
	"github.com/dstergiou/pci-host-report/internal/system"
)

// DefaultSite is the site label embedded in report file names when the
// config file does not override it.
const DefaultSite = "HQ"

type Config struct {
	Site         string        `yaml:"site"`
	ReportDir    string        `yaml:"reportDir"` // directory name under the invoking user's home
	Attestations Attestations  `yaml:"attestations"`
	Timeouts     TimeoutConfig `yaml:"timeouts"`
}

// Attestations are the static policy statements reported verbatim for
// controls that have no live query on this host.
type Attestations struct {
	VendorPatching string `yaml:"vendorPatching"`
	Antivirus      string `yaml:"antivirus"`
}

// TimeoutConfig defines configurable timeout durations in seconds
type TimeoutConfig struct {
	Short  int `yaml:"short"`  // quick lookups (default: 5s)
	Medium int `yaml:"medium"` // service queries (default: 10s)
	Long   int `yaml:"long"`   // full table listings (default: 30s)
}

func Default() *Config {
	return &Config{
		Site:      DefaultSite,
		ReportDir: "PCI_DSS_REPORT",
		Attestations: Attestations{
			VendorPatching: "Security patches are applied from the official distribution repositories " +
				"on the schedule defined in the patch management policy.",
			Antivirus: "Anti-virus software is not applicable to this system class; compensating " +
				"controls are documented in the anti-malware policy.",
		},
		Timeouts: TimeoutConfig{
			Short:  5,
			Medium: 10,
			Long:   30,
		},
	}
}

// Load reads the config from ~/.pci-report.yaml or /etc/pci-report/config.yaml,
// whichever exists first. A missing file yields defaults; a malformed file is
// an error.
func Load() (*Config, error) {
	paths := []string{}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".pci-report.yaml"))
	}
	paths = append(paths, "/etc/pci-report/config.yaml")

	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			return LoadFrom(path)
		}
	}
	return Default(), nil
}

// LoadFrom reads and validates a config file from an explicit path.
func LoadFrom(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "read config %s", path)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.Wrap(errors.ErrInvalidConfig, "parse config %s: %v", path, err)
	}

	if cfg.Site == "" {
		return nil, errors.Wrap(errors.ErrInvalidConfig, "site label must not be empty")
	}
	if cfg.ReportDir == "" {
		return nil, errors.Wrap(errors.ErrInvalidConfig, "reportDir must not be empty")
	}

	return cfg, nil
}

// ShortTimeout returns the configured short timeout as a duration.
func (c *Config) ShortTimeout() time.Duration {
	return durationOr(c.Timeouts.Short, system.TimeoutShort)
}

// MediumTimeout returns the configured medium timeout as a duration.
func (c *Config) MediumTimeout() time.Duration {
	return durationOr(c.Timeouts.Medium, system.TimeoutMedium)
}

// LongTimeout returns the configured long timeout as a duration.
func (c *Config) LongTimeout() time.Duration {
	return durationOr(c.Timeouts.Long, system.TimeoutLong)
}

func durationOr(seconds int, fallback time.Duration) time.Duration {
	if seconds <= 0 {
		return fallback
	}
	return time.Duration(seconds) * time.Second
}
