// Package config loads the YAML configuration of the inetctl tool.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/opd-ai/inetaddr/identity"
	"github.com/opd-ai/inetaddr/inet"
)

// Config holds the tool configuration loaded from a YAML file.
type Config struct {
	// DefaultPort is used for host strings without an explicit port.
	DefaultPort uint16 `yaml:"defaultPort"`
	// DefaultKey is used for host strings without a "key@" prefix.
	DefaultKey *identity.Key `yaml:"defaultKey"`
	// Source is the local address reachability is scored from.
	Source *inet.Addr `yaml:"source"`
	// InterfaceScope is one of all, local, nonlocal, private or public.
	InterfaceScope string `yaml:"interfaceScope"`
	// InterfaceFamily is one of all, ipv4 or ipv6.
	InterfaceFamily string `yaml:"interfaceFamily"`
	// StrictKeys rejects keys that are not valid compressed secp256k1 points.
	StrictKeys bool `yaml:"strictKeys"`
	// LogLevel is a logrus level name.
	LogLevel string `yaml:"logLevel"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load reads and unmarshals the configuration from the specified YAML file path.
func Load(filePath string) (*Config, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", filePath, err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal config file %s: %w", filePath, err)
	}

	return cfg, nil
}

// Parse unmarshals YAML data, applies defaults and validates the result.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.InterfaceScope == "" {
		c.InterfaceScope = inet.ScopeAll.String()
	}
	if c.InterfaceFamily == "" {
		c.InterfaceFamily = inet.FamilyAll.String()
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
}

// Validate checks the enumerated fields and, with StrictKeys, the default
// key.
func (c *Config) Validate() error {
	if _, err := inet.ParseScope(c.InterfaceScope); err != nil {
		return err
	}
	if _, err := inet.ParseFamily(c.InterfaceFamily); err != nil {
		return err
	}
	if c.StrictKeys && c.DefaultKey != nil && !c.DefaultKey.IsZero() {
		if err := identity.Validate(*c.DefaultKey); err != nil {
			return fmt.Errorf("defaultKey: %w", err)
		}
	}
	return nil
}
