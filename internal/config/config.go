// Package config defines the data structures related to configuration and
// includes functions for loading and validating the config.
package config

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/iwvelando/vendor-insights/pkg/constants"
	"github.com/iwvelando/vendor-insights/pkg/datetime"
	"github.com/iwvelando/vendor-insights/pkg/validation"
	"github.com/spf13/viper"
)

// Configuration holds all configuration for vendor-insights.
type Configuration struct {
	Logging  LoggingConfig  `yaml:"logging,omitempty"`
	Output   OutputConfig   `yaml:"output,omitempty"`
	Rotation RotationConfig `yaml:"rotation,omitempty"`
}

// LoggingConfig holds logging configuration options
type LoggingConfig struct {
	Level      string `yaml:"level,omitempty"`      // debug, info, warn, error
	Format     string `yaml:"format,omitempty"`     // json, console
	OutputFile string `yaml:"outputFile,omitempty"` // optional file output
}

// OutputConfig holds output format configuration options
type OutputConfig struct {
	Format string `yaml:"format,omitempty"` // pretty, json
}

// RotationConfig controls how calendar days are determined.
type RotationConfig struct {
	// Timezone names the single IANA zone whose calendar days key every
	// selection. Empty means UTC. All replicas must share it.
	Timezone   string `yaml:"timezone,omitempty"`
	RecentDays int    `yaml:"recentDays,omitempty"`
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigType("yml")
	v.SetEnvPrefix(constants.EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("rotation.timezone", constants.DefaultTimezone)
	v.SetDefault("rotation.recentDays", constants.DefaultRecentDays)
	return v
}

// LoadConfiguration takes a file path as input and loads the YAML-formatted
// configuration there.
func LoadConfiguration(configPath string) (*Configuration, error) {
	v := newViper()
	v.SetConfigFile(configPath)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file, %s", err)
	}
	return decode(v)
}

// LoadConfigurationFromReader loads YAML configuration from r.
func LoadConfigurationFromReader(r io.Reader) (*Configuration, error) {
	v := newViper()
	if err := v.ReadConfig(r); err != nil {
		return nil, fmt.Errorf("error reading config data, %s", err)
	}
	return decode(v)
}

// DefaultConfiguration returns the configuration used when no file exists.
func DefaultConfiguration() *Configuration {
	conf, err := decode(newViper())
	if err != nil {
		return &Configuration{}
	}
	return conf
}

func decode(v *viper.Viper) (*Configuration, error) {
	var configuration Configuration
	if err := v.Unmarshal(&configuration); err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %s", err)
	}
	return &configuration, nil
}

// Location resolves the rotation timezone, falling back to UTC when it is
// unknown. ValidateConfiguration reports that case as a warning.
func (c *Configuration) Location() *time.Location {
	loc, err := datetime.LoadLocation(c.Rotation.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// ValidateConfiguration performs general validation of the configuration and returns warnings
func (c *Configuration) ValidateConfiguration() []string {
	var warnings []string

	if warning := validation.ValidateTimezone(c.Rotation.Timezone); warning != "" {
		warnings = append(warnings, warning)
	}
	if warning := validation.ValidateRecentDays(c.Rotation.RecentDays); warning != "" {
		warnings = append(warnings, warning)
	}
	if c.Output.Format != "" {
		if err := validation.ValidateOutputFormat(c.Output.Format); err != nil {
			warnings = append(warnings, err.Error())
		}
	}
	return warnings
}
