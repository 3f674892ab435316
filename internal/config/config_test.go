package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func writeFile(t *testing.T, name, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(contents), 0600); err != nil {
		t.Fatalf("failed to write temp file: %v", err)
	}
	return path
}

func TestLoadConfiguration(t *testing.T) {
	tests := []struct {
		name       string
		configPath string
		wantError  bool
	}{
		{
			name:       "Non-existent config file",
			configPath: "nonexistent.yaml",
			wantError:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config, err := LoadConfiguration(tt.configPath)
			if tt.wantError {
				if err == nil {
					t.Errorf("LoadConfiguration() expected error but got none")
				}
				return
			}
			if err != nil {
				t.Errorf("LoadConfiguration() error = %v", err)
				return
			}
			if config == nil {
				t.Errorf("LoadConfiguration() returned nil config")
			}
		})
	}
}

func TestLoadConfigurationValues(t *testing.T) {
	path := writeFile(t, "config.yaml", `logging:
  level: debug
  format: console
output:
  format: json
rotation:
  timezone: Europe/Lisbon
  recentDays: 14
`)

	conf, err := LoadConfiguration(path)
	if err != nil {
		t.Fatalf("LoadConfiguration() error = %v", err)
	}

	if conf.Logging.Level != "debug" || conf.Logging.Format != "console" {
		t.Errorf("unexpected logging config: %+v", conf.Logging)
	}
	if conf.Output.Format != "json" {
		t.Errorf("expected output format json, got %s", conf.Output.Format)
	}
	if conf.Rotation.Timezone != "Europe/Lisbon" || conf.Rotation.RecentDays != 14 {
		t.Errorf("unexpected rotation config: %+v", conf.Rotation)
	}
}

func TestLoadConfigurationFromReaderDefaults(t *testing.T) {
	conf, err := LoadConfigurationFromReader(strings.NewReader("logging:\n  level: warn\n"))
	if err != nil {
		t.Fatalf("LoadConfigurationFromReader() error = %v", err)
	}

	if conf.Rotation.Timezone != "UTC" {
		t.Errorf("expected default timezone UTC, got %q", conf.Rotation.Timezone)
	}
	if conf.Rotation.RecentDays != 7 {
		t.Errorf("expected default recent days 7, got %d", conf.Rotation.RecentDays)
	}
	if conf.Location() != time.UTC {
		t.Errorf("expected UTC location, got %v", conf.Location())
	}
}

func TestLoadConfigurationFromReaderInvalid(t *testing.T) {
	if _, err := LoadConfigurationFromReader(strings.NewReader("logging: [unclosed")); err == nil {
		t.Fatal("expected error for invalid YAML")
	}
}

func TestEnvironmentOverride(t *testing.T) {
	t.Setenv("VENDOR_INSIGHTS_ROTATION_TIMEZONE", "America/Chicago")

	conf := DefaultConfiguration()
	if conf.Rotation.Timezone != "America/Chicago" {
		t.Errorf("expected env override, got %q", conf.Rotation.Timezone)
	}
}

func TestValidateConfiguration(t *testing.T) {
	tests := []struct {
		name          string
		conf          Configuration
		expectedCount int
		contains      string
	}{
		{
			name:          "Valid configuration",
			conf:          Configuration{Rotation: RotationConfig{Timezone: "UTC", RecentDays: 7}, Output: OutputConfig{Format: "pretty"}},
			expectedCount: 0,
		},
		{
			name:          "Unknown timezone",
			conf:          Configuration{Rotation: RotationConfig{Timezone: "Atlantis/Capital"}},
			expectedCount: 1,
			contains:      "Atlantis/Capital",
		},
		{
			name:          "Recent days out of range",
			conf:          Configuration{Rotation: RotationConfig{RecentDays: 1000}},
			expectedCount: 1,
			contains:      "1000",
		},
		{
			name:          "Bad output format",
			conf:          Configuration{Output: OutputConfig{Format: "csv"}},
			expectedCount: 1,
			contains:      "csv",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			warnings := tt.conf.ValidateConfiguration()
			if len(warnings) != tt.expectedCount {
				t.Fatalf("expected %d warnings, got %d: %v", tt.expectedCount, len(warnings), warnings)
			}
			if tt.contains != "" && !strings.Contains(warnings[0], tt.contains) {
				t.Errorf("warning %q does not mention %q", warnings[0], tt.contains)
			}
		})
	}
}

func TestLocationFallback(t *testing.T) {
	conf := Configuration{Rotation: RotationConfig{Timezone: "Atlantis/Capital"}}
	if conf.Location() != time.UTC {
		t.Errorf("expected UTC fallback, got %v", conf.Location())
	}
}
