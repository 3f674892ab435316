package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestBuildLogger(t *testing.T) {
	tests := []struct {
		name      string
		config    LoggingConfig
		override  string
		wantError bool
	}{
		{"Defaults", LoggingConfig{}, "", false},
		{"Console debug", LoggingConfig{Level: "debug", Format: "console"}, "", false},
		{"Override wins", LoggingConfig{Level: "bogus"}, "warn", false},
		{"Warning alias", LoggingConfig{Level: "warning"}, "", false},
		{"Invalid level", LoggingConfig{Level: "verbose"}, "", true},
		{"Invalid format", LoggingConfig{Format: "xml"}, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, err := BuildLogger(tt.config, tt.override)
			if tt.wantError {
				if err == nil {
					t.Error("expected error but got none")
				}
				return
			}
			if err != nil {
				t.Fatalf("BuildLogger() error = %v", err)
			}
			if logger == nil {
				t.Fatal("BuildLogger() returned nil logger")
			}
		})
	}
}

func TestBuildLoggerOutputFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "insights.log")

	logger, err := BuildLogger(LoggingConfig{OutputFile: path}, "")
	if err != nil {
		t.Fatalf("BuildLogger() error = %v", err)
	}
	logger.Info("hello")
	_ = logger.Sync()

	if _, err := os.Stat(path); err != nil {
		t.Fatalf("expected log file to exist: %v", err)
	}
}
