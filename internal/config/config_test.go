package config

import (
	"log/slog"
	"strings"
	"testing"
)

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name        string
		config      Config
		wantErr     bool
		errorString string
	}{
		{
			name:    "valid config",
			config:  Config{Port: "8080", SQLiteDBPath: "./test.db"},
			wantErr: false,
		},
		{
			name:        "invalid port - non-numeric",
			config:      Config{Port: "abc", SQLiteDBPath: "./test.db"},
			wantErr:     true,
			errorString: "invalid port 'abc': must be a number",
		},
		{
			name:        "invalid port - out of range low",
			config:      Config{Port: "0", SQLiteDBPath: "./test.db"},
			wantErr:     true,
			errorString: "invalid port 0: must be between 1 and 65535",
		},
		{
			name:        "invalid port - out of range high",
			config:      Config{Port: "70000", SQLiteDBPath: "./test.db"},
			wantErr:     true,
			errorString: "invalid port 70000: must be between 1 and 65535",
		},
		{
			name:        "missing database path",
			config:      Config{Port: "8080", SQLiteDBPath: ""},
			wantErr:     true,
			errorString: "SQLite database path cannot be empty",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				if tt.errorString != "" && !strings.Contains(err.Error(), tt.errorString) {
					t.Fatalf("error %q does not contain %q", err.Error(), tt.errorString)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("SQLITE_DB_PATH", "")
	t.Setenv("LOG_LEVEL", "")

	cfg := Load()
	if cfg.Port != "8080" {
		t.Errorf("default port = %q, want 8080", cfg.Port)
	}
	if cfg.SQLiteDBPath != "./data/expenses.db" {
		t.Errorf("default db path = %q", cfg.SQLiteDBPath)
	}
	if cfg.LogLevel != slog.LevelInfo {
		t.Errorf("default log level = %v, want info", cfg.LogLevel)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("SQLITE_DB_PATH", "/tmp/x.db")
	t.Setenv("LOG_LEVEL", "debug")

	cfg := Load()
	if cfg.Port != "9090" {
		t.Errorf("port = %q, want 9090", cfg.Port)
	}
	if cfg.SQLiteDBPath != "/tmp/x.db" {
		t.Errorf("db path = %q, want /tmp/x.db", cfg.SQLiteDBPath)
	}
	if cfg.LogLevel != slog.LevelDebug {
		t.Errorf("log level = %v, want debug", cfg.LogLevel)
	}
}

func TestInvalidLogLevelFallsBack(t *testing.T) {
	t.Setenv("LOG_LEVEL", "noisy")
	cfg := Load()
	if cfg.LogLevel != slog.LevelInfo {
		t.Errorf("log level = %v, want info fallback", cfg.LogLevel)
	}
}
