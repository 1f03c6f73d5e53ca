// ABOUTME: Tests for configuration loading and parsing
// ABOUTME: Covers YAML loading, env var expansion, and duration parsing

package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

// testSecret satisfies the 32-byte minimum for auth.jwt_secret.
const testSecret = "config-test-secret-32-bytes-long!"

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}
	return path
}

func TestLoad_ValidConfig(t *testing.T) {
	path := writeConfig(t, `
server:
  http_addr: "0.0.0.0:8080"

database:
  path: "./test.db"

auth:
  jwt_secret: "`+testSecret+`"
  session_ttl: "24h"

logging:
  level: "debug"
  format: "json"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Server.HTTPAddr != "0.0.0.0:8080" {
		t.Errorf("expected http_addr '0.0.0.0:8080', got %q", cfg.Server.HTTPAddr)
	}
	if cfg.Database.Path != "./test.db" {
		t.Errorf("expected database path './test.db', got %q", cfg.Database.Path)
	}
	if cfg.Auth.SessionTTL != 24*time.Hour {
		t.Errorf("expected session_ttl 24h, got %v", cfg.Auth.SessionTTL)
	}
	if cfg.Logging.Level != "debug" || cfg.Logging.Format != "json" {
		t.Errorf("unexpected logging config: %+v", cfg.Logging)
	}
}

func TestLoad_DefaultSessionTTL(t *testing.T) {
	path := writeConfig(t, `
server:
  http_addr: "127.0.0.1:8080"
database:
  path: "./test.db"
auth:
  jwt_secret: "`+testSecret+`"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Auth.SessionTTL != DefaultSessionTTL {
		t.Errorf("expected default session_ttl %v, got %v", DefaultSessionTTL, cfg.Auth.SessionTTL)
	}
}

func TestLoad_EnvVarExpansion(t *testing.T) {
	t.Setenv("TASKDECK_TEST_SECRET", testSecret)

	path := writeConfig(t, `
server:
  http_addr: "127.0.0.1:8080"
database:
  path: "./test.db"
auth:
  jwt_secret: "${TASKDECK_TEST_SECRET}"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Auth.JWTSecret != testSecret {
		t.Errorf("expected expanded secret, got %q", cfg.Auth.JWTSecret)
	}
}

func TestLoad_EnvVarExpansion_UnsetVar(t *testing.T) {
	path := writeConfig(t, `
server:
  http_addr: "127.0.0.1:8080"
database:
  path: "./test.db"
auth:
  jwt_secret: "${TASKDECK_DEFINITELY_UNSET_VAR}"
`)

	// Unset vars expand to empty, which fails secret validation
	_, err := Load(path)
	if err == nil {
		t.Fatal("expected error for unset env var secret")
	}
	if !strings.Contains(err.Error(), "jwt_secret") {
		t.Errorf("expected jwt_secret error, got %v", err)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := writeConfig(t, "server: [not: valid")
	_, err := Load(path)
	if err == nil {
		t.Fatal("expected error for invalid YAML")
	}
}

func TestLoad_InvalidDuration(t *testing.T) {
	path := writeConfig(t, `
server:
  http_addr: "127.0.0.1:8080"
database:
  path: "./test.db"
auth:
  jwt_secret: "`+testSecret+`"
  session_ttl: "seven days"
`)

	_, err := Load(path)
	if err == nil {
		t.Fatal("expected error for invalid duration")
	}
	if !strings.Contains(err.Error(), "session_ttl") {
		t.Errorf("expected session_ttl error, got %v", err)
	}
}

func TestLoad_MissingRequiredFields(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{
			name: "missing http_addr",
			content: `
database:
  path: "./test.db"
auth:
  jwt_secret: "` + testSecret + `"
`,
			wantErr: "http_addr",
		},
		{
			name: "missing database path",
			content: `
server:
  http_addr: "127.0.0.1:8080"
auth:
  jwt_secret: "` + testSecret + `"
`,
			wantErr: "database.path",
		},
		{
			name: "short jwt secret",
			content: `
server:
  http_addr: "127.0.0.1:8080"
database:
  path: "./test.db"
auth:
  jwt_secret: "too-short"
`,
			wantErr: "jwt_secret",
		},
		{
			name: "bad logging level",
			content: `
server:
  http_addr: "127.0.0.1:8080"
database:
  path: "./test.db"
auth:
  jwt_secret: "` + testSecret + `"
logging:
  level: "verbose"
`,
			wantErr: "logging.level",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfig(t, tt.content)
			_, err := Load(path)
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("expected error containing %q, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestExpandEnvVars(t *testing.T) {
	t.Setenv("TASKDECK_TEST_VALUE", "expanded")

	tests := []struct {
		input string
		want  string
	}{
		{"plain string", "plain string"},
		{"${TASKDECK_TEST_VALUE}", "expanded"},
		{"prefix-${TASKDECK_TEST_VALUE}-suffix", "prefix-expanded-suffix"},
		{"${TASKDECK_UNSET_VALUE_XYZ}", ""},
	}

	for _, tt := range tests {
		if got := expandEnvVars(tt.input); got != tt.want {
			t.Errorf("expandEnvVars(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.Server.HTTPAddr == "" {
		t.Error("expected default http_addr")
	}
	if cfg.Auth.SessionTTL != DefaultSessionTTL {
		t.Errorf("expected default session TTL, got %v", cfg.Auth.SessionTTL)
	}
	// Default must not validate: the secret is deliberately empty
	if err := cfg.Validate(); err == nil {
		t.Error("expected Default() to fail validation without a secret")
	}
}
