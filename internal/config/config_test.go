// ABOUTME: Tests for configuration loading and parsing
// ABOUTME: Covers YAML loading, defaults, env var expansion, and validation

package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}
	return configPath
}

func TestLoad_ValidConfig(t *testing.T) {
	configPath := writeConfig(t, `
server:
  grpc_addr: "0.0.0.0:50051"
  http_addr: "0.0.0.0:8080"

store:
  id_strategy: "high_water"
  seed_path: "/etc/bulletin/seed.yaml"

logging:
  level: "debug"
  format: "json"

metrics:
  enabled: true
  path: "/metrics"

shutdown:
  timeout: "10s"
`)

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Server.GRPCAddr != "0.0.0.0:50051" {
		t.Errorf("Server.GRPCAddr = %q, want %q", cfg.Server.GRPCAddr, "0.0.0.0:50051")
	}
	if cfg.Server.HTTPAddr != "0.0.0.0:8080" {
		t.Errorf("Server.HTTPAddr = %q, want %q", cfg.Server.HTTPAddr, "0.0.0.0:8080")
	}
	if cfg.Store.IDStrategy != "high_water" {
		t.Errorf("Store.IDStrategy = %q, want %q", cfg.Store.IDStrategy, "high_water")
	}
	if cfg.Store.SeedPath != "/etc/bulletin/seed.yaml" {
		t.Errorf("Store.SeedPath = %q, want %q", cfg.Store.SeedPath, "/etc/bulletin/seed.yaml")
	}
	if cfg.Logging.Level != "debug" || cfg.Logging.Format != "json" {
		t.Errorf("Logging = %+v, want debug/json", cfg.Logging)
	}
	if !cfg.Metrics.Enabled || cfg.Metrics.Path != "/metrics" {
		t.Errorf("Metrics = %+v, want enabled at /metrics", cfg.Metrics)
	}
	if cfg.Shutdown.Timeout != 10*time.Second {
		t.Errorf("Shutdown.Timeout = %v, want %v", cfg.Shutdown.Timeout, 10*time.Second)
	}
}

func TestLoad_DefaultsFillMissingSections(t *testing.T) {
	configPath := writeConfig(t, `
server:
  grpc_addr: "localhost:6000"
`)

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Server.GRPCAddr != "localhost:6000" {
		t.Errorf("Server.GRPCAddr = %q, want %q", cfg.Server.GRPCAddr, "localhost:6000")
	}
	if cfg.Server.HTTPAddr != "127.0.0.1:8080" {
		t.Errorf("Server.HTTPAddr = %q, want default", cfg.Server.HTTPAddr)
	}
	if cfg.Store.IDStrategy != "max_plus_one" {
		t.Errorf("Store.IDStrategy = %q, want max_plus_one", cfg.Store.IDStrategy)
	}
	if cfg.Shutdown.Timeout != 5*time.Second {
		t.Errorf("Shutdown.Timeout = %v, want 5s", cfg.Shutdown.Timeout)
	}
}

func TestLoad_EnvVarExpansion(t *testing.T) {
	t.Setenv("BULLETIN_TEST_SEED", "/tmp/seed.toml")
	t.Setenv("BULLETIN_TEST_GRPC", "10.0.0.1:50051")

	configPath := writeConfig(t, `
server:
  grpc_addr: "${BULLETIN_TEST_GRPC}"
store:
  seed_path: "${BULLETIN_TEST_SEED}"
`)

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Server.GRPCAddr != "10.0.0.1:50051" {
		t.Errorf("Server.GRPCAddr = %q, want expanded value", cfg.Server.GRPCAddr)
	}
	if cfg.Store.SeedPath != "/tmp/seed.toml" {
		t.Errorf("Store.SeedPath = %q, want expanded value", cfg.Store.SeedPath)
	}
}

func TestLoad_InvalidDuration(t *testing.T) {
	configPath := writeConfig(t, `
shutdown:
  timeout: "soon"
`)

	_, err := Load(configPath)
	if err == nil {
		t.Fatal("Load() expected error for invalid duration")
	}
	if !strings.Contains(err.Error(), "shutdown.timeout") {
		t.Errorf("error = %v, want mention of shutdown.timeout", err)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("Load() expected error for missing file")
	}
	if !strings.Contains(err.Error(), "reading config file") {
		t.Errorf("error = %v, want reading config file", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"default is valid", func(*Config) {}, ""},
		{"missing grpc addr", func(c *Config) { c.Server.GRPCAddr = "" }, "server.grpc_addr"},
		{"missing http addr", func(c *Config) { c.Server.HTTPAddr = "" }, "server.http_addr"},
		{"bad strategy", func(c *Config) { c.Store.IDStrategy = "uuid" }, "store.id_strategy"},
		{"bad level", func(c *Config) { c.Logging.Level = "verbose" }, "logging.level"},
		{"bad format", func(c *Config) { c.Logging.Format = "xml" }, "logging.format"},
		{"bad metrics path", func(c *Config) { c.Metrics.Path = "metrics" }, "metrics.path"},
		{"metrics on health path", func(c *Config) { c.Metrics.Path = "/health" }, "reserved for health checks"},
		{"metrics on ready path", func(c *Config) { c.Metrics.Path = "/health/ready" }, "reserved for health checks"},
		{"metrics path with wildcard", func(c *Config) { c.Metrics.Path = "/{name}" }, "literal path"},
		{"health path allowed when metrics disabled", func(c *Config) {
			c.Metrics.Enabled = false
			c.Metrics.Path = "/health"
		}, ""},
		{"metrics path ignored when disabled", func(c *Config) {
			c.Metrics.Enabled = false
			c.Metrics.Path = ""
		}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("Validate() error = %v, want nil", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() error = %v, want containing %q", err, tt.wantErr)
			}
		})
	}
}
