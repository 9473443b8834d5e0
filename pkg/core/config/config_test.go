package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

const sampleTOML = `
[general]
name = "latexp"
environment = "production"
log_level = "debug"

[engine]
max_input_length = 1024
strict = false

[gateway]
host = "127.0.0.1"
port = 9090
read_timeout = "15s"

[history]
enabled = true
path = "/tmp/latexp-history.db"
batch_size = 50
flush_period = "2s"
`

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	cfg, err := Load(writeConfigFile(t, sampleTOML))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.General.Environment != "production" {
		t.Errorf("Environment = %v, want production", cfg.General.Environment)
	}
	if cfg.General.LogLevel != "debug" {
		t.Errorf("LogLevel = %v, want debug", cfg.General.LogLevel)
	}
	if cfg.Engine.MaxInputLength != 1024 {
		t.Errorf("MaxInputLength = %v, want 1024", cfg.Engine.MaxInputLength)
	}
	if cfg.Engine.Strict {
		t.Error("Strict = true, want false")
	}
	if cfg.Gateway.Port != 9090 {
		t.Errorf("Port = %v, want 9090", cfg.Gateway.Port)
	}
	if cfg.Gateway.ReadTimeout != 15*time.Second {
		t.Errorf("ReadTimeout = %v, want 15s", cfg.Gateway.ReadTimeout)
	}
	if cfg.History.BatchSize != 50 {
		t.Errorf("BatchSize = %v, want 50", cfg.History.BatchSize)
	}
	if cfg.History.FlushPeriod != 2*time.Second {
		t.Errorf("FlushPeriod = %v, want 2s", cfg.History.FlushPeriod)
	}
}

func TestLoad_Defaults(t *testing.T) {
	// A minimal file should fall back to defaults for every missing key.
	cfg, err := Load(writeConfigFile(t, "[general]\nname = \"latexp\"\n"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	d := Default()
	if cfg.Gateway.Port != d.Gateway.Port {
		t.Errorf("Port = %v, want default %v", cfg.Gateway.Port, d.Gateway.Port)
	}
	if cfg.Engine.MaxInputLength != d.Engine.MaxInputLength {
		t.Errorf("MaxInputLength = %v, want default %v", cfg.Engine.MaxInputLength, d.Engine.MaxInputLength)
	}
	if !cfg.Engine.Strict {
		t.Error("Strict should default to true")
	}
	if cfg.History.FlushPeriod != d.History.FlushPeriod {
		t.Errorf("FlushPeriod = %v, want default %v", cfg.History.FlushPeriod, d.History.FlushPeriod)
	}
	if cfg.Gateway.CacheTTL != d.Gateway.CacheTTL {
		t.Errorf("CacheTTL = %v, want default %v", cfg.Gateway.CacheTTL, d.Gateway.CacheTTL)
	}
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("LATEXP_GATEWAY_PORT", "7070")
	t.Setenv("LATEXP_GENERAL_LOG_LEVEL", "error")

	cfg, err := Load(writeConfigFile(t, sampleTOML))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Gateway.Port != 7070 {
		t.Errorf("Port = %v, want env override 7070", cfg.Gateway.Port)
	}
	if cfg.General.LogLevel != "error" {
		t.Errorf("LogLevel = %v, want env override error", cfg.General.LogLevel)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Error("Load() should fail for a missing file")
	}
}

func TestLoadFromEnv_Fallback(t *testing.T) {
	t.Setenv("LATEXP_CONFIG", "")
	t.Setenv("HOME", t.TempDir())

	cwd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatal(err)
	}
	defer os.Chdir(cwd)

	cfg, err := LoadFromEnv()
	if err != nil {
		t.Fatalf("LoadFromEnv() error = %v", err)
	}
	if cfg.General.Name != "latexp" {
		t.Errorf("Name = %v, want latexp default", cfg.General.Name)
	}
}

func TestLoadFromEnv_ExplicitPath(t *testing.T) {
	t.Setenv("LATEXP_CONFIG", writeConfigFile(t, sampleTOML))

	cfg, err := LoadFromEnv()
	if err != nil {
		t.Fatalf("LoadFromEnv() error = %v", err)
	}
	if cfg.Gateway.Port != 9090 {
		t.Errorf("Port = %v, want 9090", cfg.Gateway.Port)
	}
}

func TestGatewayAddress(t *testing.T) {
	cfg := Default()
	cfg.Gateway.Host = "localhost"
	cfg.Gateway.Port = 8088

	if got := cfg.GatewayAddress(); got != "localhost:8088" {
		t.Errorf("GatewayAddress() = %v, want localhost:8088", got)
	}
}
