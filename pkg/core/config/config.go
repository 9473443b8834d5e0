package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	latexconfig "github.com/BrunoMiglioretto/Parser-Latex/foundation/core/config"
)

// EnvPrefix is the prefix for environment variable overrides,
// e.g. LATEXP_GATEWAY_PORT overrides gateway.port.
const EnvPrefix = "LATEXP"

// Config holds the complete application configuration
type Config struct {
	General GeneralConfig
	Engine  EngineConfig
	Gateway GatewayConfig
	History HistoryConfig
}

// GeneralConfig holds general application settings
type GeneralConfig struct {
	Name        string
	Environment string
	DataDir     string
	LogLevel    string
	LogFormat   string
}

// EngineConfig holds parser engine settings
type EngineConfig struct {
	MaxInputLength int
	Strict         bool
	CollectStats   bool
}

// GatewayConfig holds HTTP gateway settings
type GatewayConfig struct {
	Host            string
	Port            int
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
	CacheTTL        time.Duration
	CacheSize       int
}

// HistoryConfig holds parse history settings
type HistoryConfig struct {
	Enabled     bool
	Path        string
	BatchSize   int
	FlushPeriod time.Duration
}

// Default returns the configuration used when no config file is present.
func Default() *Config {
	return &Config{
		General: GeneralConfig{
			Name:        "latexp",
			Environment: "development",
			DataDir:     "./data",
			LogLevel:    "info",
			LogFormat:   "json",
		},
		Engine: EngineConfig{
			MaxInputLength: 4096,
			Strict:         true,
			CollectStats:   true,
		},
		Gateway: GatewayConfig{
			Host:            "0.0.0.0",
			Port:            8080,
			ReadTimeout:     30 * time.Second,
			WriteTimeout:    60 * time.Second,
			ShutdownTimeout: 10 * time.Second,
			CacheTTL:        5 * time.Minute,
			CacheSize:       10000,
		},
		History: HistoryConfig{
			Enabled:     true,
			Path:        "./data/history.db",
			BatchSize:   100,
			FlushPeriod: 5 * time.Second,
		},
	}
}

// Load loads the configuration from a TOML or YAML file. Values can be
// overridden through LATEXP_* environment variables.
func Load(path string) (*Config, error) {
	path = os.ExpandEnv(path)

	fc, err := latexconfig.LoadWithOptions(path, latexconfig.LoadOptions{
		EnvPrefix: EnvPrefix,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	return fromConfig(fc), nil
}

// LoadFromEnv loads the configuration from the file named by LATEXP_CONFIG,
// falling back to the default locations. When no file exists, the built-in
// defaults are used.
func LoadFromEnv() (*Config, error) {
	path := os.Getenv("LATEXP_CONFIG")
	if path == "" {
		defaultPaths := []string{
			"./configs/config.toml",
			"./config.toml",
			filepath.Join(os.Getenv("HOME"), ".config/latexp/config.toml"),
		}
		for _, p := range defaultPaths {
			if _, err := os.Stat(p); err == nil {
				path = p
				break
			}
		}
	}

	if path == "" {
		return Default(), nil
	}

	return Load(path)
}

// fromConfig maps the generic configuration onto the typed struct,
// falling back to the built-in defaults for missing keys.
func fromConfig(fc *latexconfig.Config) *Config {
	d := Default()

	return &Config{
		General: GeneralConfig{
			Name:        fc.GetString("general.name", d.General.Name),
			Environment: fc.GetString("general.environment", d.General.Environment),
			DataDir:     os.ExpandEnv(fc.GetString("general.data_dir", d.General.DataDir)),
			LogLevel:    fc.GetString("general.log_level", d.General.LogLevel),
			LogFormat:   fc.GetString("general.log_format", d.General.LogFormat),
		},
		Engine: EngineConfig{
			MaxInputLength: fc.GetInt("engine.max_input_length", d.Engine.MaxInputLength),
			Strict:         fc.GetBool("engine.strict", d.Engine.Strict),
			CollectStats:   fc.GetBool("engine.collect_stats", d.Engine.CollectStats),
		},
		Gateway: GatewayConfig{
			Host:            fc.GetString("gateway.host", d.Gateway.Host),
			Port:            fc.GetInt("gateway.port", d.Gateway.Port),
			ReadTimeout:     fc.GetDuration("gateway.read_timeout", d.Gateway.ReadTimeout),
			WriteTimeout:    fc.GetDuration("gateway.write_timeout", d.Gateway.WriteTimeout),
			ShutdownTimeout: fc.GetDuration("gateway.shutdown_timeout", d.Gateway.ShutdownTimeout),
			CacheTTL:        fc.GetDuration("gateway.cache_ttl", d.Gateway.CacheTTL),
			CacheSize:       fc.GetInt("gateway.cache_size", d.Gateway.CacheSize),
		},
		History: HistoryConfig{
			Enabled:     fc.GetBool("history.enabled", d.History.Enabled),
			Path:        os.ExpandEnv(fc.GetString("history.path", d.History.Path)),
			BatchSize:   fc.GetInt("history.batch_size", d.History.BatchSize),
			FlushPeriod: fc.GetDuration("history.flush_period", d.History.FlushPeriod),
		},
	}
}

// GatewayAddress returns the listen address for the HTTP gateway
func (c *Config) GatewayAddress() string {
	return fmt.Sprintf("%s:%d", c.Gateway.Host, c.Gateway.Port)
}
