// File: doc.go
// Title: Configuration Management Package Documentation
// Description: Package config provides configuration management for the
//              Parser-Latex toolkit with support for TOML and YAML formats.
//              Features include automatic file discovery, environment variable
//              injection, configuration validation, hot-reloading, and
//              type-safe access.
// Author: Bruno Miglioretto
// Version: v0.1.0
// Created: 2026-08-19
// Modified: 2026-08-24
//
// Change History:
// - 2026-08-19 v0.1.0: Initial implementation with TOML/YAML support

/*
Package config provides configuration management for the Parser-Latex toolkit.

Key Features:
  • Multi-format support (TOML, YAML) with automatic detection
  • Environment variable injection and override capabilities
  • Configuration validation with structured rules
  • Hot-reloading with change notification callbacks
  • Thread-safe concurrent access patterns
  • Structured error integration with error codes

# Basic Configuration Loading

Load and access configuration values:

	cfg, err := config.Load("configs/config.toml")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Type-safe value access with defaults
	bind := cfg.GetString("server.bind", "127.0.0.1")
	port := cfg.GetInt("server.port", 8080)
	timeout := cfg.GetDuration("server.read_timeout", 15*time.Second)
	origins := cfg.GetStringSlice("server.allowed_origins", []string{})

# Advanced Configuration Options

Load with custom options and defaults:

	cfg, err := config.LoadWithOptions("configs/config.toml", config.LoadOptions{
		Format:    config.FormatAuto,
		EnvPrefix: "LATEXP",
		Defaults: map[string]interface{}{
			"parser.strict":           true,
			"server.port":             8080,
			"history.path":            "latexp-history.db",
		},
		Watch: true, // Enable hot-reloading
	})

# Environment Variable Integration

Configuration values are automatically overridden by environment variables
following a consistent naming convention:

	# config.toml
	[server]
	bind = "127.0.0.1"
	port = 8080

	[history]
	path = "latexp-history.db"

	# Environment variables (with optional prefix)
	export LATEXP_SERVER_BIND="0.0.0.0"
	export LATEXP_SERVER_PORT="9090"
	export LATEXP_HISTORY_PATH="/var/lib/latexp/history.db"

	cfg, _ := config.LoadWithOptions("config.toml", config.LoadOptions{
		EnvPrefix: "LATEXP",
	})

	// Environment variables take precedence
	bind := cfg.GetString("server.bind") // Returns "0.0.0.0"
	port := cfg.GetInt("server.port")    // Returns 9090

# Configuration Validation

Validate configuration structure and constraints:

	rules := config.ValidationRules{
		"server.bind": {
			Required: true,
			Type:     "string",
			Pattern:  `^[a-zA-Z0-9.:-]+$`,
		},
		"server.port": {
			Required: true,
			Type:     "int",
			Min:      1,
			Max:      65535,
		},
		"parser.max_input_length": {
			Type: "int",
			Min:  1,
		},
		"logging.level": {
			Type:    "string",
			Default: "info",
		},
	}

	if result := cfg.Validate(rules); !result.Valid {
		for _, e := range result.Errors {
			log.Error("config validation: " + e)
		}
	}

# Hot-Reloading and Change Notifications

Monitor configuration files for changes with automatic reloading:

	cfg, err := config.LoadWithOptions("config.toml", config.LoadOptions{
		Watch: true,
	})

	// Register change handlers
	cfg.OnChange(func(oldCfg, newCfg *config.Config) {
		if oldCfg.GetString("logging.level") != newCfg.GetString("logging.level") {
			// Adjust logger level without restarting
		}

		if oldCfg.GetInt("server.port") != newCfg.GetInt("server.port") {
			// Port changes require a restart
		}
	})

# Multi-Format Support

The package automatically detects and supports multiple configuration formats:

	// TOML format (default)
	cfg1, _ := config.Load("config.toml")

	// YAML format (auto-detected)
	cfg2, _ := config.Load("config.yaml")
	cfg3, _ := config.Load("config.yml")

	// Explicit format specification
	cfg4, _ := config.LoadWithOptions("config.txt", config.LoadOptions{
		Format: config.FormatTOML,
	})

# String-Based Configuration Loading

Load configuration from string content:

	yamlContent := `
	server:
	  bind: 127.0.0.1
	  port: 8080
	parser:
	  strict: true
	`

	cfg, err := config.LoadFromString(yamlContent, config.FormatYAML)

# Struct Binding

Bind configuration sections directly to Go structs:

	type ServerConfig struct {
		Bind        string        `config:"bind" validate:"required"`
		Port        int           `config:"port"`
		ReadTimeout time.Duration `config:"read_timeout"`
	}

	var serverCfg ServerConfig
	if err := cfg.BindToStruct("server", &serverCfg); err != nil {
		return err
	}

# Convenience Methods

Quick access patterns for common operations:

	bind := cfg.S("server.bind", "127.0.0.1")            // GetString
	port := cfg.I("server.port", 8080)                   // GetInt
	strict := cfg.B("parser.strict", true)               // GetBool
	timeout := cfg.D("server.read_timeout", 15*time.Second) // GetDuration
	ratio := cfg.F("history.prune_ratio", 0.5)           // GetFloat
	origins := cfg.SS("server.allowed_origins", nil)     // GetStringSlice

# Error Handling

All configuration operations return structured errors with codes:

	cfg, err := config.Load("nonexistent.toml")
	if err != nil {
		if coreErr, ok := err.(*coreerror.Error); ok {
			switch coreErr.Code {
			case coreerror.CodeNotFound:
				// Config file missing, fall back to defaults
				cfg = config.LoadFromEnv("LATEXP")
			case coreerror.CodeInvalidConfig:
				// Syntax error in the file, report and abort
				return err
			default:
				return err
			}
		}
	}

# Thread Safety

All operations are thread-safe and support concurrent access. Value reads
use read locks, environment variable lookups are cached with a 5-minute
TTL, and dot-notation path parsing is cached per key. Change notifications
run in their own goroutines so slow handlers never block a reload.
*/
package config
