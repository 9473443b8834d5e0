// File: watch.go
// Title: Configuration File Watching Implementation
// Description: Implements hot-reloading support by polling the configuration
//              file for modification time changes and notifying registered
//              change handlers when the file content is reloaded.
// Author: Bruno Miglioretto
// Version: v0.1.0
// Created: 2026-08-19
// Modified: 2026-08-24
//
// Change History:
// - 2026-08-19 v0.1.0: Initial implementation with polling-based watching

package config

import (
	"os"
	"time"

	"github.com/BrunoMiglioretto/Parser-Latex/foundation/utils/stringx"
)

// startWatching begins monitoring the configuration file for changes
func (c *Config) startWatching() {
	if stringx.IsBlank(c.filePath) {
		return // Cannot watch without a file path
	}

	// Poll the file every second for changes
	ticker := time.NewTicker(1 * time.Second)
	defer ticker.Stop()

	for range ticker.C {
		c.mu.RLock()
		watching := c.watching
		filePath := c.filePath
		lastModified := c.lastModified
		c.mu.RUnlock()

		if !watching {
			return // Watching was disabled
		}

		// Check file modification time
		fileInfo, err := os.Stat(filePath)
		if err != nil {
			continue // File might be temporarily unavailable
		}

		if fileInfo.ModTime().After(lastModified) {
			// File has been modified - reload configuration
			c.reload()
		}
	}
}

// reload reloads the configuration from file and notifies watchers
func (c *Config) reload() {
	c.mu.Lock()

	// Read the updated file
	content, err := os.ReadFile(c.filePath)
	if err != nil {
		c.mu.Unlock()
		return // Skip reload on read error
	}

	// Parse the updated content
	newData, err := parseContent(content, c.format)
	if err != nil {
		c.mu.Unlock()
		return // Skip reload on parse error
	}

	// Create a copy of the old configuration for change handlers
	oldConfig := &Config{
		data:         c.deepCopyMap(c.data),
		filePath:     c.filePath,
		format:       c.format,
		envPrefix:    c.envPrefix,
		lastModified: c.lastModified,
	}

	// Update configuration data
	c.data = newData
	if fileInfo, err := os.Stat(c.filePath); err == nil {
		c.lastModified = fileInfo.ModTime()
	}

	// Copy watchers to avoid holding the lock during notification
	watchers := append([]ChangeHandler(nil), c.watchers...)
	c.mu.Unlock()

	// Notify all registered change handlers
	for _, handler := range watchers {
		go handler(oldConfig, c)
	}
}

// StopWatching disables file watching for this configuration
func (c *Config) StopWatching() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.watching = false
}

// IsWatching returns whether file watching is currently enabled
func (c *Config) IsWatching() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.watching
}
