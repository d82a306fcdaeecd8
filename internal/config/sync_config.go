// Package config provides sync configuration management,
// including reading the optional scopesync configuration file.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Defaults for the reconciliation run. The delays exist to respect the
// tracker's request-rate constraints between sequential mutations.
const (
	DefaultBacklogPath  = "intentive_complete_backlog.json"
	DefaultDeferLabel   = "post-v0.1"
	DefaultCloseDelay   = 500 * time.Millisecond
	DefaultCreateDelay  = 1 * time.Second
	DefaultCommentStyle = "Closing this issue as it's been deferred to %s. The v0.1 scope has been optimized to focus on demo-ready functionality."
)

// ConfigFileName is the optional per-repo override file
const ConfigFileName = ".scopesync.json"

// FileConfig represents the on-disk configuration, all fields optional
type FileConfig struct {
	BacklogPath     *string `json:"backlogPath,omitempty"`
	DeferLabel      *string `json:"deferLabel,omitempty"`
	CloseDelayMs    *int    `json:"closeDelayMs,omitempty"`
	CreateDelayMs   *int    `json:"createDelayMs,omitempty"`
	CommentTemplate *string `json:"commentTemplate,omitempty"`
}

// SyncConfig is the resolved configuration passed to the reconciler
type SyncConfig struct {
	// BacklogPath is the desired-state document to load
	BacklogPath string

	// DeferLabel is attached to out-of-scope issues before closing them
	DeferLabel string

	// CloseDelay is the pause after each close, CreateDelay after each create
	CloseDelay  time.Duration
	CreateDelay time.Duration

	// CommentTemplate is the close comment; the defer label is
	// substituted for the single %s verb
	CommentTemplate string
}

// Default returns the built-in configuration
func Default() SyncConfig {
	return SyncConfig{
		BacklogPath:     DefaultBacklogPath,
		DeferLabel:      DefaultDeferLabel,
		CloseDelay:      DefaultCloseDelay,
		CreateDelay:     DefaultCreateDelay,
		CommentTemplate: DefaultCommentStyle,
	}
}

// CloseComment renders the close comment for the configured defer label
func (c SyncConfig) CloseComment() string {
	return fmt.Sprintf(c.CommentTemplate, c.DeferLabel)
}

// Load resolves the configuration for dir: defaults overlaid with any
// values from .scopesync.json in that directory. A missing file is not
// an error; a malformed one is.
func Load(dir string) (SyncConfig, error) {
	cfg := Default()

	data, err := os.ReadFile(filepath.Join(dir, ConfigFileName))
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("failed to read %s: %w", ConfigFileName, err)
	}

	var file FileConfig
	if err := json.Unmarshal(data, &file); err != nil {
		return cfg, fmt.Errorf("failed to parse %s: %w", ConfigFileName, err)
	}

	if file.BacklogPath != nil && *file.BacklogPath != "" {
		cfg.BacklogPath = *file.BacklogPath
	}
	if file.DeferLabel != nil && *file.DeferLabel != "" {
		cfg.DeferLabel = *file.DeferLabel
	}
	if file.CloseDelayMs != nil && *file.CloseDelayMs >= 0 {
		cfg.CloseDelay = time.Duration(*file.CloseDelayMs) * time.Millisecond
	}
	if file.CreateDelayMs != nil && *file.CreateDelayMs >= 0 {
		cfg.CreateDelay = time.Duration(*file.CreateDelayMs) * time.Millisecond
	}
	if file.CommentTemplate != nil && *file.CommentTemplate != "" {
		cfg.CommentTemplate = *file.CommentTemplate
	}

	return cfg, nil
}
