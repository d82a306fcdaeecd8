package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"scopesync.dev/scopesync/internal/config"
)

func TestDefault(t *testing.T) {
	cfg := config.Default()

	require.Equal(t, "intentive_complete_backlog.json", cfg.BacklogPath)
	require.Equal(t, "post-v0.1", cfg.DeferLabel)
	require.Equal(t, 500*time.Millisecond, cfg.CloseDelay)
	require.Equal(t, time.Second, cfg.CreateDelay)
}

func TestCloseComment(t *testing.T) {
	cfg := config.Default()
	require.Contains(t, cfg.CloseComment(), "post-v0.1")

	cfg.DeferLabel = "post-v0.2"
	require.Contains(t, cfg.CloseComment(), "post-v0.2")
}

func TestLoad(t *testing.T) {
	t.Run("returns defaults when no config file exists", func(t *testing.T) {
		cfg, err := config.Load(t.TempDir())
		require.NoError(t, err)
		require.Equal(t, config.Default(), cfg)
	})

	t.Run("overlays values from the config file", func(t *testing.T) {
		dir := t.TempDir()
		content := `{
			"backlogPath": "backlogs/next.json",
			"deferLabel": "post-v0.2",
			"closeDelayMs": 0,
			"createDelayMs": 2000
		}`
		require.NoError(t, os.WriteFile(filepath.Join(dir, config.ConfigFileName), []byte(content), 0600))

		cfg, err := config.Load(dir)
		require.NoError(t, err)
		require.Equal(t, "backlogs/next.json", cfg.BacklogPath)
		require.Equal(t, "post-v0.2", cfg.DeferLabel)
		require.Equal(t, time.Duration(0), cfg.CloseDelay)
		require.Equal(t, 2*time.Second, cfg.CreateDelay)
		// Unset fields keep their defaults
		require.Equal(t, config.Default().CommentTemplate, cfg.CommentTemplate)
	})

	t.Run("errors on a malformed config file", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, config.ConfigFileName), []byte("{"), 0600))

		_, err := config.Load(dir)
		require.Error(t, err)
	})
}
