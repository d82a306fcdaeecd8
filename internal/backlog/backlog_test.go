package backlog_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"scopesync.dev/scopesync/internal/backlog"
	apperrors "scopesync.dev/scopesync/internal/errors"
)

func writeBacklog(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "backlog.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestLoad(t *testing.T) {
	t.Run("parses epics and issues", func(t *testing.T) {
		path := writeBacklog(t, `{
			"epics": {
				"core": {
					"issues": [
						{"title": "Add login", "body": "desc", "labels": ["v0.1", "auth"]},
						{"title": "Add logout", "body": "", "labels": []}
					]
				},
				"infra": {
					"issues": [
						{"title": "Set up CI", "body": "pipeline", "labels": ["v0.1"]}
					]
				}
			}
		}`)

		doc, err := backlog.Load(path)
		require.NoError(t, err)
		require.Len(t, doc.Epics, 2)
		require.Len(t, doc.Epics["core"].Issues, 2)
		require.Equal(t, "Add login", doc.Epics["core"].Issues[0].Title)
		require.Equal(t, []string{"v0.1", "auth"}, doc.Epics["core"].Issues[0].Labels)
	})

	t.Run("preserves epic declaration order", func(t *testing.T) {
		path := writeBacklog(t, `{
			"epics": {
				"zeta": {"issues": [{"title": "Z", "body": "", "labels": []}]},
				"alpha": {"issues": [{"title": "A", "body": "", "labels": []}]},
				"mid": {"issues": [{"title": "M", "body": "", "labels": []}]}
			}
		}`)

		doc, err := backlog.Load(path)
		require.NoError(t, err)
		require.Equal(t, []string{"zeta", "alpha", "mid"}, doc.EpicKeys())
		require.Equal(t, []string{"Z", "A", "M"}, doc.DesiredTitles())
	})

	t.Run("handles empty epics", func(t *testing.T) {
		path := writeBacklog(t, `{"epics": {}}`)

		doc, err := backlog.Load(path)
		require.NoError(t, err)
		require.Empty(t, doc.DesiredTitles())
		require.Empty(t, doc.SpecsInOrder())
	})

	t.Run("returns ErrBacklogNotFound for missing file", func(t *testing.T) {
		_, err := backlog.Load(filepath.Join(t.TempDir(), "does-not-exist.json"))
		require.Error(t, err)
		require.ErrorIs(t, err, apperrors.ErrBacklogNotFound)

		var loadErr *apperrors.BacklogLoadError
		require.ErrorAs(t, err, &loadErr)
	})

	t.Run("returns ErrBacklogMalformed for invalid JSON", func(t *testing.T) {
		path := writeBacklog(t, `{"epics": {`)

		_, err := backlog.Load(path)
		require.Error(t, err)
		require.ErrorIs(t, err, apperrors.ErrBacklogMalformed)
	})

	t.Run("rejects a document without an epics key", func(t *testing.T) {
		// A typo'd key must not load as an empty backlog: that would
		// schedule every open issue for closing
		path := writeBacklog(t, `{"epic": {"core": {"issues": [{"title": "A", "body": "", "labels": []}]}}}`)

		_, err := backlog.Load(path)
		require.Error(t, err)
		require.ErrorIs(t, err, apperrors.ErrBacklogMalformed)
	})

	t.Run("rejects null epics", func(t *testing.T) {
		path := writeBacklog(t, `{"epics": null}`)

		_, err := backlog.Load(path)
		require.Error(t, err)
		require.ErrorIs(t, err, apperrors.ErrBacklogMalformed)
	})

	t.Run("rejects non-object epics", func(t *testing.T) {
		path := writeBacklog(t, `{"epics": [1, 2]}`)

		_, err := backlog.Load(path)
		require.Error(t, err)
		require.ErrorIs(t, err, apperrors.ErrBacklogMalformed)
	})
}

func TestDesiredTitles(t *testing.T) {
	t.Run("deduplicates titles shared across epics", func(t *testing.T) {
		path := writeBacklog(t, `{
			"epics": {
				"one": {"issues": [{"title": "Shared", "body": "first", "labels": ["a"]}]},
				"two": {"issues": [{"title": "Shared", "body": "second", "labels": ["b"]},
				                   {"title": "Unique", "body": "", "labels": []}]}
			}
		}`)

		doc, err := backlog.Load(path)
		require.NoError(t, err)
		require.Equal(t, []string{"Shared", "Unique"}, doc.DesiredTitles())

		// First declaration wins for the spec content
		specs := doc.SpecsInOrder()
		require.Len(t, specs, 2)
		require.Equal(t, "first", specs[0].Body)
	})
}
