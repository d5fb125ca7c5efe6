package security

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveDataFile(t *testing.T) {
	t.Run("rejects empty path", func(t *testing.T) {
		_, err := ResolveDataFile("  ")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "cannot be empty")
	})

	t.Run("rejects control characters", func(t *testing.T) {
		for _, char := range forbiddenChars {
			_, err := ResolveDataFile("/tmp/tasks" + char + ".json")
			assert.Error(t, err, "expected error for character %q", char)
			assert.Contains(t, err.Error(), "forbidden character")
		}
	})

	t.Run("accepts missing file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "task_list.json")

		result, err := ResolveDataFile(path)
		require.NoError(t, err)
		assert.Equal(t, filepath.Base(path), filepath.Base(result))
		assert.True(t, filepath.IsAbs(result))
	})

	t.Run("converts relative path to absolute", func(t *testing.T) {
		result, err := ResolveDataFile("task_list.json")
		require.NoError(t, err)
		assert.True(t, filepath.IsAbs(result))
	})

	t.Run("follows symlinks to the real file", func(t *testing.T) {
		tmpDir := t.TempDir()
		realFile := filepath.Join(tmpDir, "real.json")
		require.NoError(t, os.WriteFile(realFile, []byte(`{"tasks":[]}`), 0o644))

		linkFile := filepath.Join(tmpDir, "link.json")
		require.NoError(t, os.Symlink(realFile, linkFile))

		result, err := ResolveDataFile(linkFile)
		require.NoError(t, err)

		// On macOS, /var is a symlink to /private/var, so compare resolved paths
		expected, _ := filepath.EvalSymlinks(realFile)
		assert.Equal(t, expected, result)
	})

	t.Run("rejects directories", func(t *testing.T) {
		_, err := ResolveDataFile(t.TempDir())
		assert.ErrorIs(t, err, ErrIsDirectory)
	})
}
