// pkg/fileops/probe_test.go

package fileops

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileSize(t *testing.T) {
	dir := t.TempDir()

	t.Run("regular file", func(t *testing.T) {
		path := filepath.Join(dir, "db")
		require.NoError(t, os.WriteFile(path, make([]byte, 4096), 0o644))

		size, err := FileSize(path)
		require.NoError(t, err)
		assert.Equal(t, int64(4096), size)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := FileSize(filepath.Join(dir, "nope"))
		assert.True(t, os.IsNotExist(err))
	})

	t.Run("directory is an error", func(t *testing.T) {
		_, err := FileSize(dir)
		assert.Error(t, err)
	})
}

func TestTailLines(t *testing.T) {
	dir := t.TempDir()

	write := func(content string) string {
		path := filepath.Join(dir, "bot.log")
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
		return path
	}

	t.Run("fewer lines than requested", func(t *testing.T) {
		lines, err := TailLines(write("one\ntwo\n"), 50)
		require.NoError(t, err)
		assert.Equal(t, []string{"one", "two"}, lines)
	})

	t.Run("returns only the tail", func(t *testing.T) {
		var sb strings.Builder
		for i := 0; i < 100; i++ {
			sb.WriteString("line\n")
		}
		sb.WriteString("last\n")

		lines, err := TailLines(write(sb.String()), 3)
		require.NoError(t, err)
		require.Len(t, lines, 3)
		assert.Equal(t, "last", lines[2])
	})

	t.Run("empty file", func(t *testing.T) {
		lines, err := TailLines(write(""), 10)
		require.NoError(t, err)
		assert.Empty(t, lines)
	})

	t.Run("zero lines requested", func(t *testing.T) {
		lines, err := TailLines(write("a\nb\n"), 0)
		require.NoError(t, err)
		assert.Empty(t, lines)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := TailLines(filepath.Join(dir, "missing.log"), 10)
		assert.Error(t, err)
	})
}

func TestExists(t *testing.T) {
	dir := t.TempDir()
	assert.True(t, Exists(dir))
	assert.False(t, Exists(filepath.Join(dir, "ghost")))
}
