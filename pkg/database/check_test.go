// pkg/database/check_test.go

package database

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSizeCheck(t *testing.T) {
	dir := t.TempDir()

	writeFile := func(name string, size int) string {
		path := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(path, make([]byte, size), 0o644))
		return path
	}

	t.Run("above threshold", func(t *testing.T) {
		size, err := SizeCheck(writeFile("ok.db", 8192), 4096)
		require.NoError(t, err)
		assert.Equal(t, int64(8192), size)
	})

	t.Run("exactly at threshold passes", func(t *testing.T) {
		_, err := SizeCheck(writeFile("edge.db", 4096), 4096)
		assert.NoError(t, err)
	})

	t.Run("below threshold warns", func(t *testing.T) {
		size, err := SizeCheck(writeFile("tiny.db", 100), 4096)
		require.Error(t, err)
		assert.Equal(t, int64(100), size)
		assert.Contains(t, err.Error(), "possibly empty")
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := SizeCheck(filepath.Join(dir, "nope.db"), 4096)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "does not exist")
	})
}

func TestDeepCheck(t *testing.T) {
	newDB := func(t *testing.T, init string) string {
		t.Helper()
		path := filepath.Join(t.TempDir(), "smartfinances.db")
		db, err := sql.Open("sqlite", path)
		require.NoError(t, err)
		defer db.Close()
		if init != "" {
			_, err = db.Exec(init)
			require.NoError(t, err)
		}
		return path
	}

	t.Run("healthy database", func(t *testing.T) {
		path := newDB(t, `CREATE TABLE transactions (id INTEGER PRIMARY KEY, amount REAL);
			INSERT INTO transactions (amount) VALUES (42.0);`)
		assert.NoError(t, DeepCheck(context.Background(), path))
	})

	t.Run("no tables", func(t *testing.T) {
		path := newDB(t, "")
		// Force the file into existence with an empty schema.
		db, err := sql.Open("sqlite", path)
		require.NoError(t, err)
		require.NoError(t, db.Ping())
		db.Close()

		err = DeepCheck(context.Background(), path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "no tables")
	})

	t.Run("missing file", func(t *testing.T) {
		err := DeepCheck(context.Background(), filepath.Join(t.TempDir(), "ghost.db"))
		assert.Error(t, err)
	})
}
