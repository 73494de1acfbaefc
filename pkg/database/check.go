// pkg/database/check.go
//
// Health probes for the bot's SQLite database. The size check is the old
// runbook heuristic; the deep check opens the file read-only and asks
// SQLite itself. Neither ever blocks remediation: the database belongs
// to the bot, botops only reports on it.

package database

import (
	"context"
	"database/sql"
	"fmt"
	"os"

	cerr "github.com/cockroachdb/errors"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.uber.org/zap"
	_ "modernc.org/sqlite"
)

// SizeCheck stats the database file against the minimum plausible size.
// Returns the observed size and a non-nil error when the heuristic trips.
func SizeCheck(path string, minSize int64) (int64, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return 0, cerr.Newf("database %s does not exist", path)
		}
		return 0, cerr.Wrapf(err, "stat %s", path)
	}

	size := info.Size()
	if size < minSize {
		return size, cerr.Newf("database %s is only %d bytes (threshold %d); possibly empty", path, size, minSize)
	}
	return size, nil
}

// DeepCheck opens the database read-only and runs PRAGMA integrity_check
// plus a table count. Used with --deep-db when an operator suspects
// corruption rather than mere emptiness.
func DeepCheck(ctx context.Context, path string) error {
	logger := otelzap.Ctx(ctx)

	if _, err := os.Stat(path); err != nil {
		return cerr.Wrapf(err, "stat %s", path)
	}

	dsn := fmt.Sprintf("file:%s?mode=ro&_pragma=busy_timeout(2000)", path)
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return cerr.Wrapf(err, "open %s", path)
	}
	defer db.Close()

	var verdict string
	if err := db.QueryRowContext(ctx, "PRAGMA integrity_check").Scan(&verdict); err != nil {
		return cerr.Wrapf(err, "integrity check on %s", path)
	}
	if verdict != "ok" {
		return cerr.Newf("integrity check on %s: %s", path, verdict)
	}

	var tables int
	row := db.QueryRowContext(ctx, "SELECT COUNT(*) FROM sqlite_master WHERE type = 'table'")
	if err := row.Scan(&tables); err != nil {
		return cerr.Wrapf(err, "count tables in %s", path)
	}
	if tables == 0 {
		return cerr.Newf("database %s has no tables; schema never initialized", path)
	}

	logger.Debug("Deep database check passed",
		zap.String("path", path),
		zap.Int("tables", tables))
	return nil
}
