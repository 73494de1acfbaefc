// pkg/fileops/permissions.go
//
// Ownership and mode normalization for the deployment tree. All
// operations are idempotent: applying them to an already-correct tree
// changes nothing.

package fileops

import (
	"context"
	"io/fs"
	"os"
	"os/user"
	"path/filepath"
	"strconv"

	cerr "github.com/cockroachdb/errors"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.uber.org/zap"
)

// LookupOwner resolves a user and group name to numeric ids.
func LookupOwner(username, groupname string) (uid, gid int, err error) {
	u, err := user.Lookup(username)
	if err != nil {
		return 0, 0, cerr.Wrapf(err, "lookup user %s", username)
	}
	g, err := user.LookupGroup(groupname)
	if err != nil {
		return 0, 0, cerr.Wrapf(err, "lookup group %s", groupname)
	}

	uid, err = strconv.Atoi(u.Uid)
	if err != nil {
		return 0, 0, cerr.Wrapf(err, "parse uid %q", u.Uid)
	}
	gid, err = strconv.Atoi(g.Gid)
	if err != nil {
		return 0, 0, cerr.Wrapf(err, "parse gid %q", g.Gid)
	}
	return uid, gid, nil
}

// ChownTree applies uid:gid to root and everything under it.
func ChownTree(ctx context.Context, root string, uid, gid int) error {
	logger := otelzap.Ctx(ctx)

	count := 0
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if err := os.Chown(path, uid, gid); err != nil {
			return cerr.Wrapf(err, "chown %s", path)
		}
		count++
		return nil
	})
	if err != nil {
		return err
	}

	logger.Debug("Ownership normalized",
		zap.String("root", root),
		zap.Int("uid", uid),
		zap.Int("gid", gid),
		zap.Int("entries", count))
	return nil
}

// SetMode chmods a single path, tolerating absence when optional is set.
func SetMode(path string, mode os.FileMode, optional bool) error {
	if err := os.Chmod(path, mode); err != nil {
		if optional && os.IsNotExist(err) {
			return nil
		}
		return cerr.Wrapf(err, "chmod %s", path)
	}
	return nil
}
