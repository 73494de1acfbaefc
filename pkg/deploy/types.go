// pkg/deploy/types.go

package deploy

import (
	"time"

	cerr "github.com/cockroachdb/errors"

	"github.com/smartfinances/botops/pkg/ops_err"
	"github.com/smartfinances/botops/pkg/shared"
)

// Config describes one transfer of the working tree to a remote host.
type Config struct {
	Source     string
	RemoteHost string // user@host
	RemotePath string
	Excludes   []string
	Delete     bool
	Remediate  bool // run full remediation remotely instead of a plain restart
	UnitName   string
	Timeout    time.Duration
}

// DefaultExcludes is everything that must never leave the operator's
// machine or would clobber state owned by the running bot: the venv,
// the live database, logs, VCS metadata, caches, tests, and secrets.
func DefaultExcludes() []string {
	return []string{
		"venv/",
		".venv/",
		"__pycache__/",
		"*.pyc",
		".git/",
		"smartfinances.db",
		"*.log",
		".env",
		"credentials.json",
		"tests/",
		".pytest_cache/",
		".mypy_cache/",
	}
}

// ResolveHost picks the deploy target: a positional user@host argument
// wins, then the remote_host config key. Having neither is a user error,
// not a bug.
func ResolveHost(args []string, configured string) (string, error) {
	if len(args) > 0 && args[0] != "" {
		return args[0], nil
	}
	if configured != "" {
		return configured, nil
	}
	return "", ops_err.NewExpectedError(
		cerr.New("no remote host given: pass user@host or set remote_host in botops.yaml"))
}

// DefaultConfig returns the usual deploy shape for a given host.
func DefaultConfig(host string) Config {
	return Config{
		Source:     ".",
		RemoteHost: host,
		RemotePath: shared.RemoteDeployPath,
		Excludes:   DefaultExcludes(),
		Delete:     true,
		UnitName:   shared.UnitName,
		Timeout:    5 * time.Minute,
	}
}
