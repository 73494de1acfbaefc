// pkg/deploy/sync.go
//
// Working-tree transfer and remote restart. Both legs shell out to the
// operator's own rsync and ssh so existing ~/.ssh/config, agents, and
// jump hosts keep working. No retries: a failed transfer is reported
// and the operator decides.

package deploy

import (
	"strings"

	cerr "github.com/cockroachdb/errors"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.uber.org/zap"

	"github.com/smartfinances/botops/pkg/execute"
	"github.com/smartfinances/botops/pkg/ops_err"
	"github.com/smartfinances/botops/pkg/ops_io"
)

// RsyncArgs builds the full rsync argv for the transfer.
func RsyncArgs(cfg Config) []string {
	args := []string{"-az"}
	if cfg.Delete {
		args = append(args, "--delete")
	}
	for _, pattern := range cfg.Excludes {
		args = append(args, "--exclude", pattern)
	}

	src := cfg.Source
	if !strings.HasSuffix(src, "/") {
		src += "/" // sync contents, not the directory itself
	}
	args = append(args, src, cfg.RemoteHost+":"+cfg.RemotePath)
	return args
}

// Sync mirrors the local working tree to the remote deployment path.
func Sync(rc *ops_io.RuntimeContext, cfg Config) error {
	logger := otelzap.Ctx(rc.Ctx)
	logger.Info("🚚 Syncing working tree",
		zap.String("source", cfg.Source),
		zap.String("target", cfg.RemoteHost+":"+cfg.RemotePath),
		zap.Int("exclusions", len(cfg.Excludes)))

	output, err := execute.Run(rc.Ctx, execute.Options{
		Command: "rsync",
		Args:    RsyncArgs(cfg),
		Timeout: cfg.Timeout,
		Capture: true,
	})
	if err != nil {
		summary := ops_err.ExtractSummary(output, 2)
		return cerr.Wrapf(err, "rsync to %s: %s", cfg.RemoteHost, summary)
	}

	logger.Info("✅ Transfer complete", zap.String("host", cfg.RemoteHost))
	return nil
}

// RemoteRestart restarts the bot unit over SSH.
func RemoteRestart(rc *ops_io.RuntimeContext, cfg Config) error {
	logger := otelzap.Ctx(rc.Ctx)
	logger.Info("🔄 Restarting remote unit",
		zap.String("host", cfg.RemoteHost),
		zap.String("unit", cfg.UnitName))

	if _, err := execute.Run(rc.Ctx, execute.Options{
		Command: "ssh",
		Args:    []string{cfg.RemoteHost, "sudo", "systemctl", "restart", cfg.UnitName},
		Timeout: cfg.Timeout,
	}); err != nil {
		return cerr.Wrapf(err, "remote restart on %s", cfg.RemoteHost)
	}
	return nil
}

// RemoteRemediate runs the full remediation sequence on the remote host.
// Falls back to a plain restart when botops is not installed there.
func RemoteRemediate(rc *ops_io.RuntimeContext, cfg Config) error {
	logger := otelzap.Ctx(rc.Ctx)

	if _, err := execute.Run(rc.Ctx, execute.Options{
		Command: "ssh",
		Args:    []string{cfg.RemoteHost, "command", "-v", "botops"},
		Capture: true,
	}); err != nil {
		logger.Warn("⚠️  botops not installed on remote host, falling back to plain restart",
			zap.String("host", cfg.RemoteHost))
		return RemoteRestart(rc, cfg)
	}

	logger.Info("🛠️  Running remote remediation", zap.String("host", cfg.RemoteHost))
	if _, err := execute.Run(rc.Ctx, execute.Options{
		Command: "ssh",
		Args:    []string{cfg.RemoteHost, "sudo", "botops", "fix", "bot"},
		Timeout: cfg.Timeout,
	}); err != nil {
		return cerr.Wrapf(err, "remote remediation on %s", cfg.RemoteHost)
	}
	return nil
}
