// pkg/systemd/systemctl.go

package systemd

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
	"time"

	cerr "github.com/cockroachdb/errors"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.uber.org/zap"

	"github.com/smartfinances/botops/pkg/execute"
)

// CheckAvailable verifies systemctl exists on this host.
func CheckAvailable() error {
	if _, err := exec.LookPath("systemctl"); err != nil {
		return fmt.Errorf("systemctl not found: %w", err)
	}
	return nil
}

// Stop stops the unit. A unit that systemd does not know about is not an
// error here: remediation installs the unit file later in the sequence.
func Stop(ctx context.Context, unit string) error {
	logger := otelzap.Ctx(ctx)

	output, err := execute.Run(ctx, execute.Options{
		Command: "systemctl",
		Args:    []string{"stop", unit},
		Capture: true,
	})
	if err != nil {
		if strings.Contains(output, "not loaded") || strings.Contains(output, "could not be found") {
			logger.Debug("Unit not registered yet, nothing to stop", zap.String("unit", unit))
			return nil
		}
		return cerr.Wrapf(err, "systemctl stop %s", unit)
	}

	logger.Info("⏹️  Unit stopped", zap.String("unit", unit))
	return nil
}

// DaemonReload reloads systemd's unit cache.
func DaemonReload(ctx context.Context) error {
	if _, err := execute.Run(ctx, execute.Options{
		Command: "systemctl",
		Args:    []string{"daemon-reload"},
		Capture: true,
	}); err != nil {
		return cerr.Wrap(err, "daemon-reload")
	}
	return nil
}

// EnableNow enables and starts the unit in one step.
func EnableNow(ctx context.Context, unit string) error {
	logger := otelzap.Ctx(ctx)
	logger.Info("▶️  Enabling and starting unit", zap.String("unit", unit))

	output, err := execute.Run(ctx, execute.Options{
		Command: "systemctl",
		Args:    []string{"enable", "--now", unit},
		Capture: true,
	})
	if err != nil {
		return cerr.Wrapf(err, "systemctl enable --now %s: %s", unit, strings.TrimSpace(output))
	}
	return nil
}

// Restart restarts the unit.
func Restart(ctx context.Context, unit string) error {
	if err := execute.RunSimple(ctx, "systemctl", "restart", unit); err != nil {
		return cerr.Wrapf(err, "systemctl restart %s", unit)
	}
	return nil
}

// IsActive reports whether the unit is active, plus the raw state string.
func IsActive(ctx context.Context, unit string) (bool, string) {
	output, err := execute.Run(ctx, execute.Options{
		Command: "systemctl",
		Args:    []string{"is-active", unit},
		Capture: true,
		Timeout: 5 * time.Second,
	})
	state := strings.TrimSpace(output)
	if err != nil {
		if state == "" {
			state = InterpretExitCode(CmdIsActive, execute.ExitCode(err))
		}
		return false, state
	}
	return state == "active", state
}

// IsEnabled reports whether the unit is enabled.
func IsEnabled(ctx context.Context, unit string) bool {
	err := execute.RunSimple(ctx, "systemctl", "is-enabled", unit)
	return err == nil
}

// WaitActive polls is-active until the unit is up or the timeout expires.
// Polling replaces the old fixed sleep: slow hosts get the time they need
// and fast ones do not wait longer than necessary.
func WaitActive(ctx context.Context, unit string, timeout time.Duration) error {
	logger := otelzap.Ctx(ctx)
	deadline := time.Now().Add(timeout)

	for {
		active, state := IsActive(ctx, unit)
		if active {
			logger.Info("✅ Unit is active", zap.String("unit", unit))
			return nil
		}
		if state == "failed" {
			return cerr.Newf("unit %s entered failed state during startup", unit)
		}
		if time.Now().After(deadline) {
			return cerr.Newf("unit %s not active after %s (state: %s)", unit, timeout, state)
		}

		select {
		case <-time.After(time.Second):
		case <-ctx.Done():
			return cerr.Wrapf(ctx.Err(), "waiting for unit %s", unit)
		}
	}
}

// Status returns `systemctl status` output for the unit. A non-zero exit
// is normal for inactive units, so the output is returned regardless.
func Status(ctx context.Context, unit string) string {
	output, _ := execute.Run(ctx, execute.Options{
		Command: "systemctl",
		Args:    []string{"status", "--no-pager", "-l", unit},
		Capture: true,
	})
	return strings.TrimSpace(output)
}
