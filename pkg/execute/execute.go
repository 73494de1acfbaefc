// pkg/execute/execute.go
//
// Secure command execution with structured logging. Shell invocation is
// deliberately unsupported: every external call passes an explicit argv.

package execute

import (
	"bytes"
	"context"
	"os/exec"
	"strings"
	"time"

	cerr "github.com/cockroachdb/errors"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	"github.com/smartfinances/botops/pkg/ops_err"
	"github.com/smartfinances/botops/pkg/telemetry"
)

// Run executes a command and returns its combined output when Capture is set.
func Run(ctx context.Context, opts Options) (string, error) {
	cmdStr := buildCommandString(opts.Command, opts.Args...)

	logger := opts.Logger
	if logger == nil {
		logger = DefaultLogger
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if ctx == nil {
		ctx = context.Background()
	}
	runCtx, cancel := context.WithTimeout(ctx, defaultTimeout(opts.Timeout))
	defer cancel()

	runCtx, span := telemetry.Start(runCtx, "execute.Run")
	defer span.End()
	span.SetAttributes(
		attribute.String("command", opts.Command),
		attribute.String("args", strings.Join(opts.Args, " ")),
	)

	if opts.DryRun {
		logger.Info("Dry run - command not executed", zap.String("command", cmdStr))
		return "", nil
	}

	logger.Debug("Starting execution", zap.String("command", cmdStr))

	cmd := exec.CommandContext(runCtx, opts.Command, opts.Args...)
	if opts.Dir != "" {
		cmd.Dir = opts.Dir
	}

	var buf bytes.Buffer
	cmd.Stdout = &buf
	cmd.Stderr = &buf

	err := cmd.Run()
	output := buf.String()

	if err != nil {
		summary := ops_err.ExtractSummary(output, 2)
		span.RecordError(err)
		logger.Debug("Execution failed",
			zap.Error(err),
			zap.String("command", cmdStr),
			zap.String("summary", summary),
		)
		return output, cerr.Wrapf(err, "%s", cmdStr)
	}

	logger.Debug("Execution succeeded", zap.String("command", cmdStr))
	if opts.Capture {
		return output, nil
	}
	return "", nil
}

// RunSimple executes a command, discarding output.
func RunSimple(ctx context.Context, cmd string, args ...string) error {
	_, err := Run(ctx, Options{Command: cmd, Args: args})
	return err
}

// ExitCode extracts the process exit code from a Run error, or -1.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var exitErr *exec.ExitError
	if cerr.As(err, &exitErr) {
		return exitErr.ExitCode()
	}
	return -1
}

func defaultTimeout(t time.Duration) time.Duration {
	if t > 0 {
		return t
	}
	return 30 * time.Second
}

func buildCommandString(command string, args ...string) string {
	return command + " " + strings.Join(args, " ")
}
