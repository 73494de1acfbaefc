// pkg/ops_err/util.go

package ops_err

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"
)

// NewExpectedError wraps an error for softer UX handling.
func NewExpectedError(err error) error {
	if err == nil {
		return nil
	}
	return &UserError{cause: err}
}

// IsExpectedUserError checks if the error is marked as expected.
func IsExpectedUserError(err error) bool {
	var e *UserError
	return errors.As(err, &e)
}

// GetExitCode maps an error onto the process exit code.
// nil and warning-only completions are 0; everything else is 1
// (fatal preconditions: survivors after kill, missing primary config).
func GetExitCode(err error) int {
	if err == nil {
		return 0
	}
	return 1
}

// PrintError prints a human-readable error message without exiting.
// Expected errors (failed host preconditions) get a notice, not a stack.
func PrintError(userMessage string, err error) {
	if err == nil {
		return
	}
	if IsExpectedUserError(err) {
		zap.L().Warn(userMessage, zap.Error(err))
		fmt.Fprintf(os.Stderr, "⚠️  %s: %v\n", userMessage, err)
	} else {
		zap.L().Error(userMessage, zap.Error(err))
		fmt.Fprintf(os.Stderr, "❌ %s: %v\n", userMessage, err)
	}
}

// ExtractSummary pulls a concise failure summary out of command output.
func ExtractSummary(output string, maxCandidates int) string {
	trimmed := strings.TrimSpace(output)
	if trimmed == "" {
		return "No output provided."
	}

	var candidates []string
	for _, line := range strings.Split(trimmed, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		lower := strings.ToLower(line)
		if strings.Contains(lower, "error") ||
			strings.Contains(lower, "failed") ||
			strings.Contains(lower, "cannot") ||
			strings.Contains(lower, "fatal") ||
			strings.Contains(lower, "timeout") {
			candidates = append(candidates, line)
		}
	}

	if len(candidates) > 0 {
		if len(candidates) > maxCandidates {
			candidates = candidates[:maxCandidates]
		}
		return strings.Join(candidates, " - ")
	}

	for _, line := range strings.Split(trimmed, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			return line
		}
	}
	return "Unknown error."
}
