// pkg/process/kill.go

package process

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/smartfinances/botops/pkg/execute"
)

// KillMatching terminates every process matching pattern: SIGTERM first,
// then SIGKILL for anything still alive after the grace period. Returns
// the number of processes that were signalled. Callers that need the
// "nothing survived" guarantee should re-scan afterwards.
func KillMatching(ctx context.Context, pattern string, grace time.Duration) (int, error) {
	processes, err := FindProcesses(ctx, pattern)
	if err != nil {
		return 0, err
	}
	if len(processes) == 0 {
		return 0, nil
	}

	pids := make([]string, 0, len(processes))
	for _, proc := range processes {
		pids = append(pids, strconv.Itoa(proc.PID))
	}

	_, _ = execute.Run(ctx, execute.Options{
		Command: "kill",
		Args:    append([]string{"-TERM"}, pids...),
		Timeout: 5 * time.Second,
	})

	select {
	case <-time.After(grace):
	case <-ctx.Done():
		return 0, fmt.Errorf("process termination cancelled during graceful wait: %w", ctx.Err())
	}

	stillRunning, _ := FindProcesses(ctx, pattern)
	if len(stillRunning) > 0 {
		remaining := make([]string, 0, len(stillRunning))
		for _, proc := range stillRunning {
			remaining = append(remaining, strconv.Itoa(proc.PID))
		}
		_, _ = execute.Run(ctx, execute.Options{
			Command: "kill",
			Args:    append([]string{"-KILL"}, remaining...),
			Timeout: 5 * time.Second,
		})
	}

	return len(processes), nil
}
