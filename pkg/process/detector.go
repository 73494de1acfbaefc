// pkg/process/detector.go
//
// Process detection for the bot executable pattern. Matching is done on
// the full command line from ps, with /proc/<pid>/cmdline verification on
// Linux to weed out false positives from the substring match.

package process

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/smartfinances/botops/pkg/execute"
)

// Info describes one matching process.
type Info struct {
	PID     int
	User    string
	Command string
}

// FindProcesses returns all processes whose command line contains pattern.
// An empty result is not an error.
func FindProcesses(ctx context.Context, pattern string) ([]Info, error) {
	output, err := execute.Run(ctx, execute.Options{
		Command: "ps",
		Args:    []string{"aux"},
		Capture: true,
		Timeout: 5 * time.Second,
	})
	if err != nil {
		return nil, fmt.Errorf("listing processes: %w", err)
	}

	processes := parsePSOutput(output, pattern, os.Getpid())

	// Weed out false positives from the substring match.
	verified := processes[:0]
	for _, proc := range processes {
		if verifyCmdline(proc.PID, pattern) {
			verified = append(verified, proc)
		}
	}
	return verified, nil
}

// parsePSOutput extracts matching processes from `ps aux` output.
func parsePSOutput(output, pattern string, selfPID int) []Info {
	var processes []Info

	lines := strings.Split(output, "\n")
	for i := 1; i < len(lines); i++ { // skip header
		line := strings.TrimSpace(lines[i])
		if line == "" || !strings.Contains(line, pattern) {
			continue
		}

		// USER PID %CPU %MEM VSZ RSS TTY STAT START TIME COMMAND...
		fields := strings.Fields(line)
		if len(fields) <= 10 {
			continue
		}
		pid, err := strconv.Atoi(fields[1])
		if err != nil {
			continue
		}

		cmdLine := strings.Join(fields[10:], " ")
		// Skip ourselves and the tooling used to look.
		if pid == selfPID || strings.Contains(cmdLine, "ps aux") || strings.Contains(cmdLine, "grep") {
			continue
		}

		processes = append(processes, Info{
			PID:     pid,
			User:    fields[0],
			Command: cmdLine,
		})
	}

	return processes
}

// Count returns how many processes match the pattern.
func Count(ctx context.Context, pattern string) (int, error) {
	procs, err := FindProcesses(ctx, pattern)
	if err != nil {
		return 0, err
	}
	return len(procs), nil
}

// verifyCmdline double-checks the match against /proc/<pid>/cmdline.
// On hosts without /proc (or when the process exited between the ps call
// and now) the ps match stands.
func verifyCmdline(pid int, pattern string) bool {
	data, err := os.ReadFile(fmt.Sprintf("/proc/%d/cmdline", pid))
	if err != nil {
		return true
	}
	cmdline := strings.ReplaceAll(string(data), "\x00", " ")
	return strings.Contains(cmdline, pattern)
}
