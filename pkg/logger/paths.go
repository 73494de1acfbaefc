// pkg/logger/paths.go

package logger

import (
	"os"
	"path/filepath"
	"runtime"

	"github.com/smartfinances/botops/pkg/shared"
)

// PlatformLogPaths returns candidate log paths in priority order.
// The tool usually runs under sudo on the target host, so the system
// location comes first; user-local state and /tmp are for dev runs.
func PlatformLogPaths() []string {
	switch runtime.GOOS {
	case "linux":
		return []string{
			filepath.Join(shared.BotopsLogDir, "botops.log"),
			xdgStatePath("botops.log"),
			filepath.Join(os.TempDir(), shared.BotopsID, "botops.log"),
		}
	case "darwin":
		return []string{
			xdgStatePath("botops.log"),
			filepath.Join(os.TempDir(), shared.BotopsID, "botops.log"),
		}
	default:
		return []string{filepath.Join(os.TempDir(), shared.BotopsID, "botops.log")}
	}
}

func xdgStatePath(name string) string {
	if dir := os.Getenv("XDG_STATE_HOME"); dir != "" {
		return filepath.Join(dir, shared.BotopsID, name)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(os.TempDir(), shared.BotopsID, name)
	}
	return filepath.Join(home, ".local", "state", shared.BotopsID, name)
}
