// pkg/systemd/exitcodes_test.go

package systemd

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInterpretExitCode(t *testing.T) {
	tests := []struct {
		name     string
		cmd      Command
		exitCode int
		want     string
	}{
		{"is-active success", CmdIsActive, 0, "active"},
		{"is-active inactive", CmdIsActive, 3, "inactive"},
		{"is-active unknown", CmdIsActive, 4, "unknown"},
		{"is-active not loaded", CmdIsActive, 5, "not loaded"},
		{"is-enabled enabled", CmdIsEnabled, 0, "enabled"},
		{"is-enabled disabled", CmdIsEnabled, 1, "disabled"},
		{"start success", CmdStart, 0, "success"},
		{"start failed", CmdStart, 3, "operation failed"},
		{"restart success", CmdRestart, 0, "success"},
		{"daemon-reload success", CmdDaemonReload, 0, "success"},
		{"daemon-reload failure", CmdDaemonReload, 1, "failed with exit code 1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, InterpretExitCode(tt.cmd, tt.exitCode))
		})
	}
}
