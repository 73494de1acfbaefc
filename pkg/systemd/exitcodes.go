// pkg/systemd/exitcodes.go
//
// Systemctl exit codes, per systemctl(1). Different subcommands reuse the
// same numbers with different meanings, so interpretation is per-command.

package systemd

import "fmt"

const (
	ExitSuccess     = 0
	ExitGenericFail = 1

	// is-active, is-enabled, is-failed
	ExitInactive  = 3
	ExitUnknown   = 4
	ExitNotLoaded = 5

	// start, stop, reload, restart
	ExitStartFailed = 3
)

// Command represents a systemctl subcommand.
type Command string

const (
	CmdIsActive     Command = "is-active"
	CmdIsEnabled    Command = "is-enabled"
	CmdStart        Command = "start"
	CmdStop         Command = "stop"
	CmdRestart      Command = "restart"
	CmdEnable       Command = "enable"
	CmdStatus       Command = "status"
	CmdDaemonReload Command = "daemon-reload"
)

// InterpretExitCode renders a systemctl exit code as a human-readable state.
func InterpretExitCode(cmd Command, exitCode int) string {
	switch cmd {
	case CmdIsActive:
		switch exitCode {
		case ExitSuccess:
			return "active"
		case ExitInactive:
			return "inactive"
		case ExitUnknown:
			return "unknown"
		case ExitNotLoaded:
			return "not loaded"
		default:
			return fmt.Sprintf("unknown exit code %d", exitCode)
		}

	case CmdIsEnabled:
		switch exitCode {
		case ExitSuccess:
			return "enabled"
		case ExitGenericFail:
			return "disabled"
		default:
			return fmt.Sprintf("unknown exit code %d", exitCode)
		}

	case CmdStart, CmdRestart, CmdStop:
		switch exitCode {
		case ExitSuccess:
			return "success"
		case ExitStartFailed:
			return "operation failed"
		default:
			return fmt.Sprintf("failed with exit code %d", exitCode)
		}

	default:
		if exitCode == ExitSuccess {
			return "success"
		}
		return fmt.Sprintf("failed with exit code %d", exitCode)
	}
}
