// pkg/shared/constants.go
//
// Default paths and thresholds for the smartfinances deployment.
// Everything here can be overridden via /etc/botops/botops.yaml or flags;
// these are the values the production host actually uses.

package shared

import "time"

const (
	// Deployment layout on the target host.
	DeployDir       = "/opt/smartfinances"
	VenvBinDir      = "/opt/smartfinances/venv/bin"
	DatabaseFile    = "/opt/smartfinances/smartfinances.db"
	EnvFile         = "/opt/smartfinances/.env"
	CredentialsFile = "/opt/smartfinances/credentials.json"
	BotLogFile      = "/opt/smartfinances/bot.log"

	// systemd unit for the bot.
	UnitName        = "smartfinances.service"
	UnitInstallPath = "/etc/systemd/system/smartfinances.service"

	// The bot runs as `python main.py` out of the venv.
	ProcessPattern = "main.py"

	// Ownership applied during remediation.
	ServiceUser  = "smartbot"
	ServiceGroup = "smartbot"

	// An initialized SQLite file with the schema applied is at least one
	// page plus the header; anything under this is treated as possibly
	// empty. Heuristic only.
	MinDatabaseSize = 4096

	// How long to wait for the unit to report active after start.
	StartupTimeout = 15 * time.Second

	// Grace period between SIGTERM and SIGKILL when stopping strays.
	KillWait = 3 * time.Second

	// Lines of bot.log shown at the end of a remediation run.
	LogTailLines = 50

	// Remote path used by `botops deploy` when none is configured.
	RemoteDeployPath = "/opt/smartfinances"
)

// Filesystem modes enforced by the permissions step.
const (
	DirPerm      = 0o755
	DatabasePerm = 0o644
	EnvFilePerm  = 0o600
)

// BotopsConfigDir is where the optional botops.yaml lives.
const BotopsConfigDir = "/etc/botops"

// BotopsLogDir is the preferred location for botops' own log.
const BotopsLogDir = "/var/log/botops"
