// pkg/remediate/types.go

package remediate

import (
	"time"

	"github.com/hashicorp/go-multierror"

	"github.com/smartfinances/botops/pkg/shared"
)

// Config carries every path, name, and threshold the remediation
// sequence touches. Nothing in the runner itself is hard-coded.
type Config struct {
	DeployDir       string `mapstructure:"deploy_dir" yaml:"deploy_dir"`
	VenvBinDir      string `mapstructure:"venv_bin_dir" yaml:"venv_bin_dir"`
	DatabasePath    string `mapstructure:"database_path" yaml:"database_path"`
	EnvFilePath     string `mapstructure:"env_file_path" yaml:"env_file_path"`
	CredentialsPath string `mapstructure:"credentials_path" yaml:"credentials_path"`
	LogFilePath     string `mapstructure:"log_file_path" yaml:"log_file_path"`

	UnitName        string `mapstructure:"unit_name" yaml:"unit_name"`
	UnitInstallPath string `mapstructure:"unit_install_path" yaml:"unit_install_path"`

	// Deploy target used by `botops deploy` when no host argument is given.
	RemoteHost string `mapstructure:"remote_host" yaml:"remote_host"`

	ProcessPattern string `mapstructure:"process_pattern" yaml:"process_pattern"`
	ServiceUser    string `mapstructure:"service_user" yaml:"service_user"`
	ServiceGroup   string `mapstructure:"service_group" yaml:"service_group"`

	MinDatabaseSize int64         `mapstructure:"min_database_size" yaml:"min_database_size"`
	StartupTimeout  time.Duration `mapstructure:"startup_timeout" yaml:"startup_timeout"`
	KillWait        time.Duration `mapstructure:"kill_wait" yaml:"kill_wait"`
	LogTailLines    int           `mapstructure:"log_tail_lines" yaml:"log_tail_lines"`

	DryRun            bool `mapstructure:"-" yaml:"-"`
	DeepDatabaseCheck bool `mapstructure:"-" yaml:"-"`
	SkipLogs          bool `mapstructure:"-" yaml:"-"`
}

// DefaultConfig returns the production host's layout.
func DefaultConfig() Config {
	return Config{
		DeployDir:       shared.DeployDir,
		VenvBinDir:      shared.VenvBinDir,
		DatabasePath:    shared.DatabaseFile,
		EnvFilePath:     shared.EnvFile,
		CredentialsPath: shared.CredentialsFile,
		LogFilePath:     shared.BotLogFile,
		UnitName:        shared.UnitName,
		UnitInstallPath: shared.UnitInstallPath,
		ProcessPattern:  shared.ProcessPattern,
		ServiceUser:     shared.ServiceUser,
		ServiceGroup:    shared.ServiceGroup,
		MinDatabaseSize: shared.MinDatabaseSize,
		StartupTimeout:  shared.StartupTimeout,
		KillWait:        shared.KillWait,
		LogTailLines:    shared.LogTailLines,
	}
}

// Status classifies a single check outcome.
type Status string

const (
	StatusOK    Status = "ok"
	StatusWarn  Status = "warn"  // soft anomaly, run continues
	StatusFail  Status = "fail"  // reported failure, run continues
	StatusFatal Status = "fatal" // precondition failure, run aborts
)

// CheckOutcome records one step of the sequence.
type CheckOutcome struct {
	Step      string `yaml:"step" json:"step"`
	Status    Status `yaml:"status" json:"status"`
	Detail    string `yaml:"detail,omitempty" json:"detail,omitempty"`
	Heuristic bool   `yaml:"heuristic,omitempty" json:"heuristic,omitempty"`
}

// Result is the structured outcome of a remediation run, in step order.
type Result struct {
	Unit      string         `yaml:"unit" json:"unit"`
	StartedAt time.Time      `yaml:"started_at" json:"started_at"`
	Duration  time.Duration  `yaml:"duration" json:"duration"`
	DryRun    bool           `yaml:"dry_run,omitempty" json:"dry_run,omitempty"`
	Outcomes  []CheckOutcome `yaml:"outcomes" json:"outcomes"`
}

func (r *Result) record(step string, status Status, detail string) {
	r.Outcomes = append(r.Outcomes, CheckOutcome{Step: step, Status: status, Detail: detail})
}

func (r *Result) recordHeuristic(step string, status Status, detail string) {
	r.Outcomes = append(r.Outcomes, CheckOutcome{Step: step, Status: status, Detail: detail, Heuristic: true})
}

// Fatal reports whether any step hit a fatal precondition.
func (r *Result) Fatal() bool {
	for _, o := range r.Outcomes {
		if o.Status == StatusFatal {
			return true
		}
	}
	return false
}

// Healthy reports whether the run completed with nothing worse than ok.
func (r *Result) Healthy() bool {
	for _, o := range r.Outcomes {
		if o.Status != StatusOK {
			return false
		}
	}
	return true
}

// SoftAnomalies aggregates every warn/fail outcome into one error, or nil.
func (r *Result) SoftAnomalies() error {
	var merr *multierror.Error
	for _, o := range r.Outcomes {
		if o.Status == StatusWarn || o.Status == StatusFail {
			merr = multierror.Append(merr, &anomalyError{outcome: o})
		}
	}
	return merr.ErrorOrNil()
}

type anomalyError struct {
	outcome CheckOutcome
}

func (e *anomalyError) Error() string {
	return string(e.outcome.Status) + " [" + e.outcome.Step + "]: " + e.outcome.Detail
}
