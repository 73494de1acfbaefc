// pkg/remediate/runner.go
//
// The "ensure single healthy instance" sequence for the smartfinances
// bot: stop everything, normalize permissions, validate config, install
// the unit if needed, start, verify, surface logs. Fatal preconditions
// (survivors after kill, unusable primary config) abort; everything else
// is recorded in the Result and the run continues so the operator sees
// the full picture.

package remediate

import (
	"fmt"
	"time"

	cerr "github.com/cockroachdb/errors"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.uber.org/zap"

	"github.com/smartfinances/botops/pkg/botconfig"
	"github.com/smartfinances/botops/pkg/database"
	"github.com/smartfinances/botops/pkg/fileops"
	"github.com/smartfinances/botops/pkg/ops_err"
	"github.com/smartfinances/botops/pkg/ops_io"
	"github.com/smartfinances/botops/pkg/process"
	"github.com/smartfinances/botops/pkg/shared"
	"github.com/smartfinances/botops/pkg/systemd"
)

// Run executes the full remediation sequence. The returned Result is
// always populated as far as the run got, even when err is non-nil.
func Run(rc *ops_io.RuntimeContext, cfg Config) (*Result, error) {
	logger := otelzap.Ctx(rc.Ctx)

	result := &Result{
		Unit:      cfg.UnitName,
		StartedAt: time.Now(),
		DryRun:    cfg.DryRun,
	}
	defer func() { result.Duration = time.Since(result.StartedAt) }()

	if err := systemd.CheckAvailable(); err != nil {
		result.record("preflight", StatusFatal, err.Error())
		return result, ops_err.NewExpectedError(err)
	}

	// 1. Stop the unit and kill any stray processes.
	if err := stopEverything(rc, cfg, result); err != nil {
		return result, err
	}

	// 2. Normalize ownership and modes.
	if err := fixPermissions(rc, cfg, result); err != nil {
		return result, err
	}

	// 3. Database size heuristic (plus optional deep check).
	checkDatabase(rc, cfg, result)

	// 4. Configuration artifacts.
	if err := checkConfigs(rc, cfg, result); err != nil {
		return result, err
	}

	// 5. Unit file present, systemd cache current.
	if err := ensureUnit(rc, cfg, result); err != nil {
		return result, err
	}

	// 6. Enable and start, polling until active.
	if err := startService(rc, cfg, result); err != nil {
		return result, err
	}

	// 7. Verify exactly one process. Reported, never fatal: the status
	// output and log tail below are what the operator diagnoses with.
	verifyProcessCount(rc, cfg, result)

	// 8. Surface recent logs.
	if !cfg.SkipLogs {
		tailLogs(rc, cfg, result)
	}

	if soft := result.SoftAnomalies(); soft != nil {
		logger.Warn("⚠️  Remediation completed with anomalies", zap.Error(soft))
	} else {
		logger.Info("✅ Remediation completed cleanly", zap.String("unit", cfg.UnitName))
	}
	return result, nil
}

func stopEverything(rc *ops_io.RuntimeContext, cfg Config, result *Result) error {
	logger := otelzap.Ctx(rc.Ctx)
	logger.Info("🛑 Stopping bot", zap.String("unit", cfg.UnitName), zap.String("pattern", cfg.ProcessPattern))

	if cfg.DryRun {
		result.record("stop", StatusOK, "dry run: would stop unit and kill matching processes")
		return nil
	}

	if err := systemd.Stop(rc.Ctx, cfg.UnitName); err != nil {
		// Not fatal yet: the kill below is the real stop.
		logger.Warn("systemctl stop failed, continuing with kill", zap.Error(err))
	}

	killed, err := process.KillMatching(rc.Ctx, cfg.ProcessPattern, cfg.KillWait)
	if err != nil {
		result.record("stop", StatusFatal, err.Error())
		return cerr.Wrap(err, "killing bot processes")
	}
	if killed > 0 {
		logger.Info("Killed stray bot processes", zap.Int("count", killed))
	}

	// Survivors mean something is respawning them or we lack privileges.
	// Either way every later step would be meaningless.
	survivors, err := process.Count(rc.Ctx, cfg.ProcessPattern)
	if err != nil {
		result.record("stop", StatusFatal, err.Error())
		return cerr.Wrap(err, "re-checking bot processes")
	}
	if survivors > 0 {
		detail := fmt.Sprintf("%d process(es) matching %q still running after kill", survivors, cfg.ProcessPattern)
		result.record("stop", StatusFatal, detail)
		return ops_err.NewExpectedError(cerr.New(detail))
	}

	result.record("stop", StatusOK, fmt.Sprintf("unit stopped, %d stray process(es) killed", killed))
	return nil
}

func fixPermissions(rc *ops_io.RuntimeContext, cfg Config, result *Result) error {
	logger := otelzap.Ctx(rc.Ctx)
	logger.Info("🗂️  Normalizing ownership and permissions",
		zap.String("dir", cfg.DeployDir),
		zap.String("owner", cfg.ServiceUser+":"+cfg.ServiceGroup))

	if cfg.DryRun {
		result.record("permissions", StatusOK, "dry run: would chown "+cfg.DeployDir)
		return nil
	}

	uid, gid, err := fileops.LookupOwner(cfg.ServiceUser, cfg.ServiceGroup)
	if err != nil {
		result.record("permissions", StatusFatal, err.Error())
		return ops_err.NewExpectedError(err)
	}

	if err := fileops.ChownTree(rc.Ctx, cfg.DeployDir, uid, gid); err != nil {
		result.record("permissions", StatusFatal, err.Error())
		return cerr.Wrap(err, "normalizing ownership")
	}

	if err := fileops.SetMode(cfg.DeployDir, shared.DirPerm, false); err != nil {
		result.record("permissions", StatusFatal, err.Error())
		return err
	}
	if err := fileops.SetMode(cfg.VenvBinDir, shared.DirPerm, true); err != nil {
		result.record("permissions", StatusFatal, err.Error())
		return err
	}
	if err := fileops.SetMode(cfg.DatabasePath, shared.DatabasePerm, true); err != nil {
		result.record("permissions", StatusFatal, err.Error())
		return err
	}
	if err := fileops.SetMode(cfg.EnvFilePath, shared.EnvFilePerm, true); err != nil {
		result.record("permissions", StatusFatal, err.Error())
		return err
	}

	result.record("permissions", StatusOK, "ownership and modes normalized")
	return nil
}

func checkDatabase(rc *ops_io.RuntimeContext, cfg Config, result *Result) {
	logger := otelzap.Ctx(rc.Ctx)

	size, err := database.SizeCheck(cfg.DatabasePath, cfg.MinDatabaseSize)
	if err != nil {
		logger.Warn("⚠️  Database size check", zap.Error(err))
		result.recordHeuristic("database", StatusWarn, err.Error())
	} else {
		result.recordHeuristic("database", StatusOK, fmt.Sprintf("%d bytes", size))
	}

	if cfg.DeepDatabaseCheck {
		if err := database.DeepCheck(rc.Ctx, cfg.DatabasePath); err != nil {
			logger.Warn("⚠️  Deep database check", zap.Error(err))
			result.record("database-deep", StatusWarn, err.Error())
		} else {
			result.record("database-deep", StatusOK, "integrity check passed")
		}
	}
}

func checkConfigs(rc *ops_io.RuntimeContext, cfg Config, result *Result) error {
	logger := otelzap.Ctx(rc.Ctx)

	// Primary config: without the bot token a start would crash-loop.
	if err := botconfig.CheckEnvFile(cfg.EnvFilePath); err != nil {
		result.record("config", StatusFatal, err.Error())
		return ops_err.NewExpectedError(err)
	}
	result.record("config", StatusOK, cfg.EnvFilePath+" valid")

	// Secondary config: Sheets export only, bot runs without it.
	if err := botconfig.CheckCredentials(cfg.CredentialsPath); err != nil {
		logger.Warn("⚠️  Credentials check", zap.Error(err))
		result.record("credentials", StatusWarn, err.Error())
	} else {
		result.record("credentials", StatusOK, cfg.CredentialsPath+" valid")
	}
	return nil
}

func ensureUnit(rc *ops_io.RuntimeContext, cfg Config, result *Result) error {
	if systemd.UnitInstalled(cfg.UnitInstallPath) {
		result.record("unit-install", StatusOK, "unit file already present")
		return nil
	}

	if cfg.DryRun {
		result.record("unit-install", StatusOK, "dry run: would install "+cfg.UnitInstallPath)
		return nil
	}

	spec := systemd.UnitSpec{
		User:       cfg.ServiceUser,
		Group:      cfg.ServiceGroup,
		WorkingDir: cfg.DeployDir,
		EnvFile:    cfg.EnvFilePath,
		PythonBin:  cfg.VenvBinDir + "/python",
		LogFile:    cfg.LogFilePath,
	}
	if err := systemd.InstallUnit(rc.Ctx, cfg.UnitInstallPath, spec); err != nil {
		result.record("unit-install", StatusFatal, err.Error())
		return cerr.Wrap(err, "installing unit file")
	}

	result.record("unit-install", StatusOK, "installed "+cfg.UnitInstallPath)
	return nil
}

func startService(rc *ops_io.RuntimeContext, cfg Config, result *Result) error {
	logger := otelzap.Ctx(rc.Ctx)

	if cfg.DryRun {
		result.record("start", StatusOK, "dry run: would enable and start "+cfg.UnitName)
		return nil
	}

	if err := systemd.EnableNow(rc.Ctx, cfg.UnitName); err != nil {
		// Reported, not fatal: the status output and log tail below are
		// what the operator diagnoses a failed start with.
		logger.Warn("⚠️  Could not enable and start unit", zap.Error(err))
		result.record("start", StatusFail, err.Error())
		return nil
	}

	if err := systemd.WaitActive(rc.Ctx, cfg.UnitName, cfg.StartupTimeout); err != nil {
		// The unit was started; let verification and the log tail tell
		// the operator what went wrong instead of aborting here.
		logger.Warn("⚠️  Unit did not reach active state", zap.Error(err))
		result.record("start", StatusFail, err.Error())
		return nil
	}

	result.record("start", StatusOK, "unit active")
	return nil
}

func verifyProcessCount(rc *ops_io.RuntimeContext, cfg Config, result *Result) {
	logger := otelzap.Ctx(rc.Ctx)

	if status := systemd.Status(rc.Ctx, cfg.UnitName); status != "" {
		logger.Info("📋 Service status", zap.String("status", status))
	}

	if cfg.DryRun {
		result.recordHeuristic("verify", StatusOK, "dry run: verification skipped")
		return
	}

	count, err := process.Count(rc.Ctx, cfg.ProcessPattern)
	if err != nil {
		result.recordHeuristic("verify", StatusFail, err.Error())
		return
	}

	switch {
	case count == 1:
		// A crash-looping bot can transiently show count=1 too, hence
		// the heuristic flag on this outcome.
		result.recordHeuristic("verify", StatusOK, "exactly one bot process running")
	case count == 0:
		logger.Error("❌ Bot is not running after remediation")
		result.recordHeuristic("verify", StatusFail, "no bot process running after start")
	default:
		logger.Error("❌ Multiple bot processes running", zap.Int("count", count))
		result.recordHeuristic("verify", StatusFail, fmt.Sprintf("%d bot processes running, expected 1", count))
	}
}

func tailLogs(rc *ops_io.RuntimeContext, cfg Config, result *Result) {
	logger := otelzap.Ctx(rc.Ctx)

	lines, err := fileops.TailLines(cfg.LogFilePath, cfg.LogTailLines)
	if err != nil {
		logger.Warn("⚠️  Could not read bot log", zap.Error(err))
		result.record("logs", StatusWarn, err.Error())
		return
	}

	logger.Info("📜 Recent bot log", zap.String("path", cfg.LogFilePath), zap.Int("lines", len(lines)))
	for _, line := range lines {
		fmt.Println(line)
	}
	result.record("logs", StatusOK, fmt.Sprintf("last %d line(s) shown", len(lines)))
}
