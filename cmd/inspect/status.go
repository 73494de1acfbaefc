// cmd/inspect/status.go

package inspect

import (
	"github.com/spf13/cobra"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.uber.org/zap"

	"github.com/smartfinances/botops/pkg/botconfig"
	"github.com/smartfinances/botops/pkg/database"
	"github.com/smartfinances/botops/pkg/fileops"
	"github.com/smartfinances/botops/pkg/ops_cli"
	"github.com/smartfinances/botops/pkg/ops_io"
	"github.com/smartfinances/botops/pkg/process"
	"github.com/smartfinances/botops/pkg/remediate"
	"github.com/smartfinances/botops/pkg/systemd"
)

var statusConfig string

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show process, unit, database, and config state",
	Long: `The read-only subset of the remediation checks: process count for
the bot pattern, unit active/enabled state, database presence and size,
and configuration artifact presence. Changes nothing.`,

	RunE: ops_cli.Wrap(runStatus),
}

func init() {
	statusCmd.Flags().StringVar(&statusConfig, "config", "", "Path to botops.yaml (default: /etc/botops, ~/.botops)")
}

func runStatus(rc *ops_io.RuntimeContext, cmd *cobra.Command, args []string) error {
	logger := otelzap.Ctx(rc.Ctx)

	cfg, err := remediate.LoadConfig(rc, statusConfig)
	if err != nil {
		return err
	}

	count, err := process.Count(rc.Ctx, cfg.ProcessPattern)
	if err != nil {
		logger.Warn("⚠️  Could not count bot processes", zap.Error(err))
	} else {
		logger.Info("🔎 Bot processes", zap.Int("count", count), zap.String("pattern", cfg.ProcessPattern))
	}

	active, state := systemd.IsActive(rc.Ctx, cfg.UnitName)
	logger.Info("🔎 Unit state",
		zap.String("unit", cfg.UnitName),
		zap.Bool("active", active),
		zap.String("state", state),
		zap.Bool("enabled", systemd.IsEnabled(rc.Ctx, cfg.UnitName)))

	if size, err := database.SizeCheck(cfg.DatabasePath, cfg.MinDatabaseSize); err != nil {
		logger.Warn("⚠️  Database", zap.Error(err))
	} else {
		logger.Info("🔎 Database", zap.String("path", cfg.DatabasePath), zap.Int64("bytes", size))
	}

	if err := botconfig.CheckEnvFile(cfg.EnvFilePath); err != nil {
		logger.Warn("⚠️  Primary config", zap.Error(err))
	} else {
		keys, _ := botconfig.EnvSummary(cfg.EnvFilePath)
		logger.Info("🔎 Primary config valid",
			zap.String("path", cfg.EnvFilePath),
			zap.Strings("keys", keys))
	}

	if err := botconfig.CheckCredentials(cfg.CredentialsPath); err != nil {
		logger.Warn("⚠️  Credentials", zap.Error(err))
	} else {
		logger.Info("🔎 Credentials valid", zap.String("path", cfg.CredentialsPath))
	}

	logger.Info("🔎 Unit file",
		zap.String("path", cfg.UnitInstallPath),
		zap.Bool("installed", fileops.Exists(cfg.UnitInstallPath)))

	return nil
}
