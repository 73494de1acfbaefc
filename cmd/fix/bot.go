// cmd/fix/bot.go

package fix

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"gopkg.in/yaml.v3"

	"github.com/smartfinances/botops/pkg/ops_cli"
	"github.com/smartfinances/botops/pkg/ops_io"
	"github.com/smartfinances/botops/pkg/remediate"
)

var (
	botFixDryRun   bool
	botFixDeepDB   bool
	botFixSkipLogs bool
	botFixYAML     bool
	botFixReport   string
	botFixConfig   string
)

var botFixCmd = &cobra.Command{
	Use:   "bot",
	Short: "Ensure a single healthy bot instance is running",
	Long: `Runs the full remediation sequence against the local host:

1. Stop the unit and kill any stray bot processes (survivors are fatal)
2. Normalize ownership and permissions on the deployment tree
3. Check the database size heuristic (--deep-db adds an integrity check)
4. Validate .env (fatal if unusable) and the Sheets credentials (warning)
5. Install the systemd unit file if absent and reload the unit cache
6. Enable and start the unit, polling until active or timeout
7. Verify exactly one bot process is running (reported, not fatal)
8. Tail the bot log

Soft anomalies are reported and the run continues; the exit code is 0
unless a fatal precondition (step 1 or 4) aborts the sequence.

EXAMPLES:
  sudo botops fix bot
  sudo botops fix bot --dry-run
  sudo botops fix bot --deep-db --yaml`,

	RunE: ops_cli.Wrap(runBotFix),
}

func init() {
	botFixCmd.Flags().BoolVar(&botFixDryRun, "dry-run", false, "Show what would be done without changing anything")
	botFixCmd.Flags().BoolVar(&botFixDeepDB, "deep-db", false, "Open the SQLite database read-only and verify integrity")
	botFixCmd.Flags().BoolVar(&botFixSkipLogs, "skip-logs", false, "Do not tail the bot log at the end")
	botFixCmd.Flags().BoolVar(&botFixYAML, "yaml", false, "Print the structured result as YAML")
	botFixCmd.Flags().StringVar(&botFixReport, "report", "", "Write the structured result to a YAML file")
	botFixCmd.Flags().StringVar(&botFixConfig, "config", "", "Path to botops.yaml (default: /etc/botops, ~/.botops)")
}

func runBotFix(rc *ops_io.RuntimeContext, cmd *cobra.Command, args []string) error {
	logger := otelzap.Ctx(rc.Ctx)

	cfg, err := remediate.LoadConfig(rc, botFixConfig)
	if err != nil {
		return err
	}
	cfg.DryRun = botFixDryRun
	cfg.DeepDatabaseCheck = botFixDeepDB
	cfg.SkipLogs = botFixSkipLogs

	result, runErr := remediate.Run(rc, cfg)

	if botFixYAML && result != nil {
		data, merr := yaml.Marshal(result)
		if merr != nil {
			logger.Warn("Could not render result as YAML: " + merr.Error())
		} else {
			fmt.Print(string(data))
		}
	}
	if botFixReport != "" && result != nil {
		if werr := ops_io.WriteYAML(rc.Ctx, botFixReport, result); werr != nil {
			logger.Warn("Could not write report file: " + werr.Error())
		}
	}

	if runErr != nil {
		return runErr
	}
	return nil
}
