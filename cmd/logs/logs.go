// cmd/logs/logs.go

package logs

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.uber.org/zap"

	"github.com/smartfinances/botops/pkg/fileops"
	"github.com/smartfinances/botops/pkg/ops_cli"
	"github.com/smartfinances/botops/pkg/ops_io"
	"github.com/smartfinances/botops/pkg/remediate"
)

var (
	logsLines  int
	logsConfig string
)

// LogsCmd prints the tail of the bot's log file.
var LogsCmd = &cobra.Command{
	Use:   "logs",
	Short: "Show the last lines of the bot log",

	RunE: ops_cli.Wrap(runLogs),
}

func init() {
	LogsCmd.Flags().IntVarP(&logsLines, "lines", "n", 0, "Lines to show (default from config)")
	LogsCmd.Flags().StringVar(&logsConfig, "config", "", "Path to botops.yaml (default: /etc/botops, ~/.botops)")
}

func runLogs(rc *ops_io.RuntimeContext, cmd *cobra.Command, args []string) error {
	logger := otelzap.Ctx(rc.Ctx)

	cfg, err := remediate.LoadConfig(rc, logsConfig)
	if err != nil {
		return err
	}

	n := logsLines
	if n <= 0 {
		n = cfg.LogTailLines
	}

	lines, err := fileops.TailLines(cfg.LogFilePath, n)
	if err != nil {
		return err
	}

	logger.Debug("Read bot log", zap.String("path", cfg.LogFilePath), zap.Int("lines", len(lines)))
	for _, line := range lines {
		fmt.Println(line)
	}
	return nil
}
