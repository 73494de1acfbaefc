/* cmd/root.go */

package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/smartfinances/botops/cmd/deploy"
	"github.com/smartfinances/botops/cmd/fix"
	"github.com/smartfinances/botops/cmd/inspect"
	"github.com/smartfinances/botops/cmd/logs"
	"github.com/smartfinances/botops/pkg/ops_err"
	"github.com/smartfinances/botops/pkg/shared"
)

// RootCmd is the base command for botops.
var RootCmd = &cobra.Command{
	Use:   "botops",
	Short: "Operations CLI for the smartfinances Telegram bot",
	Long: `botops deploys, restarts, and repairs the smartfinances bot on its
target host: remediation (stop, fix permissions, validate config, start,
verify), working-tree deployment over rsync, and read-only inspection.`,
	Version:       shared.Version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	RootCmd.AddCommand(fix.FixCmd)
	RootCmd.AddCommand(deploy.DeployCmd)
	RootCmd.AddCommand(inspect.InspectCmd)
	RootCmd.AddCommand(logs.LogsCmd)
}

// Execute runs the CLI and exits with the mapped code.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		ops_err.PrintError("botops failed", err)
		os.Exit(ops_err.GetExitCode(err))
	}
	shared.SafeSync()
}
