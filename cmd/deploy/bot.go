// cmd/deploy/bot.go

package deploy

import (
	"github.com/spf13/cobra"

	"github.com/smartfinances/botops/pkg/deploy"
	"github.com/smartfinances/botops/pkg/ops_cli"
	"github.com/smartfinances/botops/pkg/ops_io"
	"github.com/smartfinances/botops/pkg/remediate"
)

var (
	botDeploySource    string
	botDeployPath      string
	botDeployNoDelete  bool
	botDeployRemediate bool
	botDeploySkipStart bool
	botDeployConfig    string
)

var botDeployCmd = &cobra.Command{
	Use:   "bot [user@host]",
	Short: "rsync the bot source to the remote host and restart it",
	Long: `Mirrors the local working tree to the remote deployment path,
excluding the virtualenv, the live database, logs, VCS metadata, caches,
tests, and secrets. Then restarts the unit over SSH, or runs the full
remediation sequence there with --remediate.

The target host is the positional argument when given, otherwise the
remote_host key from botops.yaml.

Transfer and restart use your own rsync and ssh binaries, so ~/.ssh/config,
agents, and jump hosts apply. There are no retries: a failed leg is
reported and the tool stops.

EXAMPLES:
  botops deploy bot deploy@bot.example.com
  botops deploy bot                         # remote_host from botops.yaml
  botops deploy bot deploy@bot.example.com --remediate
  botops deploy bot deploy@bot.example.com --source ./smartfinances`,

	Args: cobra.MaximumNArgs(1),
	RunE: ops_cli.Wrap(runBotDeploy),
}

func init() {
	botDeployCmd.Flags().StringVar(&botDeploySource, "source", ".", "Local working tree to sync")
	botDeployCmd.Flags().StringVar(&botDeployPath, "path", "", "Remote deployment path (default /opt/smartfinances)")
	botDeployCmd.Flags().BoolVar(&botDeployNoDelete, "no-delete", false, "Keep remote files absent from the local tree")
	botDeployCmd.Flags().BoolVar(&botDeployRemediate, "remediate", false, "Run full remediation on the remote host after transfer")
	botDeployCmd.Flags().BoolVar(&botDeploySkipStart, "skip-restart", false, "Transfer only, do not touch the service")
	botDeployCmd.Flags().StringVar(&botDeployConfig, "config", "", "Path to botops.yaml (default: /etc/botops, ~/.botops)")
}

func runBotDeploy(rc *ops_io.RuntimeContext, cmd *cobra.Command, args []string) error {
	rcfg, err := remediate.LoadConfig(rc, botDeployConfig)
	if err != nil {
		return err
	}

	host, err := deploy.ResolveHost(args, rcfg.RemoteHost)
	if err != nil {
		return err
	}

	cfg := deploy.DefaultConfig(host)
	cfg.Source = botDeploySource
	cfg.Delete = !botDeployNoDelete
	cfg.Remediate = botDeployRemediate
	if botDeployPath != "" {
		cfg.RemotePath = botDeployPath
	}

	if err := deploy.Sync(rc, cfg); err != nil {
		return err
	}

	if botDeploySkipStart {
		return nil
	}
	if cfg.Remediate {
		return deploy.RemoteRemediate(rc, cfg)
	}
	return deploy.RemoteRestart(rc, cfg)
}
