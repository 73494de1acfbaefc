// cmd/deploy/deploy.go

package deploy

import (
	"github.com/spf13/cobra"
)

// DeployCmd groups deployment subcommands.
var DeployCmd = &cobra.Command{
	Use:   "deploy",
	Short: "Ship the working tree to the target host",
}

func init() {
	DeployCmd.AddCommand(botDeployCmd)
}
