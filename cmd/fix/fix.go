// cmd/fix/fix.go

package fix

import (
	"github.com/spf13/cobra"
)

// FixCmd groups remediation subcommands.
var FixCmd = &cobra.Command{
	Use:   "fix",
	Short: "Repair a broken or misbehaving deployment",
}

func init() {
	FixCmd.AddCommand(botFixCmd)
}
