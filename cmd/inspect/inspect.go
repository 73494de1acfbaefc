// cmd/inspect/inspect.go

package inspect

import (
	"github.com/spf13/cobra"
)

// InspectCmd groups read-only inspection subcommands.
var InspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "Read-only checks against the deployment (never mutates)",
}

func init() {
	InspectCmd.AddCommand(statusCmd)
}
