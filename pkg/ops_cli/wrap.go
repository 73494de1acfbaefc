// pkg/ops_cli/wrap.go

package ops_cli

import (
	"context"

	cerr "github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/smartfinances/botops/pkg/execute"
	"github.com/smartfinances/botops/pkg/logger"
	"github.com/smartfinances/botops/pkg/ops_err"
	"github.com/smartfinances/botops/pkg/ops_io"
)

// Wrap gives every command panic recovery, a runtime context with
// tracing, and consistent error classification on the way out.
func Wrap(fn func(rc *ops_io.RuntimeContext, cmd *cobra.Command, args []string) error) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) (err error) {
		logger.InitFallback()

		rc := ops_io.NewContext(context.Background(), cmd.Name())
		defer rc.End(&err)

		// External command logging goes through the command's logger.
		execute.DefaultLogger = rc.Log

		defer rc.HandlePanic(&err)

		err = fn(rc, cmd, args)
		if err != nil && !ops_err.IsExpectedUserError(err) {
			err = cerr.WithStack(err)
		}
		return err
	}
}
