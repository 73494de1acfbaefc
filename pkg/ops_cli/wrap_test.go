// pkg/ops_cli/wrap_test.go

package ops_cli

import (
	"testing"

	cerr "github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smartfinances/botops/pkg/ops_err"
	"github.com/smartfinances/botops/pkg/ops_io"
)

func TestWrapRecoversPanic(t *testing.T) {
	runE := Wrap(func(rc *ops_io.RuntimeContext, cmd *cobra.Command, args []string) error {
		panic("boom")
	})

	err := runE(&cobra.Command{Use: "test"}, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "panic")
	assert.Contains(t, err.Error(), "boom")
}

func TestWrapErrorClassification(t *testing.T) {
	t.Run("success passes through", func(t *testing.T) {
		runE := Wrap(func(rc *ops_io.RuntimeContext, cmd *cobra.Command, args []string) error {
			return nil
		})
		assert.NoError(t, runE(&cobra.Command{Use: "test"}, nil))
	})

	t.Run("expected errors keep their marking", func(t *testing.T) {
		runE := Wrap(func(rc *ops_io.RuntimeContext, cmd *cobra.Command, args []string) error {
			return ops_err.NewExpectedError(cerr.New("primary config missing"))
		})

		err := runE(&cobra.Command{Use: "test"}, nil)
		require.Error(t, err)
		assert.True(t, ops_err.IsExpectedUserError(err))
	})
}
