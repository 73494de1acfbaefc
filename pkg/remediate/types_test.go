// pkg/remediate/types_test.go

package remediate

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestResultAccessors(t *testing.T) {
	t.Run("healthy run", func(t *testing.T) {
		r := &Result{}
		r.record("stop", StatusOK, "")
		r.record("permissions", StatusOK, "")

		assert.True(t, r.Healthy())
		assert.False(t, r.Fatal())
		assert.NoError(t, r.SoftAnomalies())
	})

	t.Run("warnings are soft", func(t *testing.T) {
		r := &Result{}
		r.record("stop", StatusOK, "")
		r.record("database", StatusWarn, "possibly empty")

		assert.False(t, r.Healthy())
		assert.False(t, r.Fatal())

		err := r.SoftAnomalies()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "possibly empty")
	})

	t.Run("fatal detected", func(t *testing.T) {
		r := &Result{}
		r.record("stop", StatusFatal, "2 processes still running")

		assert.True(t, r.Fatal())
		assert.False(t, r.Healthy())
	})

	t.Run("multiple anomalies aggregated", func(t *testing.T) {
		r := &Result{}
		r.record("database", StatusWarn, "small")
		r.record("verify", StatusFail, "no bot process")

		err := r.SoftAnomalies()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "small")
		assert.Contains(t, err.Error(), "no bot process")
	})
}

func TestResultYAML(t *testing.T) {
	r := &Result{
		Unit:      "smartfinances.service",
		StartedAt: time.Now(),
	}
	r.recordHeuristic("verify", StatusOK, "exactly one bot process running")

	data, err := yaml.Marshal(r)
	require.NoError(t, err)

	out := string(data)
	assert.Contains(t, out, "unit: smartfinances.service")
	assert.Contains(t, out, "heuristic: true")
	assert.Contains(t, out, "status: ok")
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "/opt/smartfinances", cfg.DeployDir)
	assert.Equal(t, "smartfinances.service", cfg.UnitName)
	assert.Equal(t, "main.py", cfg.ProcessPattern)
	assert.Equal(t, int64(4096), cfg.MinDatabaseSize)
	assert.Equal(t, 15*time.Second, cfg.StartupTimeout)
	assert.Equal(t, 50, cfg.LogTailLines)
}
