// pkg/remediate/config_test.go

package remediate

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smartfinances/botops/pkg/ops_io"
)

func testContext(t *testing.T) *ops_io.RuntimeContext {
	t.Helper()
	return ops_io.NewContext(context.Background(), "test")
}

func TestLoadConfigDefaults(t *testing.T) {
	// Point the search path away from any real /etc/botops config.
	t.Setenv("HOME", t.TempDir())

	cfg, err := LoadConfig(testContext(t), "")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig().DeployDir, cfg.DeployDir)
	assert.Equal(t, DefaultConfig().UnitName, cfg.UnitName)
}

func TestLoadConfigFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "botops.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
deploy_dir: /srv/bot
unit_name: finbot.service
remote_host: op@prod.example.com
min_database_size: 1024
startup_timeout: 30s
`), 0o644))

	cfg, err := LoadConfig(testContext(t), path)
	require.NoError(t, err)

	assert.Equal(t, "/srv/bot", cfg.DeployDir)
	assert.Equal(t, "finbot.service", cfg.UnitName)
	assert.Equal(t, "op@prod.example.com", cfg.RemoteHost)
	assert.Equal(t, int64(1024), cfg.MinDatabaseSize)
	assert.Equal(t, 30*time.Second, cfg.StartupTimeout)

	// Unset keys keep their defaults.
	assert.Equal(t, DefaultConfig().ProcessPattern, cfg.ProcessPattern)
	assert.Equal(t, DefaultConfig().LogTailLines, cfg.LogTailLines)
}

func TestLoadConfigMissingExplicitFile(t *testing.T) {
	_, err := LoadConfig(testContext(t), filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadConfigEnvOverride(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("BOTOPS_UNIT_NAME", "other.service")

	cfg, err := LoadConfig(testContext(t), "")
	require.NoError(t, err)
	assert.Equal(t, "other.service", cfg.UnitName)
}
