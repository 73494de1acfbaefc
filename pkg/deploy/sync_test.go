// pkg/deploy/sync_test.go

package deploy

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smartfinances/botops/pkg/ops_err"
)

func TestRsyncArgs(t *testing.T) {
	cfg := DefaultConfig("deploy@bot.example.com")
	cfg.Source = "/home/op/smartfinances"

	args := RsyncArgs(cfg)

	t.Run("archive and compress", func(t *testing.T) {
		assert.Equal(t, "-az", args[0])
	})

	t.Run("delete enabled by default", func(t *testing.T) {
		assert.Contains(t, args, "--delete")
	})

	t.Run("every exclusion present", func(t *testing.T) {
		joined := strings.Join(args, " ")
		for _, pattern := range DefaultExcludes() {
			assert.Contains(t, joined, "--exclude "+pattern)
		}
	})

	t.Run("source gets trailing slash", func(t *testing.T) {
		assert.Equal(t, "/home/op/smartfinances/", args[len(args)-2])
	})

	t.Run("destination is host:path", func(t *testing.T) {
		assert.Equal(t, "deploy@bot.example.com:/opt/smartfinances", args[len(args)-1])
	})
}

func TestRsyncArgsNoDelete(t *testing.T) {
	cfg := DefaultConfig("deploy@bot.example.com")
	cfg.Delete = false
	assert.NotContains(t, RsyncArgs(cfg), "--delete")
}

func TestDefaultExcludes(t *testing.T) {
	excludes := DefaultExcludes()

	// Everything that must never reach the remote host.
	for _, required := range []string{"venv/", ".git/", "smartfinances.db", "*.log", ".env", "credentials.json", "tests/"} {
		assert.Contains(t, excludes, required)
	}
}

func TestResolveHost(t *testing.T) {
	t.Run("positional argument wins", func(t *testing.T) {
		host, err := ResolveHost([]string{"op@cli.example.com"}, "op@config.example.com")
		require.NoError(t, err)
		assert.Equal(t, "op@cli.example.com", host)
	})

	t.Run("falls back to configured host", func(t *testing.T) {
		host, err := ResolveHost(nil, "op@config.example.com")
		require.NoError(t, err)
		assert.Equal(t, "op@config.example.com", host)
	})

	t.Run("neither set is a user error", func(t *testing.T) {
		_, err := ResolveHost(nil, "")
		require.Error(t, err)
		assert.True(t, ops_err.IsExpectedUserError(err))
		assert.Contains(t, err.Error(), "remote_host")
	})
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig("op@host")
	require.Equal(t, "op@host", cfg.RemoteHost)
	assert.Equal(t, "/opt/smartfinances", cfg.RemotePath)
	assert.Equal(t, "smartfinances.service", cfg.UnitName)
	assert.True(t, cfg.Delete)
}
