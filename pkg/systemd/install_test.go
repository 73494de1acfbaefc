// pkg/systemd/install_test.go

package systemd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSpec() UnitSpec {
	return UnitSpec{
		User:       "smartbot",
		Group:      "smartbot",
		WorkingDir: "/opt/smartfinances",
		EnvFile:    "/opt/smartfinances/.env",
		PythonBin:  "/opt/smartfinances/venv/bin/python",
		LogFile:    "/opt/smartfinances/bot.log",
	}
}

func TestRenderUnit(t *testing.T) {
	content, err := RenderUnit(testSpec())
	require.NoError(t, err)

	unit := string(content)
	assert.Contains(t, unit, "User=smartbot")
	assert.Contains(t, unit, "Group=smartbot")
	assert.Contains(t, unit, "WorkingDirectory=/opt/smartfinances")
	assert.Contains(t, unit, "EnvironmentFile=/opt/smartfinances/.env")
	assert.Contains(t, unit, "ExecStart=/opt/smartfinances/venv/bin/python /opt/smartfinances/main.py")
	assert.Contains(t, unit, "Restart=on-failure")
	assert.Contains(t, unit, "WantedBy=multi-user.target")
}

func TestUnitInstalled(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "smartfinances.service")

	assert.False(t, UnitInstalled(path))

	require.NoError(t, os.WriteFile(path, []byte("[Unit]\n"), 0o644))
	assert.True(t, UnitInstalled(path))
}
