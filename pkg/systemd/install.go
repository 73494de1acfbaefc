// pkg/systemd/install.go

package systemd

import (
	"bytes"
	"context"
	_ "embed"
	"os"
	"path/filepath"
	"text/template"

	cerr "github.com/cockroachdb/errors"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.uber.org/zap"
)

//go:embed templates/smartfinances.service.tmpl
var unitTemplate string

// UnitSpec holds the values rendered into the bundled unit template.
type UnitSpec struct {
	User       string
	Group      string
	WorkingDir string
	EnvFile    string
	PythonBin  string
	LogFile    string
}

// RenderUnit produces the unit file contents for the given spec.
func RenderUnit(spec UnitSpec) ([]byte, error) {
	tmpl, err := template.New("unit").Parse(unitTemplate)
	if err != nil {
		return nil, cerr.Wrap(err, "parse unit template")
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, spec); err != nil {
		return nil, cerr.Wrap(err, "render unit template")
	}
	return buf.Bytes(), nil
}

// UnitInstalled reports whether a unit file already exists at installPath.
func UnitInstalled(installPath string) bool {
	_, err := os.Stat(installPath)
	return err == nil
}

// InstallUnit writes the rendered unit file and reloads systemd's cache.
// Existing unit files are left alone; the runbook only fills the gap.
func InstallUnit(ctx context.Context, installPath string, spec UnitSpec) error {
	logger := otelzap.Ctx(ctx)

	if UnitInstalled(installPath) {
		logger.Debug("Unit file already installed", zap.String("path", installPath))
		return nil
	}

	content, err := RenderUnit(spec)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(installPath), 0o755); err != nil {
		return cerr.Wrap(err, "create unit directory")
	}
	if err := os.WriteFile(installPath, content, 0o644); err != nil {
		return cerr.Wrapf(err, "write unit file %s", installPath)
	}

	logger.Info("📄 Installed unit file", zap.String("path", installPath))

	if err := DaemonReload(ctx); err != nil {
		return err
	}
	return nil
}
