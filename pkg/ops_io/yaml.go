/* pkg/ops_io/yaml.go */

package ops_io

import (
	"context"
	"fmt"
	"os"

	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// WriteYAML writes data to a YAML file with structured logging.
func WriteYAML(ctx context.Context, filePath string, in interface{}) error {
	logger := otelzap.Ctx(ctx)
	logger.Debug("📝 Writing YAML file", zap.String("path", filePath))

	data, err := yaml.Marshal(in)
	if err != nil {
		return fmt.Errorf("marshal YAML: %w", err)
	}
	if err := os.WriteFile(filePath, data, 0o644); err != nil {
		return fmt.Errorf("write YAML file %s: %w", filePath, err)
	}
	return nil
}

// ReadYAML reads a YAML file into out.
func ReadYAML(ctx context.Context, filePath string, out interface{}) error {
	logger := otelzap.Ctx(ctx)
	logger.Debug("📖 Reading YAML file", zap.String("path", filePath))

	data, err := os.ReadFile(filePath)
	if err != nil {
		return fmt.Errorf("read YAML file %s: %w", filePath, err)
	}
	if err := yaml.Unmarshal(data, out); err != nil {
		return fmt.Errorf("unmarshal YAML %s: %w", filePath, err)
	}
	return nil
}
