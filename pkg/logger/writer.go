// pkg/logger/writer.go

package logger

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap/zapcore"
)

// GetLogFileWriter opens (creating if needed) the log file at path with 0600 perms.
func GetLogFileWriter(path string) (zapcore.WriteSyncer, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return zapcore.AddSync(os.Stderr), fmt.Errorf("create log dir: %w", err)
	}

	file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600)
	if err != nil {
		return zapcore.AddSync(os.Stderr), fmt.Errorf("open log file: %w", err)
	}
	return zapcore.AddSync(file), nil
}

// FindWritableLogPath returns the first platform path we can actually write to.
func FindWritableLogPath() (string, error) {
	for _, path := range PlatformLogPaths() {
		if _, err := GetLogFileWriter(path); err == nil {
			return path, nil
		}
	}
	return "", fmt.Errorf("no writable log path found")
}
