// pkg/logger/logger.go

package logger

import (
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var log *zap.Logger

// L returns the process-wide logger, falling back to the zap global.
func L() *zap.Logger {
	if log != nil {
		return log
	}
	return zap.L()
}

// ParseLogLevel maps a LOG_LEVEL env value onto a zap level, defaulting to info.
func ParseLogLevel(s string) zapcore.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return zapcore.DebugLevel
	case "warn", "warning":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

// DefaultConsoleEncoderConfig is the human-facing console encoding.
func DefaultConsoleEncoderConfig() zapcore.EncoderConfig {
	cfg := zap.NewProductionEncoderConfig()
	cfg.TimeKey = "T"
	cfg.LevelKey = "L"
	cfg.NameKey = "N"
	cfg.CallerKey = "C"
	cfg.MessageKey = "M"
	cfg.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
	return cfg
}

// NewFallbackLogger builds a console-only logger for when no log file is writable.
func NewFallbackLogger() *zap.Logger {
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(DefaultConsoleEncoderConfig()),
		zapcore.AddSync(os.Stderr),
		ParseLogLevel(os.Getenv("LOG_LEVEL")),
	)
	return zap.New(core, zap.AddCaller(), zap.AddStacktrace(zapcore.ErrorLevel))
}
