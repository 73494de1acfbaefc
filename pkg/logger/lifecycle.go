// pkg/logger/lifecycle.go

package logger

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// InitializeWithFallback sets up the dual console+file logger, degrading to
// console-only when no log path is writable. Safe to call more than once.
func InitializeWithFallback() {
	if log != nil {
		return
	}

	path, err := FindWritableLogPath()
	if err != nil {
		fmt.Fprintln(os.Stderr, "⚠️  No writable log path found. Logging to console only.")
		log = NewFallbackLogger()
		zap.ReplaceGlobals(log)
		return
	}

	jsonCfg := zap.NewProductionEncoderConfig()
	jsonCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	jsonCfg.EncodeLevel = zapcore.CapitalLevelEncoder

	writer, err := GetLogFileWriter(path)
	if err != nil {
		fmt.Fprintln(os.Stderr, "⚠️  Could not write to log file, falling back to stderr:", err)
		writer = zapcore.AddSync(os.Stderr)
	}

	level := ParseLogLevel(os.Getenv("LOG_LEVEL"))
	core := zapcore.NewTee(
		zapcore.NewCore(zapcore.NewConsoleEncoder(DefaultConsoleEncoderConfig()), zapcore.Lock(os.Stderr), level),
		zapcore.NewCore(zapcore.NewJSONEncoder(jsonCfg), writer, level),
	)

	log = zap.New(core, zap.AddCaller(), zap.AddStacktrace(zapcore.ErrorLevel))
	zap.ReplaceGlobals(log)
	log.Debug("Logger initialized", zap.String("log_path", path))
}

// InitFallback guarantees a usable global logger without touching the filesystem.
func InitFallback() {
	if log != nil {
		return
	}
	log = NewFallbackLogger()
	zap.ReplaceGlobals(log)
}
