// pkg/execute/types.go

package execute

import (
	"time"

	"go.uber.org/zap"
)

// Options controls a single external command execution.
type Options struct {
	Command string
	Args    []string
	Dir     string
	Timeout time.Duration
	Capture bool
	DryRun  bool
	Logger  *zap.Logger
}

// DefaultLogger is used when Options.Logger is nil.
var DefaultLogger *zap.Logger
