// pkg/shared/vars.go

package shared

import (
	"sync/atomic"

	"go.uber.org/zap"
)

const Version = "0.3.1"

// BotopsID names the tool for XDG-style state directories.
const BotopsID = "botops"

var syncedAlready atomic.Bool

// SafeSync flushes the global zap logger once per process exit.
// Sync on stdout returns EINVAL on some platforms; that is harmless.
func SafeSync() {
	if syncedAlready.Swap(true) {
		return
	}
	_ = zap.L().Sync()
}
