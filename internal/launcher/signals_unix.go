//go:build unix

package launcher

import (
	"os"
	"syscall"
)

var relayedSignals = []os.Signal{os.Interrupt, syscall.SIGTERM}
