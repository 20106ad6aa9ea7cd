//go:build unix

package launcher

import (
	"os"
	"syscall"

	"golang.org/x/sys/unix"
)

// exitStatus follows the shell convention of 128+N for a child killed by
// signal N, and names the signal for diagnostics.
func exitStatus(state *os.ProcessState) (int, string) {
	if ws, ok := state.Sys().(syscall.WaitStatus); ok && ws.Signaled() {
		sig := ws.Signal()
		name := unix.SignalName(sig)
		if name == "" {
			name = sig.String()
		}
		return 128 + int(sig), name
	}
	return state.ExitCode(), ""
}
