//go:build !unix

package launcher

import "os"

func exitStatus(state *os.ProcessState) (int, string) {
	return state.ExitCode(), ""
}
