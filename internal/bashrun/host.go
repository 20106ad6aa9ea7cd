package bashrun

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"runtime"
	"strings"
)

// Host is the slice of the operating system that strategy selection inspects.
type Host interface {
	// GOOS reports the operating system, using runtime.GOOS names.
	GOOS() string
	// LookPath searches the executable search path for name.
	LookPath(name string) (string, error)
	// Output runs a short-lived helper and returns its trimmed stdout.
	// A non-zero exit is reported as an error.
	Output(ctx context.Context, name string, args ...string) (string, error)
}

// SystemHost queries the real process environment.
type SystemHost struct{}

func (SystemHost) GOOS() string {
	return runtime.GOOS
}

func (SystemHost) LookPath(name string) (string, error) {
	return exec.LookPath(name)
}

func (SystemHost) Output(ctx context.Context, name string, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("%s %s: %v\n%s", name, strings.Join(args, " "), err, strings.TrimSpace(stderr.String()))
	}
	return strings.TrimSpace(stdout.String()), nil
}
