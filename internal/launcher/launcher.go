// Package launcher runs a single child process with the caller's standard
// streams and reports its exit status.
package launcher

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"os/signal"

	"github.com/charmbracelet/log"
)

var (
	// ErrEmptyCommand indicates Run was handed no command vector.
	ErrEmptyCommand = errors.New("empty command")
)

// Launcher spawns commands wired to the given streams. When the streams are
// *os.File values the child inherits the descriptors directly, with no
// copying in between.
type Launcher struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
	Logger *log.Logger
}

// New returns a Launcher bound to the process's own stdio.
func New(logger *log.Logger) *Launcher {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Launcher{
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
		Logger: logger,
	}
}

// Run executes argv, waits for it, and returns its exit code. A non-zero exit
// from the child is not an error. Errors are reserved for failures to start
// or wait on the process.
func (l *Launcher) Run(ctx context.Context, argv []string) (int, error) {
	if len(argv) == 0 {
		return 1, ErrEmptyCommand
	}

	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	cmd.Stdin = l.Stdin
	cmd.Stdout = l.Stdout
	cmd.Stderr = l.Stderr

	// Terminal interrupts reach the child through the shared process group,
	// so they are swallowed here. Anything else aimed at the launcher alone,
	// such as a SIGTERM from a supervisor, is passed on. Either way we stay
	// alive so the child's own status is what we report.
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, relayedSignals...)
	defer signal.Stop(signals)

	if err := cmd.Start(); err != nil {
		return 1, fmt.Errorf("run %s: %w", argv[0], err)
	}

	done := make(chan struct{})
	go func() {
		for {
			select {
			case sig := <-signals:
				if sig == os.Interrupt {
					continue
				}
				l.logger().Debug("forwarding signal", "argv0", argv[0], "signal", sig)
				_ = cmd.Process.Signal(sig)
			case <-done:
				return
			}
		}
	}()

	err := cmd.Wait()
	close(done)
	if err == nil {
		l.logger().Debug("child exited", "argv0", argv[0], "code", 0)
		return 0, nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		code, sig := exitStatus(exitErr.ProcessState)
		if sig != "" {
			l.logger().Debug("child terminated by signal", "argv0", argv[0], "signal", sig, "code", code)
		} else {
			l.logger().Debug("child exited", "argv0", argv[0], "code", code)
		}
		return code, nil
	}

	return 1, fmt.Errorf("run %s: %w", argv[0], err)
}

func (l *Launcher) logger() *log.Logger {
	if l.Logger == nil {
		return log.New(io.Discard)
	}
	return l.Logger
}
