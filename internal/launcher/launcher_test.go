package launcher

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"strconv"
	"strings"
	"testing"
)

func requireSh(t *testing.T) string {
	t.Helper()
	sh, err := exec.LookPath("sh")
	if err != nil {
		t.Skipf("sh not found on PATH: %v", err)
	}
	return sh
}

func bufferedLauncher(stdin string) (*Launcher, *bytes.Buffer, *bytes.Buffer) {
	var stdout, stderr bytes.Buffer
	return &Launcher{
		Stdin:  strings.NewReader(stdin),
		Stdout: &stdout,
		Stderr: &stderr,
	}, &stdout, &stderr
}

func TestRunPropagatesExitCode(t *testing.T) {
	sh := requireSh(t)
	for _, want := range []int{0, 1, 7, 42, 255} {
		t.Run(strconv.Itoa(want), func(t *testing.T) {
			l, _, _ := bufferedLauncher("")
			got, err := l.Run(context.Background(), []string{sh, "-c", "exit " + strconv.Itoa(want)})
			if err != nil {
				t.Fatalf("Run returned error: %v", err)
			}
			if got != want {
				t.Fatalf("exit code = %d, want %d", got, want)
			}
		})
	}
}

func TestRunForwardsArgsVerbatim(t *testing.T) {
	sh := requireSh(t)
	l, stdout, _ := bufferedLauncher("")
	args := []string{"create", "--name", "my layer", "it's", "$HOME", "*"}
	argv := append([]string{sh, "-c", `for a in "$@"; do printf '<%s>\n' "$a"; done`, "sh"}, args...)

	code, err := l.Run(context.Background(), argv)
	if err != nil || code != 0 {
		t.Fatalf("Run = %d, %v", code, err)
	}
	want := "<create>\n<--name>\n<my layer>\n<it's>\n<$HOME>\n<*>\n"
	if stdout.String() != want {
		t.Fatalf("stdout = %q, want %q", stdout.String(), want)
	}
}

func TestRunWiresAllStreams(t *testing.T) {
	sh := requireSh(t)
	l, stdout, stderr := bufferedLauncher("from stdin\n")
	code, err := l.Run(context.Background(), []string{sh, "-c", `read line; echo "out:$line"; echo "err:$line" >&2; exit 3`})
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if code != 3 {
		t.Fatalf("exit code = %d, want 3", code)
	}
	if got := stdout.String(); got != "out:from stdin\n" {
		t.Fatalf("stdout = %q", got)
	}
	if got := stderr.String(); got != "err:from stdin\n" {
		t.Fatalf("stderr = %q", got)
	}
}

func TestRunEmptyCommand(t *testing.T) {
	l, _, _ := bufferedLauncher("")
	if _, err := l.Run(context.Background(), nil); !errors.Is(err, ErrEmptyCommand) {
		t.Fatalf("Run(nil) error = %v, want ErrEmptyCommand", err)
	}
}

func TestRunMissingExecutable(t *testing.T) {
	l, _, _ := bufferedLauncher("")
	code, err := l.Run(context.Background(), []string{"aws-lambda-layer-test-no-such-binary"})
	if err == nil {
		t.Fatal("Run succeeded for a missing executable")
	}
	if code != 1 {
		t.Fatalf("exit code = %d, want 1", code)
	}
}
