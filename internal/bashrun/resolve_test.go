package bashrun

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"reflect"
	"testing"
)

type toolOutput struct {
	out string
	err error
}

type fakeHost struct {
	goos    string
	path    map[string]string
	outputs map[string]toolOutput
	calls   []string
}

func (h *fakeHost) GOOS() string { return h.goos }

func (h *fakeHost) LookPath(name string) (string, error) {
	h.calls = append(h.calls, "lookpath "+name)
	if p, ok := h.path[name]; ok {
		return p, nil
	}
	return "", fmt.Errorf("exec: %q: %w", name, exec.ErrNotFound)
}

func (h *fakeHost) Output(_ context.Context, name string, args ...string) (string, error) {
	h.calls = append(h.calls, "output "+name)
	res, ok := h.outputs[name]
	if !ok {
		return "", fmt.Errorf("unexpected call %s %v", name, args)
	}
	return res.out, res.err
}

const winScript = `C:\Users\me\layer\assets\aws-lambda-layer-cli`

func TestResolveNativePassesArgsThrough(t *testing.T) {
	cases := [][]string{
		nil,
		{"create"},
		{"create", "--name", "my layer", "it's", "--", "-h"},
	}
	for _, goos := range []string{"linux", "darwin", "freebsd"} {
		for _, args := range cases {
			t.Run(fmt.Sprintf("%s/%d", goos, len(args)), func(t *testing.T) {
				host := &fakeHost{goos: goos}
				plan, err := NewResolver(host, Options{}).Resolve(context.Background(), "/opt/layer/assets/aws-lambda-layer-cli", args)
				if err != nil {
					t.Fatalf("Resolve returned error: %v", err)
				}
				want := append([]string{"bash", "/opt/layer/assets/aws-lambda-layer-cli"}, args...)
				if plan.Strategy != NativePosix {
					t.Fatalf("strategy = %v, want %v", plan.Strategy, NativePosix)
				}
				if !reflect.DeepEqual(plan.Argv, want) {
					t.Fatalf("argv = %q, want %q", plan.Argv, want)
				}
				if len(host.calls) != 0 {
					t.Fatalf("native strategy queried the host: %v", host.calls)
				}
			})
		}
	}
}

func TestResolveTranslatedPathWinsOverWSL(t *testing.T) {
	host := &fakeHost{
		goos: "windows",
		path: map[string]string{
			"cygpath": `C:\Git\usr\bin\cygpath.exe`,
			"bash":    `C:\Git\bin\bash.exe`,
			"wsl.exe": `C:\Windows\System32\wsl.exe`,
		},
		outputs: map[string]toolOutput{
			`C:\Git\usr\bin\cygpath.exe`: {out: "/c/Users/me/layer/assets/aws-lambda-layer-cli"},
		},
	}

	plan, err := NewResolver(host, Options{}).Resolve(context.Background(), winScript, []string{"list"})
	if err != nil {
		t.Fatalf("Resolve returned error: %v", err)
	}
	if plan.Strategy != WindowsTranslatedPath {
		t.Fatalf("strategy = %v, want %v", plan.Strategy, WindowsTranslatedPath)
	}
	want := []string{"bash", "/c/Users/me/layer/assets/aws-lambda-layer-cli", "list"}
	if !reflect.DeepEqual(plan.Argv, want) {
		t.Fatalf("argv = %q, want %q", plan.Argv, want)
	}
	for _, call := range host.calls {
		if call == "lookpath wsl.exe" || call == "lookpath wsl" {
			t.Fatalf("WSL was tried after translation succeeded: %v", host.calls)
		}
	}
}

func TestResolveFallsThroughToWSL(t *testing.T) {
	cases := []struct {
		name string
		host *fakeHost
	}{
		{
			name: "no translator",
			host: &fakeHost{path: map[string]string{"wsl.exe": "wsl.exe"}},
		},
		{
			name: "translator fails",
			host: &fakeHost{
				path:    map[string]string{"cygpath": "cygpath", "bash": "bash", "wsl.exe": "wsl.exe"},
				outputs: map[string]toolOutput{"cygpath": {err: errors.New("exit status 1")}},
			},
		},
		{
			name: "translator prints nothing",
			host: &fakeHost{
				path:    map[string]string{"cygpath": "cygpath", "bash": "bash", "wsl.exe": "wsl.exe"},
				outputs: map[string]toolOutput{"cygpath": {out: ""}},
			},
		},
		{
			name: "translator works but no bash",
			host: &fakeHost{
				path:    map[string]string{"cygpath": "cygpath", "wsl.exe": "wsl.exe"},
				outputs: map[string]toolOutput{"cygpath": {out: "/c/x"}},
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tc.host.goos = "windows"
			plan, err := NewResolver(tc.host, Options{}).Resolve(context.Background(), winScript, []string{"create", "it's"})
			if err != nil {
				t.Fatalf("Resolve returned error: %v", err)
			}
			if plan.Strategy != WindowsWSL {
				t.Fatalf("strategy = %v, want %v", plan.Strategy, WindowsWSL)
			}
			want := []string{
				"wsl.exe", "bash", "-lc",
				`bash '/mnt/c/Users/me/layer/assets/aws-lambda-layer-cli' 'create' 'it'\''s'`,
			}
			if !reflect.DeepEqual(plan.Argv, want) {
				t.Fatalf("argv = %q, want %q", plan.Argv, want)
			}
		})
	}
}

func TestResolveWSLLauncherOrder(t *testing.T) {
	host := &fakeHost{
		goos: "windows",
		path: map[string]string{"wsl": `C:\bin\wsl`},
	}
	plan, err := NewResolver(host, Options{}).Resolve(context.Background(), winScript, nil)
	if err != nil {
		t.Fatalf("Resolve returned error: %v", err)
	}
	want := []string{`C:\bin\wsl`, "bash", "-lc", "bash '/mnt/c/Users/me/layer/assets/aws-lambda-layer-cli'"}
	if !reflect.DeepEqual(plan.Argv, want) {
		t.Fatalf("argv = %q, want %q", plan.Argv, want)
	}
}

func TestResolveWSLWithoutDriveLetter(t *testing.T) {
	host := &fakeHost{
		goos: "windows",
		path: map[string]string{"wsl.exe": "wsl.exe"},
	}
	_, err := NewResolver(host, Options{}).Resolve(context.Background(), `\\server\share\aws-lambda-layer-cli`, nil)
	if !errors.Is(err, ErrPathConversion) {
		t.Fatalf("Resolve error = %v, want ErrPathConversion", err)
	}
	want := `Unable to convert path for WSL: \\server\share\aws-lambda-layer-cli`
	if err.Error() != want {
		t.Fatalf("error = %q, want %q", err.Error(), want)
	}
}

func TestResolveNoStrategy(t *testing.T) {
	host := &fakeHost{goos: "windows"}
	plan, err := NewResolver(host, Options{}).Resolve(context.Background(), winScript, nil)
	if !errors.Is(err, ErrNoStrategy) {
		t.Fatalf("Resolve error = %v, want ErrNoStrategy", err)
	}
	if plan.Strategy != Unavailable {
		t.Fatalf("strategy = %v, want %v", plan.Strategy, Unavailable)
	}
	const want = "No compatible bash found on Windows. Install WSL (recommended) or Git Bash and ensure bash is on PATH."
	if err.Error() != want {
		t.Fatalf("error = %q, want %q", err.Error(), want)
	}
}

func TestResolveCustomTranslator(t *testing.T) {
	host := &fakeHost{
		goos:    "windows",
		path:    map[string]string{"msys2-path": "msys2-path", "bash": "bash"},
		outputs: map[string]toolOutput{"msys2-path": {out: "/c/x"}},
	}
	plan, err := NewResolver(host, Options{Translator: "msys2-path"}).Resolve(context.Background(), `C:\x`, nil)
	if err != nil {
		t.Fatalf("Resolve returned error: %v", err)
	}
	if plan.Strategy != WindowsTranslatedPath {
		t.Fatalf("strategy = %v, want %v", plan.Strategy, WindowsTranslatedPath)
	}
}

func TestStrategyString(t *testing.T) {
	cases := map[Strategy]string{
		NativePosix:           "native-posix",
		WindowsTranslatedPath: "windows-translated-path",
		WindowsWSL:            "windows-wsl",
		Unavailable:           "unavailable",
	}
	for s, want := range cases {
		if got := s.String(); got != want {
			t.Fatalf("Strategy(%d).String() = %q, want %q", int(s), got, want)
		}
	}
}
