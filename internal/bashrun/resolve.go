// Package bashrun decides how the bundled script is handed to bash on the
// current host: directly on POSIX systems, through a cygpath-style path
// translator on Windows (Git Bash, MSYS, Cygwin), or relayed into WSL.
package bashrun

import (
	"context"
	"errors"
	"io"

	"github.com/charmbracelet/log"

	"github.com/lambdalayer/aws-lambda-layer-cli/internal/shellbridge"
)

// Options tunes the tool lookups used on Windows.
type Options struct {
	// Translator is the cygpath-equivalent looked up on PATH.
	Translator string
	// WSLLaunchers are tried in order until one is found on PATH.
	WSLLaunchers []string
	Logger       *log.Logger
}

// DefaultOptions matches a stock Git Bash or WSL install.
func DefaultOptions() Options {
	return Options{
		Translator:   "cygpath",
		WSLLaunchers: []string{"wsl.exe", "wsl"},
	}
}

// Resolver selects a Strategy by evaluating candidates in priority order.
type Resolver struct {
	host   Host
	opts   Options
	logger *log.Logger
}

type candidate struct {
	strategy Strategy
	eval     func(ctx context.Context, script string, args []string) (Plan, bool, error)
}

// NewResolver returns a Resolver probing host. Zero-valued options fall back
// to DefaultOptions.
func NewResolver(host Host, opts Options) *Resolver {
	defaults := DefaultOptions()
	if opts.Translator == "" {
		opts.Translator = defaults.Translator
	}
	if len(opts.WSLLaunchers) == 0 {
		opts.WSLLaunchers = defaults.WSLLaunchers
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Resolver{host: host, opts: opts, logger: logger}
}

// Resolve returns the command vector that runs script with args. The first
// applicable strategy wins; later ones are never evaluated.
func (r *Resolver) Resolve(ctx context.Context, script string, args []string) (Plan, error) {
	candidates := []candidate{
		{strategy: NativePosix, eval: r.nativePosix},
		{strategy: WindowsTranslatedPath, eval: r.translatedPath},
		{strategy: WindowsWSL, eval: r.wsl},
	}

	for _, c := range candidates {
		plan, ok, err := c.eval(ctx, script, args)
		if err != nil {
			return Plan{Strategy: Unavailable}, err
		}
		if ok {
			r.logger.Debug("selected bash strategy", "strategy", c.strategy, "argv", plan.Argv)
			return plan, nil
		}
		r.logger.Debug("bash strategy not applicable", "strategy", c.strategy)
	}

	return Plan{Strategy: Unavailable}, &NoStrategyError{GOOS: r.host.GOOS()}
}

func (r *Resolver) nativePosix(_ context.Context, script string, args []string) (Plan, bool, error) {
	if r.host.GOOS() == "windows" {
		return Plan{}, false, nil
	}
	return Plan{Strategy: NativePosix, Argv: bashArgv(script, args)}, true, nil
}

func (r *Resolver) translatedPath(ctx context.Context, script string, args []string) (Plan, bool, error) {
	if r.host.GOOS() != "windows" {
		return Plan{}, false, nil
	}

	posix, err := r.translate(ctx, script)
	if err != nil {
		var terr *TranslationError
		if errors.As(err, &terr) {
			r.logger.Debug("path translation failed", "tool", terr.Tool, "path", terr.Path, "err", terr.Err)
		} else {
			r.logger.Debug("path translator unavailable", "tool", r.opts.Translator, "err", err)
		}
		return Plan{}, false, nil
	}

	if _, err := r.host.LookPath("bash"); err != nil {
		r.logger.Debug("translated path available but bash is not on PATH", "path", posix)
		return Plan{}, false, nil
	}

	return Plan{Strategy: WindowsTranslatedPath, Argv: bashArgv(posix, args)}, true, nil
}

// translate converts a native Windows path with the configured translator in
// to-unix mode.
func (r *Resolver) translate(ctx context.Context, path string) (string, error) {
	tool, err := r.host.LookPath(r.opts.Translator)
	if err != nil {
		return "", err
	}
	out, err := r.host.Output(ctx, tool, "-u", path)
	if err != nil {
		return "", &TranslationError{Tool: tool, Path: path, Err: err}
	}
	if out == "" {
		return "", &TranslationError{Tool: tool, Path: path}
	}
	return out, nil
}

func (r *Resolver) wsl(_ context.Context, script string, args []string) (Plan, bool, error) {
	if r.host.GOOS() != "windows" {
		return Plan{}, false, nil
	}

	launcher := ""
	for _, name := range r.opts.WSLLaunchers {
		if p, err := r.host.LookPath(name); err == nil {
			launcher = p
			break
		}
	}
	if launcher == "" {
		return Plan{}, false, nil
	}

	wslPath, err := shellbridge.WSLPath(script)
	if err != nil {
		return Plan{}, false, &PathConversionError{Path: script, Err: err}
	}

	argv := []string{launcher, "bash", "-lc", shellbridge.CommandString(wslPath, args)}
	return Plan{Strategy: WindowsWSL, Argv: argv}, true, nil
}

func bashArgv(script string, args []string) []string {
	argv := make([]string, 0, len(args)+2)
	argv = append(argv, "bash", script)
	return append(argv, args...)
}
