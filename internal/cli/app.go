package cli

import (
	"context"
	"io"

	"github.com/charmbracelet/log"

	"github.com/lambdalayer/aws-lambda-layer-cli/internal/assets"
	"github.com/lambdalayer/aws-lambda-layer-cli/internal/bashrun"
	"github.com/lambdalayer/aws-lambda-layer-cli/internal/config"
	"github.com/lambdalayer/aws-lambda-layer-cli/internal/launcher"
	"github.com/lambdalayer/aws-lambda-layer-cli/internal/version"
)

type resolver interface {
	Resolve(ctx context.Context, script string, args []string) (bashrun.Plan, error)
}

type runner interface {
	Run(ctx context.Context, argv []string) (int, error)
}

// app holds everything a single invocation needs. It is built once per run
// and never shared.
type app struct {
	assetsDir  string
	scriptName string
	version    string

	logger   *log.Logger
	resolver resolver
	runner   runner
}

// newApp tolerates a broken launcher.toml by warning on stderr and running
// on defaults.
func newApp(stderr io.Writer) (*app, error) {
	cfg, cfgErr := config.LoadWithEnv()
	logger := newLogger(stderr, cfg.Debug)
	if cfgErr != nil {
		logger.Warn("ignoring launcher config", "err", cfgErr)
	}

	locator := &assets.Locator{
		Packaged: cfg.Homes(),
		Logger:   logger,
	}
	assetsDir, err := locator.ResolveAssets()
	if err != nil {
		return nil, err
	}

	v := version.Load(assets.Root(assetsDir))
	logger.Debug("launcher starting", "version", v, "assets", assetsDir)

	return &app{
		assetsDir:  assetsDir,
		scriptName: cfg.Script,
		version:    v,
		logger:     logger,
		resolver: bashrun.NewResolver(bashrun.SystemHost{}, bashrun.Options{
			Translator:   cfg.Windows.Translator,
			WSLLaunchers: cfg.Windows.WSLLaunchers,
			Logger:       logger,
		}),
		runner: launcher.New(logger),
	}, nil
}

func newLogger(w io.Writer, debug bool) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		Prefix: "aws-lambda-layer-cli",
		Level:  log.WarnLevel,
	})
	if debug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}
