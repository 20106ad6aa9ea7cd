package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/lambdalayer/aws-lambda-layer-cli/internal/bashrun"
)

const (
	envConfig = "AWS_LAMBDA_LAYER_CONFIG"
	envHome   = "AWS_LAMBDA_LAYER_HOME"
	envDebug  = "AWS_LAMBDA_LAYER_DEBUG"
)

// Config captures the optional launcher settings stored in launcher.toml.
type Config struct {
	Home    string       `toml:"home"`
	Script  string       `toml:"script"`
	Debug   bool         `toml:"debug"`
	Windows WindowsBlock `toml:"windows"`

	envHome string
}

// WindowsBlock names the helpers looked for when bash has to be found on Windows.
type WindowsBlock struct {
	Translator   string   `toml:"translator"`
	WSLLaunchers []string `toml:"wsl_launchers"`
}

func (w *WindowsBlock) applyDefaults() {
	defaults := bashrun.DefaultOptions()
	if w.Translator == "" {
		w.Translator = defaults.Translator
	}
	if len(w.WSLLaunchers) == 0 {
		w.WSLLaunchers = defaults.WSLLaunchers
	}
}

func (w WindowsBlock) Validate() error {
	if strings.TrimSpace(w.Translator) == "" {
		return ErrEmptyTranslator
	}
	if len(w.WSLLaunchers) == 0 {
		return ErrNoWSLLaunchers
	}
	for _, name := range w.WSLLaunchers {
		if strings.TrimSpace(name) == "" {
			return ErrNoWSLLaunchers
		}
	}
	return nil
}

var (
	// ErrInvalidScript indicates the script name is empty or contains a path.
	ErrInvalidScript = errors.New("config.script must be a bare file name")
	// ErrEmptyTranslator indicates windows.translator was blanked out.
	ErrEmptyTranslator = errors.New("config.windows.translator must be set")
	// ErrNoWSLLaunchers indicates windows.wsl_launchers has no usable names.
	ErrNoWSLLaunchers = errors.New("config.windows.wsl_launchers must list at least one launcher")
)

// Default returns the settings used when no config file exists.
func Default() Config {
	cfg := Config{}
	cfg.applyDefaults()
	return cfg
}

func (c *Config) applyDefaults() {
	if c.Script == "" {
		c.Script = "aws-lambda-layer-cli"
	}
	c.Windows.applyDefaults()
}

// Validate ensures the configuration can drive the launcher.
func (c Config) Validate() error {
	if c.Script == "" || strings.ContainsAny(c.Script, `/\`) || c.Script == "." || c.Script == ".." {
		return ErrInvalidScript
	}
	return c.Windows.Validate()
}

// Path reports where launcher.toml is read from.
func Path() (string, error) {
	if p := os.Getenv(envConfig); p != "" {
		return p, nil
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "aws-lambda-layer", "launcher.toml"), nil
}

// Load reads configuration from disk. Missing files return a default config.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Default(), nil
		}
		return Config{}, err
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse %s: %w", path, err)
	}
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}

	return cfg, nil
}

// LoadWithEnv loads the config from Path and applies environment overrides.
// A config directory that cannot be determined is treated like a missing file.
// If the file cannot be loaded the error is returned alongside the defaults,
// with environment overrides still applied, so callers can carry on.
func LoadWithEnv() (Config, error) {
	cfg := Default()
	var loadErr error
	if path, err := Path(); err == nil {
		loaded, err := Load(path)
		if err != nil {
			loadErr = err
		} else {
			cfg = loaded
		}
	}
	cfg.applyEnv()
	return cfg, loadErr
}

func (c *Config) applyEnv() {
	c.envHome = os.Getenv(envHome)
	if v, ok := os.LookupEnv(envDebug); ok {
		c.Debug = truthy(v)
	}
}

// Homes lists the install roots to try, AWS_LAMBDA_LAYER_HOME first and then
// the configured home. Unset entries are left out.
func (c Config) Homes() []string {
	var homes []string
	for _, h := range []string{c.envHome, c.Home} {
		if h != "" {
			homes = append(homes, h)
		}
	}
	return homes
}

func truthy(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "true", "yes", "on":
		return true
	default:
		return false
	}
}
