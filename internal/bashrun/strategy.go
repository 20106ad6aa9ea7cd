package bashrun

import (
	"errors"
	"fmt"
	"strings"
)

// Strategy names a way of reaching bash on the current host.
type Strategy int

const (
	Unavailable Strategy = iota
	NativePosix
	WindowsTranslatedPath
	WindowsWSL
)

func (s Strategy) String() string {
	switch s {
	case NativePosix:
		return "native-posix"
	case WindowsTranslatedPath:
		return "windows-translated-path"
	case WindowsWSL:
		return "windows-wsl"
	default:
		return "unavailable"
	}
}

// Plan is a ready-to-run command vector and the strategy that produced it.
type Plan struct {
	Strategy Strategy
	Argv     []string
}

var (
	// ErrNoStrategy indicates no way of invoking bash exists on this host.
	ErrNoStrategy = errors.New("no compatible bash found")
	// ErrPathConversion indicates the script path could not be mapped into WSL.
	ErrPathConversion = errors.New("unable to convert path for WSL")
)

// NoStrategyError is the terminal condition on Windows hosts with neither
// Git Bash nor WSL.
type NoStrategyError struct {
	GOOS string
}

func (e *NoStrategyError) Error() string {
	return "No compatible bash found on Windows. Install WSL (recommended) or Git Bash and ensure bash is on PATH."
}

func (e *NoStrategyError) Unwrap() error { return ErrNoStrategy }

// PathConversionError reports a WSL launcher that was found but could not be
// handed the script because its path has no drive letter.
type PathConversionError struct {
	Path string
	Err  error
}

func (e *PathConversionError) Error() string {
	return fmt.Sprintf("Unable to convert path for WSL: %s", e.Path)
}

func (e *PathConversionError) Unwrap() []error { return []error{ErrPathConversion, e.Err} }

// TranslationError records a path-translation run that failed or printed
// nothing. Resolution falls through to the next strategy.
type TranslationError struct {
	Tool string
	Path string
	Err  error
}

func (e *TranslationError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s %s: empty output", e.Tool, e.Path)
	}
	return fmt.Sprintf("%s %s: %s", e.Tool, e.Path, strings.TrimSpace(e.Err.Error()))
}

func (e *TranslationError) Unwrap() error { return e.Err }
