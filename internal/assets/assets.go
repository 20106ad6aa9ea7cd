// Package assets locates the bundled script, uninstall script, completion
// files and version file that ship alongside the launcher.
//
// An install root looks like:
//
//	<root>/VERSION.txt
//	<root>/assets/aws-lambda-layer-cli
//	<root>/assets/uninstall.sh
//	<root>/completion/aws-lambda-layer-completion.bash
//	<root>/completion/aws-lambda-layer-completion.zsh
package assets

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
)

const (
	DirName             = "assets"
	CompletionDirName   = "completion"
	DefaultScriptName   = "aws-lambda-layer-cli"
	UninstallScriptName = "uninstall.sh"
	VersionFileName     = "VERSION.txt"
)

var (
	// ErrMissingAsset indicates a required bundled file is absent.
	ErrMissingAsset = errors.New("bundled asset missing")
)

// MissingAssetError names the bundled file that was expected and where.
type MissingAssetError struct {
	Kind string
	Path string
}

func (e *MissingAssetError) Error() string {
	return fmt.Sprintf("%s missing: %s", e.Kind, e.Path)
}

func (e *MissingAssetError) Unwrap() error { return ErrMissingAsset }

// Locator finds the assets directory. Packaged install roots are consulted
// first; the directories around the running executable are the fallback.
type Locator struct {
	// Packaged lists install roots reported by the package manager or the
	// user, highest priority first. Empty entries are skipped.
	Packaged []string
	// Executable reports the entry point's path. Defaults to os.Executable.
	Executable func() (string, error)
	Logger     *log.Logger
}

// ResolveAssets returns the assets directory. When nothing is found the
// conventional location next to the executable is returned anyway so the
// subsequent ResolveScript reports a useful path.
func (l *Locator) ResolveAssets() (string, error) {
	logger := l.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	for _, root := range l.Packaged {
		if root == "" {
			continue
		}
		dir := filepath.Join(root, DirName)
		if isDir(dir) {
			logger.Debug("using packaged install root", "root", root)
			return abs(dir), nil
		}
		logger.Debug("packaged install root has no assets", "root", root)
	}

	exeDir, err := l.executableDir()
	if err != nil {
		return "", fmt.Errorf("locate executable: %w", err)
	}
	for _, root := range fallbackRoots(exeDir) {
		dir := filepath.Join(root, DirName)
		if isDir(dir) {
			logger.Debug("using install root next to executable", "root", root)
			return abs(dir), nil
		}
	}

	dir := filepath.Join(exeDir, DirName)
	logger.Debug("no install root found", "fallback", dir)
	return dir, nil
}

func (l *Locator) executableDir() (string, error) {
	executable := l.Executable
	if executable == nil {
		executable = os.Executable
	}
	exe, err := executable()
	if err != nil {
		return "", err
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return filepath.Dir(exe), nil
}

// fallbackRoots lists where a plain-directory install may sit relative to
// the executable: beside it, one level up (bin/ layout), or under a
// lib/ or share/ prefix.
func fallbackRoots(exeDir string) []string {
	parent := filepath.Dir(exeDir)
	return []string{
		exeDir,
		parent,
		filepath.Join(parent, "lib", "aws-lambda-layer"),
		filepath.Join(parent, "share", "aws-lambda-layer"),
	}
}

// ResolveScript returns the path of the named script inside assetsDir, or a
// *MissingAssetError if it does not exist.
func ResolveScript(assetsDir, name string) (string, error) {
	return resolveFile("Packaged script", filepath.Join(assetsDir, name))
}

// ResolveUninstallScript returns the bundled uninstall script.
func ResolveUninstallScript(assetsDir string) (string, error) {
	return resolveFile("Uninstall script", filepath.Join(assetsDir, UninstallScriptName))
}

// CompletionPath returns where the completion script for shell ("bash" or
// "zsh") is expected. The completion directory is a sibling of assetsDir.
func CompletionPath(assetsDir, shell string) string {
	return filepath.Join(Root(assetsDir), CompletionDirName, "aws-lambda-layer-completion."+shell)
}

// Root returns the install root that holds assetsDir.
func Root(assetsDir string) string {
	return filepath.Dir(filepath.Clean(assetsDir))
}

func resolveFile(kind, path string) (string, error) {
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return "", &MissingAssetError{Kind: kind, Path: path}
	}
	return path, nil
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

func abs(path string) string {
	if p, err := filepath.Abs(path); err == nil {
		return p
	}
	return path
}
