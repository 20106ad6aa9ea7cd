package version

import (
	"os"
	"path/filepath"
	"runtime/debug"
	"strings"

	"golang.org/x/mod/module"
	"golang.org/x/mod/semver"
)

// Fallback is reported when neither VERSION.txt nor a release build version
// is available.
const Fallback = "0.0.0"

// Load reads VERSION.txt from the install root. Without one it falls back to
// the module version stamped into release builds, then to Fallback.
func Load(root string) string {
	data, err := os.ReadFile(filepath.Join(root, "VERSION.txt"))
	if err == nil {
		if v := strings.TrimSpace(string(data)); v != "" {
			return v
		}
	}
	if v := buildVersion(); v != "" {
		return v
	}
	return Fallback
}

func buildVersion() string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return ""
	}
	return releaseVersion(info.Main.Version)
}

// releaseVersion returns version with its leading "v" removed, or "" for
// development, dirty and pseudo versions.
func releaseVersion(version string) string {
	if !semver.IsValid(version) || strings.Contains(version, "+dirty") {
		return ""
	}
	if module.IsPseudoVersion(version) {
		return ""
	}
	return strings.TrimPrefix(version, "v")
}
