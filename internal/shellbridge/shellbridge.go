package shellbridge

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNoDriveLetter indicates a Windows path lacks a `<Letter>:` prefix.
	ErrNoDriveLetter = errors.New("path has no drive letter")
)

// WSLPath converts a Windows path such as C:\Users\me\x into the mount
// path WSL exposes for it (/mnt/c/Users/me/x).
func WSLPath(winPath string) (string, error) {
	if len(winPath) < 2 || winPath[1] != ':' || !isASCIILetter(winPath[0]) {
		return "", fmt.Errorf("%s: %w", winPath, ErrNoDriveLetter)
	}

	drive := strings.ToLower(winPath[:1])
	rest := strings.TrimLeft(winPath[2:], `\/`)
	return "/mnt/" + drive + "/" + strings.ReplaceAll(rest, `\`, "/"), nil
}

// Quote wraps s in single quotes for a POSIX shell. Embedded single quotes
// become '\''.
func Quote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}

// CommandString builds the `bash <script> <args...>` line handed to a login
// shell inside WSL, with every token quoted.
func CommandString(script string, args []string) string {
	var b strings.Builder
	b.WriteString("bash ")
	b.WriteString(Quote(script))
	for _, arg := range args {
		b.WriteByte(' ')
		b.WriteString(Quote(arg))
	}
	return b.String()
}

func isASCIILetter(c byte) bool {
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}
