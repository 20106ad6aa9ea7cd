package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"regexp"
	"slices"

	"github.com/spf13/cobra"

	"github.com/lambdalayer/aws-lambda-layer-cli/internal/assets"
)

// zshAutorun is the trailer that makes the zsh completion file run itself
// when sourced as an autoload function.
var zshAutorun = regexp.MustCompile(`_aws-lambda-layer-cli "\$@"\s*$`)

const zshRegistration = `
# Register completion
if type compdef &>/dev/null; then
  compdef _aws-lambda-layer-cli aws-lambda-layer-cli
fi
`

func (a *app) runCompletion(cmd *cobra.Command, args []string) error {
	hasZsh := slices.Contains(args, "--zsh")
	hasBash := slices.Contains(args, "--bash")
	if wantsHelp(args) || (!hasZsh && !hasBash) {
		printCompletionUsage(cmd.OutOrStdout())
		return nil
	}

	shell := "bash"
	if hasZsh {
		shell = "zsh"
	}

	path := assets.CompletionPath(a.assetsDir, shell)
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			a.logger.Debug("completion script missing", "path", path)
			fmt.Fprintf(cmd.ErrOrStderr(), "Completion script not found for %s\n", shell)
			return &ExitError{Code: 1}
		}
		return fmt.Errorf("read %s: %w", path, err)
	}

	out := cmd.OutOrStdout()
	content := string(data)
	if shell == "zsh" {
		content = zshAutorun.ReplaceAllString(content, "")
		fmt.Fprintln(out, content)
		fmt.Fprint(out, zshRegistration)
		return nil
	}
	fmt.Fprintln(out, content)
	return nil
}
