package cli

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

var (
	colorHeading = color.New(color.FgBlue).SprintFunc()
	colorVerb    = color.New(color.FgGreen).SprintFunc()
	colorFlag    = color.New(color.FgYellow).SprintFunc()
	colorSection = color.New(color.FgMagenta, color.Underline).SprintFunc()
)

func printUninstallUsage(w io.Writer) {
	fmt.Fprintln(w, colorHeading("Usage:"))
	fmt.Fprintf(w, "  aws-lambda-layer-cli %s\n", colorVerb("uninstall"))
	fmt.Fprintln(w)
	fmt.Fprintln(w, colorHeading("Description:"))
	fmt.Fprintln(w, "  Uninstalls the AWS Lambda Layer CLI tool and removes all associated files.")
	fmt.Fprintln(w, "  This includes:")
	fmt.Fprintln(w, "  - The CLI executable and symlinks")
	fmt.Fprintln(w, "  - The installation directory")
	fmt.Fprintln(w, "  - Shell completion scripts")
}

func printCompletionUsage(w io.Writer) {
	completion := colorVerb("completion")
	fmt.Fprintln(w, colorHeading("Usage:"))
	fmt.Fprintf(w, "  aws-lambda-layer-cli %s [options]\n", completion)
	fmt.Fprintln(w)
	fmt.Fprintln(w, colorHeading("Options:"))
	fmt.Fprintf(w, "  %s     Output zsh completion script\n", colorFlag("--zsh"))
	fmt.Fprintf(w, "  %s    Output bash completion script\n", colorFlag("--bash"))
	fmt.Fprintln(w)
	fmt.Fprintln(w, colorSection("Examples:"))
	fmt.Fprintln(w, "  # Load completion in current shell")
	fmt.Fprintf(w, "  source <(aws-lambda-layer-cli %s %s)\n", completion, colorFlag("--bash"))
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  # Add to .zshrc")
	fmt.Fprintf(w, "  aws-lambda-layer-cli %s %s >> ~/.zshrc\n", completion, colorFlag("--zsh"))
}
