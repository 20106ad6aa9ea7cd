package cli

import (
	"context"
	"os"
	"slices"

	"github.com/spf13/cobra"

	"github.com/lambdalayer/aws-lambda-layer-cli/internal/assets"
)

func Execute() error {
	a, err := newApp(os.Stderr)
	if err != nil {
		return err
	}
	return runRoot(context.Background(), newRootCommand(a), os.Args[1:])
}

// runRoot hands argv straight to the root command. cobra's own routing is
// skipped because it reserves __complete and __completeNoDesc for itself,
// and those tokens belong to the bundled script like any other.
func runRoot(ctx context.Context, cmd *cobra.Command, args []string) error {
	cmd.SetContext(ctx)
	return cmd.RunE(cmd, args)
}

// newRootCommand leaves flag parsing to the bundled script: every token,
// including --help and --version, reaches RunE untouched.
func newRootCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:                "aws-lambda-layer-cli [uninstall|completion] [args...]",
		Short:              "Create and publish AWS Lambda layers",
		Version:            a.version,
		Args:               cobra.ArbitraryArgs,
		DisableFlagParsing: true,
		SilenceUsage:       true,
		SilenceErrors:      true,
		RunE:               a.run,
	}
	cmd.CompletionOptions.DisableDefaultCmd = true
	return cmd
}

func (a *app) run(cmd *cobra.Command, args []string) error {
	script, err := assets.ResolveScript(a.assetsDir, a.scriptName)
	if err != nil {
		return err
	}

	if len(args) > 0 && args[0] == "uninstall" {
		if wantsHelp(args) {
			printUninstallUsage(cmd.OutOrStdout())
			return nil
		}
		script, err = assets.ResolveUninstallScript(a.assetsDir)
		if err != nil {
			return err
		}
		args = args[1:]
	}

	if len(args) > 0 && args[0] == "completion" {
		return a.runCompletion(cmd, args)
	}

	return a.passthrough(cmd.Context(), script, args)
}

func (a *app) passthrough(ctx context.Context, script string, args []string) error {
	plan, err := a.resolver.Resolve(ctx, script, args)
	if err != nil {
		return err
	}
	code, err := a.runner.Run(ctx, plan.Argv)
	if err != nil {
		return err
	}
	if code != 0 {
		return &ExitError{Code: code}
	}
	return nil
}

func wantsHelp(args []string) bool {
	return slices.Contains(args, "--help") || slices.Contains(args, "-h")
}
