// Package setup implements the full pipeline behind the zero-argument
// invocation and the explicit "setup" command: probe runtimes, scan for
// scripts, consolidate per-folder manifests, install the result.
package setup

import (
	"context"

	"github.com/indaco/reqwire/internal/config"
	"github.com/urfave/cli/v3"
)

// Run returns the "setup" command.
func Run(cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:  "setup",
		Usage: "Scan, consolidate and install dependencies (default)",
		UsageText: `reqwire setup [options]

Runs the whole pipeline: detect Python runtimes, scan the tree for
scripts, generate one requirements block per folder, consolidate them
into a single manifest, and pip-install it. Invoking reqwire with no
arguments does the same.`,
		Flags: Flags(),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return RunPipeline(ctx, cfg, OptionsFromCmd(cmd))
		},
	}
}

// Flags returns the pipeline flags, shared with the root command.
func Flags() []cli.Flag {
	return []cli.Flag{
		&cli.BoolFlag{
			Name:  "no-install",
			Usage: "Generate the consolidated manifest but skip pip install",
		},
		&cli.BoolFlag{
			Name:  "no-interactive",
			Usage: "Skip interactive prompts",
		},
		&cli.BoolFlag{
			Name:  "verbose",
			Usage: "Print per-folder detail while scanning and consolidating",
		},
	}
}

// OptionsFromCmd reads the pipeline flags from a command.
func OptionsFromCmd(cmd *cli.Command) Options {
	return Options{
		NoInstall:     cmd.Bool("no-install"),
		NoInteractive: cmd.Bool("no-interactive"),
		Verbose:       cmd.Bool("verbose"),
	}
}

// RunPipeline executes the full workflow; shared by the root action.
func RunPipeline(ctx context.Context, cfg *config.Config, opts Options) error {
	return NewWorkflow(cfg, opts).Run(ctx)
}
