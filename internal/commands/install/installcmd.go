// Package install implements the "install" command: install an existing
// consolidated manifest into a Python runtime.
package install

import (
	"context"
	"path/filepath"

	"github.com/indaco/reqwire/internal/commands/setup"
	"github.com/indaco/reqwire/internal/config"
	"github.com/urfave/cli/v3"
)

// Run returns the "install" command.
func Run(cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:  "install",
		Usage: "Install an existing consolidated requirements file",
		UsageText: `reqwire install [options]

Installs the consolidated manifest with <python> -m pip install -r.
Fails without invoking pip when the manifest does not exist; run
"reqwire generate" first.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "file",
				Aliases: []string{"r"},
				Usage:   "Manifest path (defaults to <root>/<output_file>)",
			},
			&cli.BoolFlag{
				Name:  "no-interactive",
				Usage: "Skip interactive prompts",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return runInstallCmd(ctx, cmd, cfg)
		},
	}
}

func runInstallCmd(ctx context.Context, cmd *cli.Command, cfg *config.Config) error {
	opts := setup.Options{
		NoInteractive: cmd.Bool("no-interactive"),
	}
	w := setup.NewWorkflow(cfg, opts)

	rt, err := w.ProbeRuntime(ctx)
	if err != nil {
		return err
	}

	manifestPath := cmd.String("file")
	if manifestPath == "" {
		root := cfg.RootDir
		if root == "" {
			root = "."
		}
		manifestPath = filepath.Join(root, cfg.OutputFile)
	}

	return w.Install(ctx, rt, manifestPath)
}
