// Package generate implements the "generate" command: extraction and
// consolidation without installation.
package generate

import (
	"context"
	"fmt"

	"github.com/indaco/reqwire/internal/commands/setup"
	"github.com/indaco/reqwire/internal/config"
	"github.com/urfave/cli/v3"
)

// Run returns the "generate" command.
func Run(cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:    "generate",
		Aliases: []string{"gen"},
		Usage:   "Generate the consolidated requirements file without installing",
		UsageText: `reqwire generate [options]

Probes runtimes (pipreqs is resolved relative to the selected
interpreter), scans the tree, and writes the consolidated manifest.
Nothing is installed.`,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "dry-run",
				Usage: "List the folders that would be processed, without invoking pipreqs",
			},
			&cli.BoolFlag{
				Name:  "no-interactive",
				Usage: "Skip interactive prompts",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return runGenerateCmd(ctx, cmd, cfg)
		},
	}
}

func runGenerateCmd(ctx context.Context, cmd *cli.Command, cfg *config.Config) error {
	opts := setup.Options{
		NoInstall:     true,
		NoInteractive: cmd.Bool("no-interactive"),
	}
	w := setup.NewWorkflow(cfg, opts)

	if cmd.Bool("dry-run") {
		scanResult, err := w.ScanTree(ctx)
		if err != nil {
			return err
		}
		fmt.Printf("Would generate one requirements block per folder (%d folders).\n", len(scanResult.Groups))
		return nil
	}

	rt, err := w.ProbeRuntime(ctx)
	if err != nil {
		return err
	}

	scanResult, err := w.ScanTree(ctx)
	if err != nil {
		return err
	}

	_, err = w.Consolidate(ctx, rt, scanResult)
	return err
}
