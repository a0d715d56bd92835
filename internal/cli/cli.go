package cli

import (
	"context"
	"fmt"

	"github.com/indaco/reqwire/internal/commands/doctor"
	"github.com/indaco/reqwire/internal/commands/generate"
	"github.com/indaco/reqwire/internal/commands/install"
	"github.com/indaco/reqwire/internal/commands/scan"
	"github.com/indaco/reqwire/internal/commands/setup"
	"github.com/indaco/reqwire/internal/config"
	"github.com/indaco/reqwire/internal/printer"
	"github.com/indaco/reqwire/internal/version"
	urfavecli "github.com/urfave/cli/v3"
)

var noColorFlag bool

// New builds and returns the root CLI command, configuring all
// subcommands and flags for the reqwire cli. Running with no arguments
// executes the full setup pipeline.
func New(cfg *config.Config) *urfavecli.Command {
	return &urfavecli.Command{
		Name:                  "reqwire",
		Version:               fmt.Sprintf("v%s", version.GetVersion()),
		Usage:                 "Consolidated requirements generator for Python repositories",
		EnableShellCompletion: true,
		Flags: append([]urfavecli.Flag{
			&urfavecli.StringFlag{
				Name:        "root",
				Aliases:     []string{"r"},
				Usage:       "Scan base directory",
				DefaultText: "current directory",
			},
			&urfavecli.StringFlag{
				Name:        "output",
				Aliases:     []string{"o"},
				Usage:       "Consolidated manifest name",
				DefaultText: config.DefaultOutputFile,
			},
			&urfavecli.StringSliceFlag{
				Name:  "exclude",
				Usage: "Additional directory names to skip (repeatable)",
			},
			&urfavecli.StringFlag{
				Name:  "python",
				Usage: "Preferred interpreter executable name",
			},
			&urfavecli.BoolFlag{
				Name:        "no-color",
				Usage:       "Disable colored output",
				Destination: &noColorFlag,
			},
		}, setup.Flags()...),
		Before: func(ctx context.Context, cmd *urfavecli.Command) (context.Context, error) {
			printer.SetNoColor(noColorFlag)
			applyFlags(cmd, cfg)
			return ctx, cfg.Validate()
		},
		Action: func(ctx context.Context, cmd *urfavecli.Command) error {
			return setup.RunPipeline(ctx, cfg, setup.OptionsFromCmd(cmd))
		},
		Commands: []*urfavecli.Command{
			setup.Run(cfg),
			scan.Run(cfg),
			generate.Run(cfg),
			install.Run(cfg),
			doctor.Run(cfg),
		},
	}
}

// applyFlags overlays global flag values onto the loaded configuration.
// Precedence: flags > environment > config file > defaults.
func applyFlags(cmd *urfavecli.Command, cfg *config.Config) {
	if v := cmd.String("root"); v != "" {
		cfg.RootDir = v
	}
	if v := cmd.String("output"); v != "" {
		cfg.OutputFile = v
	}
	if v := cmd.StringSlice("exclude"); len(v) > 0 {
		cfg.ExcludeDirs = append(cfg.ExcludeDirs, v...)
	}
	if v := cmd.String("python"); v != "" {
		cfg.Python = v
	}
}
