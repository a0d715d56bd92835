// Package scan implements the "scan" command: source discovery without
// extraction or installation.
package scan

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/indaco/reqwire/internal/config"
	"github.com/indaco/reqwire/internal/core"
	"github.com/indaco/reqwire/internal/manifest"
	"github.com/indaco/reqwire/internal/scanner"
	"github.com/urfave/cli/v3"
)

// Run returns the "scan" command.
func Run(cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:  "scan",
		Usage: "List folders containing Python scripts",
		UsageText: `reqwire scan [options]

Walks the scan root for *.py files, grouped by containing folder.
Hidden paths and environment/vendor directories (venv, .venv, env,
myenv, __pycache__, site-packages, Lib, Scripts) are skipped.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"f"},
				Usage:   "Output format: text, json, table",
				Value:   "text",
			},
			&cli.BoolFlag{
				Name:    "quiet",
				Aliases: []string{"q"},
				Usage:   "Only show summary",
			},
			&cli.BoolFlag{
				Name:  "declared",
				Usage: "Also report dependencies declared in pyproject.toml",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return runScanCmd(ctx, cmd, cfg)
		},
	}
}

func runScanCmd(ctx context.Context, cmd *cli.Command, cfg *config.Config) error {
	root, err := resolveRoot(cfg)
	if err != nil {
		return err
	}

	fs := core.NewOSFileSystem()
	svc := scanner.NewService(fs, cfg)

	result, err := svc.Scan(ctx, root)
	if err != nil {
		return fmt.Errorf("scan failed: %w", err)
	}

	var declared []manifest.Entry
	if cmd.Bool("declared") {
		declared = declaredDeps(ctx, fs, root)
	}

	if cmd.Bool("quiet") {
		fmt.Printf("Folders: %d | Scripts: %d\n", len(result.Groups), result.FileCount())
		return nil
	}

	formatter := NewFormatter(ParseOutputFormat(cmd.String("format")))
	fmt.Print(formatter.FormatResult(result, declared))

	return nil
}

// resolveRoot returns the absolute scan base: configured root_dir, or
// the working directory when unset.
func resolveRoot(cfg *config.Config) (string, error) {
	root := cfg.RootDir
	if root == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("failed to get current directory: %w", err)
		}
		root = wd
	}
	return filepath.Abs(root)
}

// declaredDeps parses the root pyproject.toml when present. Absence or
// parse failure just yields no declared dependencies.
func declaredDeps(ctx context.Context, fs core.FileSystem, root string) []manifest.Entry {
	data, err := fs.ReadFile(ctx, filepath.Join(root, "pyproject.toml"))
	if err != nil {
		return nil
	}
	pp, err := manifest.ParsePyProject(data)
	if err != nil {
		return nil
	}
	return pp.DeclaredEntries()
}
