package setup

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/indaco/reqwire/internal/commands/pyselect"
	"github.com/indaco/reqwire/internal/config"
	"github.com/indaco/reqwire/internal/consolidator"
	"github.com/indaco/reqwire/internal/core"
	"github.com/indaco/reqwire/internal/extractor"
	"github.com/indaco/reqwire/internal/installer"
	"github.com/indaco/reqwire/internal/manifest"
	"github.com/indaco/reqwire/internal/printer"
	"github.com/indaco/reqwire/internal/pyenv"
	"github.com/indaco/reqwire/internal/scanner"
	"github.com/indaco/reqwire/internal/tui"
)

// Options control which pipeline stages run and how.
type Options struct {
	// NoInstall stops the pipeline after consolidation.
	NoInstall bool

	// NoInteractive skips prompts and the spinner.
	NoInteractive bool

	// Verbose prints per-folder detail while scanning and consolidating.
	Verbose bool
}

// Workflow wires the pipeline services together. Fields are exported so
// tests can substitute doubles; NewWorkflow fills in production
// implementations.
type Workflow struct {
	FS       core.FileSystem
	Runner   core.CommandRunner
	Resolver pyenv.ToolResolver

	cfg  *config.Config
	opts Options
}

// NewWorkflow creates a production Workflow.
func NewWorkflow(cfg *config.Config, opts Options) *Workflow {
	return &Workflow{
		FS:       core.NewOSFileSystem(),
		Runner:   core.NewOSCommandRunner(),
		Resolver: pyenv.NewPipreqsResolver(),
		cfg:      cfg,
		opts:     opts,
	}
}

// Run executes the full pipeline:
//
//	PROBE -> SCAN -> EXTRACT+CONSOLIDATE -> INSTALL
//
// Each stage aborts the run when it produces nothing; no stage is ever
// re-entered. Errors returned here map to a non-zero exit status.
func (w *Workflow) Run(ctx context.Context) error {
	rt, err := w.ProbeRuntime(ctx)
	if err != nil {
		return err
	}

	scanResult, err := w.ScanTree(ctx)
	if err != nil {
		return err
	}

	summary, err := w.Consolidate(ctx, rt, scanResult)
	if err != nil {
		return err
	}

	if w.opts.NoInstall {
		printer.PrintInfo("Skipping installation (--no-install).")
		return nil
	}

	if err := w.Install(ctx, rt, summary.OutputPath); err != nil {
		return err
	}

	printer.PrintSuccess("Setup complete! To use your environment:")
	fmt.Printf("  1. Run your scripts with %s.\n", printer.Bold(rt.Name))
	fmt.Printf("  2. Re-run %s after adding new imports.\n", printer.Bold("reqwire"))

	return nil
}

// ProbeRuntime detects Python runtimes and selects the one to use.
func (w *Workflow) ProbeRuntime(ctx context.Context) (pyenv.Runtime, error) {
	fmt.Println("Checking installed Python versions...")

	runtimes := pyselect.Probe(ctx, w.Runner, w.cfg)
	if len(runtimes) == 0 {
		printer.PrintError("No Python installations found. Please install Python.")
		return pyenv.Runtime{}, pyselect.ErrNoRuntime
	}

	fmt.Println("Found the following Python versions:")
	pyselect.PrintRuntimes(runtimes)

	rt, err := pyselect.Select(runtimes, !w.opts.NoInteractive)
	if err != nil {
		return pyenv.Runtime{}, err
	}

	fmt.Printf("Using %s for environment setup.\n", printer.Bold(rt.Name))
	return rt, nil
}

// ScanTree discovers Python sources under the configured root. An empty
// tree aborts the run.
func (w *Workflow) ScanTree(ctx context.Context) (*scanner.Result, error) {
	fmt.Println("Scanning for Python scripts...")

	root, err := w.root()
	if err != nil {
		return nil, err
	}

	result, err := scanner.NewService(w.FS, w.cfg).Scan(ctx, root)
	if err != nil {
		return nil, fmt.Errorf("scan failed: %w", err)
	}

	if result.IsEmpty() {
		printer.PrintError("No Python scripts found in the repository.")
		return nil, fmt.Errorf("no Python scripts found under %q", root)
	}

	fmt.Println("Found Python scripts in the following folders:")
	for _, g := range result.Groups {
		fmt.Printf("  - %s: %d script(s)\n", g.Folder, len(g.Files))
		if w.opts.Verbose {
			for _, f := range g.Files {
				fmt.Printf("      %s\n", printer.Faint(f))
			}
		}
	}

	return result, nil
}

// Consolidate runs the extractor per folder and writes the consolidated
// manifest. An all-empty result aborts the run.
func (w *Workflow) Consolidate(ctx context.Context, rt pyenv.Runtime, scanResult *scanner.Result) (*consolidator.Summary, error) {
	pipreqs, err := w.Resolver.Resolve(rt.Path)
	if err != nil {
		printer.Errorf("Failed to generate requirements: %v", err)
		return nil, err
	}

	ext := extractor.NewPipreqsExtractor(pipreqs, w.cfg.OutputFile, w.FS, w.Runner)
	svc := consolidator.NewService(w.FS, ext, w.cfg.OutputFile, printer.Warningf)

	var summary *consolidator.Summary
	action := func() {
		summary, err = svc.Consolidate(ctx, scanResult)
	}
	if spinErr := w.spin("Generating requirements...", action); spinErr != nil {
		return nil, spinErr
	}
	if err != nil {
		return nil, fmt.Errorf("consolidation failed: %w", err)
	}

	if w.opts.Verbose {
		for _, b := range summary.Blocks {
			printer.PrintFaint(fmt.Sprintf("  %s: %d package(s)", b.Folder, len(manifest.ParseLines(b.Content))))
		}
		for _, cleanupErr := range summary.CleanupErrs {
			printer.Warningf("Cleanup: %v", cleanupErr)
		}
	}

	for _, c := range summary.Conflicts {
		for version, folders := range c.Pins {
			printer.Warningf("Conflicting pin: %s==%s in %v", c.Name, version, folders)
		}
	}

	if !summary.Written {
		printer.PrintError("Failed to generate requirements. Ensure pipreqs is installed and scripts have valid imports.")
		return nil, fmt.Errorf("no dependencies collected")
	}

	printer.Successf("Generated consolidated %s", summary.OutputPath)
	return summary, nil
}

// Install installs the consolidated manifest into the selected runtime.
func (w *Workflow) Install(ctx context.Context, rt pyenv.Runtime, manifestPath string) error {
	fmt.Printf("Installing dependencies using %s...\n", printer.Bold(rt.Name))

	svc := installer.NewService(w.FS, w.Runner)

	var err error
	action := func() {
		err = svc.Install(ctx, rt.Name, manifestPath)
	}
	if spinErr := w.spin("Installing dependencies...", action); spinErr != nil {
		return spinErr
	}
	if err != nil {
		printer.Errorf("Failed to install dependencies: %v", err)
		return err
	}

	printer.PrintSuccess("Dependencies installed successfully.")
	return nil
}

// root returns the absolute scan base.
func (w *Workflow) root() (string, error) {
	root := w.cfg.RootDir
	if root == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("failed to get current directory: %w", err)
		}
		root = wd
	}
	return filepath.Abs(root)
}

// spin wraps action in a spinner unless interactivity is disabled.
func (w *Workflow) spin(title string, action func()) error {
	if w.opts.NoInteractive {
		action()
		return nil
	}
	return tui.WithSpinner(title, action)
}
