// Package doctor implements the "doctor" command: it reports which
// Python runtimes respond and whether the companion tools (pipreqs,
// pip) can be located for them.
package doctor

import (
	"context"
	"fmt"

	"github.com/indaco/reqwire/internal/commands/pyselect"
	"github.com/indaco/reqwire/internal/config"
	"github.com/indaco/reqwire/internal/core"
	"github.com/indaco/reqwire/internal/printer"
	"github.com/indaco/reqwire/internal/pyenv"
	"github.com/urfave/cli/v3"
)

// Run returns the "doctor" command.
func Run(cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:  "doctor",
		Usage: "Check Python runtimes and required tooling",
		UsageText: `reqwire doctor

Probes the environment for:
  - Python interpreters (python, python3, configured preference)
  - pipreqs next to each interpreter or on PATH
  - pip availability per interpreter`,
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return runDoctorCmd(ctx, cfg)
		},
	}
}

func runDoctorCmd(ctx context.Context, cfg *config.Config) error {
	runner := core.NewOSCommandRunner()

	fmt.Println("Checking installed Python versions...")
	runtimes := pyselect.Probe(ctx, runner, cfg)
	if len(runtimes) == 0 {
		printer.PrintError("No Python installations found. Please install Python.")
		return cli.Exit("", 1)
	}
	pyselect.PrintRuntimes(runtimes)

	resolver := pyenv.NewPipreqsResolver()
	for _, rt := range runtimes {
		checkPipreqs(resolver, rt)
		checkPip(ctx, runner, rt)
	}

	return nil
}

func checkPipreqs(resolver pyenv.ToolResolver, rt pyenv.Runtime) {
	path, err := resolver.Resolve(rt.Path)
	if err != nil {
		fmt.Printf("  %s pipreqs for %s: %v\n", printer.ErrorBadge("✗"), rt.Name, err)
		return
	}
	fmt.Printf("  %s pipreqs for %s %s\n", printer.SuccessBadge("✓"), rt.Name, printer.Faint("("+path+")"))
}

func checkPip(ctx context.Context, runner core.CommandRunner, rt pyenv.Runtime) {
	out, err := runner.Run(ctx, rt.Name, "-m", "pip", "--version")
	if err != nil {
		fmt.Printf("  %s pip for %s: %v\n", printer.ErrorBadge("✗"), rt.Name, err)
		return
	}
	fmt.Printf("  %s pip for %s %s\n", printer.SuccessBadge("✓"), rt.Name, printer.Faint(out))
}
