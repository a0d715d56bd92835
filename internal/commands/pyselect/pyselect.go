// Package pyselect provides runtime probing and selection shared by CLI
// commands.
package pyselect

import (
	"context"
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/indaco/reqwire/internal/config"
	"github.com/indaco/reqwire/internal/core"
	"github.com/indaco/reqwire/internal/printer"
	"github.com/indaco/reqwire/internal/pyenv"
	"github.com/indaco/reqwire/internal/tui"
)

// selectFn shows the runtime picker; exposed as a variable for testability.
var selectFn = tui.Select

// ErrNoRuntime is returned when no candidate interpreter responds.
var ErrNoRuntime = fmt.Errorf("no Python installations found")

// Probe returns the detected runtimes, probing the configured preferred
// interpreter first when one is set.
func Probe(ctx context.Context, runner core.CommandRunner, cfg *config.Config) []pyenv.Runtime {
	svc := pyenv.NewService(runner)
	if cfg != nil && cfg.Python != "" {
		return svc.ProbeNames(ctx, append([]string{cfg.Python}, "python", "python3"))
	}
	return svc.Probe(ctx)
}

// Select picks the runtime to use. With a single candidate (or in a
// non-interactive environment) the first one wins; otherwise the user
// chooses from a prompt.
func Select(runtimes []pyenv.Runtime, interactive bool) (pyenv.Runtime, error) {
	if len(runtimes) == 0 {
		return pyenv.Runtime{}, ErrNoRuntime
	}
	if len(runtimes) == 1 || !interactive || !tui.IsInteractive() {
		return runtimes[0], nil
	}

	options := make([]huh.Option[string], 0, len(runtimes))
	for _, rt := range runtimes {
		options = append(options, huh.NewOption(fmt.Sprintf("%s (%s)", rt.Name, rt.Version), rt.Name))
	}

	chosen, err := selectFn("Select Python runtime", "Dependencies will be installed into this interpreter.", options)
	if err != nil {
		return pyenv.Runtime{}, err
	}

	for _, rt := range runtimes {
		if rt.Name == chosen {
			return rt, nil
		}
	}
	return runtimes[0], nil
}

// PrintRuntimes lists detected runtimes the way doctor and setup report
// them.
func PrintRuntimes(runtimes []pyenv.Runtime) {
	for _, rt := range runtimes {
		fmt.Printf("  %s %s %s\n", printer.SuccessBadge("✓"), printer.Bold(rt.Name), printer.Faint(rt.Version))
	}
}
