// Package pyenv detects installed Python runtimes and locates the
// companion tools (pipreqs, pip) used by the rest of the application.
package pyenv

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"

	"github.com/indaco/reqwire/internal/core"
)

// candidates are the interpreter executable names probed, in order.
var candidates = []string{"python", "python3"}

// Function variables for testability.
var (
	lookPathFn = exec.LookPath
	osStat     = os.Stat
)

// Runtime describes one detected Python installation.
type Runtime struct {
	// Name is the executable name that responded (e.g. "python3").
	Name string

	// Version is the reported version string (e.g. "Python 3.12.1").
	Version string

	// Path is the resolved absolute executable path, when known.
	Path string
}

// Service probes the environment for Python runtimes.
type Service struct {
	runner core.CommandRunner
}

// NewService creates a probe Service.
func NewService(runner core.CommandRunner) *Service {
	return &Service{runner: runner}
}

// Probe queries each candidate interpreter for its version. Candidates
// that are absent or fail to respond are silently skipped; an empty
// result is not an error here, callers decide whether it is fatal.
func (s *Service) Probe(ctx context.Context) []Runtime {
	return s.ProbeNames(ctx, candidates)
}

// ProbeNames probes an explicit list of interpreter names. A preferred
// interpreter from configuration is probed by passing it here first.
func (s *Service) ProbeNames(ctx context.Context, names []string) []Runtime {
	var found []Runtime
	seen := make(map[string]bool)

	for _, name := range names {
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true

		version, err := s.runner.Run(ctx, name, "--version")
		if err != nil || version == "" {
			continue
		}

		rt := Runtime{Name: name, Version: version}
		if p, err := lookPathFn(name); err == nil {
			rt.Path = p
		}
		found = append(found, rt)
	}

	return found
}

// ToolResolver locates an external tool for a given interpreter.
type ToolResolver interface {
	// Resolve returns the absolute path of the tool to use with the
	// given interpreter, or an error when it cannot be located.
	Resolve(interpreter string) (string, error)
}

// ScriptsDirResolver resolves a tool installed alongside the interpreter
// (pip places console scripts in the interpreter's directory), falling
// back to a PATH lookup.
type ScriptsDirResolver struct {
	// Tool is the bare tool name, e.g. "pipreqs".
	Tool string

	statFn func(string) error
}

// NewPipreqsResolver creates the resolver for the pipreqs executable.
func NewPipreqsResolver() *ScriptsDirResolver {
	return &ScriptsDirResolver{Tool: "pipreqs"}
}

// Verify ScriptsDirResolver implements ToolResolver.
var _ ToolResolver = (*ScriptsDirResolver)(nil)

func (r *ScriptsDirResolver) Resolve(interpreter string) (string, error) {
	name := r.Tool
	if runtime.GOOS == "windows" {
		name += ".exe"
	}

	if interpreter != "" {
		local := filepath.Join(filepath.Dir(interpreter), name)
		if r.stat(local) == nil {
			return local, nil
		}
	}

	if p, err := lookPathFn(r.Tool); err == nil {
		return p, nil
	}

	return "", fmt.Errorf("%s not found next to %q or on PATH", r.Tool, interpreter)
}

func (r *ScriptsDirResolver) stat(path string) error {
	if r.statFn != nil {
		return r.statFn(path)
	}
	_, err := osStat(path)
	return err
}
