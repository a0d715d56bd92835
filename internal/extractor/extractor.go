// Package extractor infers third-party dependencies for one folder by
// shelling out to pipreqs. The Extractor interface exists so the
// consolidator can be tested without the real tool installed.
package extractor

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/indaco/reqwire/internal/core"
)

// Extractor produces a per-folder dependency manifest.
type Extractor interface {
	// Generate writes a manifest for folder and returns its path.
	Generate(ctx context.Context, folder string) (string, error)
}

// PipreqsExtractor implements Extractor using the pipreqs executable.
type PipreqsExtractor struct {
	// Exe is the resolved pipreqs executable path.
	Exe string

	// OutputFile is the manifest name written inside each folder.
	OutputFile string

	fs     core.FileSystem
	runner core.CommandRunner
}

// NewPipreqsExtractor creates a PipreqsExtractor.
func NewPipreqsExtractor(exe, outputFile string, fs core.FileSystem, runner core.CommandRunner) *PipreqsExtractor {
	return &PipreqsExtractor{
		Exe:        exe,
		OutputFile: outputFile,
		fs:         fs,
		runner:     runner,
	}
}

// Verify PipreqsExtractor implements Extractor.
var _ Extractor = (*PipreqsExtractor)(nil)

// Generate runs pipreqs against folder, overwriting any prior manifest.
// Version numbers are resolved from locally installed package metadata
// before any remote lookup (--use-local).
func (e *PipreqsExtractor) Generate(ctx context.Context, folder string) (string, error) {
	abs, err := filepath.Abs(folder)
	if err != nil {
		return "", fmt.Errorf("failed to resolve %q: %w", folder, err)
	}

	if _, err := e.fs.Stat(ctx, abs); err != nil {
		return "", fmt.Errorf("folder %q does not exist: %w", abs, err)
	}

	out := filepath.Join(abs, e.OutputFile)
	args := []string{
		abs,
		"--savepath", out,
		"--force",
		"--encoding", "utf-8",
		"--use-local",
	}

	if _, err := e.runner.Run(ctx, e.Exe, args...); err != nil {
		return "", fmt.Errorf("pipreqs failed for %q: %w", abs, err)
	}

	return out, nil
}
