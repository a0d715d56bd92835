// Package installer installs a consolidated manifest into a Python
// runtime via pip.
package installer

import (
	"context"
	"fmt"

	"github.com/indaco/reqwire/internal/core"
)

// Service installs requirements with `<python> -m pip install -r`.
type Service struct {
	fs     core.FileSystem
	runner core.CommandRunner
}

// NewService creates an installer Service.
func NewService(fs core.FileSystem, runner core.CommandRunner) *Service {
	return &Service{fs: fs, runner: runner}
}

// Install installs manifestPath into the given interpreter. The manifest
// must exist on disk; otherwise no subprocess is invoked. A single
// attempt is made, with no retry.
func (s *Service) Install(ctx context.Context, python, manifestPath string) error {
	if _, err := s.fs.Stat(ctx, manifestPath); err != nil {
		return fmt.Errorf("manifest %q not found: %w", manifestPath, err)
	}

	if _, err := s.runner.Run(ctx, python, "-m", "pip", "install", "-r", manifestPath); err != nil {
		return fmt.Errorf("pip install failed (ensure pip is available for %q): %w", python, err)
	}

	return nil
}
