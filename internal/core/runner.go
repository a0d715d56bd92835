package core

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// CommandRunner abstracts subprocess execution for testability.
type CommandRunner interface {
	// Run executes name with args and returns trimmed stdout.
	// A non-zero exit status is returned as an error carrying the
	// subprocess stderr when available.
	Run(ctx context.Context, name string, args ...string) (string, error)
}

// OSCommandRunner implements CommandRunner using os/exec.
type OSCommandRunner struct {
	execCommand func(ctx context.Context, name string, arg ...string) *exec.Cmd
}

// NewOSCommandRunner creates an OSCommandRunner with the default exec.CommandContext.
func NewOSCommandRunner() *OSCommandRunner {
	return &OSCommandRunner{
		execCommand: exec.CommandContext,
	}
}

// Verify OSCommandRunner implements CommandRunner.
var _ CommandRunner = (*OSCommandRunner)(nil)

func (r *OSCommandRunner) Run(ctx context.Context, name string, args ...string) (string, error) {
	cmd := r.execCommand(ctx, name, args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		stderrMsg := strings.TrimSpace(stderr.String())
		if stderrMsg != "" {
			return "", fmt.Errorf("%s: %w", stderrMsg, err)
		}
		return "", fmt.Errorf("%s failed: %w", name, err)
	}

	return strings.TrimSpace(stdout.String()), nil
}
