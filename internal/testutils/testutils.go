// Package testutils provides shared helpers for command and workflow
// tests.
package testutils

import (
	"bytes"
	"context"
	"io"
	"os"
	"testing"

	"github.com/urfave/cli/v3"
)

// CaptureStdout captures everything fn writes to stdout.
func CaptureStdout(fn func()) (string, error) {
	old := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		return "", err
	}
	os.Stdout = w

	fn()

	_ = w.Close()
	os.Stdout = old

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, r); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// WithWorkingDir changes into dir for the duration of the test.
func WithWorkingDir(t *testing.T, dir string) {
	t.Helper()

	orig, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		_ = os.Chdir(orig)
	})
}

// BuildCLIForTests assembles a minimal root command hosting the given
// subcommands, without the production Before hook.
func BuildCLIForTests(commands []*cli.Command) *cli.Command {
	return &cli.Command{
		Name:     "reqwire",
		Commands: commands,
	}
}

// RunCLITest executes the command with args and fails the test on error.
func RunCLITest(t *testing.T, cmd *cli.Command, args []string) {
	t.Helper()

	if err := cmd.Run(context.Background(), args); err != nil {
		t.Fatalf("command failed: %v", err)
	}
}

// WriteFile writes a file under a test directory, failing the test on
// error.
func WriteFile(t *testing.T, path string, content string) {
	t.Helper()

	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}
