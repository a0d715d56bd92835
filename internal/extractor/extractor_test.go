package extractor

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/indaco/reqwire/internal/core"
)

func TestPipreqsExtractor_Generate(t *testing.T) {
	folder := t.TempDir()

	fs := core.NewOSFileSystem()
	runner := core.NewMockCommandRunner()

	ext := NewPipreqsExtractor("/opt/py/bin/pipreqs", "requirements.txt", fs, runner)
	out, err := ext.Generate(context.Background(), folder)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	wantOut := filepath.Join(folder, "requirements.txt")
	if out != wantOut {
		t.Errorf("out = %q, want %q", out, wantOut)
	}

	if len(runner.Calls) != 1 {
		t.Fatalf("len(Calls) = %d, want 1", len(runner.Calls))
	}
	call := runner.Calls[0]
	if call.Name != "/opt/py/bin/pipreqs" {
		t.Errorf("Name = %q, want pipreqs path", call.Name)
	}

	wantArgs := []string{folder, "--savepath", wantOut, "--force", "--encoding", "utf-8", "--use-local"}
	if len(call.Args) != len(wantArgs) {
		t.Fatalf("Args = %v, want %v", call.Args, wantArgs)
	}
	for i := range wantArgs {
		if call.Args[i] != wantArgs[i] {
			t.Errorf("Args[%d] = %q, want %q", i, call.Args[i], wantArgs[i])
		}
	}
}

func TestPipreqsExtractor_MissingFolder(t *testing.T) {
	fs := core.NewMockFileSystem()
	runner := core.NewMockCommandRunner()

	ext := NewPipreqsExtractor("pipreqs", "requirements.txt", fs, runner)
	if _, err := ext.Generate(context.Background(), "/does/not/exist"); err == nil {
		t.Fatal("expected error for missing folder, got nil")
	}

	if len(runner.Calls) != 0 {
		t.Errorf("Calls = %v, want none for a missing folder", runner.Calls)
	}
}

func TestPipreqsExtractor_ToolFailure(t *testing.T) {
	fs := core.NewMockFileSystem()
	fs.SetDir("/project/a")

	runner := core.NewMockCommandRunner()
	runner.Results["pipreqs"] = core.MockResult{Err: errors.New("exit status 1")}

	ext := NewPipreqsExtractor("pipreqs", "requirements.txt", fs, runner)
	if _, err := ext.Generate(context.Background(), "/project/a"); err == nil {
		t.Fatal("expected error from tool failure, got nil")
	}
}
