package scanner

import (
	"context"
	"reflect"
	"testing"

	"github.com/indaco/reqwire/internal/config"
	"github.com/indaco/reqwire/internal/core"
)

func TestService_Scan_GroupsByFolder(t *testing.T) {
	fs := core.NewMockFileSystem()
	fs.SetFile("/project/main.py", []byte("import requests\n"))
	fs.SetFile("/project/a/x.py", []byte("import numpy\n"))
	fs.SetFile("/project/a/y.py", []byte("import numpy\n"))
	fs.SetFile("/project/b/readme.txt", []byte("no scripts here\n"))

	svc := NewService(fs, nil)
	result, err := svc.Scan(context.Background(), "/project")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(result.Groups) != 2 {
		t.Fatalf("len(Groups) = %d, want 2", len(result.Groups))
	}

	if result.Groups[0].Folder != RootFolder {
		t.Errorf("Groups[0].Folder = %q, want %q", result.Groups[0].Folder, RootFolder)
	}
	if !reflect.DeepEqual(result.Groups[0].Files, []string{"main.py"}) {
		t.Errorf("root files = %v, want [main.py]", result.Groups[0].Files)
	}

	if result.Groups[1].Folder != "a" {
		t.Errorf("Groups[1].Folder = %q, want %q", result.Groups[1].Folder, "a")
	}
	if !reflect.DeepEqual(result.Groups[1].Files, []string{"a/x.py", "a/y.py"}) {
		t.Errorf("a files = %v, want [a/x.py a/y.py]", result.Groups[1].Files)
	}
}

func TestService_Scan_ScenarioTwoFolders(t *testing.T) {
	// a/ has one script, b/ has none: exactly one group for a.
	fs := core.NewMockFileSystem()
	fs.SetFile("/project/a/x.py", []byte("import flask\n"))
	fs.SetDir("/project/b")

	svc := NewService(fs, nil)
	result, err := svc.Scan(context.Background(), "/project")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []FolderGroup{{Folder: "a", Files: []string{"a/x.py"}}}
	if !reflect.DeepEqual(result.Groups, want) {
		t.Errorf("Groups = %v, want %v", result.Groups, want)
	}
}

func TestService_Scan_ExcludesEnvironmentDirs(t *testing.T) {
	excluded := []string{"venv", ".venv", "env", "myenv", "__pycache__", "site-packages", "Lib", "Scripts"}

	fs := core.NewMockFileSystem()
	fs.SetFile("/project/app.py", []byte(""))
	for _, dir := range excluded {
		fs.SetFile("/project/"+dir+"/ignored.py", []byte(""))
		fs.SetFile("/project/sub/"+dir+"/ignored.py", []byte(""))
	}

	svc := NewService(fs, nil)
	result, err := svc.Scan(context.Background(), "/project")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(result.Groups) != 1 || result.Groups[0].Folder != RootFolder {
		t.Fatalf("Groups = %v, want only the root group", result.Groups)
	}
}

func TestService_Scan_ExcludesHiddenSegments(t *testing.T) {
	fs := core.NewMockFileSystem()
	fs.SetFile("/project/ok/run.py", []byte(""))
	fs.SetFile("/project/.git/hook.py", []byte(""))
	fs.SetFile("/project/ok/.hidden.py", []byte(""))
	fs.SetFile("/project/.cache/deep/also.py", []byte(""))

	svc := NewService(fs, nil)
	result, err := svc.Scan(context.Background(), "/project")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []FolderGroup{{Folder: "ok", Files: []string{"ok/run.py"}}}
	if !reflect.DeepEqual(result.Groups, want) {
		t.Errorf("Groups = %v, want %v", result.Groups, want)
	}
}

func TestService_Scan_CaseSensitiveExcludes(t *testing.T) {
	// "lib" is not "Lib"; only the exact name is excluded.
	fs := core.NewMockFileSystem()
	fs.SetFile("/project/lib/tool.py", []byte(""))
	fs.SetFile("/project/Lib/ignored.py", []byte(""))

	svc := NewService(fs, nil)
	result, err := svc.Scan(context.Background(), "/project")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []FolderGroup{{Folder: "lib", Files: []string{"lib/tool.py"}}}
	if !reflect.DeepEqual(result.Groups, want) {
		t.Errorf("Groups = %v, want %v", result.Groups, want)
	}
}

func TestService_Scan_ConfiguredExcludes(t *testing.T) {
	fs := core.NewMockFileSystem()
	fs.SetFile("/project/keep/a.py", []byte(""))
	fs.SetFile("/project/legacy/b.py", []byte(""))

	cfg := &config.Config{ExcludeDirs: []string{"legacy"}}
	svc := NewService(fs, cfg)

	result, err := svc.Scan(context.Background(), "/project")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(result.Groups) != 1 || result.Groups[0].Folder != "keep" {
		t.Errorf("Groups = %v, want only keep/", result.Groups)
	}
}

func TestService_Scan_EmptyTree(t *testing.T) {
	fs := core.NewMockFileSystem()
	fs.SetDir("/project")

	svc := NewService(fs, nil)
	result, err := svc.Scan(context.Background(), "/project")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !result.IsEmpty() {
		t.Errorf("IsEmpty() = false, want true")
	}
}

func TestService_Scan_MissingRoot(t *testing.T) {
	fs := core.NewMockFileSystem()

	svc := NewService(fs, nil)
	if _, err := svc.Scan(context.Background(), "/nope"); err == nil {
		t.Fatal("expected error for missing root, got nil")
	}
}

func TestService_Scan_CancelledContext(t *testing.T) {
	fs := core.NewMockFileSystem()
	fs.SetFile("/project/a.py", []byte(""))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	svc := NewService(fs, nil)
	if _, err := svc.Scan(ctx, "/project"); err == nil {
		t.Fatal("expected context error, got nil")
	}
}

func TestResult_Helpers(t *testing.T) {
	result := &Result{Groups: []FolderGroup{
		{Folder: ".", Files: []string{"a.py"}},
		{Folder: "x", Files: []string{"x/b.py", "x/c.py"}},
	}}

	if got := result.FileCount(); got != 3 {
		t.Errorf("FileCount() = %d, want 3", got)
	}
	if got := result.Folders(); !reflect.DeepEqual(got, []string{".", "x"}) {
		t.Errorf("Folders() = %v, want [. x]", got)
	}
}
