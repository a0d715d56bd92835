package pyenv

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/indaco/reqwire/internal/core"
)

func stubLookPath(t *testing.T, fn func(string) (string, error)) {
	t.Helper()
	orig := lookPathFn
	lookPathFn = fn
	t.Cleanup(func() { lookPathFn = orig })
}

func TestService_Probe_SkipsAbsentCandidates(t *testing.T) {
	runner := core.NewMockCommandRunner()
	runner.ResultFn = func(name string, args ...string) (string, error) {
		if name == "python3" {
			return "Python 3.12.1", nil
		}
		return "", errors.New("executable file not found in $PATH")
	}

	stubLookPath(t, func(name string) (string, error) {
		return "/usr/bin/" + name, nil
	})

	svc := NewService(runner)
	runtimes := svc.Probe(context.Background())

	if len(runtimes) != 1 {
		t.Fatalf("len(runtimes) = %d, want 1", len(runtimes))
	}
	rt := runtimes[0]
	if rt.Name != "python3" || rt.Version != "Python 3.12.1" || rt.Path != "/usr/bin/python3" {
		t.Errorf("runtime = %+v, want python3 / Python 3.12.1 / /usr/bin/python3", rt)
	}
}

func TestService_Probe_NoneFound(t *testing.T) {
	runner := core.NewMockCommandRunner()
	runner.ResultFn = func(string, ...string) (string, error) {
		return "", errors.New("not found")
	}

	svc := NewService(runner)
	if runtimes := svc.Probe(context.Background()); len(runtimes) != 0 {
		t.Errorf("runtimes = %v, want none", runtimes)
	}
}

func TestService_ProbeNames_PreferredFirstAndDeduplicated(t *testing.T) {
	runner := core.NewMockCommandRunner()
	runner.ResultFn = func(name string, args ...string) (string, error) {
		return "Python 3.11.0", nil
	}
	stubLookPath(t, func(name string) (string, error) {
		return "", errors.New("nope")
	})

	svc := NewService(runner)
	runtimes := svc.ProbeNames(context.Background(), []string{"python3", "python", "python3"})

	if len(runtimes) != 2 {
		t.Fatalf("len(runtimes) = %d, want 2", len(runtimes))
	}
	if runtimes[0].Name != "python3" {
		t.Errorf("first runtime = %q, want python3", runtimes[0].Name)
	}
	if len(runner.Calls) != 2 {
		t.Errorf("len(Calls) = %d, want 2 (duplicate skipped)", len(runner.Calls))
	}
}

func TestScriptsDirResolver_LocalWins(t *testing.T) {
	r := &ScriptsDirResolver{
		Tool: "pipreqs",
		statFn: func(path string) error {
			if path == "/opt/py/bin/pipreqs" {
				return nil
			}
			return os.ErrNotExist
		},
	}
	stubLookPath(t, func(string) (string, error) {
		return "/usr/local/bin/pipreqs", nil
	})

	got, err := r.Resolve("/opt/py/bin/python3")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "/opt/py/bin/pipreqs" {
		t.Errorf("Resolve = %q, want local install next to interpreter", got)
	}
}

func TestScriptsDirResolver_FallsBackToPath(t *testing.T) {
	r := &ScriptsDirResolver{
		Tool:   "pipreqs",
		statFn: func(string) error { return os.ErrNotExist },
	}
	stubLookPath(t, func(name string) (string, error) {
		return "/usr/local/bin/" + name, nil
	})

	got, err := r.Resolve("/opt/py/bin/python3")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "/usr/local/bin/pipreqs" {
		t.Errorf("Resolve = %q, want PATH fallback", got)
	}
}

func TestScriptsDirResolver_NotFound(t *testing.T) {
	r := &ScriptsDirResolver{
		Tool:   "pipreqs",
		statFn: func(string) error { return os.ErrNotExist },
	}
	stubLookPath(t, func(string) (string, error) {
		return "", errors.New("not found")
	})

	if _, err := r.Resolve("/opt/py/bin/python3"); err == nil {
		t.Fatal("expected error when tool is nowhere, got nil")
	}
}
