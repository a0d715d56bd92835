package core

import (
	"context"
	"io/fs"
	"os"
	"path"
	"sort"
	"strings"
	"time"
)

// MockFileSystem is an in-memory FileSystem implementation for tests.
// Paths are stored slash-separated; directories are derived from file
// paths, so SetFile("/a/b/c.txt", ...) implicitly creates /a and /a/b.
type MockFileSystem struct {
	files    map[string][]byte
	dirs     map[string]bool
	Removed  []string
	WriteErr map[string]error
	ReadErr  map[string]error
}

// NewMockFileSystem creates an empty MockFileSystem.
func NewMockFileSystem() *MockFileSystem {
	return &MockFileSystem{
		files:    make(map[string][]byte),
		dirs:     make(map[string]bool),
		WriteErr: make(map[string]error),
		ReadErr:  make(map[string]error),
	}
}

// Verify MockFileSystem implements FileSystem.
var _ FileSystem = (*MockFileSystem)(nil)

// SetFile stores a file and registers every parent directory.
func (m *MockFileSystem) SetFile(p string, data []byte) {
	p = path.Clean(p)
	m.files[p] = data
	for dir := path.Dir(p); dir != "/" && dir != "."; dir = path.Dir(dir) {
		m.dirs[dir] = true
	}
	m.dirs["/"] = true
}

// SetDir registers an (possibly empty) directory.
func (m *MockFileSystem) SetDir(p string) {
	p = path.Clean(p)
	for ; p != "/" && p != "."; p = path.Dir(p) {
		m.dirs[p] = true
	}
	m.dirs["/"] = true
}

// HasFile reports whether a file exists at p.
func (m *MockFileSystem) HasFile(p string) bool {
	_, ok := m.files[path.Clean(p)]
	return ok
}

func (m *MockFileSystem) ReadFile(_ context.Context, p string) ([]byte, error) {
	p = path.Clean(p)
	if err := m.ReadErr[p]; err != nil {
		return nil, err
	}
	data, ok := m.files[p]
	if !ok {
		return nil, &os.PathError{Op: "open", Path: p, Err: os.ErrNotExist}
	}
	return data, nil
}

func (m *MockFileSystem) WriteFile(_ context.Context, p string, data []byte, _ os.FileMode) error {
	p = path.Clean(p)
	if err := m.WriteErr[p]; err != nil {
		return err
	}
	m.SetFile(p, data)
	return nil
}

func (m *MockFileSystem) Stat(_ context.Context, p string) (os.FileInfo, error) {
	p = path.Clean(p)
	if data, ok := m.files[p]; ok {
		return mockFileInfo{name: path.Base(p), size: int64(len(data))}, nil
	}
	if m.dirs[p] {
		return mockFileInfo{name: path.Base(p), dir: true}, nil
	}
	return nil, &os.PathError{Op: "stat", Path: p, Err: os.ErrNotExist}
}

func (m *MockFileSystem) MkdirAll(_ context.Context, p string, _ os.FileMode) error {
	m.SetDir(p)
	return nil
}

func (m *MockFileSystem) Remove(_ context.Context, p string) error {
	p = path.Clean(p)
	if _, ok := m.files[p]; !ok {
		return &os.PathError{Op: "remove", Path: p, Err: os.ErrNotExist}
	}
	delete(m.files, p)
	m.Removed = append(m.Removed, p)
	return nil
}

func (m *MockFileSystem) ReadDir(_ context.Context, p string) ([]os.DirEntry, error) {
	p = path.Clean(p)
	if !m.dirs[p] {
		return nil, &os.PathError{Op: "open", Path: p, Err: os.ErrNotExist}
	}

	seen := make(map[string]bool)
	var entries []os.DirEntry

	add := func(name string, dir bool) {
		if !seen[name] {
			seen[name] = true
			entries = append(entries, mockDirEntry{name: name, dir: dir})
		}
	}

	for f := range m.files {
		if path.Dir(f) == p {
			add(path.Base(f), false)
		}
	}
	for d := range m.dirs {
		if d != p && path.Dir(d) == p {
			add(path.Base(d), true)
		}
	}

	sort.Slice(entries, func(i, j int) bool { return entries[i].Name() < entries[j].Name() })
	return entries, nil
}

type mockDirEntry struct {
	name string
	dir  bool
}

func (e mockDirEntry) Name() string      { return e.name }
func (e mockDirEntry) IsDir() bool       { return e.dir }
func (e mockDirEntry) Type() fs.FileMode { return fs.FileMode(0) }
func (e mockDirEntry) Info() (fs.FileInfo, error) {
	return mockFileInfo{name: e.name, dir: e.dir}, nil
}

type mockFileInfo struct {
	name string
	size int64
	dir  bool
}

func (i mockFileInfo) Name() string       { return i.name }
func (i mockFileInfo) Size() int64        { return i.size }
func (i mockFileInfo) Mode() fs.FileMode  { return fs.FileMode(0o644) }
func (i mockFileInfo) ModTime() time.Time { return time.Time{} }
func (i mockFileInfo) IsDir() bool        { return i.dir }
func (i mockFileInfo) Sys() any           { return nil }

// MockCommandRunner records invocations and returns scripted results.
type MockCommandRunner struct {
	// Results maps the command name to its scripted outcome. When a name
	// is absent the zero result is returned.
	Results map[string]MockResult

	// ResultFn, when set, overrides Results and is consulted per call.
	ResultFn func(name string, args ...string) (string, error)

	Calls []MockCall
}

// MockCall records a single Run invocation.
type MockCall struct {
	Name string
	Args []string
}

// MockResult is a scripted subprocess outcome.
type MockResult struct {
	Stdout string
	Err    error
}

// NewMockCommandRunner creates an empty MockCommandRunner.
func NewMockCommandRunner() *MockCommandRunner {
	return &MockCommandRunner{Results: make(map[string]MockResult)}
}

// Verify MockCommandRunner implements CommandRunner.
var _ CommandRunner = (*MockCommandRunner)(nil)

func (r *MockCommandRunner) Run(_ context.Context, name string, args ...string) (string, error) {
	r.Calls = append(r.Calls, MockCall{Name: name, Args: args})
	if r.ResultFn != nil {
		return r.ResultFn(name, args...)
	}
	res := r.Results[name]
	return res.Stdout, res.Err
}

// CallNames returns the command names in invocation order.
func (r *MockCommandRunner) CallNames() []string {
	names := make([]string, 0, len(r.Calls))
	for _, c := range r.Calls {
		names = append(names, c.Name)
	}
	return names
}

// String formats a call the way it would appear on a shell command line.
func (c MockCall) String() string {
	return strings.Join(append([]string{c.Name}, c.Args...), " ")
}
