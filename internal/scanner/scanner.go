// Package scanner walks a directory tree and groups Python source files
// by their containing folder. Environment and vendor directories, along
// with any hidden path segment, are never descended into.
package scanner

import (
	"context"
	"path"
	"strings"

	"github.com/indaco/reqwire/internal/config"
	"github.com/indaco/reqwire/internal/core"
)

// sourceExt is the file extension collected during a scan.
const sourceExt = ".py"

// Service provides source file discovery grouped by folder.
type Service struct {
	fs       core.FileSystem
	excludes map[string]bool
}

// NewService creates a scanner Service. A nil cfg falls back to the
// built-in exclusion set.
func NewService(fs core.FileSystem, cfg *config.Config) *Service {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	return &Service{
		fs:       fs,
		excludes: cfg.Excludes(),
	}
}

// Scan walks root and returns source files grouped by containing folder.
// Group order follows traversal order (directory listing order, parents
// before children); a folder appears once it contributes its first file.
func (s *Service) Scan(ctx context.Context, root string) (*Result, error) {
	result := &Result{Root: root}
	index := make(map[string]int)

	if err := s.walk(ctx, root, "", result, index); err != nil {
		return nil, err
	}

	return result, nil
}

// walk processes one directory. rel is the slash-separated path of dir
// relative to the root ("" for the root itself).
func (s *Service) walk(ctx context.Context, root, rel string, result *Result, index map[string]int) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	dir := root
	if rel != "" {
		dir = path.Join(root, rel)
	}

	entries, err := s.fs.ReadDir(ctx, dir)
	if err != nil {
		return err
	}

	var subdirs []string
	for _, entry := range entries {
		name := entry.Name()
		if s.skip(name) {
			continue
		}
		if entry.IsDir() {
			subdirs = append(subdirs, name)
			continue
		}
		if strings.HasSuffix(name, sourceExt) {
			s.record(rel, path.Join(relOrDot(rel), name), result, index)
		}
	}

	for _, name := range subdirs {
		if err := s.walk(ctx, root, path.Join(rel, name), result, index); err != nil {
			return err
		}
	}

	return nil
}

// skip reports whether a path segment is excluded from the walk.
func (s *Service) skip(segment string) bool {
	return strings.HasPrefix(segment, ".") || s.excludes[segment]
}

// record appends file to the group for rel, creating the group on first use.
func (s *Service) record(rel, file string, result *Result, index map[string]int) {
	folder := relOrDot(rel)
	i, ok := index[folder]
	if !ok {
		i = len(result.Groups)
		index[folder] = i
		result.Groups = append(result.Groups, FolderGroup{Folder: folder})
	}
	result.Groups[i].Files = append(result.Groups[i].Files, file)
}

func relOrDot(rel string) string {
	if rel == "" {
		return RootFolder
	}
	return rel
}
