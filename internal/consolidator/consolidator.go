// Package consolidator merges per-folder dependency manifests into one
// annotated requirements file.
//
// The extractor runs once per folder rather than once for the whole
// tree, so unrelated subprojects never pollute each other's imports.
// The price is one subprocess per folder.
package consolidator

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/indaco/reqwire/internal/core"
	"github.com/indaco/reqwire/internal/extractor"
	"github.com/indaco/reqwire/internal/manifest"
	"github.com/indaco/reqwire/internal/scanner"
)

// headerPrefix introduces each folder's block in the consolidated file.
const headerPrefix = "# Dependencies for folder: "

// Service consolidates per-folder manifests.
type Service struct {
	fs        core.FileSystem
	extractor extractor.Extractor

	// outputFile is the consolidated manifest base name, written into
	// the scan root.
	outputFile string

	// logf receives per-folder diagnostics as they happen. Never nil.
	logf func(format string, a ...any)
}

// NewService creates a consolidator Service. logf may be nil.
func NewService(fs core.FileSystem, ext extractor.Extractor, outputFile string, logf func(string, ...any)) *Service {
	if logf == nil {
		logf = func(string, ...any) {}
	}
	return &Service{
		fs:         fs,
		extractor:  ext,
		outputFile: outputFile,
		logf:       logf,
	}
}

// Summary reports the outcome of one consolidation run.
type Summary struct {
	// Blocks are the folder contributions, in encounter order.
	Blocks []manifest.Block

	// Conflicts lists packages pinned to different versions by
	// different folders. The blocks are still kept verbatim.
	Conflicts []manifest.Conflict

	// OutputPath is where the consolidated manifest was (or would have
	// been) written.
	OutputPath string

	// Written reports whether any content was accumulated and persisted.
	Written bool

	// CleanupErrs collects temp-file deletion failures. They are never
	// propagated; cleanup is best effort.
	CleanupErrs []error
}

// Consolidate extracts dependencies for every folder in scan and writes
// the consolidated manifest into the scan root. Extraction failures skip
// the folder; only an all-empty result leaves the file unwritten.
func (s *Service) Consolidate(ctx context.Context, scan *scanner.Result) (*Summary, error) {
	summary := &Summary{
		OutputPath: filepath.Join(scan.Root, s.outputFile),
	}

	var tempFiles []string

	for _, group := range scan.Groups {
		if len(group.Files) == 0 {
			continue
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		folder := scan.Root
		if group.Folder != scanner.RootFolder {
			folder = filepath.Join(scan.Root, group.Folder)
		}

		reqFile, err := s.extractor.Generate(ctx, folder)
		if err != nil {
			s.logf("Skipping %s: %v", group.Folder, err)
			continue
		}

		data, err := s.fs.ReadFile(ctx, reqFile)
		if err != nil {
			s.logf("Skipping %s: %v", group.Folder, err)
			continue
		}
		tempFiles = append(tempFiles, reqFile)

		content := strings.TrimSpace(string(data))
		if content == "" {
			s.logf("Note: no requirements found in %s (no imports detected)", reqFile)
			continue
		}

		summary.Blocks = append(summary.Blocks, manifest.Block{
			Folder:  group.Folder,
			Content: content,
		})
	}

	summary.Conflicts = manifest.FindConflicts(summary.Blocks)

	if len(summary.Blocks) > 0 {
		if err := s.fs.WriteFile(ctx, summary.OutputPath, []byte(render(summary.Blocks)), core.PermOwnerRW); err != nil {
			return nil, err
		}
		summary.Written = true
	}

	s.cleanup(ctx, tempFiles, summary)

	return summary, nil
}

// render joins blocks into the final file content. Each block is the
// folder header, the raw extractor output, and a blank separator.
func render(blocks []manifest.Block) string {
	var parts []string
	for _, b := range blocks {
		parts = append(parts, headerPrefix+b.Folder, b.Content, "")
	}
	return strings.Join(parts, "\n")
}

// cleanup removes per-folder temp manifests. A temp file sharing the
// consolidated file's name is left alone so the final artifact can never
// delete itself; missing files are not errors.
func (s *Service) cleanup(ctx context.Context, tempFiles []string, summary *Summary) {
	for _, f := range tempFiles {
		if filepath.Base(f) == s.outputFile {
			continue
		}
		if err := s.fs.Remove(ctx, f); err != nil && !os.IsNotExist(err) {
			summary.CleanupErrs = append(summary.CleanupErrs, err)
		}
	}
}
