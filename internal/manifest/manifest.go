// Package manifest models pip requirements content: individual
// `package[==version]` lines, consolidated provenance blocks, and the
// declared dependencies of a pyproject.toml.
package manifest

import (
	"regexp"
	"strings"
)

// entryRE splits a requirement line into name, specifier and version.
// Environment markers and extras after the version are kept opaque.
var entryRE = regexp.MustCompile(`^([A-Za-z0-9][-A-Za-z0-9._]*)\s*(===|==|>=|<=|~=|!=|>|<)?\s*(\S*)`)

// Entry is a single parsed requirement line.
type Entry struct {
	// Name is the normalized package name.
	Name string

	// Specifier is the version operator ("==", ">=", ...); empty for
	// unconstrained entries.
	Specifier string

	// Version is the constraint operand; empty when Specifier is empty.
	Version string

	// Raw is the original line, untouched.
	Raw string
}

// Pinned reports whether the entry pins an exact version.
func (e Entry) Pinned() bool {
	return e.Specifier == "==" || e.Specifier == "==="
}

// NormalizeName canonicalizes a package name per PEP 503: lowercase,
// with runs of `-`, `_` and `.` collapsed to a single dash.
func NormalizeName(name string) string {
	return strings.ToLower(nameSepRE.ReplaceAllString(name, "-"))
}

var nameSepRE = regexp.MustCompile(`[-_.]+`)

// ParseLines parses requirements content into entries. Blank lines,
// comments, pip options and URL requirements are skipped.
func ParseLines(content string) []Entry {
	var entries []Entry

	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || line[0] == '#' || line[0] == '-' {
			continue
		}
		if strings.Contains(line, "://") || strings.HasPrefix(line, "git+") {
			continue
		}

		m := entryRE.FindStringSubmatch(line)
		if m == nil {
			continue
		}

		entries = append(entries, Entry{
			Name:      NormalizeName(m[1]),
			Specifier: m[2],
			Version:   m[3],
			Raw:       line,
		})
	}

	return entries
}

// Block is one folder's contribution to the consolidated manifest.
type Block struct {
	// Folder is the originating folder, relative to the scan root.
	Folder string

	// Content is the raw extractor output for that folder.
	Content string
}

// Conflict reports a package pinned to different versions by different
// folders. Conflicting blocks are kept verbatim in the consolidated
// output; conflicts are diagnostics only.
type Conflict struct {
	// Name is the normalized package name.
	Name string

	// Pins maps each pinned version to the folders that pin it.
	Pins map[string][]string
}

// FindConflicts scans consolidated blocks for packages pinned (==) to
// more than one distinct version. Results follow first-appearance order.
func FindConflicts(blocks []Block) []Conflict {
	type pinset struct {
		versions map[string][]string
		order    []string
	}

	pins := make(map[string]*pinset)
	var names []string

	for _, b := range blocks {
		for _, e := range ParseLines(b.Content) {
			if !e.Pinned() {
				continue
			}
			ps, ok := pins[e.Name]
			if !ok {
				ps = &pinset{versions: make(map[string][]string)}
				pins[e.Name] = ps
				names = append(names, e.Name)
			}
			if _, ok := ps.versions[e.Version]; !ok {
				ps.order = append(ps.order, e.Version)
			}
			ps.versions[e.Version] = append(ps.versions[e.Version], b.Folder)
		}
	}

	var conflicts []Conflict
	for _, name := range names {
		ps := pins[name]
		if len(ps.versions) < 2 {
			continue
		}
		conflicts = append(conflicts, Conflict{Name: name, Pins: ps.versions})
	}

	return conflicts
}
