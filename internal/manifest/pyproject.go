package manifest

import (
	"fmt"

	"github.com/pelletier/go-toml/v2"
)

// PyProject holds the subset of pyproject.toml relevant to dependency
// reporting.
type PyProject struct {
	Project struct {
		Name         string   `toml:"name"`
		Dependencies []string `toml:"dependencies"`
	} `toml:"project"`
}

// ParsePyProject decodes pyproject.toml data and returns the declared
// [project] dependencies as entries.
func ParsePyProject(data []byte) (*PyProject, error) {
	var pp PyProject
	if err := toml.Unmarshal(data, &pp); err != nil {
		return nil, fmt.Errorf("failed to parse pyproject.toml: %w", err)
	}
	return &pp, nil
}

// DeclaredEntries parses the declared dependency strings into entries.
// Malformed declarations are skipped.
func (p *PyProject) DeclaredEntries() []Entry {
	var entries []Entry
	for _, dep := range p.Project.Dependencies {
		parsed := ParseLines(dep)
		entries = append(entries, parsed...)
	}
	return entries
}
