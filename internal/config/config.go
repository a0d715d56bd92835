package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/indaco/reqwire/internal/core"
)

// ConfigFileName is the well-known configuration file looked up in the
// working directory.
const ConfigFileName = ".reqwire.yaml"

// DefaultOutputFile is the name of the consolidated manifest, and of the
// per-folder manifests the extractor emits.
const DefaultOutputFile = "requirements.txt"

// defaultExcludes are directory names always skipped while scanning.
// Matching is case-sensitive and exact, per segment.
var defaultExcludes = []string{
	"venv", ".venv", "env", "myenv",
	"__pycache__", "site-packages", "Lib", "Scripts",
}

// Config is the main configuration structure for reqwire.
type Config struct {
	// RootDir is the scan base. Empty means the working directory.
	RootDir string `yaml:"root_dir,omitempty"`

	// OutputFile is the consolidated manifest name.
	OutputFile string `yaml:"output_file,omitempty"`

	// ExcludeDirs extends the built-in exclusion set.
	ExcludeDirs []string `yaml:"exclude_dirs,omitempty"`

	// Python is the preferred interpreter executable name.
	Python string `yaml:"python,omitempty"`
}

// DefaultConfig returns a Config with all defaults applied.
func DefaultConfig() *Config {
	return &Config{OutputFile: DefaultOutputFile}
}

// Excludes returns the built-in exclusion set merged with ExcludeDirs.
func (c *Config) Excludes() map[string]bool {
	set := make(map[string]bool, len(defaultExcludes)+len(c.ExcludeDirs))
	for _, d := range defaultExcludes {
		set[d] = true
	}
	for _, d := range c.ExcludeDirs {
		if d != "" {
			set[d] = true
		}
	}
	return set
}

// LoadConfigFn loads configuration; exposed as a variable for testability.
var LoadConfigFn = loadConfig

func loadConfig() (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(ConfigFileName)
	if err != nil {
		if os.IsNotExist(err) {
			applyEnv(cfg)
			return cfg, nil
		}
		return nil, err
	}

	decoder := yaml.NewDecoder(bytes.NewReader(data), yaml.Strict())
	if err := decoder.Decode(cfg); err != nil {
		return nil, fmt.Errorf("invalid %s: %w", ConfigFileName, err)
	}

	if cfg.OutputFile == "" {
		cfg.OutputFile = DefaultOutputFile
	}

	applyEnv(cfg)

	return cfg, cfg.Validate()
}

// applyEnv applies environment overrides. REQWIRE_ROOT takes priority
// over both the config file and the default working directory.
func applyEnv(cfg *Config) {
	if envRoot := os.Getenv("REQWIRE_ROOT"); envRoot != "" {
		cfg.RootDir = filepath.Clean(envRoot)
	}
}

// Validate checks the configuration for values that would corrupt a run.
func (c *Config) Validate() error {
	if strings.ContainsRune(c.OutputFile, os.PathSeparator) {
		return fmt.Errorf("output_file must be a bare file name, got %q", c.OutputFile)
	}
	if strings.Contains(c.RootDir, "..") {
		return fmt.Errorf("root_dir must not contain path traversal, got %q", c.RootDir)
	}
	return nil
}

// SaveTo writes the configuration to the given path with 2-space
// indentation for both maps and sequences.
func (c *Config) SaveTo(path string) error {
	data, err := yaml.MarshalWithOptions(c, yaml.Indent(2), yaml.IndentSequence(true))
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, core.PermOwnerRW); err != nil {
		return fmt.Errorf("failed to write config to %q: %w", path, err)
	}
	return nil
}
