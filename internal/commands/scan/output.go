package scan

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/indaco/reqwire/internal/manifest"
	"github.com/indaco/reqwire/internal/printer"
	"github.com/indaco/reqwire/internal/scanner"
)

// Formatter handles display of scan results.
type Formatter struct {
	format OutputFormat
}

// NewFormatter creates a new Formatter with the specified output format.
func NewFormatter(format OutputFormat) *Formatter {
	return &Formatter{format: format}
}

// FormatResult formats the scan result for display.
func (f *Formatter) FormatResult(result *scanner.Result, declared []manifest.Entry) string {
	switch f.format {
	case FormatJSON:
		return f.formatJSON(result, declared)
	case FormatTable:
		return f.formatTable(result)
	default:
		return f.formatText(result, declared)
	}
}

func (f *Formatter) formatText(result *scanner.Result, declared []manifest.Entry) string {
	var sb strings.Builder

	sb.WriteString("\n")
	sb.WriteString(printer.Info("Scan Results"))
	sb.WriteString("\n")
	sb.WriteString(printer.Faint(strings.Repeat("-", 70)))
	sb.WriteString("\n")

	if result.IsEmpty() {
		sb.WriteString(printer.Warning("No Python scripts found."))
		sb.WriteString("\n")
		return sb.String()
	}

	sb.WriteString(printer.Info("Folders with Python scripts:"))
	sb.WriteString("\n")
	for _, g := range result.Groups {
		fmt.Fprintf(&sb, "  %s %s %s\n",
			printer.Success("✓"), g.Folder, printer.Faint(fmt.Sprintf("(%d script(s))", len(g.Files))))
	}
	sb.WriteString("\n")

	if len(declared) > 0 {
		sb.WriteString(printer.Info("Declared dependencies (pyproject.toml):"))
		sb.WriteString("\n")
		for _, e := range declared {
			fmt.Fprintf(&sb, "  - %s\n", e.Raw)
		}
		sb.WriteString("\n")
	}

	sb.WriteString(printer.Faint(strings.Repeat("-", 70)))
	sb.WriteString("\n")
	fmt.Fprintf(&sb, "Folders: %d | Scripts: %d\n", len(result.Groups), result.FileCount())

	return sb.String()
}

func (f *Formatter) formatTable(result *scanner.Result) string {
	var sb strings.Builder

	sb.WriteString("\n")
	fmt.Fprintf(&sb, "%-40s %-10s\n", "FOLDER", "SCRIPTS")
	sb.WriteString(strings.Repeat("-", 50) + "\n")
	for _, g := range result.Groups {
		fmt.Fprintf(&sb, "%-40s %-10d\n", g.Folder, len(g.Files))
	}

	return sb.String()
}

// jsonResult is the machine-readable scan representation.
type jsonResult struct {
	Root     string       `json:"root"`
	Folders  []jsonFolder `json:"folders"`
	Declared []string     `json:"declared,omitempty"`
}

type jsonFolder struct {
	Folder string   `json:"folder"`
	Files  []string `json:"files"`
}

func (f *Formatter) formatJSON(result *scanner.Result, declared []manifest.Entry) string {
	out := jsonResult{Root: result.Root}
	for _, g := range result.Groups {
		out.Folders = append(out.Folders, jsonFolder{Folder: g.Folder, Files: g.Files})
	}
	for _, e := range declared {
		out.Declared = append(out.Declared, e.Raw)
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Sprintf("{\"error\": %q}", err.Error())
	}
	return string(data)
}
