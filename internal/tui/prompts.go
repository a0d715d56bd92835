// Package tui provides the interactive prompt helpers used by commands.
//
// All prompts go through huh forms so theming and keybindings stay
// consistent. Commands should never call huh directly; they depend on
// these helpers (or on a Prompter interface wrapping them) so tests can
// substitute doubles.
package tui

import (
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/huh/spinner"
)

// Select shows a single-select prompt and returns the chosen value.
func Select(title, description string, options []huh.Option[string]) (string, error) {
	var selected string

	field := huh.NewSelect[string]().
		Title(title).
		Description(description).
		Options(options...).
		Value(&selected)

	form := huh.NewForm(huh.NewGroup(field))
	if err := form.Run(); err != nil {
		return "", err
	}

	return selected, nil
}

// Confirm shows a yes/no confirmation prompt.
func Confirm(title, description string) (bool, error) {
	var confirmed bool

	field := huh.NewConfirm().
		Title(title).
		Description(description).
		Value(&confirmed)

	form := huh.NewForm(huh.NewGroup(field))
	if err := form.Run(); err != nil {
		return false, err
	}

	return confirmed, nil
}

// WithSpinner runs action behind an animated spinner titled title.
// When the environment is non-interactive the action runs directly,
// keeping output clean for logs and CI.
func WithSpinner(title string, action func()) error {
	if !IsInteractive() {
		action()
		return nil
	}
	return spinner.New().Title(title).Action(action).Run()
}
