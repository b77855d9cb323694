// Package prompt abstracts terminal prompting so workflows can be tested
// with scripted answers instead of a real terminal.
package prompt

import (
	"github.com/charmbracelet/huh"
)

// Prompter is the capability a workflow needs from the terminal. Every call
// blocks until the user answers; an interrupted prompt returns an error and
// the workflow performs no mutation.
type Prompter interface {
	Select(title string, options []string) (int, error)
	MultiSelect(title string, options []string) ([]int, error)
	Input(title string) (string, error)
	Confirm(title string, defaultYes bool) (bool, error)
}

// Terminal prompts through huh forms.
type Terminal struct{}

var _ Prompter = Terminal{}

func (Terminal) Select(title string, options []string) (int, error) {
	opts := make([]huh.Option[int], 0, len(options))
	for i, label := range options {
		opts = append(opts, huh.NewOption(label, i))
	}

	var selected int
	err := huh.NewSelect[int]().Title(title).Options(opts...).Value(&selected).Run()
	if err != nil {
		return 0, err
	}
	return selected, nil
}

func (Terminal) MultiSelect(title string, options []string) ([]int, error) {
	opts := make([]huh.Option[int], 0, len(options))
	for i, label := range options {
		opts = append(opts, huh.NewOption(label, i))
	}

	var selected []int
	err := huh.NewMultiSelect[int]().Title(title).Options(opts...).Value(&selected).Run()
	if err != nil {
		return nil, err
	}
	return selected, nil
}

func (Terminal) Input(title string) (string, error) {
	var value string
	err := huh.NewInput().Title(title).Value(&value).Run()
	if err != nil {
		return "", err
	}
	return value, nil
}

func (Terminal) Confirm(title string, defaultYes bool) (bool, error) {
	confirmed := defaultYes
	err := huh.NewConfirm().Title(title).Value(&confirmed).Run()
	if err != nil {
		return false, err
	}
	return confirmed, nil
}
