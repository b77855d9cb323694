package workflow

import (
	"io"
	"strings"

	"github.com/thomasboom/sgit/internal/gitutil"
	"github.com/thomasboom/sgit/internal/prompt"
	"github.com/thomasboom/sgit/internal/ui"
)

type BranchFlow struct {
	git    GitClient
	prompt prompt.Prompter
	out    io.Writer
}

func NewBranchFlow(gitClient GitClient, prompter prompt.Prompter, out io.Writer) *BranchFlow {
	return &BranchFlow{git: gitClient, prompt: prompter, out: out}
}

// Create makes a new branch and switches to it. The name is validated before
// git is invoked at all.
func (f *BranchFlow) Create(name string) error {
	name = strings.TrimSpace(name)
	if err := gitutil.ValidateBranchName(name); err != nil {
		return err
	}
	return f.createAndSwitch(name)
}

// RunInteractive lists branches for checkout, with the current one marked and
// a synthetic entry for creating a new branch.
func (f *BranchFlow) RunInteractive() error {
	branches, err := f.git.Branches()
	if err != nil {
		return err
	}
	current, err := f.git.CurrentBranch()
	if err != nil {
		current = ""
	}

	items := make([]string, 0, len(branches)+1)
	for _, branch := range branches {
		if branch == current {
			items = append(items, branch+" (current)")
		} else {
			items = append(items, branch)
		}
	}
	items = append(items, "Create new branch...")

	choice, err := f.prompt.Select("Select a branch to checkout", items)
	if err != nil {
		return err
	}

	if choice == len(branches) {
		return f.createFromPrompt()
	}

	selected := branches[choice]
	if selected == current {
		ui.Plainf(f.out, "Already on branch '%s'.", selected)
		return nil
	}

	if err := f.git.Checkout(selected); err != nil {
		return err
	}
	ui.Successf(f.out, "Switched to branch '%s'", selected)
	return nil
}

// createFromPrompt accepts free-form input; inner spaces are normalized to
// dashes before validation.
func (f *BranchFlow) createFromPrompt() error {
	input, err := f.prompt.Input("New branch name")
	if err != nil {
		return err
	}

	name := gitutil.NormalizeBranchName(input)
	if err := gitutil.ValidateBranchName(name); err != nil {
		return err
	}
	return f.createAndSwitch(name)
}

func (f *BranchFlow) createAndSwitch(name string) error {
	if err := f.git.CreateBranch(name); err != nil {
		return err
	}
	if err := f.git.Checkout(name); err != nil {
		return err
	}
	ui.Successf(f.out, "Created and switched to branch '%s'", name)
	return nil
}
