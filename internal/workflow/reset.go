package workflow

import (
	"io"

	"github.com/thomasboom/sgit/internal/git"
	"github.com/thomasboom/sgit/internal/prompt"
	"github.com/thomasboom/sgit/internal/ui"
)

// ResetOptions are the reset subcommand's flags. Interactive mode triggers
// only when none are set.
type ResetOptions struct {
	All       bool
	Staged    bool
	Unstaged  bool
	Tracked   bool
	Untracked bool
}

type ResetFlow struct {
	git    GitClient
	prompt prompt.Prompter
	out    io.Writer
}

func NewResetFlow(gitClient GitClient, prompter prompt.Prompter, out io.Writer) *ResetFlow {
	return &ResetFlow{git: gitClient, prompt: prompter, out: out}
}

func (f *ResetFlow) Run(opts ResetOptions) error {
	switch {
	case opts.All:
		return f.resetAll()
	case opts.Staged:
		return f.resetStaged()
	case opts.Unstaged:
		return f.resetUnstaged()
	case opts.Tracked:
		return f.resetTracked()
	case opts.Untracked:
		return f.resetUntracked()
	}
	return f.runInteractive()
}

func (f *ResetFlow) runInteractive() error {
	choice, err := f.prompt.Select("What would you like to reset?", []string{
		"All files",
		"Staged files only",
		"Unstaged changes only",
		"Tracked files only",
		"Untracked files only",
		"Custom files",
	})
	if err != nil {
		return err
	}

	switch choice {
	case 0:
		return f.resetAll()
	case 1:
		return f.resetStaged()
	case 2:
		return f.resetUnstaged()
	case 3:
		return f.resetTracked()
	case 4:
		return f.resetUntracked()
	case 5:
		return f.resetCustom()
	}
	return nil
}

func (f *ResetFlow) resetAll() error {
	if err := f.git.ResetHard(); err != nil {
		return err
	}
	if err := f.git.CleanUntracked(); err != nil {
		return err
	}
	ui.Successf(f.out, "All files reset.")
	return nil
}

func (f *ResetFlow) resetStaged() error {
	entries, err := f.git.StatusEntries()
	if err != nil {
		return err
	}
	if len(git.FilterPaths(entries, git.Staged)) == 0 {
		ui.Plainf(f.out, "No staged files to reset.")
		return nil
	}
	if err := f.git.UnstageAll(); err != nil {
		return err
	}
	ui.Successf(f.out, "Staged files reset.")
	return nil
}

func (f *ResetFlow) resetUnstaged() error {
	entries, err := f.git.StatusEntries()
	if err != nil {
		return err
	}
	if len(git.FilterPaths(entries, git.UnstagedModified)) == 0 {
		ui.Plainf(f.out, "No unstaged changes to reset.")
		return nil
	}
	if err := f.git.DiscardWorktree(); err != nil {
		return err
	}
	ui.Successf(f.out, "Unstaged changes reset.")
	return nil
}

func (f *ResetFlow) resetTracked() error {
	if err := f.git.ResetHard(); err != nil {
		return err
	}
	ui.Successf(f.out, "Tracked files reset.")
	return nil
}

func (f *ResetFlow) resetUntracked() error {
	entries, err := f.git.StatusEntries()
	if err != nil {
		return err
	}
	if len(git.FilterPaths(entries, git.Untracked)) == 0 {
		ui.Plainf(f.out, "No untracked files to reset.")
		return nil
	}
	if err := f.git.CleanUntracked(); err != nil {
		return err
	}
	ui.Successf(f.out, "Untracked files removed.")
	return nil
}

// resetCustom resets a chosen subset, branching per file on its state:
// untracked files are removed, staged changes unstaged, worktree edits
// discarded. The status listing is re-read before each file since earlier
// resets may have changed it.
func (f *ResetFlow) resetCustom() error {
	entries, err := f.git.StatusEntries()
	if err != nil {
		return err
	}

	files := git.AllPaths(entries)
	if len(files) == 0 {
		ui.Plainf(f.out, "No files to reset.")
		return nil
	}

	selected, err := f.prompt.MultiSelect("Select files to reset", files)
	if err != nil {
		return err
	}
	if len(selected) == 0 {
		ui.Plainf(f.out, "No files selected.")
		return nil
	}

	root, err := f.git.RepoRoot()
	if err != nil {
		return err
	}

	for _, idx := range selected {
		path := files[idx]

		current, err := f.git.StatusEntries()
		if err != nil {
			return err
		}
		entry, ok := git.FindEntry(current, path)
		if !ok {
			continue
		}

		if err := f.resetEntry(root, entry); err != nil {
			return err
		}
	}

	ui.Successf(f.out, "Selected files reset.")
	return nil
}

func (f *ResetFlow) resetEntry(root string, entry git.FileEntry) error {
	if git.Classify(entry) == git.Untracked {
		return f.git.CleanPath(root, entry.Path)
	}
	if entry.IndexState != ' ' {
		if err := f.git.UnstagePath(root, entry.Path); err != nil {
			return err
		}
	}
	if entry.WorktreeState != ' ' && entry.WorktreeState != '?' {
		if err := f.git.DiscardWorktreePath(root, entry.Path); err != nil {
			return err
		}
	}
	return nil
}
