package workflow

import (
	"io"

	"github.com/thomasboom/sgit/internal/git"
	"github.com/thomasboom/sgit/internal/prompt"
	"github.com/thomasboom/sgit/internal/ui"
)

// UnstageOptions are the unstage subcommand's flags and arguments.
type UnstageOptions struct {
	Targets []string
	All     bool
}

type UnstageFlow struct {
	git    GitClient
	prompt prompt.Prompter
	out    io.Writer
}

func NewUnstageFlow(gitClient GitClient, prompter prompt.Prompter, out io.Writer) *UnstageFlow {
	return &UnstageFlow{git: gitClient, prompt: prompter, out: out}
}

func (f *UnstageFlow) Run(opts UnstageOptions) error {
	if len(opts.Targets) == 0 && !opts.All {
		return f.runInteractive()
	}

	if opts.All {
		return f.unstageAll()
	}

	targets := opts.Targets
	if len(targets) == 0 {
		targets = []string{"."}
	}
	if err := f.git.UnstageTargets(targets); err != nil {
		return err
	}
	ui.Successf(f.out, "Files unstaged")
	return nil
}

func (f *UnstageFlow) runInteractive() error {
	choice, err := f.prompt.Select("What would you like to unstage?",
		[]string{"All staged files", "Specific files"})
	if err != nil {
		return err
	}

	switch choice {
	case 0:
		return f.unstageAll()
	case 1:
		return f.unstageSelected()
	}
	return nil
}

func (f *UnstageFlow) unstageAll() error {
	if err := f.git.UnstageAll(); err != nil {
		return err
	}
	ui.Successf(f.out, "All files unstaged")
	return nil
}

func (f *UnstageFlow) unstageSelected() error {
	entries, err := f.git.StatusEntries()
	if err != nil {
		return err
	}

	files := git.FilterPaths(entries, git.Staged)
	if len(files) == 0 {
		ui.Plainf(f.out, "No staged files to unstage.")
		return nil
	}

	selected, err := f.prompt.MultiSelect("Select files to unstage", files)
	if err != nil {
		return err
	}
	if len(selected) == 0 {
		ui.Plainf(f.out, "No files selected.")
		return nil
	}

	paths := make([]string, 0, len(selected))
	for _, idx := range selected {
		paths = append(paths, files[idx])
	}
	if err := f.git.UnstagePaths(paths); err != nil {
		return err
	}
	ui.Successf(f.out, "Unstaged %d file(s)", len(paths))
	return nil
}
