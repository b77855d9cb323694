package workflow

import (
	"io"

	"github.com/thomasboom/sgit/internal/git"
	"github.com/thomasboom/sgit/internal/prompt"
	"github.com/thomasboom/sgit/internal/ui"
)

// StageOptions are the stage subcommand's flags and arguments. Interactive
// mode triggers only when all of them are absent.
type StageOptions struct {
	Targets []string
	All     bool
	Tracked bool
}

type StageFlow struct {
	git    GitClient
	prompt prompt.Prompter
	out    io.Writer
}

func NewStageFlow(gitClient GitClient, prompter prompt.Prompter, out io.Writer) *StageFlow {
	return &StageFlow{git: gitClient, prompt: prompter, out: out}
}

func (f *StageFlow) Run(opts StageOptions) error {
	if len(opts.Targets) == 0 && !opts.All && !opts.Tracked {
		return f.runInteractive()
	}

	switch {
	case opts.All:
		return f.stageAll()
	case opts.Tracked:
		return f.stageTracked()
	default:
		targets := opts.Targets
		if len(targets) == 0 {
			targets = []string{"."}
		}
		if err := f.git.StageTargets(targets); err != nil {
			return err
		}
		ui.Successf(f.out, "Staged files")
		return nil
	}
}

func (f *StageFlow) runInteractive() error {
	choice, err := f.prompt.Select("What would you like to stage?",
		[]string{"All files", "Tracked files only", "Specific files"})
	if err != nil {
		return err
	}

	switch choice {
	case 0:
		return f.stageAll()
	case 1:
		return f.stageTracked()
	case 2:
		return f.stageSelected()
	}
	return nil
}

func (f *StageFlow) stageAll() error {
	if err := f.git.StageAll(); err != nil {
		return err
	}
	ui.Successf(f.out, "Staged all files")
	return nil
}

func (f *StageFlow) stageTracked() error {
	if err := f.git.StageTracked(); err != nil {
		return err
	}
	ui.Successf(f.out, "Staged tracked files")
	return nil
}

func (f *StageFlow) stageSelected() error {
	entries, err := f.git.StatusEntries()
	if err != nil {
		return err
	}

	files := git.FilterPaths(entries, git.UnstagedModified)
	if len(files) == 0 {
		ui.Plainf(f.out, "No unstaged files to stage.")
		return nil
	}

	selected, err := f.prompt.MultiSelect("Select files to stage", files)
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
	if err := f.git.StagePaths(paths); err != nil {
		return err
	}
	ui.Successf(f.out, "Staged %d file(s)", len(paths))
	return nil
}
