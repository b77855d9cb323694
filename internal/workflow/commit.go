package workflow

import (
	"errors"
	"io"
	"strings"

	"github.com/thomasboom/sgit/internal/git"
	"github.com/thomasboom/sgit/internal/prompt"
	"github.com/thomasboom/sgit/internal/ui"
)

// CommitOptions are the commit subcommand's flags. Interactive mode triggers
// when neither a message nor a staging scope is supplied.
type CommitOptions struct {
	Message  string
	All      bool
	Staged   bool
	Unstaged bool
	Push     bool
	Amend    bool
	NoVerify bool
}

type CommitFlow struct {
	git    GitClient
	prompt prompt.Prompter
	out    io.Writer
	errOut io.Writer
}

func NewCommitFlow(gitClient GitClient, prompter prompt.Prompter, out, errOut io.Writer) *CommitFlow {
	return &CommitFlow{git: gitClient, prompt: prompter, out: out, errOut: errOut}
}

// commitPlan is the resolved shape of one commit run, after interactive
// resolution or flag validation.
type commitPlan struct {
	message     string
	all         bool
	staged      bool
	unstaged    bool
	push        bool
	customFiles []string
}

func (f *CommitFlow) Run(opts CommitOptions) error {
	plan, done, err := f.resolve(opts)
	if err != nil || done {
		return err
	}

	if strings.TrimSpace(plan.message) == "" {
		return errors.New("commit message cannot be empty")
	}
	if plan.staged && (plan.all || plan.unstaged) {
		return errors.New("cannot combine --staged with --all or --unstaged")
	}

	if opts.Amend && !opts.NoVerify {
		proceed, err := f.confirmAmend()
		if err != nil {
			return err
		}
		if !proceed {
			ui.Plainf(f.out, "Aborted.")
			return nil
		}
	}

	if err := f.stage(plan); err != nil {
		return err
	}

	if opts.Amend {
		ui.Stepf(f.out, "Committing (amend)...")
	} else {
		ui.Stepf(f.out, "Committing...")
	}
	if err := f.git.Commit(plan.message, opts.Amend, opts.NoVerify); err != nil {
		return err
	}
	ui.Successf(f.out, "Commit created")

	if plan.push {
		if err := f.pushAfterCommit(); err != nil {
			return err
		}
	}

	ui.Plainf(f.out, "Done.")
	return nil
}

// resolve turns flags or interactive answers into a commitPlan. The second
// return value reports an informational no-op (nothing to commit, nothing
// selected) where the run should stop without error.
func (f *CommitFlow) resolve(opts CommitOptions) (commitPlan, bool, error) {
	interactive := opts.Message == "" && !opts.All && !opts.Staged && !opts.Unstaged
	if !interactive {
		return commitPlan{
			message:  opts.Message,
			all:      opts.All,
			staged:   opts.Staged,
			unstaged: opts.Unstaged,
			push:     opts.Push,
		}, false, nil
	}

	scope, err := f.prompt.Select("What would you like to commit?",
		[]string{"Staged changes", "Unstaged changes", "All changes", "Custom"})
	if err != nil {
		return commitPlan{}, false, err
	}

	plan := commitPlan{
		staged:   scope == 0,
		unstaged: scope == 1,
		all:      scope == 2,
	}

	if scope == 3 {
		entries, err := f.git.StatusEntries()
		if err != nil {
			return commitPlan{}, false, err
		}
		files := git.AllPaths(entries)
		if len(files) == 0 {
			ui.Plainf(f.out, "No files to commit.")
			return commitPlan{}, true, nil
		}

		selected, err := f.prompt.MultiSelect("Select files to stage", files)
		if err != nil {
			return commitPlan{}, false, err
		}
		if len(selected) == 0 {
			ui.Plainf(f.out, "No files selected.")
			return commitPlan{}, true, nil
		}
		for _, idx := range selected {
			plan.customFiles = append(plan.customFiles, files[idx])
		}
	}

	plan.message, err = f.prompt.Input("Commit message")
	if err != nil {
		return commitPlan{}, false, err
	}

	plan.push, err = f.prompt.Confirm("Push after committing?", false)
	if err != nil {
		return commitPlan{}, false, err
	}

	return plan, false, nil
}

// confirmAmend warns before rewriting history that may already be shared.
// Skipped when the repository has no commit to amend.
func (f *CommitFlow) confirmAmend() (bool, error) {
	if !f.git.HasCommits() {
		return true, nil
	}

	ui.Warnf(f.errOut, "Warning: amending a commit that may have been pushed can cause issues.")
	ui.Plainf(f.errOut, "  Use --no-verify to skip this check if you're sure.")
	return f.prompt.Confirm("Continue with amend?", false)
}

func (f *CommitFlow) stage(plan commitPlan) error {
	switch {
	case plan.all:
		if err := f.git.StageAll(); err != nil {
			return err
		}
		ui.Stepf(f.out, "Staged all files")
	case plan.unstaged:
		if err := f.git.StageTracked(); err != nil {
			return err
		}
		ui.Stepf(f.out, "Staged tracked files")
	case len(plan.customFiles) > 0:
		if err := f.git.StagePaths(plan.customFiles); err != nil {
			return err
		}
		ui.Stepf(f.out, "Staged %d file(s)", len(plan.customFiles))
	}
	return nil
}

// pushAfterCommit runs the optional post-commit push. A failure here does not
// undo the commit; forward progress is preserved.
func (f *CommitFlow) pushAfterCommit() error {
	branch, err := f.git.CurrentBranch()
	if err == nil && branch != "" {
		ui.Stepf(f.out, "Pushing to %s...", branch)
	} else {
		ui.Stepf(f.out, "Pushing...")
	}

	if err := f.git.Push("", ""); err != nil {
		return err
	}
	ui.Successf(f.out, "Pushed successfully")
	return nil
}
