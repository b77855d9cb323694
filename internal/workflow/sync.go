package workflow

import (
	"errors"
	"fmt"
	"io"

	"github.com/thomasboom/sgit/internal/gitutil"
	"github.com/thomasboom/sgit/internal/ui"
)

// SyncFlow runs push, pull, and the compound fetch → pull → push sequence.
// Sync is a small state machine: a non-network fetch failure and a pull
// failure that is neither a conflict nor a missing upstream only warn and
// continue; everything else aborts. Completed steps are never rolled back.
type SyncFlow struct {
	git           GitClient
	out           io.Writer
	errOut        io.Writer
	defaultRemote string
}

func NewSyncFlow(gitClient GitClient, out, errOut io.Writer, defaultRemote string) *SyncFlow {
	if defaultRemote == "" {
		defaultRemote = "origin"
	}
	return &SyncFlow{git: gitClient, out: out, errOut: errOut, defaultRemote: defaultRemote}
}

// Push sends local commits to the remote. A branch qualifier is only
// meaningful together with a remote.
func (f *SyncFlow) Push(remote, branch string) error {
	if remote == "" && branch != "" {
		return errors.New("cannot specify a branch without a remote")
	}

	ui.Stepf(f.out, "Pushing%s...", remoteSuffix(" to", remote, branch))
	if err := f.git.Push(remote, branch); err != nil {
		return err
	}
	ui.Successf(f.out, "Pushed successfully")
	return nil
}

// Pull fetches and merges from the remote.
func (f *SyncFlow) Pull(remote, branch string) error {
	ui.Stepf(f.out, "Pulling%s...", remoteSuffix(" from", remote, branch))
	if err := f.git.Pull(remote, branch); err != nil {
		return err
	}
	ui.Successf(f.out, "Pulled successfully")
	return nil
}

// Sync runs fetch, pull, and push in order.
func (f *SyncFlow) Sync(remote, branch string) error {
	remoteName := remote
	if remoteName == "" {
		remoteName = f.defaultRemote
	}

	if err := f.fetchStep(remoteName); err != nil {
		return err
	}
	if err := f.pullStep(remote, branch, remoteName); err != nil {
		return err
	}
	if err := f.pushStep(remote, branch, remoteName); err != nil {
		return err
	}

	ui.Successf(f.out, "Sync complete: fetched, pulled, and pushed successfully.")
	return nil
}

func (f *SyncFlow) fetchStep(remoteName string) error {
	ui.Stepf(f.out, "Fetching from %s...", remoteName)
	sp := ui.NewSpinner(fmt.Sprintf("Fetching from %s...", remoteName))
	sp.Start()
	err := f.git.Fetch(remoteName)
	sp.Stop()

	if err != nil {
		if gitutil.IsNetworkError(err) {
			ui.Failf(f.errOut, "Network error: cannot reach '%s'", remoteName)
			return err
		}
		ui.Warnf(f.errOut, "Fetch failed: %v", err)
		ui.Plainf(f.errOut, "  Continuing with local state...")
		return nil
	}

	ui.Successf(f.out, "Fetch complete")
	return nil
}

func (f *SyncFlow) pullStep(remote, branch, remoteName string) error {
	ui.Stepf(f.out, "Pulling changes...")
	sp := ui.NewSpinner("Pulling changes...")
	sp.Start()
	err := f.git.Pull(remote, branch)
	sp.Stop()

	if err != nil {
		switch {
		case gitutil.IsConflictError(err):
			ui.Failf(f.errOut, "Pull failed due to merge conflicts")
			ui.Plainf(f.errOut, "  Resolve conflicts manually:")
			ui.Plainf(f.errOut, "    1. Edit conflicting files (marked with <<<<<<<)")
			ui.Plainf(f.errOut, "    2. Run 'sgit stage .' to stage resolved files")
			ui.Plainf(f.errOut, "    3. Run 'sgit commit' to complete the merge")
			return err
		case gitutil.IsNoTrackingError(err):
			ui.Failf(f.errOut, "Branch has no upstream configured")
			ui.Plainf(f.errOut, "  Try: git branch --set-upstream-to=%s/%s",
				remoteName, f.currentBranchBestEffort())
			return err
		default:
			ui.Warnf(f.errOut, "Pull failed: %v", err)
			ui.Plainf(f.errOut, "  Attempting to push local changes anyway...")
			return nil
		}
	}

	ui.Successf(f.out, "Pull complete")
	return nil
}

func (f *SyncFlow) pushStep(remote, branch, remoteName string) error {
	ui.Stepf(f.out, "Pushing changes...")
	sp := ui.NewSpinner("Pushing changes...")
	sp.Start()
	err := f.git.Push(remote, branch)
	sp.Stop()

	if err != nil {
		switch {
		case gitutil.IsRejectedError(err):
			ui.Failf(f.errOut, "Push rejected: remote has new commits")
			ui.Plainf(f.errOut, "  Run 'sgit pull' first to integrate remote changes.")
		case gitutil.IsNoUpstreamError(err):
			ui.Failf(f.errOut, "No upstream branch configured")
			ui.Plainf(f.errOut, "  Try: git push -u %s %s", remoteName, f.currentBranchBestEffort())
		default:
			ui.Failf(f.errOut, "Push failed: %v", err)
		}
		return err
	}

	return nil
}

func (f *SyncFlow) currentBranchBestEffort() string {
	branch, err := f.git.CurrentBranch()
	if err != nil {
		return ""
	}
	return branch
}

func remoteSuffix(preposition, remote, branch string) string {
	if remote == "" {
		return ""
	}
	suffix := preposition + " " + remote
	if branch != "" {
		suffix += "/" + branch
	}
	return suffix
}
