// Package workflow contains the per-subcommand orchestration logic: deciding
// between interactive and direct mode, building the git invocation sequence,
// and mapping step failures onto remediation output.
package workflow

import (
	"github.com/thomasboom/sgit/internal/git"
)

// GitClient abstracts git operations for testability.
type GitClient interface {
	RepoRoot() (string, error)
	StatusEntries() ([]git.FileEntry, error)
	Branches() ([]string, error)
	CurrentBranch() (string, error)
	HasCommits() bool

	StageAll() error
	StageTracked() error
	StageTargets(targets []string) error
	StagePaths(paths []string) error

	UnstageAll() error
	UnstageTargets(targets []string) error
	UnstagePaths(paths []string) error
	UnstagePath(root, path string) error

	DiscardWorktree() error
	DiscardWorktreePath(root, path string) error
	ResetHard() error
	CleanUntracked() error
	CleanPath(root, path string) error

	Commit(message string, amend, noVerify bool) error
	CreateBranch(name string) error
	Checkout(name string) error

	Fetch(remote string) error
	Pull(remote, branch string) error
	Push(remote, branch string) error
}

var _ GitClient = (*git.Client)(nil)
