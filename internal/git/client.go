// Package git issues read-only queries and mutating commands against the
// repository through the git executable, and classifies reported file states.
package git

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/thomasboom/sgit/internal/gitcmd"
	"github.com/thomasboom/sgit/internal/gitutil"
)

// ErrNotInRepository means the working directory is not inside a git
// repository. Commands other than init refuse to run in that case.
var ErrNotInRepository = errors.New(gitutil.NotInRepoHint)

// Options configures a Client.
type Options struct {
	Verbose bool
}

// Client wraps a gitcmd.Runner with the queries and actions the workflows
// need. State queries are never cached: the working tree can change between
// steps of a single command, so every call re-reads it.
type Client struct {
	runner gitcmd.Runner
}

func NewClient(opts Options) *Client {
	return &Client{runner: gitcmd.Runner{Verbose: opts.Verbose}}
}

// runQuiet executes a mutating command, discarding stdout and attaching a
// hint to any failure.
func (c *Client) runQuiet(args ...string) error {
	result, err := c.runner.RunQuiet(args...)
	return gitutil.WrapGitError(args, result, err)
}

// runQuietIn is runQuiet with an explicit working directory, used when the
// arguments carry repo-root-relative paths from a porcelain listing.
func (c *Client) runQuietIn(dir string, args ...string) error {
	runner := c.runner
	runner.Dir = dir
	result, err := runner.RunQuiet(args...)
	return gitutil.WrapGitError(args, result, err)
}

// RunStreaming executes a pass-through command whose live output the user
// should see (status, log, diff). Stderr is still captured for hinting.
func (c *Client) RunStreaming(args ...string) error {
	result, err := c.runner.RunStreaming(args...)
	return gitutil.WrapGitError(args, result, err)
}

// CheckRepository is the pre-flight check run before any non-init command.
func (c *Client) CheckRepository() error {
	_, err := c.runner.Run("rev-parse", "--git-dir")
	if err == nil {
		return nil
	}
	if gitcmd.IsSpawnError(err) {
		return err
	}
	return ErrNotInRepository
}

// RepoRoot returns the absolute path of the repository's top-level directory.
func (c *Client) RepoRoot() (string, error) {
	args := []string{"rev-parse", "--show-toplevel"}
	result, err := c.runner.Run(args...)
	if err != nil {
		if gitcmd.IsSpawnError(err) {
			return "", err
		}
		if strings.Contains(result.StderrString(false), "not a git repository") {
			return "", ErrNotInRepository
		}
		return "", fmt.Errorf("failed to get repo root: %s", result.StderrString(true))
	}

	root := result.StdoutString(true)
	if root == "" {
		return "", ErrNotInRepository
	}
	return root, nil
}

// StatusEntries re-reads the porcelain status listing.
func (c *Client) StatusEntries() ([]FileEntry, error) {
	args := []string{"status", "--porcelain"}
	result, err := c.runner.Run(args...)
	if err != nil {
		return nil, gitutil.WrapGitError(args, result, err)
	}
	return ParseStatusEntries(result.StdoutString(false)), nil
}

// Branches lists local branch names.
func (c *Client) Branches() ([]string, error) {
	args := []string{"branch", "--format=%(refname:short)"}
	result, err := c.runner.Run(args...)
	if err != nil {
		return nil, gitutil.WrapGitError(args, result, err)
	}

	var branches []string
	for _, line := range strings.Split(result.StdoutString(false), "\n") {
		if name := strings.TrimSpace(line); name != "" {
			branches = append(branches, name)
		}
	}
	return branches, nil
}

// CurrentBranch returns the checked-out branch name. Detached HEAD yields an
// empty string, not an error.
func (c *Client) CurrentBranch() (string, error) {
	args := []string{"branch", "--show-current"}
	result, err := c.runner.Run(args...)
	if err != nil {
		return "", gitutil.WrapGitError(args, result, err)
	}
	return result.StdoutString(true), nil
}

// HasCommits reports whether the repository has at least one commit.
func (c *Client) HasCommits() bool {
	result, err := c.runner.Run("log", "--oneline", "-n", "1")
	return err == nil && result.StdoutString(true) != ""
}

func (c *Client) Init() error {
	return c.runQuiet("init")
}

func (c *Client) StageAll() error {
	return c.runQuiet("add", "-A")
}

func (c *Client) StageTracked() error {
	return c.runQuiet("add", "-u")
}

// StageTargets stages user-supplied paths relative to the current directory.
func (c *Client) StageTargets(targets []string) error {
	return c.runQuiet(append([]string{"add"}, targets...)...)
}

// StagePaths stages porcelain-reported paths, which are relative to the
// repository root rather than the current directory.
func (c *Client) StagePaths(paths []string) error {
	root, err := c.RepoRoot()
	if err != nil {
		return err
	}
	return c.runQuietIn(root, append([]string{"add"}, paths...)...)
}

func (c *Client) UnstageAll() error {
	return c.runQuiet("restore", "--staged", ".")
}

func (c *Client) UnstageTargets(targets []string) error {
	return c.runQuiet(append([]string{"restore", "--staged"}, targets...)...)
}

func (c *Client) UnstagePaths(paths []string) error {
	root, err := c.RepoRoot()
	if err != nil {
		return err
	}
	return c.runQuietIn(root, append([]string{"restore", "--staged"}, paths...)...)
}

// DiscardWorktree discards unstaged edits to every tracked file.
func (c *Client) DiscardWorktree() error {
	return c.runQuiet("restore", ".")
}

func (c *Client) DiscardWorktreePath(root, path string) error {
	return c.runQuietIn(root, "restore", path)
}

func (c *Client) UnstagePath(root, path string) error {
	return c.runQuietIn(root, "restore", "--staged", path)
}

// ResetHard discards all staged and unstaged changes to tracked files.
func (c *Client) ResetHard() error {
	return c.runQuiet("reset", "--hard")
}

// CleanUntracked removes untracked files and directories.
func (c *Client) CleanUntracked() error {
	return c.runQuiet("clean", "-fd")
}

func (c *Client) CleanPath(root, path string) error {
	return c.runQuietIn(root, "clean", "-f", path)
}

// Commit records the staged changes with the given message.
func (c *Client) Commit(message string, amend, noVerify bool) error {
	args := []string{"commit"}
	if amend {
		args = append(args, "--amend")
	}
	if noVerify {
		args = append(args, "--no-verify")
	}
	args = append(args, "-m", message)
	return c.runQuiet(args...)
}

func (c *Client) CreateBranch(name string) error {
	return c.runQuiet("branch", name)
}

func (c *Client) Checkout(name string) error {
	return c.runQuiet("checkout", name)
}

func (c *Client) Fetch(remote string) error {
	return c.runQuiet("fetch", remote)
}

func (c *Client) Pull(remote, branch string) error {
	return c.runQuiet(remoteArgs("pull", remote, branch)...)
}

func (c *Client) Push(remote, branch string) error {
	return c.runQuiet(remoteArgs("push", remote, branch)...)
}

// Status streams `git status`, or the short branch-aware form.
func (c *Client) Status(short bool) error {
	if short {
		return c.RunStreaming("status", "-sb")
	}
	return c.RunStreaming("status")
}

// Log streams recent history, limited to the given number of entries.
func (c *Client) Log(short bool, limit int) error {
	if short {
		return c.RunStreaming("log", "--oneline", "--decorate", "-n", strconv.Itoa(limit))
	}
	return c.RunStreaming("log", "--decorate", "-n", strconv.Itoa(limit))
}

// Diff streams working-tree changes, optionally the staged set or one path.
func (c *Client) Diff(path string, staged bool) error {
	switch {
	case staged:
		return c.RunStreaming("diff", "--staged")
	case path != "":
		return c.RunStreaming("diff", path)
	default:
		return c.RunStreaming("diff")
	}
}

func remoteArgs(cmd, remote, branch string) []string {
	args := []string{cmd}
	if remote != "" {
		args = append(args, remote)
		if branch != "" {
			args = append(args, branch)
		}
	}
	return args
}
