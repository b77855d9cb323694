// Package gitutil interprets git failures and validates user input before it
// reaches git.
package gitutil

import (
	"fmt"
	"strings"

	"github.com/thomasboom/sgit/internal/gitcmd"
)

// User-facing remediation text shared across commands.
const (
	NotInRepoHint = "not in a git repository - run 'sgit init' or cd into a repo first"
	NoStagedHint  = "nothing to commit - use 'sgit stage' to stage changes first"
)

// WrapGitError builds the error for a failed git invocation. The message
// carries the command line, git's trimmed stderr, and a remediation hint when
// the stderr text matches a known failure scenario.
func WrapGitError(args []string, result gitcmd.Result, err error) error {
	if err == nil {
		return nil
	}
	if gitcmd.IsSpawnError(err) {
		return err
	}

	msg := fmt.Sprintf("git %s failed", strings.Join(args, " "))
	if stderr := result.StderrString(true); stderr != "" {
		msg += ":\n  " + stderr
	}
	if hint := Hint(args, result.StderrString(false)); hint != "" {
		msg += "\n  hint: " + hint
	}
	return fmt.Errorf("%s: %w", msg, err)
}

// Hint maps a failed invocation's stderr onto remediation guidance. Matching
// is lowercase-substring against git's English messages; there is no
// structured error channel to do better with. An empty return means no known
// scenario matched.
func Hint(args []string, stderr string) string {
	lower := strings.ToLower(stderr)
	cmd := ""
	if len(args) > 0 {
		cmd = args[0]
	}

	if strings.Contains(lower, "not a git repository") {
		return NotInRepoHint
	}

	switch cmd {
	case "commit":
		if strings.Contains(lower, "nothing to commit") ||
			strings.Contains(lower, "no changes added to commit") ||
			strings.Contains(lower, "nothing added to commit") {
			return NoStagedHint
		}
	case "push":
		switch {
		case strings.Contains(lower, "no upstream branch"):
			return "set upstream with 'git push -u origin <branch>' or use 'sgit push' from a tracked branch"
		case strings.Contains(lower, "rejected"):
			return "remote has new commits - try 'sgit pull' first, then push again"
		case strings.Contains(lower, "could not resolve host"), strings.Contains(lower, "network"):
			return "check your network connection"
		}
	case "pull":
		switch {
		case strings.Contains(lower, "there is no tracking information"):
			return "branch has no upstream - try 'git branch --set-upstream-to=origin/<branch>'"
		case strings.Contains(lower, "conflict"):
			return "resolve merge conflicts, then commit the resolution"
		}
	case "checkout", "switch":
		switch {
		case strings.Contains(lower, "would be overwritten"):
			return "commit or stash your changes before switching branches"
		case strings.Contains(lower, "did not match"):
			return "branch name may be misspelled - check 'sgit branch' for available branches"
		}
	case "branch":
		if strings.Contains(lower, "already exists") {
			return "branch name already in use, choose a different name"
		}
	}

	if strings.Contains(lower, "permission denied") {
		return "check file permissions or run with appropriate privileges"
	}

	return ""
}

// Failure classifiers used by the sync state machine. They inspect the full
// error text, which includes git's stderr after WrapGitError.

func IsNetworkError(err error) bool {
	return containsAny(err, "could not resolve host", "network")
}

func IsConflictError(err error) bool {
	return containsAny(err, "conflict", "merge conflict")
}

func IsNoTrackingError(err error) bool {
	return containsAny(err, "no tracking information")
}

func IsNoUpstreamError(err error) bool {
	return containsAny(err, "no upstream branch")
}

func IsRejectedError(err error) bool {
	return containsAny(err, "rejected")
}

func containsAny(err error, markers ...string) bool {
	if err == nil {
		return false
	}
	lower := strings.ToLower(err.Error())
	for _, marker := range markers {
		if strings.Contains(lower, marker) {
			return true
		}
	}
	return false
}
