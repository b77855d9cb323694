package workflow

import (
	"errors"
	"fmt"
	"strings"

	"github.com/thomasboom/sgit/internal/git"
)

// spyClient records every git invocation the flows issue. Failures are
// injected per method name; queries serve canned data.
type spyClient struct {
	calls []string
	errs  map[string]error

	entries    []git.FileEntry
	branches   []string
	current    string
	root       string
	hasCommits bool
}

func newSpyClient() *spyClient {
	return &spyClient{root: "/repo", errs: map[string]error{}}
}

func (c *spyClient) record(method string, details ...string) error {
	call := method
	if len(details) > 0 {
		call = fmt.Sprintf("%s(%s)", method, strings.Join(details, " "))
	}
	c.calls = append(c.calls, call)
	return c.errs[method]
}

// mutatingCalls filters out read-only queries, leaving the invocations that
// touch repository state.
func (c *spyClient) mutatingCalls() []string {
	var out []string
	for _, call := range c.calls {
		method, _, _ := strings.Cut(call, "(")
		switch method {
		case "StatusEntries", "Branches", "CurrentBranch", "RepoRoot", "HasCommits":
			continue
		}
		out = append(out, call)
	}
	return out
}

func (c *spyClient) RepoRoot() (string, error) {
	if err := c.record("RepoRoot"); err != nil {
		return "", err
	}
	return c.root, nil
}

func (c *spyClient) StatusEntries() ([]git.FileEntry, error) {
	if err := c.record("StatusEntries"); err != nil {
		return nil, err
	}
	return c.entries, nil
}

func (c *spyClient) Branches() ([]string, error) {
	if err := c.record("Branches"); err != nil {
		return nil, err
	}
	return c.branches, nil
}

func (c *spyClient) CurrentBranch() (string, error) {
	if err := c.record("CurrentBranch"); err != nil {
		return "", err
	}
	return c.current, nil
}

func (c *spyClient) HasCommits() bool {
	_ = c.record("HasCommits")
	return c.hasCommits
}

func (c *spyClient) StageAll() error     { return c.record("StageAll") }
func (c *spyClient) StageTracked() error { return c.record("StageTracked") }

func (c *spyClient) StageTargets(targets []string) error {
	return c.record("StageTargets", targets...)
}

func (c *spyClient) StagePaths(paths []string) error {
	return c.record("StagePaths", paths...)
}

func (c *spyClient) UnstageAll() error { return c.record("UnstageAll") }

func (c *spyClient) UnstageTargets(targets []string) error {
	return c.record("UnstageTargets", targets...)
}

func (c *spyClient) UnstagePaths(paths []string) error {
	return c.record("UnstagePaths", paths...)
}

func (c *spyClient) UnstagePath(root, path string) error {
	return c.record("UnstagePath", path)
}

func (c *spyClient) DiscardWorktree() error { return c.record("DiscardWorktree") }

func (c *spyClient) DiscardWorktreePath(root, path string) error {
	return c.record("DiscardWorktreePath", path)
}

func (c *spyClient) ResetHard() error      { return c.record("ResetHard") }
func (c *spyClient) CleanUntracked() error { return c.record("CleanUntracked") }

func (c *spyClient) CleanPath(root, path string) error {
	return c.record("CleanPath", path)
}

func (c *spyClient) Commit(message string, amend, noVerify bool) error {
	details := []string{message}
	if amend {
		details = append(details, "--amend")
	}
	if noVerify {
		details = append(details, "--no-verify")
	}
	return c.record("Commit", details...)
}

func (c *spyClient) CreateBranch(name string) error { return c.record("CreateBranch", name) }
func (c *spyClient) Checkout(name string) error     { return c.record("Checkout", name) }

func (c *spyClient) Fetch(remote string) error { return c.record("Fetch", remote) }

func (c *spyClient) Pull(remote, branch string) error {
	return c.record("Pull", strings.TrimSpace(remote+" "+branch))
}

func (c *spyClient) Push(remote, branch string) error {
	return c.record("Push", strings.TrimSpace(remote+" "+branch))
}

var _ GitClient = (*spyClient)(nil)

// scriptPrompter answers prompts from prepared scripts, failing loudly when a
// flow asks for more than the test scripted.
type scriptPrompter struct {
	selects  []int
	multis   [][]int
	inputs   []string
	confirms []bool
}

func (p *scriptPrompter) Select(title string, options []string) (int, error) {
	if len(p.selects) == 0 {
		return 0, errors.New("unscripted select: " + title)
	}
	choice := p.selects[0]
	p.selects = p.selects[1:]
	return choice, nil
}

func (p *scriptPrompter) MultiSelect(title string, options []string) ([]int, error) {
	if len(p.multis) == 0 {
		return nil, errors.New("unscripted multi-select: " + title)
	}
	choice := p.multis[0]
	p.multis = p.multis[1:]
	return choice, nil
}

func (p *scriptPrompter) Input(title string) (string, error) {
	if len(p.inputs) == 0 {
		return "", errors.New("unscripted input: " + title)
	}
	value := p.inputs[0]
	p.inputs = p.inputs[1:]
	return value, nil
}

func (p *scriptPrompter) Confirm(title string, defaultYes bool) (bool, error) {
	if len(p.confirms) == 0 {
		return false, errors.New("unscripted confirm: " + title)
	}
	value := p.confirms[0]
	p.confirms = p.confirms[1:]
	return value, nil
}
