package workflow

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/thomasboom/sgit/internal/git"
)

func TestResetDirectModes(t *testing.T) {
	tests := []struct {
		name    string
		opts    ResetOptions
		entries string
		want    []string
	}{
		{
			name: "all",
			opts: ResetOptions{All: true},
			want: []string{"ResetHard", "CleanUntracked"},
		},
		{
			name:    "staged with staged files",
			opts:    ResetOptions{Staged: true},
			entries: "M  a.go\n",
			want:    []string{"UnstageAll"},
		},
		{
			name:    "unstaged with worktree edits",
			opts:    ResetOptions{Unstaged: true},
			entries: " M a.go\n",
			want:    []string{"DiscardWorktree"},
		},
		{
			name: "tracked",
			opts: ResetOptions{Tracked: true},
			want: []string{"ResetHard"},
		},
		{
			name:    "untracked with untracked files",
			opts:    ResetOptions{Untracked: true},
			entries: "?? a.txt\n",
			want:    []string{"CleanUntracked"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spy := newSpyClient()
			spy.entries = git.ParseStatusEntries(tt.entries)
			var out bytes.Buffer
			flow := NewResetFlow(spy, &scriptPrompter{}, &out)

			assert.NoError(t, flow.Run(tt.opts))
			assert.Equal(t, tt.want, spy.mutatingCalls())
		})
	}
}

func TestResetNoOpReports(t *testing.T) {
	tests := []struct {
		name string
		opts ResetOptions
		want string
	}{
		{name: "staged", opts: ResetOptions{Staged: true}, want: "No staged files to reset."},
		{name: "unstaged", opts: ResetOptions{Unstaged: true}, want: "No unstaged changes to reset."},
		{name: "untracked", opts: ResetOptions{Untracked: true}, want: "No untracked files to reset."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spy := newSpyClient()
			var out bytes.Buffer
			flow := NewResetFlow(spy, &scriptPrompter{}, &out)

			assert.NoError(t, flow.Run(tt.opts))
			assert.Empty(t, spy.mutatingCalls())
			assert.Contains(t, out.String(), tt.want)
		})
	}
}

func TestResetInteractiveCustomBranchesPerFile(t *testing.T) {
	spy := newSpyClient()
	spy.entries = git.ParseStatusEntries("?? new.txt\nM  staged.go\n M edited.go\nMM both.go\n")
	var out bytes.Buffer
	flow := NewResetFlow(spy, &scriptPrompter{
		selects: []int{5},
		multis:  [][]int{{0, 1, 2, 3}},
	}, &out)

	assert.NoError(t, flow.Run(ResetOptions{}))

	assert.Equal(t, []string{
		"CleanPath(new.txt)",
		"UnstagePath(staged.go)",
		"DiscardWorktreePath(edited.go)",
		"UnstagePath(both.go)",
		"DiscardWorktreePath(both.go)",
	}, spy.mutatingCalls())
	assert.Contains(t, out.String(), "Selected files reset.")
}

func TestResetInteractiveCustomEmptySelection(t *testing.T) {
	spy := newSpyClient()
	spy.entries = git.ParseStatusEntries(" M a.go\n")
	var out bytes.Buffer
	flow := NewResetFlow(spy, &scriptPrompter{selects: []int{5}, multis: [][]int{{}}}, &out)

	assert.NoError(t, flow.Run(ResetOptions{}))
	assert.Empty(t, spy.mutatingCalls())
	assert.Contains(t, out.String(), "No files selected.")
}

func TestResetInteractiveCustomNoFiles(t *testing.T) {
	spy := newSpyClient()
	var out bytes.Buffer
	flow := NewResetFlow(spy, &scriptPrompter{selects: []int{5}}, &out)

	assert.NoError(t, flow.Run(ResetOptions{}))
	assert.Empty(t, spy.mutatingCalls())
	assert.Contains(t, out.String(), "No files to reset.")
}
