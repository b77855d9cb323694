package workflow

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/thomasboom/sgit/internal/git"
)

func TestStageDirectModes(t *testing.T) {
	tests := []struct {
		name string
		opts StageOptions
		want []string
	}{
		{name: "all flag", opts: StageOptions{All: true}, want: []string{"StageAll"}},
		{name: "tracked flag", opts: StageOptions{Tracked: true}, want: []string{"StageTracked"}},
		{name: "explicit targets", opts: StageOptions{Targets: []string{"a.go", "b.go"}},
			want: []string{"StageTargets(a.go b.go)"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spy := newSpyClient()
			var out bytes.Buffer
			flow := NewStageFlow(spy, &scriptPrompter{}, &out)

			assert.NoError(t, flow.Run(tt.opts))
			assert.Equal(t, tt.want, spy.calls)
		})
	}
}

func TestStageAllIssuesSingleInvocation(t *testing.T) {
	spy := newSpyClient()
	spy.entries = git.ParseStatusEntries(" M a.go\n M b.go\n?? c.txt\n")
	var out bytes.Buffer
	flow := NewStageFlow(spy, &scriptPrompter{}, &out)

	assert.NoError(t, flow.Run(StageOptions{All: true}))

	assert.Equal(t, []string{"StageAll"}, spy.calls)
	assert.Contains(t, out.String(), "Staged all files")
}

func TestStageInteractiveAllChoice(t *testing.T) {
	spy := newSpyClient()
	var out bytes.Buffer
	flow := NewStageFlow(spy, &scriptPrompter{selects: []int{0}}, &out)

	assert.NoError(t, flow.Run(StageOptions{}))
	assert.Equal(t, []string{"StageAll"}, spy.calls)
}

func TestStageInteractiveSpecificFiles(t *testing.T) {
	spy := newSpyClient()
	spy.entries = git.ParseStatusEntries(" M a.go\n M b.go\n?? c.txt\n")
	var out bytes.Buffer
	flow := NewStageFlow(spy, &scriptPrompter{selects: []int{2}, multis: [][]int{{0, 1}}}, &out)

	assert.NoError(t, flow.Run(StageOptions{}))

	assert.Equal(t, []string{"StagePaths(a.go b.go)"}, spy.mutatingCalls())
	assert.Contains(t, out.String(), "Staged 2 file(s)")
}

func TestStageInteractiveNoCandidates(t *testing.T) {
	spy := newSpyClient()
	spy.entries = git.ParseStatusEntries("?? only-untracked.txt\n")
	var out bytes.Buffer
	flow := NewStageFlow(spy, &scriptPrompter{selects: []int{2}}, &out)

	assert.NoError(t, flow.Run(StageOptions{}))

	assert.Empty(t, spy.mutatingCalls())
	assert.Contains(t, out.String(), "No unstaged files to stage.")
}

func TestStageInteractiveEmptySelection(t *testing.T) {
	spy := newSpyClient()
	spy.entries = git.ParseStatusEntries(" M a.go\n")
	var out bytes.Buffer
	flow := NewStageFlow(spy, &scriptPrompter{selects: []int{2}, multis: [][]int{{}}}, &out)

	assert.NoError(t, flow.Run(StageOptions{}))

	assert.Empty(t, spy.mutatingCalls())
	assert.Contains(t, out.String(), "No files selected.")
}

func TestStageInteractiveTrackedChoice(t *testing.T) {
	spy := newSpyClient()
	var out bytes.Buffer
	flow := NewStageFlow(spy, &scriptPrompter{selects: []int{1}}, &out)

	assert.NoError(t, flow.Run(StageOptions{}))
	assert.Equal(t, []string{"StageTracked"}, spy.calls)
}

// Staging a set of modified tracked paths and immediately unstaging the same
// set restores the classification picture that existed before.
func TestStageThenUnstageRoundTrip(t *testing.T) {
	before := git.ParseStatusEntries(" M a.go\n M b.go\n?? c.txt\nM  d.go\n")
	targets := git.FilterPaths(before, git.UnstagedModified)

	staged := applyIndexState(before, targets, 'M', ' ')
	after := applyIndexState(staged, targets, ' ', 'M')

	assert.Equal(t, classificationSets(before), classificationSets(after))
}

func applyIndexState(entries []git.FileEntry, paths []string, index, worktree byte) []git.FileEntry {
	out := make([]git.FileEntry, len(entries))
	copy(out, entries)
	for i := range out {
		for _, path := range paths {
			if out[i].Path == path {
				out[i].IndexState = index
				out[i].WorktreeState = worktree
			}
		}
	}
	return out
}

func classificationSets(entries []git.FileEntry) map[git.Classification][]string {
	sets := map[git.Classification][]string{}
	for _, entry := range entries {
		class := git.Classify(entry)
		sets[class] = append(sets[class], entry.Path)
	}
	return sets
}
