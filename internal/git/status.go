package git

import "strings"

// FileEntry is one line of `git status --porcelain`: a two-character state
// code and the path it applies to. IndexState is the first character (staging
// area), WorktreeState the second (working tree).
type FileEntry struct {
	Path          string
	IndexState    byte
	WorktreeState byte
}

// Classification buckets a FileEntry for the interactive menus.
type Classification int

const (
	// Unclassified covers state codes the menus do not act on, such as
	// unmerged conflict markers or ignored files.
	Unclassified Classification = iota
	Untracked
	UnstagedModified
	Staged
)

func (c Classification) String() string {
	switch c {
	case Untracked:
		return "untracked"
	case UnstagedModified:
		return "unstaged"
	case Staged:
		return "staged"
	default:
		return "unclassified"
	}
}

// Classify maps an entry onto exactly one bucket.
//
// An entry can be both staged and carry further worktree edits (e.g. "MM");
// the index state wins, matching what unstaging would operate on.
func Classify(entry FileEntry) Classification {
	x, y := entry.IndexState, entry.WorktreeState

	if x == '?' && y == '?' {
		return Untracked
	}
	if isStagedState(x) {
		return Staged
	}
	if x == ' ' && y != ' ' && y != '?' {
		return UnstagedModified
	}
	return Unclassified
}

func isStagedState(x byte) bool {
	switch x {
	case 'M', 'A', 'D', 'R', 'C':
		return true
	}
	return false
}

// ParseStatusEntries parses porcelain status output. Lines too short to hold
// a state code, separator, and path are skipped rather than rejected.
func ParseStatusEntries(output string) []FileEntry {
	var entries []FileEntry
	for _, line := range strings.Split(output, "\n") {
		if len(line) < 4 {
			continue
		}
		entries = append(entries, FileEntry{
			Path:          line[3:],
			IndexState:    line[0],
			WorktreeState: line[1],
		})
	}
	return entries
}

// FilterPaths returns the paths of the entries in the given bucket, in the
// order git reported them.
func FilterPaths(entries []FileEntry, class Classification) []string {
	var paths []string
	for _, entry := range entries {
		if Classify(entry) == class {
			paths = append(paths, entry.Path)
		}
	}
	return paths
}

// AllPaths returns every reported path regardless of classification.
func AllPaths(entries []FileEntry) []string {
	paths := make([]string, 0, len(entries))
	for _, entry := range entries {
		paths = append(paths, entry.Path)
	}
	return paths
}

// FindEntry looks up the entry for a path, if git reported one.
func FindEntry(entries []FileEntry, path string) (FileEntry, bool) {
	for _, entry := range entries {
		if entry.Path == path {
			return entry, true
		}
	}
	return FileEntry{}, false
}
