package gitcmd

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResultStrings(t *testing.T) {
	result := Result{
		Stdout: []byte("  /path/to/repo\n"),
		Stderr: []byte("warning: something\n"),
	}

	assert.Equal(t, "/path/to/repo", result.StdoutString(true))
	assert.Equal(t, "  /path/to/repo\n", result.StdoutString(false))
	assert.Equal(t, "warning: something", result.StderrString(true))
	assert.Equal(t, "warning: something\n", result.StderrString(false))
}

func TestIsSpawnError(t *testing.T) {
	assert.False(t, IsSpawnError(nil))
	assert.True(t, IsSpawnError(errors.New("executable file not found in $PATH")))
}

func TestWrapSpawnNil(t *testing.T) {
	assert.NoError(t, wrapSpawn(nil, []string{"status"}))
}

func TestWrapSpawnMentionsInstallation(t *testing.T) {
	err := wrapSpawn(errors.New("exec: \"git\": executable file not found in $PATH"),
		[]string{"status", "--porcelain"})

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "git status --porcelain")
	assert.Contains(t, err.Error(), "is git installed?")
}
