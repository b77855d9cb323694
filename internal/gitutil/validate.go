package gitutil

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

// ValidateBranchName checks a branch name before it is handed to git. The
// name is expected to be trimmed already.
func ValidateBranchName(name string) error {
	if name == "" {
		return errors.New("branch name cannot be empty")
	}
	if strings.ContainsFunc(name, unicode.IsSpace) {
		return errors.New("branch name cannot contain whitespace")
	}
	if strings.HasPrefix(name, "-") {
		return fmt.Errorf("branch name cannot start with '-': %s", name)
	}
	if strings.Contains(name, "..") {
		return fmt.Errorf("branch name cannot contain '..': %s", name)
	}
	for _, ch := range []string{"~", "^", ":", "?", "*", "["} {
		if strings.Contains(name, ch) {
			return fmt.Errorf("branch name contains invalid character %q: %s", ch, name)
		}
	}
	return nil
}

// NormalizeBranchName converts free-form prompt input into a usable branch
// name: surrounding whitespace is dropped and inner spaces become dashes.
func NormalizeBranchName(input string) string {
	return strings.ReplaceAll(strings.TrimSpace(input), " ", "-")
}
