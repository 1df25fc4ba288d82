package testutil

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// Input joins lines into newline-terminated player input.
func Input(lines ...string) string {
	if len(lines) == 0 {
		return ""
	}
	return strings.Join(lines, "\n") + "\n"
}

// OutputLines splits captured output into lines, dropping the trailing empty one.
func OutputLines(out string) []string {
	out = strings.TrimSuffix(out, "\n")
	if out == "" {
		return nil
	}
	return strings.Split(out, "\n")
}

// AssertFeedback asserts that want appears in out as an ordered subsequence
// of whole lines.
func AssertFeedback(t *testing.T, out string, want ...string) {
	t.Helper()

	lines := OutputLines(out)
	i := 0
	for _, line := range lines {
		if i < len(want) && line == want[i] {
			i++
		}
	}
	if i < len(want) {
		assert.Fail(t, "feedback not found in order", "missing %q in %q", want[i], lines)
	}
}
