//go:build e2e

// cli_harness_test.go builds the guess binary and runs it as a subprocess so
// tests can observe exit codes and the real stdout/stderr split.
package integration

import (
	"bytes"
	"context"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// CLIHarness manages a guess binary for E2E testing.
type CLIHarness struct {
	// BinaryPath is the path to the built guess binary.
	BinaryPath string

	t *testing.T
}

// CLIResult contains the output from a CLI command execution.
type CLIResult struct {
	Stdout   string
	Stderr   string
	ExitCode int
	Err      error
}

// Success returns true if the command completed with exit code 0.
func (r *CLIResult) Success() bool {
	return r.ExitCode == 0 && r.Err == nil
}

// NewCLIHarness builds the guess binary into a temporary directory.
func NewCLIHarness(t *testing.T) *CLIHarness {
	t.Helper()

	projectRoot := findProjectRoot(t)
	require.NotEmpty(t, projectRoot, "could not find project root (directory containing go.mod)")

	binaryPath := filepath.Join(t.TempDir(), "guess")

	cmd := exec.Command("go", "build", "-o", binaryPath, "./cmd/guess")
	cmd.Dir = projectRoot
	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "failed to build guess binary: %s", output)

	return &CLIHarness{BinaryPath: binaryPath, t: t}
}

// Run executes guess with stdin as its standard input and a 30 second timeout.
func (h *CLIHarness) Run(stdin string, args ...string) *CLIResult {
	h.t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	cmd := exec.CommandContext(ctx, h.BinaryPath, args...)
	cmd.Stdin = strings.NewReader(stdin)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()

	result := &CLIResult{
		Stdout: stdout.String(),
		Stderr: stderr.String(),
	}

	if err != nil {
		result.Err = err
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			result.ExitCode = exitErr.ExitCode()
		} else {
			result.ExitCode = -1
		}
	}

	return result
}

// findProjectRoot walks up from the current directory to the one holding go.mod.
func findProjectRoot(t *testing.T) string {
	t.Helper()

	dir, err := os.Getwd()
	require.NoError(t, err, "failed to get working directory")

	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return ""
		}
		dir = parent
	}
}

// RequireSuccess fails the test if the command result indicates failure.
func (h *CLIHarness) RequireSuccess(result *CLIResult) {
	h.t.Helper()
	if !result.Success() {
		h.t.Fatalf("command failed: exit=%d err=%v\nstdout: %s\nstderr: %s",
			result.ExitCode, result.Err, result.Stdout, result.Stderr)
	}
}
