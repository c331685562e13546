package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"creduce/internal/reduce/rexec"
)

// CLI provides a clean interface for running the reducer CLI in tests. It
// manages a temp directory and environment variables, and wires a fake
// oracle (see [rexec.Fake]) so tests never invoke a real subprocess.
type CLI struct {
	t   *testing.T
	Dir string
	Env map[string]string

	// Interesting classifies working-file contents the way a real oracle
	// script would (true = exit 0). Defaults to "always interesting" if
	// left nil.
	Interesting func(data []byte) bool
}

// NewCLI creates a new test CLI with a temp directory and a trivial
// always-executable oracle script placeholder on disk (its content is
// never run; [CLI.Interesting] decides the verdict instead).
func NewCLI(t *testing.T) *CLI {
	t.Helper()

	dir := t.TempDir()
	oraclePath := filepath.Join(dir, "oracle.sh")

	if err := os.WriteFile(oraclePath, []byte("#!/bin/sh\nexit 0\n"), 0o755); err != nil {
		t.Fatalf("writing fake oracle: %v", err)
	}

	return &CLI{t: t, Dir: dir, Env: map[string]string{}}
}

// OraclePath returns the path of the placeholder oracle script this CLI's
// fake runner reads decisions against.
func (c *CLI) OraclePath() string {
	return filepath.Join(c.Dir, "oracle.sh")
}

func (c *CLI) newRunner(_ bool) rexec.Runner {
	interesting := c.Interesting
	if interesting == nil {
		interesting = func([]byte) bool { return true }
	}

	return &rexec.Fake{
		Interesting: interesting,
		ReadFile:    os.ReadFile,
		WriteFile:   func(path string, data []byte) error { return os.WriteFile(path, data, 0o644) },
	}
}

// Run executes the CLI with the given args and returns stdout, stderr, and
// exit code. args should not include the program name.
func (c *CLI) Run(args ...string) (string, string, int) {
	var outBuf, errBuf bytes.Buffer

	fullArgs := append([]string{"creduce"}, args...)
	code := Run(nil, &outBuf, &errBuf, fullArgs, c.Env, nil, c.newRunner)

	return outBuf.String(), errBuf.String(), code
}

// MustRun executes the CLI and fails the test if it returns non-zero.
func (c *CLI) MustRun(args ...string) string {
	c.t.Helper()

	stdout, stderr, code := c.Run(args...)
	if code != 0 {
		c.t.Fatalf("command %v failed with exit code %d\nstderr: %s", args, code, stderr)
	}

	return strings.TrimSpace(stdout)
}

// MustFail executes the CLI and fails the test if it succeeds.
func (c *CLI) MustFail(args ...string) string {
	c.t.Helper()

	stdout, stderr, code := c.Run(args...)
	if code == 0 {
		c.t.Fatalf("command %v should have failed but succeeded\nstdout: %s", args, stdout)
	}

	return strings.TrimSpace(stderr)
}

// WriteCFile writes content to a C source file under the CLI's temp
// directory and returns its path.
func (c *CLI) WriteCFile(name, content string) string {
	c.t.Helper()

	path := filepath.Join(c.Dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		c.t.Fatalf("writing %s: %v", name, err)
	}

	return path
}

// AssertContains fails the test if content doesn't contain substr.
func AssertContains(t *testing.T, content, substr string) {
	t.Helper()

	if !strings.Contains(content, substr) {
		t.Errorf("content should contain %q\ncontent:\n%s", substr, content)
	}
}

// AssertNotContains fails the test if content contains substr.
func AssertNotContains(t *testing.T, content, substr string) {
	t.Helper()

	if strings.Contains(content, substr) {
		t.Errorf("content should NOT contain %q\ncontent:\n%s", substr, content)
	}
}
