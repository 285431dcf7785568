// Package testutil provides helpers shared by package tests.
package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
)

// SampleSnippetSource is a 12-line snippet source file whose lines 3-12 are
// the configuration block used across tests.
const SampleSnippetSource = `<!-- claude-standards template -->
<!-- lines below are spliced into CLAUDE.md -->
# Project Coding Standards

## Standards Inheritance

This project inherits the Code Zen standards from ~/.claude/code-zen/spec/MAIN.md.

- Project-level rules override inherited rules on conflict.
- When a topic is not covered here, fall back to the inherited standards.

Keep this block intact so repeated installs detect prior registration.`

// SampleSnippet is the expected extraction of SampleSnippetSource lines 3-12.
const SampleSnippet = `# Project Coding Standards

## Standards Inheritance

This project inherits the Code Zen standards from ~/.claude/code-zen/spec/MAIN.md.

- Project-level rules override inherited rules on conflict.
- When a topic is not covered here, fall back to the inherited standards.

Keep this block intact so repeated installs detect prior registration.`

// WriteStub writes an executable shell stub that exits successfully.
// t is the active test; dir is the output directory; name is the executable
// file name.
func WriteStub(t *testing.T, dir string, name string) {
	t.Helper()
	WriteStubWithExit(t, dir, name, 0)
}

// WriteStubWithExit writes an executable shell stub that exits with the
// provided code.
func WriteStubWithExit(t *testing.T, dir string, name string, exitCode int) {
	t.Helper()
	path := filepath.Join(dir, name)
	content := []byte(fmt.Sprintf("#!/bin/sh\nexit %d\n", exitCode))
	if err := os.WriteFile(path, content, 0o755); err != nil {
		t.Fatalf("write stub: %v", err)
	}
}

// WriteBundle materializes a minimal Code Zen bundle checkout under dir:
// the three required subtrees, the optional commands/agents directories,
// and the snippet template.
func WriteBundle(t *testing.T, dir string) {
	t.Helper()
	WriteBundleWithOptions(t, dir, true)
}

// WriteBundleWithOptions materializes a bundle checkout under dir. When
// withOptional is false the commands/agents directories are omitted to
// exercise best-effort staging.
func WriteBundleWithOptions(t *testing.T, dir string, withOptional bool) {
	t.Helper()
	files := map[string]string{
		"code-zen/spec/MAIN.md":                  "# Zen of Code\n",
		"code-zen/spec/naming.md":                "# Naming\n",
		"code-zen/context/applied-examples.md":   "# Applied examples\n",
		"code-zen/prompts/workflow.md":           "# Workflow prompts\n",
		"code-zen/templates/claude-standards.md": SampleSnippetSource + "\n",
	}
	if withOptional {
		files["commands/review.md"] = "# Review command\n"
		files["agents/reviewer.md"] = "# Reviewer agent\n"
	}
	for name, content := range files {
		WriteFile(t, filepath.Join(dir, filepath.FromSlash(name)), content)
	}
}

// WriteFile writes content to path, creating parent directories.
func WriteFile(t *testing.T, path string, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

// ReadFile reads path and fails the test on error.
func ReadFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	return string(data)
}
