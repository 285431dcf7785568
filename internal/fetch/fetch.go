// Package fetch acquires the Code Zen bundle with a shallow git clone.
package fetch

import (
	"context"
	"fmt"
	"io"
	"os/exec"

	"github.com/code-zen/zen/internal/messages"
)

// GitTool is the external version-control client the installer depends on.
const GitTool = "git"

// Runner abstracts external command lookup and execution so tests can run
// without a real git binary.
type Runner interface {
	LookPath(file string) (string, error)
	Run(ctx context.Context, name string, args ...string) error
}

// ExecRunner implements Runner using os/exec.
type ExecRunner struct {
	// Stderr receives the child process's error output. Clone progress is
	// suppressed; only failures surface here.
	Stderr io.Writer
}

// LookPath searches for an executable on PATH.
func (r ExecRunner) LookPath(file string) (string, error) {
	return exec.LookPath(file)
}

// Run executes the named command and waits for it to finish.
func (r ExecRunner) Run(ctx context.Context, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stderr = r.Stderr
	return cmd.Run()
}

// ToolMissingError reports that the required version-control client is absent
// from PATH. It is fatal; no fetch is attempted.
type ToolMissingError struct {
	Tool string
}

func (e *ToolMissingError) Error() string {
	return fmt.Sprintf(messages.FetchToolMissingFmt, e.Tool)
}

// FetchError reports a failed clone of the bundle repository. It is fatal and
// never retried.
type FetchError struct {
	URL string
	Err error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf(messages.FetchCloneFailedFmt, e.URL, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// Preflight verifies the git client is available on PATH.
func Preflight(r Runner) error {
	if _, err := r.LookPath(GitTool); err != nil {
		return &ToolMissingError{Tool: GitTool}
	}
	return nil
}

// Clone performs a shallow single-branch clone of url into dir. An empty
// branch clones the repository's default branch.
func Clone(ctx context.Context, r Runner, url string, branch string, dir string) error {
	args := []string{"clone", "--quiet", "--depth", "1", "--single-branch"}
	if branch != "" {
		args = append(args, "--branch", branch)
	}
	args = append(args, url, dir)
	if err := r.Run(ctx, GitTool, args...); err != nil {
		return &FetchError{URL: url, Err: err}
	}
	return nil
}
