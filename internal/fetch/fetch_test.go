package fetch

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/code-zen/zen/internal/testutil"
)

type fakeRunner struct {
	lookPathErr error
	runErr      error
	ranName     string
	ranArgs     []string
}

func (r *fakeRunner) LookPath(file string) (string, error) {
	if r.lookPathErr != nil {
		return "", r.lookPathErr
	}
	return "/usr/bin/" + file, nil
}

func (r *fakeRunner) Run(_ context.Context, name string, args ...string) error {
	r.ranName = name
	r.ranArgs = args
	return r.runErr
}

func TestPreflightToolPresent(t *testing.T) {
	assert.NoError(t, Preflight(&fakeRunner{}))
}

func TestPreflightToolMissing(t *testing.T) {
	err := Preflight(&fakeRunner{lookPathErr: errors.New("not found")})
	require.Error(t, err)

	var toolErr *ToolMissingError
	require.ErrorAs(t, err, &toolErr)
	assert.Equal(t, GitTool, toolErr.Tool)
	assert.Contains(t, err.Error(), "git")
}

func TestCloneBuildsShallowSingleBranchArgs(t *testing.T) {
	runner := &fakeRunner{}
	require.NoError(t, Clone(context.Background(), runner, "https://example.com/bundle.git", "main", "/tmp/ws"))

	assert.Equal(t, GitTool, runner.ranName)
	assert.Equal(t, []string{
		"clone", "--quiet", "--depth", "1", "--single-branch",
		"--branch", "main",
		"https://example.com/bundle.git", "/tmp/ws",
	}, runner.ranArgs)
}

func TestCloneEmptyBranchOmitsBranchFlag(t *testing.T) {
	runner := &fakeRunner{}
	require.NoError(t, Clone(context.Background(), runner, "https://example.com/bundle.git", "", "/tmp/ws"))

	assert.NotContains(t, runner.ranArgs, "--branch")
}

func TestCloneFailureWrapsURL(t *testing.T) {
	cause := errors.New("exit status 128")
	runner := &fakeRunner{runErr: cause}
	err := Clone(context.Background(), runner, "https://example.com/bundle.git", "main", "/tmp/ws")
	require.Error(t, err)

	var fetchErr *FetchError
	require.ErrorAs(t, err, &fetchErr)
	assert.Equal(t, "https://example.com/bundle.git", fetchErr.URL)
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "https://example.com/bundle.git")
}

func TestExecRunnerWithStubGit(t *testing.T) {
	dir := t.TempDir()
	testutil.WriteStub(t, dir, GitTool)
	t.Setenv("PATH", dir)

	runner := ExecRunner{Stderr: io.Discard}
	require.NoError(t, Preflight(runner))
	assert.NoError(t, Clone(context.Background(), runner, "https://example.com/bundle.git", "main", t.TempDir()))
}

func TestExecRunnerStubGitFailure(t *testing.T) {
	dir := t.TempDir()
	testutil.WriteStubWithExit(t, dir, GitTool, 1)
	t.Setenv("PATH", dir)

	runner := ExecRunner{Stderr: io.Discard}
	err := Clone(context.Background(), runner, "https://example.com/bundle.git", "main", t.TempDir())

	var fetchErr *FetchError
	require.ErrorAs(t, err, &fetchErr)
}
