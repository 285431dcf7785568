package doctor

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/code-zen/zen/internal/config"
	"github.com/code-zen/zen/internal/install"
	"github.com/code-zen/zen/internal/testutil"
)

func stubLookPath(t *testing.T, fn func(string) (string, error)) {
	t.Helper()
	prev := lookPathFunc
	lookPathFunc = fn
	t.Cleanup(func() { lookPathFunc = prev })
}

func TestCheckToolFound(t *testing.T) {
	stubLookPath(t, func(name string) (string, error) {
		assert.Equal(t, "git", name)
		return "/usr/bin/git", nil
	})

	result := CheckTool()

	assert.Equal(t, StatusOK, result.Status)
	assert.Contains(t, result.Message, "/usr/bin/git")
}

func TestCheckToolMissing(t *testing.T) {
	stubLookPath(t, func(string) (string, error) {
		return "", errors.New("executable file not found in $PATH")
	})

	result := CheckTool()

	assert.Equal(t, StatusFail, result.Status)
	assert.NotEmpty(t, result.Recommendation)
}

func installedPaths(t *testing.T, layout install.Layout) config.Paths {
	t.Helper()
	paths := config.PathsUnder(t.TempDir(), layout.DirName)
	for _, subtree := range layout.Subtrees {
		testutil.WriteFile(t, filepath.Join(paths.BundleDir, filepath.Base(subtree), "MAIN.md"), "x\n")
	}
	return paths
}

func TestCheckStructureAllPresent(t *testing.T) {
	paths := installedPaths(t, install.CodeZenLayout)
	testutil.WriteFile(t, filepath.Join(paths.CommandsDir, "review.md"), "x\n")
	testutil.WriteFile(t, filepath.Join(paths.AgentsDir, "reviewer.md"), "x\n")

	results := CheckStructure(paths, install.CodeZenLayout)

	require.Len(t, results, 6)
	for _, result := range results {
		assert.Equal(t, StatusOK, result.Status, result.Message)
	}
}

func TestCheckStructureMissingSubtreeFails(t *testing.T) {
	paths := installedPaths(t, install.ZenCodeStandardsLayout)
	require.NoError(t, os.RemoveAll(filepath.Join(paths.BundleDir, "prompts")))

	results := CheckStructure(paths, install.ZenCodeStandardsLayout)

	var failed []Result
	for _, result := range results {
		if result.Status == StatusFail {
			failed = append(failed, result)
		}
	}
	require.Len(t, failed, 1)
	assert.Contains(t, failed[0].Message, "prompts")
}

func TestCheckStructureMissingOptionalOnlyWarns(t *testing.T) {
	paths := installedPaths(t, install.CodeZenLayout)

	results := CheckStructure(paths, install.CodeZenLayout)

	var warns, fails int
	for _, result := range results {
		switch result.Status {
		case StatusWarn:
			warns++
		case StatusFail:
			fails++
		}
	}
	assert.Equal(t, 2, warns)
	assert.Zero(t, fails)
}

func TestCheckStructureLegacyLayoutSkipsOptional(t *testing.T) {
	paths := installedPaths(t, install.ZenCodeStandardsLayout)

	results := CheckStructure(paths, install.ZenCodeStandardsLayout)

	require.Len(t, results, 4)
	for _, result := range results {
		assert.Equal(t, StatusOK, result.Status, result.Message)
	}
}

func TestCheckRegistrationMissingFile(t *testing.T) {
	paths := config.PathsUnder(t.TempDir(), "code-zen")

	result := CheckRegistration(paths, "code-zen")

	assert.Equal(t, StatusWarn, result.Status)
	assert.NotEmpty(t, result.Recommendation)
}

func TestCheckRegistrationSentinelAbsent(t *testing.T) {
	paths := config.PathsUnder(t.TempDir(), "code-zen")
	testutil.WriteFile(t, paths.ClaudeMD, "# My Project\n")

	result := CheckRegistration(paths, "code-zen")

	assert.Equal(t, StatusWarn, result.Status)
}

func TestCheckRegistrationSentinelPresent(t *testing.T) {
	paths := config.PathsUnder(t.TempDir(), "code-zen")
	testutil.WriteFile(t, paths.ClaudeMD, testutil.SampleSnippet+"\n")

	result := CheckRegistration(paths, "code-zen")

	assert.Equal(t, StatusOK, result.Status)
}
