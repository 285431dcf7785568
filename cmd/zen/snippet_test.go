package main

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/code-zen/zen/internal/testutil"
)

func TestSnippetPrintsConfigurationBlock(t *testing.T) {
	stubProfileDir(t)
	stubPreflightOK(t)
	stubCloneWithBundle(t)
	wsDir := captureWorkspaceDir(t)

	out, _, err := runZen(t, "", "snippet")

	require.NoError(t, err)
	assert.Equal(t, testutil.SampleSnippet+"\n", out)
	assert.NoDirExists(t, *wsDir)
}

func TestSnippetCloneFailure(t *testing.T) {
	stubProfileDir(t)
	stubPreflightOK(t)
	stubCloneFailure(t, errors.New("network unreachable"))
	wsDir := captureWorkspaceDir(t)

	_, _, err := runZen(t, "", "snippet")

	require.Error(t, err)
	assert.NoDirExists(t, *wsDir)
}

func TestSnippetMatchesInstallFallback(t *testing.T) {
	stubPreflightOK(t)
	stubCloneWithBundle(t)
	stubNonInteractive(t)

	stubProfileDir(t)
	snippetOut, _, err := runZen(t, "", "snippet")
	require.NoError(t, err)

	stubProfileDir(t)
	installOut, _, err := runZen(t, "n\n", "install")
	require.NoError(t, err)

	assert.Contains(t, installOut, snippetOut)
}
