package install

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLayoutByName(t *testing.T) {
	layout, err := LayoutByName("code-zen")
	require.NoError(t, err)
	assert.Equal(t, CodeZenLayout, layout)

	layout, err = LayoutByName("zen-code-standards")
	require.NoError(t, err)
	assert.Equal(t, ZenCodeStandardsLayout, layout)
}

func TestLayoutByNameUnknown(t *testing.T) {
	_, err := LayoutByName("vintage")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "vintage")
	assert.Contains(t, err.Error(), "code-zen, zen-code-standards")
}

func TestSentinelMatchesDestinationDirName(t *testing.T) {
	assert.Equal(t, "code-zen", CodeZenLayout.Sentinel())
	assert.Equal(t, "zen-code-standards", ZenCodeStandardsLayout.Sentinel())
}

func TestLegacyLayoutStagesNoOptionalDirs(t *testing.T) {
	assert.Empty(t, ZenCodeStandardsLayout.CommandsDir)
	assert.Empty(t, ZenCodeStandardsLayout.AgentsDir)
}
