package install

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/code-zen/zen/internal/messages"
)

func TestBuildDiffPreviewShowsAppendedLines(t *testing.T) {
	before := "# My Project\n"
	after := before + "\nappended line\n"

	preview := BuildDiffPreview("CLAUDE.md", before, after, 0)

	assert.Equal(t, "CLAUDE.md", preview.Path)
	assert.Contains(t, preview.UnifiedDiff, "+appended line")
	assert.False(t, preview.Truncated)
}

func TestBuildDiffPreviewNoChange(t *testing.T) {
	preview := BuildDiffPreview("CLAUDE.md", "same\n", "same\n", 0)

	assert.Equal(t, messages.InstallDiffPreviewNoChange, preview.UnifiedDiff)
	assert.False(t, preview.Truncated)
}

func TestBuildDiffPreviewTruncatesLongDiffs(t *testing.T) {
	var sb strings.Builder
	for i := 0; i < 100; i++ {
		sb.WriteString("line\n")
	}

	preview := BuildDiffPreview("CLAUDE.md", "", sb.String(), 10)

	assert.True(t, preview.Truncated)
	assert.Len(t, strings.Split(preview.UnifiedDiff, "\n"), 10)
}

func TestBuildDiffPreviewDefaultCap(t *testing.T) {
	var sb strings.Builder
	for i := 0; i < DefaultDiffMaxLines*2; i++ {
		sb.WriteString("line\n")
	}

	preview := BuildDiffPreview("CLAUDE.md", "", sb.String(), 0)

	assert.True(t, preview.Truncated)
	assert.Len(t, strings.Split(preview.UnifiedDiff, "\n"), DefaultDiffMaxLines)
}
