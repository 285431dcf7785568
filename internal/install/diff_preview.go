package install

import (
	"strings"

	"github.com/aymanbagabas/go-udiff"

	"github.com/code-zen/zen/internal/messages"
)

// DefaultDiffMaxLines is the default maximum number of diff lines shown in an
// append preview.
const DefaultDiffMaxLines = 40

// DiffPreview is a user-facing preview of the pending configuration file
// change, shown before the append confirmation.
type DiffPreview struct {
	Path        string
	UnifiedDiff string
	Truncated   bool
}

// BuildDiffPreview computes a unified diff between the current and updated
// file content, capped at maxLines.
func BuildDiffPreview(path string, before string, after string, maxLines int) DiffPreview {
	if maxLines <= 0 {
		maxLines = DefaultDiffMaxLines
	}
	unified := udiff.Unified(path, path, before, after)
	if strings.TrimSpace(unified) == "" {
		return DiffPreview{Path: path, UnifiedDiff: messages.InstallDiffPreviewNoChange}
	}
	lines := strings.Split(strings.TrimRight(unified, "\n"), "\n")
	truncated := false
	if len(lines) > maxLines {
		lines = lines[:maxLines]
		truncated = true
	}
	return DiffPreview{
		Path:        path,
		UnifiedDiff: strings.Join(lines, "\n"),
		Truncated:   truncated,
	}
}
