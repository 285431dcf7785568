package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	// tomlv1 is used for syntax validation only; the actual rewrite is
	// line-based so user comments and formatting survive.
	tomlv1 "github.com/pelletier/go-toml"

	"github.com/code-zen/zen/internal/fsutil"
	"github.com/code-zen/zen/internal/messages"
)

// SaveLayout records the chosen layout in the settings file at path. An
// existing file is rewritten line by line: the layout key is replaced in
// place and every other line, including comments, is kept verbatim.
func SaveLayout(path string, layout string) error {
	data, err := os.ReadFile(path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf(messages.ConfigReadFailedFmt, path, err)
	}
	content := string(data)
	if content != "" {
		if _, err := tomlv1.Load(content); err != nil {
			return fmt.Errorf(messages.ConfigInvalidTomlFmt, path, err)
		}
	}
	updated := setTopLevelKey(content, "layout", layout)
	// First runs persist the layout before the profile directory exists.
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf(messages.ConfigWriteFailedFmt, path, err)
	}
	if err := fsutil.WriteFileAtomic(path, []byte(updated), 0o644); err != nil {
		return fmt.Errorf(messages.ConfigWriteFailedFmt, path, err)
	}
	return nil
}

// setTopLevelKey replaces `key = ...` in the top-level table or appends it
// before the first table header when the key is absent.
func setTopLevelKey(content string, key string, value string) string {
	assignment := fmt.Sprintf("%s = %q", key, value)
	if strings.TrimSpace(content) == "" {
		return assignment + "\n"
	}

	lines := strings.Split(strings.TrimRight(content, "\n"), "\n")
	inTopLevel := true
	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "[") {
			inTopLevel = false
			continue
		}
		if !inTopLevel {
			continue
		}
		name, _, found := strings.Cut(trimmed, "=")
		if found && strings.TrimSpace(name) == key {
			lines[i] = assignment
			return strings.Join(lines, "\n") + "\n"
		}
	}

	// Key absent: insert before the first table header, or append at the end.
	for i, line := range lines {
		if strings.HasPrefix(strings.TrimSpace(line), "[") {
			out := make([]string, 0, len(lines)+1)
			out = append(out, lines[:i]...)
			out = append(out, assignment)
			out = append(out, lines[i:]...)
			return strings.Join(out, "\n") + "\n"
		}
	}
	lines = append(lines, assignment)
	return strings.Join(lines, "\n") + "\n"
}
