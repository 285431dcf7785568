// Package config loads installer settings and resolves profile paths.
package config

import (
	"errors"
	"fmt"
	"os"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/code-zen/zen/internal/messages"
)

// DefaultRepoURL is the upstream bundle repository.
const DefaultRepoURL = "https://github.com/code-zen/zen-code-standards.git"

// DefaultBranch is the bundle branch cloned when no override is configured.
const DefaultBranch = "main"

// DefaultLayoutName is the bundle layout used when the settings file is
// absent or silent.
const DefaultLayoutName = "code-zen"

// Settings holds user-tunable installer settings from zen.toml.
type Settings struct {
	Layout string `toml:"layout"`
	Repo   string `toml:"repo"`
	Branch string `toml:"branch"`
}

// DefaultSettings returns the settings used when no file exists.
func DefaultSettings() Settings {
	return Settings{
		Layout: DefaultLayoutName,
		Repo:   DefaultRepoURL,
		Branch: DefaultBranch,
	}
}

// LoadSettings reads the settings file at path. A missing file yields the
// defaults; set keys override defaults, unset keys keep them.
func LoadSettings(path string) (Settings, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return DefaultSettings(), nil
	}
	if err != nil {
		return Settings{}, fmt.Errorf(messages.ConfigReadFailedFmt, path, err)
	}
	settings := DefaultSettings()
	if err := toml.Unmarshal(data, &settings); err != nil {
		return Settings{}, fmt.Errorf(messages.ConfigParseFailedFmt, path, err)
	}
	if settings.Layout == "" {
		settings.Layout = DefaultLayoutName
	}
	if settings.Repo == "" {
		settings.Repo = DefaultRepoURL
	}
	if settings.Branch == "" {
		settings.Branch = DefaultBranch
	}
	return settings, nil
}
