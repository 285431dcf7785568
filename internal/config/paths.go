package config

import (
	"fmt"
	"path/filepath"

	homedir "github.com/mitchellh/go-homedir"

	"github.com/code-zen/zen/internal/messages"
)

// Paths holds resolved destination paths under the user's Claude profile
// directory.
type Paths struct {
	ProfileDir  string // ~/.claude
	BundleDir   string // ~/.claude/<layout dir>
	CommandsDir string // ~/.claude/commands
	AgentsDir   string // ~/.claude/agents
	ClaudeMD    string // ~/.claude/CLAUDE.md
}

// ProfileDir resolves the Claude profile directory from the user's home.
func ProfileDir() (string, error) {
	home, err := homedir.Dir()
	if err != nil {
		return "", fmt.Errorf(messages.ConfigResolveHomeErrFmt, err)
	}
	return filepath.Join(home, ".claude"), nil
}

// PathsUnder returns the destination paths rooted at profileDir for the given
// bundle directory name.
func PathsUnder(profileDir string, layoutDir string) Paths {
	return Paths{
		ProfileDir:  profileDir,
		BundleDir:   filepath.Join(profileDir, layoutDir),
		CommandsDir: filepath.Join(profileDir, "commands"),
		AgentsDir:   filepath.Join(profileDir, "agents"),
		ClaudeMD:    filepath.Join(profileDir, "CLAUDE.md"),
	}
}

// SettingsPath returns the installer settings file path under profileDir.
func SettingsPath(profileDir string) string {
	return filepath.Join(profileDir, "zen.toml")
}
