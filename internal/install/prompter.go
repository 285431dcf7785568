package install

import (
	"fmt"

	"github.com/code-zen/zen/internal/messages"
)

// Prompter provides the interactive confirmations the installer needs. Every
// decline is benign: the installer reports the terminal state and the run
// exits zero.
type Prompter interface {
	// ReplaceBundleDir asks whether to replace an existing destination
	// directory with a fresh copy.
	ReplaceBundleDir(path string) (bool, error)
	// CreateConfigFile asks whether to create the configuration file with
	// the snippet as its sole content.
	CreateConfigFile(path string, snippet string) (bool, error)
	// AppendConfigFile asks whether to append the snippet to an existing
	// configuration file, showing the pending change.
	AppendConfigFile(path string, preview DiffPreview) (bool, error)
}

// PromptFuncs adapts optional prompt callbacks into a Prompter. A nil
// callback fails the corresponding prompt so non-interactive runs cannot
// silently mutate user files.
type PromptFuncs struct {
	ReplaceBundleDirFunc func(path string) (bool, error)
	CreateConfigFileFunc func(path string, snippet string) (bool, error)
	AppendConfigFileFunc func(path string, preview DiffPreview) (bool, error)
}

// ReplaceBundleDir prompts to replace the destination directory.
func (p PromptFuncs) ReplaceBundleDir(path string) (bool, error) {
	if p.ReplaceBundleDirFunc == nil {
		return false, fmt.Errorf(messages.InstallPromptRequired)
	}
	return p.ReplaceBundleDirFunc(path)
}

// CreateConfigFile prompts to create the configuration file.
func (p PromptFuncs) CreateConfigFile(path string, snippet string) (bool, error) {
	if p.CreateConfigFileFunc == nil {
		return false, fmt.Errorf(messages.InstallPromptRequired)
	}
	return p.CreateConfigFileFunc(path, snippet)
}

// AppendConfigFile prompts to append the snippet to the configuration file.
func (p PromptFuncs) AppendConfigFile(path string, preview DiffPreview) (bool, error) {
	if p.AppendConfigFileFunc == nil {
		return false, fmt.Errorf(messages.InstallPromptRequired)
	}
	return p.AppendConfigFileFunc(path, preview)
}

// AcceptAll returns a Prompter that answers yes to every confirmation.
// Used by --yes runs.
func AcceptAll() Prompter {
	return PromptFuncs{
		ReplaceBundleDirFunc: func(string) (bool, error) { return true, nil },
		CreateConfigFileFunc: func(string, string) (bool, error) { return true, nil },
		AppendConfigFileFunc: func(string, DiffPreview) (bool, error) { return true, nil },
	}
}
