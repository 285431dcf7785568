package install

import (
	"errors"
	"fmt"
	"os"

	"github.com/code-zen/zen/internal/messages"
)

// Action describes what the installer will do with the destination directory.
type Action int

const (
	// ActionCreate means the destination does not exist and will be created.
	ActionCreate Action = iota
	// ActionOverwrite means the destination exists and the user confirmed
	// its removal before repopulation.
	ActionOverwrite
	// ActionCancel means the user declined to replace an existing
	// destination; the run ends cleanly with no mutation.
	ActionCancel
)

// Target captures the destination state the plan decision depends on.
type Target struct {
	Path   string
	Exists bool
	IsDir  bool
}

// ResolveTarget inspects the destination path without mutating anything.
func ResolveTarget(sys System, path string) (Target, error) {
	info, err := sys.Stat(path)
	if errors.Is(err, os.ErrNotExist) {
		return Target{Path: path}, nil
	}
	if err != nil {
		return Target{}, fmt.Errorf(messages.InstallFailedStatFmt, path, err)
	}
	return Target{Path: path, Exists: true, IsDir: info.IsDir()}, nil
}

// PlanDestination decides how to treat the destination before any filesystem
// mutation occurs. A fresh destination never prompts; an existing one
// requires explicit confirmation before destructive replacement.
func PlanDestination(target Target, confirm func(path string) (bool, error)) (Action, error) {
	if !target.Exists {
		return ActionCreate, nil
	}
	if confirm == nil {
		return ActionCancel, fmt.Errorf(messages.InstallPromptRequired)
	}
	replace, err := confirm(target.Path)
	if err != nil {
		return ActionCancel, err
	}
	if !replace {
		return ActionCancel, nil
	}
	return ActionOverwrite, nil
}
