package install

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/code-zen/zen/internal/messages"
)

// RegisterResult reports how configuration registration ended.
type RegisterResult int

const (
	// RegisterCreated means the configuration file was created with the
	// snippet as its sole content.
	RegisterCreated RegisterResult = iota
	// RegisterAppended means the snippet was appended to an existing file.
	RegisterAppended
	// RegisterAlreadyConfigured means the sentinel was found and the file
	// was left untouched.
	RegisterAlreadyConfigured
	// RegisterDeclined means the user declined a create/append prompt; the
	// caller prints the snippet as a manual fallback.
	RegisterDeclined
)

// RegisterConfig splices the snippet into the configuration file at path,
// guarded by the sentinel substring and user confirmation. The sentinel guard
// runs before any prompt: a file that already references the bundle is never
// modified, no matter how many times registration runs.
func RegisterConfig(sys System, path string, snippet string, sentinel string, prompter Prompter, diffMaxLines int) (RegisterResult, error) {
	data, err := sys.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		create, err := prompter.CreateConfigFile(path, snippet)
		if err != nil {
			return RegisterDeclined, err
		}
		if !create {
			return RegisterDeclined, nil
		}
		if err := sys.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return RegisterDeclined, fmt.Errorf(messages.InstallCreateDirFailedFmt, filepath.Dir(path), err)
		}
		if err := sys.WriteFileAtomic(path, []byte(snippet+"\n"), 0o644); err != nil {
			return RegisterDeclined, fmt.Errorf(messages.InstallFailedWriteFmt, path, err)
		}
		return RegisterCreated, nil
	}
	if err != nil {
		return RegisterDeclined, fmt.Errorf(messages.InstallFailedReadFmt, path, err)
	}

	existing := string(data)
	if strings.Contains(existing, sentinel) {
		return RegisterAlreadyConfigured, nil
	}

	updated := appendWithSeparation(existing, snippet)
	preview := BuildDiffPreview(path, existing, updated, diffMaxLines)
	appendOK, err := prompter.AppendConfigFile(path, preview)
	if err != nil {
		return RegisterDeclined, err
	}
	if !appendOK {
		return RegisterDeclined, nil
	}
	if err := sys.WriteFileAtomic(path, []byte(updated), 0o644); err != nil {
		return RegisterDeclined, fmt.Errorf(messages.InstallFailedWriteFmt, path, err)
	}
	return RegisterAppended, nil
}

// appendWithSeparation appends snippet to existing content, preceded by
// blank-line separation.
func appendWithSeparation(existing string, snippet string) string {
	trimmed := strings.TrimRight(existing, "\n")
	if trimmed == "" {
		return snippet + "\n"
	}
	return trimmed + "\n\n" + snippet + "\n"
}
