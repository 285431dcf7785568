package install

import (
	"fmt"
	"strings"

	"github.com/code-zen/zen/internal/messages"
)

// Layout describes a bundle layout variant: where content lives inside the
// fetched bundle and how it is materialized under the profile directory. The
// two variants differ only in destination directory name and which optional
// subtrees are staged.
type Layout struct {
	// Name is the settings value identifying the variant.
	Name string
	// DirName is the destination directory created under the profile dir.
	// It doubles as the sentinel token: the configuration snippet names the
	// installed path, so the directory name appears in any registered block.
	DirName string
	// Subtrees are bundle-relative directories staged into DirName. Each is
	// required; a bundle missing one is considered corrupt.
	Subtrees []string
	// CommandsDir and AgentsDir are bundle-relative optional directories
	// copied to fixed global locations on a best-effort basis. Empty means
	// the variant does not stage them.
	CommandsDir string
	AgentsDir   string
	// SnippetFile with SnippetStart/SnippetEnd (1-based, inclusive) locate
	// the configuration snippet inside the bundle.
	SnippetFile  string
	SnippetStart int
	SnippetEnd   int
}

// CodeZenLayout is the current bundle layout.
var CodeZenLayout = Layout{
	Name:    "code-zen",
	DirName: "code-zen",
	Subtrees: []string{
		"code-zen/spec",
		"code-zen/context",
		"code-zen/prompts",
	},
	CommandsDir:  "commands",
	AgentsDir:    "agents",
	SnippetFile:  "code-zen/templates/claude-standards.md",
	SnippetStart: 3,
	SnippetEnd:   12,
}

// ZenCodeStandardsLayout is the legacy layout. It predates the global
// commands/agents directories, so it stages none.
var ZenCodeStandardsLayout = Layout{
	Name:    "zen-code-standards",
	DirName: "zen-code-standards",
	Subtrees: []string{
		"code-zen/spec",
		"code-zen/context",
		"code-zen/prompts",
	},
	SnippetFile:  "code-zen/templates/claude-standards.md",
	SnippetStart: 3,
	SnippetEnd:   12,
}

var layouts = []Layout{CodeZenLayout, ZenCodeStandardsLayout}

// Sentinel returns the token used to detect prior registration in the
// configuration file.
func (l Layout) Sentinel() string {
	return l.DirName
}

// LayoutByName resolves a layout variant from its settings name.
func LayoutByName(name string) (Layout, error) {
	for _, layout := range layouts {
		if layout.Name == name {
			return layout, nil
		}
	}
	names := make([]string, 0, len(layouts))
	for _, layout := range layouts {
		names = append(names, layout.Name)
	}
	return Layout{}, fmt.Errorf(messages.InstallUnknownLayoutFmt, name, strings.Join(names, ", "))
}
