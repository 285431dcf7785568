// Package terminal reports whether the process is attached to an interactive
// terminal.
package terminal

import (
	"os"

	"golang.org/x/term"
)

// IsInteractive reports whether both stdin and stdout are terminals. The
// prompt surfaces key off this: form-based confirmations need a terminal on
// both ends, anything else falls back to line-based prompts.
func IsInteractive() bool {
	return attached(os.Stdin) && attached(os.Stdout)
}

func attached(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
