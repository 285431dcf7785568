package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/code-zen/zen/internal/install"
	"github.com/code-zen/zen/internal/messages"
	"github.com/code-zen/zen/internal/terminal"
	"github.com/code-zen/zen/internal/ui"
)

var isTerminal = terminal.IsInteractive

// newInstallPrompter wires the installer's confirmations to the right
// interaction surface: auto-accept for --yes, huh forms in a terminal, and
// plain stdin prompts otherwise (piped input, CI).
func newInstallPrompter(cmd *cobra.Command, yes bool) install.Prompter {
	if yes {
		return install.AcceptAll()
	}
	if isTerminal() {
		return huhPrompter(ui.NewHuhUI())
	}
	return stdinPrompter(cmd.InOrStdin(), cmd.OutOrStdout())
}

// huhPrompter adapts the huh confirmation UI to the installer's Prompter.
// An aborted prompt (Esc/Ctrl+C) counts as a decline.
func huhPrompter(u ui.UI) install.Prompter {
	confirm := func(title string, description string) (bool, error) {
		ok := false
		err := u.Confirm(title, description, &ok)
		if errors.Is(err, ui.ErrAborted) {
			return false, nil
		}
		return ok, err
	}
	return install.PromptFuncs{
		ReplaceBundleDirFunc: func(path string) (bool, error) {
			return confirm(fmt.Sprintf(messages.InstallReplacePromptFmt, path), "")
		},
		CreateConfigFileFunc: func(path string, snippet string) (bool, error) {
			return confirm(fmt.Sprintf(messages.InstallCreateConfigFmt, path), snippet)
		},
		AppendConfigFileFunc: func(path string, preview install.DiffPreview) (bool, error) {
			body := preview.UnifiedDiff
			if preview.Truncated {
				body += "\n" + messages.InstallTruncatedDiffNote
			}
			return confirm(fmt.Sprintf(messages.InstallAppendConfigFmt, path), body)
		},
	}
}

// stdinPrompter adapts line-based y/n prompts to the installer's Prompter.
// A single buffered reader is shared by all prompts so a run with several
// questions consumes piped input one line per question.
func stdinPrompter(in io.Reader, out io.Writer) install.Prompter {
	reader := bufio.NewReader(in)
	return install.PromptFuncs{
		ReplaceBundleDirFunc: func(path string) (bool, error) {
			// Destructive replacement defaults to no.
			return askYesNo(reader, out, fmt.Sprintf(messages.InstallReplacePromptFmt, path), false)
		},
		CreateConfigFileFunc: func(path string, snippet string) (bool, error) {
			return askYesNo(reader, out, fmt.Sprintf(messages.InstallCreateConfigFmt, path), true)
		},
		AppendConfigFileFunc: func(path string, preview install.DiffPreview) (bool, error) {
			_, _ = fmt.Fprintln(out, preview.UnifiedDiff)
			if preview.Truncated {
				_, _ = fmt.Fprintln(out, messages.InstallTruncatedDiffNote)
			}
			return askYesNo(reader, out, fmt.Sprintf(messages.InstallAppendConfigFmt, path), true)
		},
	}
}
