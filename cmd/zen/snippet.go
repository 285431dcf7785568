package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/code-zen/zen/internal/config"
	"github.com/code-zen/zen/internal/fetch"
	"github.com/code-zen/zen/internal/install"
	"github.com/code-zen/zen/internal/messages"
)

// newSnippetCmd re-derives the CLAUDE.md configuration block from a fresh
// bundle checkout and prints it, so users who declined registration during
// install can finish setup by hand.
func newSnippetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   messages.SnippetUse,
		Short: messages.SnippetShort,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			errOut := cmd.ErrOrStderr()

			profileDir, err := resolveProfile()
			if err != nil {
				return err
			}
			settings, err := loadSettings(config.SettingsPath(profileDir))
			if err != nil {
				return err
			}
			layout, err := install.LayoutByName(settings.Layout)
			if err != nil {
				return err
			}

			runner := fetch.ExecRunner{Stderr: errOut}
			if err := fetchPreflight(runner); err != nil {
				return err
			}

			ws, err := newWorkspace()
			if err != nil {
				return err
			}
			defer func() {
				_ = ws.Cleanup()
			}()
			stop := ws.CleanupOnSignal(osExit)
			defer stop()

			if err := fetchClone(cmd.Context(), runner, settings.Repo, settings.Branch, ws.Dir()); err != nil {
				return err
			}

			snippet, err := install.ExtractSnippet(
				install.RealSystem{},
				filepath.Join(ws.Dir(), filepath.FromSlash(layout.SnippetFile)),
				layout.SnippetStart,
				layout.SnippetEnd,
			)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(out, snippet)
			return nil
		},
	}
}
