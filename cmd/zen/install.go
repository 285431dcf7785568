package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/code-zen/zen/internal/config"
	"github.com/code-zen/zen/internal/fetch"
	"github.com/code-zen/zen/internal/install"
	"github.com/code-zen/zen/internal/messages"
	"github.com/code-zen/zen/internal/workspace"
)

var (
	installRun     = install.Run
	newWorkspace   = workspace.New
	fetchPreflight = fetch.Preflight
	fetchClone     = fetch.Clone
	resolveProfile = config.ProfileDir
	loadSettings   = config.LoadSettings
	saveLayout     = config.SaveLayout
	osExit         = os.Exit
)

func newInstallCmd() *cobra.Command {
	var yes bool
	var layoutName string
	var repoURL string
	var branch string

	cmd := &cobra.Command{
		Use:   messages.InstallUse,
		Short: messages.InstallShort,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInstall(cmd, yes, layoutName, repoURL, branch)
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, messages.InstallFlagYes)
	cmd.Flags().StringVar(&layoutName, "layout", "", messages.InstallFlagLayout)
	cmd.Flags().StringVar(&repoURL, "repo", "", messages.InstallFlagRepo)
	cmd.Flags().StringVar(&branch, "branch", "", messages.InstallFlagBranch)

	return cmd
}

func runInstall(cmd *cobra.Command, yes bool, layoutName string, repoURL string, branch string) error {
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

	name := strings.TrimSpace(layoutName)
	if name == "" {
		name = settings.Layout
	}
	layout, err := install.LayoutByName(name)
	if err != nil {
		return err
	}
	if strings.TrimSpace(layoutName) != "" && layout.Name != settings.Layout {
		// Persist the explicit choice so later runs and doctor agree on the
		// layout. Best-effort: a read-only settings file must not block the
		// install itself.
		if err := saveLayout(config.SettingsPath(profileDir), layout.Name); err != nil {
			_, _ = fmt.Fprintln(errOut, color.YellowString("Warning: %v", err))
		}
	}

	repo := firstNonEmpty(strings.TrimSpace(repoURL), settings.Repo)
	ref := firstNonEmpty(strings.TrimSpace(branch), settings.Branch)

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

	_, _ = fmt.Fprintf(out, messages.InstallFetchingFmt, repo, ref)
	if err := fetchClone(cmd.Context(), runner, repo, ref, ws.Dir()); err != nil {
		return err
	}

	paths := config.PathsUnder(profileDir, layout.DirName)
	result, err := installRun(install.Options{
		BundleDir:  ws.Dir(),
		Layout:     layout,
		Paths:      paths,
		Prompter:   newInstallPrompter(cmd, yes),
		WarnWriter: errOut,
		System:     install.RealSystem{},
	})
	if err != nil {
		return err
	}

	if result.Action == install.ActionCancel {
		_, _ = fmt.Fprintln(out, messages.InstallCancelled)
		return nil
	}
	_, _ = fmt.Fprintf(out, messages.InstallStagedFmt, paths.BundleDir)

	switch result.Register {
	case install.RegisterDeclined:
		printSnippetFallback(out, result.Snippet)
		return nil
	case install.RegisterAlreadyConfigured:
		_, _ = fmt.Fprintf(out, messages.InstallAlreadyConfiguredFmt, paths.ClaudeMD, layout.Sentinel())
	case install.RegisterCreated, install.RegisterAppended:
		_, _ = fmt.Fprintf(out, messages.InstallRegisteredFmt, layout.DirName, paths.ClaudeMD)
	}

	_, _ = color.New(color.FgGreen).Fprintf(out, messages.InstallCompleteFmt, layout.DirName)
	return nil
}

// printSnippetFallback prints the exact snippet text that would have been
// written, so a declined registration can be finished by hand.
func printSnippetFallback(out io.Writer, snippet string) {
	_, _ = fmt.Fprintln(out)
	_, _ = fmt.Fprintln(out, messages.InstallManualFallbackHeader)
	_, _ = fmt.Fprintln(out)
	_, _ = fmt.Fprintln(out, snippet)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
