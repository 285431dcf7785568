// Package install stages the fetched Code Zen bundle into the user's profile
// directory and registers it in the configuration file.
package install

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/code-zen/zen/internal/config"
	"github.com/code-zen/zen/internal/messages"
)

// Options controls installer behavior.
type Options struct {
	// BundleDir is the root of the fetched bundle checkout.
	BundleDir string
	Layout    Layout
	Paths     config.Paths
	Prompter  Prompter
	// WarnWriter receives non-fatal warnings (best-effort copy failures).
	WarnWriter   io.Writer
	DiffMaxLines int
	System       System
}

// Result summarizes an install run. A Result with Action == ActionCancel or
// Register == RegisterDeclined is a benign terminal state, not an error.
type Result struct {
	Action   Action
	Register RegisterResult
	// Snippet is the extracted configuration block, kept so callers can
	// print it as a manual fallback after a declined registration.
	Snippet string
}

type installer struct {
	bundleDir  string
	layout     Layout
	paths      config.Paths
	prompter   Prompter
	warnWriter io.Writer
	sys        System
}

// Run performs the installation: destination planning, subtree staging,
// best-effort optional directories, snippet extraction, and configuration
// registration. The fetched bundle is never mutated.
func Run(opts Options) (Result, error) {
	if opts.System == nil {
		return Result{}, fmt.Errorf(messages.InstallSystemRequired)
	}
	if opts.Layout.Name == "" {
		return Result{}, fmt.Errorf(messages.InstallLayoutRequired)
	}
	if opts.BundleDir == "" {
		return Result{}, fmt.Errorf(messages.InstallBundleDirRequired)
	}
	if opts.Prompter == nil {
		return Result{}, fmt.Errorf(messages.InstallPromptRequired)
	}
	warnWriter := opts.WarnWriter
	if warnWriter == nil {
		warnWriter = os.Stderr
	}
	inst := &installer{
		bundleDir:  opts.BundleDir,
		layout:     opts.Layout,
		paths:      opts.Paths,
		prompter:   opts.Prompter,
		warnWriter: warnWriter,
		sys:        opts.System,
	}

	if err := inst.sys.MkdirAll(inst.paths.ProfileDir, 0o755); err != nil {
		return Result{}, fmt.Errorf(messages.InstallCreateDirFailedFmt, inst.paths.ProfileDir, err)
	}

	target, err := ResolveTarget(inst.sys, inst.paths.BundleDir)
	if err != nil {
		return Result{}, err
	}
	action, err := PlanDestination(target, inst.prompter.ReplaceBundleDir)
	if err != nil {
		return Result{}, err
	}
	if action == ActionCancel {
		return Result{Action: ActionCancel}, nil
	}
	if action == ActionOverwrite {
		if err := inst.sys.RemoveAll(inst.paths.BundleDir); err != nil {
			return Result{}, fmt.Errorf(messages.InstallFailedRemoveFmt, inst.paths.BundleDir, err)
		}
	}

	if err := inst.stageSubtrees(); err != nil {
		return Result{}, err
	}
	inst.stageOptionalDirs()

	snippet, err := ExtractSnippet(
		inst.sys,
		filepath.Join(inst.bundleDir, filepath.FromSlash(inst.layout.SnippetFile)),
		inst.layout.SnippetStart,
		inst.layout.SnippetEnd,
	)
	if err != nil {
		return Result{}, err
	}

	register, err := RegisterConfig(inst.sys, inst.paths.ClaudeMD, snippet, inst.layout.Sentinel(), inst.prompter, opts.DiffMaxLines)
	if err != nil {
		return Result{}, err
	}
	return Result{Action: action, Register: register, Snippet: snippet}, nil
}

// stageSubtrees copies the required bundle subtrees into the destination
// directory. Every subtree must exist in the bundle.
func (inst *installer) stageSubtrees() error {
	if err := inst.sys.MkdirAll(inst.paths.BundleDir, 0o755); err != nil {
		return fmt.Errorf(messages.InstallCreateDirFailedFmt, inst.paths.BundleDir, err)
	}
	for _, subtree := range inst.layout.Subtrees {
		src := filepath.Join(inst.bundleDir, filepath.FromSlash(subtree))
		info, err := inst.sys.Stat(src)
		if err != nil || !info.IsDir() {
			return fmt.Errorf(messages.InstallSubtreeMissingFmt, subtree)
		}
		dst := filepath.Join(inst.paths.BundleDir, filepath.Base(subtree))
		if err := copyTree(inst.sys, src, dst); err != nil {
			return err
		}
	}
	return nil
}

// stageOptionalDirs copies the commands and agents directories into their
// fixed global locations. Failures here must not abort the run; a missing or
// unreadable optional directory only produces a warning.
func (inst *installer) stageOptionalDirs() {
	optional := []struct {
		src string
		dst string
	}{
		{src: inst.layout.CommandsDir, dst: inst.paths.CommandsDir},
		{src: inst.layout.AgentsDir, dst: inst.paths.AgentsDir},
	}
	for _, dir := range optional {
		if dir.src == "" {
			continue
		}
		src := filepath.Join(inst.bundleDir, filepath.FromSlash(dir.src))
		info, err := inst.sys.Stat(src)
		if err != nil || !info.IsDir() {
			continue
		}
		if err := copyTree(inst.sys, src, dir.dst); err != nil {
			// NOTE: Errors from warning-output writes are intentionally
			// discarded; failing to display a warning should not abort the
			// operation.
			_, _ = fmt.Fprintf(inst.warnWriter, messages.InstallOptionalSkippedFmt, dir.src, err)
		}
	}
}
