package messages

// Install and registration messages.
const (
	// InstallSystemRequired indicates system is required for install.
	InstallSystemRequired = "install system is required"
	// InstallLayoutRequired indicates a bundle layout is required for install.
	InstallLayoutRequired = "bundle layout is required"
	// InstallBundleDirRequired indicates the fetched bundle path is required.
	InstallBundleDirRequired = "bundle directory is required"
	// InstallPromptRequired indicates confirmation prompts need a handler.
	InstallPromptRequired = "confirmation prompts require a prompt handler; run in an interactive terminal or pass --yes"

	InstallCreateDirFailedFmt  = "failed to create directory %s: %w"
	InstallFailedReadFmt       = "failed to read %s: %w"
	InstallFailedWriteFmt      = "failed to write %s: %w"
	InstallFailedStatFmt       = "failed to stat %s: %w"
	InstallFailedRemoveFmt     = "failed to remove %s: %w"
	InstallFailedCopyFmt       = "failed to copy %s to %s: %w"
	InstallSubtreeMissingFmt   = "bundle is missing required subtree %s"
	InstallOptionalSkippedFmt  = "Skipping optional directory %s: %v\n"
	InstallUnknownLayoutFmt    = "unknown bundle layout %q (supported: %s)"
	InstallDiffPreviewNoChange = "no changes"

	// SnippetSourceFailedFmt formats snippet source read failures.
	SnippetSourceFailedFmt = "failed to read snippet source %s: %v"
	// SnippetEmptyFmt reports an empty extracted configuration snippet.
	SnippetEmptyFmt = "snippet extracted from %s (lines %d-%d) is empty"
)
