package messages

// CLI messages for user-facing commands and prompts.
const (
	// RootUse is the CLI command name.
	RootUse = "zen"
	// RootShort is the short description for the root command.
	RootShort = "Code Zen coding-standards installer"

	// VersionCommitFmt formats the commit hash for version display.
	VersionCommitFmt = "commit %s"
	VersionBuildFmt  = "built %s"
	VersionFullFmt   = "%s (%s)"
	VersionTemplate  = "{{.Version}}\n"

	// InstallUse is the install command name.
	InstallUse   = "install"
	InstallShort = "Install the Code Zen bundle into your Claude profile"

	InstallFlagYes    = "Accept all confirmation prompts without asking"
	InstallFlagLayout = "Bundle layout variant (code-zen or zen-code-standards); the choice is saved to the settings file"
	InstallFlagRepo   = "Clone the bundle from an alternate repository URL"
	InstallFlagBranch = "Clone an alternate branch of the bundle repository"

	InstallFetchingFmt          = "Fetching %s (%s)...\n"
	InstallReplacePromptFmt     = "%s already exists. Replace it with a fresh copy?"
	InstallCancelled            = "Installation cancelled. Nothing was changed."
	InstallCreateConfigFmt      = "%s does not exist. Create it with the Code Zen configuration block?"
	InstallAppendConfigFmt      = "Append the Code Zen configuration block to %s?"
	InstallAlreadyConfiguredFmt = "%s already references %s; configuration unchanged.\n"
	InstallManualFallbackHeader = "Add the following block to your CLAUDE.md to finish setup:"
	InstallStagedFmt            = "Installed bundle to %s\n"
	InstallRegisteredFmt        = "Registered %s in %s\n"
	InstallCompleteFmt          = "Code Zen installed. New Claude sessions will pick up %s.\n"
	InstallTruncatedDiffNote    = "(diff truncated)"

	// PromptYesDefaultFmt formats yes/no prompts with yes as default.
	PromptYesDefaultFmt   = "%s [Y/n]: "
	PromptNoDefaultFmt    = "%s [y/N]: "
	PromptRetryYesNo      = "Please answer y or n."
	PromptInvalidResponse = "invalid response %q"

	// SnippetUse is the snippet command name.
	SnippetUse   = "snippet"
	SnippetShort = "Print the CLAUDE.md configuration block"

	// DoctorUse is the doctor command name.
	DoctorUse   = "doctor"
	DoctorShort = "Check the health of the Code Zen installation"

	DoctorHealthCheckFmt  = "Checking Code Zen installation under %s\n\n"
	DoctorResultLineFmt   = "%s %s: %s\n"
	DoctorRecommendFmt    = "       %s\n"
	DoctorStatusOKLabel   = "[OK]  "
	DoctorStatusWarnLabel = "[WARN]"
	DoctorStatusFailLabel = "[FAIL]"
	DoctorAllChecksPassed = "\nAll checks passed.\n"
	DoctorChecksFailed    = "\nSome checks failed.\n"
)
