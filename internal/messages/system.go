package messages

// Fetch, workspace, and doctor messages.
const (
	// FetchToolMissingFmt reports a required external tool absent from PATH.
	FetchToolMissingFmt = "%s is required but was not found on PATH"
	// FetchCloneFailedFmt formats bundle clone failures with the repository URL.
	FetchCloneFailedFmt = "failed to fetch bundle from %s: %v"

	// WorkspaceCreateFailedFmt formats temporary workspace creation failures.
	WorkspaceCreateFailedFmt = "failed to create temporary workspace: %w"

	// ConfigResolveHomeErrFmt formats home directory resolution failures.
	ConfigResolveHomeErrFmt = "resolve home dir: %w"
	ConfigReadFailedFmt     = "failed to read settings %s: %w"
	ConfigParseFailedFmt    = "failed to parse settings %s: %w"
	ConfigWriteFailedFmt    = "failed to write settings %s: %w"
	ConfigInvalidTomlFmt    = "settings %s is not valid TOML: %w"

	// DoctorCheckNameTool is the check name for external tool availability.
	DoctorCheckNameTool         = "tool"
	DoctorCheckNameStructure    = "structure"
	DoctorCheckNameRegistration = "registration"

	DoctorToolFoundFmt           = "%s found at %s"
	DoctorToolMissingFmt         = "%s not found on PATH"
	DoctorToolMissingRecommend   = "Install git and ensure it is on PATH."
	DoctorDirExistsFmt           = "%s exists"
	DoctorMissingDirFmt          = "missing directory %s"
	DoctorMissingDirRecommend    = "Run `zen install` to install the bundle."
	DoctorPathNotDirFmt          = "%s exists but is not a directory"
	DoctorPathNotDirRecommend    = "Remove the conflicting file and run `zen install`."
	DoctorOptionalMissingFmt     = "optional directory %s is empty or missing"
	DoctorOptionalRecommend      = "Optional commands/agents were not staged; re-run `zen install` if you want them."
	DoctorRegisteredFmt          = "%s references %s"
	DoctorNotRegisteredFmt       = "%s does not reference %s"
	DoctorNotRegisteredRecommend = "Run `zen install` (or `zen snippet`) to register the bundle in CLAUDE.md."
	DoctorConfigFileMissingFmt   = "%s does not exist"
	DoctorReadFailedFmt          = "failed to read %s: %v"
)
