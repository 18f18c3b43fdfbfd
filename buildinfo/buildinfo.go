package buildinfo

// Build vars, that must be passed at build time.
var (
	VersionTag = ""
	GitCommit  = ""
)
