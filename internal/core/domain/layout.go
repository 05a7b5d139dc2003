package domain

const (
	// ConfigFileName is the name of the project configuration file.
	ConfigFileName = "shrink.yaml"

	// DefaultOutDir is the bundler output directory used when none is configured.
	DefaultOutDir = "dist"

	// StageName is the registered name of the minify stage.
	StageName = "shrink:minify"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)
