package domain

import "go.trai.ch/zerr"

var (
	// ErrStageNotConfigured is returned when bundle generation runs before the configure hook.
	ErrStageNotConfigured = zerr.New("minify stage used before configure hook")

	// ErrStageClosed is returned when a hook runs after the stage has been closed.
	ErrStageClosed = zerr.New("minify stage already closed")

	// ErrTransformFailed is returned when the minifier rejects an artifact's code.
	ErrTransformFailed = zerr.New("failed to minify artifact")

	// ErrMinifierPanicked is returned when the minifier panics while transforming code.
	ErrMinifierPanicked = zerr.New("minifier panicked")

	// ErrPoolStopped is returned when work is submitted to a stopped worker pool.
	ErrPoolStopped = zerr.New("worker pool is stopped")

	// ErrPoolAcquireFailed is returned when the worker pool cannot be created.
	ErrPoolAcquireFailed = zerr.New("failed to create worker pool")

	// ErrInvalidWorkerCount is returned when a negative worker count is configured.
	ErrInvalidWorkerCount = zerr.New("worker count must not be negative")

	// ErrConfigNotFound is returned when no shrink.yaml can be found.
	ErrConfigNotFound = zerr.New("could not find shrink.yaml")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrInvalidFormat is returned when the output format is not recognized.
	ErrInvalidFormat = zerr.New("invalid output format, expected one of es, esm, cjs, iife, umd, system")

	// ErrInvalidFailurePolicy is returned when onError is neither 'fail' nor 'keep'.
	ErrInvalidFailurePolicy = zerr.New("invalid failure policy, expected 'fail' or 'keep'")

	// ErrInvalidPattern is returned when an exclusion or ignore pattern is not a valid glob.
	ErrInvalidPattern = zerr.New("invalid glob pattern")

	// ErrOutputDirNotFound is returned when the bundler output directory does not exist.
	ErrOutputDirNotFound = zerr.New("output directory not found")

	// ErrArtifactReadFailed is returned when an emitted artifact cannot be read.
	ErrArtifactReadFailed = zerr.New("failed to read artifact")

	// ErrArtifactWriteFailed is returned when a minified artifact cannot be written back.
	ErrArtifactWriteFailed = zerr.New("failed to write artifact")

	// ErrBuildExecutionFailed is returned when the build fails.
	ErrBuildExecutionFailed = zerr.New("build execution failed")

	// ErrMetricsWriteFailed is returned when the metrics textfile cannot be written.
	ErrMetricsWriteFailed = zerr.New("failed to write metrics file")
)
