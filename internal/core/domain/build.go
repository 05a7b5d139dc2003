package domain

import (
	"strings"

	"go.trai.ch/zerr"
)

// RunMode identifies the kind of host invocation a pipeline stage is asked to join.
type RunMode string

const (
	// RunModeBuild is a one-shot production build.
	RunModeBuild RunMode = "build"
	// RunModeServe is a development server run.
	RunModeServe RunMode = "serve"
)

// OutputFormat is the module-kind descriptor of the emitted code, e.g. "es" or "cjs".
type OutputFormat string

const (
	// FormatES is the ECMAScript module format.
	FormatES OutputFormat = "es"
	// FormatESM is an alias of FormatES used by some hosts.
	FormatESM OutputFormat = "esm"
	// FormatCJS is the CommonJS format.
	FormatCJS OutputFormat = "cjs"
	// FormatIIFE is an immediately-invoked function expression bundle.
	FormatIIFE OutputFormat = "iife"
	// FormatUMD is the universal module definition format.
	FormatUMD OutputFormat = "umd"
	// FormatSystem is the SystemJS format.
	FormatSystem OutputFormat = "system"
)

var knownFormats = []OutputFormat{FormatES, FormatESM, FormatCJS, FormatIIFE, FormatUMD, FormatSystem}

// IsModule reports whether the format belongs to the ECMAScript module family.
func (f OutputFormat) IsModule() bool {
	return strings.HasPrefix(string(f), "es")
}

// IsCommonJS reports whether the format is exactly CommonJS.
func (f OutputFormat) IsCommonJS() bool {
	return f == FormatCJS
}

// IsKnown reports whether the format is one the host can emit.
func (f OutputFormat) IsKnown() bool {
	for _, k := range knownFormats {
		if f == k {
			return true
		}
	}
	return false
}

// OutputOptions describes how the host emitted the bundle.
type OutputOptions struct {
	Format OutputFormat
	Dir    string
}

// BuildConfig is the slice of host build configuration the minify stage reads and patches.
// Minify is nil when the user did not set it, which the host treats as enabled.
type BuildConfig struct {
	Minify *bool
	OutDir string
	Format OutputFormat
	// Ignore holds base-name globs of output entries the host never loads.
	Ignore []string
}

// MinifyExplicitlyDisabled reports whether the user asked for no minification.
func (c BuildConfig) MinifyExplicitlyDisabled() bool {
	return c.Minify != nil && !*c.Minify
}

// WithMinify returns a copy of the configuration with the minify flag set to v.
func (c BuildConfig) WithMinify(v bool) BuildConfig {
	c.Minify = &v
	return c
}

// FailurePolicy controls what happens when a single artifact fails to minify.
type FailurePolicy string

const (
	// FailFast aborts the whole build on the first transform failure.
	FailFast FailurePolicy = "fail"
	// KeepOriginal leaves the failing artifact unminified and continues.
	KeepOriginal FailurePolicy = "keep"
)

// ParseFailurePolicy converts a configuration value to a FailurePolicy.
// An empty value selects FailFast.
func ParseFailurePolicy(s string) (FailurePolicy, error) {
	switch FailurePolicy(strings.ToLower(s)) {
	case "", FailFast:
		return FailFast, nil
	case KeepOriginal:
		return KeepOriginal, nil
	default:
		return "", zerr.With(ErrInvalidFailurePolicy, "value", s)
	}
}

// MinifySettings holds the stage-specific configuration.
type MinifySettings struct {
	Workers   int
	OnError   FailurePolicy
	Exclusion ExclusionPolicy
}

// Project is the fully loaded shrink configuration.
type Project struct {
	Root   string
	Build  BuildConfig
	Minify MinifySettings
}
