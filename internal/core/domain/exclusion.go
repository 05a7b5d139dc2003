package domain

import (
	"path"
	"slices"

	"go.trai.ch/zerr"
)

const (
	// DefaultProtectedArtifact is the logic file kept unminified unless overridden.
	DefaultProtectedArtifact = "logic.js"

	// DefaultOverrideEnv names the variable that re-enables minification of protected artifacts.
	DefaultOverrideEnv = "RUNE_MINIFY_LOGIC"

	// overrideEnabled is the only value of the override variable that counts as true.
	overrideEnabled = "1"
)

// ExclusionPolicy decides which artifacts are protected from minification.
// An artifact is protected when its name is in Names or matches one of Patterns,
// unless the OverrideEnv variable is set to exactly "1".
type ExclusionPolicy struct {
	Names       []string
	Patterns    []string
	OverrideEnv string
}

// DefaultExclusionPolicy protects logic.js, bypassable with RUNE_MINIFY_LOGIC=1.
func DefaultExclusionPolicy() ExclusionPolicy {
	return ExclusionPolicy{
		Names:       []string{DefaultProtectedArtifact},
		OverrideEnv: DefaultOverrideEnv,
	}
}

// Validate checks that every pattern is a well-formed glob.
func (p ExclusionPolicy) Validate() error {
	for _, pattern := range p.Patterns {
		if _, err := path.Match(pattern, ""); err != nil {
			return zerr.With(ErrInvalidPattern, "pattern", pattern)
		}
	}
	return nil
}

// Overridden reports whether the override variable is set to "1".
func (p ExclusionPolicy) Overridden(getenv func(string) string) bool {
	if p.OverrideEnv == "" || getenv == nil {
		return false
	}
	return getenv(p.OverrideEnv) == overrideEnabled
}

// Protects reports whether the named artifact matches the policy, ignoring the override.
func (p ExclusionPolicy) Protects(name string) bool {
	if slices.Contains(p.Names, name) {
		return true
	}
	for _, pattern := range p.Patterns {
		if ok, _ := path.Match(pattern, name); ok {
			return true
		}
	}
	return false
}

// Excludes reports whether the named artifact must be left unminified.
func (p ExclusionPolicy) Excludes(name string, getenv func(string) string) bool {
	return p.Protects(name) && !p.Overridden(getenv)
}
