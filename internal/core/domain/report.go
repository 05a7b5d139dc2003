package domain

import "strings"

// ArtifactStatus records what the minify stage did with an artifact.
type ArtifactStatus string

const (
	// StatusMinified indicates the artifact code was replaced by the transform result.
	StatusMinified ArtifactStatus = "minified"
	// StatusExcluded indicates the artifact was protected by the exclusion policy.
	StatusExcluded ArtifactStatus = "excluded"
	// StatusDisabled indicates minification was disabled by the user configuration.
	StatusDisabled ArtifactStatus = "disabled"
	// StatusSkipped indicates the artifact has no code body.
	StatusSkipped ArtifactStatus = "skipped"
	// StatusFailed indicates the transform failed and the original code was kept.
	StatusFailed ArtifactStatus = "failed"
)

// IsTransformed reports whether the artifact went through the minifier successfully.
func (s ArtifactStatus) IsTransformed() bool {
	return s == StatusMinified
}

// NormalizeArtifactStatus converts a string to an ArtifactStatus, defaulting to skipped if unknown.
func NormalizeArtifactStatus(s string) ArtifactStatus {
	switch ArtifactStatus(strings.ToLower(s)) {
	case StatusMinified:
		return StatusMinified
	case StatusExcluded:
		return StatusExcluded
	case StatusDisabled:
		return StatusDisabled
	case StatusFailed:
		return StatusFailed
	default:
		return StatusSkipped
	}
}

// ArtifactReport summarizes one artifact after the build.
type ArtifactReport struct {
	Name         string         `json:"name"`
	Kind         string         `json:"kind"`
	Status       ArtifactStatus `json:"status,omitzero"`
	OriginalSize int            `json:"original_size"`
	FinalSize    int            `json:"final_size"`
	Digest       string         `json:"digest"`
	Changed      bool           `json:"changed"`
}

// BundleReport summarizes a whole bundle after the build.
type BundleReport struct {
	BuildID   string           `json:"build_id,omitzero"`
	Artifacts []ArtifactReport `json:"artifacts"`
}

// Saved returns the total number of bytes removed across all artifacts.
func (r BundleReport) Saved() int {
	saved := 0
	for _, a := range r.Artifacts {
		saved += a.OriginalSize - a.FinalSize
	}
	return saved
}

// ChangedCount returns the number of artifacts whose content changed.
func (r BundleReport) ChangedCount() int {
	n := 0
	for _, a := range r.Artifacts {
		if a.Changed {
			n++
		}
	}
	return n
}
