package ports

import "go.trai.ch/shrink/internal/core/domain"

// ArtifactStore reads and writes the bundler's emitted artifacts.
//
//go:generate mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type ArtifactStore interface {
	// Load reads every file under dir into a bundle keyed by slash-separated relative path.
	// Entries whose base name matches one of ignores are skipped.
	Load(dir string, ignores []string) (domain.Bundle, error)

	// Save writes back the artifacts whose content differs from the file on disk.
	Save(dir string, bundle domain.Bundle) (domain.BundleReport, error)
}
