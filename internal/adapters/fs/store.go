package fs

import (
	"errors"
	iofs "io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/shrink/internal/core/domain"
	"go.trai.ch/shrink/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.ArtifactStore = (*Store)(nil)

// Store reads a bundler output directory into a Bundle and writes changed artifacts back.
type Store struct {
	walker *Walker
}

// NewStore creates a new Store.
func NewStore(walker *Walker) *Store {
	return &Store{walker: walker}
}

// Load reads every file under dir. Names are slash-separated paths relative to dir.
// Entries whose base name matches one of ignores are skipped. A directory that
// cannot be walked fails the whole load so no artifact is silently left out.
func (s *Store) Load(dir string, ignores []string) (domain.Bundle, error) {
	info, err := os.Stat(dir)
	if err != nil {
		if errors.Is(err, iofs.ErrNotExist) {
			return nil, zerr.With(domain.ErrOutputDirNotFound, "path", dir)
		}
		return nil, zerr.With(zerr.Wrap(err, domain.ErrArtifactReadFailed.Error()), "path", dir)
	}
	if !info.IsDir() {
		return nil, zerr.With(domain.ErrOutputDirNotFound, "path", dir)
	}

	bundle := domain.Bundle{}
	for path, err := range s.walker.WalkFiles(dir, ignores) {
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, domain.ErrArtifactReadFailed.Error()), "path", dir)
		}
		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, domain.ErrArtifactReadFailed.Error()), "path", path)
		}
		name := filepath.ToSlash(rel)

		data, err := os.ReadFile(path) //nolint:gosec // Path comes from walking the output directory
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, domain.ErrArtifactReadFailed.Error()), "path", path)
		}

		if domain.KindForName(name) == domain.KindChunk {
			bundle.Add(domain.NewChunk(name, string(data)))
		} else {
			bundle.Add(domain.NewAsset(name, data))
		}
	}
	return bundle, nil
}

// Save writes back every artifact whose content differs from the file on disk.
// Unchanged files are left untouched.
func (s *Store) Save(dir string, bundle domain.Bundle) (domain.BundleReport, error) {
	report := domain.BundleReport{Artifacts: make([]domain.ArtifactReport, 0, len(bundle))}

	for _, name := range bundle.Names() {
		artifact := bundle[name]
		if !filepath.IsLocal(filepath.FromSlash(name)) {
			return report, zerr.With(domain.ErrArtifactWriteFailed, "artifact", name)
		}
		path := filepath.Join(dir, filepath.FromSlash(name))

		current, err := os.ReadFile(path) //nolint:gosec // Path is confined to the output directory
		missing := errors.Is(err, iofs.ErrNotExist)
		if err != nil && !missing {
			return report, zerr.With(zerr.Wrap(err, domain.ErrArtifactReadFailed.Error()), "path", path)
		}

		data := artifact.Bytes()
		digest := Digest(data)
		changed := missing || Digest(current) != digest

		if changed {
			if err := writeFile(path, data); err != nil {
				return report, err
			}
		}

		report.Artifacts = append(report.Artifacts, domain.ArtifactReport{
			Name:         name,
			Kind:         artifact.Kind.String(),
			OriginalSize: len(current),
			FinalSize:    len(data),
			Digest:       digest,
			Changed:      changed,
		})
	}
	return report, nil
}

func writeFile(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrArtifactWriteFailed.Error()), "path", path)
	}
	if err := os.WriteFile(path, data, domain.FilePerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrArtifactWriteFailed.Error()), "path", path)
	}
	return nil
}
