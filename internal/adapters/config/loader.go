// Package config provides the configuration loader for shrink.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"go.trai.ch/shrink/internal/core/domain"
	"go.trai.ch/shrink/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// supportedVersion is the only schema version this loader understands.
const supportedVersion = "1"

var _ ports.ConfigLoader = (*Loader)(nil)

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	Logger ports.Logger
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger}
}

// Load reads the shrink.yaml discovered from cwd and returns the validated project.
// When no file exists in cwd or any parent, the defaults apply with cwd as the root.
func (l *Loader) Load(cwd string) (*domain.Project, error) {
	configPath, err := l.findConfiguration(cwd)
	if err != nil {
		return nil, err
	}
	if configPath == "" {
		root, err := filepath.Abs(cwd)
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "cwd", cwd)
		}
		return defaultProject(root), nil
	}

	var shrinkfile Shrinkfile
	if err := readAndUnmarshalYAML(configPath, &shrinkfile); err != nil {
		return nil, zerr.With(err, "path", configPath)
	}

	if shrinkfile.Version != "" && shrinkfile.Version != supportedVersion {
		l.Logger.Warn(fmt.Sprintf("unknown version %q in %s, assuming %s",
			shrinkfile.Version, domain.ConfigFileName, supportedVersion))
	}

	project, err := toProject(resolveRoot(configPath, shrinkfile.Root), &shrinkfile)
	if err != nil {
		return nil, zerr.With(err, "path", configPath)
	}
	return project, nil
}

// DiscoverRoot walks up from cwd to find the directory containing shrink.yaml.
func (l *Loader) DiscoverRoot(cwd string) (string, error) {
	configPath, err := l.findConfiguration(cwd)
	if err != nil {
		return "", err
	}
	if configPath == "" {
		return "", zerr.With(domain.ErrConfigNotFound, "cwd", cwd)
	}
	return filepath.Dir(configPath), nil
}

// findConfiguration returns the nearest shrink.yaml at or above cwd,
// or an empty path when there is none.
func (l *Loader) findConfiguration(cwd string) (string, error) {
	currentDir, err := filepath.Abs(cwd)
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "cwd", cwd)
	}

	for {
		configPath := filepath.Join(currentDir, domain.ConfigFileName)
		if info, err := os.Stat(configPath); err == nil && !info.IsDir() {
			return configPath, nil
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			// Reached root
			return "", nil
		}
		currentDir = parentDir
	}
}

func defaultProject(root string) *domain.Project {
	root = filepath.Clean(root)
	return &domain.Project{
		Root: root,
		Build: domain.BuildConfig{
			OutDir: filepath.Join(root, domain.DefaultOutDir),
			Format: domain.FormatES,
		},
		Minify: domain.MinifySettings{
			OnError:   domain.FailFast,
			Exclusion: domain.DefaultExclusionPolicy(),
		},
	}
}

func toProject(root string, file *Shrinkfile) (*domain.Project, error) {
	project := defaultProject(root)

	if file.Build.OutDir != "" {
		project.Build.OutDir = resolvePath(root, file.Build.OutDir)
	}
	if file.Build.Format != "" {
		format := domain.OutputFormat(file.Build.Format)
		if !format.IsKnown() {
			return nil, zerr.With(zerr.With(domain.ErrInvalidFormat, "field", "build.format"), "value", file.Build.Format)
		}
		project.Build.Format = format
	}
	project.Build.Minify = file.Build.Minify

	for _, pattern := range file.Build.Ignore {
		if _, err := filepath.Match(pattern, ""); err != nil {
			return nil, zerr.With(zerr.With(domain.ErrInvalidPattern, "field", "build.ignore"), "value", pattern)
		}
	}
	project.Build.Ignore = file.Build.Ignore

	if file.Minify == nil {
		return project, nil
	}

	if file.Minify.Workers < 0 {
		return nil, zerr.With(zerr.With(domain.ErrInvalidWorkerCount, "field", "minify.workers"), "value", file.Minify.Workers)
	}
	project.Minify.Workers = file.Minify.Workers

	policy, err := domain.ParseFailurePolicy(file.Minify.OnError)
	if err != nil {
		return nil, zerr.With(err, "field", "minify.onError")
	}
	project.Minify.OnError = policy

	if exclude := file.Minify.Exclude; exclude != nil {
		if exclude.Names != nil {
			project.Minify.Exclusion.Names = exclude.Names
		}
		project.Minify.Exclusion.Patterns = exclude.Patterns
		if exclude.OverrideEnv != nil {
			project.Minify.Exclusion.OverrideEnv = *exclude.OverrideEnv
		}
	}
	if err := project.Minify.Exclusion.Validate(); err != nil {
		return nil, zerr.With(err, "field", "minify.exclude.patterns")
	}

	return project, nil
}

func resolveRoot(configPath, configuredRoot string) string {
	configDir := filepath.Dir(configPath)
	if configuredRoot == "" {
		return filepath.Clean(configDir)
	}
	return resolvePath(configDir, configuredRoot)
}

func resolvePath(base, path string) string {
	if filepath.IsAbs(path) {
		return filepath.Clean(path)
	}
	return filepath.Clean(filepath.Join(base, path))
}

// readAndUnmarshalYAML reads a YAML file and unmarshals it into the target struct.
func readAndUnmarshalYAML[T any](configPath string, target *T) error {
	// #nosec G304 -- configPath is discovered by the loader
	configFile, err := os.ReadFile(configPath)
	if err != nil {
		return zerr.Wrap(err, domain.ErrConfigReadFailed.Error())
	}

	if parseErr := yaml.Unmarshal(configFile, target); parseErr != nil {
		return zerr.Wrap(parseErr, domain.ErrConfigParseFailed.Error())
	}

	return nil
}
