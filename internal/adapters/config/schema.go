package config

// Shrinkfile represents the structure of the shrink.yaml configuration file.
type Shrinkfile struct {
	Version string     `yaml:"version"`
	Root    string     `yaml:"root"`
	Build   BuildDTO   `yaml:"build"`
	Minify  *MinifyDTO `yaml:"minify"`
}

// BuildDTO mirrors the host build options the minify stage reads.
type BuildDTO struct {
	OutDir string   `yaml:"outDir"`
	Format string   `yaml:"format"`
	Minify *bool    `yaml:"minify"`
	// Ignore lists base-name globs skipped when loading the output directory.
	Ignore []string `yaml:"ignore"`
}

// MinifyDTO holds the minify stage settings.
type MinifyDTO struct {
	Workers int         `yaml:"workers"`
	OnError string      `yaml:"onError"`
	Exclude *ExcludeDTO `yaml:"exclude"`
}

// ExcludeDTO configures which artifacts are protected from minification.
// Omitted fields keep their defaults; an explicit empty list clears them.
type ExcludeDTO struct {
	Names       []string `yaml:"names"`
	Patterns    []string `yaml:"patterns"`
	OverrideEnv *string  `yaml:"overrideEnv"`
}
