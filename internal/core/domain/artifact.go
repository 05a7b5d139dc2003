package domain

import (
	"path"
	"slices"
	"strings"
)

// ArtifactKind distinguishes code chunks from non-code assets in a bundle.
type ArtifactKind uint8

const (
	// KindChunk is an executable code artifact produced by code generation.
	KindChunk ArtifactKind = iota
	// KindAsset is a non-code artifact such as a source map or binary file.
	KindAsset
)

// String returns the string representation of the ArtifactKind.
func (k ArtifactKind) String() string {
	switch k {
	case KindChunk:
		return "chunk"
	case KindAsset:
		return "asset"
	default:
		return "unknown"
	}
}

// Artifact is one named unit of build output owned by the host bundler.
// Only chunks carry a code body; assets keep their raw bytes in Source.
type Artifact struct {
	Name   string
	Kind   ArtifactKind
	Code   string
	Source []byte
}

// NewChunk creates a code artifact.
func NewChunk(name, code string) *Artifact {
	return &Artifact{Name: name, Kind: KindChunk, Code: code}
}

// NewAsset creates a non-code artifact.
func NewAsset(name string, source []byte) *Artifact {
	return &Artifact{Name: name, Kind: KindAsset, Source: source}
}

// HasCode reports whether the artifact exposes a mutable code body.
func (a *Artifact) HasCode() bool {
	return a != nil && a.Kind == KindChunk
}

// Bytes returns the artifact content as it would be written to disk.
func (a *Artifact) Bytes() []byte {
	if a.HasCode() {
		return []byte(a.Code)
	}
	return a.Source
}

// Bundle maps artifact names to artifacts. The host owns the collection;
// pipeline stages mutate entries in place and never replace the map.
type Bundle map[string]*Artifact

// Add inserts the artifact under its own name.
func (b Bundle) Add(a *Artifact) {
	b[a.Name] = a
}

// Names returns the artifact names in lexical order.
func (b Bundle) Names() []string {
	names := make([]string, 0, len(b))
	for name := range b {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// codeExtensions are the file extensions loaded as chunks.
var codeExtensions = []string{".js", ".mjs", ".cjs"}

// KindForName classifies an emitted file by its extension.
func KindForName(name string) ArtifactKind {
	ext := strings.ToLower(path.Ext(name))
	if slices.Contains(codeExtensions, ext) {
		return KindChunk
	}
	return KindAsset
}
