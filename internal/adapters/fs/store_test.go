package fs_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/shrink/internal/adapters/fs"
	"go.trai.ch/shrink/internal/core/domain"
)

func newStore() *fs.Store {
	return fs.NewStore(fs.NewWalker())
}

func TestStore_Load(t *testing.T) {
	dir := t.TempDir()
	writeTree(t, dir, map[string]string{
		"main.js":            "const a = 1;",
		"main.js.map":        `{"version":3}`,
		"logic.js":           "export const b = 2;",
		"chunks/vendor.mjs":  "export {}",
		"server/handler.cjs": "module.exports = {}",
		"style.css":          "a{}",
	})

	bundle, err := newStore().Load(dir, nil)
	require.NoError(t, err)

	assert.Equal(t, []string{
		"chunks/vendor.mjs",
		"logic.js",
		"main.js",
		"main.js.map",
		"server/handler.cjs",
		"style.css",
	}, bundle.Names())

	assert.True(t, bundle["main.js"].HasCode())
	assert.Equal(t, "const a = 1;", bundle["main.js"].Code)
	assert.True(t, bundle["chunks/vendor.mjs"].HasCode())
	assert.True(t, bundle["server/handler.cjs"].HasCode())
	assert.False(t, bundle["main.js.map"].HasCode())
	assert.Equal(t, []byte(`{"version":3}`), bundle["main.js.map"].Source)
	assert.False(t, bundle["style.css"].HasCode())
}

func TestStore_LoadWithIgnores(t *testing.T) {
	dir := t.TempDir()
	writeTree(t, dir, map[string]string{"main.js": "a", "stats.json": "{}"})

	bundle, err := newStore().Load(dir, []string{"*.json"})
	require.NoError(t, err)

	assert.Equal(t, []string{"main.js"}, bundle.Names())
}

func TestStore_LoadUnreadableSubdirFails(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("directory permissions are not enforced for root")
	}

	dir := t.TempDir()
	writeTree(t, dir, map[string]string{"main.js": "a", "chunks/vendor.js": "b"})
	locked := filepath.Join(dir, "chunks")
	require.NoError(t, os.Chmod(locked, 0o000))
	t.Cleanup(func() { _ = os.Chmod(locked, 0o750) })

	bundle, err := newStore().Load(dir, nil)

	require.ErrorContains(t, err, domain.ErrArtifactReadFailed.Error())
	assert.Nil(t, bundle)
}

func TestStore_LoadMissingDir(t *testing.T) {
	_, err := newStore().Load(filepath.Join(t.TempDir(), "nope"), nil)

	require.ErrorContains(t, err, domain.ErrOutputDirNotFound.Error())
}

func TestStore_LoadFileInsteadOfDir(t *testing.T) {
	dir := t.TempDir()
	writeTree(t, dir, map[string]string{"main.js": "a"})

	_, err := newStore().Load(filepath.Join(dir, "main.js"), nil)

	require.ErrorContains(t, err, domain.ErrOutputDirNotFound.Error())
}

func TestStore_SaveWritesOnlyChanged(t *testing.T) {
	dir := t.TempDir()
	writeTree(t, dir, map[string]string{
		"main.js":     "const answer = 40 + 2;",
		"logic.js":    "let x = 1;",
		"main.js.map": "{}",
	})

	old := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	require.NoError(t, os.Chtimes(filepath.Join(dir, "logic.js"), old, old))

	store := newStore()
	bundle, err := store.Load(dir, nil)
	require.NoError(t, err)
	bundle["main.js"].Code = "const answer=42;"

	report, err := store.Save(dir, bundle)
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(dir, "main.js"))
	require.NoError(t, err)
	assert.Equal(t, "const answer=42;", string(data))

	info, err := os.Stat(filepath.Join(dir, "logic.js"))
	require.NoError(t, err)
	assert.True(t, info.ModTime().Equal(old), "unchanged artifacts must not be rewritten")

	require.Len(t, report.Artifacts, 3)
	assert.Equal(t, domain.ArtifactReport{
		Name:         "main.js",
		Kind:         "chunk",
		OriginalSize: len("const answer = 40 + 2;"),
		FinalSize:    len("const answer=42;"),
		Digest:       fs.Digest([]byte("const answer=42;")),
		Changed:      true,
	}, report.Artifacts[1])
	assert.False(t, report.Artifacts[0].Changed)
	assert.False(t, report.Artifacts[2].Changed)
	assert.Equal(t, "asset", report.Artifacts[2].Kind)
	assert.Equal(t, 1, report.ChangedCount())
	assert.Equal(t, 6, report.Saved())
}

func TestStore_SaveCreatesNewFiles(t *testing.T) {
	dir := t.TempDir()
	bundle := domain.Bundle{}
	bundle.Add(domain.NewChunk("nested/out.js", "x"))

	report, err := newStore().Save(dir, bundle)
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(dir, "nested", "out.js"))
	require.NoError(t, err)
	assert.Equal(t, "x", string(data))
	assert.True(t, report.Artifacts[0].Changed)
	assert.Equal(t, 0, report.Artifacts[0].OriginalSize)
}

func TestStore_SaveRejectsEscapingNames(t *testing.T) {
	dir := t.TempDir()
	bundle := domain.Bundle{}
	bundle.Add(domain.NewChunk("../escape.js", "x"))

	_, err := newStore().Save(dir, bundle)

	require.ErrorContains(t, err, domain.ErrArtifactWriteFailed.Error())
	_, statErr := os.Stat(filepath.Join(filepath.Dir(dir), "escape.js"))
	assert.True(t, os.IsNotExist(statErr))
}
