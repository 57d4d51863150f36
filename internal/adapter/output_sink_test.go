package adapter

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	m "github.com/mouse-blink/modegen/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalOutputSink_WriteCreatesDirsAndReplaces(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "mode.js")
	sink := NewLocalOutputSink()

	require.NoError(t, sink.Write(m.Path(path), []byte("first")))
	require.NoError(t, sink.Write(m.Path(path), []byte("second")))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "second", string(data))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o644), info.Mode().Perm())

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temporary files must not be left behind")
}

func TestLocalOutputSink_WriteIntoFileFails(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	blocker := filepath.Join(dir, "blocker")
	require.NoError(t, os.WriteFile(blocker, nil, 0o644))

	err := NewLocalOutputSink().Write(m.Path(filepath.Join(blocker, "mode.js")), []byte("x"))
	assert.Error(t, err)
}

func TestWriterSink_AppendsNewline(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, NewWriterSink(&buf).Write("ignored.js", []byte(";x;")))

	assert.Equal(t, ";x;\n", buf.String())
}

func TestLocalManifestStore_RoundTrip(t *testing.T) {
	t.Parallel()

	path := m.Path(filepath.Join(t.TempDir(), "manifest.json"))
	store := NewManifestStore(NewLocalOutputSink())

	manifest := m.Manifest{
		RunID:     "2f1b0e1c-6c55-4d47-8d0e-7ad2d6f1b1a4",
		CreatedAt: time.Date(2026, 10, 18, 12, 0, 0, 0, time.UTC),
		Artifacts: []m.Artifact{
			{Config: "a.json", Output: "out/a.js", VariableName: "a", Size: 10, SHA256: "abc", Bindings: 3},
		},
	}

	require.NoError(t, store.SaveManifest(path, manifest))

	loaded, err := store.LoadManifest(path)
	require.NoError(t, err)
	assert.Equal(t, manifest, loaded)

	data, err := os.ReadFile(string(path))
	require.NoError(t, err)
	assert.Contains(t, string(data), `"runId": "2f1b0e1c-6c55-4d47-8d0e-7ad2d6f1b1a4"`)
}

func TestLocalManifestStore_LoadMissing(t *testing.T) {
	t.Parallel()

	_, err := NewManifestStore(NewLocalOutputSink()).LoadManifest(m.Path(filepath.Join(t.TempDir(), "none.json")))
	assert.Error(t, err)
}
