package adapter

import (
	"os"
	"path/filepath"
	"testing"

	m "github.com/mouse-blink/modegen/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) m.Path {
	t.Helper()

	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	return m.Path(path)
}

func TestLocalConfigSource_LoadJSON(t *testing.T) {
	t.Parallel()

	path := writeFile(t, t.TempDir(), "mode.config.json",
		`{"variableName":"myDarkMode","persist":{"type":"localStorage","custom":false}}`)

	raw, err := NewLocalConfigSource().Load(path)
	require.NoError(t, err)

	assert.Equal(t, "myDarkMode", raw["variableName"])
	assert.Equal(t, map[string]any{"type": "localStorage", "custom": false}, raw["persist"])
}

func TestLocalConfigSource_LoadYAML(t *testing.T) {
	t.Parallel()

	path := writeFile(t, t.TempDir(), "mode.config.yml", `
variableName: theme
defaultMode: dark
apply:
  querySelector: body
  lightClassName: null
`)

	raw, err := NewLocalConfigSource().Load(path)
	require.NoError(t, err)

	assert.Equal(t, "theme", raw["variableName"])
	assert.Equal(t, "dark", raw["defaultMode"])

	apply, ok := raw["apply"].(map[string]any)
	require.True(t, ok, "nested mappings decode to map[string]any")
	assert.Equal(t, "body", apply["querySelector"])
	assert.Contains(t, apply, "lightClassName")
	assert.Nil(t, apply["lightClassName"])
}

func TestLocalConfigSource_LoadErrors(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	tests := []struct {
		name string
		path m.Path
	}{
		{"missing file", m.Path(filepath.Join(dir, "nope.json"))},
		{"bad json", writeFile(t, dir, "bad.json", `{"variableName":`)},
		{"json array", writeFile(t, dir, "array.json", `["x"]`)},
		{"json null", writeFile(t, dir, "null.json", `null`)},
		{"yaml scalar", writeFile(t, dir, "scalar.yaml", `just text`)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewLocalConfigSource().Load(tt.path)
			assert.Error(t, err)
		})
	}
}

func TestLocalConfigSource_FindExplicitPath(t *testing.T) {
	t.Parallel()

	path, err := NewLocalConfigSource().Find("custom.json")
	require.NoError(t, err)
	assert.Equal(t, m.Path("custom.json"), path)
}

func TestLocalConfigSource_FindDefaults(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	src := NewLocalConfigSource()

	_, err := src.Find("")
	require.ErrorIs(t, err, ErrConfigNotFound)

	writeFile(t, dir, "mode.config.yaml", "variableName: x\n")

	path, err := src.Find("")
	require.NoError(t, err)
	assert.Equal(t, m.Path("mode.config.yaml"), path)

	writeFile(t, dir, "mode.config.json", `{"variableName":"x"}`)

	path, err = src.Find("")
	require.NoError(t, err)
	assert.Equal(t, m.Path("mode.config.json"), path)
}
