package adapter

import (
	"encoding/json"
	"fmt"
	"os"

	m "github.com/mouse-blink/modegen/internal/model"
)

// ManifestStore persists and retrieves batch manifests.
type ManifestStore interface {
	SaveManifest(path m.Path, manifest m.Manifest) error
	LoadManifest(path m.Path) (m.Manifest, error)
}

// LocalManifestStore keeps manifests as indented JSON files.
type LocalManifestStore struct {
	sink OutputSink
}

// NewManifestStore constructs a ManifestStore writing through sink.
func NewManifestStore(sink OutputSink) *LocalManifestStore {
	return &LocalManifestStore{sink: sink}
}

// SaveManifest implements ManifestStore.
func (s *LocalManifestStore) SaveManifest(path m.Path, manifest m.Manifest) error {
	data, err := json.MarshalIndent(manifest, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding manifest: %w", err)
	}

	return s.sink.Write(path, append(data, '\n'))
}

// LoadManifest implements ManifestStore.
func (s *LocalManifestStore) LoadManifest(path m.Path) (m.Manifest, error) {
	data, err := os.ReadFile(string(path))
	if err != nil {
		return m.Manifest{}, fmt.Errorf("reading manifest %s: %w", path, err)
	}

	var manifest m.Manifest
	if err := json.Unmarshal(data, &manifest); err != nil {
		return m.Manifest{}, fmt.Errorf("decoding manifest %s: %w", path, err)
	}

	return manifest, nil
}
