// ABOUTME: package.json manifest decoding for install-target selection
// ABOUTME: Uses easyjson for zero-reflection decoding; unknown keys are skipped

//go:generate easyjson -no_std_marshalers manifest.go

package pkgmanager

import (
	"fmt"
	"os"

	"github.com/mailru/easyjson"
)

// ManifestFileName is the manifest file an install targets.
const ManifestFileName = "package.json"

// Manifest is the subset of package.json pkgfind reads.
//
//easyjson:json
type Manifest struct {
	Name            string            `json:"name"`
	Version         string            `json:"version"`
	Private         bool              `json:"private"`
	Dependencies    map[string]string `json:"dependencies"`
	DevDependencies map[string]string `json:"devDependencies"`
}

// ParseManifest decodes package.json content.
func ParseManifest(data []byte) (*Manifest, error) {
	var m Manifest
	if err := easyjson.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parsing manifest: %w", err)
	}
	return &m, nil
}

// LoadManifest reads and decodes the manifest at path.
func LoadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading manifest: %w", err)
	}
	return ParseManifest(data)
}

// Dependency reports whether name is already declared and under which mode.
func (m *Manifest) Dependency(name string) (InstallMode, bool) {
	if _, ok := m.Dependencies[name]; ok {
		return InstallSave, true
	}
	if _, ok := m.DevDependencies[name]; ok {
		return InstallSaveDev, true
	}
	return InstallDefault, false
}
