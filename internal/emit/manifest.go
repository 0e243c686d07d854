// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package emit

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/bookpress/pkg/types"
)

// Manifest describes one converted book's on-disk artifacts.
type Manifest struct {
	Source   string         `json:"source" yaml:"source"`
	Type     string         `json:"source_type" yaml:"source_type"`
	Meta     types.Metadata `json:"metadata,omitempty" yaml:"metadata,omitempty"`
	Chapters []string       `json:"chapters" yaml:"chapters"`
	Book     string         `json:"book" yaml:"book"`
	Created  string         `json:"created" yaml:"created"`
}

// WriteManifest writes manifest.json and manifest.yaml into dir. Both
// carry the same entries; downstream tooling picks whichever it reads.
func WriteManifest(dir string, m Manifest) error {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling manifest JSON: %w", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "manifest.json"), data, 0o644); err != nil {
		return err
	}

	ydata, err := yaml.Marshal(m)
	if err != nil {
		return fmt.Errorf("marshaling manifest YAML: %w", err)
	}
	return os.WriteFile(filepath.Join(dir, "manifest.yaml"), ydata, 0o644)
}
