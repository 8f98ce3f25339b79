// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package scholar

import (
	"fmt"
	"os"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/coauthor-engine/pkg/types"
)

// WriteSnapshot writes a profile to a YAML file, overwriting any existing
// file at path.
func WriteSnapshot(profile *types.AuthorProfile, path string) error {
	data, err := yaml.Marshal(profile)
	if err != nil {
		return fmt.Errorf("marshaling profile: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// ReadSnapshot reads a profile back from a YAML snapshot file.
func ReadSnapshot(path string) (*types.AuthorProfile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var profile types.AuthorProfile
	if err := yaml.Unmarshal(data, &profile); err != nil {
		return nil, fmt.Errorf("parsing snapshot %s: %w", path, err)
	}
	return &profile, nil
}
