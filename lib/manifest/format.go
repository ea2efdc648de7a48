// Copyright 2026 The Rubycom Authors
// SPDX-License-Identifier: Apache-2.0

package manifest

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Format is a manifest serialization.
type Format string

const (
	YAML Format = "yaml"
	JSON Format = "json"
	TOML Format = "toml"
)

// FormatFromPath picks the format for path by its extension.
func FormatFromPath(path string) (Format, error) {
	switch extension := strings.ToLower(filepath.Ext(path)); extension {
	case ".yaml", ".yml":
		return YAML, nil
	case ".json", ".jsonc":
		return JSON, nil
	case ".toml":
		return TOML, nil
	default:
		return "", fmt.Errorf("unsupported manifest extension %q (want .yaml, .yml, .json, .jsonc, or .toml)", extension)
	}
}
