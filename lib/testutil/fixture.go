// Copyright 2026 The Rubycom Authors
// SPDX-License-Identifier: Apache-2.0

package testutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// WriteFile writes content to name inside a fresh temporary directory
// and returns the absolute path. Leading newlines are trimmed so fixtures
// can be written as indented raw strings starting on their own line.
//
//	path := testutil.WriteFile(t, "commands.yaml", `
//	commands:
//	  - name: hello
//	`)
func WriteFile(t testing.TB, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(strings.TrimLeft(content, "\n")), 0644); err != nil {
		t.Fatalf("writing fixture %s: %v", name, err)
	}
	return path
}
