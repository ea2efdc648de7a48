// Copyright 2026 The Rubycom Authors
// SPDX-License-Identifier: Apache-2.0

// Package config provides YAML configuration loading for rubycom.
//
// Configuration is loaded from a single file specified by either the
// RUBYCOM_CONFIG environment variable (via [Load]) or a --config flag
// (via [LoadFile]). There is no ~/.config discovery and no automatic
// file search. [Select] picks between the two and falls back to
// [Default] only when neither names a file.
//
// Variable expansion is performed on path fields after loading:
// ${HOME} and ${VAR:-default} patterns are expanded. No other
// environment variables override config values.
//
// Key exports:
//
//   - [Config] -- manifest path, reserved names, output format, log level
//   - [Default] -- returns a Config with the built-in defaults
//   - [Load], [LoadFile], and [Select] -- the entry points for loading
//
// This package depends on no other rubycom packages.
package config
