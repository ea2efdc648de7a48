// Copyright 2026 The Rubycom Authors
// SPDX-License-Identifier: Apache-2.0

// Package testutil provides shared test helpers for rubycom packages.
//
// [WriteFile] writes a fixture (a manifest or a config file) into a
// per-test temporary directory and returns its path. The directory is
// removed when the test completes.
//
// All helpers call t.Fatalf on failure rather than returning errors,
// since test setup failures are not recoverable.
//
// This package has no rubycom-internal dependencies.
package testutil
