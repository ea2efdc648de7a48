// Copyright 2026 The Rubycom Authors
// SPDX-License-Identifier: Apache-2.0

// Package manifest builds a [commandtree.Node] from a manifest file.
//
// A manifest declares commands as ordered lists so every supported
// format preserves declaration order:
//
//	commands:
//	  - name: Deploy
//	    commands:
//	      - name: start
//	        summary: Start a deployment
//	        params:
//	          - {name: env, kind: required}
//	          - {name: region, kind: optional, default: "us-east"}
//	          - {name: extra, kind: rest}
//
// An entry with a commands list is a namespace; any other entry is a
// leaf. A document with params and no commands describes a single leaf
// at the root.
//
// Three formats are accepted, chosen by file extension:
//
//   - .yaml, .yml -- YAML (gopkg.in/yaml.v3)
//   - .json, .jsonc -- JSON with comments and trailing commas (tidwall/jsonc)
//   - .toml -- TOML (BurntSushi/toml)
//
// The typical flow:
//
//  1. ReadFile or Parse: bytes in any format → generic document
//  2. Validation against the embedded JSON Schema (schema.json)
//  3. Build: document → command tree, skipping reserved names and
//     decoding defaults with [literal.Decode]
//  4. [commandtree.Validate] on the result
//
// Parameter defaults follow the kind: a required parameter has
// [binding.NoDefault]; an optional parameter without a default gets nil;
// a rest parameter without a default gets an empty list. A string
// default is decoded as a command-line literal, so default: "[1, 2]" is
// a list. Numbers and booleans keep their value; null is nil.
package manifest
