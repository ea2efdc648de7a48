// Copyright 2026 The Rubycom Authors
// SPDX-License-Identifier: Apache-2.0

package manifest

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/santhosh-tekuri/jsonschema/v5"
	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"
)

// Document is a parsed manifest. The root behaves like a nameless
// [Command].
type Document struct {
	Summary  string    `json:"summary,omitempty"`
	Commands []Command `json:"commands,omitempty"`
	Params   []Param   `json:"params,omitempty"`
}

// Command is one manifest entry. Commands != nil makes it a namespace.
type Command struct {
	Name     string    `json:"name"`
	Summary  string    `json:"summary,omitempty"`
	Commands []Command `json:"commands,omitempty"`
	Params   []Param   `json:"params,omitempty"`
}

// Param declares one leaf parameter.
type Param struct {
	Name string `json:"name"`
	Kind string `json:"kind"`

	// Default is the JSON form of the declared default, nil when absent.
	// An explicit null is the four bytes "null".
	Default json.RawMessage `json:"default,omitempty"`
}

// ValidationError reports a manifest that does not match the schema.
type ValidationError struct {
	Err error
}

func (e *ValidationError) Error() string {
	return "manifest does not match schema: " + e.Err.Error()
}

func (e *ValidationError) Unwrap() error { return e.Err }

//go:embed schema.json
var schemaJSON []byte

const schemaURL = "schema://manifest.json"

var schema = compileSchema()

func compileSchema() *jsonschema.Schema {
	compiler := jsonschema.NewCompiler()
	compiler.Draft = jsonschema.Draft2020
	if err := compiler.AddResource(schemaURL, bytes.NewReader(schemaJSON)); err != nil {
		panic("manifest: adding schema: " + err.Error())
	}
	return compiler.MustCompile(schemaURL)
}

// Parse decodes data in the given format, validates it against the
// manifest schema, and returns the document.
func Parse(data []byte, format Format) (*Document, error) {
	normalized, err := toJSON(data, format)
	if err != nil {
		return nil, fmt.Errorf("parsing %s manifest: %w", format, err)
	}

	decoder := json.NewDecoder(bytes.NewReader(normalized))
	decoder.UseNumber()
	var generic any
	if err := decoder.Decode(&generic); err != nil {
		return nil, fmt.Errorf("parsing %s manifest: %w", format, err)
	}
	if err := schema.Validate(generic); err != nil {
		return nil, &ValidationError{Err: err}
	}

	var document Document
	if err := json.Unmarshal(normalized, &document); err != nil {
		return nil, fmt.Errorf("parsing %s manifest: %w", format, err)
	}
	return &document, nil
}

// toJSON converts every accepted format to plain JSON so one schema and
// one set of struct tags serve them all.
func toJSON(data []byte, format Format) ([]byte, error) {
	switch format {
	case JSON:
		return jsonc.ToJSON(data), nil
	case YAML:
		var generic any
		if err := yaml.Unmarshal(data, &generic); err != nil {
			return nil, err
		}
		if generic == nil {
			return nil, errors.New("document is empty")
		}
		return json.Marshal(generic)
	case TOML:
		var generic map[string]any
		if err := toml.Unmarshal(data, &generic); err != nil {
			return nil, err
		}
		return json.Marshal(generic)
	default:
		return nil, fmt.Errorf("unknown format %q", format)
	}
}

// ReadFile reads and parses the manifest at path, choosing the format
// from the file extension.
func ReadFile(path string) (*Document, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	document, err := Parse(data, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return document, nil
}
