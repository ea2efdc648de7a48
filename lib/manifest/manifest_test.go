// Copyright 2026 The Rubycom Authors
// SPDX-License-Identifier: Apache-2.0

package manifest

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/dannypurcell/rubycom-sub000/lib/binding"
	"github.com/dannypurcell/rubycom-sub000/lib/commandtree"
	"github.com/dannypurcell/rubycom-sub000/lib/literal"
	"github.com/dannypurcell/rubycom-sub000/lib/testutil"
)

const yamlManifest = `
commands:
- name: Deploy
  commands:
  - name: start
    summary: Start a deployment
    params:
    - {name: env, kind: required}
    - {name: region, kind: optional, default: "us-east"}
    - {name: extra, kind: rest}
  - name: stop
- name: main
  params:
  - {name: verbose, kind: optional, default: false}
`

const jsoncManifest = `{
  // Same tree as the YAML fixture.
  "commands": [
    {"name": "Deploy", "commands": [
      {"name": "start", "summary": "Start a deployment", "params": [
        {"name": "env", "kind": "required"},
        {"name": "region", "kind": "optional", "default": "us-east"},
        {"name": "extra", "kind": "rest"},
      ]},
      {"name": "stop"},
    ]},
    {"name": "main", "params": [
      {"name": "verbose", "kind": "optional", "default": false},
    ]},
  ],
}`

const tomlManifest = `
[[commands]]
name = "Deploy"

  [[commands.commands]]
  name = "start"
  summary = "Start a deployment"

    [[commands.commands.params]]
    name = "env"
    kind = "required"

    [[commands.commands.params]]
    name = "region"
    kind = "optional"
    default = "us-east"

    [[commands.commands.params]]
    name = "extra"
    kind = "rest"

  [[commands.commands]]
  name = "stop"

[[commands]]
name = "main"

  [[commands.params]]
  name = "verbose"
  kind = "optional"
  default = false
`

// treeShape flattens a tree into path → parameter summary for comparison.
func treeShape(t *testing.T, root commandtree.Node) map[string][]string {
	t.Helper()
	shape := map[string][]string{}
	err := commandtree.Walk(root, func(path []string, node commandtree.Node) error {
		key := "/"
		for _, segment := range path {
			key += segment + "/"
		}
		switch node := node.(type) {
		case *commandtree.Namespace:
			shape[key] = node.Names()
		case *commandtree.Leaf:
			params := []string{}
			for _, spec := range node.Parameters {
				params = append(params, spec.Name+":"+spec.Kind.String()+"="+spec.Default.String())
			}
			shape[key] = params
		}
		return nil
	})
	if err != nil {
		t.Fatalf("Walk() error: %v", err)
	}
	return shape
}

func TestLoad_AllFormatsAgree(t *testing.T) {
	want := map[string][]string{
		"/":              {"Deploy", "main"},
		"/Deploy/":       {"start", "stop"},
		"/Deploy/start/": {"env:required=<none>", `region:optional="us-east"`, "extra:rest=[]"},
		"/Deploy/stop/":  {},
		"/main/":         {"verbose:optional=false"},
	}

	fixtures := []struct {
		name    string
		content string
	}{
		{"commands.yaml", yamlManifest},
		{"commands.yml", yamlManifest},
		{"commands.jsonc", jsoncManifest},
		{"commands.toml", tomlManifest},
	}

	for _, fixture := range fixtures {
		t.Run(fixture.name, func(t *testing.T) {
			path := testutil.WriteFile(t, fixture.name, fixture.content)

			root, err := Load(path, Options{})
			if err != nil {
				t.Fatalf("Load() error: %v", err)
			}
			if diff := cmp.Diff(want, treeShape(t, root)); diff != "" {
				t.Errorf("tree mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestLoad_Summary(t *testing.T) {
	path := testutil.WriteFile(t, "commands.yaml", yamlManifest)
	root, err := Load(path, Options{})
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	deploy, _ := root.(*commandtree.Namespace).Child("Deploy")
	start, _ := deploy.(*commandtree.Namespace).Child("start")
	if got := start.(*commandtree.Leaf).Summary; got != "Start a deployment" {
		t.Errorf("Summary = %q, want %q", got, "Start a deployment")
	}
}

func TestBuild_ReservedNamesSkipped(t *testing.T) {
	document, err := Parse([]byte(yamlManifest), YAML)
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}

	root, err := Build(document, Options{Reserved: []string{"main", "stop"}})
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}

	want := map[string][]string{
		"/":              {"Deploy"},
		"/Deploy/":       {"start"},
		"/Deploy/start/": {"env:required=<none>", `region:optional="us-east"`, "extra:rest=[]"},
	}
	if diff := cmp.Diff(want, treeShape(t, root)); diff != "" {
		t.Errorf("tree mismatch (-want +got):\n%s", diff)
	}
}

func TestBuild_RootLeaf(t *testing.T) {
	document, err := Parse([]byte(`{"params": [{"name": "a", "kind": "required"}]}`), JSON)
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	root, err := Build(document, Options{})
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}
	leaf, ok := root.(*commandtree.Leaf)
	if !ok {
		t.Fatalf("root = %T, want *commandtree.Leaf", root)
	}
	if len(leaf.Parameters) != 1 || leaf.Parameters[0].Kind != binding.Required {
		t.Errorf("Parameters = %v, want one required parameter", leaf.Parameters)
	}
}

func TestBuild_DefaultsDecoded(t *testing.T) {
	document, err := Parse([]byte(`{"params": [
		{"name": "count", "kind": "optional", "default": 3},
		{"name": "ratio", "kind": "optional", "default": 2.5},
		{"name": "tags", "kind": "optional", "default": "[a, b]"},
		{"name": "quoted", "kind": "optional", "default": "'5'"},
		{"name": "none", "kind": "optional", "default": null},
		{"name": "bare", "kind": "optional"},
		{"name": "more", "kind": "rest", "default": "{k: 1}"}
	]}`), JSON)
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	root, err := Build(document, Options{})
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}

	want := map[string]literal.Value{
		"count":  literal.Int(3),
		"ratio":  literal.Float(2.5),
		"tags":   literal.List(literal.String("a"), literal.String("b")),
		"quoted": literal.String("5"),
		"none":   literal.Nil(),
		"bare":   literal.Nil(),
		"more":   literal.Map(literal.Entry{Key: "k", Value: literal.Int(1)}),
	}
	got := map[string]literal.Value{}
	for _, spec := range root.(*commandtree.Leaf).Parameters {
		value, ok := spec.Default.Value()
		if !ok {
			t.Fatalf("parameter %q has no default", spec.Name)
		}
		got[spec.Name] = value
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("defaults mismatch (-want +got):\n%s", diff)
	}
}

func TestParse_SchemaViolations(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"empty object", `{}`},
		{"commands and params at root", `{"commands": [], "params": []}`},
		{"missing name", `{"commands": [{"params": []}]}`},
		{"empty name", `{"commands": [{"name": ""}]}`},
		{"unknown kind", `{"params": [{"name": "a", "kind": "keyword"}]}`},
		{"required with default", `{"params": [{"name": "a", "kind": "required", "default": "x"}]}`},
		{"structured default", `{"params": [{"name": "a", "kind": "optional", "default": [1]}]}`},
		{"unknown field", `{"commands": [{"name": "a", "help": "x"}]}`},
		{"namespace and leaf", `{"commands": [{"name": "a", "commands": [], "params": []}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.content), JSON)
			var validationErr *ValidationError
			if !errors.As(err, &validationErr) {
				t.Fatalf("Parse() error = %v, want *ValidationError", err)
			}
		})
	}
}

func TestParse_SyntaxErrors(t *testing.T) {
	tests := []struct {
		name   string
		data   string
		format Format
	}{
		{"yaml", "commands: [", YAML},
		{"empty yaml", "", YAML},
		{"json", `{"commands": [`, JSON},
		{"toml", "[[commands]\nname =", TOML},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data), tt.format)
			if err == nil {
				t.Fatal("Parse() should fail")
			}
			var validationErr *ValidationError
			if errors.As(err, &validationErr) {
				t.Errorf("Parse() error = %v, want a syntax error", err)
			}
		})
	}
}

func TestBuild_DuplicateNames(t *testing.T) {
	document, err := Parse([]byte(`{"commands": [{"name": "a"}, {"name": "a"}]}`), JSON)
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	_, err = Build(document, Options{})
	var treeErr *commandtree.InvalidTreeError
	if !errors.As(err, &treeErr) {
		t.Fatalf("Build() error = %v, want *commandtree.InvalidTreeError", err)
	}
}

func TestBuild_DuplicateParameters(t *testing.T) {
	document, err := Parse([]byte(`{"params": [
		{"name": "a", "kind": "required"},
		{"name": "a", "kind": "optional"}
	]}`), JSON)
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	_, err = Build(document, Options{})
	var treeErr *commandtree.InvalidTreeError
	if !errors.As(err, &treeErr) {
		t.Fatalf("Build() error = %v, want *commandtree.InvalidTreeError", err)
	}
}

func TestFormatFromPath(t *testing.T) {
	tests := []struct {
		path    string
		want    Format
		wantErr bool
	}{
		{"a/commands.yaml", YAML, false},
		{"commands.YML", YAML, false},
		{"commands.json", JSON, false},
		{"commands.jsonc", JSON, false},
		{"commands.toml", TOML, false},
		{"commands.ini", "", true},
		{"commands", "", true},
	}
	for _, tt := range tests {
		got, err := FormatFromPath(tt.path)
		if (err != nil) != tt.wantErr {
			t.Errorf("FormatFromPath(%q) error = %v, wantErr %v", tt.path, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("FormatFromPath(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}
}
