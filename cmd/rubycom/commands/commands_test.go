// Copyright 2026 The Rubycom Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/dannypurcell/rubycom-sub000/cmd/rubycom/cli"
	"github.com/dannypurcell/rubycom-sub000/lib/binding"
	"github.com/dannypurcell/rubycom-sub000/lib/codec"
	"github.com/dannypurcell/rubycom-sub000/lib/commandtree"
	"github.com/dannypurcell/rubycom-sub000/lib/config"
	"github.com/dannypurcell/rubycom-sub000/lib/literal"
)

const testManifest = `
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

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testTree() *commandtree.Namespace {
	start := commandtree.NewLeaf(
		binding.ParameterSpec{Name: "env", Kind: binding.Required, Default: binding.NoDefault},
		binding.ParameterSpec{Name: "region", Kind: binding.Optional, Default: binding.DefaultOf(literal.String("us-east"))},
		binding.ParameterSpec{Name: "extra", Kind: binding.Rest, Default: binding.DefaultOf(literal.List())},
	)
	start.Summary = "Start a deployment"

	deploy := commandtree.NewNamespace().
		MustAdd("start", start).
		MustAdd("stop", commandtree.NewLeaf())

	return commandtree.NewNamespace().
		MustAdd("Deploy", deploy).
		MustAdd("main", commandtree.NewLeaf(
			binding.ParameterSpec{Name: "verbose", Kind: binding.Optional, Default: binding.DefaultOf(literal.Bool(false))},
		))
}

func TestWriteResolve_Text(t *testing.T) {
	var buffer bytes.Buffer
	tokens := []string{"Deploy", "start", "prod", "--region=eu-west"}
	if err := writeResolve(&buffer, testTree(), tokens, config.Text, discardLogger()); err != nil {
		t.Fatalf("writeResolve() error: %v", err)
	}

	want := `command: Deploy start
summary: Start a deployment
binding:
  env    = "prod"
  region = "eu-west"
  extra  = []
`
	if diff := cmp.Diff(want, buffer.String()); diff != "" {
		t.Errorf("output mismatch (-want +got):\n%s", diff)
	}
}

func TestWriteResolve_TextNoParameters(t *testing.T) {
	var buffer bytes.Buffer
	if err := writeResolve(&buffer, testTree(), []string{"Deploy", "stop"}, config.Text, discardLogger()); err != nil {
		t.Fatalf("writeResolve() error: %v", err)
	}
	if got, want := buffer.String(), "command: Deploy stop\nbinding: (none)\n"; got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

func TestWriteResolve_JSON(t *testing.T) {
	var buffer bytes.Buffer
	tokens := []string{"Deploy", "start", "prod", "1", "[a, b]", "--force", "--level=3"}
	if err := writeResolve(&buffer, testTree(), tokens, config.JSON, discardLogger()); err != nil {
		t.Fatalf("writeResolve() error: %v", err)
	}

	var got map[string]any
	if err := json.Unmarshal(buffer.Bytes(), &got); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, buffer.String())
	}

	want := map[string]any{
		"command":    []any{"Deploy", "start"},
		"summary":    "Start a deployment",
		"parameters": []any{"env", "region", "extra"},
		"binding": map[string]any{
			"env":    "prod",
			"region": float64(1),
			"extra":  []any{[]any{"a", "b"}, map[string]any{"level": float64(3), "force": true}},
		},
		"arguments": map[string]any{
			"positionals": []any{"prod", float64(1), []any{"a", "b"}},
			"options":     map[string]any{"level": float64(3)},
			"flags":       map[string]any{"force": true},
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("JSON mismatch (-want +got):\n%s", diff)
	}
}

func TestWriteResolve_CBOR(t *testing.T) {
	var buffer bytes.Buffer
	tokens := []string{"main", "--verbose"}
	if err := writeResolve(&buffer, testTree(), tokens, config.CBOR, discardLogger()); err != nil {
		t.Fatalf("writeResolve() error: %v", err)
	}

	var record resolutionRecord
	if err := codec.Unmarshal(buffer.Bytes(), &record); err != nil {
		t.Fatalf("output is not CBOR: %v", err)
	}
	if diff := cmp.Diff([]string{"main"}, record.Command); diff != "" {
		t.Errorf("Command mismatch (-want +got):\n%s", diff)
	}
	if record.Binding["verbose"] != true {
		t.Errorf("Binding[verbose] = %v, want true", record.Binding["verbose"])
	}

	// Same input, same bytes.
	var again bytes.Buffer
	if err := writeResolve(&again, testTree(), tokens, config.CBOR, discardLogger()); err != nil {
		t.Fatalf("writeResolve() error: %v", err)
	}
	if !bytes.Equal(buffer.Bytes(), again.Bytes()) {
		t.Error("CBOR output is not deterministic")
	}
}

func TestWriteResolve_Errors(t *testing.T) {
	tests := []struct {
		name     string
		tokens   []string
		category cli.ErrorCategory
		contains string
	}{
		{"unknown command", []string{"Deplyo"}, cli.CategoryNotFound, `did you mean "Deploy"`},
		{"namespace only", []string{"Deploy"}, cli.CategoryNotFound, "start"},
		{"malformed option", []string{"main", "-"}, cli.CategoryValidation, `"-"`},
		{"missing required", []string{"Deploy", "start"}, cli.CategoryValidation, "want at least 1"},
		{"too many", []string{"main", "a", "b"}, cli.CategoryValidation, "wrong number of arguments"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buffer bytes.Buffer
			err := writeResolve(&buffer, testTree(), tt.tokens, config.Text, discardLogger())

			var toolErr *cli.ToolError
			if !errors.As(err, &toolErr) {
				t.Fatalf("writeResolve() error = %v, want *cli.ToolError", err)
			}
			if toolErr.Category != tt.category {
				t.Errorf("Category = %q, want %q", toolErr.Category, tt.category)
			}
			if !strings.Contains(err.Error(), tt.contains) {
				t.Errorf("error = %q, want it to contain %q", err.Error(), tt.contains)
			}
			if buffer.Len() != 0 {
				t.Errorf("wrote %q on failure", buffer.String())
			}
		})
	}
}

func TestWriteComplete(t *testing.T) {
	tests := []struct {
		name    string
		partial []string
		want    string
	}{
		{"root", nil, "Deploy\nmain\n"},
		{"prefix", []string{"De"}, "Deploy\n"},
		{"nested prefix", []string{"Deploy", "st"}, "start\nstop\n"},
		{"nested exact", []string{"Deploy", "sto"}, "stop\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buffer bytes.Buffer
			if err := writeComplete(&buffer, testTree(), tt.partial, &cli.JSONOutput{}); err != nil {
				t.Fatalf("writeComplete() error: %v", err)
			}
			if buffer.String() != tt.want {
				t.Errorf("output = %q, want %q", buffer.String(), tt.want)
			}
		})
	}
}

func TestWriteComplete_NothingToSuggest(t *testing.T) {
	var buffer bytes.Buffer
	err := writeComplete(&buffer, testTree(), []string{"Deploy", "stop"}, &cli.JSONOutput{})

	var exitErr *cli.ExitError
	if !errors.As(err, &exitErr) || exitErr.Code != 1 {
		t.Fatalf("writeComplete() error = %v, want exit code 1", err)
	}
	if buffer.Len() != 0 {
		t.Errorf("output = %q, want nothing", buffer.String())
	}
}

func TestWriteComplete_JSON(t *testing.T) {
	var buffer bytes.Buffer
	output := &cli.JSONOutput{OutputJSON: true}
	if err := writeComplete(&buffer, testTree(), []string{"zzz"}, output); err != nil {
		t.Fatalf("writeComplete() error: %v", err)
	}
	if got := buffer.String(); got != "[]\n" {
		t.Errorf("output = %q, want %q", got, "[]\n")
	}
}
