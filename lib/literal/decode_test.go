// Copyright 2026 The Rubycom Authors
// SPDX-License-Identifier: Apache-2.0

package literal

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDecode(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want Value
	}{
		{"empty", "", Nil()},
		{"integer", "42", Int(42)},
		{"negative integer", "-7", Int(-7)},
		{"signed integer", "+3", Int(3)},
		{"float", "3.25", Float(3.25)},
		{"leading dot float", ".5", Float(0.5)},
		{"trailing dot float", "1.", Float(1)},
		{"exponent float", "1e3", Float(1000)},
		{"integer overflow becomes float", "99999999999999999999", Float(1e20)},
		{"float overflow stays raw", "1e400", String("1e400")},
		{"true", "true", Bool(true)},
		{"true any case", "TRUE", Bool(true)},
		{"false any case", "False", Bool(false)},
		{"word", "hello", String("hello")},
		{"path", "/tmp/x.log", String("/tmp/x.log")},
		{"empty list", "[]", List()},
		{"empty map", "{}", Map()},
		{"blank list", "[  ]", List()},
		{"list", "[1, 2, 3]", List(Int(1), Int(2), Int(3))},
		{"list irregular whitespace", "[ 1 ,2,   3 ]", List(Int(1), Int(2), Int(3))},
		{"mixed list", "[1, 2.5, true, x]", List(Int(1), Float(2.5), Bool(true), String("x"))},
		{"list with quoted comma", "[a, 'b, c']", List(String("a"), String("b, c"))},
		{"nested list", "[[1, 2], [3]]", List(List(Int(1), Int(2)), List(Int(3)))},
		{
			"map",
			"{a: 1, b: [x, 'y z']}",
			Map(
				Entry{Key: "a", Value: Int(1)},
				Entry{Key: "b", Value: List(String("x"), String("y z"))},
			),
		},
		{"map irregular whitespace", "{ a :1 ,b:  two }", Map(Entry{"a", Int(1)}, Entry{"b", String("two")})},
		{"map quoted key", `{"key one": true}`, Map(Entry{"key one", Bool(true)})},
		{"map empty value", "{a: }", Map(Entry{"a", Nil()})},
		{"map value with colon", "{url: http://host:80}", Map(Entry{"url", String("http://host:80")})},
		{"list of maps", "[{k: v}, {n: 2}]", List(Map(Entry{"k", String("v")}), Map(Entry{"n", Int(2)}))},
		{"single quoted", "'hello world'", String("hello world")},
		{"double quoted", `"hello world"`, String("hello world")},
		{"quoted number stays string", `"42"`, String("42")},
		{"quoted list stays string", "'[1, 2]'", String("[1, 2]")},
		{"quoted hash kept raw", "'#tag'", String("'#tag'")},
		{"quoted bang kept raw", `"!ref"`, String(`"!ref"`)},
		{"mismatched quotes", `'abc"`, String(`'abc"`)},
		{"unbalanced list", "[1, 2", String("[1, 2")},
		{"unbalanced interior", "[1], [2]", String("[1], [2]")},
		{"empty element", "[1,,2]", String("[1,,2]")},
		{"map element without colon", "{a 1}", String("{a 1}")},
		{"map key not identifier", "{a-b: 1}", String("{a-b: 1}")},
		{"unterminated quote in list", "[a, 'b]", String("[a, 'b]")},
		{"mismatched brackets", "[a}", String("[a}")},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got := Decode(test.raw)
			if diff := cmp.Diff(test.want, got); diff != "" {
				t.Errorf("Decode(%q) mismatch (-want +got):\n%s", test.raw, diff)
			}
		})
	}
}

func TestDecode_Deterministic(t *testing.T) {
	inputs := []string{"", "7", "[1, {a: [2, 3]}]", "'q'", "plain", "{x: y, z: 1.5}"}
	for _, raw := range inputs {
		first := Decode(raw)
		second := Decode(raw)
		if !first.Equal(second) {
			t.Errorf("Decode(%q) not deterministic: %v then %v", raw, first, second)
		}
	}
}

func TestDecode_NestingLimit(t *testing.T) {
	raw := strings.Repeat("[", MaxDepth+6) + strings.Repeat("]", MaxDepth+6)
	value := Decode(raw)

	for depth := 0; depth < MaxDepth; depth++ {
		if value.Kind() != KindList || value.Len() != 1 {
			t.Fatalf("depth %d: kind = %v, len = %d, want single-element list", depth, value.Kind(), value.Len())
		}
		value = value.Items()[0]
	}

	text, ok := value.AsString()
	if !ok {
		t.Fatalf("element at depth %d has kind %v, want string", MaxDepth, value.Kind())
	}
	if want := strings.Repeat("[", 6) + strings.Repeat("]", 6); text != want {
		t.Errorf("element at depth %d = %q, want %q", MaxDepth, text, want)
	}
}

func TestIsNumeric(t *testing.T) {
	for _, raw := range []string{"5", "-5", "+5", "-2.5", ".5", "1e9"} {
		if !IsNumeric(raw) {
			t.Errorf("IsNumeric(%q) = false, want true", raw)
		}
	}
	for _, raw := range []string{"", "-", "-v", "--5", "5x", "e5"} {
		if IsNumeric(raw) {
			t.Errorf("IsNumeric(%q) = true, want false", raw)
		}
	}
}
