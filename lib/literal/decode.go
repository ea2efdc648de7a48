// Copyright 2026 The Rubycom Authors
// SPDX-License-Identifier: Apache-2.0

package literal

import (
	"regexp"
	"strconv"
	"strings"
)

// MaxDepth bounds bracket and brace nesting. An element nested deeper
// than this decodes as its raw string.
const MaxDepth = 64

var (
	integerPattern = regexp.MustCompile(`^[+-]?[0-9]+$`)
	floatPattern   = regexp.MustCompile(`^[+-]?([0-9]+\.[0-9]*|\.[0-9]+|[0-9]+)([eE][+-]?[0-9]+)?$`)
)

// Decode converts a raw token into a [Value]. It is total and
// deterministic; see the package documentation for the grammar.
func Decode(raw string) Value {
	return decode(raw, 0)
}

// IsNumeric reports whether raw matches the integer or float grammar.
func IsNumeric(raw string) bool {
	return integerPattern.MatchString(raw) || floatPattern.MatchString(raw)
}

func decode(raw string, depth int) Value {
	if raw == "" {
		return Nil()
	}

	// An integer literal too large for int64 is still a valid float.
	if integerPattern.MatchString(raw) {
		if n, err := strconv.ParseInt(raw, 10, 64); err == nil {
			return Int(n)
		}
	}
	if floatPattern.MatchString(raw) {
		if f, err := strconv.ParseFloat(raw, 64); err == nil {
			return Float(f)
		}
	}

	if strings.EqualFold(raw, "true") {
		return Bool(true)
	}
	if strings.EqualFold(raw, "false") {
		return Bool(false)
	}

	if value, ok := decodeStructured(raw, depth); ok {
		return value
	}

	if interior, ok := unquote(raw); ok {
		// YAML reads a leading # as a comment and ! as a tag. Neither
		// is interpreted here, so the token is kept exactly as typed.
		if strings.HasPrefix(interior, "#") || strings.HasPrefix(interior, "!") {
			return String(raw)
		}
		return String(interior)
	}

	return String(raw)
}

// decodeStructured handles the [..] and {..} forms. It reports false when
// raw is not a well-formed structured literal.
func decodeStructured(raw string, depth int) (Value, bool) {
	if len(raw) < 2 || depth >= MaxDepth {
		return Value{}, false
	}
	opening, closing := raw[0], raw[len(raw)-1]
	isList := opening == '[' && closing == ']'
	isMap := opening == '{' && closing == '}'
	if !isList && !isMap {
		return Value{}, false
	}

	interior := raw[1 : len(raw)-1]
	if strings.TrimSpace(interior) == "" {
		if isList {
			return List(), true
		}
		return Map(), true
	}

	parts, ok := splitTopLevel(interior)
	if !ok {
		return Value{}, false
	}

	if isList {
		items := make([]Value, 0, len(parts))
		for _, part := range parts {
			element := strings.TrimSpace(part)
			if element == "" {
				return Value{}, false
			}
			items = append(items, decode(element, depth+1))
		}
		return Value{kind: KindList, items: items}, true
	}

	entries := make([]Entry, 0, len(parts))
	for _, part := range parts {
		element := strings.TrimSpace(part)
		colon := indexTopLevelColon(element)
		if colon < 0 {
			return Value{}, false
		}
		key, ok := decodeKey(strings.TrimSpace(element[:colon]))
		if !ok {
			return Value{}, false
		}
		entries = append(entries, Entry{
			Key:   key,
			Value: decode(strings.TrimSpace(element[colon+1:]), depth+1),
		})
	}
	return Map(entries...), true
}

// decodeKey accepts a bare identifier or a quoted string.
func decodeKey(raw string) (string, bool) {
	if interior, ok := unquote(raw); ok {
		return interior, true
	}
	if bareKeyPattern.MatchString(raw) {
		return raw, true
	}
	return "", false
}

// unquote strips one pair of matching single or double quotes.
func unquote(raw string) (string, bool) {
	if len(raw) < 2 {
		return "", false
	}
	first, last := raw[0], raw[len(raw)-1]
	if first != last || (first != '"' && first != '\'') {
		return "", false
	}
	return raw[1 : len(raw)-1], true
}

// splitTopLevel splits s on commas that are outside any quotes, brackets,
// or braces. It reports false when the nesting is unbalanced or a quote
// is left open.
func splitTopLevel(s string) ([]string, bool) {
	var parts []string
	var stack []byte
	var quote byte
	start := 0

	for i := 0; i < len(s); i++ {
		c := s[i]
		if quote != 0 {
			if c == quote {
				quote = 0
			}
			continue
		}
		switch c {
		case '"', '\'':
			quote = c
		case '[', '{':
			stack = append(stack, c)
		case ']', '}':
			if len(stack) == 0 || !matches(stack[len(stack)-1], c) {
				return nil, false
			}
			stack = stack[:len(stack)-1]
		case ',':
			if len(stack) == 0 {
				parts = append(parts, s[start:i])
				start = i + 1
			}
		}
	}
	if quote != 0 || len(stack) != 0 {
		return nil, false
	}
	return append(parts, s[start:]), true
}

// indexTopLevelColon returns the index of the first colon outside quotes
// and nesting, or -1.
func indexTopLevelColon(s string) int {
	var quote byte
	depth := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		if quote != 0 {
			if c == quote {
				quote = 0
			}
			continue
		}
		switch c {
		case '"', '\'':
			quote = c
		case '[', '{':
			depth++
		case ']', '}':
			depth--
		case ':':
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}

func matches(opening, closing byte) bool {
	return (opening == '[' && closing == ']') || (opening == '{' && closing == '}')
}
