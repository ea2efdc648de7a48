// Copyright 2026 The Rubycom Authors
// SPDX-License-Identifier: Apache-2.0

package literal

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Kind identifies which variant a [Value] holds.
type Kind uint8

const (
	KindNil Kind = iota
	KindBool
	KindInt
	KindFloat
	KindString
	KindList
	KindMap
)

var kindNames = [...]string{
	KindNil:    "nil",
	KindBool:   "bool",
	KindInt:    "int",
	KindFloat:  "float",
	KindString: "string",
	KindList:   "list",
	KindMap:    "map",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", k)
}

// Value is a decoded token. The zero Value is nil.
//
// Values are immutable: list and map accessors return copies, and the
// combinators ([Value.Append], [Merge]) build new values.
type Value struct {
	kind    Kind
	boolean bool
	integer int64
	float   float64
	text    string
	items   []Value
	keys    []string
	entries map[string]Value
}

// Entry is one key/value pair of a map value.
type Entry struct {
	Key   string
	Value Value
}

// Nil returns the nil value.
func Nil() Value { return Value{} }

// Bool returns a boolean value.
func Bool(b bool) Value { return Value{kind: KindBool, boolean: b} }

// Int returns an integer value.
func Int(n int64) Value { return Value{kind: KindInt, integer: n} }

// Float returns a floating-point value.
func Float(f float64) Value { return Value{kind: KindFloat, float: f} }

// String returns a string value.
func String(s string) Value { return Value{kind: KindString, text: s} }

// List returns a list holding items in order.
func List(items ...Value) Value {
	copied := make([]Value, len(items))
	copy(copied, items)
	return Value{kind: KindList, items: copied}
}

// Map returns a map holding entries in order. A repeated key keeps its
// first position and its last value.
func Map(entries ...Entry) Value {
	value := Value{kind: KindMap, entries: make(map[string]Value, len(entries))}
	for _, entry := range entries {
		if _, exists := value.entries[entry.Key]; !exists {
			value.keys = append(value.keys, entry.Key)
		}
		value.entries[entry.Key] = entry.Value
	}
	return value
}

// Kind reports which variant v holds.
func (v Value) Kind() Kind { return v.kind }

// IsNil reports whether v is the nil value.
func (v Value) IsNil() bool { return v.kind == KindNil }

// AsBool returns the boolean held by v.
func (v Value) AsBool() (bool, bool) { return v.boolean, v.kind == KindBool }

// AsInt returns the integer held by v.
func (v Value) AsInt() (int64, bool) { return v.integer, v.kind == KindInt }

// AsFloat returns the float held by v.
func (v Value) AsFloat() (float64, bool) { return v.float, v.kind == KindFloat }

// AsString returns the string held by v.
func (v Value) AsString() (string, bool) { return v.text, v.kind == KindString }

// Items returns a copy of the elements of a list value, or nil for any
// other kind.
func (v Value) Items() []Value {
	if v.kind != KindList {
		return nil
	}
	copied := make([]Value, len(v.items))
	copy(copied, v.items)
	return copied
}

// Keys returns the keys of a map value in insertion order, or nil for any
// other kind.
func (v Value) Keys() []string {
	if v.kind != KindMap {
		return nil
	}
	copied := make([]string, len(v.keys))
	copy(copied, v.keys)
	return copied
}

// Lookup returns the value stored under key in a map value.
func (v Value) Lookup(key string) (Value, bool) {
	if v.kind != KindMap {
		return Value{}, false
	}
	entry, ok := v.entries[key]
	return entry, ok
}

// Len returns the number of elements of a list or entries of a map, and
// zero for scalars.
func (v Value) Len() int {
	switch v.kind {
	case KindList:
		return len(v.items)
	case KindMap:
		return len(v.keys)
	}
	return 0
}

// Append returns a list holding v's elements followed by items. If v is
// not a list it becomes the first element.
func (v Value) Append(items ...Value) Value {
	var combined []Value
	if v.kind == KindList {
		combined = make([]Value, 0, len(v.items)+len(items))
		combined = append(combined, v.items...)
	} else {
		combined = make([]Value, 0, len(items)+1)
		combined = append(combined, v)
	}
	combined = append(combined, items...)
	return Value{kind: KindList, items: combined}
}

// Merge combines two mentions of the same name. The result is always a
// list: a list operand contributes its elements, a scalar contributes
// itself. Merging 3 then 7 gives [3, 7]; merging [3, 7] then 9 gives
// [3, 7, 9].
func Merge(existing, next Value) Value {
	if next.kind == KindList {
		return existing.Append(next.items...)
	}
	return existing.Append(next)
}

// Equal reports whether v and other are structurally equal. Map
// comparison ignores key order.
func (v Value) Equal(other Value) bool {
	if v.kind != other.kind {
		return false
	}
	switch v.kind {
	case KindNil:
		return true
	case KindBool:
		return v.boolean == other.boolean
	case KindInt:
		return v.integer == other.integer
	case KindFloat:
		return v.float == other.float
	case KindString:
		return v.text == other.text
	case KindList:
		if len(v.items) != len(other.items) {
			return false
		}
		for i := range v.items {
			if !v.items[i].Equal(other.items[i]) {
				return false
			}
		}
		return true
	case KindMap:
		if len(v.keys) != len(other.keys) {
			return false
		}
		for _, key := range v.keys {
			theirs, ok := other.entries[key]
			if !ok || !v.entries[key].Equal(theirs) {
				return false
			}
		}
		return true
	}
	return false
}

// Interface converts v into plain Go values: nil, bool, int64, float64,
// string, []any, and map[string]any. The result is suitable for JSON and
// CBOR encoders.
func (v Value) Interface() any {
	switch v.kind {
	case KindBool:
		return v.boolean
	case KindInt:
		return v.integer
	case KindFloat:
		return v.float
	case KindString:
		return v.text
	case KindList:
		out := make([]any, len(v.items))
		for i, item := range v.items {
			out[i] = item.Interface()
		}
		return out
	case KindMap:
		out := make(map[string]any, len(v.keys))
		for _, key := range v.keys {
			out[key] = v.entries[key].Interface()
		}
		return out
	}
	return nil
}

// MarshalJSON encodes v as its plain Go form.
func (v Value) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.Interface())
}

var bareKeyPattern = regexp.MustCompile(`^\w+$`)

// String renders v in the literal syntax accepted by [Decode], with
// strings always double-quoted.
func (v Value) String() string {
	var builder strings.Builder
	v.render(&builder)
	return builder.String()
}

func (v Value) render(builder *strings.Builder) {
	switch v.kind {
	case KindNil:
		builder.WriteString("nil")
	case KindBool:
		builder.WriteString(strconv.FormatBool(v.boolean))
	case KindInt:
		builder.WriteString(strconv.FormatInt(v.integer, 10))
	case KindFloat:
		formatted := strconv.FormatFloat(v.float, 'g', -1, 64)
		if !strings.ContainsAny(formatted, ".eEnI") {
			formatted += ".0"
		}
		builder.WriteString(formatted)
	case KindString:
		builder.WriteString(strconv.Quote(v.text))
	case KindList:
		builder.WriteByte('[')
		for i, item := range v.items {
			if i > 0 {
				builder.WriteString(", ")
			}
			item.render(builder)
		}
		builder.WriteByte(']')
	case KindMap:
		builder.WriteByte('{')
		for i, key := range v.keys {
			if i > 0 {
				builder.WriteString(", ")
			}
			if bareKeyPattern.MatchString(key) {
				builder.WriteString(key)
			} else {
				builder.WriteString(strconv.Quote(key))
			}
			builder.WriteString(": ")
			v.entries[key].render(builder)
		}
		builder.WriteByte('}')
	}
}
