// Copyright 2026 The Rubycom Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/spf13/pflag"
)

// FlagsFromParams returns a flag set for the tagged fields of params,
// which must point to a struct. Flags keep declaration order in help
// output. An invalid params struct panics: it is a bug in the command,
// not bad input.
//
//	var params resolveParams
//	command := &cli.Command{
//	    Flags: func() *pflag.FlagSet { return cli.FlagsFromParams("resolve", &params) },
//	    Run:   func(ctx context.Context, args []string, logger *slog.Logger) error { ... },
//	}
func FlagsFromParams(name string, params any) *pflag.FlagSet {
	flagSet := pflag.NewFlagSet(name, pflag.ContinueOnError)
	flagSet.SortFlags = false
	if err := BindFlags(params, flagSet); err != nil {
		panic(fmt.Sprintf("cli.FlagsFromParams(%q): %v", name, err))
	}
	return flagSet
}

// BindFlags adds a flag to flagSet for every field of *params tagged
// with flag:"long" or flag:"long,s". The desc tag is the usage line and
// the default tag is parsed as the field's type.
//
// Fields may be string, bool, int, []string (comma-separated default),
// or implement [pflag.Value] through their pointer. Embedded structs
// contribute their own tagged fields, which is how [JSONOutput] and
// [ConfigOption] are shared between commands.
func BindFlags(params any, flagSet *pflag.FlagSet) error {
	value := reflect.ValueOf(params)
	if value.Kind() != reflect.Pointer || value.Elem().Kind() != reflect.Struct {
		return fmt.Errorf("params must be a pointer to a struct, got %T", params)
	}

	fields, err := collectFlagFields(value.Elem(), nil)
	if err != nil {
		return err
	}
	for _, field := range fields {
		if err := field.bind(flagSet); err != nil {
			return fmt.Errorf("field %s: %w", strings.Join(field.path, "."), err)
		}
	}
	return nil
}

// flagField is one tagged struct field, ready to become a flag.
type flagField struct {
	path      []string
	target    any
	long      string
	short     string
	usage     string
	fallback  string
	fieldType reflect.Type
}

func collectFlagFields(structValue reflect.Value, path []string) ([]flagField, error) {
	var fields []flagField
	structType := structValue.Type()

	for i := range structType.NumField() {
		field := structType.Field(i)
		fieldPath := append(path[:len(path):len(path)], field.Name)

		if field.Anonymous && field.Type.Kind() == reflect.Struct {
			embedded, err := collectFlagFields(structValue.Field(i), fieldPath)
			if err != nil {
				return nil, err
			}
			fields = append(fields, embedded...)
			continue
		}

		tag, ok := field.Tag.Lookup("flag")
		if !ok || tag == "" {
			continue
		}
		long, short := parseFlagTag(tag)
		fields = append(fields, flagField{
			path:      fieldPath,
			target:    structValue.Field(i).Addr().Interface(),
			long:      long,
			short:     short,
			usage:     field.Tag.Get("desc"),
			fallback:  field.Tag.Get("default"),
			fieldType: field.Type,
		})
	}
	return fields, nil
}

// parseFlagTag splits "name" into ("name", "") and "name,n" into ("name", "n").
func parseFlagTag(tag string) (string, string) {
	long, short, _ := strings.Cut(tag, ",")
	return long, short
}

func (f flagField) bind(flagSet *pflag.FlagSet) error {
	switch target := f.target.(type) {
	case *string:
		flagSet.StringVarP(target, f.long, f.short, f.fallback, f.usage)

	case *bool:
		fallback := false
		if f.fallback != "" {
			parsed, err := strconv.ParseBool(f.fallback)
			if err != nil {
				return fmt.Errorf("default for --%s: %w", f.long, err)
			}
			fallback = parsed
		}
		flagSet.BoolVarP(target, f.long, f.short, fallback, f.usage)

	case *int:
		fallback := 0
		if f.fallback != "" {
			parsed, err := strconv.Atoi(f.fallback)
			if err != nil {
				return fmt.Errorf("default for --%s: %w", f.long, err)
			}
			fallback = parsed
		}
		flagSet.IntVarP(target, f.long, f.short, fallback, f.usage)

	case *[]string:
		var fallback []string
		if f.fallback != "" {
			fallback = strings.Split(f.fallback, ",")
		}
		flagSet.StringSliceVarP(target, f.long, f.short, fallback, f.usage)

	case pflag.Value:
		if f.fallback != "" {
			if err := target.Set(f.fallback); err != nil {
				return fmt.Errorf("default for --%s: %w", f.long, err)
			}
		}
		flagSet.VarP(target, f.long, f.short, f.usage)

	default:
		return fmt.Errorf("unsupported type %s for flag --%s", f.fieldType, f.long)
	}
	return nil
}
