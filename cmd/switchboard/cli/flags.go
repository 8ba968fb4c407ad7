// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/spf13/pflag"
)

// Bind registers a flag on flagSet for every tagged field of params,
// a pointer to a struct. Fields promoted from embedded structs are
// included, so shared groups such as the table flags or [JSONOutput]
// are declared once and embedded.
//
// Tags:
//
//	flag:"table,t"     long name and optional shorthand
//	desc:"..."         help text
//	default:"zstd"     default value, parsed for the field's type
//
// Supported field types are string, bool, and int. Binding writes the
// defaults into params.
func Bind(params any, flagSet *pflag.FlagSet) error {
	value := reflect.ValueOf(params)
	if value.Kind() != reflect.Pointer || value.Elem().Kind() != reflect.Struct {
		return fmt.Errorf("params must be a pointer to a struct, got %T", params)
	}
	structValue := value.Elem()

	for _, field := range reflect.VisibleFields(structValue.Type()) {
		tag, ok := field.Tag.Lookup("flag")
		if !ok || field.Anonymous {
			continue
		}
		if !field.IsExported() {
			return fmt.Errorf("field %s: flag fields must be exported", field.Name)
		}
		name, shorthand, _ := strings.Cut(tag, ",")
		target := structValue.FieldByIndex(field.Index).Addr().Interface()
		if err := bindFlag(flagSet, target, name, shorthand, field.Tag.Get("desc"), field.Tag.Get("default")); err != nil {
			return fmt.Errorf("field %s: %w", field.Name, err)
		}
	}
	return nil
}

func bindFlag(flagSet *pflag.FlagSet, target any, name, shorthand, description, fallback string) error {
	switch target := target.(type) {
	case *string:
		flagSet.StringVarP(target, name, shorthand, fallback, description)
	case *bool:
		value, err := parseDefault(fallback, false, strconv.ParseBool)
		if err != nil {
			return fmt.Errorf("default for --%s: %w", name, err)
		}
		flagSet.BoolVarP(target, name, shorthand, value, description)
	case *int:
		value, err := parseDefault(fallback, 0, strconv.Atoi)
		if err != nil {
			return fmt.Errorf("default for --%s: %w", name, err)
		}
		flagSet.IntVarP(target, name, shorthand, value, description)
	default:
		return fmt.Errorf("unsupported type %T for flag --%s", target, name)
	}
	return nil
}

func parseDefault[T any](text string, zero T, parse func(string) (T, error)) (T, error) {
	if text == "" {
		return zero, nil
	}
	return parse(text)
}
