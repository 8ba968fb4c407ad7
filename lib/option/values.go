// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package option

import (
	"unicode/utf8"

	"github.com/bureau-foundation/switchboard/lib/argument"
)

// Entry is one option/value pair in [Values].
type Entry struct {
	Option Option
	Value  argument.Argument
}

// Values maps options to the values a handler sees. Keys are compared
// with [Option.Equal] and kept in insertion order. The zero Values is
// empty and ready to use.
type Values struct {
	entries []Entry
}

// Set records value for key, replacing the value of an existing key
// equal to it. The stored key is the identity of key without its
// attached value.
func (v *Values) Set(key Option, value argument.Argument) {
	key = key.Identity()
	for i := range v.entries {
		if v.entries[i].Option.Equal(key) {
			v.entries[i].Value = value
			return
		}
	}
	v.entries = append(v.entries, Entry{Option: key, Value: value})
}

// Get returns the value recorded for an option equal to key.
func (v Values) Get(key Option) (argument.Argument, bool) {
	for _, entry := range v.entries {
		if entry.Option.Equal(key) {
			return entry.Value, true
		}
	}
	return argument.Argument{}, false
}

// Lookup finds a value by name: a one-character name is matched as a
// flag, anything longer as a long name.
func (v Values) Lookup(name string) (argument.Argument, bool) {
	if utf8.RuneCountInString(name) == 1 {
		flag, _ := utf8.DecodeRuneInString(name)
		return v.Get(Flag(flag))
	}
	return v.Get(Long(name))
}

// Has reports whether an option equal to key is present.
func (v Values) Has(key Option) bool {
	_, ok := v.Get(key)
	return ok
}

// Len returns the number of entries.
func (v Values) Len() int {
	return len(v.entries)
}

// Entries returns a copy of the entries in insertion order.
func (v Values) Entries() []Entry {
	return append([]Entry(nil), v.entries...)
}
