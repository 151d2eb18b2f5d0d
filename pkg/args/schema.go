// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package args

import (
	"fmt"
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Schema maps flag identifiers to their value kind.
type Schema map[rune]Kind

// ParseSchema compiles a schema string such as "l,p#,d*".
// Empty entries are skipped. Any malformed entry fails the whole schema.
func ParseSchema(schema string) (Schema, error) {
	s := make(Schema)
	for _, entry := range strings.Split(schema, ",") {
		if entry == "" {
			continue
		}
		id, size := utf8.DecodeRuneInString(entry)
		if !unicode.IsLetter(id) {
			return nil, &Error{
				Kind:  SchemaError,
				Flag:  id,
				Value: entry,
				Msg:   fmt.Sprintf("invalid schema entry %q: id %q is not a letter", entry, id),
			}
		}
		kind, err := entryKind(id, entry, entry[size:])
		if err != nil {
			return nil, err
		}
		if _, dup := s[id]; dup {
			return nil, &Error{
				Kind:  SchemaError,
				Flag:  id,
				Value: entry,
				Msg:   fmt.Sprintf("invalid schema entry %q: id %q is defined more than once", entry, id),
			}
		}
		s[id] = kind
	}
	return s, nil
}

func entryKind(id rune, entry, format string) (Kind, error) {
	switch format {
	case "":
		return Bool, nil
	case "#":
		return Int, nil
	case "*":
		return String, nil
	}
	r, _ := utf8.DecodeRuneInString(format)
	msg := fmt.Sprintf("invalid schema entry %q: format %q not found", entry, r)
	if utf8.RuneCountInString(format) > 1 {
		msg = fmt.Sprintf("invalid schema entry %q: trailing characters after id %q", entry, id)
	}
	return 0, &Error{
		Kind:  SchemaError,
		Flag:  id,
		Value: entry,
		Msg:   msg,
	}
}

// Flags returns the schema's identifiers in ascending order.
func (s Schema) Flags() []rune {
	ids := make([]rune, 0, len(s))
	for id := range s {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// Kind returns the kind of id and whether the schema defines it.
func (s Schema) Kind(id rune) (Kind, bool) {
	k, ok := s[id]
	return k, ok
}

// String renders s in canonical form, identifiers sorted.
func (s Schema) String() string {
	var sb strings.Builder
	for i, id := range s.Flags() {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteRune(id)
		sb.WriteString(s[id].suffix())
	}
	return sb.String()
}
