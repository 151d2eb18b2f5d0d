// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package args

import (
	"strings"
	"unicode/utf8"
)

// ParseArguments maps each flag identifier in arguments to its raw payload.
//
// Every token is split on '-' and each non-empty segment is one flag: its
// first character is the identifier and the rest of the segment is the
// payload. A segment with no payload records "true". Later segments overwrite
// earlier ones.
func ParseArguments(arguments []string) map[rune]string {
	return parseArguments(nil, arguments)
}

// parseArguments is ParseArguments with boolean clustering: when a segment
// starts with a Bool flag of s and the next character is also a flag of s,
// the remainder is decoded as further flags rather than as a payload, so
// "-lpXYZ" sets both l and p.
func parseArguments(s Schema, arguments []string) map[rune]string {
	m := make(map[rune]string)
	for _, arg := range arguments {
		for _, seg := range strings.Split(arg, "-") {
			seg = strings.TrimSpace(seg)
			for seg != "" {
				id, size := utf8.DecodeRuneInString(seg)
				rest := seg[size:]
				if rest == "" {
					m[id] = presentPayload
					break
				}
				if s.clusters(id, rest) {
					m[id] = presentPayload
					seg = rest
					continue
				}
				m[id] = rest
				break
			}
		}
	}
	return m
}

func (s Schema) clusters(id rune, rest string) bool {
	if s[id] != Bool {
		return false
	}
	next, _ := utf8.DecodeRuneInString(rest)
	_, ok := s[next]
	return ok
}
