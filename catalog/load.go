// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

package catalog

import (
	"fmt"
	"os"
	"strings"

	"github.com/tidwall/gjson"
)

// Load reads an existing catalog file back into a key→value mapping. The
// returned error only ever reports a read failure; unparsable content loads
// as an empty mapping so a corrupt catalog degrades to "no existing
// translations" instead of aborting the run.
func Load(path string) (map[string]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog %s: %w", path, err)
	}

	return Parse(string(data)), nil
}

// Parse recovers the key→value mapping from catalog text in any of the
// three formats. Valid JSON takes the gjson fast path. JS/TS modules, and
// JSON that carries this tool's uniform escaping, go through a structural
// scan of the exported object literal: no code is ever evaluated. Multiple
// historical export conventions (default export, assignment-style export)
// are tolerated because the scanner only looks for the object literal
// itself.
func Parse(text string) map[string]string {
	trimmed := strings.TrimSpace(text)

	if gjson.Valid(trimmed) {
		out := map[string]string{}

		gjson.Parse(trimmed).ForEach(func(k, v gjson.Result) bool {
			if v.Type == gjson.String {
				out[k.String()] = v.String()
			}

			return true
		})

		return out
	}

	return parseObjectLiteral(text)
}

// parseObjectLiteral extracts top-level "key": "value" pairs from the first
// object literal in text, skipping comments and tolerating non-string
// values. Anything structurally surprising ends the scan with whatever was
// collected so far.
func parseObjectLiteral(text string) map[string]string {
	out := map[string]string{}

	s := &literalScanner{text: text}
	if !s.seekObjectStart() {
		return out
	}

	for {
		s.skip()

		if s.done() {
			return out
		}

		c := s.text[s.pos]

		if c == '}' {
			return out
		}

		if !isQuote(c) {
			// Not a string key; give up on this entry.
			s.skipValue()

			continue
		}

		key, ok := s.readString()
		if !ok {
			return out
		}

		s.skip()

		if s.done() || s.text[s.pos] != ':' {
			return out
		}

		s.pos++

		s.skip()

		if s.done() {
			return out
		}

		if isQuote(s.text[s.pos]) {
			val, ok := s.readString()
			if !ok {
				return out
			}

			out[key] = val

			continue
		}

		// Nested object, number, identifier: skip without recording.
		s.skipValue()
	}
}

func isQuote(c byte) bool {
	return c == '"' || c == '\'' || c == '`'
}

type literalScanner struct {
	text string
	pos  int
}

func (s *literalScanner) done() bool {
	return s.pos >= len(s.text)
}

// skip advances past whitespace, commas, and both comment styles.
func (s *literalScanner) skip() {
	for !s.done() {
		switch {
		case strings.ContainsRune(" \t\r\n,", rune(s.text[s.pos])):
			s.pos++
		case strings.HasPrefix(s.text[s.pos:], "//"):
			if idx := strings.IndexByte(s.text[s.pos:], '\n'); idx >= 0 {
				s.pos += idx + 1
			} else {
				s.pos = len(s.text)
			}
		case strings.HasPrefix(s.text[s.pos:], "/*"):
			if idx := strings.Index(s.text[s.pos+2:], "*/"); idx >= 0 {
				s.pos += idx + 4
			} else {
				s.pos = len(s.text)
			}
		default:
			return
		}
	}
}

// seekObjectStart positions the scanner just inside the first opening brace
// that sits outside comments and strings, consuming any export header
// tokens along the way.
func (s *literalScanner) seekObjectStart() bool {
	for {
		s.skip()

		if s.done() {
			return false
		}

		c := s.text[s.pos]

		switch {
		case c == '{':
			s.pos++

			return true
		case isQuote(c):
			if _, ok := s.readString(); !ok {
				return false
			}
		default:
			s.pos++
		}
	}
}

// readString consumes one quoted literal and returns its unescaped content.
// The scanner must be positioned on the opening quote.
func (s *literalScanner) readString() (string, bool) {
	quote := s.text[s.pos]
	s.pos++

	start := s.pos

	for !s.done() {
		c := s.text[s.pos]

		if c == '\\' {
			s.pos += 2

			continue
		}

		if c == quote {
			raw := s.text[start:s.pos]
			s.pos++

			return unescape(raw), true
		}

		s.pos++
	}

	return "", false
}

// skipValue consumes a non-string value up to the next top-level comma or
// closing brace, balancing any nested brackets and strings.
func (s *literalScanner) skipValue() {
	depth := 0

	for !s.done() {
		c := s.text[s.pos]

		switch {
		case isQuote(c):
			s.readString()

			continue
		case c == '{' || c == '[' || c == '(':
			depth++
		case c == '}' || c == ']' || c == ')':
			if depth == 0 {
				return
			}

			depth--
		case c == ',' && depth == 0:
			s.pos++

			return
		}

		s.pos++
	}
}
