// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

package extract

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/rs/zerolog/log"

	"codeberg.org/pixivfe/transcat/message"
)

// callRegexp matches t(<literal>) call sites. The character before t must
// not be part of an identifier, so format("x") or at("x") never match while
// obj.t("x") and a call at line start do. The argument must be one whole
// literal in double, single, or backtick quotes, optionally padded with
// whitespace; anything else (variables, concatenation) fails the match and
// is skipped. (?s) lets literals span multiple lines.
var callRegexp = regexp.MustCompile(
	`(?s)(?:^|[^A-Za-z0-9_$])t\(\s*` +
		`(?:"((?:\\.|[^"\\])*)"` +
		`|'((?:\\.|[^'\\])*)'` +
		"|`((?:\\\\.|[^`\\\\])*)`" +
		`)\s*\)`,
)

// FromFile reads one source file and extracts its translation keys.
func FromFile(path string) ([]Key, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read source file %s: %w", path, err)
	}

	return FromText(string(data), path), nil
}

// FromText scans source text for translation call sites. Exact-duplicate
// message text within the same text collapses to the first occurrence, whose
// line number is the one reported in diagnostics. Messages failing
// validation are dropped with a warning; extraction continues.
func FromText(text, path string) []Key {
	var keys []Key

	seen := map[string]struct{}{}

	for _, m := range callRegexp.FindAllStringSubmatchIndex(text, -1) {
		raw, ok := capturedLiteral(text, m)
		if !ok {
			continue
		}

		msg := unescapeLiteral(raw)
		if _, dup := seen[msg]; dup {
			continue
		}

		seen[msg] = struct{}{}

		line := 1 + strings.Count(text[:m[0]], "\n")

		if err := message.Validate(msg); err != nil {
			log.Warn().
				Err(err).
				Str("file", path).
				Int("line", line).
				Msg("Skipping malformed message")

			continue
		}

		c := message.Classify(msg)

		keys = append(keys, Key{
			Key:       msg,
			Message:   msg,
			Files:     []string{path},
			Variables: c.Variables,
			HasPlural: c.HasPlural,
			HasDate:   c.HasDate,
		})
	}

	return keys
}

// capturedLiteral returns the content of whichever quote-style group
// participated in the match.
func capturedLiteral(text string, m []int) (string, bool) {
	for group := 1; group <= 3; group++ {
		if m[2*group] >= 0 {
			return text[m[2*group]:m[2*group+1]], true
		}
	}

	return "", false
}

// unescapeLiteral resolves the escape sequences a source literal can carry.
// Unknown escapes are kept verbatim, backslash included.
func unescapeLiteral(raw string) string {
	if !strings.ContainsRune(raw, '\\') {
		return raw
	}

	var b strings.Builder

	b.Grow(len(raw))

	for i := 0; i < len(raw); i++ {
		if raw[i] != '\\' || i+1 == len(raw) {
			b.WriteByte(raw[i])

			continue
		}

		i++

		switch raw[i] {
		case 'n':
			b.WriteByte('\n')
		case 'r':
			b.WriteByte('\r')
		case 't':
			b.WriteByte('\t')
		case '\\', '"', '\'', '`':
			b.WriteByte(raw[i])
		default:
			b.WriteByte('\\')
			b.WriteByte(raw[i])
		}
	}

	return b.String()
}
