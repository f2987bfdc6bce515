// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

package message

import "regexp"

// Classification describes the structural features of one message string.
type Classification struct {
	// Variables holds the distinct interpolation variable names,
	// in first-seen order.
	Variables []string

	HasPlural bool
	HasDate   bool
}

var (
	// variableRegexp matches a single curly-brace-delimited identifier token.
	// ICU argument-type tags like {count, plural, ...} contain commas or
	// spaces and therefore never match.
	variableRegexp = regexp.MustCompile(`\{([A-Za-z_$][A-Za-z0-9_$]*)\}`)

	// pluralRegexp and dateRegexp match ICU argument-type tags anywhere in
	// the text. Detection is presence-only; the tag's sub-rules are not
	// parsed or validated.
	pluralRegexp = regexp.MustCompile(`\{\s*[A-Za-z_$][A-Za-z0-9_$]*\s*,\s*plural\s*,`)
	dateRegexp   = regexp.MustCompile(`\{\s*[A-Za-z_$][A-Za-z0-9_$]*\s*,\s*(?:date|time)\s*[,}]`)
)

// Classify reports the interpolation variables, pluralization, and date/time
// formatting used by a message. Each distinct variable name is collected
// once, at the position of its first occurrence.
func Classify(msg string) Classification {
	var c Classification

	seen := map[string]struct{}{}

	for _, m := range variableRegexp.FindAllStringSubmatch(msg, -1) {
		name := m[1]
		if _, ok := seen[name]; ok {
			continue
		}

		seen[name] = struct{}{}

		c.Variables = append(c.Variables, name)
	}

	c.HasPlural = pluralRegexp.MatchString(msg)
	c.HasDate = dateRegexp.MatchString(msg)

	return c
}
