// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

package namespace

import (
	"regexp"
	"strings"
)

var (
	idMarkerRegexp    = regexp.MustCompile(`(?i)\[id\]`)
	slugMarkerRegexp  = regexp.MustCompile(`(?i)\[slug\]`)
	otherMarkerRegexp = regexp.MustCompile(`\[[^\[\]]*\]`)
	unsafeCharRegexp  = regexp.MustCompile(`[^A-Za-z0-9._-]`)
	underscoreRuns    = regexp.MustCompile(`_{2,}`)
	dotRuns           = regexp.MustCompile(`\.{2,}`)

	bracketStripper = strings.NewReplacer(
		"[", "", "]", "",
		"(", "", ")", "",
		"{", "", "}", "",
		"<", "", ">", "",
	)
)

// Sanitize turns a raw namespace computation into a safe catalog partition
// name. Two raw values sanitize to the same string exactly when they denote
// the same logical route: [id] and [slug] markers map to the fixed tokens id
// and slug regardless of case, any other bracketed segment maps to param,
// and every character outside [A-Za-z0-9._-] collapses to an underscore.
// The result never has leading/trailing or repeated separators and is
// always lowercase. An unsalvageable input sanitizes to "".
func Sanitize(raw string) string {
	s := idMarkerRegexp.ReplaceAllString(raw, "id")
	s = slugMarkerRegexp.ReplaceAllString(s, "slug")
	s = otherMarkerRegexp.ReplaceAllString(s, "param")
	s = bracketStripper.Replace(s)
	s = unsafeCharRegexp.ReplaceAllString(s, "_")
	s = underscoreRuns.ReplaceAllString(s, "_")
	s = dotRuns.ReplaceAllString(s, ".")
	s = strings.Trim(s, "._")

	return strings.ToLower(s)
}
