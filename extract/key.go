// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

package extract

// Key is one unique message string observed in the source tree.
//
// The message text itself is the lookup key in every locale's catalog; this
// is a content-addressed scheme, not an opaque identifier. Key and Message
// hold equal strings: Key is the map key, Message is the source-locale
// display value.
type Key struct {
	Key     string
	Message string

	// Files lists every path the message was found in, sorted and
	// deduplicated for deterministic serialization.
	Files []string

	// Variables holds the distinct interpolation variable names in
	// first-occurrence order.
	Variables []string

	HasPlural bool
	HasDate   bool

	// Namespace is assigned after extraction. Empty means ungrouped,
	// which downstream treats as the reserved "common" namespace.
	Namespace string
}
