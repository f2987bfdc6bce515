// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

package pipeline

import "github.com/rs/zerolog"

// Report accumulates the counters of one extraction run. It exists for
// operator logging and CI gating; correctness never depends on it.
type Report struct {
	ScannedFiles int
	Keys         int

	// Generated counts files written (or, in check mode, files that would
	// change); Skipped counts files left untouched because their content
	// was already current.
	Generated int
	Skipped   int

	// Preserved counts non-source-locale values carried over from existing
	// catalogs; Untranslated counts keys still awaiting a translation.
	Preserved    int
	Untranslated int

	Migrated int
}

// Changed reports whether the run produced (or would produce) any file
// change.
func (r *Report) Changed() bool {
	return r.Generated > 0 || r.Migrated > 0
}

func (r *Report) log(logger zerolog.Logger, check bool) {
	event := logger.Info().
		Int("files_scanned", r.ScannedFiles).
		Int("keys", r.Keys).
		Int("generated", r.Generated).
		Int("skipped", r.Skipped).
		Int("preserved", r.Preserved).
		Int("untranslated", r.Untranslated)

	if r.Migrated > 0 {
		event = event.Int("migrated", r.Migrated)
	}

	if check {
		event.Msg("Extraction check finished")

		return
	}

	event.Msg("Extraction finished")
}
