// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

/*
Package pipeline orchestrates one extraction run end to end.

The run proceeds in fixed phases: migrate legacy catalog file names, resolve
and sort the source file list, extract and merge keys, assign namespaces,
regenerate every (locale, namespace) catalog preserving existing
translations, and emit per-locale aggregator modules. Catalogs are only
rewritten when their bytes actually change, which keeps repeated runs free
of spurious diffs.

Per-item failures (one malformed message, one unreadable file, one corrupt
catalog) recover locally with a warning. Failing to write output aborts the
run, since a partial catalog set is a misleading state.
*/
package pipeline
