// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

package pipeline

import (
	"os"
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
)

// scanFiles resolves the include globs minus the exclude globs to a sorted
// file list. Sorting makes per-run log order, and every path-order-sensitive
// step after it, deterministic. A failing glob entry is logged and skipped;
// it never aborts the run.
func (p *Pipeline) scanFiles() ([]string, error) {
	seen := map[string]struct{}{}

	var files []string

	for _, pattern := range p.cfg.Catalogs.Include {
		matches, err := doublestar.FilepathGlob(pattern)
		if err != nil {
			p.logger.Warn().
				Err(err).
				Str("pattern", pattern).
				Msg("Skipping unresolvable include pattern")

			continue
		}

		for _, match := range matches {
			if _, dup := seen[match]; dup {
				continue
			}

			seen[match] = struct{}{}

			if p.excluded(match) {
				continue
			}

			info, err := os.Stat(match)
			if err != nil || info.IsDir() {
				continue
			}

			files = append(files, match)
		}
	}

	sort.Strings(files)

	p.logger.Debug().
		Int("count", len(files)).
		Msg("Resolved source file list")

	return files, nil
}

// excluded reports whether path matches any exclude pattern.
func (p *Pipeline) excluded(path string) bool {
	slashed := filepath.ToSlash(path)

	for _, pattern := range p.cfg.Catalogs.Exclude {
		if ok, err := doublestar.Match(pattern, slashed); err == nil && ok {
			return true
		}
	}

	return false
}
