// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

package pipeline

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"codeberg.org/pixivfe/transcat/catalog"
	"codeberg.org/pixivfe/transcat/namespace"
)

// disallowedNameChars are the characters the sanitizer removed from
// namespaces at some point; catalogs written before that carry them in
// their file names and must be renamed before extraction reads the
// directory, since migration changes what counts as existing translations.
const disallowedNameChars = "[](){}<>"

// migrate renames catalog files whose names use now-disallowed characters.
// When the sanitized target already exists, the two files' contents merge
// with the target's values winning key conflicts, and the old file is
// removed.
func (p *Pipeline) migrate(report *Report) error {
	if p.check {
		// Check mode never mutates the output directory.
		return nil
	}

	dir := p.cfg.Catalogs.OutputFolder

	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}

		return fmt.Errorf("failed to read output directory %s: %w", dir, err)
	}

	// Sorted for deterministic merge order when several legacy files map
	// to one target.
	names := make([]string, 0, len(entries))

	for _, entry := range entries {
		if entry.IsDir() || !strings.ContainsAny(entry.Name(), disallowedNameChars) {
			continue
		}

		names = append(names, entry.Name())
	}

	sort.Strings(names)

	for _, name := range names {
		target := sanitizeFileName(name)
		if target == name || target == "" {
			continue
		}

		if err := p.migrateFile(dir, name, target); err != nil {
			return err
		}

		report.Migrated++

		p.logger.Info().
			Str("from", name).
			Str("to", target).
			Msg("Migrated legacy catalog file name")
	}

	return nil
}

func (p *Pipeline) migrateFile(dir, name, target string) error {
	oldPath := filepath.Join(dir, name)
	newPath := filepath.Join(dir, target)

	if _, err := os.Stat(newPath); os.IsNotExist(err) {
		if renameErr := os.Rename(oldPath, newPath); renameErr != nil {
			return fmt.Errorf("failed to rename catalog %s: %w", oldPath, renameErr)
		}

		return nil
	}

	// Both names exist: merge, new-named content winning key conflicts.
	oldValues := p.loadExisting(oldPath)
	newValues := p.loadExisting(newPath)

	merged := make(map[string]string, len(oldValues)+len(newValues))

	for k, v := range oldValues {
		merged[k] = v
	}

	for k, v := range newValues {
		merged[k] = v
	}

	content := renderMergedCatalog(newPath, merged, p.gen.Header)

	if _, err := p.writeIfChanged(newPath, []byte(content)); err != nil {
		return err
	}

	if err := os.Remove(oldPath); err != nil {
		return fmt.Errorf("failed to remove legacy catalog %s: %w", oldPath, err)
	}

	return nil
}

// sanitizeFileName maps a legacy catalog file name to its safe equivalent,
// preserving the locale prefix and format extension around the sanitized
// namespace part.
func sanitizeFileName(name string) string {
	ext := filepath.Ext(name)
	stem := strings.TrimSuffix(name, ext)

	locale, nsRaw, found := strings.Cut(stem, ".")
	if !found {
		return namespace.Sanitize(stem) + ext
	}

	ns := namespace.Sanitize(nsRaw)
	if ns == "" {
		return locale + ext
	}

	return locale + "." + ns + ext
}

// renderMergedCatalog produces minimal catalog text for a migration merge.
// Metadata comments cannot be reconstructed from the values alone; the next
// generation pass rewrites the file in full shape.
func renderMergedCatalog(path string, values map[string]string, header string) string {
	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}

	sort.Strings(keys)

	var b strings.Builder

	isJSON := strings.TrimPrefix(filepath.Ext(path), ".") == "json"

	if isJSON {
		b.WriteString("{\n")

		for i, k := range keys {
			b.WriteString("  \"" + catalog.Escape(k) + "\": \"" + catalog.Escape(values[k]) + "\"")

			if i < len(keys)-1 {
				b.WriteString(",")
			}

			b.WriteString("\n")
		}

		b.WriteString("}\n")

		return b.String()
	}

	if header == "" {
		header = catalog.DefaultHeader
	}

	b.WriteString(header + " {\n")

	for _, k := range keys {
		b.WriteString("  \"" + catalog.Escape(k) + "\": \"" + catalog.Escape(values[k]) + "\",\n")
	}

	out := strings.TrimSuffix(b.String(), ",\n") + "\n"

	return out + "};\n"
}
