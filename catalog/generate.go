// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

package catalog

import (
	"path/filepath"
	"sort"
	"strings"

	"codeberg.org/pixivfe/transcat/extract"
)

// DefaultHeader is the export token emitted when no custom header is
// configured.
const DefaultHeader = "export default"

// Generator renders catalog text for one project. Root is the directory
// that key file paths are made relative to before printing, so output is
// identical across machines and operating systems.
type Generator struct {
	Root   string
	Header string
}

func (g *Generator) header() string {
	if g.Header != "" {
		return g.Header
	}

	return DefaultHeader
}

// relPath normalises one origin-file path for display: relative to the
// project root, forward slashes regardless of host OS.
func (g *Generator) relPath(p string) string {
	if g.Root != "" {
		if rel, err := filepath.Rel(g.Root, p); err == nil {
			p = rel
		}
	}

	return filepath.ToSlash(p)
}

// GroupKeysByFile groups keys by the sorted, " | "-joined set of their
// origin-file relative paths.
func (g *Generator) GroupKeysByFile(keys []extract.Key) map[string][]extract.Key {
	groups := map[string][]extract.Key{}

	for _, k := range keys {
		labels := make([]string, 0, len(k.Files))
		for _, f := range k.Files {
			labels = append(labels, g.relPath(f))
		}

		sort.Strings(labels)

		label := strings.Join(labels, " | ")
		groups[label] = append(groups[label], k)
	}

	return groups
}

// value resolves the catalog value for one key: the key's own text for the
// source locale, otherwise the preserved translation or the empty string.
func value(k extract.Key, existing map[string]string, isSourceLocale bool) string {
	if isSourceLocale {
		return k.Key
	}

	return existing[k.Key]
}

// GenerateJS renders a JS module catalog: the header token, then per
// file group a block comment naming the group's files, then per key its
// metadata comments and an escaped "key": "value" line. Groups and keys
// are emitted in lexicographic order.
func (g *Generator) GenerateJS(keys []extract.Key, existing map[string]string, isSourceLocale bool) string {
	var b strings.Builder

	b.WriteString(g.header() + " {\n")

	groups := g.GroupKeysByFile(keys)

	labels := make([]string, 0, len(groups))
	for label := range groups {
		labels = append(labels, label)
	}

	sort.Strings(labels)

	for _, label := range labels {
		group := groups[label]
		sort.Slice(group, func(i, j int) bool {
			return group[i].Key < group[j].Key
		})

		b.WriteString("  /* " + label + " */\n")

		for _, k := range group {
			if len(k.Variables) > 0 {
				b.WriteString("  // Variables: " + strings.Join(k.Variables, ", ") + "\n")
			}

			if k.HasPlural {
				b.WriteString("  // Uses pluralization\n")
			}

			if k.HasDate {
				b.WriteString("  // Uses date formatting\n")
			}

			v := value(k, existing, isSourceLocale)

			b.WriteString("  \"" + Escape(k.Key) + "\": \"" + Escape(v) + "\",\n")
		}

		b.WriteString("\n")
	}

	// Drop the trailing comma and blank line left behind by the last group.
	out := strings.TrimSuffix(b.String(), "\n")
	out = strings.TrimSuffix(out, ",\n") + "\n"

	return out + "};\n"
}

// GenerateTS renders the TypeScript variant, which shares the JS shape.
func (g *Generator) GenerateTS(keys []extract.Key, existing map[string]string, isSourceLocale bool) string {
	return g.GenerateJS(keys, existing, isSourceLocale)
}

// GenerateJSON renders a plain JSON object with 2-space indentation.
// Comments are omitted but key order matches the JS path so diffs stay
// stable across formats.
func (g *Generator) GenerateJSON(keys []extract.Key, existing map[string]string, isSourceLocale bool) string {
	sorted := make([]extract.Key, len(keys))
	copy(sorted, keys)

	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Key < sorted[j].Key
	})

	var b strings.Builder

	b.WriteString("{\n")

	for i, k := range sorted {
		v := value(k, existing, isSourceLocale)

		b.WriteString("  \"" + Escape(k.Key) + "\": \"" + Escape(v) + "\"")

		if i < len(sorted)-1 {
			b.WriteString(",")
		}

		b.WriteString("\n")
	}

	b.WriteString("}\n")

	return b.String()
}

// Generate renders keys in the requested format: "js", "ts", or "json".
func (g *Generator) Generate(format string, keys []extract.Key, existing map[string]string, isSourceLocale bool) string {
	switch format {
	case "json":
		return g.GenerateJSON(keys, existing, isSourceLocale)
	case "ts":
		return g.GenerateTS(keys, existing, isSourceLocale)
	default:
		return g.GenerateJS(keys, existing, isSourceLocale)
	}
}
