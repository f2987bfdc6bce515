// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

package catalog

import (
	"fmt"
	"strings"
)

var identReplacer = strings.NewReplacer("-", "_", ".", "_")

// identName converts a namespace into a usable import binding identifier.
func identName(ns string) string {
	return identReplacer.Replace(ns)
}

// LocaleIndex renders the per-locale aggregator module: one import per
// namespace catalog plus a default export spreading every namespace into a
// single flat key space. Module paths omit the extension for js/ts targets
// and keep the .json suffix for JSON catalogs. Every namespace, the common
// one included, imports from its {locale}.{ns} catalog; the bare locale
// path belongs to the index itself. namespaces must already be sorted.
func LocaleIndex(locale string, namespaces []string, format string) string {
	var imports, spreads strings.Builder

	for _, ns := range namespaces {
		path := "./" + locale + "." + ns
		if format == "json" {
			path += ".json"
		}

		id := identName(ns)

		fmt.Fprintf(&imports, "import %s from \"%s\";\n", id, path)
		fmt.Fprintf(&spreads, "  ...%s,\n", id)
	}

	return imports.String() + "\nexport default {\n" + spreads.String() + "};\n"
}
