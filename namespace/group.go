// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

package namespace

import (
	"sort"

	"codeberg.org/pixivfe/transcat/extract"
)

// Namespaces returns the sorted unique namespaces present in keys. Keys
// without an assigned namespace count under Common.
func Namespaces(keys []extract.Key) []string {
	set := map[string]struct{}{}

	for _, k := range keys {
		set[orCommon(k.Namespace)] = struct{}{}
	}

	out := make([]string, 0, len(set))
	for ns := range set {
		out = append(out, ns)
	}

	sort.Strings(out)

	return out
}

// Group partitions keys by namespace. Keys within each group are sorted
// lexicographically by key text.
func Group(keys []extract.Key) map[string][]extract.Key {
	groups := map[string][]extract.Key{}

	for _, k := range keys {
		ns := orCommon(k.Namespace)
		groups[ns] = append(groups[ns], k)
	}

	for _, group := range groups {
		sort.Slice(group, func(i, j int) bool {
			return group[i].Key < group[j].Key
		})
	}

	return groups
}

func orCommon(ns string) string {
	if ns == "" {
		return Common
	}

	return ns
}
