// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

package extract

import (
	"slices"
	"sort"
)

// Merge unions two key sets by exact message-text equality. When a key
// appears in both inputs, the file lists union and deduplicate. File lists
// and the merged key collection both come out lexicographically sorted, so
// the merge is associative and the final catalog text is independent of
// scan order.
func Merge(a, b []Key) []Key {
	merged := make([]Key, 0, len(a)+len(b))
	index := make(map[string]int, len(a)+len(b))

	for _, src := range [2][]Key{a, b} {
		for _, k := range src {
			if i, ok := index[k.Key]; ok {
				merged[i].Files = append(merged[i].Files, k.Files...)

				continue
			}

			index[k.Key] = len(merged)

			clone := k
			clone.Files = slices.Clone(k.Files)

			merged = append(merged, clone)
		}
	}

	for i := range merged {
		sort.Strings(merged[i].Files)
		merged[i].Files = slices.Compact(merged[i].Files)
	}

	sort.Slice(merged, func(i, j int) bool {
		return merged[i].Key < merged[j].Key
	})

	return merged
}
