// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

/*
Package catalog renders per-(locale, namespace) translation catalogs and
reads previously generated catalogs back from disk.

Three serializations are supported: a JS module (header plus a commented
object literal), the same shape for TypeScript, and a plain JSON object.
Output is fully deterministic: file paths are normalised relative to the
project root with forward slashes, keys group by their sorted origin-file
labels, and both groups and keys render in lexicographic order. Regenerating
an unchanged source tree reproduces byte-identical text.

The loader recovers the key→value mapping from any of the three formats
without executing code: valid JSON goes through gjson, everything else
through a narrow structural scanner that locates the exported object literal
and reads its top-level string pairs. Any unparsable file loads as an empty
mapping rather than failing the run.
*/
package catalog
