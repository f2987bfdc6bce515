// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

/*
Package extract locates translation call sites in source text and collects
the literal message strings they carry.

A call site is an invocation of the one-argument translate function, written
as t("..."), t('...') or t(`...`), where the argument is a single whole
string literal. The literal may span multiple lines. Dynamic arguments such
as t(name) or t("a" + b) are intentionally not resolved; they are skipped
without a diagnostic. This tool scans text directly and does not build a
syntax tree for the host language.

Extracted keys merge across files into one record per distinct message text,
with a sorted, deduplicated list of originating files. Merge output order is
fully deterministic, which is what makes repeated extraction runs produce
byte-identical catalogs.
*/
package extract
