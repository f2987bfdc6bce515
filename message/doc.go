// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

/*
Package message classifies and validates translation message strings.

A message is the literal text passed to a t("...") call. Classification
detects the structural features a translator needs to know about:
interpolation variables such as {name}, ICU pluralization tags such as
{count, plural, ...}, and ICU date/time tags such as {when, date, short}.

Validation rejects messages that would corrupt a generated catalog:
over-long text, unbalanced curly braces, or variable names that are not
valid identifiers. A rejected message is dropped from extraction with a
warning; it never aborts a run.
*/
package message
