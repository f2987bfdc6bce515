// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

/*
Package namespace computes the catalog partition a translation key belongs
to, based on the location of the source file it was extracted from.

A namespace is a non-empty, lowercased dotted path of alphanumeric segments,
safe to embed in a file name on any platform. Dynamic-route markers from
file-based routers sanitize to fixed tokens: [id] and [slug] become id and
slug, any other bracketed segment becomes param, and route groups such as
(auth) are dropped entirely.

Five strategies are supported: flat (everything in "common"), directory,
feature, file, and custom via the Resolver interface.
*/
package namespace
