// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

package config

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"golang.org/x/text/language"

	"codeberg.org/pixivfe/transcat/namespace"
)

// validation errors.
var (
	errNoSourceLocale         = errors.New("sourceLocale is required")
	errNoLocales              = errors.New("locales must list at least one locale")
	errInvalidLocale          = errors.New("invalid locale identifier")
	errSourceLocaleNotListed  = errors.New("locales must contain sourceLocale")
	errInvalidFormat          = errors.New("format must be one of js, json, ts")
	errNoOutputFolder         = errors.New("catalogs.outputFolder is required")
	errDisallowedOutputFolder = errors.New("catalogs.outputFolder contains disallowed characters")
	errNoIncludePatterns      = errors.New("catalogs.include must list at least one glob pattern")
	errCustomResolverRequired = errors.New("splitting.strategy \"custom\" requires a resolver")
	errInvalidMaxDepth        = errors.New("splitting.maxDepth must be at least 1")
)

// disallowedPathChars may not appear in the output folder: they are the
// same characters the pre-migration step renames out of catalog file names.
const disallowedPathChars = "[](){}<>"

// validateAndSet validates the extraction configuration. Every failure here
// is fatal and must surface before any file scanning begins, since it
// invalidates the whole run's output location or shape.
func (cfg *Config) validateAndSet() error {
	if cfg.SourceLocale == "" {
		return errNoSourceLocale
	}

	if len(cfg.Locales) == 0 {
		return errNoLocales
	}

	for _, locale := range append([]string{cfg.SourceLocale}, cfg.Locales...) {
		if _, err := language.Parse(strings.ReplaceAll(locale, "_", "-")); err != nil {
			return fmt.Errorf("%w: %q: %w", errInvalidLocale, locale, err)
		}
	}

	if !slices.Contains(cfg.Locales, cfg.SourceLocale) {
		return fmt.Errorf("%w: %q", errSourceLocaleNotListed, cfg.SourceLocale)
	}

	switch cfg.Format {
	case FormatJS, FormatJSON, FormatTS:
	default:
		return fmt.Errorf("%w: got %q", errInvalidFormat, cfg.Format)
	}

	if cfg.Catalogs.OutputFolder == "" {
		return errNoOutputFolder
	}

	if strings.ContainsAny(cfg.Catalogs.OutputFolder, disallowedPathChars) {
		return fmt.Errorf("%w: %q", errDisallowedOutputFolder, cfg.Catalogs.OutputFolder)
	}

	if len(cfg.Catalogs.Include) == 0 {
		return errNoIncludePatterns
	}

	if cfg.Splitting.Strategy == namespace.StrategyCustom && cfg.Splitting.Custom == nil {
		return errCustomResolverRequired
	}

	if cfg.Splitting.MaxDepth < 1 {
		return errInvalidMaxDepth
	}

	return nil
}
