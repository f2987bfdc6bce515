// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

package config

import "codeberg.org/pixivfe/transcat/namespace"

// SetDefaults populates the built-in defaults. Defaults are explicit values
// supplied here, not hidden module-level state; every run starts from this
// function and layers the other sources on top.
func (cfg *Config) SetDefaults() {
	cfg.SourceLocale = "en"
	cfg.Locales = []string{"en"}
	cfg.Format = FormatJS

	cfg.Catalogs.OutputFolder = "./locales"
	cfg.Catalogs.Include = []string{"src/**/*.{js,jsx,ts,tsx}"}
	cfg.Catalogs.Exclude = []string{
		"**/node_modules/**",
		"**/*.test.*",
		"**/*.spec.*",
	}

	cfg.Splitting.Strategy = namespace.StrategyFlat
	cfg.Splitting.BaseDir = "."
	cfg.Splitting.FeatureFolders = namespace.DefaultFeatureFolders
	cfg.Splitting.MaxDepth = namespace.DefaultMaxDepth

	cfg.Log.Level = "info"
	cfg.Log.Format = "console"
}
