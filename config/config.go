// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

// Package config loads, validates, and prints the extraction configuration.
//
// Sources are layered in precedence order: command-line flags, environment
// variables (TRANSCAT_*), a YAML configuration file, and built-in defaults.
// A Config that survives Load is fully resolved and treated as immutable
// for the duration of one extraction run.
package config

import (
	"fmt"
	"os"

	"codeberg.org/pixivfe/transcat/namespace"
)

// Output formats.
const (
	FormatJS   = "js"
	FormatJSON = "json"
	FormatTS   = "ts"
)

// Config holds the full extraction configuration.
type Config struct {
	Build buildInfo `yaml:"-"`

	SourceLocale string   `env:"TRANSCAT_SOURCE_LOCALE,overwrite" yaml:"sourceLocale"`
	Locales      []string `env:"TRANSCAT_LOCALES,overwrite"       yaml:"locales"`
	Format       string   `env:"TRANSCAT_FORMAT,overwrite"        yaml:"format"`

	// Header overrides the export token emitted at the top of JS/TS
	// catalogs. Empty means the generator default.
	Header string `env:"TRANSCAT_HEADER,overwrite" yaml:"header"`

	Catalogs struct {
		OutputFolder string   `env:"TRANSCAT_OUTPUT_FOLDER,overwrite" yaml:"outputFolder"`
		Include      []string `env:"TRANSCAT_INCLUDE,overwrite"       yaml:"include"`
		Exclude      []string `env:"TRANSCAT_EXCLUDE,overwrite"       yaml:"exclude"`
	} `yaml:"catalogs"`

	Splitting struct {
		Strategy       string   `env:"TRANSCAT_STRATEGY,overwrite"        yaml:"strategy"`
		BaseDir        string   `env:"TRANSCAT_BASE_DIR,overwrite"        yaml:"baseDir"`
		FeatureFolders []string `env:"TRANSCAT_FEATURE_FOLDERS,overwrite" yaml:"featureFolders"`
		MaxDepth       int      `env:"TRANSCAT_MAX_DEPTH,overwrite"       yaml:"maxDepth"`

		// Custom backs the "custom" strategy. It can only be supplied
		// programmatically by an embedding caller, never from YAML.
		Custom namespace.Resolver `yaml:"-"`
	} `yaml:"splitting"`

	Log struct {
		Level   string   `env:"TRANSCAT_LOG_LEVEL,overwrite"   yaml:"logLevel"`
		Outputs []string `env:"TRANSCAT_LOG_OUTPUTS,overwrite" yaml:"logOutputs"`
		Format  string   `env:"TRANSCAT_LOG_FORMAT,overwrite"  yaml:"logFormat"`
	} `yaml:"log"`

	// Check makes the run report instead of write: the process exits
	// nonzero when any catalog would change. Flag-only.
	Check bool `yaml:"-"`
}

// Load assembles the configuration from flags, environment, YAML file, and
// defaults, then validates it. Any validation failure is fatal: extraction
// must not start against an invalid output location or shape.
func Load() (*Config, error) {
	flags := parseCommandLineArgs()

	cfg := &Config{}
	cfg.SetDefaults()
	cfg.Build.load()
	cfg.Check = flags.check

	configFilePath := resolveConfigPath(flags)

	if err := cfg.readYAML(configFilePath); err != nil {
		return nil, fmt.Errorf("error loading YAML config: %w", err)
	}

	if err := readEnv(cfg); err != nil {
		return nil, fmt.Errorf("error loading environment variables: %w", err)
	}

	if err := cfg.validateAndSet(); err != nil {
		return nil, fmt.Errorf("configuration invalid: %w", err)
	}

	cfg.setupAudit()
	cfg.print()

	return cfg, nil
}

// resolveConfigPath picks the config file path with the correct precedence:
// the -config flag, then TRANSCAT_CONFIGFILE, then ./transcat.yaml with a
// fallback check for ./transcat.yml.
func resolveConfigPath(flags commandLineFlags) string {
	if flags.configUserSet {
		return flags.configPath
	}

	if envVar := os.Getenv("TRANSCAT_CONFIGFILE"); envVar != "" {
		return envVar
	}

	path := flags.configPath
	if _, err := os.Stat(path); os.IsNotExist(err) {
		ymlPath := "./transcat.yml"
		if _, statErr := os.Stat(ymlPath); statErr == nil {
			path = ymlPath
		}
	}

	return path
}

// Assigner builds the namespace assigner described by the splitting section.
func (cfg *Config) Assigner() *namespace.Assigner {
	return &namespace.Assigner{
		Strategy:       cfg.Splitting.Strategy,
		BaseDir:        cfg.Splitting.BaseDir,
		FeatureFolders: cfg.Splitting.FeatureFolders,
		MaxDepth:       cfg.Splitting.MaxDepth,
		Custom:         cfg.Splitting.Custom,
	}
}
