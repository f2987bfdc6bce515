// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

package config

import "flag"

type commandLineFlags struct {
	configPath    string
	configUserSet bool
	check         bool
}

// parseCommandLineArgs defines and parses flags.
func parseCommandLineArgs() commandLineFlags {
	var flags commandLineFlags

	if flag.Lookup("config") == nil {
		flag.StringVar(&flags.configPath, "config", "./transcat.yaml", "Path to a transcat configuration file in YAML format.")
		flag.BoolVar(&flags.check, "check", false, "Report instead of write; exit nonzero when any catalog would change.")
	}

	if !flag.Parsed() {
		flag.Parse()
	}

	flag.Visit(func(f *flag.Flag) {
		if f.Name == "config" {
			flags.configUserSet = true
		}
	})

	return flags
}
