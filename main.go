// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

/*
Transcat scans a source tree for t("...") translation calls and regenerates
per-locale catalog files, preserving translations already filled in.
*/
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"

	"codeberg.org/pixivfe/transcat/config"
	"codeberg.org/pixivfe/transcat/core/audit"
	"codeberg.org/pixivfe/transcat/pipeline"
)

// main is the entry point of the application.
func main() {
	if err := run(); err != nil {
		log.Fatal().Err(err).Msg("Extraction failed")
	}
}

// run loads the configuration and executes one extraction run.
func run() error {
	audit.SetDefaultLogger()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	report, err := pipeline.New(cfg).Run(ctx)
	if err != nil {
		return err
	}

	if cfg.Check && report.Changed() {
		log.Error().
			Int("stale", report.Generated).
			Msg("Catalogs are out of date; run transcat to regenerate them")
		os.Exit(1)
	}

	return nil
}
