// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

package pipeline

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"codeberg.org/pixivfe/transcat/catalog"
	"codeberg.org/pixivfe/transcat/config"
	"codeberg.org/pixivfe/transcat/extract"
	"codeberg.org/pixivfe/transcat/namespace"
)

// scanConcurrency bounds the number of source files read at once. The scan
// may run concurrently because results merge in sorted file order, so
// concurrency affects latency but never output content.
const scanConcurrency = 8

// Pipeline runs one extraction against one configuration.
type Pipeline struct {
	cfg      *config.Config
	assigner *namespace.Assigner
	gen      *catalog.Generator
	logger   zerolog.Logger

	// check suppresses writes and only records what would change.
	check bool
}

// New builds a pipeline for the given validated configuration. The project
// root for display paths defaults to the current working directory.
func New(cfg *config.Config) *Pipeline {
	root, err := os.Getwd()
	if err != nil {
		root = "."
	}

	return &Pipeline{
		cfg:      cfg,
		assigner: cfg.Assigner(),
		gen:      &catalog.Generator{Root: root, Header: cfg.Header},
		logger:   log.With().Str("sys", "pipeline").Logger(),
		check:    cfg.Check,
	}
}

// Run executes the full extraction: migrate, scan, extract, group,
// generate, and report. The returned Report is complete even in check mode.
func (p *Pipeline) Run(ctx context.Context) (*Report, error) {
	report := &Report{}

	if err := p.migrate(report); err != nil {
		return report, err
	}

	files, err := p.scanFiles()
	if err != nil {
		return report, err
	}

	report.ScannedFiles = len(files)

	keys, err := p.extractAll(ctx, files)
	if err != nil {
		return report, err
	}

	report.Keys = len(keys)

	p.assignNamespaces(keys)

	groups := namespace.Group(keys)
	namespaces := namespace.Namespaces(keys)

	split := len(namespaces) > 1

	for _, locale := range p.cfg.Locales {
		for _, ns := range namespaces {
			if err := p.generateCatalog(locale, ns, split, groups[ns], report); err != nil {
				return report, err
			}
		}
	}

	if err := p.generateIndexes(namespaces, report); err != nil {
		return report, err
	}

	report.log(p.logger, p.check)

	return report, nil
}

// assignNamespaces attaches a namespace to every merged key. A key found in
// several files takes its namespace from the lexicographically first path,
// so assignment does not depend on scan order.
func (p *Pipeline) assignNamespaces(keys []extract.Key) {
	for i := range keys {
		if len(keys[i].Files) == 0 {
			keys[i].Namespace = namespace.Common

			continue
		}

		keys[i].Namespace = p.assigner.Generate(keys[i].Files[0])
	}
}

// extractAll runs the key extractor over every file, a bounded number at a
// time, then merges per-file results in sorted file order. A single bad
// file never aborts the run.
func (p *Pipeline) extractAll(ctx context.Context, files []string) ([]extract.Key, error) {
	results := make([][]extract.Key, len(files))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(scanConcurrency)

	for i, file := range files {
		i, file := i, file

		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			keys, err := extract.FromFile(file)
			if err != nil {
				p.logger.Warn().
					Err(err).
					Str("file", file).
					Msg("Skipping unreadable source file")

				return nil
			}

			results[i] = keys

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("source scan interrupted: %w", err)
	}

	var merged []extract.Key
	for _, keys := range results {
		merged = extract.Merge(merged, keys)
	}

	return merged, nil
}

// generateCatalog renders one (locale, namespace) catalog and writes it if
// its content changed.
func (p *Pipeline) generateCatalog(locale, ns string, split bool, keys []extract.Key, report *Report) error {
	path := filepath.Join(p.cfg.Catalogs.OutputFolder, p.catalogName(ns, locale, split))

	existing := p.loadExisting(path)

	isSourceLocale := locale == p.cfg.SourceLocale

	if !isSourceLocale {
		for _, k := range keys {
			if existing[k.Key] != "" {
				report.Preserved++
			} else {
				report.Untranslated++
			}
		}
	}

	content := p.gen.Generate(p.cfg.Format, keys, existing, isSourceLocale)

	wrote, err := p.writeIfChanged(path, []byte(content))
	if err != nil {
		return err
	}

	if wrote {
		report.Generated++

		p.logger.Info().
			Str("locale", locale).
			Str("namespace", ns).
			Str("path", path).
			Msg("Catalog updated")
	} else {
		report.Skipped++
	}

	return nil
}

// catalogName derives the catalog file name for one (namespace, locale)
// pair. Once the key space splits across namespaces, every catalog carries
// its namespace in the name, the common one included: the bare locale path
// is reserved for the locale index.
func (p *Pipeline) catalogName(ns, locale string, split bool) string {
	if split && ns == namespace.Common {
		return locale + "." + namespace.Common + "." + p.cfg.Format
	}

	return p.assigner.FileName(ns, locale, p.cfg.Format)
}

// generateIndexes writes the per-locale aggregator modules. They only exist
// when the key space actually splits across namespaces. A JSON file cannot
// re-export other catalogs, so the json format emits its index as a JS
// module importing the .json catalogs.
func (p *Pipeline) generateIndexes(namespaces []string, report *Report) error {
	if len(namespaces) <= 1 {
		return nil
	}

	indexFormat := p.cfg.Format
	if indexFormat == config.FormatJSON {
		indexFormat = config.FormatJS
	}

	for _, locale := range p.cfg.Locales {
		path := filepath.Join(p.cfg.Catalogs.OutputFolder, locale+"."+indexFormat)

		content := catalog.LocaleIndex(locale, namespaces, p.cfg.Format)

		wrote, err := p.writeIfChanged(path, []byte(content))
		if err != nil {
			return err
		}

		if wrote {
			report.Generated++

			p.logger.Info().
				Str("locale", locale).
				Str("path", path).
				Msg("Locale index updated")
		} else {
			report.Skipped++
		}
	}

	return nil
}

// loadExisting reads previously generated translations from path. A missing
// or unparsable catalog degrades to an empty mapping.
func (p *Pipeline) loadExisting(path string) map[string]string {
	if _, err := os.Stat(path); err != nil {
		return map[string]string{}
	}

	existing, err := catalog.Load(path)
	if err != nil {
		p.logger.Warn().
			Err(err).
			Str("path", path).
			Msg("Failed to load existing catalog, treating as empty")

		return map[string]string{}
	}

	return existing
}
