// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

package namespace

import (
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"
)

// Common is the reserved namespace for ungrouped keys.
const Common = "common"

// Splitting strategies.
const (
	StrategyFlat      = "flat"
	StrategyDirectory = "directory"
	StrategyFeature   = "feature"
	StrategyFile      = "file"
	StrategyCustom    = "custom"
)

// DefaultMaxDepth bounds the number of namespace segments derived from a
// directory path.
const DefaultMaxDepth = 3

// DefaultFeatureFolders is the built-in set of folder names the feature
// strategy scans for.
var DefaultFeatureFolders = []string{"features", "modules", "pages", "screens"}

// Resolver computes the namespace for a source file. It backs the custom
// strategy so table-driven or rule-engine resolvers can plug in without
// reflection.
type Resolver interface {
	Resolve(filePath, baseDir string) string
}

// ResolverFunc adapts a plain function to the Resolver interface.
type ResolverFunc func(filePath, baseDir string) string

func (f ResolverFunc) Resolve(filePath, baseDir string) string {
	return f(filePath, baseDir)
}

// Assigner maps source file paths to namespaces under one configured
// strategy. The zero value behaves like the flat strategy.
type Assigner struct {
	Strategy       string
	BaseDir        string
	FeatureFolders []string
	MaxDepth       int
	Custom         Resolver

	warnedUnknown bool
}

// Generate computes the namespace for a key extracted from filePath.
// Whatever the strategy produced is sanitized before returning; an empty
// result maps to Common.
func (a *Assigner) Generate(filePath string) string {
	var raw string

	switch a.Strategy {
	case StrategyFlat, "":
		return Common
	case StrategyDirectory:
		raw = a.directoryNamespace(filePath)
	case StrategyFeature:
		raw = a.featureNamespace(filePath)
	case StrategyFile:
		raw = a.fileNamespace(filePath)
	case StrategyCustom:
		if a.Custom == nil {
			return Common
		}

		raw = a.Custom.Resolve(filePath, a.BaseDir)
	default:
		if !a.warnedUnknown {
			a.warnedUnknown = true

			log.Warn().
				Str("strategy", a.Strategy).
				Msg("Unknown splitting strategy, falling back to flat")
		}

		return Common
	}

	ns := Sanitize(raw)
	if ns == "" {
		return Common
	}

	return ns
}

// directorySegments returns the namespace segments for the directory
// containing filePath: relative to BaseDir, with a leading conventional
// src segment stripped and route-group segments like (auth) dropped.
func (a *Assigner) directorySegments(filePath string) []string {
	rel := filePath
	if a.BaseDir != "" {
		if r, err := filepath.Rel(a.BaseDir, filePath); err == nil {
			rel = r
		}
	}

	dir := filepath.ToSlash(filepath.Dir(rel))
	if dir == "." || dir == "/" {
		return nil
	}

	var segments []string

	for _, seg := range strings.Split(dir, "/") {
		switch {
		case seg == "" || seg == "." || seg == "..":
			continue
		case len(segments) == 0 && seg == "src":
			// Conventional source root carries no grouping information.
			continue
		case strings.HasPrefix(seg, "(") && strings.HasSuffix(seg, ")"):
			// Route groups do not affect the logical route.
			continue
		}

		segments = append(segments, seg)
	}

	return segments
}

func (a *Assigner) maxDepth() int {
	if a.MaxDepth > 0 {
		return a.MaxDepth
	}

	return DefaultMaxDepth
}

func (a *Assigner) directoryNamespace(filePath string) string {
	segments := a.directorySegments(filePath)
	if len(segments) == 0 {
		return Common
	}

	if depth := a.maxDepth(); len(segments) > depth {
		segments = segments[:depth]
	}

	return strings.Join(segments, ".")
}

func (a *Assigner) featureNamespace(filePath string) string {
	folders := a.FeatureFolders
	if len(folders) == 0 {
		folders = DefaultFeatureFolders
	}

	featureSet := make(map[string]struct{}, len(folders))
	for _, f := range folders {
		featureSet[strings.ToLower(f)] = struct{}{}
	}

	dir := filepath.ToSlash(filepath.Dir(filePath))
	segments := strings.Split(dir, "/")

	for i, seg := range segments {
		if _, ok := featureSet[strings.ToLower(seg)]; !ok {
			continue
		}

		if i+1 < len(segments) {
			return segments[i+1]
		}

		// The feature folder is the last directory; there is no feature
		// segment to name the namespace after.
		break
	}

	return a.directoryNamespace(filePath)
}

func (a *Assigner) fileNamespace(filePath string) string {
	segments := a.directorySegments(filePath)

	base := strings.TrimSuffix(filepath.Base(filePath), filepath.Ext(filePath))
	switch strings.ToLower(base) {
	case "index", "default":
	default:
		segments = append(segments, base)
	}

	if len(segments) == 0 {
		return Common
	}

	if depth := a.maxDepth(); len(segments) > depth {
		segments = segments[:depth]
	}

	return strings.Join(segments, ".")
}

// FileName derives the catalog file name for one (namespace, locale, format)
// triple. Namespaced catalogs carry the namespace between locale and
// extension; the common namespace, and every namespace under the flat
// strategy, collapse to the bare locale file.
func (a *Assigner) FileName(ns, locale, format string) string {
	if ns == Common || ns == "" || a.Strategy == StrategyFlat || a.Strategy == "" {
		return locale + "." + format
	}

	return locale + "." + ns + "." + format
}
