// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

package main

import (
	"fmt"
	"os"
	"reflect"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/rs/zerolog/log"

	"codeberg.org/pixivfe/transcat/config"
	"codeberg.org/pixivfe/transcat/core/audit"
)

const (
	envOutputFile  = "deploy/.env.example"
	yamlOutputFile = "deploy/transcat.yaml.example"
	filePerm       = 0o644

	envFileHeader = `# Transcat configuration (via environment variables)
#
# Copy this file to .env and customize the values below.
#
# Every variable mirrors a key in transcat.yaml; environment variables take
# precedence over the configuration file.
#
# This file was auto-generated using go run ./cmd/genconfig.

`
	yamlFileHeader = `# Transcat configuration (via configuration file)
#
# Copy this file to transcat.yaml in your project root and customize the
# values below. Commented lines show the built-in defaults.
#
# This file was auto-generated using go run ./cmd/genconfig.
`
)

// essentialEnvVars are written uncommented: the minimum a project with a
// non-default locale set has to fill in.
var essentialEnvVars = map[string]bool{
	"TRANSCAT_SOURCE_LOCALE": true,
	"TRANSCAT_LOCALES":       true,
}

func main() {
	audit.SetDefaultLogger()
	generateEnvFile()
	generateYAMLFile()
}

// generateEnvFile generates the deploy/.env.example file.
func generateEnvFile() {
	cfg := &config.Config{}
	cfg.SetDefaults()

	var sb strings.Builder
	sb.WriteString(envFileHeader)

	writeEnvSection(&sb, reflect.ValueOf(*cfg), "General")

	if err := os.WriteFile(envOutputFile, []byte(sb.String()), filePerm); err != nil {
		log.Fatal().Err(err).Str("path", envOutputFile).Msg("Failed to write .env.example file")
	}

	log.Info().Str("path", envOutputFile).Msg("Successfully generated .env.example")
}

// writeEnvSection renders one struct's env-tagged fields. Top-level scalar
// fields land in the named section; nested structs become their own
// sections.
func writeEnvSection(sb *strings.Builder, val reflect.Value, section string) {
	typ := val.Type()

	headerWritten := false

	for i := 0; i < typ.NumField(); i++ {
		field := typ.Field(i)
		value := val.Field(i)

		if value.Kind() == reflect.Struct && field.Name != "Build" {
			writeEnvSection(sb, value, field.Name)

			continue
		}

		tag, ok := field.Tag.Lookup("env")
		if !ok {
			continue
		}

		if !headerWritten {
			fmt.Fprintf(sb, "## %s\n", section)

			headerWritten = true
		}

		envVarName := strings.Split(tag, ",")[0]

		switch {
		case essentialEnvVars[envVarName]:
			fmt.Fprintf(sb, "%s=\"%s\"\n", envVarName, envValueString(value))
		case isEmptyValue(value):
			// Omit the value to prompt user input.
			fmt.Fprintf(sb, "# %s=\n", envVarName)
		default:
			fmt.Fprintf(sb, "# %s=%s\n", envVarName, envValueString(value))
		}
	}

	if headerWritten {
		sb.WriteString("\n")
	}
}

func envValueString(value reflect.Value) string {
	if value.Kind() == reflect.Slice {
		parts := make([]string, 0, value.Len())
		for i := 0; i < value.Len(); i++ {
			parts = append(parts, fmt.Sprintf("%v", value.Index(i).Interface()))
		}

		return strings.Join(parts, ",")
	}

	return fmt.Sprintf("%v", value.Interface())
}

func isEmptyValue(value reflect.Value) bool {
	switch value.Kind() {
	case reflect.Slice:
		return value.Len() == 0
	case reflect.String:
		return value.Len() == 0
	default:
		return false
	}
}

// generateYAMLFile generates the deploy/transcat.yaml.example file.
func generateYAMLFile() {
	cfg := &config.Config{}
	cfg.SetDefaults()

	var yamlContent strings.Builder

	if err := yaml.NewEncoder(&yamlContent, yaml.Indent(2)).Encode(cfg); err != nil {
		log.Fatal().Err(err).Msg("Failed to marshal config to YAML")
	}

	var sb strings.Builder
	sb.WriteString(yamlFileHeader)

	// Process the marshaled YAML line-by-line to create a clean template.
	for _, line := range strings.Split(yamlContent.String(), "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}

		// Top-level keys (e.g., "catalogs:") are treated as section headers.
		if !strings.HasPrefix(line, " ") && strings.HasSuffix(trimmed, ":") {
			fmt.Fprintf(&sb, "\n%s\n", line)

			continue
		}

		// Keep the locale fields uncommented; everything else documents its
		// default behind a comment.
		if strings.HasPrefix(trimmed, "sourceLocale:") || strings.HasPrefix(trimmed, "locales:") || strings.HasPrefix(trimmed, "- en") {
			if !strings.HasPrefix(line, " ") {
				sb.WriteString("\n")
			}

			sb.WriteString(line + "\n")

			continue
		}

		indentSize := len(line) - len(strings.TrimLeft(line, " "))
		fmt.Fprintf(&sb, "%s# %s\n", strings.Repeat(" ", indentSize), trimmed)
	}

	if err := os.WriteFile(yamlOutputFile, []byte(sb.String()), filePerm); err != nil {
		log.Fatal().Err(err).Str("path", yamlOutputFile).Msg("Failed to write config file")
	}

	log.Info().Str("path", yamlOutputFile).Msg("Successfully generated transcat.yaml.example")
}
