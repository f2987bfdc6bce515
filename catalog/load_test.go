// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"codeberg.org/pixivfe/transcat/extract"
)

func TestParseDefaultExport(t *testing.T) {
	t.Parallel()

	text := `export default {
  /* src/app.tsx */
  // Variables: name
  "Hello {name}": "Hallo {name}",
  "Cancel": "Abbrechen"
};
`

	got := Parse(text)

	assert.Equal(t, map[string]string{
		"Hello {name}": "Hallo {name}",
		"Cancel":       "Abbrechen",
	}, got)
}

func TestParseAssignmentExport(t *testing.T) {
	t.Parallel()

	text := `module.exports = {
  "Save": "Speichern",
};
`

	assert.Equal(t, map[string]string{"Save": "Speichern"}, Parse(text))
}

func TestParseJSON(t *testing.T) {
	t.Parallel()

	text := `{
  "Save": "Speichern",
  "Cancel": "Abbrechen"
}
`

	assert.Equal(t, map[string]string{
		"Save":   "Speichern",
		"Cancel": "Abbrechen",
	}, Parse(text))
}

func TestParseEscapedContent(t *testing.T) {
	t.Parallel()

	// Our uniform escaping writes \' even into JSON output, which strict
	// JSON parsers reject; the structural scanner must recover it.
	text := "{\n  \"It\\'s saved\": \"C\\'est enregistré\"\n}\n"

	assert.Equal(t, map[string]string{"It's saved": "C'est enregistré"}, Parse(text))
}

func TestParseFailsSoft(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		text string
	}{
		{name: "Empty file", text: ""},
		{name: "No object literal", text: "just some prose\n"},
		{name: "Truncated literal", text: `export default { "a": "b`},
		{name: "Binary garbage", text: "\x00\x01\x02"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := Parse(tt.text)

			require.NotNil(t, got)
			assert.LessOrEqual(t, len(got), 1)
		})
	}
}

func TestGenerateParseRoundTrip(t *testing.T) {
	t.Parallel()

	g := &Generator{}

	keys := []extract.Key{
		{Key: "Hello {name}", Message: "Hello {name}", Files: []string{"src/a.tsx"}, Variables: []string{"name"}},
		{Key: "It's here\nnow", Message: "It's here\nnow", Files: []string{"src/a.tsx"}},
	}

	existing := map[string]string{
		"Hello {name}":   "Hallo {name}",
		"It's here\nnow": "Es ist jetzt\nhier",
	}

	for _, format := range []string{"js", "ts", "json"} {
		out := g.Generate(format, keys, existing, false)

		assert.Equal(t, existing, Parse(out), "format %s", format)
	}
}

func TestLoad(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "de.js")

	require.NoError(t, os.WriteFile(path, []byte(`export default { "Save": "Speichern" };`), 0o644))

	got, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, map[string]string{"Save": "Speichern"}, got)

	_, err = Load(filepath.Join(dir, "missing.js"))
	assert.Error(t, err)
}
