// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

package extract

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestFromText(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "Double-quoted literal",
			text: `submit(t("Save changes"))`,
			want: []string{"Save changes"},
		},
		{
			name: "Single-quoted literal",
			text: `label = t('Cancel')`,
			want: []string{"Cancel"},
		},
		{
			name: "Backtick literal with variable",
			text: "greet(t(`Hello {name}`))",
			want: []string{"Hello {name}"},
		},
		{
			name: "Multiline backtick literal",
			text: "t(`line one\nline two`)",
			want: []string{"line one\nline two"},
		},
		{
			name: "Variable argument is skipped",
			text: `t(variableName)`,
			want: nil,
		},
		{
			name: "Concatenation is skipped",
			text: `t("key" + suffix)`,
			want: nil,
		},
		{
			name: "Identifier ending in t does not match",
			text: `format("not a key"); result("also not")`,
			want: nil,
		},
		{
			name: "Method call matches",
			text: `i18n.t("Welcome back")`,
			want: []string{"Welcome back"},
		},
		{
			name: "Whitespace around the literal",
			text: "t(  \"Padded\"  )",
			want: []string{"Padded"},
		},
		{
			name: "Escaped quote inside literal",
			text: `t("It\'s saved")`,
			want: []string{"It's saved"},
		},
		{
			name: "Duplicate message collapses to one key",
			text: `t("Twice"); t("Twice")`,
			want: []string{"Twice"},
		},
		{
			name: "Unbalanced braces are dropped",
			text: `t("broken {name"); t("intact {name}")`,
			want: []string{"intact {name}"},
		},
		{
			name: "Several call sites in one file",
			text: "a = t(\"First\")\nb = t('Second')\n",
			want: []string{"First", "Second"},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			keys := FromText(tt.text, "src/app.tsx")

			var got []string
			for _, k := range keys {
				got = append(got, k.Key)
			}

			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("keys = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFromTextClassification(t *testing.T) {
	t.Parallel()

	keys := FromText("t(`Hello {name}`)", "src/app.tsx")

	if len(keys) != 1 {
		t.Fatalf("expected one key, got %d", len(keys))
	}

	k := keys[0]

	if k.Key != "Hello {name}" || k.Message != "Hello {name}" {
		t.Errorf("key/message = %q/%q, want %q", k.Key, k.Message, "Hello {name}")
	}

	if !reflect.DeepEqual(k.Variables, []string{"name"}) {
		t.Errorf("variables = %v, want [name]", k.Variables)
	}

	if !reflect.DeepEqual(k.Files, []string{"src/app.tsx"}) {
		t.Errorf("files = %v, want [src/app.tsx]", k.Files)
	}
}

func TestFromFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "page.tsx")

	if err := os.WriteFile(path, []byte(`export const x = t("From disk");`), 0o644); err != nil {
		t.Fatal(err)
	}

	keys, err := FromFile(path)
	if err != nil {
		t.Fatalf("FromFile: %v", err)
	}

	if len(keys) != 1 || keys[0].Key != "From disk" {
		t.Errorf("keys = %+v, want one key %q", keys, "From disk")
	}

	if _, err := FromFile(filepath.Join(dir, "missing.tsx")); err == nil {
		t.Error("expected an error for a missing file")
	}
}
