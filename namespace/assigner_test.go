// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

package namespace

import (
	"reflect"
	"testing"

	"codeberg.org/pixivfe/transcat/extract"
)

func TestSanitize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		raw  string
		want string
	}{
		{name: "Already safe", raw: "pages.employees", want: "pages.employees"},
		{name: "Id marker", raw: "pages.employees.[id]", want: "pages.employees.id"},
		{name: "Slug marker uppercase", raw: "blog.[SLUG]", want: "blog.slug"},
		{name: "Other bracket segment", raw: "shop.[category]", want: "shop.param"},
		{name: "Stray brackets stripped", raw: "a<b>c", want: "abc"},
		{name: "Unsafe characters become underscores", raw: "a b/c", want: "a_b_c"},
		{name: "Runs collapse", raw: "a__b...c", want: "a_b.c"},
		{name: "Separators trimmed", raw: "._a.b_.", want: "a.b"},
		{name: "Lowercased", raw: "Pages.Admin", want: "pages.admin"},
		{name: "Nothing left", raw: "()", want: ""},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := Sanitize(tt.raw); got != tt.want {
				t.Errorf("Sanitize(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}

func TestGenerateDirectory(t *testing.T) {
	t.Parallel()

	a := &Assigner{Strategy: StrategyDirectory, BaseDir: "."}

	tests := []struct {
		name string
		path string
		want string
	}{
		{name: "Dynamic route marker", path: "pages/employees/[id]/edit.tsx", want: "pages.employees.id"},
		{name: "Plain nesting", path: "pages/admin/users.tsx", want: "pages.admin"},
		{name: "Leading src stripped", path: "src/pages/admin/users.tsx", want: "pages.admin"},
		{name: "Route group dropped", path: "pages/(auth)/login.tsx", want: "pages"},
		{name: "File at base maps to common", path: "app.tsx", want: Common},
		{name: "Depth truncated", path: "pages/a/b/c/d.tsx", want: "pages.a.b"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := a.Generate(tt.path); got != tt.want {
				t.Errorf("Generate(%q) = %q, want %q", tt.path, got, tt.want)
			}
		})
	}
}

func TestGenerateFeature(t *testing.T) {
	t.Parallel()

	a := &Assigner{Strategy: StrategyFeature, BaseDir: "."}

	tests := []struct {
		name string
		path string
		want string
	}{
		{name: "Feature folder match", path: "src/features/checkout/Cart.tsx", want: "checkout"},
		{name: "Dynamic segment after feature folder", path: "src/pages/[id]/view.tsx", want: "id"},
		{name: "No feature folder falls back to directory", path: "src/lib/util/Fmt.tsx", want: "lib.util"},
		{name: "Feature folder is last directory", path: "src/features/Cart.tsx", want: "features"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := a.Generate(tt.path); got != tt.want {
				t.Errorf("Generate(%q) = %q, want %q", tt.path, got, tt.want)
			}
		})
	}
}

func TestGenerateFile(t *testing.T) {
	t.Parallel()

	a := &Assigner{Strategy: StrategyFile, BaseDir: "."}

	tests := []struct {
		name string
		path string
		want string
	}{
		{name: "File name appended", path: "pages/admin/Users.tsx", want: "pages.admin.users"},
		{name: "Index file omitted", path: "pages/admin/index.tsx", want: "pages.admin"},
		{name: "Default file omitted", path: "pages/admin/default.ts", want: "pages.admin"},
		{name: "Bare file at base", path: "Button.tsx", want: "button"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := a.Generate(tt.path); got != tt.want {
				t.Errorf("Generate(%q) = %q, want %q", tt.path, got, tt.want)
			}
		})
	}
}

func TestGenerateCustomAndFallbacks(t *testing.T) {
	t.Parallel()

	custom := &Assigner{
		Strategy: StrategyCustom,
		Custom: ResolverFunc(func(filePath, baseDir string) string {
			if filePath == "special.tsx" {
				return "Extra/Special"
			}

			return ""
		}),
	}

	if got := custom.Generate("special.tsx"); got != "extra_special" {
		t.Errorf("custom namespace = %q, want %q", got, "extra_special")
	}

	if got := custom.Generate("other.tsx"); got != Common {
		t.Errorf("empty custom result = %q, want %q", got, Common)
	}

	unknown := &Assigner{Strategy: "per-commit"}
	if got := unknown.Generate("src/a.tsx"); got != Common {
		t.Errorf("unknown strategy = %q, want %q", got, Common)
	}

	flat := &Assigner{}
	if got := flat.Generate("src/pages/a.tsx"); got != Common {
		t.Errorf("flat strategy = %q, want %q", got, Common)
	}
}

func TestFileName(t *testing.T) {
	t.Parallel()

	flat := &Assigner{Strategy: StrategyFlat}
	if got := flat.FileName("anything", "de", "js"); got != "de.js" {
		t.Errorf("flat FileName = %q, want de.js", got)
	}

	dir := &Assigner{Strategy: StrategyDirectory}

	if got := dir.FileName(Common, "de", "js"); got != "de.js" {
		t.Errorf("common FileName = %q, want de.js", got)
	}

	if got := dir.FileName("pages.admin", "de", "json"); got != "de.pages.admin.json" {
		t.Errorf("namespaced FileName = %q, want de.pages.admin.json", got)
	}
}

func TestGroupAndNamespaces(t *testing.T) {
	t.Parallel()

	keys := []extract.Key{
		{Key: "b", Namespace: "pages"},
		{Key: "a", Namespace: "pages"},
		{Key: "c"},
	}

	if got := Namespaces(keys); !reflect.DeepEqual(got, []string{Common, "pages"}) {
		t.Errorf("Namespaces = %v", got)
	}

	groups := Group(keys)

	if len(groups[Common]) != 1 || groups[Common][0].Key != "c" {
		t.Errorf("common group = %+v", groups[Common])
	}

	pages := groups["pages"]
	if len(pages) != 2 || pages[0].Key != "a" || pages[1].Key != "b" {
		t.Errorf("pages group not sorted: %+v", pages)
	}
}
