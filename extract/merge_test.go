// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

package extract

import (
	"reflect"
	"testing"
)

func keyIn(text string, files ...string) Key {
	return Key{Key: text, Message: text, Files: files}
}

func TestMerge(t *testing.T) {
	t.Parallel()

	a := []Key{keyIn("Save", "src/b.tsx"), keyIn("Cancel", "src/a.tsx")}
	b := []Key{keyIn("Save", "src/a.tsx", "src/b.tsx"), keyIn("Delete", "src/c.tsx")}

	got := Merge(a, b)

	want := []Key{
		keyIn("Cancel", "src/a.tsx"),
		keyIn("Delete", "src/c.tsx"),
		keyIn("Save", "src/a.tsx", "src/b.tsx"),
	}

	if !reflect.DeepEqual(got, want) {
		t.Errorf("Merge = %+v, want %+v", got, want)
	}
}

func TestMergeAssociative(t *testing.T) {
	t.Parallel()

	a := []Key{keyIn("Save", "src/a.tsx")}
	b := []Key{keyIn("Save", "src/b.tsx"), keyIn("Cancel", "src/b.tsx")}
	c := []Key{keyIn("Cancel", "src/c.tsx"), keyIn("Delete", "src/c.tsx")}

	left := Merge(Merge(a, b), c)
	right := Merge(a, Merge(b, c))

	if !reflect.DeepEqual(left, right) {
		t.Errorf("merge is not associative:\n left = %+v\nright = %+v", left, right)
	}
}

func TestMergeDoesNotMutateInputs(t *testing.T) {
	t.Parallel()

	a := []Key{keyIn("Save", "src/b.tsx")}
	b := []Key{keyIn("Save", "src/a.tsx")}

	Merge(a, b)

	if !reflect.DeepEqual(a[0].Files, []string{"src/b.tsx"}) {
		t.Errorf("input a mutated: %v", a[0].Files)
	}
}
