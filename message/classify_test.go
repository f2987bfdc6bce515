// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

package message

import (
	"reflect"
	"testing"
)

func TestClassify(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		msg       string
		variables []string
		hasPlural bool
		hasDate   bool
	}{
		{
			name:      "Plain text has no features",
			msg:       "Save changes",
			variables: nil,
		},
		{
			name:      "Variables in first-seen order",
			msg:       "Hello {name}, you have {count} messages",
			variables: []string{"name", "count"},
		},
		{
			name:      "Repeated variable collected once",
			msg:       "{name} and {other} and {name}",
			variables: []string{"name", "other"},
		},
		{
			name:      "Dollar and underscore identifiers",
			msg:       "{$amount} due by {_deadline}",
			variables: []string{"$amount", "_deadline"},
		},
		{
			name:      "Plural tag detected",
			msg:       "{count, plural, one {# item} other {# items}}",
			hasPlural: true,
		},
		{
			name:    "Date tag detected",
			msg:     "Today is {date, date, short}",
			hasDate: true,
		},
		{
			name:    "Time tag detected",
			msg:     "Starts at {start, time, short}",
			hasDate: true,
		},
		{
			name:      "ICU tag is not a variable",
			msg:       "{count, plural, one {# item} other {# items}}",
			variables: nil,
			hasPlural: true,
		},
		{
			name:      "Variable alongside plural tag",
			msg:       "{name} has {count, plural, one {# item} other {# items}}",
			variables: []string{"name"},
			hasPlural: true,
		},
		{
			name:      "Leading digit is not an identifier",
			msg:       "literal {2fast} braces",
			variables: nil,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := Classify(tt.msg)

			if !reflect.DeepEqual(got.Variables, tt.variables) {
				t.Errorf("Variables = %v, want %v", got.Variables, tt.variables)
			}

			if got.HasPlural != tt.hasPlural {
				t.Errorf("HasPlural = %v, want %v", got.HasPlural, tt.hasPlural)
			}

			if got.HasDate != tt.hasDate {
				t.Errorf("HasDate = %v, want %v", got.HasDate, tt.hasDate)
			}
		})
	}
}
