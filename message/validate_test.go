// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

package message

import (
	"errors"
	"strings"
	"testing"
)

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		msg    string
		reason error
	}{
		{
			name: "Plain message is valid",
			msg:  "Save changes",
		},
		{
			name: "Balanced braces are valid",
			msg:  "{count, plural, one {# item} other {# items}}",
		},
		{
			name: "Empty message is valid",
			msg:  "",
		},
		{
			name:   "Message over length bound",
			msg:    strings.Repeat("a", MaxLength+1),
			reason: ErrTooLong,
		},
		{
			name: "Message at length bound is valid",
			msg:  strings.Repeat("a", MaxLength),
		},
		{
			name: "Multi-byte message at length bound is valid",
			msg:  strings.Repeat("ß", MaxLength),
		},
		{
			name:   "Multi-byte message over length bound",
			msg:    strings.Repeat("ß", MaxLength+1),
			reason: ErrTooLong,
		},
		{
			name:   "Unclosed brace",
			msg:    "Hello {name",
			reason: ErrUnbalancedBraces,
		},
		{
			name:   "Closing brace without opener",
			msg:    "Hello name}",
			reason: ErrUnbalancedBraces,
		},
		{
			name:   "Depth goes negative before recovering",
			msg:    "}{",
			reason: ErrUnbalancedBraces,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := Validate(tt.msg)

			if tt.reason == nil {
				if err != nil {
					t.Fatalf("Validate(%q) = %v, want nil", tt.msg, err)
				}

				return
			}

			if !errors.Is(err, tt.reason) {
				t.Fatalf("Validate(%q) = %v, want reason %v", tt.msg, err, tt.reason)
			}

			var formatErr *FormatError
			if !errors.As(err, &formatErr) {
				t.Fatalf("Validate(%q) = %T, want *FormatError", tt.msg, err)
			}
		})
	}
}
