// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

package message

import (
	"errors"
	"fmt"
	"regexp"
	"unicode/utf8"
)

// MaxLength is the upper bound on accepted message text, in characters.
const MaxLength = 5000

// Validation failure reasons. Each is wrapped by a *FormatError.
var (
	ErrTooLong          = errors.New("message exceeds maximum length")
	ErrUnbalancedBraces = errors.New("unbalanced curly braces")
	ErrInvalidVariable  = errors.New("invalid variable name")
)

var identifierRegexp = regexp.MustCompile(`^[A-Za-z_$][A-Za-z0-9_$]*$`)

// FormatError reports a structurally malformed message. Reason is one of the
// Err* sentinels, so callers can branch with errors.Is.
type FormatError struct {
	Reason error
	Detail string
}

func (e *FormatError) Error() string {
	if e.Detail == "" {
		return e.Reason.Error()
	}

	return fmt.Sprintf("%s: %s", e.Reason, e.Detail)
}

func (e *FormatError) Unwrap() error {
	return e.Reason
}

// Validate checks a message for structural well-formedness: the length
// bound, balanced curly braces (the running depth may never go negative and
// must end at zero), and identifier-safe variable names. It must pass before
// a message is admitted to the extracted key set.
func Validate(msg string) error {
	if n := utf8.RuneCountInString(msg); n > MaxLength {
		return &FormatError{
			Reason: ErrTooLong,
			Detail: fmt.Sprintf("%d > %d characters", n, MaxLength),
		}
	}

	depth := 0

	for _, r := range msg {
		switch r {
		case '{':
			depth++
		case '}':
			depth--
		}

		if depth < 0 {
			return &FormatError{Reason: ErrUnbalancedBraces, Detail: "closing brace without opener"}
		}
	}

	if depth != 0 {
		return &FormatError{Reason: ErrUnbalancedBraces, Detail: fmt.Sprintf("%d unclosed", depth)}
	}

	// The extraction regexp only produces identifier-shaped names, so this
	// is defense-in-depth for callers that build messages another way.
	for _, name := range Classify(msg).Variables {
		if !identifierRegexp.MatchString(name) {
			return &FormatError{Reason: ErrInvalidVariable, Detail: name}
		}
	}

	return nil
}
