/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package table

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Header converts a category name into its display form: words split on
// underscores, dashes, whitespace, lower-to-upper case changes, and the end
// of an acronym, each word title-cased, joined with single spaces.
func Header(category string) string {
	// Casers carry state, so each call gets its own.
	titler := cases.Title(language.English)
	words := splitWords(category)
	for i, w := range words {
		words[i] = titler.String(w)
	}
	return strings.Join(words, " ")
}

func splitWords(s string) []string {
	var words []string
	var current []rune
	flush := func() {
		if len(current) > 0 {
			words = append(words, string(current))
			current = current[:0]
		}
	}

	runes := []rune(s)
	for i, r := range runes {
		var prev, next rune
		if i > 0 {
			prev = runes[i-1]
		}
		if i+1 < len(runes) {
			next = runes[i+1]
		}

		switch {
		case r == '_' || r == '-' || unicode.IsSpace(r):
			flush()
		case unicode.IsUpper(r) && (unicode.IsLower(prev) || unicode.IsDigit(prev)):
			flush()
			current = append(current, r)
		case unicode.IsUpper(r) && unicode.IsUpper(prev) && unicode.IsLower(next):
			// Last capital of an acronym starts the next word: "HTTPStatus".
			flush()
			current = append(current, r)
		default:
			current = append(current, r)
		}
	}
	flush()
	return words
}
