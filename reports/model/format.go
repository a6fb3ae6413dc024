/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package model

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// DefaultFractionDigits is the number of fraction digits shown by default.
const DefaultFractionDigits = 2

// Format controls how numeric values are rendered as labels.
type Format struct {
	// Locale selects grouping and decimal separators.
	Locale language.Tag
	// FractionDigits is the maximum number of fraction digits shown.
	FractionDigits int
}

// DefaultFormat returns English formatting with two fraction digits.
func DefaultFormat() Format {
	return Format{Locale: language.English, FractionDigits: DefaultFractionDigits}
}

// Label formats value for display.
func (f Format) Label(value float64) string {
	digits := f.FractionDigits
	if digits < 0 {
		digits = 0
	}
	p := message.NewPrinter(f.Locale)
	return p.Sprintf("%v", number.Decimal(value, number.MaxFractionDigits(digits)))
}
