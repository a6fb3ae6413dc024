/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package model_test

import (
	"testing"

	"chainguard.dev/datareport/reports/model"
	"golang.org/x/text/language"
)

func TestFormatLabel(t *testing.T) {
	tests := []struct {
		name   string
		format model.Format
		value  float64
		want   string
	}{{
		name:   "integer",
		format: model.DefaultFormat(),
		value:  42,
		want:   "42",
	}, {
		name:   "grouping",
		format: model.DefaultFormat(),
		value:  1234,
		want:   "1,234",
	}, {
		name:   "fraction rounded",
		format: model.DefaultFormat(),
		value:  2.345678,
		want:   "2.35",
	}, {
		name:   "german separators",
		format: model.Format{Locale: language.German, FractionDigits: 2},
		value:  1234.5,
		want:   "1.234,5",
	}, {
		name:   "no fraction digits",
		format: model.Format{Locale: language.English, FractionDigits: 0},
		value:  7.4,
		want:   "7",
	}}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.format.Label(tt.value); got != tt.want {
				t.Errorf("Label(%v): got = %q, wanted = %q", tt.value, got, tt.want)
			}
		})
	}
}
