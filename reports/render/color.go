/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// palette maps named color tokens to ANSI colors.
var palette = map[string]lipgloss.Color{
	"black":   "0",
	"red":     "1",
	"green":   "2",
	"yellow":  "3",
	"blue":    "4",
	"magenta": "5",
	"purple":  "5",
	"cyan":    "6",
	"white":   "7",
	"gray":    "8",
	"grey":    "8",
	"orange":  "208",
	"brown":   "130",
	"pink":    "213",
	"indigo":  "54",
	"teal":    "30",
	"lime":    "154",
}

// ColorFor resolves a color token. Hex tokens ("#4caf50") pass through, named
// tokens are matched case-insensitively with an optional leading "--", and
// unknown tokens render without color.
func ColorFor(token string) lipgloss.TerminalColor {
	token = strings.TrimSpace(token)
	if strings.HasPrefix(token, "#") {
		return lipgloss.Color(token)
	}
	name := strings.ToLower(strings.TrimPrefix(token, "--"))
	name = strings.TrimPrefix(name, "light-")
	if c, ok := palette[name]; ok {
		return c
	}
	return lipgloss.NoColor{}
}

// Colorize renders text in the color named by token.
func Colorize(token, text string) string {
	return lipgloss.NewStyle().Foreground(ColorFor(token)).Render(text)
}
