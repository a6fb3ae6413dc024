/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package ingest

import (
	"strings"
)

// ExtractJSON returns the JSON content of text. If text contains a ```json
// fenced block, the block's content is returned; otherwise surrounding
// whitespace, a UTF-8 byte order mark, and bare ``` fences are removed.
func ExtractJSON(text string) string {
	text = strings.TrimPrefix(text, "\ufeff")

	// Collect the first ```json block until its closing fence.
	lines := strings.Split(text, "\n")
	var block []string
	inBlock, found := false, false
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if !inBlock && trimmed == "```json" {
			inBlock, found = true, true
			continue
		}
		if inBlock && trimmed == "```" {
			break
		}
		if inBlock {
			block = append(block, line)
		}
	}
	if found {
		return strings.TrimSpace(strings.Join(block, "\n"))
	}

	text = strings.TrimSpace(text)
	if strings.HasPrefix(text, "```json") && strings.HasSuffix(text, "```") {
		text = strings.TrimPrefix(text, "```json")
	} else {
		text = strings.TrimPrefix(text, "```")
	}
	text = strings.TrimSuffix(text, "```")
	return strings.TrimSpace(text)
}
