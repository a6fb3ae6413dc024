/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package render

import (
	"fmt"
	"strings"

	"chainguard.dev/datareport/reports/model"
	"github.com/charmbracelet/lipgloss/tree"
)

// Tree renders item and its descendants with one line per item listing its
// category values in their colors.
func Tree(report *model.Report, item *model.Item) (string, error) {
	t, err := subtree(report, item)
	if err != nil {
		return "", err
	}
	return t.String(), nil
}

func subtree(report *model.Report, item *model.Item) (*tree.Tree, error) {
	line, err := describe(report, item)
	if err != nil {
		return nil, err
	}
	t := tree.Root(line).Enumerator(tree.RoundedEnumerator)
	for _, child := range item.Items() {
		if child.IsLeaf() {
			leaf, err := describe(report, child)
			if err != nil {
				return nil, err
			}
			t.Child(leaf)
			continue
		}
		sub, err := subtree(report, child)
		if err != nil {
			return nil, err
		}
		t.Child(sub)
	}
	return t, nil
}

func describe(report *model.Report, item *model.Item) (string, error) {
	result := item.Result()
	parts := make([]string, 0, result.Len())
	for _, category := range result.Categories() {
		v, err := result.Get(category)
		if err != nil {
			return "", err
		}
		color, err := report.Result().ColorOf(category)
		if err != nil {
			return "", fmt.Errorf("item %q: %w", item.ID(), err)
		}
		parts = append(parts, Colorize(color, fmt.Sprintf("%s %s", category, item.Label(report, v))))
	}

	name := item.Name()
	if item.ID() != "" {
		name = fmt.Sprintf("%s [%s]", name, item.ID())
	}
	return fmt.Sprintf("%s: %s", name, strings.Join(parts, ", ")), nil
}
