/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package render

import (
	"fmt"
	"io"

	"chainguard.dev/datareport/reports/table"
)

// Table writes the children of m's item as a markdown table. Each category
// cell shows the formatted value and the row's share of the parent. A final
// row carries the item's own totals.
func Table(w io.Writer, m *table.Model) error {
	view, err := Project(m)
	if err != nil {
		return err
	}

	headers := []string{"ID", "Name"}
	for _, c := range view.Columns {
		headers = append(headers, c.Header)
	}
	t := createStandardTable(w, headers, view.Columns)

	for _, row := range view.Rows {
		cells := []string{row.ID, row.Name}
		for _, cell := range row.Cells {
			cells = append(cells, fmt.Sprintf("%s (%.2f%%)", cell.Label, cell.Percentage))
		}
		if err := t.Append(cells); err != nil {
			return fmt.Errorf("appending row %q: %w", row.ID, err)
		}
	}

	total := []string{view.ID, "Total"}
	for _, cell := range view.Total {
		total = append(total, cell.Label)
	}
	if err := t.Append(total); err != nil {
		return fmt.Errorf("appending total: %w", err)
	}
	return t.Render()
}
