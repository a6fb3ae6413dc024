/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package render

import (
	"encoding/json"
	"fmt"
	"io"

	"chainguard.dev/datareport/reports/table"
	"gopkg.in/yaml.v3"
)

// View is the serializable projection of one item's table.
type View struct {
	Report  string         `json:"report" yaml:"report"`
	ID      string         `json:"id" yaml:"id"`
	Name    string         `json:"name" yaml:"name"`
	Columns []table.Column `json:"columns" yaml:"columns"`
	Rows    []RowView      `json:"rows" yaml:"rows"`
	Total   []Cell         `json:"total" yaml:"total"`
}

// RowView is one child row of a View.
type RowView struct {
	ID    string `json:"id" yaml:"id"`
	Name  string `json:"name" yaml:"name"`
	Leaf  bool   `json:"leaf" yaml:"leaf"`
	Cells []Cell `json:"cells" yaml:"cells"`
}

// Cell is the value of one category in a row.
type Cell struct {
	DataKey    string  `json:"dataKey" yaml:"dataKey"`
	Value      float64 `json:"value" yaml:"value"`
	Label      string  `json:"label" yaml:"label"`
	Percentage float64 `json:"percentage" yaml:"percentage"`
	Tooltip    string  `json:"tooltip,omitempty" yaml:"tooltip,omitempty"`
	Color      string  `json:"color" yaml:"color"`
}

// Project computes the View of m. It fails when a category has no color.
func Project(m *table.Model) (*View, error) {
	columns := m.Columns()
	view := &View{
		Report:  m.Report().Label(),
		ID:      m.ID(),
		Name:    m.Item().Name(),
		Columns: columns,
		Rows:    []RowView{},
	}

	for _, row := range m.Rows() {
		rv := RowView{
			ID:    row.ID(),
			Name:  row.Name(),
			Leaf:  row.Item().IsLeaf(),
			Cells: make([]Cell, 0, len(columns)),
		}
		for _, c := range columns {
			cell, err := rowCell(row, c)
			if err != nil {
				return nil, err
			}
			rv.Cells = append(rv.Cells, cell)
		}
		view.Rows = append(view.Rows, rv)
	}

	result := m.Item().Result()
	for _, c := range columns {
		v, err := result.Get(c.Category)
		if err != nil {
			return nil, err
		}
		color, err := m.Report().Result().ColorOf(c.Category)
		if err != nil {
			return nil, err
		}
		pct, err := result.PercentageOf(c.Category, result.Total())
		if err != nil {
			return nil, err
		}
		view.Total = append(view.Total, Cell{
			DataKey:    c.DataKey,
			Value:      v,
			Label:      m.Label(v),
			Percentage: pct,
			Color:      color,
		})
	}
	return view, nil
}

func rowCell(row table.Row, c table.Column) (Cell, error) {
	v, err := row.Value(c.Category)
	if err != nil {
		return Cell{}, fmt.Errorf("row %q: %w", row.ID(), err)
	}
	pct, err := row.Percentage(c.Category)
	if err != nil {
		return Cell{}, fmt.Errorf("row %q: %w", row.ID(), err)
	}
	color, err := row.ColorOf(c.Category)
	if err != nil {
		return Cell{}, fmt.Errorf("row %q: %w", row.ID(), err)
	}
	return Cell{
		DataKey:    c.DataKey,
		Value:      v,
		Label:      row.Label(v),
		Percentage: pct,
		Tooltip:    row.Tooltip(row.ID(), pct),
		Color:      color,
	}, nil
}

// JSON writes the projection of m as indented JSON.
func JSON(w io.Writer, m *table.Model) error {
	view, err := Project(m)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(view)
}

// YAML writes the projection of m as YAML.
func YAML(w io.Writer, m *table.Model) error {
	view, err := Project(m)
	if err != nil {
		return err
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(view); err != nil {
		return fmt.Errorf("encoding yaml: %w", err)
	}
	return enc.Close()
}
