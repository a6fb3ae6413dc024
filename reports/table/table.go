/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package table

import (
	"fmt"

	"chainguard.dev/datareport/reports/model"
)

// KindNumber marks a column holding numeric values, rendered right-aligned.
const KindNumber = "number"

// Column describes one category column.
type Column struct {
	// DataKey identifies the column's cells, "<category>-absolute".
	DataKey string `json:"dataKey" yaml:"dataKey"`
	// Category is the distribution key backing the column.
	Category string `json:"category" yaml:"category"`
	// Header is the display form of the category.
	Header string `json:"header" yaml:"header"`
	// Kind is the alignment class of the column.
	Kind string `json:"kind" yaml:"kind"`
}

// ColumnsFor returns one column per category of item's distribution, in the
// distribution's iteration order.
func ColumnsFor(item *model.Item) []Column {
	categories := item.Result().Categories()
	columns := make([]Column, 0, len(categories))
	for _, category := range categories {
		columns = append(columns, Column{
			DataKey:  fmt.Sprintf("%s-absolute", category),
			Category: category,
			Header:   Header(category),
			Kind:     KindNumber,
		})
	}
	return columns
}

// Row is one child item as shown in the parent's table.
type Row struct {
	report *model.Report
	parent *model.Item
	item   *model.Item
}

// RowsFor returns one row per child of item, preserving child order.
func RowsFor(report *model.Report, item *model.Item) []Row {
	children := item.Items()
	rows := make([]Row, 0, len(children))
	for _, child := range children {
		rows = append(rows, Row{report: report, parent: item, item: child})
	}
	return rows
}

// ID returns the child's id, used to link to its own table.
func (r Row) ID() string {
	return r.item.ID()
}

// Name returns the child's display name.
func (r Row) Name() string {
	return r.item.Name()
}

// Item returns the child item for drill-down.
func (r Row) Item() *model.Item {
	return r.item
}

// Colors returns the report's category colors.
func (r Row) Colors() map[string]string {
	return r.report.Result().Colors()
}

// ColorOf returns the color token for category from the report's root
// distribution.
func (r Row) ColorOf(category string) (string, error) {
	return r.report.Result().ColorOf(category)
}

// Value returns the child's value for category.
func (r Row) Value(category string) (float64, error) {
	return r.item.Result().Get(category)
}

// Percentage returns the child's share of the parent's value for category.
func (r Row) Percentage(category string) (float64, error) {
	total, err := r.parent.Result().Get(category)
	if err != nil {
		return 0, err
	}
	return r.item.Result().PercentageOf(category, total)
}

// Label formats value using the child's formatting.
func (r Row) Label(value float64) string {
	return r.item.Label(r.report, value)
}

// Tooltip returns "<id>: <percentage>%" with two fraction digits.
func (r Row) Tooltip(id string, percentage float64) string {
	return fmt.Sprintf("%s: %.2f%%", id, percentage)
}

// Model is the table of one item's children.
type Model struct {
	report *model.Report
	item   *model.Item
}

// New returns the table model rendering item of report.
func New(report *model.Report, item *model.Item) *Model {
	return &Model{report: report, item: item}
}

// ForID returns the table model for the item with the given id. The empty id
// selects the report root.
func ForID(report *model.Report, id string) (*Model, error) {
	item, err := report.Find(id)
	if err != nil {
		return nil, err
	}
	return New(report, item), nil
}

// ID returns the rendered item's id.
func (m *Model) ID() string {
	return m.item.ID()
}

// Report returns the report the item belongs to.
func (m *Model) Report() *model.Report {
	return m.report
}

// Item returns the rendered item.
func (m *Model) Item() *model.Item {
	return m.item
}

// Columns returns the category columns.
func (m *Model) Columns() []Column {
	return ColumnsFor(m.item)
}

// Rows returns the child rows.
func (m *Model) Rows() []Row {
	return RowsFor(m.report, m.item)
}

// Label formats value using the rendered item's formatting.
func (m *Model) Label(value float64) string {
	return m.item.Label(m.report, value)
}
