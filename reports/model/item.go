/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package model

// Item is one node of the report tree.
type Item struct {
	id       string
	name     string
	result   *Distribution
	explicit bool
	items    []*Item
}

// ID returns the item's identifier, unique within its report.
func (i *Item) ID() string {
	return i.id
}

// Name returns the human-readable name.
func (i *Item) Name() string {
	return i.name
}

// Result returns the item's own or aggregated distribution.
func (i *Item) Result() *Distribution {
	return i.result
}

// HasExplicitResult reports whether the result came from the source document
// rather than from aggregating children.
func (i *Item) HasExplicitResult() bool {
	return i.explicit
}

// Items returns the children in source order. Leaves return an empty slice.
func (i *Item) Items() []*Item {
	out := make([]*Item, len(i.items))
	copy(out, i.items)
	return out
}

// IsLeaf reports whether the item has no children.
func (i *Item) IsLeaf() bool {
	return len(i.items) == 0
}

// Label formats value using the report's formatting configuration.
func (i *Item) Label(r *Report, value float64) string {
	return r.Format().Label(value)
}
