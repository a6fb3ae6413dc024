/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package model

import (
	"errors"
	"fmt"
	"slices"
)

// DefaultLabel is used when neither the caller nor the document names a report.
const DefaultLabel = "Data Reporting"

// Option is a functional option for configuring a Report.
type Option func(*Report) error

// WithFormat sets the label formatting used by every item of the report.
func WithFormat(f Format) Option {
	return func(r *Report) error {
		if f.FractionDigits < 0 {
			return fmt.Errorf("fraction digits must not be negative, got %d", f.FractionDigits)
		}
		r.format = f
		return nil
	}
}

// Report binds a label to an item tree.
type Report struct {
	label      string
	root       *Item
	categories []string
	colors     Colors
	format     Format
	index      map[string]*Item
}

// NewReport builds the item tree for payload, computing aggregated
// distributions for items without an explicit result. The returned Report is
// rooted at a synthetic item with an empty id, named after the label, whose
// children are the payload's top-level items.
func NewReport(p Payload, label string, opts ...Option) (*Report, error) {
	if len(p.Items) == 0 {
		return nil, fmt.Errorf("%w: no items", ErrInvalidStructure)
	}
	if label == "" {
		label = DefaultLabel
	}

	r := &Report{
		label:  label,
		colors: p.Colors.clone(),
		format: DefaultFormat(),
		index:  make(map[string]*Item),
	}
	for _, opt := range opts {
		if err := opt(r); err != nil {
			return nil, err
		}
	}

	if err := r.scan(p.Items); err != nil {
		return nil, err
	}

	children := make([]*Item, 0, len(p.Items))
	for _, pi := range p.Items {
		children = append(children, r.build(pi))
	}
	r.root = &Item{
		name:   label,
		items:  children,
		result: sum(r.categories, r.colors, results(children)),
	}
	return r, nil
}

// scan checks id uniqueness and collects the category set in preorder.
func (r *Report) scan(items []PayloadItem) error {
	seen := make(map[string]struct{})
	var explicit []PayloadItem

	var walk func([]PayloadItem) error
	walk = func(items []PayloadItem) error {
		for _, pi := range items {
			if pi.ID == "" {
				return fmt.Errorf("%w: item %q has an empty id", ErrInvalidStructure, pi.Name)
			}
			if _, ok := seen[pi.ID]; ok {
				return fmt.Errorf("%w: %w: %q", ErrInvalidStructure, ErrDuplicateID, pi.ID)
			}
			seen[pi.ID] = struct{}{}

			if pi.Result != nil {
				explicit = append(explicit, pi)
				for _, category := range pi.Result.Keys() {
					if !slices.Contains(r.categories, category) {
						r.categories = append(r.categories, category)
					}
				}
			}
			if err := walk(pi.Items); err != nil {
				return err
			}
		}
		return nil
	}
	if err := walk(items); err != nil {
		return err
	}

	// Keys are unique per result and drawn from the union, so equal
	// lengths mean equal sets.
	var errs []error
	for _, pi := range explicit {
		if pi.Result.Len() != len(r.categories) {
			errs = append(errs, fmt.Errorf("%w: item %q has categories %v, want %v",
				ErrInvalidStructure, pi.ID, pi.Result.Keys(), r.categories))
		}
	}
	return errors.Join(errs...)
}

func (r *Report) build(pi PayloadItem) *Item {
	children := make([]*Item, 0, len(pi.Items))
	for _, child := range pi.Items {
		children = append(children, r.build(child))
	}

	item := &Item{
		id:    pi.ID,
		name:  pi.Name,
		items: children,
	}
	if pi.Result != nil {
		item.result = NewDistribution(pi.Result, r.colors)
		item.explicit = true
	} else {
		item.result = sum(r.categories, r.colors, results(children))
	}
	r.index[item.id] = item
	return item
}

func results(items []*Item) []*Distribution {
	out := make([]*Distribution, 0, len(items))
	for _, item := range items {
		out = append(out, item.result)
	}
	return out
}

// Label returns the report's label.
func (r *Report) Label() string {
	return r.label
}

// Root returns the synthetic root item.
func (r *Report) Root() *Item {
	return r.root
}

// Items returns the top-level items.
func (r *Report) Items() []*Item {
	return r.root.Items()
}

// Result returns the root distribution. Its color mapping serves every item.
func (r *Report) Result() *Distribution {
	return r.root.result
}

// Categories returns the report's category set in first-seen order.
func (r *Report) Categories() []string {
	return slices.Clone(r.categories)
}

// Format returns the label formatting configuration.
func (r *Report) Format() Format {
	return r.format
}

// Find returns the item with the given id. The empty id names the root.
func (r *Report) Find(id string) (*Item, error) {
	if id == "" {
		return r.root, nil
	}
	item, ok := r.index[id]
	if !ok {
		return nil, fmt.Errorf("item %q: %w", id, ErrKeyNotFound)
	}
	return item, nil
}

// Len returns the number of items in the tree, excluding the root.
func (r *Report) Len() int {
	return len(r.index)
}

// Walk visits every item below the root in depth-first order, parents before
// children and siblings in source order. Top-level items have depth 0.
func (r *Report) Walk(visitor func(depth int, item *Item)) {
	var walk func(int, []*Item)
	walk = func(depth int, items []*Item) {
		for _, item := range items {
			visitor(depth, item)
			walk(depth+1, item.items)
		}
	}
	walk(0, r.root.items)
}
