/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package model

import (
	"fmt"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Distribution is the keyed numeric result attached to an Item, together with
// the report's category colors.
type Distribution struct {
	values *Values
	colors Colors
}

// NewDistribution returns a Distribution over a copy of values using colors
// for lookups.
func NewDistribution(values *Values, colors Colors) *Distribution {
	return &Distribution{values: values.Clone(), colors: colors}
}

// Categories returns the category names in iteration order.
func (d *Distribution) Categories() []string {
	return d.values.Keys()
}

// Values returns a copy of the ordered values.
func (d *Distribution) Values() *Values {
	return d.values.Clone()
}

// Len returns the number of categories.
func (d *Distribution) Len() int {
	return d.values.Len()
}

// Get returns the value recorded for category.
func (d *Distribution) Get(category string) (float64, error) {
	v, ok := d.values.Get(category)
	if !ok {
		return 0, fmt.Errorf("category %q: %w", category, ErrKeyNotFound)
	}
	return v, nil
}

// ColorOf returns the color token registered for category.
func (d *Distribution) ColorOf(category string) (string, error) {
	token, ok := d.colors.Get(category)
	if !ok {
		return "", fmt.Errorf("color for category %q: %w", category, ErrKeyNotFound)
	}
	return token, nil
}

// Colors returns a copy of the category color assignments.
func (d *Distribution) Colors() map[string]string {
	return d.colors.Map()
}

// Total returns the sum over all categories.
func (d *Distribution) Total() float64 {
	var total float64
	for _, category := range d.values.Keys() {
		v, _ := d.values.Get(category)
		total += v
	}
	return total
}

// PercentageOf returns value/total*100 for category. A zero total yields 0.
func (d *Distribution) PercentageOf(category string, total float64) (float64, error) {
	v, err := d.Get(category)
	if err != nil {
		return 0, err
	}
	if total == 0 {
		return 0, nil
	}
	return v / total * 100, nil
}

// sum returns the key-wise sum of parts over categories. Categories missing
// from a part contribute zero.
func sum(categories []string, colors Colors, parts []*Distribution) *Distribution {
	m := orderedmap.New[string, float64]()
	for _, category := range categories {
		var total float64
		for _, part := range parts {
			v, _ := part.values.Get(category)
			total += v
		}
		m.Set(category, total)
	}
	return &Distribution{values: &Values{m: m}, colors: colors}
}
