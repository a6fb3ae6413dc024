/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package model

import (
	"encoding/json"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Category is one named value of a distribution.
type Category struct {
	Name  string
	Value float64
}

// Values is an ordered category to value mapping. Decoding keeps the key order
// of the source document, which determines column order when rendering.
type Values struct {
	m *orderedmap.OrderedMap[string, float64]
}

// NewValues returns Values holding the categories in the given order.
func NewValues(categories ...Category) *Values {
	v := &Values{m: orderedmap.New[string, float64]()}
	for _, c := range categories {
		v.m.Set(c.Name, c.Value)
	}
	return v
}

// Len returns the number of categories.
func (v *Values) Len() int {
	if v == nil || v.m == nil {
		return 0
	}
	return v.m.Len()
}

// Keys returns the category names in order.
func (v *Values) Keys() []string {
	keys := make([]string, 0, v.Len())
	if v.Len() == 0 {
		return keys
	}
	for pair := v.m.Oldest(); pair != nil; pair = pair.Next() {
		keys = append(keys, pair.Key)
	}
	return keys
}

// Get returns the value for a category and whether it is present.
func (v *Values) Get(name string) (float64, bool) {
	if v.Len() == 0 {
		return 0, false
	}
	return v.m.Get(name)
}

// Clone returns an independent copy of v.
func (v *Values) Clone() *Values {
	out := NewValues()
	if v.Len() == 0 {
		return out
	}
	for pair := v.m.Oldest(); pair != nil; pair = pair.Next() {
		out.m.Set(pair.Key, pair.Value)
	}
	return out
}

// UnmarshalJSON implements json.Unmarshaler, preserving key order.
func (v *Values) UnmarshalJSON(data []byte) error {
	m := orderedmap.New[string, float64]()
	if err := json.Unmarshal(data, m); err != nil {
		return err
	}
	v.m = m
	return nil
}

// MarshalJSON implements json.Marshaler, emitting keys in order.
func (v *Values) MarshalJSON() ([]byte, error) {
	if v.Len() == 0 {
		return []byte("{}"), nil
	}
	return json.Marshal(v.m)
}

// Color assigns a rendering color token to a category.
type Color struct {
	Category string
	Token    string
}

// Colors is an ordered category to color token mapping.
type Colors struct {
	m *orderedmap.OrderedMap[string, string]
}

// NewColors returns Colors holding the assignments in the given order.
func NewColors(colors ...Color) Colors {
	c := Colors{m: orderedmap.New[string, string]()}
	for _, color := range colors {
		c.m.Set(color.Category, color.Token)
	}
	return c
}

// Len returns the number of registered colors.
func (c Colors) Len() int {
	if c.m == nil {
		return 0
	}
	return c.m.Len()
}

// Get returns the color token for a category and whether it is registered.
func (c Colors) Get(category string) (string, bool) {
	if c.m == nil {
		return "", false
	}
	return c.m.Get(category)
}

// Map returns a copy of the assignments as a plain map.
func (c Colors) Map() map[string]string {
	out := make(map[string]string, c.Len())
	if c.m == nil {
		return out
	}
	for pair := c.m.Oldest(); pair != nil; pair = pair.Next() {
		out[pair.Key] = pair.Value
	}
	return out
}

func (c Colors) clone() Colors {
	out := NewColors()
	if c.m == nil {
		return out
	}
	for pair := c.m.Oldest(); pair != nil; pair = pair.Next() {
		out.m.Set(pair.Key, pair.Value)
	}
	return out
}

// UnmarshalJSON implements json.Unmarshaler, preserving key order.
func (c *Colors) UnmarshalJSON(data []byte) error {
	m := orderedmap.New[string, string]()
	if err := json.Unmarshal(data, m); err != nil {
		return err
	}
	c.m = m
	return nil
}

// MarshalJSON implements json.Marshaler, emitting keys in order.
func (c Colors) MarshalJSON() ([]byte, error) {
	if c.m == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(c.m)
}
