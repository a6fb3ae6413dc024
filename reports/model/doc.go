/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

/*
Package model holds the in-memory report tree built from a validated report
document.

# Overview

A Report binds a label to a tree of Items. Every Item carries a Distribution:
an ordered mapping from category name (for example "passed" or "failed") to a
non-negative number, plus the color token registered for each category.

	payload := model.Payload{
		Colors: model.NewColors(
			model.Color{Category: "pass", Token: "green"},
			model.Color{Category: "fail", Token: "red"},
		),
		Items: []model.PayloadItem{{
			ID:   "suite",
			Name: "Suite",
			Items: []model.PayloadItem{
				{ID: "a", Name: "A", Result: model.NewValues(
					model.Category{Name: "pass", Value: 3},
					model.Category{Name: "fail", Value: 1},
				)},
			},
		}},
	}

	report, err := model.NewReport(payload, "Tests")

# Aggregation

Distributions are fixed when the Report is constructed. An Item with an
explicit result keeps it unchanged, even when it also has children. An Item
without one gets the key-wise sum of its children's distributions. The
report's category set is the union of the explicit results' keys in the order
they are first seen, and every explicit result must use exactly that set.

# Errors

Construction fails with ErrInvalidStructure (and ErrDuplicateID for id
collisions, which also matches ErrInvalidStructure). Lookups of unknown
categories, colors, or item ids fail with ErrKeyNotFound.

# Thread Safety

Reports are immutable after construction and safe for concurrent readers.
*/
package model
