/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

// Package render writes report table projections for people and tools.
//
// Table renders the children of one item as a markdown table, Tree renders a
// whole report as a colored tree, and JSON and YAML export the projection
// returned by Project. Every sink resolves category colors through the
// report's root distribution and fails with model.ErrKeyNotFound when a
// category has no color registered.
//
// Basic usage:
//
//	m, err := table.ForID(report, "")
//	if err != nil {
//		return err
//	}
//	if err := render.Table(os.Stdout, m); err != nil {
//		return err
//	}
package render
