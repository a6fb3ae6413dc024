/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

// Package table projects one item of a report into display columns and rows.
//
// A Model renders the children of a single item: one Column per category of
// the item's distribution and one Row per child, in source order. Rows keep a
// non-owning reference to their report so color, label, and tooltip lookups
// resolve against the report's root distribution and formatting. Projections
// are recomputed on every call and never modify the report.
package table
