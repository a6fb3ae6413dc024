/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

// Package view serves a run's reports over HTTP with per-item drill-down.
//
// Routes:
//
//	GET /api/v1/reports                             list attached reports
//	GET /api/v1/reports/{report}                    table of the report root
//	GET /api/v1/reports/{report}/tree               text tree of the report
//	GET /api/v1/reports/{report}/items/{item}       table of one item
//
// Table routes answer JSON by default; ?format=yaml and ?format=table select
// YAML and a markdown table. Reports are addressed by attachment index and
// items by id, so row ids link directly to the next drill-down level.
package view
