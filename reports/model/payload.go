/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package model

// Payload is the decoded "result" object of a report document.
type Payload struct {
	Items  []PayloadItem `json:"items" jsonschema:"required,minItems=1,description=Top-level report items"`
	Colors Colors        `json:"colors" jsonschema:"required,description=Color token per category"`
}

// PayloadItem is one decoded item of a report document.
type PayloadItem struct {
	ID     string        `json:"id" jsonschema:"required,minLength=1,description=Identifier unique within the report"`
	Name   string        `json:"name" jsonschema:"required,description=Display name"`
	Result *Values       `json:"result,omitempty" jsonschema:"description=Value per category"`
	Items  []PayloadItem `json:"items,omitempty" jsonschema:"description=Child items"`
}
