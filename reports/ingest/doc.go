/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

/*
Package ingest turns raw report JSON into a model.Report.

# Overview

Build is the single entry point:

	report, err := ingest.Build(jsonText, "Nightly Tests")

It runs four steps, and no partial report escapes any of them:

 1. ExtractJSON strips surrounding whitespace and markdown code fences.
 2. The text is parsed; malformed JSON fails with *ParseError.
 3. The document is validated against the report schema; violations fail with
    *ValidationError carrying the validator's message.
 4. The document is decoded and handed to model.NewReport, which enforces id
    uniqueness and category consistency (model.ErrInvalidStructure).

# Schema

The report contract is reflected from the Document type:

	{
	  "label": "optional string",
	  "result": {
	    "items":  [{"id": "...", "name": "...", "result": {"<category>": 1}, "items": [...]}],
	    "colors": {"<category>": "<color token>"}
	  }
	}

Schema returns it as JSON for publishing alongside tooling.

# Metrics

Every Build call increments datareport_ingestions_total with its outcome.
*/
package ingest
