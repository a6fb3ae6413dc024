/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package ingest

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

const schemaURL = "https://chainguard.dev/datareport/report.schema.json"

// Validator checks report documents against the reflected report schema.
type Validator struct {
	schema *jsonschema.Schema
}

// NewValidator compiles the report schema.
func NewValidator() (*Validator, error) {
	raw, err := json.Marshal(NewGenerator().Reflect(&Document{}))
	if err != nil {
		return nil, fmt.Errorf("marshaling report schema: %w", err)
	}
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("decoding report schema: %w", err)
	}

	c := jsonschema.NewCompiler()
	if err := c.AddResource(schemaURL, doc); err != nil {
		return nil, fmt.Errorf("adding report schema: %w", err)
	}
	schema, err := c.Compile(schemaURL)
	if err != nil {
		return nil, fmt.Errorf("compiling report schema: %w", err)
	}
	return &Validator{schema: schema}, nil
}

var defaultValidator = sync.OnceValues(NewValidator)

// Validate parses text and checks it against the schema. It returns
// *ParseError for malformed JSON and *ValidationError for schema violations.
func (v *Validator) Validate(text string) error {
	inst, err := jsonschema.UnmarshalJSON(strings.NewReader(text))
	if err != nil {
		return &ParseError{Err: err}
	}
	if err := v.schema.Validate(inst); err != nil {
		msg := err.Error()
		var verr *jsonschema.ValidationError
		if errors.As(err, &verr) {
			msg = verr.Error()
		}
		return &ValidationError{Message: msg, Err: err}
	}
	return nil
}
