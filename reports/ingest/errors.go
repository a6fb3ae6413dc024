/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package ingest

import "fmt"

// ParseError reports report text that is not well-formed JSON.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parsing report JSON: %v", e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// ValidationError reports well-formed JSON that violates the report schema.
type ValidationError struct {
	// Message is the validator's diagnostic.
	Message string
	Err     error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validating report JSON: %s", e.Message)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}
