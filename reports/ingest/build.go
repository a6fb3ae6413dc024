/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package ingest

import (
	"encoding/json"
	"errors"
	"fmt"

	"chainguard.dev/datareport/reports/model"
)

// Option is a functional option for configuring Build.
type Option func(*options) error

type options struct {
	validator *Validator
	report    []model.Option
}

// WithFormat sets the label formatting of the built report.
func WithFormat(f model.Format) Option {
	return func(o *options) error {
		o.report = append(o.report, model.WithFormat(f))
		return nil
	}
}

// WithValidator overrides the default schema validator.
func WithValidator(v *Validator) Option {
	return func(o *options) error {
		if v == nil {
			return errors.New("validator cannot be nil")
		}
		o.validator = v
		return nil
	}
}

// Build parses, validates, and converts text into a Report. A non-empty label
// takes precedence over the document's label; when both are empty the report
// is labeled model.DefaultLabel.
func Build(text, label string, opts ...Option) (*model.Report, error) {
	report, err := build(text, label, opts...)
	observe(err)
	return report, err
}

func build(text, label string, opts ...Option) (*model.Report, error) {
	var o options
	for _, opt := range opts {
		if err := opt(&o); err != nil {
			return nil, err
		}
	}
	if o.validator == nil {
		v, err := defaultValidator()
		if err != nil {
			return nil, err
		}
		o.validator = v
	}

	text = ExtractJSON(text)
	if err := o.validator.Validate(text); err != nil {
		return nil, err
	}

	// The text is well-formed and schema-valid here, so a decode failure
	// means a value the model cannot hold.
	var doc Document
	if err := json.Unmarshal([]byte(text), &doc); err != nil {
		return nil, &ValidationError{Message: err.Error(), Err: err}
	}

	if label == "" {
		label = doc.Label
	}
	report, err := model.NewReport(doc.Result, label, o.report...)
	if err != nil {
		return nil, fmt.Errorf("building report: %w", err)
	}
	return report, nil
}
