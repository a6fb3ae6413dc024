/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package ingest

import (
	"errors"

	"chainguard.dev/datareport/reports/model"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Ingestion outcomes recorded on datareport_ingestions_total.
const (
	OutcomeOK              = "ok"
	OutcomeParseError      = "parse_error"
	OutcomeValidationError = "validation_error"
	OutcomeStructureError  = "structure_error"
	OutcomeError           = "error"
)

var ingestionCounter = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "datareport_ingestions_total",
		Help: "Total number of report ingestions by outcome",
	},
	[]string{"outcome"},
)

// Outcome classifies the result of a Build call.
func Outcome(err error) string {
	var perr *ParseError
	var verr *ValidationError
	switch {
	case err == nil:
		return OutcomeOK
	case errors.As(err, &perr):
		return OutcomeParseError
	case errors.As(err, &verr):
		return OutcomeValidationError
	case errors.Is(err, model.ErrInvalidStructure):
		return OutcomeStructureError
	default:
		return OutcomeError
	}
}

func observe(err error) {
	ingestionCounter.WithLabelValues(Outcome(err)).Inc()
}
