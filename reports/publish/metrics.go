/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package publish

import (
	"context"
	"log/slog"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
)

const meterName = "chainguard.datareport.publish"

var itemsGauge = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Name: "datareport_report_items",
		Help: "Number of items in the most recently published report",
	},
	[]string{"label"},
)

// stepMetrics records publish outcomes through OpenTelemetry. Instruments
// that fail to initialize fall back to no-op counters.
type stepMetrics struct {
	published metric.Int64Counter
	skipped   metric.Int64Counter
}

func newStepMetrics(mp metric.MeterProvider) *stepMetrics {
	meter := mp.Meter(meterName, metric.WithInstrumentationVersion("1.0.0"))

	published, err := meter.Int64Counter("datareport.reports.published",
		metric.WithDescription("The number of reports attached to runs"),
		metric.WithUnit("{reports}"))
	if err != nil {
		slog.Warn("Failed to create published counter, metrics will be disabled", "error", err, "meter", meterName)
		published = noop.Int64Counter{}
	}

	skipped, err := meter.Int64Counter("datareport.reports.skipped",
		metric.WithDescription("The number of report documents skipped after failing validation"),
		metric.WithUnit("{reports}"))
	if err != nil {
		slog.Warn("Failed to create skipped counter, metrics will be disabled", "error", err, "meter", meterName)
		skipped = noop.Int64Counter{}
	}

	return &stepMetrics{published: published, skipped: skipped}
}

var defaultStepMetrics = sync.OnceValue(func() *stepMetrics {
	return newStepMetrics(otel.GetMeterProvider())
})

func (m *stepMetrics) recordPublished(ctx context.Context, source string) {
	m.published.Add(ctx, 1, metric.WithAttributes(attribute.String("source", source)))
}

func (m *stepMetrics) recordSkipped(ctx context.Context, source string) {
	m.skipped.Add(ctx, 1, metric.WithAttributes(attribute.String("source", source)))
}
