/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package publish

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"chainguard.dev/datareport/reports/model"
	"github.com/chainguard-dev/clog"
	"github.com/google/go-cmp/cmp"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	dto "github.com/prometheus/client_model/go"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

const demo = `{"label":"Demo","result":{"colors":{"pass":"green","fail":"red"},"items":[{"id":"root","name":"Root","items":[{"id":"a","name":"A","result":{"pass":3,"fail":1}},{"id":"b","name":"B","result":{"pass":2,"fail":0}}]}]}}`

const other = `{"result":{"colors":{"ok":"green"},"items":[{"id":"x","name":"X","result":{"ok":1}}]}}`

func labels(run *Run) []string {
	var out []string
	for _, r := range run.Reports() {
		out = append(out, r.Label())
	}
	return out
}

func TestPerform(t *testing.T) {
	workspace := t.TempDir()
	if err := os.MkdirAll(filepath.Join(workspace, "out"), 0o755); err != nil {
		t.Fatalf("MkdirAll: %v", err)
	}
	if err := os.WriteFile(filepath.Join(workspace, "out", "report.json"), []byte(demo), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	tests := []struct {
		name       string
		step       Step
		wantLabels []string
		wantErr    bool
	}{{
		name:       "inline",
		step:       Step{JSONString: demo},
		wantLabels: []string{"Demo"},
	}, {
		name:       "inline with label",
		step:       Step{JSONString: demo, Label: "Nightly"},
		wantLabels: []string{"Nightly"},
	}, {
		name:       "file wins over inline",
		step:       Step{JSONString: other, JSONFile: "out/report.json"},
		wantLabels: []string{"Demo"},
	}, {
		name:    "missing file",
		step:    Step{JSONFile: "out/missing.json"},
		wantErr: true,
	}, {
		name:    "escapes workspace",
		step:    Step{JSONFile: "../report.json"},
		wantErr: true,
	}, {
		name:    "absolute path",
		step:    Step{JSONFile: filepath.Join(workspace, "out", "report.json")},
		wantErr: true,
	}, {
		name: "schema violation is skipped",
		step: Step{JSONString: `{"label":"x"}`},
	}, {
		name: "out of range value is skipped",
		step: Step{JSONString: `{"result":{"colors":{"ok":"green"},"items":[{"id":"x","name":"X","result":{"ok":1e400}}]}}`},
	}, {
		name:    "malformed json",
		step:    Step{JSONString: `{"result":`},
		wantErr: true,
	}, {
		name:    "duplicate ids",
		step:    Step{JSONString: `{"result":{"colors":{"ok":"green"},"items":[{"id":"x","name":"X","result":{"ok":1}},{"id":"x","name":"Y","result":{"ok":2}}]}}`},
		wantErr: true,
	}}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			run := NewRun(tt.name)
			report, err := tt.step.Perform(context.Background(), run, workspace)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Perform: got error = %v, wanted error = %t", err, tt.wantErr)
			}
			if diff := cmp.Diff(tt.wantLabels, labels(run)); diff != "" {
				t.Errorf("attached labels (-want +got):\n%s", diff)
			}
			if (report != nil) != (len(tt.wantLabels) > 0) {
				t.Errorf("Perform: got report = %v, wanted attached = %t", report, len(tt.wantLabels) > 0)
			}
		})
	}
}

func TestPerformMetrics(t *testing.T) {
	step := NewStep()
	step.JSONString = demo
	step.Label = "metrics"
	if _, err := step.Perform(context.Background(), NewRun("m"), t.TempDir()); err != nil {
		t.Fatalf("Perform: %v", err)
	}

	if got := testutil.ToFloat64(itemsGauge.WithLabelValues("metrics")); got != 3 {
		t.Errorf("items gauge: got = %v, wanted = 3", got)
	}

	families, err := prometheus.DefaultGatherer.Gather()
	if err != nil {
		t.Fatalf("Gather: %v", err)
	}
	var family *dto.MetricFamily
	for _, f := range families {
		if f.GetName() == "datareport_ingestions_total" {
			family = f
		}
	}
	if family == nil {
		t.Fatal("datareport_ingestions_total not registered")
	}
	if got := family.GetType(); got != dto.MetricType_COUNTER {
		t.Errorf("type: got = %v, wanted = %v", got, dto.MetricType_COUNTER)
	}
}

func TestPerformMeter(t *testing.T) {
	reader := sdkmetric.NewManualReader()
	step := NewStep()
	step.metrics = newStepMetrics(sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader)))

	for _, text := range []string{demo, demo, `{"label":"x"}`} {
		step.JSONString = text
		if _, err := step.Perform(context.Background(), NewRun("meter"), t.TempDir()); err != nil {
			t.Fatalf("Perform: %v", err)
		}
	}

	var rm metricdata.ResourceMetrics
	if err := reader.Collect(context.Background(), &rm); err != nil {
		t.Fatalf("Collect: %v", err)
	}
	got := map[string]int64{}
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			sum, ok := m.Data.(metricdata.Sum[int64])
			if !ok {
				continue
			}
			for _, dp := range sum.DataPoints {
				got[m.Name] += dp.Value
			}
		}
	}
	want := map[string]int64{
		"datareport.reports.published": 2,
		"datareport.reports.skipped":   1,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("counters (-want +got):\n%s", diff)
	}
}

func TestPerformTracing(t *testing.T) {
	sr := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(sr))
	prev := otel.GetTracerProvider()
	otel.SetTracerProvider(tp)
	t.Cleanup(func() { otel.SetTracerProvider(prev) })

	ok := &Step{JSONString: demo}
	if _, err := ok.Perform(context.Background(), NewRun("t"), t.TempDir()); err != nil {
		t.Fatalf("Perform: %v", err)
	}
	bad := &Step{JSONString: "{"}
	if _, err := bad.Perform(context.Background(), NewRun("t"), t.TempDir()); err == nil {
		t.Fatal("Perform: got nil error for malformed json")
	}

	spans := sr.Ended()
	if len(spans) != 2 {
		t.Fatalf("spans: got = %d, wanted = 2", len(spans))
	}

	attrs := map[attribute.Key]attribute.Value{}
	for _, kv := range spans[0].Attributes() {
		attrs[kv.Key] = kv.Value
	}
	if got := spans[0].Name(); got != "report.publish" {
		t.Errorf("span name: got = %q, wanted = %q", got, "report.publish")
	}
	if got := attrs["report.source"].AsString(); got != SourceInline {
		t.Errorf("report.source: got = %q, wanted = %q", got, SourceInline)
	}
	if got := attrs["report.label"].AsString(); got != "Demo" {
		t.Errorf("report.label: got = %q, wanted = %q", got, "Demo")
	}
	if got := attrs["report.items"].AsInt64(); got != 3 {
		t.Errorf("report.items: got = %d, wanted = 3", got)
	}
	if got := spans[1].Status().Code; got != codes.Error {
		t.Errorf("status: got = %v, wanted = %v", got, codes.Error)
	}
}

func TestPerformLogsReportLabel(t *testing.T) {
	tests := []struct {
		name  string
		step  Step
		want  string
		avoid string
	}{
		{name: "document label", step: Step{JSONString: demo}, want: "with label: Demo", avoid: model.DefaultLabel},
		{name: "caller label", step: Step{JSONString: demo, Label: "Nightly"}, want: "with label: Nightly", avoid: "Demo"},
		{name: "default label", step: Step{JSONString: other}, want: "with label: " + model.DefaultLabel},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			ctx := clog.WithLogger(context.Background(), clog.New(slog.NewTextHandler(&buf, nil)))

			if _, err := tt.step.Perform(ctx, NewRun(tt.name), t.TempDir()); err != nil {
				t.Fatalf("Perform: %v", err)
			}
			out := buf.String()
			if !strings.Contains(out, tt.want) {
				t.Errorf("log output missing %q:\n%s", tt.want, out)
			}
			if tt.avoid != "" && strings.Contains(out, tt.avoid) {
				t.Errorf("log output mentions %q:\n%s", tt.avoid, out)
			}
		})
	}
}

func TestRun(t *testing.T) {
	run := NewRun("build-1")
	if got := run.ID(); got != "build-1" {
		t.Errorf("ID: got = %q, wanted = %q", got, "build-1")
	}
	if _, err := run.Report(0); !errors.Is(err, model.ErrKeyNotFound) {
		t.Errorf("Report(0): got = %v, wanted %v", err, model.ErrKeyNotFound)
	}

	report, err := model.NewReport(model.Payload{
		Colors: model.NewColors(model.Color{Category: "ok", Token: "green"}),
		Items: []model.PayloadItem{{
			ID: "x", Name: "X", Result: model.NewValues(model.Category{Name: "ok", Value: 1}),
		}},
	}, "one")
	if err != nil {
		t.Fatalf("NewReport: %v", err)
	}
	run.AddReport(report)

	got, err := run.Report(0)
	if err != nil {
		t.Fatalf("Report(0): %v", err)
	}
	if got != report {
		t.Errorf("Report(0): got = %p, wanted = %p", got, report)
	}
	if _, err := run.Report(-1); !errors.Is(err, model.ErrKeyNotFound) {
		t.Errorf("Report(-1): got = %v, wanted %v", err, model.ErrKeyNotFound)
	}
}
