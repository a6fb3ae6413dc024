/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package publish

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"chainguard.dev/datareport/reports/ingest"
	"chainguard.dev/datareport/reports/model"
	"github.com/chainguard-dev/clog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	oteltrace "go.opentelemetry.io/otel/trace"
)

// Report sources recorded on the publish span.
const (
	SourceInline = "inline"
	SourceFile   = "file"
)

// Step publishes one report to a run.
type Step struct {
	// JSONString is the inline report document.
	JSONString string
	// JSONFile is a workspace-relative path to the report document. When set
	// it replaces JSONString.
	JSONFile string
	// Label names the report. When empty the document's label is used, and
	// model.DefaultLabel when the document has none.
	Label string

	opts    []ingest.Option
	metrics *stepMetrics
}

// NewStep creates a step that builds reports with opts.
func NewStep(opts ...ingest.Option) *Step {
	return &Step{opts: opts}
}

// Perform builds the report and attaches it to run. It returns the attached
// report, or nil without error when the document fails schema validation.
func (s *Step) Perform(ctx context.Context, run Attacher, workspace string) (_ *model.Report, err error) {
	log := clog.FromContext(ctx)
	log.Info("[PublishReportStep] Report data...")

	source := SourceInline
	if strings.TrimSpace(s.JSONFile) != "" {
		source = SourceFile
	}
	metrics := s.metrics
	if metrics == nil {
		metrics = defaultStepMetrics()
	}

	tr := otel.Tracer("chainguard.datareport.publish",
		oteltrace.WithInstrumentationVersion("1.0.0"))
	ctx, span := tr.Start(ctx, "report.publish", oteltrace.WithAttributes(
		attribute.String("report.source", source),
	))
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		} else {
			span.SetStatus(codes.Ok, "")
		}
		span.End()
	}()

	text := s.JSONString
	if source == SourceFile {
		text, err = readWorkspaceFile(workspace, s.JSONFile)
		if err != nil {
			return nil, err
		}
	}

	report, err := ingest.Build(text, s.Label, s.opts...)
	if err != nil {
		var verr *ingest.ValidationError
		if errors.As(err, &verr) {
			clog.FromContext(ctx).With("source", source).
				Errorf("[PublishReportStep] error: %s", verr.Message)
			span.SetAttributes(attribute.Bool("report.skipped", true))
			metrics.recordSkipped(ctx, source)
			return nil, nil
		}
		return nil, err
	}

	// The label is known only now: the document may name the report.
	log.Infof("[PublishReportStep] with label: %s", report.Label())

	run.AddReport(report)
	span.SetAttributes(
		attribute.String("report.label", report.Label()),
		attribute.Int("report.items", report.Len()),
	)
	itemsGauge.WithLabelValues(report.Label()).Set(float64(report.Len()))
	metrics.recordPublished(ctx, source)
	log.With("items", report.Len(), "label", report.Label()).Info("Attached report")
	return report, nil
}

// readWorkspaceFile reads name relative to workspace, refusing paths that
// leave it.
func readWorkspaceFile(workspace, name string) (string, error) {
	name = filepath.FromSlash(strings.TrimSpace(name))
	if !filepath.IsLocal(name) {
		return "", fmt.Errorf("report file %q is outside the workspace", name)
	}
	b, err := os.ReadFile(filepath.Join(workspace, name))
	if err != nil {
		return "", fmt.Errorf("reading report file: %w", err)
	}
	return string(b), nil
}
