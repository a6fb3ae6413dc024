/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package publish

import (
	"fmt"
	"slices"
	"sync"

	"chainguard.dev/datareport/reports/model"
)

// Attacher receives the reports produced by a Step.
type Attacher interface {
	AddReport(report *model.Report)
}

// Run is the record of one job run and the reports attached to it.
type Run struct {
	id string

	mu      sync.RWMutex
	reports []*model.Report
}

var _ Attacher = (*Run)(nil)

// NewRun creates an empty run record.
func NewRun(id string) *Run {
	return &Run{id: id}
}

// ID returns the run's identifier.
func (r *Run) ID() string {
	return r.id
}

// AddReport attaches report to the run.
func (r *Run) AddReport(report *model.Report) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.reports = append(r.reports, report)
}

// Reports returns the attached reports in attachment order.
func (r *Run) Reports() []*model.Report {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Clone(r.reports)
}

// Report returns the report attached at index.
func (r *Run) Report(index int) (*model.Report, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if index < 0 || index >= len(r.reports) {
		return nil, fmt.Errorf("report %d of run %q: %w", index, r.id, model.ErrKeyNotFound)
	}
	return r.reports[index], nil
}
