/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package view

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"chainguard.dev/datareport/reports/model"
	"chainguard.dev/datareport/reports/render"
	"chainguard.dev/datareport/reports/table"
	"github.com/chainguard-dev/clog"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Source provides the reports of a run.
type Source interface {
	Reports() []*model.Report
	Report(index int) (*model.Report, error)
}

// Summary describes one attached report in the report list.
type Summary struct {
	Index      int      `json:"index"`
	Label      string   `json:"label"`
	Items      int      `json:"items"`
	Categories []string `json:"categories"`
}

// Handler serves the drill-down routes for one Source.
type Handler struct {
	source Source
}

// NewHandler creates a handler over source.
func NewHandler(source Source) *Handler {
	return &Handler{source: source}
}

// NewRouter returns a router serving source's reports.
func NewRouter(source Source) *chi.Mux {
	h := NewHandler(source)

	router := chi.NewRouter()
	router.Use(Logger)
	router.Use(middleware.Recoverer)

	router.Route("/api/v1", func(r chi.Router) {
		r.Get("/reports", h.ListReports)
		r.Get("/reports/{report}", h.GetReport)
		r.Get("/reports/{report}/tree", h.GetTree)
		r.Get("/reports/{report}/items/{item}", h.GetItem)
	})
	return router
}

// ListReports writes a Summary per attached report.
func (h *Handler) ListReports(w http.ResponseWriter, r *http.Request) {
	reports := h.source.Reports()
	response := make([]Summary, 0, len(reports))
	for i, report := range reports {
		response = append(response, Summary{
			Index:      i,
			Label:      report.Label(),
			Items:      report.Len(),
			Categories: report.Categories(),
		})
	}
	writeJSON(w, r, response)
}

// GetReport writes the table of the report root.
func (h *Handler) GetReport(w http.ResponseWriter, r *http.Request) {
	h.serveTable(w, r, "")
}

// GetItem writes the table of the item named in the path.
func (h *Handler) GetItem(w http.ResponseWriter, r *http.Request) {
	h.serveTable(w, r, itemID(r))
}

// itemID returns the decoded item path parameter. chi matches on the raw
// path when one is set, so escaped slashes arrive still encoded.
func itemID(r *http.Request) string {
	param := chi.URLParam(r, "item")
	id, err := url.PathUnescape(param)
	if err != nil {
		return param
	}
	return id
}

// GetTree writes the report as a text tree.
func (h *Handler) GetTree(w http.ResponseWriter, r *http.Request) {
	report, ok := h.report(w, r)
	if !ok {
		return
	}
	out, err := render.Tree(report, report.Root())
	if err != nil {
		writeError(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	fmt.Fprintln(w, out)
}

func (h *Handler) serveTable(w http.ResponseWriter, r *http.Request, id string) {
	report, ok := h.report(w, r)
	if !ok {
		return
	}
	m, err := table.ForID(report, id)
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}

	switch format := r.URL.Query().Get("format"); format {
	case "", "json":
		view, err := render.Project(m)
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, r, view)
	case "yaml":
		w.Header().Set("Content-Type", "application/yaml")
		if err := render.YAML(w, m); err != nil {
			writeError(w, r, err)
		}
	case "table":
		w.Header().Set("Content-Type", "text/markdown; charset=utf-8")
		if err := render.Table(w, m); err != nil {
			writeError(w, r, err)
		}
	default:
		http.Error(w, fmt.Sprintf("unsupported format %q", format), http.StatusBadRequest)
	}
}

func (h *Handler) report(w http.ResponseWriter, r *http.Request) (*model.Report, bool) {
	param := chi.URLParam(r, "report")
	index, err := strconv.Atoi(param)
	if err != nil {
		http.Error(w, fmt.Sprintf("invalid report index %q", param), http.StatusBadRequest)
		return nil, false
	}
	report, err := h.source.Report(index)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, model.ErrKeyNotFound) {
			status = http.StatusNotFound
		}
		http.Error(w, err.Error(), status)
		return nil, false
	}
	return report, true
}

func writeJSON(w http.ResponseWriter, r *http.Request, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		clog.FromContext(r.Context()).With("error", err).Error("failed to encode response")
	}
}

// writeError reports a failure to render a report that was found.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	clog.FromContext(r.Context()).With("error", err).Error("failed to render report")
	http.Error(w, err.Error(), http.StatusInternalServerError)
}
