/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package view

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"chainguard.dev/datareport/reports/ingest"
	"chainguard.dev/datareport/reports/model"
	"chainguard.dev/datareport/reports/publish"
	"chainguard.dev/datareport/reports/render"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

const demo = `{"label":"Demo","result":{"colors":{"pass":"green","fail":"red"},"items":[{"id":"root","name":"Root","items":[{"id":"a","name":"A","result":{"pass":3,"fail":1}},{"id":"b","name":"B","result":{"pass":2,"fail":0}}]}]}}`

type mockSource struct {
	mock.Mock
}

func (m *mockSource) Reports() []*model.Report {
	args := m.Called()
	return args.Get(0).([]*model.Report)
}

func (m *mockSource) Report(index int) (*model.Report, error) {
	args := m.Called(index)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Report), args.Error(1)
}

func demoRun(t *testing.T) *publish.Run {
	t.Helper()
	report, err := ingest.Build(demo, "")
	require.NoError(t, err)
	run := publish.NewRun("build-1")
	run.AddReport(report)
	return run
}

func get(t *testing.T, h http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestListReports(t *testing.T) {
	rec := get(t, NewRouter(demoRun(t)), "/api/v1/reports")
	require.Equal(t, http.StatusOK, rec.Code)

	var got []Summary
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
	assert.Equal(t, []Summary{{
		Index:      0,
		Label:      "Demo",
		Items:      3,
		Categories: []string{"pass", "fail"},
	}}, got)
}

func TestDrillDown(t *testing.T) {
	router := NewRouter(demoRun(t))

	rec := get(t, router, "/api/v1/reports/0")
	require.Equal(t, http.StatusOK, rec.Code)
	var root render.View
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&root))
	require.Len(t, root.Rows, 1)
	assert.Equal(t, "root", root.Rows[0].ID)
	assert.False(t, root.Rows[0].Leaf)

	// Follow the row id to the next level.
	rec = get(t, router, "/api/v1/reports/0/items/"+root.Rows[0].ID)
	require.Equal(t, http.StatusOK, rec.Code)
	var item render.View
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&item))
	require.Len(t, item.Rows, 2)
	assert.Equal(t, "a: 60.00%", item.Rows[0].Cells[0].Tooltip)
	assert.Equal(t, "green", item.Rows[0].Cells[0].Color)
}

func TestItemIDEscaping(t *testing.T) {
	doc := `{"result":{"colors":{"ok":"green"},"items":[{"id":"suite/unit","name":"Unit","items":[{"id":"suite/unit/fast","name":"Fast","result":{"ok":2}}]}]}}`
	report, err := ingest.Build(doc, "")
	require.NoError(t, err)
	run := publish.NewRun("build-2")
	run.AddReport(report)
	router := NewRouter(run)

	rec := get(t, router, "/api/v1/reports/0/items/"+url.PathEscape("suite/unit"))
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var item render.View
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&item))
	assert.Equal(t, "suite/unit", item.ID)
	require.Len(t, item.Rows, 1)
	assert.Equal(t, "suite/unit/fast", item.Rows[0].ID)

	rec = get(t, router, "/api/v1/reports/0/items/"+url.PathEscape("suite/unit/fast"))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestFormats(t *testing.T) {
	router := NewRouter(demoRun(t))

	rec := get(t, router, "/api/v1/reports/0/items/root?format=yaml")
	require.Equal(t, http.StatusOK, rec.Code)
	var item render.View
	require.NoError(t, yaml.Unmarshal(rec.Body.Bytes(), &item))
	assert.Equal(t, "root", item.ID)

	rec = get(t, router, "/api/v1/reports/0/items/root?format=table")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "3 (60.00%)")

	rec = get(t, router, "/api/v1/reports/0/tree")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "A [a]")

	rec = get(t, router, "/api/v1/reports/0?format=csv")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestErrors(t *testing.T) {
	tests := []struct {
		name   string
		path   string
		setup  func(*mockSource)
		status int
	}{{
		name:   "invalid index",
		path:   "/api/v1/reports/first",
		setup:  func(*mockSource) {},
		status: http.StatusBadRequest,
	}, {
		name: "unknown report",
		path: "/api/v1/reports/3",
		setup: func(m *mockSource) {
			m.On("Report", 3).Return(nil, model.ErrKeyNotFound)
		},
		status: http.StatusNotFound,
	}, {
		name: "source failure",
		path: "/api/v1/reports/0",
		setup: func(m *mockSource) {
			m.On("Report", 0).Return(nil, errors.New("store unavailable"))
		},
		status: http.StatusInternalServerError,
	}, {
		name: "unknown item",
		path: "/api/v1/reports/0/items/zzz",
		setup: func(m *mockSource) {
			report, err := ingest.Build(demo, "")
			require.NoError(t, err)
			m.On("Report", 0).Return(report, nil)
		},
		status: http.StatusNotFound,
	}, {
		name: "missing color",
		path: "/api/v1/reports/0",
		setup: func(m *mockSource) {
			report, err := model.NewReport(model.Payload{
				Colors: model.NewColors(),
				Items: []model.PayloadItem{{
					ID: "x", Name: "X", Result: model.NewValues(model.Category{Name: "ok", Value: 1}),
				}},
			}, "")
			require.NoError(t, err)
			m.On("Report", 0).Return(report, nil)
		},
		status: http.StatusInternalServerError,
	}}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			source := new(mockSource)
			tt.setup(source)

			rec := get(t, NewRouter(source), tt.path)
			assert.Equal(t, tt.status, rec.Code)
			source.AssertExpectations(t)
		})
	}
}

func TestServe(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	srv := NewServer("127.0.0.1:0", NewRouter(demoRun(t)))

	done := make(chan error, 1)
	go func() { done <- srv.Serve(ctx) }()
	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Serve did not return after cancel")
	}
}
