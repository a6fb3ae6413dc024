/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package view

import (
	"net/http"
	"time"

	"github.com/chainguard-dev/clog"
	"github.com/go-chi/chi/v5/middleware"
)

// Logger installs a request-scoped logger and logs each completed request.
func Logger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		log := clog.FromContext(req.Context()).With(
			"method", req.Method,
			"path", req.URL.Path,
			"remote_ip", req.RemoteAddr,
		)
		ww := middleware.NewWrapResponseWriter(w, req.ProtoMajor)
		start := time.Now()

		next.ServeHTTP(ww, req.WithContext(clog.WithLogger(req.Context(), log)))

		log.With("status", ww.Status(), "bytes", ww.BytesWritten(), "duration", time.Since(start)).
			Debug("served request")
	})
}
