/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package view

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/chainguard-dev/clog"
)

// DefaultShutdownTimeout bounds how long Serve waits for in-flight requests.
const DefaultShutdownTimeout = 10 * time.Second

// Server serves a router until its context is canceled.
type Server struct {
	server          *http.Server
	shutdownTimeout time.Duration
}

// NewServer creates a server for handler listening on addr.
func NewServer(addr string, handler http.Handler) *Server {
	return &Server{
		server: &http.Server{
			Addr:              addr,
			Handler:           handler,
			ReadHeaderTimeout: 10 * time.Second,
		},
		shutdownTimeout: DefaultShutdownTimeout,
	}
}

// Serve listens until ctx is done, then shuts down gracefully.
func (s *Server) Serve(ctx context.Context) error {
	log := clog.FromContext(ctx).With("addr", s.server.Addr)
	s.server.BaseContext = func(net.Listener) context.Context { return ctx }

	serverErrors := make(chan error, 1)
	go func() {
		log.Info("starting server")
		serverErrors <- s.server.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		log.Info("shutdown initiated")

		// Give outstanding requests a deadline for completion.
		sctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.shutdownTimeout)
		defer cancel()

		if err := s.server.Shutdown(sctx); err != nil {
			log.With("error", err).Error("graceful shutdown failed")
			return s.server.Close()
		}
	}
	return nil
}
