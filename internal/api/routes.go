// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package api serves the print actions over HTTP for editor plugins that
// cannot link the library directly. The plugin sends the clipboard text and
// editor context with each request and applies the returned snippet itself.
package api

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/albertocavalcante/dbgprint/internal/command"
	"github.com/albertocavalcante/dbgprint/internal/logging"
)

// RegisterRoutes returns the API handler for svc.
func RegisterRoutes(svc *command.Service, logger *slog.Logger) http.Handler {
	if logger == nil {
		logger = logging.Discard()
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(requestLogger(logger))
	r.Use(middleware.Recoverer)

	h := &handler{svc: svc, logger: logger}

	r.Get("/api/buffer", h.getBuffer)
	r.Post("/api/track", h.track)
	r.Post("/api/print", h.print)
	r.Post("/api/array-print", h.arrayPrint)
	r.Post("/api/multi-print", h.multiPrint)
	r.Get("/api/languages", h.languages)

	// WebSocket
	r.Get("/api/buffer/ws", h.handleWS)

	return r
}

type handler struct {
	svc    *command.Service
	logger *slog.Logger
}

// requestLogger logs one line per request through logger.
func requestLogger(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()
			next.ServeHTTP(ww, r)
			logger.Debug("request",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"bytes", ww.BytesWritten(),
				"duration", time.Since(start),
				"request_id", middleware.GetReqID(r.Context()),
			)
		})
	}
}
