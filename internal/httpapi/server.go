// Copyright (c) 2026 The urlsig authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package httpapi exposes URL signing and verification as a small JSON
// service, plus a /signed subtree that only valid signed URLs can reach.
package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
	"github.com/go-logr/logr"

	"github.com/signkit/urlsig"
)

// Server handles signing requests. The signer is the only state; handlers
// are safe for concurrent use.
type Server struct {
	logger logr.Logger
	signer *urlsig.Signer
}

func New(logger logr.Logger, signer *urlsig.Signer) *Server {
	return &Server{logger: logger, signer: signer}
}

func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(s.logRequests)

	r.Post("/sign", s.sign)
	r.Post("/verify", s.verify)

	r.Route("/signed", func(r chi.Router) {
		r.Use(urlsig.VerifyMiddleware(s.signer))
		r.Get("/*", s.granted)
	})

	return r
}

// logRequests logs method and path only; request URLs under /signed carry
// signatures and belong out of the logs.
func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		next.ServeHTTP(w, r)
		s.logger.V(1).Info("handled request", "method", r.Method, "path", r.URL.Path)
	})
}

func (s *Server) granted(w http.ResponseWriter, r *http.Request) {
	render.PlainText(w, r, "ok")
}
