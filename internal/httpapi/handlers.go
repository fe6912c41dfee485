// Copyright (c) 2026 The urlsig authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package httpapi

import (
	"errors"
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-chi/render"
)

type signRequest struct {
	URL      string `json:"url"`
	Validity string `json:"validity,omitempty"`
}

func (req *signRequest) Bind(*http.Request) error {
	if req.URL == "" {
		return errors.New("url is required")
	}
	return nil
}

type signResponse struct {
	SignedURL string `json:"signed_url"`
	Expires   int64  `json:"expires"`
}

type verifyRequest struct {
	URL string `json:"url"`
}

func (req *verifyRequest) Bind(*http.Request) error {
	if req.URL == "" {
		return errors.New("url is required")
	}
	return nil
}

type verifyResponse struct {
	Valid bool `json:"valid"`
}

type errResponse struct {
	HTTPStatusCode int    `json:"-"`
	Error          string `json:"error"`
}

func (e *errResponse) Render(w http.ResponseWriter, r *http.Request) error {
	render.Status(r, e.HTTPStatusCode)
	return nil
}

func errInvalidRequest(err error) render.Renderer {
	return &errResponse{HTTPStatusCode: http.StatusBadRequest, Error: err.Error()}
}

func (s *Server) sign(w http.ResponseWriter, r *http.Request) {
	req := &signRequest{}
	if err := render.Bind(r, req); err != nil {
		_ = render.Render(w, r, errInvalidRequest(err))
		return
	}

	signed, err := s.signer.Sign(req.URL, req.Validity)
	if err != nil {
		_ = render.Render(w, r, errInvalidRequest(err))
		return
	}

	render.JSON(w, r, &signResponse{
		SignedURL: signed,
		Expires:   expiresOf(signed),
	})
}

func (s *Server) verify(w http.ResponseWriter, r *http.Request) {
	req := &verifyRequest{}
	if err := render.Bind(r, req); err != nil {
		_ = render.Render(w, r, errInvalidRequest(err))
		return
	}

	// The verdict is data, not an error: an invalid URL is a 200 with
	// valid=false.
	render.JSON(w, r, &verifyResponse{Valid: s.signer.Verify(req.URL)})
}

// expiresOf reads the expiry back out of a freshly signed URL. Sign just
// produced it, so the parameter is always present and numeric.
func expiresOf(signed string) int64 {
	u, err := url.Parse(signed)
	if err != nil {
		return 0
	}
	n, _ := strconv.ParseInt(u.Query().Get("expires"), 10, 64)
	return n
}
