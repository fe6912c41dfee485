// Copyright (c) 2026 The urlsig authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package urlsig

import "net/http"

// VerifyMiddleware returns HTTP server middleware that only lets requests
// bearing a valid signed URL through to the wrapped handler. Requests with
// missing, expired, or invalid signatures are rejected with a 401.
//
// The URL a client signs is absolute, while server-side request URLs carry
// neither scheme nor host; those are reconstructed from the connection and
// any X-Forwarded-Proto header a fronting proxy set.
func VerifyMiddleware(s *Signer) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !s.Verify(requestURL(r)) {
				http.Error(w, "invalid or expired signature", http.StatusUnauthorized)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func requestURL(r *http.Request) string {
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	if proto := r.Header.Get("X-Forwarded-Proto"); proto != "" {
		scheme = proto
	}

	return scheme + "://" + r.Host + r.URL.RequestURI()
}
