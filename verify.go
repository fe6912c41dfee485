// Copyright (c) 2026 The urlsig authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package urlsig

import (
	"crypto/subtle"
	"net/url"
	"strconv"
)

// Verify reports whether rawURL carries a valid, unexpired signature
// produced with this Signer's key and algorithm.
//
// Verify never returns an error: its input is attacker-controlled, and
// every malformed, expired, or mismatched URL is reported as a plain
// false, with nothing leaked about which check failed. A URL is valid up
// to and including its expiry second and invalid strictly after.
func (s *Signer) Verify(rawURL string) bool {
	u, err := url.Parse(rawURL)
	if err != nil {
		return false
	}
	if u.RawQuery == "" {
		return false
	}

	params := parseQuery(u.RawQuery)
	if len(params) == 0 {
		return false
	}

	var expiresVal, sig string
	for _, p := range params {
		switch p.key {
		case expiresParam:
			expiresVal = p.value
		case signatureParam:
			sig = p.value
		}
	}
	if expiresVal == "" || sig == "" {
		return false
	}

	expires, err := strconv.ParseInt(expiresVal, 10, 64)
	if err != nil || expires <= 0 {
		return false
	}
	if expires < s.nowFunc().Unix() {
		return false
	}

	canonical, err := canonicalize(rawURL, expiresParam, signatureParam)
	if err != nil {
		return false
	}

	expected := s.mac(expires, canonical)

	// Compare the hex strings without early exit. ConstantTimeCompare
	// rejects differing lengths up front; length is not a secret here.
	return subtle.ConstantTimeCompare([]byte(sig), []byte(expected)) == 1
}
