// Copyright (c) 2026 The urlsig authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package urlsig

import (
	"crypto/hmac"
	"encoding/hex"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// Sign returns rawURL with expires and signature query parameters
// appended, valid up to and including now+validity. An empty validity
// string applies the Signer's default lifespan. The original query
// parameters are preserved unchanged and in order, except that any
// caller-supplied expires or signature parameters are dropped: those names
// are signer-owned.
//
// Sign fails with ErrInvalidURL if rawURL has no scheme or host, and with
// ErrInvalidDuration if validity cannot be parsed. Both are caller errors;
// nothing about signing itself can fail.
func (s *Signer) Sign(rawURL, validity string) (string, error) {
	d := s.validity
	if validity != "" {
		var err error
		if d, err = ParseValidity(validity); err != nil {
			return "", err
		}
	}

	return s.SignExpiry(rawURL, s.nowFunc().Add(d))
}

// SignExpiry is Sign with an absolute expiry instant. Only the instant's
// Unix second matters; its location does not.
func (s *Signer) SignExpiry(rawURL string, expiry time.Time) (string, error) {
	// Strip reserved names at sign time too. Verification cannot tell a
	// caller-supplied expires from a signed one, so both sides must
	// canonicalize without them or round-tripping such URLs would break.
	canonical, err := canonicalize(rawURL, expiresParam, signatureParam)
	if err != nil {
		return "", err
	}

	expires := expiry.Unix()
	sig := s.mac(expires, canonical)

	return appendSignature(rawURL, expires, sig), nil
}

// mac computes the lowercase hex signature over the canonical payload
// "<expires>::<canonical>::<key>". The key appears both in the payload and
// as the MAC key; redundant, but deployed verifiers expect this exact
// layout, so it stays.
func (s *Signer) mac(expires int64, canonical string) string {
	m := hmac.New(s.hash, s.secret)
	m.Write([]byte(strconv.FormatInt(expires, 10)))
	m.Write([]byte("::"))
	m.Write([]byte(canonical))
	m.Write([]byte("::"))
	m.Write(s.secret)

	return hex.EncodeToString(m.Sum(nil))
}

// appendSignature rebuilds rawURL with the reserved parameters appended
// last. The original query pairs pass through raw, keeping whatever
// percent-encoding the caller used, minus any pairs whose name is
// reserved.
func appendSignature(rawURL string, expires int64, sig string) string {
	base := rawURL
	fragment := ""
	if i := strings.Index(base, "#"); i >= 0 {
		base, fragment = base[:i], base[i:]
	}

	query := ""
	if i := strings.Index(base, "?"); i >= 0 {
		base, query = base[:i], base[i+1:]
	}

	var pairs []string
	for _, pair := range strings.Split(query, "&") {
		if pair == "" {
			continue
		}
		rawKey, _, _ := strings.Cut(pair, "=")
		if key, err := url.QueryUnescape(rawKey); err == nil && sliceHas([]string{expiresParam, signatureParam}, key) {
			continue
		}
		pairs = append(pairs, pair)
	}

	pairs = append(pairs,
		expiresParam+"="+strconv.FormatInt(expires, 10),
		signatureParam+"="+sig,
	)

	return base + "?" + strings.Join(pairs, "&") + fragment
}
