// Copyright (c) 2026 The urlsig authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package urlsig

import (
	"hash"
	"time"
)

// DefaultValidity is the lifespan applied when Sign is called with an
// empty validity string and no WithValidity option was given.
const DefaultValidity = 5 * time.Hour

// Reserved query parameter names. Callers must not rely on parameters with
// these names surviving signing; Sign claims them for itself.
const (
	expiresParam   = "expires"
	signatureParam = "signature"
)

// Signer signs URLs with a limited lifespan, and verifies previously
// signed URLs. A Signer is immutable after construction and safe for
// concurrent use.
type Signer struct {
	secret   []byte
	alg      Algorithm
	hash     func() hash.Hash
	validity time.Duration

	// For testing
	nowFunc func() time.Time
}

// Option configures a Signer.
type Option func(*Signer)

// WithAlgorithm selects the keyed-hash primitive used for signatures.
// The default is AlgorithmSHA256.
func WithAlgorithm(alg Algorithm) Option {
	return func(s *Signer) { s.alg = alg }
}

// WithValidity sets the lifespan applied when Sign is called with an
// empty validity string.
func WithValidity(d time.Duration) Option {
	return func(s *Signer) { s.validity = d }
}

// WithNowFunc overrides the clock used to compute expiry timestamps and to
// decide whether a URL has expired. All timestamps are compared as Unix
// seconds, so the clock's location is irrelevant.
func WithNowFunc(now func() time.Time) Option {
	return func(s *Signer) { s.nowFunc = now }
}

// New constructs a Signer for the given shared secret.
//
// Use the `With*` option funcs to select the hash algorithm, the default
// lifespan, or the clock. New fails with ErrUnsupportedAlgorithm if the
// selected algorithm is unknown; no other call reports configuration
// errors, so they surface here rather than on first use.
func New(secret []byte, opts ...Option) (*Signer, error) {
	s := &Signer{
		secret:   secret,
		alg:      AlgorithmSHA256,
		validity: DefaultValidity,
		nowFunc:  time.Now,
	}

	for _, o := range opts {
		o(s)
	}

	h, err := s.alg.hashFunc()
	if err != nil {
		return nil, err
	}
	s.hash = h

	return s, nil
}
