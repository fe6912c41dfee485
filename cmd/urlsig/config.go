// Copyright (c) 2026 The urlsig authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"errors"

	"github.com/signkit/urlsig"
	"github.com/signkit/urlsig/internal/logr"
)

type config struct {
	Secret    string `env:"URLSIG_SECRET"`
	Algorithm string `env:"URLSIG_ALGORITHM" env-default:"sha256"`
	Validity  string `env:"URLSIG_VALIDITY" env-default:"5 HOURS"`
	Address   string `env:"URLSIG_ADDRESS" env-default:":8080"`

	Logging logr.Config
}

func (c *config) newSigner() (*urlsig.Signer, error) {
	if c.Secret == "" {
		return nil, errors.New("no secret key configured: set URLSIG_SECRET or --secret")
	}

	alg, err := urlsig.ParseAlgorithm(c.Algorithm)
	if err != nil {
		return nil, err
	}

	validity, err := urlsig.ParseValidity(c.Validity)
	if err != nil {
		return nil, err
	}

	return urlsig.New([]byte(c.Secret),
		urlsig.WithAlgorithm(alg),
		urlsig.WithValidity(validity),
	)
}
