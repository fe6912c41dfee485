// Copyright (c) 2026 The urlsig authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, cfg *config, args ...string) (string, error) {
	t.Helper()

	out := new(bytes.Buffer)
	cmd := rootCommand(cfg)
	cmd.SetOut(out)
	cmd.SetErr(new(bytes.Buffer))
	cmd.SetArgs(args)

	err := cmd.Execute()
	return strings.TrimSpace(out.String()), err
}

func testConfig() *config {
	return &config{Secret: "s3cret", Algorithm: "sha256", Validity: "1 HOUR"}
}

func TestSignCommand(t *testing.T) {
	signed, err := execute(t, testConfig(), "sign", "https://example.com/dl?file=1", "--validity", "1 MINUTE")
	require.NoError(t, err)
	assert.Contains(t, signed, "https://example.com/dl?file=1&expires=")
	assert.Contains(t, signed, "&signature=")
}

func TestVerifyCommand(t *testing.T) {
	cfg := testConfig()

	signed, err := execute(t, cfg, "sign", "https://example.com/dl?file=1")
	require.NoError(t, err)

	out, err := execute(t, cfg, "verify", signed)
	require.NoError(t, err)
	assert.Equal(t, "valid", out)

	_, err = execute(t, cfg, "verify", signed+"0")
	assert.EqualError(t, err, "invalid or expired signature")
}

func TestSignCommand_MissingSecret(t *testing.T) {
	cfg := testConfig()
	cfg.Secret = ""

	_, err := execute(t, cfg, "sign", "https://example.com/")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no secret key configured")
}

func TestSignCommand_BadAlgorithm(t *testing.T) {
	_, err := execute(t, testConfig(), "sign", "https://example.com/", "--algorithm", "md5")
	assert.Error(t, err)
}
