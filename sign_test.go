// Copyright (c) 2026 The urlsig authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package urlsig

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestSigner builds a signer with a clock pinned to the given Unix
// second, so signatures are reproducible.
func newTestSigner(t *testing.T, secret string, now int64, opts ...Option) *Signer {
	t.Helper()

	opts = append([]Option{WithNowFunc(func() time.Time { return time.Unix(now, 0) })}, opts...)
	s, err := New([]byte(secret), opts...)
	require.NoError(t, err)
	return s
}

// Known-answer vector: hex lowercase HMAC-SHA256 of
// "1000003600::https://example.com/?file=123::k" under key "k".
func TestSign_KnownAnswer(t *testing.T) {
	s := newTestSigner(t, "k", 1000000000)

	signed, err := s.Sign("https://example.com/?file=123", "1 HOUR")
	require.NoError(t, err)

	assert.Equal(t,
		"https://example.com/?file=123"+
			"&expires=1000003600"+
			"&signature=0dce60be08721a5a66592d167689df00146c3296bbc0957e796846a25c1be1df",
		signed)
}

func TestSign_KnownAnswerSHA512(t *testing.T) {
	s := newTestSigner(t, "k", 1000000000, WithAlgorithm(AlgorithmSHA512))

	signed, err := s.Sign("https://example.com/?file=123", "1 HOUR")
	require.NoError(t, err)

	assert.Equal(t,
		"https://example.com/?file=123"+
			"&expires=1000003600"+
			"&signature=f63f4681e088f33f0206f68990e38c70d9fc1ff1250ca0c352a87bc5908685c1"+
			"6c42e7956a30c2b831ea2b9c4cb0dfb24416aca5742693752925c39c8325f4af",
		signed)
}

func TestSign_CreatesQueryWhenAbsent(t *testing.T) {
	s := newTestSigner(t, "k", 1000000000)

	signed, err := s.Sign("https://example.com/path", "1 MINUTE")
	require.NoError(t, err)

	assert.Contains(t, signed, "https://example.com/path?expires=1000000060&signature=")
}

func TestSign_PreservesOriginalQueryOrderAndEncoding(t *testing.T) {
	s := newTestSigner(t, "k", 1000000000)

	signed, err := s.Sign("https://example.com/dl?b=2&a=1&name=a%20b", "1 HOUR")
	require.NoError(t, err)

	assert.Contains(t, signed, "https://example.com/dl?b=2&a=1&name=a%20b&expires=1000003600&signature=")
	assert.True(t, s.Verify(signed))
}

func TestSign_OverwritesReservedParams(t *testing.T) {
	s := newTestSigner(t, "k", 1000000000)

	// Caller-supplied expires/signature are dropped, not signed as data.
	signed, err := s.Sign("https://example.com/dl?file=a&expires=1&signature=dead&token=z", "1 MINUTE")
	require.NoError(t, err)

	assert.Equal(t,
		"https://example.com/dl?file=a&token=z"+
			"&expires=1000000060"+
			"&signature=461ab6c08707a60c81030bd4305462fa11cfcfb1775daba10ccbb69648830756",
		signed)
	assert.True(t, s.Verify(signed))
}

func TestSign_DefaultValidity(t *testing.T) {
	s := newTestSigner(t, "k", 1000000000, WithValidity(10*time.Minute))

	signed, err := s.Sign("https://example.com/", "")
	require.NoError(t, err)
	assert.Contains(t, signed, "expires=1000000600")
}

func TestSign_KeepsFragmentAfterQuery(t *testing.T) {
	s := newTestSigner(t, "k", 1000000000)

	signed, err := s.Sign("https://example.com/doc?sect=2#intro", "1 HOUR")
	require.NoError(t, err)

	assert.Contains(t, signed, "&signature=")
	assert.Equal(t, "#intro", signed[len(signed)-6:])
	assert.True(t, s.Verify(signed))
}

func TestSign_InvalidURL(t *testing.T) {
	s := newTestSigner(t, "k", 1000000000)

	_, err := s.Sign("not a url at all", "1 HOUR")
	assert.ErrorIs(t, err, ErrInvalidURL)
}

func TestSign_InvalidDuration(t *testing.T) {
	s := newTestSigner(t, "k", 1000000000)

	_, err := s.Sign("https://example.com/", "1 LIGHTYEAR")
	assert.ErrorIs(t, err, ErrInvalidDuration)
}

func TestNew_UnsupportedAlgorithm(t *testing.T) {
	_, err := New([]byte("k"), WithAlgorithm("md5"))
	assert.ErrorIs(t, err, ErrUnsupportedAlgorithm)
}

func TestParseAlgorithm(t *testing.T) {
	alg, err := ParseAlgorithm("")
	require.NoError(t, err)
	assert.Equal(t, AlgorithmSHA256, alg)

	alg, err = ParseAlgorithm("sha512")
	require.NoError(t, err)
	assert.Equal(t, AlgorithmSHA512, alg)

	_, err = ParseAlgorithm("crc32")
	assert.ErrorIs(t, err, ErrUnsupportedAlgorithm)
}
