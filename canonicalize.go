// Copyright (c) 2026 The urlsig authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package urlsig

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

// ErrInvalidURL is returned at sign time when a URL cannot be parsed into
// at least a scheme and a host. At verify time the same condition is
// absorbed into a false verdict.
var ErrInvalidURL = errors.New("invalid URL")

// param is a single query parameter. Order matters: the canonical string
// feeds the MAC, so parameters must serialize in the order they appeared.
type param struct {
	key   string
	value string
}

// parseQuery splits a raw query string into parameters, preserving their
// order of first appearance. Duplicate keys keep that position but take
// their last value. Pairs that fail percent-decoding are skipped rather
// than failing the whole query.
func parseQuery(rawQuery string) []param {
	var params []param
	index := make(map[string]int) // key -> position in params

	for _, pair := range strings.Split(rawQuery, "&") {
		if pair == "" {
			continue
		}

		rawKey, rawValue, _ := strings.Cut(pair, "=")
		key, err := url.QueryUnescape(rawKey)
		if err != nil {
			continue
		}
		value, err := url.QueryUnescape(rawValue)
		if err != nil {
			continue
		}

		if i, ok := index[key]; ok {
			params[i].value = value
			continue
		}
		index[key] = len(params)
		params = append(params, param{key: key, value: value})
	}

	return params
}

// canonicalize reduces a URL to the deterministic string fed into the MAC:
// scheme://host<path>, plus the surviving query parameters in their
// original order, joined as decoded key=value pairs. Parameters named in
// exclude are removed (every occurrence). Values are not re-encoded; both
// signing and verification come through here, so the representation only
// has to agree with itself.
func canonicalize(rawURL string, exclude ...string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidURL, err)
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("%w: missing scheme or host in %q", ErrInvalidURL, rawURL)
	}

	var b strings.Builder
	b.WriteString(u.Scheme)
	b.WriteString("://")
	b.WriteString(u.Host)
	b.WriteString(u.Path)

	var kept []string
	for _, p := range parseQuery(u.RawQuery) {
		if sliceHas(exclude, p.key) {
			continue
		}
		kept = append(kept, p.key+"="+p.value)
	}
	if len(kept) > 0 {
		b.WriteString("?")
		b.WriteString(strings.Join(kept, "&"))
	}

	return b.String(), nil
}

func sliceHas(haystack []string, needle string) bool {
	for _, n := range haystack {
		if n == needle {
			return true
		}
	}

	return false
}
