// Copyright (c) 2026 The urlsig authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package urlsig

import (
	"crypto/sha256"
	"crypto/sha512"
	"errors"
	"fmt"
	"hash"
)

// Algorithm identifies the hash primitive used for the keyed signature.
type Algorithm string

const (
	AlgorithmSHA256 Algorithm = "sha256"
	AlgorithmSHA512 Algorithm = "sha512"
)

// ErrUnsupportedAlgorithm is returned by New when the requested algorithm
// is not one of the supported identifiers.
var ErrUnsupportedAlgorithm = errors.New("unsupported hash algorithm")

// ParseAlgorithm maps a configuration string to an Algorithm. An empty
// string selects the default.
func ParseAlgorithm(in string) (Algorithm, error) {
	switch Algorithm(in) {
	case "":
		return AlgorithmSHA256, nil
	case AlgorithmSHA256, AlgorithmSHA512:
		return Algorithm(in), nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedAlgorithm, in)
}

func (a Algorithm) hashFunc() (func() hash.Hash, error) {
	switch a {
	case AlgorithmSHA256:
		return sha256.New, nil
	case AlgorithmSHA512:
		return sha512.New, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnsupportedAlgorithm, string(a))
}
