// Copyright (c) 2026 The urlsig authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package urlsig

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ErrInvalidDuration is returned by Sign and ParseValidity for validity
// strings that cannot be parsed, or that name a non-positive lifespan.
var ErrInvalidDuration = errors.New("invalid duration")

var validityUnits = map[string]time.Duration{
	"SECOND": time.Second,
	"MINUTE": time.Minute,
	"HOUR":   time.Hour,
	"DAY":    24 * time.Hour,
}

// ParseValidity parses a signing lifespan. It accepts "<n> <unit>" with a
// unit of SECOND, MINUTE, HOUR, or DAY (case-insensitive, optionally
// plural), such as "1 HOUR" or "30 minutes", as well as Go-native duration
// strings such as "90m" or "1h30m".
func ParseValidity(in string) (time.Duration, error) {
	if d, err := time.ParseDuration(in); err == nil {
		if d <= 0 {
			return 0, fmt.Errorf("%w: %q is not positive", ErrInvalidDuration, in)
		}
		return d, nil
	}

	fields := strings.Fields(in)
	if len(fields) != 2 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidDuration, in)
	}

	n, err := strconv.ParseInt(fields[0], 10, 64)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidDuration, in)
	}

	unit := strings.TrimSuffix(strings.ToUpper(fields[1]), "S")
	u, ok := validityUnits[unit]
	if !ok {
		return 0, fmt.Errorf("%w: unknown unit %q", ErrInvalidDuration, fields[1])
	}

	return time.Duration(n) * u, nil
}
