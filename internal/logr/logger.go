// Copyright (c) 2026 The urlsig authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package logr configures the logr logger used by the CLI and HTTP
// service, backed by log/slog handlers.
package logr

import (
	"fmt"
	"io"
	"os"

	"log/slog"

	"github.com/go-logr/logr"
	"github.com/spf13/pflag"
)

const (
	TextFormat Format = "text"
	JSONFormat Format = "json"
)

type (
	Config struct {
		Verbosity int
		Format    string
	}

	Format string
)

// LoadConfigFromFlags adds flags to the given flagset, and, after the
// flagset is parsed by the caller, the flags populate the given logger
// config.
func LoadConfigFromFlags(flags *pflag.FlagSet, cfg *Config) {
	flags.IntVarP(&cfg.Verbosity, "v", "v", 0, "Logging level")
	flags.StringVar(&cfg.Format, "log-format", string(TextFormat), "Logging format: text or json")
}

// New constructs a logger that writes to stdout in the configured format.
func New(cfg *Config) (logr.Logger, error) {
	h, err := newHandler(os.Stdout, cfg)
	if err != nil {
		return logr.Logger{}, err
	}
	return logr.FromSlogHandler(h), nil
}

func newHandler(w io.Writer, cfg *Config) (slog.Handler, error) {
	opts := &slog.HandlerOptions{Level: toSlogLevel(cfg.Verbosity)}

	switch Format(cfg.Format) {
	case TextFormat:
		return slog.NewTextHandler(w, opts), nil
	case JSONFormat:
		return slog.NewJSONHandler(w, opts), nil
	}
	return nil, fmt.Errorf("unrecognised logging format: %s", cfg.Format)
}

// toSlogLevel converts a logr v-level to a slog level.
func toSlogLevel(verbosity int) slog.Level {
	if verbosity <= 0 {
		return slog.LevelInfo
	}
	return slog.Level(-4 - (verbosity - 1))
}
