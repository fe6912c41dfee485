// Copyright (c) 2026 The urlsig authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"github.com/spf13/cobra"

	"github.com/signkit/urlsig/internal/logr"
)

func rootCommand(cfg *config) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "urlsig",
		Short:         "Sign and verify expiring URLs",
		SilenceUsage:  true,
		SilenceErrors: true,
		// Define run func in order to enable cobra's default help functionality
		Run: func(cmd *cobra.Command, args []string) {},
	}

	cmd.PersistentFlags().StringVar(&cfg.Secret, "secret", cfg.Secret, "Secret signing key")
	cmd.PersistentFlags().StringVar(&cfg.Algorithm, "algorithm", cfg.Algorithm, "Hash algorithm: sha256 or sha512")
	logr.LoadConfigFromFlags(cmd.PersistentFlags(), &cfg.Logging)

	cmd.AddCommand(signCommand(cfg))
	cmd.AddCommand(verifyCommand(cfg))
	cmd.AddCommand(serveCommand(cfg))

	return cmd
}
