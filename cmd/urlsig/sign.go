// Copyright (c) 2026 The urlsig authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

func signCommand(cfg *config) *cobra.Command {
	var validity string

	cmd := &cobra.Command{
		Use:           "sign [url]",
		Short:         "Sign a URL with an expiry",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			signer, err := cfg.newSigner()
			if err != nil {
				return err
			}

			signed, err := signer.Sign(args[0], validity)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), signed)

			return nil
		},
	}

	cmd.Flags().StringVar(&validity, "validity", "", `how long the signature stays valid, e.g. "1 HOUR" (defaults to the configured validity)`)

	return cmd
}

func verifyCommand(cfg *config) *cobra.Command {
	return &cobra.Command{
		Use:           "verify [url]",
		Short:         "Verify a signed URL",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			signer, err := cfg.newSigner()
			if err != nil {
				return err
			}

			if !signer.Verify(args[0]) {
				return errors.New("invalid or expired signature")
			}

			fmt.Fprintln(cmd.OutOrStdout(), "valid")

			return nil
		},
	}
}
