// Copyright (c) 2026 The urlsig authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/signkit/urlsig/internal/httpapi"
	"github.com/signkit/urlsig/internal/logr"
)

func serveCommand(cfg *config) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "serve",
		Short:         "Run the URL signing HTTP service",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			signer, err := cfg.newSigner()
			if err != nil {
				return err
			}

			logger, err := logr.New(&cfg.Logging)
			if err != nil {
				return err
			}

			srv := &http.Server{
				Addr:    cfg.Address,
				Handler: httpapi.New(logger, signer).Handler(),
			}

			errch := make(chan error, 1)
			go func() { errch <- srv.ListenAndServe() }()
			logger.Info("listening", "address", cfg.Address)

			select {
			case <-cmd.Context().Done():
				ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				return srv.Shutdown(ctx)
			case err := <-errch:
				return err
			}
		},
	}

	cmd.Flags().StringVar(&cfg.Address, "address", cfg.Address, "Address to listen on")

	return cmd
}
