// Copyright (c) 2026 The urlsig authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/ilyakaznacheev/cleanenv"
)

func main() {
	// Configure ^C to terminate program
	ctx, cancel := context.WithCancel(context.Background())
	catchCtrlC(cancel)

	if err := run(ctx, os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err.Error())
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string) error {
	// Environment first, flags override.
	var cfg config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return err
	}

	cmd := rootCommand(&cfg)
	cmd.SetArgs(args)

	return cmd.ExecuteContext(ctx)
}

func catchCtrlC(cancel context.CancelFunc) {
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-ch
		cancel()
	}()
}
