// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/albertocavalcante/dbgprint/internal/api"
	"github.com/albertocavalcante/dbgprint/internal/luamod"
	"github.com/albertocavalcante/dbgprint/internal/mcp"
)

const shutdownTimeout = 5 * time.Second

func cmdServe(ctx context.Context, env *env, args []string) error {
	fs := flag.NewFlagSet("serve", flag.ContinueOnError)
	addr := fs.String("addr", env.cfg.Server.Listen, "Listen address")
	if err := parseFlags(fs, args); err != nil {
		return err
	}

	env.watchConfig(ctx)

	srv := &http.Server{
		Addr:              *addr,
		Handler:           api.RegisterRoutes(env.svc, env.logger),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		env.logger.Info("http api listening", "addr", *addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("serve %s: %w", *addr, err)
	case <-ctx.Done():
	}

	env.logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func cmdMCP(ctx context.Context, env *env, args []string) error {
	if len(args) > 0 {
		return fmt.Errorf("mcp takes no arguments")
	}
	env.watchConfig(ctx)

	server := mcp.NewServer(env.svc, version, env.logger)
	if err := server.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("mcp server: %w", err)
	}
	return nil
}

func cmdLua(ctx context.Context, env *env, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: dbgprint lua <script.lua|->")
	}

	var (
		r    io.Reader = env.stdin
		name           = "stdin"
	)
	if args[0] != "-" {
		f, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("open script: %w", err)
		}
		defer f.Close()
		r, name = f, args[0]
	}
	return luamod.Run(ctx, env.svc, name, r)
}
