// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Command dbgprint inserts debug print statements for copied variable names.
//
// Usage:
//
//	dbgprint [-config path] <command> [flags] [args]
//
// Commands:
//
//	print      Print statement for one variable
//	array      Loop printing every element of a collection
//	sanitize   Extract the variable name from copied text
//	languages  List supported languages
//	init       Write the default configuration file
//	repl       Interactive session with a variable buffer
//	serve      HTTP API for editor plugins
//	mcp        MCP server on stdio
//	lua        Run a Lua script with the dbgprint module
package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/albertocavalcante/dbgprint/internal/command"
	"github.com/albertocavalcante/dbgprint/internal/config"
	"github.com/albertocavalcante/dbgprint/internal/host"
	"github.com/albertocavalcante/dbgprint/internal/logging"
	"github.com/albertocavalcante/dbgprint/internal/notify"
)

var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// errFailed ends the process with status 1 after the user has already been
// told why through a notice.
var errFailed = errors.New("failed")

// errHelp ends the process with status 0 after usage was printed.
var errHelp = errors.New("help requested")

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:]); err != nil {
		if errors.Is(err, errHelp) {
			return
		}
		if !errors.Is(err, errFailed) {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
		}
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("dbgprint", flag.ContinueOnError)
	configPath := fs.String("config", config.DefaultPath(), "Path to the YAML configuration file")
	showVersion := fs.Bool("version", false, "Show version information")
	showHelp := fs.Bool("help", false, "Show help")
	fs.Usage = printUsage

	if err := parseFlags(fs, args); err != nil {
		return err
	}

	if *showHelp {
		printUsage()
		return nil
	}

	if *showVersion {
		fmt.Printf("dbgprint %s (commit: %s, built: %s)\n", version, commit, date)
		return nil
	}

	if fs.NArg() == 0 {
		printUsage()
		return errFailed
	}

	cmd, cmdArgs := fs.Arg(0), fs.Args()[1:]

	// Commands that need no configuration.
	switch cmd {
	case "sanitize":
		return cmdSanitize(cmdArgs)
	case "languages":
		return cmdLanguages(cmdArgs)
	case "init":
		return cmdInit(*configPath, cmdArgs)
	case "help":
		printUsage()
		return nil
	}

	env, err := newEnv(*configPath)
	if err != nil {
		return err
	}

	switch cmd {
	case "print":
		return cmdPrint(ctx, env, command.InsertPrint, cmdArgs)
	case "array":
		return cmdPrint(ctx, env, command.InsertArrayPrint, cmdArgs)
	case "repl":
		return cmdRepl(ctx, env, cmdArgs)
	case "serve":
		return cmdServe(ctx, env, cmdArgs)
	case "mcp":
		return cmdMCP(ctx, env, cmdArgs)
	case "lua":
		return cmdLua(ctx, env, cmdArgs)
	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n", cmd)
		printUsage()
		return errFailed
	}
}

func printUsage() {
	fmt.Fprintf(os.Stderr, `dbgprint - Debug print statement generator

Insert print statements for variable names copied from your editor.

Usage:
  dbgprint [flags] <command> [command flags] [args]

Commands:
  print [text]        Print statement for one variable (text defaults to the clipboard)
  array [text]        Loop printing every element of a collection variable
  sanitize <text>     Extract the variable name from copied text
  languages           List supported languages
  init                Write the default configuration file
  repl                Interactive session with a variable buffer
  serve               HTTP API for editor plugins
  mcp                 MCP server on stdio
  lua <script.lua>    Run a Lua script with the dbgprint module

Flags:
  -config string   Configuration file (default: %s)
  -version         Show version information
  -help            Show this help

Examples:
  # Print statement for the clipboard variable, Python style
  dbgprint print -lang python

  # Insert a loop into a file at line 12, column 5
  dbgprint array -file main.cpp -line 12 -col 5 items

  # Serve the HTTP API on a custom address
  dbgprint serve -addr 127.0.0.1:9000

`, config.DefaultPath())
}

// parseFlags parses args into fs. The flag package has already reported
// any problem by the time an error is returned.
func parseFlags(fs *flag.FlagSet, args []string) error {
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return errHelp
		}
		return errFailed
	}
	return nil
}

// env holds what every configured command shares.
type env struct {
	configPath string
	cfg        *config.Config
	logger     *slog.Logger
	notifier   notify.Notifier
	svc        *command.Service
	stdin      *bufio.Reader
	stdout     io.Writer
}

func newEnv(configPath string) (*env, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}

	logger := logging.NewLogger(cfg.Logging.Format, cfg.Logging.Level, os.Stderr)
	notifier := notify.NewTerminal()
	stdin := bufio.NewReader(os.Stdin)

	svc := command.New(command.Options{
		MaxBufferSize: cfg.MaxBufferSize,
		Templates:     cfg.Renderer(),
		Clipboard:     host.SystemClipboard{},
		Picker:        &host.TerminalPicker{In: stdin, Out: os.Stderr},
		Notifier:      notifier,
		Logger:        logger,
	})

	return &env{
		configPath: configPath,
		cfg:        cfg,
		logger:     logger,
		notifier:   notifier,
		svc:        svc,
		stdin:      stdin,
		stdout:     os.Stdout,
	}, nil
}

// watchConfig applies configuration changes to the service until ctx ends.
// Failing to watch is logged, not fatal; the loaded config stays in effect.
func (e *env) watchConfig(ctx context.Context) {
	go func() {
		err := config.Watch(ctx, e.configPath, e.logger, func(cfg *config.Config) {
			e.svc.ApplyConfig(cfg)
			e.logger.Info("configuration reloaded", "path", e.configPath)
		})
		if err != nil {
			e.logger.Warn("config watch disabled", "path", e.configPath, "error", err)
		}
	}()
}
