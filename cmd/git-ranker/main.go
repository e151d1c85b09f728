/*
Copyright 2026 The git-ranker Authors
SPDX-License-Identifier: Apache-2.0
*/

// Command git-ranker rates the packages of a GitHub repository with an LLM
// agent that reads the repository through the GitHub contents API.
//
// Usage:
//
//	git-ranker review https://github.com/owner/repo --format markdown
//	git-ranker structure https://github.com/owner/repo
//	git-ranker cat https://github.com/owner/repo go.mod
//
// Configuration is read from the environment, optionally seeded from a .env
// file in the working directory.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/chainguard-dev/clog"
	"github.com/joho/godotenv"
	"github.com/sethvargo/go-envconfig"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := loadDotEnv(".env"); err != nil {
		clog.FatalContextf(ctx, "loading .env: %v", err)
	}

	var cfg config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		clog.FatalContextf(ctx, "processing config: %v", err)
	}

	ctx = clog.WithLogger(ctx, clog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.LogLevel})))

	if err := run(ctx, cfg, os.Args[1:], os.Stdout); err != nil {
		clog.FatalContextf(ctx, "%v", err)
	}
}

// loadDotEnv loads path if it exists. Variables already in the environment
// are kept.
func loadDotEnv(path string) error {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil
	}
	return godotenv.Load(path)
}

// run parses args and executes the selected command, writing its output to
// stdout.
func run(ctx context.Context, cfg config, args []string, stdout io.Writer) error {
	var cli CLI
	parser, err := kong.New(&cli,
		kong.Name("git-ranker"),
		kong.Description("Rate the packages of a GitHub repository."),
		kong.UsageOnError(),
		kong.Writers(stdout, os.Stderr),
	)
	if err != nil {
		return err
	}
	kctx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	kctx.BindTo(ctx, (*context.Context)(nil))
	kctx.BindTo(stdout, (*io.Writer)(nil))
	if err := kctx.Run(&cfg); err != nil {
		return err
	}
	if cfg.MetricsTextfile != "" {
		if err := writeMetrics(cfg.MetricsTextfile); err != nil {
			return fmt.Errorf("writing metrics: %w", err)
		}
	}
	return nil
}
