package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/reignstats/reignstats/internal/app"
	"github.com/reignstats/reignstats/internal/config"
)

func main() {
	os.Exit(run())
}

// run returns the process exit code so deferred cleanup runs before exit.
func run() int {
	configPath := flag.String("config", "", "path to config file (defaults apply when empty)")
	watch := flag.Bool("watch", false, "re-run the report whenever the config file changes")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("failed to load config", "err", err)
		return 1
	}

	// stdout carries the report, so logs go to stderr.
	slog.SetDefault(newLogger(cfg))

	slog.Info("reignstats starting",
		"config", *configPath,
		"source_type", cfg.Source.Type,
		"format", cfg.Output.Format,
	)

	if *watch && *configPath == "" {
		slog.Error("-watch requires -config")
		return 1
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	err = runOnce(ctx, cfg)
	if !*watch {
		if err != nil {
			return 1
		}
		return 0
	}
	if err != nil {
		slog.Warn("report run failed, waiting for config changes", "err", err)
	}

	// Reports run inside the watcher callback, one at a time.
	if err := config.Watch(ctx, *configPath, func(updated *config.Config) {
		slog.SetDefault(newLogger(updated))
		if err := runOnce(ctx, updated); err != nil {
			slog.Warn("report run failed", "config", *configPath, "err", err)
		}
	}); err != nil {
		slog.Error("config watcher stopped", "err", err)
		return 1
	}
	slog.Info("reignstats shutting down")
	return 0
}

func newLogger(cfg *config.Config) *slog.Logger {
	return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.Log.SlogLevel()}))
}

// runOnce builds a runner from cfg and produces one report on stdout.
func runOnce(ctx context.Context, cfg *config.Config) error {
	r, err := app.New(cfg, os.Stdout)
	if err != nil {
		slog.Error("failed to build runner", "err", err)
		return err
	}
	return r.Run(ctx)
}
