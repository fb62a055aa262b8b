package main

import (
	"context"
	"log/slog"
	"os/signal"
	"syscall"

	"github.com/example/go-hakka-tone/internal/rules"
	"github.com/example/go-hakka-tone/internal/server"
	"github.com/example/go-hakka-tone/internal/tone"
	"github.com/spf13/cobra"
)

var (
	_ server.Converter = (*tone.Tables)(nil)
	_ server.Converter = (*rules.Reloader)(nil)
)

func newServeCmd() *cobra.Command {
	var watch bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the tone conversion HTTP server",
		RunE: func(_ *cobra.Command, _ []string) error {
			cfg, err := requireConfig()
			if err != nil {
				return err
			}

			reloader, err := rules.NewReloader(appFS, cfg.Rules.ReversePath, cfg.Rules.TonePath, slog.Default())
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			var conv server.Converter = reloader.Tables()
			if watch {
				conv = reloader
				go func() {
					if err := reloader.Watch(ctx); err != nil {
						slog.Error("rule watcher stopped", "error", err)
					}
				}()
			}

			slog.Info("listening", "addr", cfg.Server.ListenAddr, "watch", watch)
			return server.New(cfg, conv).WithLogger(slog.Default()).Start(ctx)
		},
	}

	cmd.Flags().BoolVar(&watch, "watch", false, "Reload rule files when they change on disk")

	return cmd
}
