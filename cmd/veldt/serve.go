package main

import (
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/veldtchat/veldt/internal/directory"
	"github.com/veldtchat/veldt/internal/server"
)

func serveCmd() *cobra.Command {
	var (
		snapshotPath string
		addr         string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the compose API over HTTP",
		RunE: func(cmd *cobra.Command, _ []string) error {
			snap, err := directory.Load(snapshotPath)
			if err != nil {
				return err
			}

			logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
			logger.Info("snapshot loaded",
				"realm", snap.Realm.BaseURL.String(),
				"capability_level", snap.Realm.CapabilityLevel,
				"users", len(snap.Users),
				"streams", len(snap.Streams))

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return server.New(snap, logger).ListenAndServe(ctx, addr)
		},
	}

	cmd.Flags().StringVar(&snapshotPath, "snapshot", "", "realm snapshot YAML file (required)")
	cmd.Flags().StringVar(&addr, "addr", "127.0.0.1:8787", "listen address")
	_ = cmd.MarkFlagRequired("snapshot")
	return cmd
}
