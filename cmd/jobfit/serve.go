package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jobfit-ai/jobfit-server/internal/config"
	"github.com/jobfit-ai/jobfit-server/internal/logger"
	"github.com/jobfit-ai/jobfit-server/internal/server"
	"github.com/jobfit-ai/jobfit-server/internal/store"
)

var (
	servePort int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes REST endpoints for resume upload, scoring, recommendations, and tailoring.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (overrides PORT)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg, err := config.FromEnv()
	if err != nil {
		return err
	}
	if servePort != 0 {
		cfg.Port = servePort
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	log, err := logger.New(cfg.LogJSON, cfg.Debug)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	ctx := context.Background()

	var s store.Store
	if cfg.DatabaseURL != "" {
		pg, err := store.Connect(ctx, cfg.DatabaseURL)
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		if err := pg.EnsureSchema(ctx); err != nil {
			pg.Close()
			return fmt.Errorf("failed to ensure schema: %w", err)
		}
		s = pg
		log.Info("using postgres store")
	} else {
		s = store.NewMemoryStore()
		log.Warn("DATABASE_URL not set, using in-memory store")
	}
	defer s.Close()

	srv := server.New(cfg, s, log)
	return srv.Start()
}
