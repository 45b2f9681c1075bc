package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"time"

	gfshutdown "github.com/gelmium/graceful-shutdown"
	"github.com/nathmakers/storesrv/internal/config"
	"github.com/nathmakers/storesrv/internal/db"
	"github.com/nathmakers/storesrv/internal/db/dbmanager"
	"github.com/nathmakers/storesrv/internal/server"
	"github.com/nathmakers/storesrv/internal/uploader"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const shutdownTimeout = 30 * time.Second

func main() {
	configPath := flag.String("config", "", "path to TOML config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}
	setupLogger(cfg)

	ctx := log.Logger.WithContext(context.Background())

	gdb, err := dbmanager.Open(ctx, cfg)
	if err != nil {
		// Configuration faults are fatal: the process never serves traffic
		// in a silently degraded mode.
		log.Fatal().Err(err).Msg("failed to open backing store")
	}
	store := db.New(gdb)

	// A startup-time schema failure is logged, not fatal; read paths retry
	// lazily on first access.
	if err := store.EnsureSchema(ctx); err != nil {
		log.Error().Err(err).Msg("schema creation failed at startup")
	}

	up, err := uploader.NewCloudinary(
		cfg.Cloudinary.CloudName,
		cfg.Cloudinary.APIKey,
		cfg.Cloudinary.APISecret,
	)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to init image uploader")
	}

	s := server.CreateNewServer(cfg, store, up)
	s.MountHandlers()

	httpServer := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: s.Router,
	}
	go func() {
		log.Info().Int("port", cfg.Server.Port).Msg("storesrv listening")
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("http server failed")
		}
	}()

	wait := gfshutdown.GracefulShutdown(
		context.Background(),
		shutdownTimeout,
		map[string]gfshutdown.Operation{
			"http-server": func(ctx context.Context) error {
				return httpServer.Shutdown(ctx)
			},
			"store": func(ctx context.Context) error {
				return store.Close()
			},
		},
	)
	exitCode := <-wait
	log.Info().Int("code", exitCode).Msg("storesrv exited")
	os.Exit(exitCode)
}

func setupLogger(cfg *config.Config) {
	level, err := zerolog.ParseLevel(cfg.Log.Level)
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)
	if cfg.Log.Pretty {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}
}
