package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"vet-clinic-api/internal/config"
	"vet-clinic-api/internal/platform/logger"
	"vet-clinic-api/internal/router"

	pg "vet-clinic-api/internal/adapters/storage/postgres"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		os.Stderr.WriteString("config: " + err.Error() + "\n")
		os.Exit(1)
	}

	log := logger.New(logger.Options{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
		App:    cfg.AppName,
	})

	opts := router.Options{Log: log}

	// Sin DB_DSN el server corre in-memory (dev/demo).
	if cfg.DBDSN != "" {
		db, err := pg.Open(cfg.DBDSN, cfg.DBMaxOpenConns, cfg.DBMaxIdleConns)
		if err != nil {
			log.Fatal().Err(err).Msg("postgres connect")
		}
		defer db.Close()
		opts.DB = db
		log.Info().Msg("storage: postgres")
	} else {
		log.Info().Msg("storage: in-memory")
	}

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router.NewRouter(opts),
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	go func() {
		log.Info().Str("addr", srv.Addr).Str("env", cfg.Env).Msg("starting server")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("shutdown")
	}
	log.Info().Msg("server stopped")
}
