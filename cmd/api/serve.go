package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"cat-collector/internal/adapters/auth/iam"
	"cat-collector/internal/adapters/objectstore/s3store"
	pg "cat-collector/internal/adapters/storage/postgres"
	"cat-collector/internal/config"
	"cat-collector/internal/middleware"
	"cat-collector/internal/platform/logger"
	"cat-collector/internal/ports/auth"
	"cat-collector/internal/ports/objectstore"
	"cat-collector/internal/router"

	"github.com/spf13/cobra"
)

type serveOptions struct {
	migrate bool
}

var serveOpts serveOptions

var serveCmd = &cobra.Command{
	Use:          "serve",
	Short:        "Levanta el servidor HTTP",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd.Context(), serveOpts)
	},
}

func bindServeFlags(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&serveOpts.migrate, "migrate", false, "aplicar el schema antes de arrancar (solo con DB_DSN)")
}

func runServe(ctx context.Context, opts serveOptions) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	log := newLogger(cfg)

	var db *sql.DB
	if cfg.DatabaseDSN != "" {
		db, err = pg.Open(cfg.DatabaseDSN)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer db.Close()
		log.Info("connected to database", nil)

		if opts.migrate {
			if err := pg.Migrate(ctx, db); err != nil {
				return err
			}
			log.Info("schema applied", nil)
		}
	} else {
		log.Warn("DB_DSN not set, using in-memory storage", nil)
	}

	var verifier auth.AuthVerifier
	if cfg.Auth.URL != "" {
		client, err := iam.NewClient(iam.Config{
			BaseURL:      cfg.Auth.URL,
			APIKey:       cfg.Auth.APIKey,
			APIKeyHeader: cfg.Auth.APIKeyHeader,
			Timeout:      cfg.Auth.Timeout,
		})
		if err != nil {
			return fmt.Errorf("iam client: %w", err)
		}
		verifier = iam.NewVerifier(client)
	} else if cfg.IsDevelopment() {
		log.Warn("AUTH_IAM_URL not set, accepting "+middleware.DebugUserHeader, nil)
	} else {
		log.Warn("AUTH_IAM_URL not set, only basic auth is accepted", nil)
	}

	var store objectstore.Store
	if cfg.UsesS3() {
		s3, err := s3store.New(ctx, s3store.Config{
			Region:          cfg.S3.Region,
			Endpoint:        cfg.S3.Endpoint,
			UsePathStyle:    cfg.S3.UsePathStyle,
			AccessKeyID:     cfg.S3.AccessKeyID,
			SecretAccessKey: cfg.S3.SecretAccessKey,
		})
		if err != nil {
			return err
		}
		store = s3
	} else {
		log.Warn("S3_BUCKET not set, photos are kept in memory", nil)
	}

	handler := router.NewRouter(router.Options{
		AuthVerifier:  verifier,
		DevAuth:       cfg.IsDevelopment(),
		DB:            db,
		ObjectStore:   store,
		Bucket:        cfg.S3.Bucket,
		BaseURL:       cfg.S3.BaseURL,
		UploadTimeout: cfg.S3.UploadTimeout,
		MaxUploadSize: cfg.MaxUploadSize,
		Logger:        log,
	})

	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      handler,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		ErrorLog:     slog.NewLogLogger(log.Slog().Handler(), slog.LevelError),
	}

	serverErr := make(chan error, 1)
	go func() {
		log.Info("server starting", map[string]any{"addr": srv.Addr, "env": cfg.AppEnv})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case err := <-serverErr:
		if err != nil {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Info("shutdown signal received", nil)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown: %w", err)
	}
	log.Info("server stopped", nil)
	return nil
}

func newLogger(cfg *config.Config) *logger.SlogLogger {
	return logger.New(logger.Options{
		Level:  logger.ParseLevel(cfg.LogLevel),
		Format: logger.ParseFormat(cfg.LogFormat),
		App:    cfg.AppName,
		Output: os.Stdout,
	})
}
