package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"github.com/tbourn/go-survey-backend/internal/config"
	httpapi "github.com/tbourn/go-survey-backend/internal/http"
	"github.com/tbourn/go-survey-backend/internal/observability"
	"github.com/tbourn/go-survey-backend/internal/repo"
	"github.com/tbourn/go-survey-backend/internal/sysutil"
)

const (
	shutdownTimeout = 15 * time.Second
	purgeInterval   = time.Hour
)

var (
	cfg config.Config

	rootCmd = &cobra.Command{
		Use:           "survey-api",
		Short:         "Survey back-office REST API",
		Long:          `Serves companies, clients, projects, questionnaires, questions, answers and filters over HTTP under API_BASE_PATH.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return loadConfig()
		},
	}
	serveCmd = &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), cfg)
		},
	}
	migrateCmd = &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema and exit",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMigrate(cmd.Context(), cfg)
		},
	}
	versionCmd = &cobra.Command{
		Use:   "version",
		Short: "Print the build version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), buildVersion())
		},
	}
)

func init() {
	rootCmd.Version = buildVersion()
	rootCmd.RunE = serveCmd.RunE
	rootCmd.AddCommand(serveCmd, migrateCmd, versionCmd)
}

// loadConfig reads an optional .env, then the environment, and installs
// the global logger.
func loadConfig() error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("load .env: %w", err)
	}
	c, err := config.Load()
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	cfg = c
	sysutil.SetupLogger(os.Stderr, cfg.LogLevel, cfg.LogPretty)
	return nil
}

// buildVersion prefers APP_VERSION over the linked-in version.
func buildVersion() string {
	return sysutil.FirstNonEmpty(os.Getenv("APP_VERSION"), version)
}

// dsnFor picks the connection string for the configured driver.
func dsnFor(c config.Config) string {
	if c.DBDriver == repo.DriverPostgres {
		return c.DatabaseURL
	}
	return c.DBPath
}

func openDB(c config.Config) (*gorm.DB, error) {
	db, err := repo.Open(c.DBDriver, dsnFor(c), c.DBTrace)
	if err != nil {
		return nil, fmt.Errorf("open %s database: %w", c.DBDriver, err)
	}
	return db, nil
}

func closeDB(db *gorm.DB) {
	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}

func runMigrate(ctx context.Context, c config.Config) error {
	db, err := openDB(c)
	if err != nil {
		return err
	}
	defer closeDB(db)

	if err := repo.AutoMigrate(db.WithContext(ctx)); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	log.Info().Str("driver", c.DBDriver).Msg("schema up to date")
	return nil
}

func runServe(ctx context.Context, c config.Config) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownOTel, err := observability.SetupOTel(ctx, c.OTEL, observability.Build{
		Version:     buildVersion(),
		Environment: c.GinMode,
		DBSystem:    c.DBDriver,
	})
	if err != nil {
		return fmt.Errorf("otel: %w", err)
	}
	defer func() {
		sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := shutdownOTel(sctx); err != nil {
			log.Warn().Err(err).Msg("otel shutdown")
		}
	}()

	db, err := openDB(c)
	if err != nil {
		return err
	}
	defer closeDB(db)

	if sysutil.IsTruthy(os.Getenv("SKIP_MIGRATIONS")) {
		log.Info().Msg("migrations skipped")
	} else if err := repo.AutoMigrate(db.WithContext(ctx)); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	go purgeIdempotency(ctx, db, purgeInterval)

	gin.SetMode(c.GinMode)
	r := gin.New()
	httpapi.RegisterRoutes(r, db, c)

	srv := &http.Server{
		Addr:              ":" + c.Port,
		Handler:           r,
		ReadTimeout:       c.ReadTimeout,
		ReadHeaderTimeout: c.ReadHeaderTimeout,
		WriteTimeout:      c.WriteTimeout,
		IdleTimeout:       c.IdleTimeout,
		MaxHeaderBytes:    c.MaxHeaderBytes,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().
			Str("addr", srv.Addr).
			Str("base_path", c.APIBasePath).
			Str("db", c.DBDriver).
			Str("version", buildVersion()).
			Msg("listening")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down")
	sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(sctx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

// purgeIdempotency drops expired idempotency records once at start and
// then every interval until ctx is done.
func purgeIdempotency(ctx context.Context, db *gorm.DB, every time.Duration) {
	t := time.NewTicker(every)
	defer t.Stop()
	for {
		n, err := repo.PurgeIdempotency(ctx, db, time.Now())
		switch {
		case err != nil && ctx.Err() == nil:
			log.Warn().Err(err).Msg("idempotency purge failed")
		case n > 0:
			log.Debug().Int64("removed", n).Msg("idempotency purge")
		}
		select {
		case <-ctx.Done():
			return
		case <-t.C:
		}
	}
}
