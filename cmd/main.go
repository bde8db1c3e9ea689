package main

//
//  @title           paymerge API
//  @version         1.0
//  @description     Marketplace payment report consolidation service.
//  @termsOfService  https://github.com/platformctl/paymerge
//  @contact.name    API Support
//  @contact.url     https://github.com/platformctl/paymerge
//  @contact.email   support@example.com
//  @license.name    MIT
//  @license.url     https://opensource.org/licenses/MIT
//  @host            localhost:8080
//  @BasePath        /
//  @schemes         http
//
//  @tag.name        totals
//  @tag.description Endpoints for querying consolidated totals
//
//  @tag.name        health
//  @tag.description Liveness and readiness probes

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/platformctl/paymerge/config"
	_ "github.com/platformctl/paymerge/docs" // swagger docs
	"github.com/platformctl/paymerge/internal/app"
	"github.com/platformctl/paymerge/internal/currency"
	"github.com/platformctl/paymerge/internal/ingestion"
	"github.com/platformctl/paymerge/internal/locale"
	"github.com/platformctl/paymerge/internal/logger"
	"github.com/platformctl/paymerge/internal/reconcile"
	"github.com/platformctl/paymerge/internal/storage"
	"github.com/platformctl/paymerge/internal/translate"
	"github.com/platformctl/paymerge/internal/writer"
)

// startServer initializes and starts the HTTP server in a separate goroutine.
func startServer(router http.Handler, port string) *http.Server {
	server := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.L().Info().Str("port", port).Msg("server starting")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.L().Fatal().Err(err).Msg("server failed to start")
		}
	}()

	return server
}

// gracefulShutdown gracefully terminates the HTTP server and cleans up
// resources when an OS interrupt signal (SIGINT, SIGTERM) is received.
func gracefulShutdown(ctx context.Context, server *http.Server, cleanup func()) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	<-quit
	logger.L().Info().Msg("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.L().Fatal().Err(err).Msg("server forced to shutdown")
	}

	cleanup()
	logger.L().Info().Msg("server exited gracefully")
}

// runMerge consolidates the configured marketplaces for the period, prints
// the reconciliation report, and writes the output artifacts. The workbook
// write and the optional DB load are independent sinks of the same dataset,
// so they run concurrently.
func runMerge(ctx context.Context, cfg config.Config, force bool) error {
	rc := cfg.Report
	if rc.Year() == 0 || rc.Month() == 0 {
		return fmt.Errorf("REPORT_PERIOD must be set as YYYY-MM, got %q", rc.Period)
	}

	table, err := translate.Build(rc.TranslationWB)
	if err != nil {
		return fmt.Errorf("translation workbook: %w", err)
	}
	logger.L().Info().
		Int("headers", table.HeaderCount()).
		Int("payment_types", table.TypeCount()).
		Msg("translation dictionary built")

	months := locale.NewMonthIndex()
	conv := currency.NewConverter(rc.Rates)

	ds, err := ingestion.Run(ctx, ingestion.Options{
		InputDir: rc.InputDir,
		Year:     rc.Year(),
		Month:    rc.Month(),
		Client:   rc.Client,
		Markets:  rc.Markets,
		Convert:  rc.Convert,
	}, table, months, conv)
	if err != nil {
		return err
	}

	rep := reconcile.Check(ds)
	fmt.Print(rep.String())
	if !rep.AllMatch() {
		logger.L().Warn().Msg("reconciliation mismatch, inspect the report above")
	}

	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := os.MkdirAll(filepath.Dir(rc.OutputFile), 0o755); err != nil {
			return fmt.Errorf("output dir: %w", err)
		}
		if err := writer.WriteWorkbook(rc.OutputFile, ds); err != nil {
			return fmt.Errorf("write workbook: %w", err)
		}
		logger.L().Info().Str("file", rc.OutputFile).Int("rows", len(ds.Rows)).Msg("workbook written")
		return nil
	})
	if rc.Persist {
		g.Go(func() error {
			db, err := app.InitPostgres(cfg)
			if err != nil {
				return fmt.Errorf("db connect: %w", err)
			}
			defer func() { _ = db.Close() }()
			return storage.LoadDataset(storage.NewReportRepository(db), rc.Period, ds, force)
		})
	}
	return g.Wait()
}

// main is the entry point of the paymerge application.
//
// Modes (selected via --mode flag):
//   - merge: Consolidates per-marketplace payment report CSVs into one workbook.
//   - api:   Starts the REST API to expose persisted consolidated totals.
//
// Flags:
//   - --mode:  Execution mode ("merge" or "api"). Default: "merge".
//   - --force: Reload marketplaces already recorded in the load log.
//   - --port:  Port for the API server. Defaults to value from config (SERVER_PORT).
func main() {
	ctx := context.Background()

	// Load configuration from environment or .env file
	config.LoadConfig()

	// Initialize JSON logger
	logger.Init()

	// Parse CLI flags (override config defaults if provided)
	mode := flag.String("mode", "merge", "Mode: merge or api")
	force := flag.Bool("force", false, "Reload marketplaces even if already persisted for the period")
	port := flag.String("port", config.AppConfig.Server.Port, "Port for API mode")
	flag.Parse()

	switch *mode {
	case "merge":
		logger.L().Info().
			Str("period", config.AppConfig.Report.Period).
			Strs("markets", config.AppConfig.Report.Markets).
			Msg("running consolidation")
		if err := runMerge(ctx, config.AppConfig, *force); err != nil {
			logger.L().Fatal().Err(err).Msg("consolidation failed")
		}
		logger.L().Info().Msg("consolidation completed successfully")

	case "api":
		logger.L().Info().Msg("starting API server")

		router, cleanup, err := app.InitializeApp()
		if err != nil {
			logger.L().Fatal().Err(err).Msg("app init error")
		}

		server := startServer(router, *port)
		gracefulShutdown(ctx, server, cleanup)

	default:
		logger.L().Fatal().Str("mode", *mode).Msg("unknown mode")
	}
}
