package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/qualipharm/qualipharm/internal/api"
	"github.com/qualipharm/qualipharm/internal/config"
	"github.com/qualipharm/qualipharm/internal/services"
	"github.com/qualipharm/qualipharm/internal/storage"
	"github.com/qualipharm/qualipharm/internal/store"
	"github.com/qualipharm/qualipharm/pkg/logger"
	"github.com/qualipharm/qualipharm/pkg/metrics"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "qualipharm",
	Short: "Quality-management documents for community pharmacies",
	Long: `qualipharm generates the quality-system documents of a community
pharmacy (reports, registers, plans, organigrams) as paginated PDFs,
archives every submission and compiles monthly registers.`,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API server",
	RunE:  runServe,
}

var renderCmd = &cobra.Command{
	Use:   "render [record.json] [output.pdf]",
	Short: "Render a saved record file to a PDF, offline",
	Args:  cobra.ExactArgs(2),
	RunE:  runRender,
}

var compileCmd = &cobra.Command{
	Use:   "compile [template-id] [year] [month] [output.pdf]",
	Short: "Render the monthly compilation for a template",
	Args:  cobra.ExactArgs(4),
	RunE:  runCompile,
}

func main() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to the YAML configuration file")
	rootCmd.AddCommand(serveCmd, renderCmd, compileCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	log, err := logger.New(cfg.Environment)
	if err != nil {
		return fmt.Errorf("initializing logger: %w", err)
	}
	defer log.Sync()

	if cfg.Sentry.DSN != "" {
		if err := sentry.Init(sentry.ClientOptions{
			Dsn:         cfg.Sentry.DSN,
			Environment: cfg.Environment,
		}); err != nil {
			return fmt.Errorf("initializing sentry: %w", err)
		}
		defer sentry.Flush(2 * time.Second)
	}

	db, err := store.Open(cfg, log)
	if err != nil {
		return err
	}
	defer db.Close()

	collector := metrics.NewCollector()
	uploader := storage.NewUploader(cfg, log)
	docService := services.NewDocumentService(db, uploader, collector, log)

	router := api.NewRouter(log, collector, docService)
	router.SetupRoutes()

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router.Engine(),
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("Starting HTTP server", zap.String("address", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-quit:
		log.Info("Shutting down", zap.String("signal", sig.String()))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(ctx)
}
