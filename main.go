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

	"slviewer/internal/config"
	"slviewer/internal/dataset"
	"slviewer/internal/logging"
	"slviewer/ui"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 10 * time.Second

// cliOptions holds flag values; set flags override the environment
type cliOptions struct {
	port     string
	dataDir  string
	dataFile string
	verbose  bool
}

func newRootCmd(opts *cliOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "slviewer",
		Short: "SL Viewer - web view of the SL work queue",
		Long: `Serves the work queue read from a local .xlsx or .csv file as a web page
and JSON endpoints. Without a data file the built-in sample queue is shown.

Environment: PORT, DATA_DIR, DATA_FILE, GIN_MODE, LOG_LEVEL (a .env file is
loaded when present).`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := buildConfig(cmd, opts)
			if err != nil {
				return err
			}
			return runServer(cmd.Context(), cfg)
		},
	}

	cmd.Flags().StringVarP(&opts.port, "port", "p", "", "listening port (overrides PORT)")
	cmd.Flags().StringVar(&opts.dataDir, "data-dir", "", "directory scanned for data files (overrides DATA_DIR)")
	cmd.Flags().StringVar(&opts.dataFile, "data-file", "", "explicit data file (overrides DATA_FILE)")
	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "debug logging")

	return cmd
}

// buildConfig loads .env and the environment, then applies set flags
func buildConfig(cmd *cobra.Command, opts *cliOptions) (*config.Config, error) {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("port") {
		cfg.Server.Port = opts.port
	}
	if flags.Changed("data-dir") {
		cfg.Data.Dir = opts.dataDir
	}
	if flags.Changed("data-file") {
		cfg.Data.File = opts.dataFile
	}
	if opts.verbose {
		cfg.Log.Level = "debug"
	}

	if err := config.Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func runServer(ctx context.Context, cfg *config.Config) error {
	logger, err := logging.NewLogger(cfg.Log.Level)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	gin.SetMode(cfg.Server.GinMode)

	loader := dataset.NewLoader(cfg.Data, logger)
	server, err := ui.NewServer(loader, ui.Options{Logger: logger})
	if err != nil {
		return fmt.Errorf("failed to initialize server: %w", err)
	}

	httpServer := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           server.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	logger.Info("SL Viewer starting",
		zap.String("addr", httpServer.Addr),
		zap.String("data_dir", cfg.Data.Dir),
		zap.String("data_file", cfg.Data.File))
	if path, err := dataset.Locate(cfg.Data.Dir, cfg.Data.File); err != nil {
		logger.Info("no data file yet, sample data will be served", zap.Error(err))
	} else {
		logger.Info("data file found", zap.String("path", path))
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return httpServer.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

func main() {
	if err := newRootCmd(&cliOptions{}).Execute(); err != nil {
		os.Exit(1)
	}
}
