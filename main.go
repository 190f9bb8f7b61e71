package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/rylub/api-data-validation/internal/config"
	"github.com/rylub/api-data-validation/internal/fetcher"
	"github.com/rylub/api-data-validation/internal/logging"
	"github.com/rylub/api-data-validation/internal/model"
	"github.com/rylub/api-data-validation/internal/pipeline"
	"github.com/rylub/api-data-validation/internal/report"
)

const (
	exitPass    = 0
	exitFail    = 1
	exitBadArgs = 2
)

func main() {
	os.Exit(run())
}

func run() int {
	var (
		coins      string
		currency   string
		format     string
		configPath string
	)

	pflag.StringVar(&coins, "coins", "", "comma-separated list of coins to fetch (default from config)")
	pflag.StringVar(&currency, "currency", "", "currency for price comparison (default from config)")
	pflag.StringVar(&format, "format", "", "output format: json or summary (default from config)")
	pflag.StringVar(&configPath, "config", "", "path to config file")
	pflag.Parse()

	// Load configuration
	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		return exitBadArgs
	}

	// Flags not given fall back to configured defaults
	if coins == "" {
		coins = cfg.DefaultCoins
	}
	if currency == "" {
		currency = cfg.DefaultCurrency
	}
	if format == "" {
		format = cfg.OutputFormat
	}
	if format != "json" && format != "summary" {
		fmt.Fprintf(os.Stderr, "Unknown output format %q (want json or summary)\n", format)
		return exitBadArgs
	}

	req, err := model.NewAssetRequest(strings.Split(coins, ","), currency)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		return exitBadArgs
	}

	logger, err := logging.New(cfg.LogDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logging: %v\n", err)
		return exitBadArgs
	}
	defer logger.Sync()

	// Create context with cancellation for interrupt handling
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		fmt.Fprintln(os.Stderr, "\nReceived interrupt signal, shutting down...")
		cancel()
	}()

	logger.Info("starting API data validation run",
		zap.Strings("coins", req.Assets),
		zap.String("currency", req.Currency))

	f := fetcher.New(fetcher.Config{
		BaseURL:    cfg.APIBaseURL,
		Timeout:    cfg.Timeout(),
		MaxRetries: cfg.MaxRetries,
		RetryDelay: cfg.RetryDelay(),
	}, logger)

	rep, err := pipeline.New(f, logger).Run(ctx, req)
	if err != nil {
		logger.Error("run aborted", zap.Error(err))
		fmt.Fprintf(os.Stderr, "%v\n", err)
		return exitBadArgs
	}

	switch format {
	case "summary":
		fmt.Println(rep.Text())
	default:
		out, err := rep.JSON()
		if err != nil {
			logger.Error("failed to render report", zap.Error(err))
			fmt.Fprintf(os.Stderr, "Failed to render report: %v\n", err)
			return exitFail
		}
		fmt.Println(string(out))
	}

	if path, err := logging.SaveReport(cfg.LogDir, rep, time.Now()); err != nil {
		logger.Warn("failed to save report file", zap.Error(err))
	} else {
		logger.Info("report saved", zap.String("path", path))
	}

	logger.Info("API data validation run completed", zap.String("status", rep.Status))

	if rep.Status != report.StatusPass {
		return exitFail
	}
	return exitPass
}
