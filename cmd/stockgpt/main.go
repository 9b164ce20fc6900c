// Command stockgpt runs the StockGPT server: AI financial analysis
// with PDF report export.
package main

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	flag "github.com/spf13/pflag"
	"golang.org/x/term"

	"github.com/ryar001/Stock-GPT/internal/clients/gemini"
	"github.com/ryar001/Stock-GPT/internal/common"
	"github.com/ryar001/Stock-GPT/internal/server"
	"github.com/ryar001/Stock-GPT/internal/services/analysis"
)

func main() {
	var (
		configPath  = flag.StringP("config", "c", os.Getenv("STOCKGPT_CONFIG"), "path to TOML config file")
		addr        = flag.String("addr", "", "listen address, overrides config (host:port)")
		logLevel    = flag.String("log-level", "", "log level: debug, info, warn, error")
		showVersion = flag.BoolP("version", "v", false, "print version and exit")
		noBanner    = flag.Bool("no-banner", false, "suppress the startup banner")
	)
	flag.Parse()

	if *showVersion {
		fmt.Println(common.GetFullVersion())
		return
	}

	cfg, err := common.LoadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	if *addr != "" {
		if host, port, err := net.SplitHostPort(*addr); err == nil {
			if p, err := strconv.Atoi(port); err == nil {
				cfg.Server.Host = host
				cfg.Server.Port = p
			}
		}
	}
	if *logLevel != "" {
		cfg.Logging.Level = *logLevel
	}
	// JSON logs when not attached to a terminal, unless configured
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = "json"
		if term.IsTerminal(int(os.Stderr.Fd())) {
			cfg.Logging.Format = "console"
		}
	}
	logger := common.NewLogger(cfg.Logging.Level, cfg.Logging.Format)

	if !*noBanner {
		common.PrintBanner(cfg)
	}

	ctx := context.Background()
	client, err := gemini.NewClient(ctx, cfg.Gemini.APIKey,
		gemini.WithModel(cfg.Gemini.Model),
		gemini.WithRateLimit(cfg.Gemini.RateLimit),
		gemini.WithLogger(logger),
	)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to create Gemini client")
	}

	svc := analysis.NewService(client, logger)
	srv := server.NewServer(cfg, svc, logger)

	go func() {
		if err := srv.Start(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()
	logger.Info().
		Str("url", fmt.Sprintf("http://%s:%d", cfg.Server.Host, cfg.Server.Port)).
		Str("model", client.Model()).
		Msg("Server ready")

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	logger.Info().Msg("Shutdown signal received")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.GetShutdownTimeout())
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("HTTP server shutdown failed")
	}
	logger.Info().Msg("Server stopped")
}
