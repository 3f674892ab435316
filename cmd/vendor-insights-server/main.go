package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/iwvelando/vendor-insights/internal/config"
	"github.com/iwvelando/vendor-insights/internal/insights"
	"github.com/iwvelando/vendor-insights/internal/server"
	"github.com/iwvelando/vendor-insights/pkg/constants"
	"github.com/iwvelando/vendor-insights/pkg/validation"
	"go.uber.org/zap"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	configLocation := flag.String("config", constants.DefaultServerConfigFile, "path to server configuration file")
	address := flag.String("address", "", "listen address override")
	logLevel := flag.String("log-level", "", "log level override (debug, info, warn, error)")
	flag.Parse()

	cfg, err := server.LoadConfig(*configLocation)
	if err != nil {
		fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to load server configuration at %s\", \"error\": \"%v\"}\n", *configLocation, err)
		os.Exit(1)
	}
	if *address != "" {
		cfg.Address = *address
	}

	logger, err := config.BuildLogger(cfg.Logging, *logLevel)
	if err != nil {
		fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to initialize logger\", \"error\": \"%v\"}\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = logger.Sync()
	}()

	rotation := config.Configuration{Rotation: cfg.Rotation}
	if warning := validation.ValidateTimezone(cfg.Rotation.Timezone); warning != "" {
		logger.Warn("Configuration warning: "+warning,
			zap.String("op", "main"),
		)
	}

	service, err := insights.NewService(logger, insights.WithLocation(rotation.Location()))
	if err != nil {
		logger.Fatal("content pools are misconfigured",
			zap.String("op", "main"),
			zap.Error(err),
		)
	}

	handler := server.NewHandler(logger, service, server.Options{
		MaxBodySize:    cfg.BodySizeBytes(),
		Version:        version,
		AllowedOrigins: cfg.AllowedOrigins,
	})
	srv := server.New(cfg, handler)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Info("starting HTTP server",
			zap.String("op", "main"),
			zap.String("address", cfg.Address),
			zap.String("timezone", rotation.Location().String()),
			zap.String("version", version),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("HTTP server failed",
				zap.String("op", "main"),
				zap.Error(err),
			)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down HTTP server", zap.String("op", "main"))

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed",
			zap.String("op", "main"),
			zap.Error(err),
		)
	}
}
