package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"

	"leadassign/internal/config"
	"leadassign/internal/infra"
)

const connectTimeout = 5 * time.Second

func main() {
	logger := logrus.New()

	cfg, err := config.Build()
	if err != nil {
		logger.Fatal(err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()

	pgPool, err := infra.Postgresql(ctx, cfg.PostgresCfg)
	if err != nil {
		logger.Fatal(err)
	}
	defer pgPool.Close()

	mongoClient, err := infra.Mongodb(ctx, cfg.MongoCfg)
	if err != nil {
		logger.Fatal(err)
	}
	defer func() {
		if err := mongoClient.Disconnect(context.Background()); err != nil {
			logger.Errorf("failed to disconnect from mongodb - %s", err)
		}
	}()

	redisClient, err := infra.Redis(ctx, cfg.RedisCfg)
	if err != nil {
		logger.Fatal(err)
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			logger.Errorf("failed to close redis connection - %s", err)
		}
	}()

	app, err := infra.Router(pgPool, mongoClient, redisClient, cfg)
	if err != nil {
		logger.Fatal(err)
	}

	start(app, cfg.HTTPCfg, logger)
}

func start(app *echo.Echo, cfg config.HTTPCfg, logger *logrus.Logger) {
	shutdownCh := make(chan os.Signal, 1)
	errorCh := make(chan error, 1)
	signal.Notify(shutdownCh, os.Interrupt)

	go func() {
		errorCh <- app.Start(fmt.Sprintf(":%d", cfg.Port))
	}()

	select {
	case <-shutdownCh:
		ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()

		logger.Info("shutdown signal has been sent, stopping the server...")
		if err := app.Shutdown(ctx); err != nil {
			logger.Fatalf("failed to stop server gracefully - %s", err)
		}
	case err := <-errorCh:
		if !errors.Is(err, http.ErrServerClosed) {
			logger.Fatalf("shutting down the server, unexpected error occurred - %s", err)
		}
	}
}
