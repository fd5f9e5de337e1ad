package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Vibhuti270/virtual-herbal-backend/api"
	"github.com/Vibhuti270/virtual-herbal-backend/config"
	"github.com/Vibhuti270/virtual-herbal-backend/events"
	"github.com/Vibhuti270/virtual-herbal-backend/events/redis"
	"github.com/Vibhuti270/virtual-herbal-backend/service"
	"github.com/Vibhuti270/virtual-herbal-backend/store/dynamo"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel})))

	if err := run(cfg); err != nil {
		log.Fatalf("%v", err)
	}
}

func run(cfg *config.Config) error {
	ctx := context.Background()

	herbalStore, err := dynamo.NewDynamoHerbalStore(ctx, dynamo.ClientOptions{
		DevMode:         cfg.DevMode,
		Endpoint:        cfg.DynamoDBEndpoint,
		Region:          cfg.AWSRegion,
		AccessKeyID:     cfg.AWSAccessKeyID,
		SecretAccessKey: cfg.AWSSecretAccessKey,
	}, cfg.DynamoDBTable, cfg.AccountsTable)
	if err != nil {
		return fmt.Errorf("failed to create dynamodb store: %w", err)
	}

	var publisher events.Publisher
	if cfg.RedisEndpoint != "" {
		redisPublisher, err := redis.NewRedisPublisher(ctx, cfg.DevMode, cfg.RedisEndpoint)
		if err != nil {
			return fmt.Errorf("failed to create redis publisher: %w", err)
		}
		defer redisPublisher.Close()
		publisher = redisPublisher
	}

	svc, err := service.NewService(herbalStore, herbalStore, publisher)
	if err != nil {
		return fmt.Errorf("failed to create service: %w", err)
	}

	herbalAPI := api.NewHerbalGardenAPI(svc)

	shutdownCtx, stop := signal.NotifyContext(
		context.Background(),
		os.Interrupt,
		syscall.SIGTERM,
	)
	defer stop()

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           herbalAPI.Handler(cfg.ClientURL),
		ReadHeaderTimeout: 10 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		slog.Info("Server running", "url", "http://localhost:"+cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
	}()

	select {
	case err := <-serveErr:
		return fmt.Errorf("server failed: %w", err)
	case <-shutdownCtx.Done():
	}

	slog.Info("Server shutting down...")

	ctxTimeout, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctxTimeout); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}

	return nil
}
