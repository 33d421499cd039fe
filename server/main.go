package main

import (
	"context"
	"errors"
	"fmt"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/redis/go-redis/v9"
	"os"
	"os/signal"
	"syscall"
	"time"
	"travel-companion/config"
	"travel-companion/exchange"
	"travel-companion/http"
	"travel-companion/rates"
	"travel-companion/session"
	"travel-companion/translate"

	nhttp "net/http"
)

func main() {
	cfg, err := config.Load(".env")
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	logger := config.NewLogger(cfg.Log, os.Stderr)

	if err := run(cfg, logger); err != nil {
		level.Error(logger).Log("msg", "exiting", "err", err)
		os.Exit(1)
	}
}

func run(cfg *config.App, logger log.Logger) error {
	table, err := loadTable(cfg.Rates)
	if err != nil {
		return err
	}

	ratesService := rates.NewService(table)
	ratesService = rates.NewLoggingService(log.With(logger, "component", "rates"), ratesService)

	exchangeService := exchange.NewService(ratesService)
	exchangeService = exchange.NewLoggingService(log.With(logger, "component", "exchange"), exchangeService)

	store, closeStore, err := openStore(cfg.Session)
	if err != nil {
		return err
	}
	defer closeStore()

	var opts []translate.Option
	if cfg.Translate.Delay > 0 {
		opts = append(opts, translate.WithDelay(translate.SleepDelay(cfg.Translate.Delay)))
	}
	translateService := translate.NewService(translate.NewDefaultEngine(), store, opts...)
	translateService = translate.NewLoggingService(log.With(logger, "component", "translate"), translateService)

	handler := http.NewServer(exchangeService, translateService, log.With(logger, "component", "http"),
		http.WithRateLimit(cfg.RateLimit.RPS, cfg.RateLimit.Burst))

	server := &nhttp.Server{
		Addr:         cfg.HTTP.Addr,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		level.Info(logger).Log("msg", "listening", "addr", cfg.HTTP.Addr, "sessions", cfg.Session.Store)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, nhttp.ErrServerClosed) {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		return fmt.Errorf("serving: %w", err)
	case sig := <-quit:
		level.Info(logger).Log("msg", "shutting down", "signal", sig)
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

// loadTable reads the configured rate table, falling back to the bundled one
func loadTable(cfg config.Rates) (*rates.Table, error) {
	if cfg.File == "" {
		return rates.Default(), nil
	}
	f, err := os.Open(cfg.File)
	if err != nil {
		return nil, fmt.Errorf("opening rate table: %w", err)
	}
	defer f.Close()
	return rates.Load(f)
}

func openStore(cfg config.Session) (session.Store, func(), error) {
	if cfg.Store != "redis" {
		return session.NewMemoryStore(cfg.TTL), func() {}, nil
	}

	opts, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		return nil, nil, fmt.Errorf("parsing redis url: %w", err)
	}
	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, nil, fmt.Errorf("connecting to redis: %w", err)
	}

	return session.NewRedisStore(client, cfg.Prefix, cfg.TTL), func() { client.Close() }, nil
}
