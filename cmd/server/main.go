package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/che1nov/tea-shop/internal/api"
	"github.com/che1nov/tea-shop/internal/api/metrics"
	"github.com/che1nov/tea-shop/internal/core/domain"
	"github.com/che1nov/tea-shop/internal/core/service"
	"github.com/che1nov/tea-shop/internal/infrastructure/config"
	"github.com/che1nov/tea-shop/internal/infrastructure/remote"
	redisstore "github.com/che1nov/tea-shop/internal/infrastructure/storage/redis"
	"github.com/che1nov/tea-shop/pkg/logger"
)

func main() {
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		panic(err)
	}

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	rdb, err := redisstore.Connect(ctx, redisstore.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer rdb.Close()

	// The one live session and cart this gateway serves.
	session := service.NewSessionStore(redisstore.NewSessionStorage(rdb), log)
	session.Restore(ctx)
	if session.IsAuthenticated() {
		metrics.SessionEventsTotal.WithLabelValues("restore").Inc()
	}

	cart := domain.NewCart()

	client := remote.NewClient(cfg.APIBaseURL, cfg.APITimeout, session.Token, log)
	checkout := service.NewCheckoutService(cart, session, client, log)
	deliveries := service.NewDeliveryService(client, log)

	e := api.NewRouter(api.Deps{
		Cart:       cart,
		Session:    session,
		Client:     client,
		Checkout:   checkout,
		Deliveries: deliveries,
		Upstream:   client,
		Redis:      rdb,
		Log:        log,
	})

	go func() {
		log.Info().Str("port", cfg.Port).Str("api", cfg.APIBaseURL).Msg("storefront gateway listening")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
	log.Info().Msg("storefront gateway stopped")
}
