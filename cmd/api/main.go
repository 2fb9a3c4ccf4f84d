package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"canvas-store/internal/cache"
	"canvas-store/internal/config"
	"canvas-store/internal/db"
	"canvas-store/internal/httpserver"
	"canvas-store/internal/metrics"
	"canvas-store/internal/notify"
	cartrepo "canvas-store/internal/repository/cart"
	orderrepo "canvas-store/internal/repository/order"
	productrepo "canvas-store/internal/repository/product"
	tokenrepo "canvas-store/internal/repository/token"
	userrepo "canvas-store/internal/repository/user"
	accountsvc "canvas-store/internal/service/account"
	cartsvc "canvas-store/internal/service/cart"
	catalogsvc "canvas-store/internal/service/catalog"
	ordersvc "canvas-store/internal/service/order"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
)

func main() {
	cfg := config.FromEnv()
	logger := log.New(os.Stdout, "[api] ", log.LstdFlags|log.LUTC|log.Lshortfile)

	ctx := context.Background()
	dbpool, err := db.Connect(ctx, cfg.DBConnString)
	if err != nil {
		logger.Fatalf("connect to db: %v", err)
	}
	defer dbpool.Close()

	registry := prometheus.NewRegistry()
	m := metrics.New(registry)

	var dispatcher notify.Dispatcher
	if len(cfg.KafkaBrokers) > 0 {
		kafkaDispatcher := notify.NewKafkaDispatcher(cfg.KafkaBrokers, cfg.KafkaTopic, logger)
		defer kafkaDispatcher.Close()
		dispatcher = kafkaDispatcher
	} else {
		logger.Printf("KAFKA_BROKERS not set, order confirmations disabled")
	}

	productRepo := productrepo.NewPostgres(dbpool, logger)
	cartRepo := cartrepo.NewPostgres(dbpool)
	orderRepo := orderrepo.NewPostgres(dbpool, logger)
	userRepo := userrepo.NewPostgres(dbpool, logger)
	tokenRepo := tokenrepo.NewPostgres(dbpool)

	catalogService := catalogsvc.New(productRepo, nil)
	if cfg.RedisAddr != "" {
		client := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		defer client.Close()
		catalogService = catalogsvc.New(productRepo, cache.NewFeaturedCache(client, cfg.FeaturedTTL, logger))
	}
	cartService := cartsvc.New(cartRepo, productRepo)
	orderService := ordersvc.New(orderRepo, cartRepo, userRepo, dispatcher, m, logger)
	accountService := accountsvc.New(userRepo, tokenRepo)

	srv := httpserver.New(cfg.HTTPAddr, logger, dbpool, httpserver.Deps{
		CatalogSvc: catalogService,
		CartSvc:    cartService,
		OrderSvc:   orderService,
		AccountSvc: accountService,
	}, registry)

	serverErr := make(chan error, 1)
	go func() {
		logger.Printf("starting http server on %s", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	stopCh := make(chan os.Signal, 1)
	signal.Notify(stopCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-stopCh:
		logger.Printf("received signal %s, shutting down", sig)
	case err := <-serverErr:
		logger.Printf("server error: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Printf("graceful shutdown failed: %v", err)
	} else {
		logger.Printf("server stopped")
	}
}
