package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"cafecart/internal/auth"
	"cafecart/internal/config"
	"cafecart/internal/db"
	"cafecart/internal/httpserver"
	"cafecart/internal/notify"
	catalogrepo "cafecart/internal/repository/catalog"
	"cafecart/internal/repository/cartstore"
	cartsvc "cafecart/internal/service/cart"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file, relying on the process environment")
	}

	cfg := config.FromEnv()
	logger := log.New(os.Stdout, "[api] ", log.LstdFlags|log.LUTC|log.Lshortfile)

	ctx := context.Background()
	dbpool, err := db.Connect(ctx, cfg.DBConnString)
	if err != nil {
		logger.Fatalf("connect to db: %v", err)
	}
	defer dbpool.Close()

	hub := notify.NewHub()
	notifiers := notify.Multi{hub}

	var store cartstore.Store
	switch cfg.CartBackend {
	case config.BackendRedis:
		if cfg.RedisAddr == "" {
			logger.Fatalf("CART_BACKEND=redis requires REDIS_ADDR")
		}
		store = nil // assigned below once redis connects
	case config.BackendPostgres:
		store = cartstore.NewPostgres(dbpool, logger)
	default:
		logger.Fatalf("unknown cart backend %q", cfg.CartBackend)
	}

	if cfg.RedisAddr != "" {
		redisClient, err := db.ConnectRedis(ctx, cfg.RedisAddr)
		if err != nil {
			logger.Fatalf("connect to redis: %v", err)
		}
		defer redisClient.Close()
		if store == nil {
			store = cartstore.NewRedis(redisClient, logger)
		}
		notifiers = append(notifiers, notify.NewRedisPublisher(redisClient, logger))
	}

	catalogRepo := catalogrepo.NewPostgres(dbpool, logger)
	cartService := cartsvc.New(store, catalogRepo, notifiers)
	tokens := auth.NewManager(cfg.JWTSecret, cfg.JWTTTL)

	srv, err := httpserver.New(cfg.HTTPAddr, logger, dbpool, httpserver.Deps{
		CartSvc: cartService,
		Catalog: catalogRepo,
		Tokens:  tokens,
		Events:  hub,
	}, cfg.CORSOrigins)
	if err != nil {
		logger.Fatalf("init server: %v", err)
	}

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

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Printf("graceful shutdown failed: %v", err)
	} else {
		logger.Printf("server stopped")
	}
}
