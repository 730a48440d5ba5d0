package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/coppercraft/shop/internal/config"
	"github.com/coppercraft/shop/internal/httpserver"
	"github.com/coppercraft/shop/internal/logging"
	"github.com/coppercraft/shop/internal/mykafka"
	"github.com/coppercraft/shop/internal/repo"
	"github.com/coppercraft/shop/internal/seed"
	"github.com/coppercraft/shop/internal/service"
	"github.com/coppercraft/shop/internal/token"
)

func main() {
	configuration, err := config.LoadConfig()
	if err != nil {
		log.Fatal(err)
	}

	logger := logging.New(configuration.LOG_LEVEL)

	db, err := config.InitDB(configuration)
	if err != nil {
		log.Fatalf("database init error: %v", err)
	}

	var producer *mykafka.Producer
	if configuration.KAFKA_ADDRESS != "" {
		brokers := []string{configuration.KAFKA_ADDRESS}
		topics := []string{"user_events", "order_events", "product_events"}
		producer, err = mykafka.NewProducer(brokers, topics)
		if err != nil {
			log.Fatalf("kafka init error: %v", err)
		}
	} else {
		logger.Warn("KAFKA_ADDRESS not set, domain events disabled")
	}

	signer := &token.Signer{Secret: []byte(configuration.JWT_SECRET)}

	users := &repo.UserRepo{DB: db}
	products := &repo.ProductRepo{DB: db}
	carts := &repo.CartRepo{DB: db}
	orders := &repo.OrderRepo{DB: db}

	authSvc := &service.AuthService{
		Users:    users,
		Signer:   signer,
		TokenTTL: configuration.AccessTokenTTL,
		Producer: producer,
	}

	e := echo.New()
	e.HideBanner = true
	e.Pre(middleware.RemoveTrailingSlash())
	e.Use(
		middleware.Recover(),
		middleware.RequestID(),
		middleware.CORSWithConfig(middleware.CORSConfig{
			AllowOrigins:     []string{configuration.CORS_ORIGIN},
			AllowCredentials: true,
		}),
		httpserver.RequestLogger(logger),
	)

	deps := httpserver.Deps{
		AuthSvc:        authSvc,
		AuthHandler:    &httpserver.AuthHTTP{Svc: authSvc},
		ProductHandler: &httpserver.ProductHTTP{Svc: &service.CatalogService{Products: products, Producer: producer}},
		CartHandler:    &httpserver.CartHTTP{Svc: &service.CartService{Carts: carts, Products: products}},
		OrderHandler:   &httpserver.OrderHTTP{Svc: &service.OrderService{Orders: orders, Producer: producer}},
		SeedHandler:    &httpserver.SeedHTTP{Seeder: &seed.Seeder{DB: db}},
	}
	httpserver.Register(e, &deps)

	srv := &http.Server{
		Addr:         configuration.HTTP_ADDR,
		Handler:      e,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server error", "error", err)
		}
	}()
	logger.Info("server started", "addr", configuration.HTTP_ADDR)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server shutdown error", "error", err)
	}

	if sqlDB, err := db.DB(); err == nil {
		if err := sqlDB.Close(); err != nil {
			logger.Error("db close error", "error", err)
		}
	}

	if err := producer.Close(); err != nil {
		logger.Error("kafka close error", "error", err)
	}

	logger.Info("shutdown complete")
}
