package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"

	"wishcart/docs"
	"wishcart/internal/auth"
	"wishcart/internal/cache"
	"wishcart/internal/config"
	"wishcart/internal/db"
	"wishcart/internal/handler"
	"wishcart/internal/logger"
	"wishcart/internal/repository"
	"wishcart/internal/router"
	"wishcart/internal/service"
)

const shutdownTimeout = 10 * time.Second

// @title Wishcart API
// @version 1.0
// @description Account backend with registration, JWT login and a per-user wishlist over a product catalog.
// @host localhost:8080
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	if err := run(); err != nil {
		slog.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	log := logger.Setup(cfg.LogLevel)

	gormDB, err := db.Open(cfg.DBDriver, cfg.DatabaseDSN, log)
	if err != nil {
		return err
	}
	defer db.CloseWithLog(gormDB, log)
	log.Info("connected to database", "driver", cfg.DBDriver)

	if cfg.ResetDB {
		log.Warn("RESET_DB is set, dropping all tables")
		if err := db.Reset(gormDB); err != nil {
			return err
		}
	}
	if err := db.Migrate(gormDB); err != nil {
		return err
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	defer cacheClient.Close()
	pingCtx, cancelPing := context.WithTimeout(context.Background(), 2*time.Second)
	if err := cacheClient.Ping(pingCtx); err != nil {
		log.Warn("redis unavailable, product cache disabled until it recovers", "addr", cfg.RedisAddr, "error", err)
	}
	cancelPing()

	// Initialize repositories
	userRepo := repository.NewUserRepository(gormDB)
	productRepo := repository.NewProductRepository(gormDB)

	// Initialize auth components
	jwtService := auth.NewJWTService(cfg.JWTSecret, cfg.TokenTTL)

	// Initialize services
	catalogService := service.NewCatalogService(productRepo, cacheClient)
	authService := service.NewAuthService(userRepo, jwtService, log)
	wishlistService := service.NewWishlistService(userRepo, catalogService, log)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService)
	wishlistHandler := handler.NewWishlistHandler(wishlistService)
	productHandler := handler.NewProductHandler(catalogService)

	e := echo.New()
	e.HidePort = true
	router.Register(e, log, jwtService, authHandler, wishlistHandler, productHandler)

	swaggerURL := swaggerBaseURL(cfg.SwaggerHost, cfg.ServerPort) + "/swagger/index.html"
	if cfg.SwaggerHost != "" {
		docs.SwaggerInfo.Host = strings.TrimPrefix(strings.TrimPrefix(cfg.SwaggerHost, "https://"), "http://")
	}
	log.Info("swagger documentation available", "url", swaggerURL)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	serverErr := make(chan error, 1)
	go func() {
		addr := ":" + cfg.ServerPort
		log.Info("server listening", "addr", addr)
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case err := <-serverErr:
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return e.Shutdown(shutdownCtx)
}

// swaggerBaseURL accepts a host with or without scheme.
func swaggerBaseURL(host, port string) string {
	switch {
	case host == "":
		return "http://localhost:" + port
	case strings.HasPrefix(host, "http://"), strings.HasPrefix(host, "https://"):
		return strings.TrimSuffix(host, "/")
	default:
		return "http://" + host
	}
}
