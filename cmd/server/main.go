package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"

	"products_api/internal/app/router"
	"products_api/internal/config"
	authadapters "products_api/internal/feature/auth/adapters"
	authhandler "products_api/internal/feature/auth/transport/handler"
	authusecase "products_api/internal/feature/auth/usecase"
	productadapters "products_api/internal/feature/product/adapters"
	producthandler "products_api/internal/feature/product/transport/handler"
	productusecase "products_api/internal/feature/product/usecase"
	"products_api/internal/platform/clock"
	infradb "products_api/internal/platform/db"
	jwtmw "products_api/internal/platform/jwt"
	"products_api/internal/platform/metrics"
)

func main() {
	_ = godotenv.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.Load()
	if err != nil {
		logger.Error("load config", "error", err)
		os.Exit(1)
	}

	// db
	db, err := infradb.Open(cfg.DSN(), cfg.RunMigrations)
	if err != nil {
		logger.Error("open database", "error", err)
		os.Exit(1)
	}

	// Metrics
	createdCounter, deletedCounter := metrics.NewProductCounters(prometheus.DefaultRegisterer)

	// Repository
	userRepo := authadapters.NewUserGorm(db)
	productRepo := productadapters.NewProductGorm(db)

	// Usecase
	clk := clock.System()
	tokenGen := jwtmw.NewGenerator(cfg.JWTSecret, cfg.TokenTTL, clk)
	authUC := authusecase.NewAuthUsecase(userRepo, tokenGen)
	productUC := productusecase.NewProductUsecase(productRepo, clk, createdCounter, deletedCounter)

	// Handler
	authH := authhandler.NewAuthHandler(authUC)
	productH := producthandler.NewProductHandler(productUC)

	r := router.NewRouter(authH, productH, cfg.JWTSecret)

	server := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: r,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("products api started", "addr", cfg.HTTPAddr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	case err := <-errCh:
		logger.Error("http server failed", "error", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", "error", err)
		os.Exit(1)
	}
	logger.Info("products api stopped")
}
