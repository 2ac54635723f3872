package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/KKK-90/POSTRKR-App/config"
	"github.com/KKK-90/POSTRKR-App/internal/api/handler"
	"github.com/KKK-90/POSTRKR-App/internal/api/middleware"
	"github.com/KKK-90/POSTRKR-App/internal/api/router"
	"github.com/KKK-90/POSTRKR-App/internal/repository"
	"github.com/KKK-90/POSTRKR-App/internal/service"
	"github.com/KKK-90/POSTRKR-App/pkg/database"
	"github.com/KKK-90/POSTRKR-App/pkg/jwt"
	applogger "github.com/KKK-90/POSTRKR-App/pkg/logger"
	"github.com/KKK-90/POSTRKR-App/pkg/memstore"
	"github.com/KKK-90/POSTRKR-App/pkg/redis"
)

// sessionStore is what the rate limiter and session revocation need from
// redis or its in-process stand-in.
type sessionStore interface {
	middleware.Limiter
	service.TokenStore
}

func main() {
	configPath := flag.String("config", "", "path to config file")
	flag.Parse()

	// 1. config
	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}

	// 2. logger
	logger, err := applogger.NewLogger(&cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "init logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("starting",
		zap.Int("port", cfg.Server.Port),
		zap.String("db_driver", cfg.Database.Driver),
		zap.String("log_level", cfg.Log.Level),
	)

	// 3. database
	db, err := database.NewDB(&cfg.Database, cfg.Log.Level, logger)
	if err != nil {
		logger.Fatal("connect database failed", zap.Error(err))
	}
	if err := database.RunMigrations(db, logger); err != nil {
		logger.Fatal("migrate database failed", zap.Error(err))
	}

	// 4. redis is optional; fall back to the in-process store
	var (
		store sessionStore
		rdb   *redis.Client
	)
	if cfg.Redis.Addr != "" {
		rdb, err = redis.NewClient(&cfg.Redis, logger)
		if err != nil {
			logger.Warn("redis unavailable, using in-process store", zap.Error(err))
			rdb = nil
		}
	}
	if rdb != nil {
		store = rdb
	} else {
		store = memstore.New(5 * time.Minute)
	}

	// 5. session tokens
	jwtMgr := jwt.NewManager(&cfg.Auth)

	// 6. Repository → Service → Handler
	repo := repository.NewRepository(db)
	svc := service.NewService(cfg, repo, jwtMgr, store, logger)
	h := handler.NewHandler(svc, cfg)

	// 7. routes
	engine := router.Setup(cfg, h, svc.Auth, store, logger)

	// 8. HTTP server with graceful shutdown
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      engine,
		ReadTimeout:  60 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		logger.Info("http server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("http server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	logger.Info("shutting down", zap.String("signal", sig.String()))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server shutdown failed", zap.Error(err))
	}

	if sqlDB, err := db.DB(); err == nil {
		sqlDB.Close()
	}
	if rdb != nil {
		rdb.Close()
	}

	logger.Info("server stopped")
}
