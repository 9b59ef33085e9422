package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/AlexandreJustinRepia/dtr-denr/config"
	"github.com/AlexandreJustinRepia/dtr-denr/internal/api/handler"
	"github.com/AlexandreJustinRepia/dtr-denr/internal/api/router"
	"github.com/AlexandreJustinRepia/dtr-denr/internal/repository"
	"github.com/AlexandreJustinRepia/dtr-denr/internal/service"
	"github.com/AlexandreJustinRepia/dtr-denr/pkg/database"
	"github.com/AlexandreJustinRepia/dtr-denr/pkg/jwt"
	applogger "github.com/AlexandreJustinRepia/dtr-denr/pkg/logger"
	"github.com/AlexandreJustinRepia/dtr-denr/pkg/redis"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// 2. Initialize logging
	logger, err := applogger.NewLogger(&cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("starting application",
		zap.Int("port", cfg.Server.Port),
		zap.String("log_level", cfg.Log.Level),
	)

	// 3. Connect to the database
	db, err := database.NewDB(&cfg.Database, logger)
	if err != nil {
		logger.Fatal("database connection failed", zap.Error(err))
	}

	// 3.1 Run database migrations
	sqlDB, err := db.DB()
	if err != nil {
		logger.Fatal("failed to obtain underlying sql.DB", zap.Error(err))
	}
	if err := database.RunMigrations(sqlDB, logger); err != nil {
		logger.Fatal("database migration failed", zap.Error(err))
	}

	// 4. Connect to Redis (optional: degrade without it, do not abort startup)
	var rdb *redis.Client
	rdb, err = redis.NewClient(&cfg.Redis, logger)
	if err != nil {
		logger.Warn("redis connection failed, token revocation disabled", zap.Error(err))
		rdb = nil
	}

	// 5. Initialize the JWT manager
	jwtMgr := jwt.NewManager(&cfg.Auth)

	// 6. Dependency injection: Repository → Service → Handler
	repo := repository.NewRepository(db)
	svc := service.NewService(cfg, repo, jwtMgr, rdb, logger)
	h := handler.NewHandler(svc)

	// 7. Build the router
	engine := router.Setup(cfg, h, jwtMgr, rdb, logger)

	// 8. Start the HTTP server with graceful shutdown
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      engine,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("HTTP server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("HTTP server error", zap.Error(err))
		}
	}()

	// 9. Wait for a termination signal, then shut down gracefully
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	logger.Info("shutdown signal received", zap.String("signal", sig.String()))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server shutdown error", zap.Error(err))
	}

	if closeDB, _ := db.DB(); closeDB != nil {
		closeDB.Close()
	}

	if rdb != nil {
		rdb.Close()
	}

	logger.Info("application stopped")
}
