package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/Yasheenyash33/training-tracker-Dash/config"
	"github.com/Yasheenyash33/training-tracker-Dash/internal/api/handler"
	"github.com/Yasheenyash33/training-tracker-Dash/internal/api/router"
	"github.com/Yasheenyash33/training-tracker-Dash/internal/audit"
	"github.com/Yasheenyash33/training-tracker-Dash/internal/repository"
	"github.com/Yasheenyash33/training-tracker-Dash/internal/service"
	"github.com/Yasheenyash33/training-tracker-Dash/pkg/database"
	"github.com/Yasheenyash33/training-tracker-Dash/pkg/jwt"
	applogger "github.com/Yasheenyash33/training-tracker-Dash/pkg/logger"
	"github.com/Yasheenyash33/training-tracker-Dash/pkg/mailer"
	"github.com/Yasheenyash33/training-tracker-Dash/pkg/redis"
)

func main() {
	// 1. config
	cfg, err := config.Load(os.Getenv("TRAINING_CONFIG"))
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
		zap.String("log_level", cfg.Log.Level),
	)

	// 3. database
	db, err := database.NewDB(&cfg.Database, cfg.Log.Level, logger)
	if err != nil {
		logger.Fatal("database connection failed", zap.Error(err))
	}

	sqlDB, err := db.DB()
	if err != nil {
		logger.Fatal("get sql.DB failed", zap.Error(err))
	}
	if err := database.RunMigrations(sqlDB, logger); err != nil {
		logger.Fatal("migration failed", zap.Error(err))
	}

	// 4. redis is optional; without it nothing is revoked and nothing is throttled
	rdb, err := redis.NewClient(&cfg.Redis, logger)
	if err != nil {
		logger.Warn("redis unavailable, token revocation and rate limiting disabled", zap.Error(err))
		rdb = nil
	}

	// 5. wiring: repository → service → handler
	jwtMgr := jwt.NewManager(&cfg.Auth)
	repo := repository.NewRepository(db)
	svc := service.NewService(service.Deps{
		Config:    cfg,
		Repo:      repo,
		JWT:       jwtMgr,
		Blacklist: rdb,
		Mailer:    mailer.New(&cfg.Mail, logger),
		Audit:     audit.NewRecorder(repo.AuditLog, logger),
		Logger:    logger,
	})
	h := handler.NewHandler(svc)

	engine := router.Setup(cfg, h, jwtMgr, rdb, repo.User, logger)

	// 6. HTTP server with graceful shutdown
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      engine,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("http server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
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

	if err := sqlDB.Close(); err != nil {
		logger.Warn("close database failed", zap.Error(err))
	}
	if err := rdb.Close(); err != nil {
		logger.Warn("close redis failed", zap.Error(err))
	}

	logger.Info("server stopped")
}
