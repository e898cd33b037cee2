// Command createadmin creates or resets the admin account and optionally
// seeds sample trainer and trainee users.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/Yasheenyash33/training-tracker-Dash/config"
	"github.com/Yasheenyash33/training-tracker-Dash/internal/repository"
	"github.com/Yasheenyash33/training-tracker-Dash/internal/service"
	"github.com/Yasheenyash33/training-tracker-Dash/pkg/database"
	apperrors "github.com/Yasheenyash33/training-tracker-Dash/pkg/errors"
	applogger "github.com/Yasheenyash33/training-tracker-Dash/pkg/logger"
)

func main() {
	var (
		configPath = flag.String("config", os.Getenv("TRAINING_CONFIG"), "config file path")
		username   = flag.String("username", "admin", "admin username")
		email      = flag.String("email", "admin@example.com", "admin email")
		password   = flag.String("password", "", "admin password (required)")
		samples    = flag.Bool("samples", false, "also create trainer1 and trainee1")
	)
	flag.Parse()

	if *password == "" {
		fmt.Fprintln(os.Stderr, "-password is required")
		flag.Usage()
		os.Exit(2)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}

	logger, err := applogger.NewLogger(&cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "init logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	db, err := database.NewDB(&cfg.Database, cfg.Log.Level, logger)
	if err != nil {
		logger.Fatal("database connection failed", zap.Error(err))
	}
	sqlDB, err := db.DB()
	if err != nil {
		logger.Fatal("get sql.DB failed", zap.Error(err))
	}
	defer sqlDB.Close()

	if err := database.RunMigrations(sqlDB, logger); err != nil {
		logger.Fatal("migration failed", zap.Error(err))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	repo := repository.NewRepository(db)
	created, err := service.EnsureAdmin(ctx, repo, service.AdminAccount{
		Username: *username,
		Email:    *email,
		Password: *password,
	})
	if fe, ok := apperrors.AsFieldError(err); ok {
		fmt.Fprintln(os.Stderr, fe.Message)
		os.Exit(1)
	}
	if err != nil {
		logger.Fatal("create admin failed", zap.Error(err))
	}
	if created {
		logger.Info("admin created", zap.String("username", *username))
	} else {
		logger.Info("admin exists, password reset", zap.String("username", *username))
	}

	if *samples {
		names, err := service.EnsureSampleUsers(ctx, repo)
		if err != nil {
			logger.Fatal("create sample users failed", zap.Error(err))
		}
		logger.Info("sample users", zap.Strings("created", names))
	}
}
