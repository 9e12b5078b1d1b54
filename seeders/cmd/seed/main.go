package main

import (
	"context"
	"flag"
	"log"

	"navigation-api/internal/repositories"
	"navigation-api/pkg/config"
	"navigation-api/pkg/database/postgresql"
	applogger "navigation-api/pkg/logger"
	"navigation-api/seeders"

	"go.uber.org/zap"
)

func main() {
	migrateOnly := flag.Bool("migrate-only", false, "Только применить миграции, без наполнения данными")
	flag.Parse()

	cfg := config.New()
	baseLogger, err := applogger.NewLogger(cfg.Log.Level, cfg.Log.File)
	if err != nil {
		log.Fatalf("не удалось создать логгер: %v", err)
	}
	defer baseLogger.Sync()
	loggers := applogger.NewLoggers(baseLogger)
	logger := loggers.Seed

	logger.Info("======================================================")
	logger.Info("       🌱 СИСТЕМА СИДЕРОВ (Наполнение БД)           ")
	logger.Info("======================================================")

	ctx := context.Background()
	dbPool, err := postgresql.ConnectDB(ctx, cfg.Postgres.DSN, cfg.Postgres.MaxConns, logger)
	if err != nil {
		logger.Fatal("❌ Не удалось подключиться к БД", zap.Error(err))
	}
	defer dbPool.Close()

	if err := postgresql.Migrate(ctx, dbPool, logger); err != nil {
		logger.Fatal("❌ Ошибка применения миграций", zap.Error(err))
	}
	if *migrateOnly {
		logger.Info("✅ Миграции применены, наполнение пропущено (-migrate-only)")
		return
	}

	routeRepo := repositories.NewRouteRepository(dbPool, loggers.Route)
	userRepo := repositories.NewUserRepository(dbPool, loggers.User)
	if err := seeders.SeedRoutesAndUsers(ctx, dbPool, routeRepo, userRepo, logger); err != nil {
		logger.Fatal("❌ Ошибка наполнения БД", zap.Error(err))
	}

	logger.Info("✅ Все операции сидирования успешно завершены.")
}
