// Файл: main.go

package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"navigation-api/internal/repositories"
	"navigation-api/internal/routes"
	"navigation-api/pkg/config"
	"navigation-api/pkg/database/postgresql"
	applogger "navigation-api/pkg/logger"
	"navigation-api/pkg/metrics"
	appmiddleware "navigation-api/pkg/middleware"
	"navigation-api/pkg/validation"
	"navigation-api/seeders"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
)

func main() {
	os.Exit(run())
}

// run возвращает код выхода. os.Exit вызывается только в main, чтобы
// отложенные Close и Sync успели отработать.
func run() int {
	// 1. Конфиг и логгер
	cfg := config.New()

	baseLogger, err := applogger.NewLogger(cfg.Log.Level, cfg.Log.File)
	if err != nil {
		log.Fatalf("не удалось создать логгер: %v", err)
	}
	defer baseLogger.Sync()
	loggers := applogger.NewLoggers(baseLogger)
	logger := loggers.Main

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 2. База: подключение, миграции, тестовые данные. Сервер стартует только после них.
	dbConn, err := postgresql.ConnectDB(ctx, cfg.Postgres.DSN, cfg.Postgres.MaxConns, logger)
	if err != nil {
		logger.Error("Не удалось подключиться к БД", zap.Error(err))
		return 1
	}
	defer dbConn.Close()

	if err := postgresql.Migrate(ctx, dbConn, logger); err != nil {
		logger.Error("Не удалось применить миграции", zap.Error(err))
		return 1
	}

	if cfg.Seed.OnStart {
		routeRepo := repositories.NewRouteRepository(dbConn, loggers.Route)
		userRepo := repositories.NewUserRepository(dbConn, loggers.User)
		if err := seeders.SeedRoutesAndUsers(ctx, dbConn, routeRepo, userRepo, loggers.Seed); err != nil {
			logger.Error("Не удалось наполнить БД", zap.Error(err))
			return 1
		}
	} else {
		logger.Info("Наполнение БД при старте отключено (SEED_ON_START=false)")
	}

	// 3. Echo и middleware
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	metricsManager := metrics.NewManager()

	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		DisableStackAll: true,
		StackSize:       1 << 10,
		LogErrorFunc: func(c echo.Context, err error, stack []byte) error {
			logger.Error("!!! ОБНАРУЖЕНА ПАНИКА (PANIC) !!!",
				zap.String("method", c.Request().Method),
				zap.String("uri", c.Request().RequestURI),
				zap.Error(err),
				zap.String("stack", string(stack)),
			)
			return err
		},
	}))
	e.Use(appmiddleware.RequestID())
	e.Use(appmiddleware.RequestLogger(loggers.HTTP))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{cfg.Server.CORSOrigin},
		AllowMethods: []string{http.MethodGet, http.MethodOptions},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept},
	}))
	e.Use(metricsManager.Middleware())

	e.Validator = validation.New()

	// 4. Роуты
	routes.InitRouter(e, dbConn, loggers, metricsManager)

	// 5. Сервер
	serverErr := make(chan error, 1)
	go func() {
		logger.Info("🚀 Сервер запущен", zap.String("address", cfg.Address()))
		if err := e.Start(cfg.Address()); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	exitCode := waitForStop(ctx, serverErr, logger)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("Ошибка при остановке сервера", zap.Error(err))
	}
	logger.Info("Сервер остановлен")
	return exitCode
}

// waitForStop ждёт сигнала остановки или ошибки сервера и возвращает код выхода.
func waitForStop(ctx context.Context, serverErr <-chan error, logger *zap.Logger) int {
	select {
	case <-ctx.Done():
		logger.Info("Получен сигнал остановки, завершаем работу")
		return 0
	case err := <-serverErr:
		logger.Error("Ошибка запуска сервера", zap.Error(err))
		return 1
	}
}
