package routes

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"

	"navigation-api/internal/controllers"
	"navigation-api/internal/repositories"
	"navigation-api/internal/services"
	"navigation-api/pkg/logger"
	"navigation-api/pkg/metrics"
	"navigation-api/pkg/swagger"
)

func InitRouter(e *echo.Echo, dbConn *pgxpool.Pool, loggers *logger.Loggers, metricsManager *metrics.Manager) {
	loggers.Main.Info("InitRouter: Начало создания маршрутов")

	// --- 1. РЕПОЗИТОРИИ ---
	routeRepo := repositories.NewRouteRepository(dbConn, loggers.Route)
	userRepo := repositories.NewUserRepository(dbConn, loggers.User)

	// --- 2. СЕРВИСЫ ---
	routeService := services.NewRouteService(routeRepo, userRepo, loggers.Route)
	userService := services.NewUserService(userRepo, loggers.User)

	// --- 3. КОНТРОЛЛЕРЫ ---
	routeController := controllers.NewRouteController(routeService, metricsManager, loggers.Route)
	userController := controllers.NewUserController(userService, loggers.User)

	// --- 4. РОУТЕРЫ ---
	runUserRouter(e, userController)
	runRouteRouter(e, routeController)
	runHealthRouter(e, dbConn, loggers.Main)

	e.GET("/metrics", echo.WrapHandler(metricsManager.Handler()))
	swagger.Register(e)

	loggers.Main.Info("INIT_ROUTER: Создание маршрутов завершено")
}
