package routes

import (
	"navigation-api/internal/controllers"

	"github.com/labstack/echo/v4"
)

// /routes/best регистрируется статически, поэтому echo не путает его с параметром.
func runRouteRouter(e *echo.Echo, routeCtrl *controllers.RouteController) {
	e.GET("/routes", routeCtrl.GetAllRoutes)
	e.GET("/routes/best", routeCtrl.GetBestRoute)
}
