package routes

import (
	"navigation-api/internal/controllers"

	"github.com/labstack/echo/v4"
)

func runUserRouter(e *echo.Echo, userCtrl *controllers.UserController) {
	e.GET("/users", userCtrl.GetAllUsers)
	e.GET("/users/:id", userCtrl.GetUserByID)
}
