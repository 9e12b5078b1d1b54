package controllers

import (
	"net/http"

	"navigation-api/internal/dto"
	"navigation-api/internal/entities"
	"navigation-api/internal/services"
	apperrors "navigation-api/pkg/errors"
	"navigation-api/pkg/utils"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

const (
	msgUserServerError = "Internal Server Error"
	msgUserNotFound    = "User not found"
)

type UserController struct {
	userService services.UserServiceInterface
	logger      *zap.Logger
}

func NewUserController(userService services.UserServiceInterface, logger *zap.Logger) *UserController {
	return &UserController{
		userService: userService,
		logger:      logger,
	}
}

func (c *UserController) GetAllUsers(ctx echo.Context) error {
	users, err := c.userService.GetAllUsers(ctx.Request().Context())
	if err != nil {
		return utils.ErrorResponse(ctx, err, msgUserServerError, c.logger)
	}

	if users == nil {
		users = make([]entities.User, 0)
	}
	return utils.SuccessResponse(ctx, users)
}

func (c *UserController) GetUserByID(ctx echo.Context) error {
	var param dto.UserIDParam
	if err := ctx.Bind(&param); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusBadRequest, msgInvalidUserID, err), msgUserServerError, c.logger)
	}
	if err := ctx.Validate(&param); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusBadRequest, msgInvalidUserID, err), msgUserServerError, c.logger)
	}

	user, err := c.userService.GetUserByID(ctx.Request().Context(), param.ID)
	if err != nil {
		return utils.ErrorResponse(ctx, err, msgUserServerError, c.logger)
	}
	if user == nil {
		return utils.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusNotFound, msgUserNotFound, nil), msgUserServerError, c.logger)
	}

	return utils.SuccessResponse(ctx, user)
}
