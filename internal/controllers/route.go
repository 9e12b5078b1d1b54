package controllers

import (
	"net/http"

	"navigation-api/internal/dto"
	"navigation-api/internal/entities"
	"navigation-api/internal/services"
	apperrors "navigation-api/pkg/errors"
	"navigation-api/pkg/metrics"
	"navigation-api/pkg/utils"

	"go.uber.org/zap"

	"github.com/labstack/echo/v4"
)

const (
	msgRouteServerError     = "Server error"
	msgBestRouteServerError = "Internal Server Error"
	msgBestRouteNotFound    = "User not found or best route not found"
	msgInvalidUserID        = "Invalid user ID"
)

// BestRouteRecorder считает исходы поиска лучшего маршрута.
type BestRouteRecorder interface {
	ObserveBestRoute(outcome string)
}

type RouteController struct {
	routeService services.RouteServiceInterface
	recorder     BestRouteRecorder
	logger       *zap.Logger
}

func NewRouteController(routeService services.RouteServiceInterface,
	recorder BestRouteRecorder,
	logger *zap.Logger,
) *RouteController {
	return &RouteController{
		routeService: routeService,
		recorder:     recorder,
		logger:       logger,
	}
}

func (c *RouteController) GetAllRoutes(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	routes, err := c.routeService.FindAllRoutes(reqCtx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, msgRouteServerError, c.logger)
	}

	if routes == nil {
		routes = make([]entities.Route, 0)
	}
	return utils.SuccessResponse(ctx, routes)
}

func (c *RouteController) GetBestRoute(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	var query dto.BestRouteQuery
	if err := ctx.Bind(&query); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusBadRequest, msgInvalidUserID, err), msgBestRouteServerError, c.logger)
	}
	if err := ctx.Validate(&query); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusBadRequest, msgInvalidUserID, err), msgBestRouteServerError, c.logger)
	}

	bestRoute, err := c.routeService.GetBestRoute(reqCtx, query.UserID)
	if err != nil {
		c.recorder.ObserveBestRoute(metrics.OutcomeError)
		return utils.ErrorResponse(ctx, err, msgBestRouteServerError, c.logger)
	}

	if bestRoute == nil {
		c.recorder.ObserveBestRoute(metrics.OutcomeNotFound)
		return utils.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusNotFound, msgBestRouteNotFound, nil), msgBestRouteServerError, c.logger)
	}

	c.recorder.ObserveBestRoute(metrics.OutcomeFound)
	return utils.SuccessResponse(ctx, bestRoute)
}
