package api

import (
	"errors"

	"PanganPulse/internal/artifact"
	"PanganPulse/internal/domain/models"
	"PanganPulse/internal/forecast"
	"PanganPulse/internal/usecase"
	xhttp "PanganPulse/pkg/http"
	xlogger "PanganPulse/pkg/logger"

	"github.com/labstack/echo/v4"
)

// PricesEchoHandler exposes the price, forecast and advisory endpoints.
type PricesEchoHandler struct {
	logger *xlogger.Logger
	svc    *usecase.ForecastService
}

func NewPricesEchoHandler(logger *xlogger.Logger, svc *usecase.ForecastService) *PricesEchoHandler {
	return &PricesEchoHandler{logger: logger, svc: svc}
}

func (h *PricesEchoHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/api")
	g.GET("/markets", h.Markets)
	g.GET("/commodities", h.Commodities)
	g.GET("/prices", h.Prices)
	g.GET("/forecast", h.Forecast)
	g.GET("/advisory", h.Advisory)
	g.GET("/badge", h.Badge)
}

func (h *PricesEchoHandler) Markets(c echo.Context) error {
	res, err := h.svc.Markets(c.Request().Context())
	if err != nil {
		h.logger.Error("markets usecase error", xlogger.Error(err))
		return xhttp.AppErrorResponse(c, err)
	}
	return xhttp.ListResponse(c, res, int64(len(res)))
}

func (h *PricesEchoHandler) Commodities(c echo.Context) error {
	req := &models.CommoditiesRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	res, err := h.svc.Commodities(c.Request().Context(), req.Market)
	if err != nil {
		h.logger.Error("commodities usecase error", xlogger.Error(err))
		return xhttp.AppErrorResponse(c, err)
	}
	return xhttp.ListResponse(c, res, int64(len(res)))
}

func (h *PricesEchoHandler) Prices(c echo.Context) error {
	req := &models.PricesRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	res, err := h.svc.Prices(c.Request().Context(), req.Market, req.Commodity, req.Limit)
	if err != nil {
		h.logger.Error("prices usecase error", xlogger.Error(err))
		return xhttp.AppErrorResponse(c, err)
	}
	return xhttp.ListResponse(c, res, int64(len(res)))
}

func (h *PricesEchoHandler) Forecast(c echo.Context) error {
	req := &models.ForecastRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	res, err := h.svc.Forecast(c.Request().Context(), req.Market, req.Commodity, req.Days)
	if err != nil {
		return h.forecastError(c, err)
	}
	return xhttp.SuccessResponse(c, res)
}

func (h *PricesEchoHandler) Advisory(c echo.Context) error {
	req := &models.AdvisoryRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	res, err := h.svc.Advisory(c.Request().Context(), req.Market, req.Commodity, req.Days, req.Horizon)
	if err != nil {
		return h.forecastError(c, err)
	}
	return xhttp.SuccessResponse(c, res)
}

func (h *PricesEchoHandler) Badge(c echo.Context) error {
	req := &models.BadgeRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	res, err := h.svc.Badge(c.Request().Context(), req.Market, req.Commodity, req.Days)
	if err != nil {
		return h.forecastError(c, err)
	}
	return xhttp.SuccessResponse(c, res)
}

// forecastError maps pipeline sentinels to API errors.
func (h *PricesEchoHandler) forecastError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, artifact.ErrArtifactNotFound):
		return xhttp.AppErrorResponse(c, xhttp.NotFoundError("no trained model for this market and commodity").WithError(err))
	case errors.Is(err, forecast.ErrInsufficientHistory):
		return xhttp.AppErrorResponse(c, xhttp.UnprocessableError("not enough price history to forecast").WithError(err))
	default:
		h.logger.Error("forecast usecase error", xlogger.Error(err))
		return xhttp.AppErrorResponse(c, err)
	}
}
