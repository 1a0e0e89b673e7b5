package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/njprem/fitcity-offers/internal/domain"
	"github.com/njprem/fitcity-offers/internal/offers"
	"github.com/njprem/fitcity-offers/internal/service"
	"github.com/njprem/fitcity-offers/internal/util"
)

type OfferHandler struct {
	feeds *service.OfferFeedService
}

type normalizeRequest struct {
	Mode    domain.DisplayMode `json:"mode"`
	Payload json.RawMessage    `json:"payload"`
}

func RegisterOffers(e *echo.Echo, feeds *service.OfferFeedService) {
	handler := &OfferHandler{feeds: feeds}

	group := e.Group("/api/v1/offers")
	group.POST("/normalize", handler.normalize)
	group.GET("/demo", handler.demo)
}

func (h *OfferHandler) normalize(c echo.Context) error {
	var req normalizeRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("invalid request body"))
	}
	if len(req.Payload) == 0 {
		return c.JSON(http.StatusBadRequest, util.Error("payload is required"))
	}

	items, err := h.feeds.Normalize(req.Mode, req.Payload)
	if err != nil {
		switch {
		case errors.Is(err, offers.ErrUnknownMode):
			return c.JSON(http.StatusBadRequest, util.Error("mode must be one of demo, live, generated"))
		case errors.Is(err, offers.ErrInvalidFeed):
			return c.JSON(http.StatusBadRequest, util.Error("payload is not valid JSON"))
		default:
			return c.JSON(http.StatusInternalServerError, util.Error("unable to normalize offers"))
		}
	}

	body := util.Items(items)
	body["mode"] = req.Mode
	return c.JSON(http.StatusOK, body)
}

func (h *OfferHandler) demo(c echo.Context) error {
	items, err := h.feeds.Demo(c.Request().Context())
	if err != nil {
		if errors.Is(err, service.ErrFeedUnavailable) {
			return c.JSON(http.StatusServiceUnavailable, util.Error("demo offers unavailable"))
		}
		return c.JSON(http.StatusBadGateway, util.Error("demo offers could not be read"))
	}

	body := util.Items(items)
	body["mode"] = domain.ModeDemo
	return c.JSON(http.StatusOK, body)
}
