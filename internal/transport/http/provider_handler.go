package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/njprem/fitcity-offers/internal/catalog"
	"github.com/njprem/fitcity-offers/internal/domain"
	"github.com/njprem/fitcity-offers/internal/service"
	"github.com/njprem/fitcity-offers/internal/util"
)

type ProviderHandler struct {
	catalog *catalog.Catalog
	clicks  *service.ClickService
}

func RegisterProviders(e *echo.Echo, c *catalog.Catalog, clicks *service.ClickService, auth Authenticator, redirectRate float64) {
	handler := &ProviderHandler{catalog: c, clicks: clicks}

	group := e.Group("/api/v1/providers")
	group.GET("", handler.listProviders)
	group.GET("/intent/:intent", handler.providersForIntent)
	group.GET("/:provider_id/link", handler.buildLink)

	e.GET("/api/v1/go/:provider_id", handler.follow, RateLimitByIP(redirectRate), OptionalAuth(auth))
}

func (h *ProviderHandler) listProviders(c echo.Context) error {
	raw := strings.TrimSpace(c.QueryParam("category"))
	if raw == "" {
		return c.JSON(http.StatusOK, util.Items(h.catalog.All()))
	}

	category := domain.ProviderCategory(strings.ToLower(raw))
	if !category.Valid() {
		return c.JSON(http.StatusBadRequest, util.Error("unknown category"))
	}
	return c.JSON(http.StatusOK, util.Items(h.catalog.ByCategory(category)))
}

func (h *ProviderHandler) providersForIntent(c echo.Context) error {
	intent := c.Param("intent")
	categories := h.catalog.CategoriesForIntent(intent)
	if categories == nil {
		categories = []domain.ProviderCategory{}
	}

	body := util.Items(h.catalog.ForIntent(intent))
	body["intent"] = strings.ToLower(strings.TrimSpace(intent))
	body["categories"] = categories
	return c.JSON(http.StatusOK, body)
}

func (h *ProviderHandler) buildLink(c echo.Context) error {
	params, err := bindLinkParams(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("invalid link parameters"))
	}

	providerID := c.Param("provider_id")
	link, ok := h.catalog.BuildLink(providerID, params)
	if !ok {
		return c.JSON(http.StatusNotFound, util.Error("provider not found"))
	}
	return c.JSON(http.StatusOK, util.Envelope{
		"provider_id": providerID,
		"url":         link,
	})
}

func (h *ProviderHandler) follow(c echo.Context) error {
	params, err := bindLinkParams(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("invalid link parameters"))
	}

	var ownerID *uuid.UUID
	if user, ok := CurrentUser(c); ok {
		id := user.ID
		ownerID = &id
	}

	link, err := h.clicks.Follow(c.Request().Context(), c.Param("provider_id"), params, ownerID)
	if err != nil {
		if errors.Is(err, service.ErrProviderNotFound) {
			return c.JSON(http.StatusNotFound, util.Error("provider not found"))
		}
		return c.JSON(http.StatusInternalServerError, util.Error("unable to build link"))
	}
	return c.Redirect(http.StatusFound, link)
}

func bindLinkParams(c echo.Context) (domain.LinkParams, error) {
	var params domain.LinkParams
	if err := (&echo.DefaultBinder{}).BindQueryParams(c, &params); err != nil {
		return domain.LinkParams{}, err
	}
	return params, nil
}
