package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/njprem/fitcity-offers/internal/domain"
	"github.com/njprem/fitcity-offers/internal/offers"
	"github.com/njprem/fitcity-offers/internal/repository/ports"
	"github.com/njprem/fitcity-offers/internal/service"
	"github.com/njprem/fitcity-offers/internal/util"
)

type FavoriteHandler struct {
	favorites ports.FavoriteRepository
	logger    *zap.Logger
}

type toggleFavoriteRequest struct {
	Offer      json.RawMessage    `json:"offer"`
	Mode       domain.DisplayMode `json:"mode"`
	PrimaryKey string             `json:"primary_key"`
}

func RegisterFavorites(e *echo.Echo, auth Authenticator, favorites ports.FavoriteRepository, logger *zap.Logger) {
	handler := &FavoriteHandler{favorites: favorites, logger: logger}

	protected := e.Group("/api/v1/users/me/favorites", RequireAuth(auth))
	protected.GET("", handler.listFavorites)
	protected.POST("/toggle", handler.toggleFavorite)
	protected.DELETE("/:primary_key", handler.removeFavorite)
}

// manager loads the caller's favorites. The bool is false when a response has
// already been written.
func (h *FavoriteHandler) manager(c echo.Context) (*service.FavoriteManager, bool, error) {
	user, _ := CurrentUser(c)
	m := service.NewFavoriteManager(h.favorites, service.OwnerOf(user), h.logger)
	if err := m.Refresh(c.Request().Context()); err != nil {
		return nil, false, favoriteError(c, err)
	}
	return m, true, nil
}

func (h *FavoriteHandler) listFavorites(c echo.Context) error {
	m, ok, err := h.manager(c)
	if !ok {
		return err
	}
	return c.JSON(http.StatusOK, util.Items(m.Items()))
}

func (h *FavoriteHandler) toggleFavorite(c echo.Context) error {
	var req toggleFavoriteRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("invalid request body"))
	}

	m, ok, err := h.manager(c)
	if !ok {
		return err
	}

	var target service.FavoriteTarget
	switch {
	case strings.TrimSpace(req.PrimaryKey) != "":
		id, err := uuid.Parse(strings.TrimSpace(req.PrimaryKey))
		if err != nil {
			return c.JSON(http.StatusBadRequest, util.Error("primary_key must be a valid UUID"))
		}
		record, found := savedRecord(m, id)
		if !found {
			return c.JSON(http.StatusNotFound, util.Error("offer is not in your favorites"))
		}
		target.Record = &record
	case len(req.Offer) > 0:
		if !req.Mode.Valid() {
			return c.JSON(http.StatusBadRequest, util.Error("mode must be one of demo, live, generated"))
		}
		raw, err := offers.ParseRawOffer(req.Offer)
		if err != nil {
			return c.JSON(http.StatusBadRequest, util.Error("offer must be a JSON object"))
		}
		offer := offers.Normalize(raw, req.Mode)
		target.Offer = &offer
	default:
		return c.JSON(http.StatusBadRequest, util.Error("offer or primary_key is required"))
	}

	outcome, err := m.Toggle(c.Request().Context(), target)
	if err != nil {
		return favoriteError(c, err)
	}

	message := "Offer saved to Favorites"
	if outcome == service.ToggleRemoved {
		message = "Offer removed from Favorites"
	}
	body := util.Items(m.Items())
	body["outcome"] = outcome
	body["message"] = message
	return c.JSON(http.StatusOK, body)
}

func (h *FavoriteHandler) removeFavorite(c echo.Context) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Param("primary_key")))
	if err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("primary_key must be a valid UUID"))
	}

	m, ok, err := h.manager(c)
	if !ok {
		return err
	}
	record, found := savedRecord(m, id)
	if !found {
		return c.JSON(http.StatusNotFound, util.Error("offer is not in your favorites"))
	}
	if _, err := m.Toggle(c.Request().Context(), service.FavoriteTarget{Record: &record}); err != nil {
		return favoriteError(c, err)
	}

	return c.JSON(http.StatusOK, util.Envelope{
		"primary_key": id,
		"message":     "Offer removed from Favorites",
	})
}

func savedRecord(m *service.FavoriteManager, id uuid.UUID) (domain.FavoriteRecord, bool) {
	for _, item := range m.Items() {
		if item.ID == id {
			return item, true
		}
	}
	return domain.FavoriteRecord{}, false
}

func favoriteError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, service.ErrUnauthenticatedWrite):
		return c.JSON(http.StatusUnauthorized, util.Error("sign in to save offers to your favorites"))
	case errors.Is(err, service.ErrMissingIdentity):
		return c.JSON(http.StatusUnprocessableEntity, util.Error("this offer cannot be identified and was not saved"))
	case errors.Is(err, service.ErrFavoritingDisabled):
		return c.JSON(http.StatusUnprocessableEntity, util.Error("demo offers cannot be saved"))
	case errors.Is(err, service.ErrPersistenceFailure):
		return c.JSON(http.StatusBadGateway, util.Error("could not update favorites, please try again"))
	default:
		return c.JSON(http.StatusInternalServerError, util.Error("could not update favorites"))
	}
}
