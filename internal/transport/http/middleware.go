package http

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"

	"github.com/njprem/fitcity-offers/internal/domain"
	"github.com/njprem/fitcity-offers/internal/util"
)

const (
	contextUserKey  = "auth.user"
	contextTokenKey = "auth.token"
)

// Authenticator resolves a bearer token into its user.
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (*domain.User, error)
}

func bearerToken(c echo.Context) (string, bool) {
	authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return "", false
	}
	token := strings.TrimSpace(parts[1])
	return token, token != ""
}

func RequireAuth(auth Authenticator) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if strings.TrimSpace(c.Request().Header.Get(echo.HeaderAuthorization)) == "" {
				return c.JSON(http.StatusUnauthorized, util.Error("missing authorization header"))
			}
			token, ok := bearerToken(c)
			if !ok {
				return c.JSON(http.StatusUnauthorized, util.Error("invalid authorization header"))
			}
			user, err := auth.Authenticate(c.Request().Context(), token)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, util.Error(err.Error()))
			}
			c.Set(contextUserKey, user)
			c.Set(contextTokenKey, token)
			return next(c)
		}
	}
}

// OptionalAuth attaches the user when a valid bearer token is sent and lets
// anonymous requests through untouched.
func OptionalAuth(auth Authenticator) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if token, ok := bearerToken(c); ok {
				if user, err := auth.Authenticate(c.Request().Context(), token); err == nil {
					c.Set(contextUserKey, user)
					c.Set(contextTokenKey, token)
				}
			}
			return next(c)
		}
	}
}

// RateLimitByIP throttles each client address to perSecond requests with a
// burst of twice that.
func RateLimitByIP(perSecond float64) echo.MiddlewareFunc {
	burst := int(perSecond * 2)
	if burst < 1 {
		burst = 1
	}
	store := middleware.NewRateLimiterMemoryStoreWithConfig(middleware.RateLimiterMemoryStoreConfig{
		Rate:      rate.Limit(perSecond),
		Burst:     burst,
		ExpiresIn: 3 * time.Minute,
	})
	return middleware.RateLimiterWithConfig(middleware.RateLimiterConfig{
		Store: store,
		IdentifierExtractor: func(c echo.Context) (string, error) {
			return c.RealIP(), nil
		},
		ErrorHandler: func(c echo.Context, err error) error {
			return c.JSON(http.StatusForbidden, util.Error("unable to identify client"))
		},
		DenyHandler: func(c echo.Context, identifier string, err error) error {
			return c.JSON(http.StatusTooManyRequests, util.Error("rate limit exceeded, try again later"))
		},
	})
}

func CurrentUser(c echo.Context) (*domain.User, bool) {
	user, ok := c.Get(contextUserKey).(*domain.User)
	return user, ok && user != nil
}
