package http

import (
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
)

// registerLogging writes one structured line per request.
func registerLogging(e *echo.Echo, logger *zap.Logger) {
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogURI:       true,
		LogStatus:    true,
		LogMethod:    true,
		LogLatency:   true,
		LogError:     true,
		LogRemoteIP:  true,
		LogRequestID: true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			userID := "anonymous"
			if user, ok := CurrentUser(c); ok {
				userID = user.ID.String()
			}

			fields := []zap.Field{
				zap.String("method", v.Method),
				zap.String("uri", v.URI),
				zap.Int("status", v.Status),
				zap.Int64("latency_ms", v.Latency.Milliseconds()),
				zap.String("remote_ip", v.RemoteIP),
				zap.String("user_uuid", userID),
			}
			if v.RequestID != "" {
				fields = append(fields, zap.String("request_id", v.RequestID))
			}

			switch {
			case v.Error != nil:
				logger.Error("request", append(fields, zap.Error(v.Error))...)
			case v.Status >= 500:
				logger.Error("request", fields...)
			case v.Status >= 400:
				logger.Warn("request", fields...)
			default:
				logger.Info("request", fields...)
			}
			return nil
		},
	}))
}
