package api

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"

	"github.com/bnema/vackup/internal/boundaries/out"
	"github.com/bnema/vackup/pkg/logger"
)

// requestID tags every request with an X-Request-Id, generating a UUID
// when the client did not send one.
func requestID() echo.MiddlewareFunc {
	return middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	})
}

// requestContext attaches a request-scoped logger to the request context.
func requestContext(log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			ctx := logger.CtxWithFields(logger.WithCtx(req.Context(), log), map[string]any{
				logger.FieldLayer:   "adapter",
				logger.FieldAdapter: "http",
				"request_id":        c.Response().Header().Get(echo.HeaderXRequestID),
			})
			c.SetRequest(req.WithContext(ctx))
			return next(c)
		}
	}
}

// accessLog logs every request once it completes.
func accessLog(log zerolog.Logger) echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogURI:       true,
		LogStatus:    true,
		LogMethod:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogRemoteIP:  true,
		LogError:     true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			evt := log.Info()
			if v.Status >= http.StatusInternalServerError {
				evt = log.Error().Err(v.Error)
			}
			evt.
				Str("type", "http").
				Str("remote_ip", v.RemoteIP).
				Str(logger.FieldMethod, v.Method).
				Str("uri", v.URI).
				Int(logger.FieldStatus, v.Status).
				Dur(logger.FieldDuration, v.Latency).
				Str("request_id", v.RequestID).
				Msg("request")
			return nil
		},
	})
}

// rateLimit rejects clients exceeding limiter with 429.
func rateLimit(limiter out.RateLimiter) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !limiter.Allow(c.Request().Context(), "ip:"+c.RealIP()) {
				return c.JSON(http.StatusTooManyRequests, ErrorResponse{
					Error:     "rate limit exceeded",
					RequestID: c.Response().Header().Get(echo.HeaderXRequestID),
				})
			}
			return next(c)
		}
	}
}
