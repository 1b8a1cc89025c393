package http

import (
	"log/slog"
	"net/http"

	"orders/api"
	_ "orders/docs"
	"orders/internal/generated/servers"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// Telemetry is the metrics surface the router needs.
type Telemetry interface {
	RequestObserver
	Handler() http.Handler
}

// NewRouter builds the echo instance serving the orders API, health, metrics and
// API documentation.
func NewRouter(si servers.ServerInterface, telemetry Telemetry, logger *slog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = NewHTTPErrorHandler(logger)

	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(requestLogger(logger))
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())
	e.Use(IdentityMiddleware(logger))
	e.Use(MetricsMiddleware(telemetry))

	servers.RegisterHandlers(e, si)

	e.GET("/metrics", echo.WrapHandler(telemetry.Handler()))
	e.GET("/openapi.json", func(c echo.Context) error {
		return c.Blob(http.StatusOK, echo.MIMEApplicationJSON, api.OpenAPI)
	})
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}

func requestLogger(logger *slog.Logger) echo.MiddlewareFunc {
	logger = logger.With("component", "http")

	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			level := slog.LevelInfo
			if v.Status >= http.StatusInternalServerError {
				level = slog.LevelError
			}

			logger.Log(c.Request().Context(), level, "Request served",
				"method", v.Method,
				"uri", v.URI,
				"status", v.Status,
				"latencyMs", v.Latency.Milliseconds(),
				"requestId", v.RequestID,
			)
			return nil
		},
	})
}
