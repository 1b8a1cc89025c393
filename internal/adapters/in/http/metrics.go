package http

import (
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
)

// RequestObserver records one served request.
type RequestObserver interface {
	ObserveRequest(method, route, status string, latencyMS float64)
}

// MetricsMiddleware counts requests by route template and final status.
func MetricsMiddleware(observer RequestObserver) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			err := next(c)
			if err != nil {
				c.Error(err)
			}

			route := c.Path()
			if route == "" {
				route = "unmatched"
			}
			observer.ObserveRequest(
				c.Request().Method,
				route,
				strconv.Itoa(c.Response().Status),
				float64(time.Since(start).Microseconds())/1000,
			)

			return err
		}
	}
}
