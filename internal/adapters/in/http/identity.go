package http

import (
	"log/slog"

	"orders/internal/core/domain/model/identity"

	"github.com/labstack/echo/v4"
)

// Trusted headers set by the gateway.
const (
	HeaderUserID    = "X-User-Id"
	HeaderUserRoles = "X-User-Roles"
)

const identityKey = "identity"

// IdentityMiddleware builds the caller's identity.Context from the gateway headers
// and stores it on the echo context. Requests are never rejected here.
func IdentityMiddleware(logger *slog.Logger) echo.MiddlewareFunc {
	logger = logger.With("component", "identity_middleware")

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()

			ic, err := identity.FromMetadata(req.Header.Get(HeaderUserID), req.Header.Get(HeaderUserRoles))
			if err != nil {
				logger.WarnContext(req.Context(), "Ignoring malformed roles header",
					"userId", ic.UserID(),
					"error", err,
				)
			}

			c.Set(identityKey, ic)
			return next(c)
		}
	}
}

// IdentityFrom returns the caller stored by IdentityMiddleware, anonymous if none.
func IdentityFrom(c echo.Context) identity.Context {
	if ic, ok := c.Get(identityKey).(identity.Context); ok {
		return ic
	}
	return identity.Anonymous()
}
