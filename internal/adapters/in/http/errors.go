package http

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"orders/internal/core/application/usecases/commands"
	"orders/internal/generated/servers"
	"orders/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

const routeNotFoundMessage = "Route not found"

// NewHTTPErrorHandler renders every failure in the response envelope.
//
// Anonymous callers of an operation that needs an identity always get UNAUTHORIZED,
// even when their request is also malformed. Errors raised by echo itself are
// mapped to NOT_FOUND (unknown route or method) or VALIDATION_ERROR (binding).
func NewHTTPErrorHandler(logger *slog.Logger) echo.HTTPErrorHandler {
	logger = logger.With("component", "http_error_handler")

	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		ctx := c.Request().Context()
		cl := classify(err, c)

		switch cl.Kind {
		case errs.KindInternal:
			logger.ErrorContext(ctx, "Request failed", "path", c.Request().URL.Path, "error", err)
		case errs.KindUpstream:
			logger.WarnContext(ctx, "User existence check failed", "path", c.Request().URL.Path, "error", err)
		}

		var writeErr error
		if c.Request().Method == http.MethodHead {
			writeErr = c.NoContent(cl.HTTPStatus)
		} else {
			writeErr = c.JSON(cl.HTTPStatus, servers.ErrorResponse{
				Success: false,
				Error: servers.Error{
					Code:    cl.Code,
					Message: cl.Message,
				},
			})
		}
		if writeErr != nil {
			logger.ErrorContext(ctx, "Failed to write error response", "error", writeErr)
		}
	}
}

func classify(err error, c echo.Context) errs.Classification {
	if requiresIdentity(c) && !IdentityFrom(c).IsAuthenticated() {
		return errs.Classify(errs.NewUnauthorizedError(commands.ReasonUserIDNotFound))
	}

	var he *echo.HTTPError
	if errors.As(err, &he) {
		switch {
		case he.Code == http.StatusNotFound, he.Code == http.StatusMethodNotAllowed:
			return errs.Classification{
				Kind:       errs.KindNotFound,
				Code:       errs.CodeRouteNotFound,
				Message:    routeNotFoundMessage,
				HTTPStatus: http.StatusNotFound,
			}
		case he.Code >= http.StatusBadRequest && he.Code < http.StatusInternalServerError:
			return errs.Classification{
				Kind:       errs.KindValidation,
				Code:       errs.CodeValidation,
				Message:    fmt.Sprint(he.Message),
				HTTPStatus: errs.KindValidation.HTTPStatus(),
			}
		}
	}

	return errs.Classify(err)
}

// requiresIdentity reports whether the matched operation declares the caller headers
// as its security requirement.
func requiresIdentity(c echo.Context) bool {
	_, ok := c.Get(servers.UserIdScopes).([]string)
	return ok
}
