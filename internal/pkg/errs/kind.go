package errs

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// Kind is the closed set of failure categories surfaced to callers.
type Kind string

const (
	KindUnauthorized  Kind = "unauthorized"
	KindForbidden     Kind = "forbidden"
	KindNotFound      Kind = "not_found"
	KindValidation    Kind = "validation"
	KindInvalidStatus Kind = "invalid_status"
	KindUpstream      Kind = "upstream"
	KindInternal      Kind = "internal"
)

// Response error codes.
const (
	CodeUnauthorized  = "UNAUTHORIZED"
	CodeForbidden     = "FORBIDDEN"
	CodeOrderNotFound = "ORDER_NOT_FOUND"
	CodeUserNotFound  = "USER_NOT_FOUND"
	CodeValidation    = "VALIDATION_ERROR"
	CodeInvalidStatus = "INVALID_STATUS"
	CodeInternal      = "INTERNAL_ERROR"

	// CodeRouteNotFound is answered by transports for paths they do not serve.
	CodeRouteNotFound = "NOT_FOUND"
)

const internalMessage = "Internal server error"

// HTTPStatus returns the status code a transport should answer with for k.
func (k Kind) HTTPStatus() int {
	switch k {
	case KindUnauthorized:
		return http.StatusUnauthorized
	case KindForbidden:
		return http.StatusForbidden
	case KindNotFound, KindUpstream:
		return http.StatusNotFound
	case KindValidation, KindInvalidStatus:
		return http.StatusBadRequest
	case KindInternal:
		return http.StatusInternalServerError
	}
	return http.StatusInternalServerError
}

// Classification is the caller-facing view of an error.
type Classification struct {
	Kind       Kind
	Code       string
	Message    string
	HTTPStatus int
}

// Classify maps any error returned by the core to its Classification.
// Errors outside the taxonomy become KindInternal without leaking their text.
//
// Upstream failures are reported as USER_NOT_FOUND: the only upstream call is the
// user existence check, and callers cannot tell an unreachable identity service
// from an unknown user.
func Classify(err error) Classification {
	var (
		unauthorized *UnauthorizedError
		forbidden    *ForbiddenError
		notFound     *ObjectNotFoundError
		invalid      *InvalidStatusError
		upstream     *UpstreamError
	)

	switch {
	case err == nil:
		return classification(KindInternal, CodeInternal, internalMessage)
	case errors.As(err, &upstream):
		return classification(KindUpstream, CodeUserNotFound, "User not found")
	case errors.As(err, &unauthorized):
		return classification(KindUnauthorized, CodeUnauthorized, unauthorized.Reason)
	case errors.As(err, &forbidden):
		return classification(KindForbidden, CodeForbidden, forbidden.Reason)
	case errors.As(err, &notFound):
		return classification(KindNotFound, notFoundCode(notFound.ParamName), notFoundMessage(notFound.ParamName))
	case errors.As(err, &invalid):
		return classification(KindInvalidStatus, CodeInvalidStatus, invalid.Reason)
	case errors.Is(err, ErrValueIsInvalid),
		errors.Is(err, ErrValueIsRequired),
		errors.Is(err, ErrValueIsOutOfRange):
		return classification(KindValidation, CodeValidation, firstMessage(err))
	}
	return classification(KindInternal, CodeInternal, internalMessage)
}

func classification(kind Kind, code, message string) Classification {
	return Classification{
		Kind:       kind,
		Code:       code,
		Message:    message,
		HTTPStatus: kind.HTTPStatus(),
	}
}

func notFoundCode(paramName string) string {
	if paramName == "user" {
		return CodeUserNotFound
	}
	return CodeOrderNotFound
}

func notFoundMessage(paramName string) string {
	if paramName == "" {
		return "Not found"
	}
	return fmt.Sprintf("%s%s not found", strings.ToUpper(paramName[:1]), paramName[1:])
}

// firstMessage returns the first line of err's text; errors.Join separates
// joined errors with newlines.
func firstMessage(err error) string {
	msg, _, _ := strings.Cut(err.Error(), "\n")
	return msg
}
