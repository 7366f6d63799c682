package handlers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"

	apperrors "leadassign/internal/errors"
	"leadassign/internal/validation"
)

// NewHTTPErrorHandler maps the domain failure taxonomy onto HTTP statuses
// in a single place. Unclassified failures surface as an opaque 500 - the
// cause is logged, never leaked to the caller.
func NewHTTPErrorHandler(e *echo.Echo) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		var (
			httpErr        *echo.HTTPError
			payloadErr     *validation.PayloadError
			unsupportedErr *apperrors.UnsupportedFormatError
			parseErr       *apperrors.ParseError
			notFoundErr    *apperrors.NotFoundError
			duplicateErr   *apperrors.DuplicateEmailError
		)

		switch {
		case errors.As(err, &httpErr):
			// already shaped by echo or its middleware
		case errors.As(err, &payloadErr):
			err = echo.NewHTTPError(http.StatusBadRequest, payloadErr)
		case errors.As(err, &unsupportedErr), errors.As(err, &parseErr):
			err = echo.NewHTTPError(http.StatusBadRequest, err.Error())
		case errors.Is(err, apperrors.ErrNoValidRecords),
			errors.Is(err, apperrors.ErrNoActiveAgents),
			errors.Is(err, apperrors.ErrAgentLimit):
			err = echo.NewHTTPError(http.StatusBadRequest, err.Error())
		case errors.Is(err, apperrors.ErrPayloadTooLarge):
			err = echo.NewHTTPError(http.StatusRequestEntityTooLarge, err.Error())
		case errors.Is(err, apperrors.ErrInvalidCredentials):
			err = echo.NewHTTPError(http.StatusUnauthorized, err.Error())
		case errors.As(err, &notFoundErr):
			err = echo.NewHTTPError(http.StatusNotFound, err.Error())
		case errors.As(err, &duplicateErr):
			err = echo.NewHTTPError(http.StatusConflict, err.Error())
		case errors.Is(err, apperrors.ErrStorageTimeout):
			err = echo.NewHTTPError(http.StatusGatewayTimeout, err.Error())
		default:
			logrus.Errorf("unexpected error on %s %s - %v", c.Request().Method, c.Request().URL.Path, err)
			err = echo.NewHTTPError(http.StatusInternalServerError, "internal server error")
		}

		e.DefaultHTTPErrorHandler(err, c)
	}
}
