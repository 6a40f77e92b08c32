package handlers

import (
	"errors"
	"net/http"

	"github.com/damacus/iron-kit/internal/errs"
	"github.com/damacus/iron-kit/internal/services"
	"github.com/damacus/iron-kit/internal/utils"
	"github.com/labstack/echo/v4"
)

// GetCredentials retrieves the MinIO credentials from the context
func GetCredentials(c echo.Context) (*services.Credentials, error) {
	val := c.Get(utils.ContextKeyCreds)
	if val == nil {
		return nil, echo.NewHTTPError(http.StatusServiceUnavailable, "Object storage is not configured")
	}
	creds, ok := val.(*services.Credentials)
	if !ok {
		return nil, echo.NewHTTPError(http.StatusServiceUnavailable, "Object storage is not configured")
	}
	return creds, nil
}

// badRequest maps argument errors to 400 and leaves everything else to the
// default error handler.
func badRequest(err error) error {
	if errors.Is(err, errs.ErrInvalidArgument) || errors.Is(err, errs.ErrDivisionByZero) {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return err
}
