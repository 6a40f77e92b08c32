package middleware

import (
	"crypto/subtle"

	"github.com/damacus/iron-kit/internal/services"
	"github.com/damacus/iron-kit/internal/utils"
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
)

// TokenAuth requires "Authorization: Bearer <token>" on every route except
// utils.PublicPaths. An empty token disables the check.
func TokenAuth(token string) echo.MiddlewareFunc {
	return echoMiddleware.KeyAuthWithConfig(echoMiddleware.KeyAuthConfig{
		Skipper: func(c echo.Context) bool {
			return token == "" || utils.PublicPaths[c.Request().URL.Path]
		},
		Validator: func(key string, c echo.Context) (bool, error) {
			return subtle.ConstantTimeCompare([]byte(key), []byte(token)) == 1, nil
		},
	})
}

// WithCredentials stores the MinIO credentials in the context for handlers to use
func WithCredentials(creds services.Credentials) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Set(utils.ContextKeyCreds, &creds)
			return next(c)
		}
	}
}
