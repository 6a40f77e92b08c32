package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/damacus/iron-kit/internal/services"
	"github.com/damacus/iron-kit/internal/utils"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func newTokenServer(token string) *echo.Echo {
	e := echo.New()
	e.Use(TokenAuth(token))
	ok := func(c echo.Context) error { return c.String(http.StatusOK, "OK") }
	e.GET("/health", ok)
	e.GET("/calc/add", ok)
	return e
}

func TestTokenAuth_SkipsPublicRoutes(t *testing.T) {
	e := newTokenServer("s3cret")

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestTokenAuth_RejectsMissingToken(t *testing.T) {
	e := newTokenServer("s3cret")

	req := httptest.NewRequest(http.MethodGet, "/calc/add", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestTokenAuth_RejectsWrongToken(t *testing.T) {
	e := newTokenServer("s3cret")

	req := httptest.NewRequest(http.MethodGet, "/calc/add", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer wrong")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestTokenAuth_AcceptsToken(t *testing.T) {
	e := newTokenServer("s3cret")

	req := httptest.NewRequest(http.MethodGet, "/calc/add", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer s3cret")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestTokenAuth_DisabledWithoutToken(t *testing.T) {
	e := newTokenServer("")

	req := httptest.NewRequest(http.MethodGet, "/calc/add", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestWithCredentials(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	creds := services.Credentials{Endpoint: "localhost:9000", AccessKey: "admin", SecretKey: "password"}
	handler := WithCredentials(creds)(func(c echo.Context) error {
		got, ok := c.Get(utils.ContextKeyCreds).(*services.Credentials)
		assert.True(t, ok)
		assert.Equal(t, "admin", got.AccessKey)
		return nil
	})

	assert.NoError(t, handler(c))
}
