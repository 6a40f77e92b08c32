package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/damacus/iron-kit/internal/services"
	"github.com/damacus/iron-kit/internal/utils"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

var testCreds = &services.Credentials{
	Endpoint:  "localhost:9000",
	AccessKey: "admin",
	SecretKey: "password",
}

func newContext(target string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func withCreds(c echo.Context) echo.Context {
	c.Set(utils.ContextKeyCreds, testCreds)
	return c
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func requireHTTPError(t *testing.T, err error, code int) {
	t.Helper()
	require.Error(t, err)
	httpErr, ok := err.(*echo.HTTPError)
	require.True(t, ok, "expected *echo.HTTPError, got %T", err)
	require.Equal(t, code, httpErr.Code)
}
