package main

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/damacus/iron-kit/internal/config"
	"github.com/damacus/iron-kit/internal/services"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	"github.com/minio/madmin-go/v3"
	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockMinioClient implements both MinioClient and MinioAdminClient interfaces for testing
type MockMinioClient struct {
	mock.Mock
}

func (m *MockMinioClient) ServerInfo(ctx context.Context, opts ...func(*madmin.ServerInfoOpts)) (madmin.InfoMessage, error) {
	args := m.Called(ctx)
	return args.Get(0).(madmin.InfoMessage), args.Error(1)
}

func (m *MockMinioClient) ListObjectsPaginated(ctx context.Context, bucketName string, opts services.ListObjectsOptions) (services.ListObjectsResult, error) {
	args := m.Called(ctx, bucketName, opts)
	return args.Get(0).(services.ListObjectsResult), args.Error(1)
}

func (m *MockMinioClient) GetObjectReader(ctx context.Context, bucketName, objectName string) (io.ReadCloser, minio.ObjectInfo, error) {
	args := m.Called(ctx, bucketName, objectName)
	return args.Get(0).(io.ReadCloser), args.Get(1).(minio.ObjectInfo), args.Error(2)
}

// MockMinioFactory records the credentials the server passes on
type MockMinioFactory struct {
	mock.Mock
}

func (m *MockMinioFactory) NewAdminClient(creds services.Credentials) (services.MinioAdminClient, error) {
	args := m.Called(creds)
	return args.Get(0).(services.MinioAdminClient), args.Error(1)
}

func (m *MockMinioFactory) NewClient(creds services.Credentials) (services.MinioClient, error) {
	args := m.Called(creds)
	return args.Get(0).(services.MinioClient), args.Error(1)
}

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg := config.Default()
	cfg.Files.Root = t.TempDir()
	cfg.Logging.Level = "off"
	return cfg
}

func serve(e *echo.Echo, target string, header ...string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	for i := 0; i+1 < len(header); i += 2 {
		req.Header.Set(header[i], header[i+1])
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestServerAddsSecurityHeadersOnHealth(t *testing.T) {
	e := newServer(testConfig(t), new(MockMinioFactory))

	rec := serve(e, "/health")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "DENY", rec.Header().Get("X-Frame-Options"))
	assert.NotEmpty(t, rec.Header().Get("Content-Security-Policy"))
	assert.Len(t, rec.Header().Get(echo.HeaderXRequestID), 36)
}

func TestServerRequiresToken(t *testing.T) {
	cfg := testConfig(t)
	cfg.Server.Token = "s3cret"
	e := newServer(cfg, new(MockMinioFactory))

	assert.Equal(t, http.StatusOK, serve(e, "/health").Code)
	assert.Equal(t, http.StatusBadRequest, serve(e, "/dates/season").Code)
	assert.Equal(t, http.StatusUnauthorized, serve(e, "/dates/season", "Authorization", "Bearer wrong").Code)
	assert.Equal(t, http.StatusOK, serve(e, "/dates/season", "Authorization", "Bearer s3cret").Code)
}

func TestCalculateJourney(t *testing.T) {
	e := newServer(testConfig(t), new(MockMinioFactory))

	rec := serve(e, "/calc/add?b=0.2&a=0.1")
	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "0.3", body["result"])
	assert.Equal(t, "http://example.com/calc/add?a=0.1&b=0.2", body["url"])

	assert.Equal(t, http.StatusBadRequest, serve(e, "/calc/div?a=1&b=0").Code)
}

func TestFilesJourney(t *testing.T) {
	cfg := testConfig(t)
	require.NoError(t, os.WriteFile(filepath.Join(cfg.Files.Root, "report.csv"), []byte("a,b\n"), 0o644))
	e := newServer(cfg, new(MockMinioFactory))

	info := serve(e, "/files/info?name=report.csv")
	require.Equal(t, http.StatusOK, info.Code)
	assert.Contains(t, info.Body.String(), `"extension":".csv"`)

	download := serve(e, "/files/download?name=report.csv")
	require.Equal(t, http.StatusOK, download.Code)
	assert.Equal(t, "a,b\n", download.Body.String())
	assert.Equal(t, "attachment; filename=report.csv", download.Header().Get("Content-Disposition"))

	assert.Equal(t, http.StatusBadRequest, serve(e, "/files/download?name=../report.csv").Code)
}

func TestObjectsUnavailableWithoutMinio(t *testing.T) {
	e := newServer(testConfig(t), new(MockMinioFactory))

	assert.Equal(t, http.StatusServiceUnavailable, serve(e, "/objects/photos").Code)
}

func TestObjectsJourney(t *testing.T) {
	cfg := testConfig(t)
	cfg.Minio.Endpoint = "play.min.io:9000"
	cfg.Minio.AccessKey = "admin"
	cfg.Minio.SecretKey = "password"

	creds := services.Credentials{Endpoint: "play.min.io:9000", AccessKey: "admin", SecretKey: "password"}
	mockFactory := new(MockMinioFactory)
	mockClient := new(MockMinioClient)
	mockFactory.On("NewClient", creds).Return(mockClient, nil)
	mockClient.On("ListObjectsPaginated", mock.Anything, "photos", mock.Anything).Return(services.ListObjectsResult{
		Objects: []minio.ObjectInfo{{Key: "cat.png", Size: 1536}},
	}, nil)

	e := newServer(cfg, mockFactory)

	rec := serve(e, "/objects/photos")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"formattedSize":"1.5 KiB"`)

	mockFactory.AssertExpectations(t)
	mockClient.AssertExpectations(t)
}

func TestLogLevel(t *testing.T) {
	assert.Equal(t, log.DEBUG, logLevel("DEBUG"))
	assert.Equal(t, log.WARN, logLevel("warn"))
	assert.Equal(t, log.ERROR, logLevel("error"))
	assert.Equal(t, log.OFF, logLevel("off"))
	assert.Equal(t, log.INFO, logLevel("info"))
}
