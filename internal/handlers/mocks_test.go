package handlers

import (
	"context"
	"io"

	"github.com/damacus/iron-kit/internal/services"
	"github.com/minio/madmin-go/v3"
	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/mock"
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
	if args.Get(0) == nil {
		return nil, args.Get(1).(minio.ObjectInfo), args.Error(2)
	}
	return args.Get(0).(io.ReadCloser), args.Get(1).(minio.ObjectInfo), args.Error(2)
}

// MockMinioFactory hands out the same mock for both client kinds
type MockMinioFactory struct {
	Client *MockMinioClient
	Err    error
}

func (f *MockMinioFactory) NewAdminClient(creds services.Credentials) (services.MinioAdminClient, error) {
	if f.Err != nil {
		return nil, f.Err
	}
	return f.Client, nil
}

func (f *MockMinioFactory) NewClient(creds services.Credentials) (services.MinioClient, error) {
	if f.Err != nil {
		return nil, f.Err
	}
	return f.Client, nil
}
