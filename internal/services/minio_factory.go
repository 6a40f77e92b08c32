// Package services wraps the MinIO object and admin clients behind small
// interfaces so handlers can be tested without a server.
package services

import (
	"context"
	"io"
	"strings"

	"github.com/minio/madmin-go/v3"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// DefaultPageSize is the default number of objects to return per page
const DefaultPageSize = 100

// Credentials represents the MinIO login details
type Credentials struct {
	Endpoint     string `json:"endpoint"`
	AccessKey    string `json:"accessKey"`
	SecretKey    string `json:"secretKey"`
	SessionToken string `json:"sessionToken,omitempty"`
}

// ListObjectsOptions selects one page of a bucket listing
type ListObjectsOptions struct {
	Prefix            string
	Recursive         bool
	MaxKeys           int
	ContinuationToken string
}

// ListObjectsResult contains paginated results from ListObjectsPaginated
type ListObjectsResult struct {
	Objects               []minio.ObjectInfo
	IsTruncated           bool
	NextContinuationToken string
}

// MinioAdminClient is an interface for the madmin methods we use
type MinioAdminClient interface {
	ServerInfo(ctx context.Context, opts ...func(*madmin.ServerInfoOpts)) (madmin.InfoMessage, error)
}

// MinioClient is an interface for the S3 methods we use
type MinioClient interface {
	ListObjectsPaginated(ctx context.Context, bucketName string, opts ListObjectsOptions) (ListObjectsResult, error)
	// GetObjectReader opens an object and stats it. The caller closes the reader.
	GetObjectReader(ctx context.Context, bucketName, objectName string) (io.ReadCloser, minio.ObjectInfo, error)
}

// MinioClientFactory creates authenticated clients
type MinioClientFactory interface {
	NewAdminClient(creds Credentials) (MinioAdminClient, error)
	NewClient(creds Credentials) (MinioClient, error)
}

// WrappedMinioClient wraps minio.Client to implement our interface
type WrappedMinioClient struct {
	client *minio.Client
}

func (c *WrappedMinioClient) ListObjectsPaginated(ctx context.Context, bucketName string, opts ListObjectsOptions) (ListObjectsResult, error) {
	minioOpts := minio.ListObjectsOptions{
		Prefix:    opts.Prefix,
		Recursive: opts.Recursive,
	}

	// MinIO uses marker-based pagination
	if opts.ContinuationToken != "" {
		minioOpts.StartAfter = opts.ContinuationToken
	}

	// Cancel the listing goroutine once the page is full.
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	return collectPage(c.client.ListObjects(ctx, bucketName, minioOpts), opts.MaxKeys)
}

// collectPage reads up to maxKeys objects from a listing channel.
func collectPage(listing <-chan minio.ObjectInfo, maxKeys int) (ListObjectsResult, error) {
	if maxKeys <= 0 {
		maxKeys = DefaultPageSize
	}

	var objects []minio.ObjectInfo
	var lastKey string

	for obj := range listing {
		if obj.Err != nil {
			return ListObjectsResult{}, obj.Err
		}

		objects = append(objects, obj)
		lastKey = obj.Key

		if len(objects) >= maxKeys {
			break
		}
	}

	result := ListObjectsResult{
		Objects:     objects,
		IsTruncated: len(objects) >= maxKeys,
	}

	if result.IsTruncated {
		result.NextContinuationToken = lastKey
	}

	return result, nil
}

func (c *WrappedMinioClient) GetObjectReader(ctx context.Context, bucketName, objectName string) (io.ReadCloser, minio.ObjectInfo, error) {
	obj, err := c.client.GetObject(ctx, bucketName, objectName, minio.GetObjectOptions{})
	if err != nil {
		return nil, minio.ObjectInfo{}, err
	}
	info, err := obj.Stat()
	if err != nil {
		_ = obj.Close()
		return nil, minio.ObjectInfo{}, err
	}
	return obj, info, nil
}

// RealMinioFactory is the production implementation
type RealMinioFactory struct{}

// shouldUseSSL determines if SSL should be used based on the endpoint.
// Returns false for localhost, 127.0.0.1, and docker service names.
func shouldUseSSL(endpoint string) bool {
	if endpoint == "localhost:9000" || endpoint == "127.0.0.1:9000" {
		return false
	}
	// Docker service names (minio:9000, minio1:9000, ...), not domain names like minio.example.com
	if strings.HasPrefix(endpoint, "minio") && !strings.Contains(strings.Split(endpoint, ":")[0], ".") && strings.Contains(endpoint, ":9000") {
		return false
	}
	return true
}

func (f *RealMinioFactory) NewAdminClient(creds Credentials) (MinioAdminClient, error) {
	client, err := madmin.NewWithOptions(creds.Endpoint, &madmin.Options{
		Creds:  credentials.NewStaticV4(creds.AccessKey, creds.SecretKey, ""),
		Secure: shouldUseSSL(creds.Endpoint),
	})
	if err != nil {
		return nil, err
	}
	return client, nil
}

func (f *RealMinioFactory) NewClient(creds Credentials) (MinioClient, error) {
	client, err := minio.New(creds.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(creds.AccessKey, creds.SecretKey, creds.SessionToken),
		Secure: shouldUseSSL(creds.Endpoint),
	})
	if err != nil {
		return nil, err
	}
	return &WrappedMinioClient{client: client}, nil
}
