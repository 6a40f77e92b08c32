package handlers

import (
	"net/http"
	"path"
	"strconv"

	"github.com/damacus/iron-kit/internal/date"
	"github.com/damacus/iron-kit/internal/file"
	"github.com/damacus/iron-kit/internal/models"
	"github.com/damacus/iron-kit/internal/services"
	"github.com/damacus/iron-kit/internal/web"
	"github.com/labstack/echo/v4"
)

// ObjectsHandler lists and downloads objects from MinIO buckets
type ObjectsHandler struct {
	minioFactory services.MinioClientFactory
}

func NewObjectsHandler(minioFactory services.MinioClientFactory) *ObjectsHandler {
	return &ObjectsHandler{minioFactory: minioFactory}
}

func (h *ObjectsHandler) client(c echo.Context) (services.MinioClient, error) {
	creds, err := GetCredentials(c)
	if err != nil {
		return nil, err
	}
	client, err := h.minioFactory.NewClient(*creds)
	if err != nil {
		return nil, echo.NewHTTPError(http.StatusInternalServerError, "Failed to connect to MinIO")
	}
	return client, nil
}

// ListObjects returns one page of a bucket listing
func (h *ObjectsHandler) ListObjects(c echo.Context) error {
	client, err := h.client(c)
	if err != nil {
		return err
	}

	bucketName := c.Param("bucketName")
	result, err := client.ListObjectsPaginated(c.Request().Context(), bucketName, services.ListObjectsOptions{
		Prefix:            web.StringParam(c, "prefix", ""),
		Recursive:         web.BoolParam(c, "recursive", false),
		MaxKeys:           web.IntParam(c, "max", services.DefaultPageSize),
		ContinuationToken: web.StringParam(c, "token", ""),
	})
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to list objects")
	}

	objects := make([]models.ObjectInfo, 0, len(result.Objects))
	for _, obj := range result.Objects {
		ext, _ := file.Ext(path.Base(obj.Key))
		objects = append(objects, models.ObjectInfo{
			Key:           obj.Key,
			Extension:     ext,
			Size:          obj.Size,
			FormattedSize: file.FormatFileSize(obj.Size),
			LastModified:  obj.LastModified,
			Modified:      date.DisplayTime(obj.LastModified),
			ContentType:   obj.ContentType,
		})
	}

	return c.JSON(http.StatusOK, models.ObjectPage{
		URL:         web.RequestURL(c),
		Bucket:      bucketName,
		Objects:     objects,
		IsTruncated: result.IsTruncated,
		NextToken:   result.NextContinuationToken,
	})
}

// DownloadObject streams the object named by the key parameter
func (h *ObjectsHandler) DownloadObject(c echo.Context) error {
	objectName := web.StringParam(c, "key", "")
	if objectName == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "Missing parameter: key")
	}

	client, err := h.client(c)
	if err != nil {
		return err
	}

	reader, info, err := client.GetObjectReader(c.Request().Context(), c.Param("bucketName"), objectName)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "Object not found")
	}

	c.Response().Header().Set(echo.HeaderContentLength, strconv.FormatInt(info.Size, 10))
	return web.Download(c, reader, path.Base(objectName), info.ContentType, web.BoolParam(c, "inline", false))
}
