package web

import (
	"io"
	"mime"
	"net/http"
	"os"
	"path/filepath"
	"strconv"

	"github.com/damacus/iron-kit/internal/stream"
	"github.com/damacus/iron-kit/internal/text"
	"github.com/labstack/echo/v4"
)

// DefaultDownloadType is sent when no content type is given.
const DefaultDownloadType = "application/x-download"

// Download writes r to the response as a file named filename. When inline is
// true the browser is asked to display it instead of saving it. r is closed
// if it implements io.Closer; the response is flushed but left open.
func Download(c echo.Context, r io.Reader, filename, contentType string, inline bool) error {
	if !text.HasText(contentType) {
		contentType = DefaultDownloadType
	}
	disposition := "attachment"
	if inline {
		disposition = "inline"
	}

	header := c.Response().Header()
	header.Set("Pragma", "no-cache")
	header.Set("Cache-Control", "no-cache")
	header.Set("Expires", "Thu, 01 Jan 1970 00:00:00 GMT")
	header.Set(echo.HeaderContentType, contentType)
	header.Set(echo.HeaderContentDisposition, mime.FormatMediaType(disposition, map[string]string{"filename": filename}))

	c.Response().WriteHeader(http.StatusOK)
	if _, err := stream.CopyClose(c.Response(), r, true, false); err != nil {
		return err
	}
	c.Response().Flush()
	return nil
}

// DownloadFile sends the file at path with its size as Content-Length and its
// base name as the download name.
func DownloadFile(c echo.Context, path, contentType string, inline bool) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	info, err := f.Stat()
	if err != nil {
		stream.Closings(f)
		return err
	}
	if info.IsDir() {
		stream.Closings(f)
		return echo.NewHTTPError(http.StatusBadRequest, "Cannot download a directory")
	}

	c.Response().Header().Set(echo.HeaderContentLength, strconv.FormatInt(info.Size(), 10))
	return Download(c, f, filepath.Base(path), contentType, inline)
}
