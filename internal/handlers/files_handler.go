package handlers

import (
	"errors"
	"io/fs"
	"mime"
	"net/http"
	"os"
	"path/filepath"

	"github.com/damacus/iron-kit/internal/file"
	"github.com/damacus/iron-kit/internal/web"
	"github.com/labstack/echo/v4"
)

// FilesHandler serves files below a fixed root directory
type FilesHandler struct {
	root string
}

func NewFilesHandler(root string) *FilesHandler {
	return &FilesHandler{root: root}
}

// resolve maps the name parameter to a path below the root, rejecting names
// that would leave it.
func (h *FilesHandler) resolve(c echo.Context) (string, error) {
	name := web.StringParam(c, "name", "")
	if name == "" {
		return "", echo.NewHTTPError(http.StatusBadRequest, "Missing parameter: name")
	}
	if !filepath.IsLocal(name) {
		return "", echo.NewHTTPError(http.StatusBadRequest, "Invalid file name")
	}
	return filepath.Join(h.root, name), nil
}

func unitParam(c echo.Context) (file.SizeUnit, error) {
	unit, err := file.ParseSizeUnit(web.StringParam(c, "unit", "B"))
	if err != nil {
		return 0, badRequest(err)
	}
	return unit, nil
}

// Info reports the extension and size of a file
func (h *FilesHandler) Info(c echo.Context) error {
	path, err := h.resolve(c)
	if err != nil {
		return err
	}
	unit, err := unitParam(c)
	if err != nil {
		return err
	}

	info, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		return echo.NewHTTPError(http.StatusNotFound, "File not found")
	}
	if err != nil {
		return err
	}
	if info.IsDir() {
		return echo.NewHTTPError(http.StatusBadRequest, "Not a file")
	}

	ext, _ := file.Ext(info.Name())
	return c.JSON(http.StatusOK, map[string]interface{}{
		"url":           web.RequestURL(c),
		"name":          info.Name(),
		"extension":     ext,
		"size":          file.ConvertSize(info.Size(), unit),
		"unit":          unit.String(),
		"formattedSize": file.FormatFileSize(info.Size()),
	})
}

// Download streams a file, inline when the inline parameter is true
func (h *FilesHandler) Download(c echo.Context) error {
	path, err := h.resolve(c)
	if err != nil {
		return err
	}

	contentType := ""
	if ext, ok := file.Ext(filepath.Base(path)); ok {
		contentType = mime.TypeByExtension(ext)
	}

	err = web.DownloadFile(c, path, contentType, web.BoolParam(c, "inline", false))
	if errors.Is(err, fs.ErrNotExist) {
		return echo.NewHTTPError(http.StatusNotFound, "File not found")
	}
	return err
}

// Space reports the total and free space of the filesystem holding the root
func (h *FilesHandler) Space(c echo.Context) error {
	unit, err := unitParam(c)
	if err != nil {
		return err
	}

	total, err := file.TotalSpace(h.root, unit)
	if err != nil {
		return err
	}
	free, err := file.FreeSpace(h.root, unit)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"url":   web.RequestURL(c),
		"unit":  unit.String(),
		"total": total,
		"free":  free,
	})
}
