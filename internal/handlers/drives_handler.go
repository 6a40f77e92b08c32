package handlers

import (
	"net/http"

	"github.com/damacus/iron-kit/internal/file"
	"github.com/damacus/iron-kit/internal/models"
	"github.com/damacus/iron-kit/internal/services"
	"github.com/damacus/iron-kit/internal/web"
	"github.com/labstack/echo/v4"
)

type DrivesHandler struct {
	minioFactory services.MinioClientFactory
	root         string
}

func NewDrivesHandler(minioFactory services.MinioClientFactory, root string) *DrivesHandler {
	return &DrivesHandler{minioFactory: minioFactory, root: root}
}

// ListDrives reports the local filesystem holding the files root and, when
// object storage is configured, every MinIO drive, sized in the unit parameter.
func (h *DrivesHandler) ListDrives(c echo.Context) error {
	unit, err := unitParam(c)
	if err != nil {
		return err
	}

	drives := []models.DriveInfo{}

	local, err := h.localDrive(unit)
	if err != nil {
		return err
	}
	drives = append(drives, local)

	response := map[string]interface{}{
		"url":  web.RequestURL(c),
		"unit": unit.String(),
	}

	if creds, err := GetCredentials(c); err == nil {
		remote, err := h.minioDrives(c, *creds, unit)
		if err != nil {
			response["error"] = "Unable to fetch drive information (admin permissions required)"
		} else {
			drives = append(drives, remote...)
		}
	}

	online := 0
	for _, d := range drives {
		if d.State == "ok" {
			online++
		}
	}

	response["drives"] = drives
	response["online"] = online
	return c.JSON(http.StatusOK, response)
}

func (h *DrivesHandler) localDrive(unit file.SizeUnit) (models.DriveInfo, error) {
	root, err := file.Root(h.root)
	if err != nil {
		return models.DriveInfo{}, err
	}
	totalBytes, err := file.TotalSpace(root, file.B)
	if err != nil {
		return models.DriveInfo{}, err
	}
	freeBytes, err := file.FreeSpace(root, file.B)
	if err != nil {
		return models.DriveInfo{}, err
	}
	return driveInfo(root, "", "ok", totalBytes, freeBytes, unit), nil
}

func (h *DrivesHandler) minioDrives(c echo.Context, creds services.Credentials, unit file.SizeUnit) ([]models.DriveInfo, error) {
	mdm, err := h.minioFactory.NewAdminClient(creds)
	if err != nil {
		return nil, err
	}

	serverInfo, err := mdm.ServerInfo(c.Request().Context())
	if err != nil {
		return nil, err
	}

	var drives []models.DriveInfo
	for _, server := range serverInfo.Servers {
		for _, disk := range server.Disks {
			drives = append(drives, driveInfo(disk.DrivePath, server.Endpoint, disk.State,
				int64(disk.TotalSpace), int64(disk.AvailableSpace), unit))
		}
	}
	return drives, nil
}

func driveInfo(path, endpoint, state string, totalBytes, freeBytes int64, unit file.SizeUnit) models.DriveInfo {
	usedBytes := totalBytes - freeBytes
	if usedBytes < 0 {
		usedBytes = 0
	}
	return models.DriveInfo{
		Path:      path,
		Endpoint:  endpoint,
		State:     state,
		Unit:      unit.String(),
		Total:     file.ConvertSize(totalBytes, unit),
		Used:      file.ConvertSize(usedBytes, unit),
		Free:      file.ConvertSize(freeBytes, unit),
		Formatted: file.FormatFileSize(usedBytes) + " / " + file.FormatFileSize(totalBytes),
	}
}
