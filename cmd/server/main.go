package main

import (
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/damacus/iron-kit/internal/config"
	"github.com/damacus/iron-kit/internal/handlers"
	customMiddleware "github.com/damacus/iron-kit/internal/middleware"
	"github.com/damacus/iron-kit/internal/services"
	"github.com/damacus/iron-kit/internal/stream"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
)

func main() {
	path := os.Getenv("IRONKIT_CONFIG")
	if path == "" {
		path = config.DefaultPath
	}

	cfg, err := config.LoadOrDefault(path)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	if !cfg.MinioEnabled() {
		log.Info("MINIO_ENDPOINT not set, object storage routes disabled")
	}

	e := newServer(cfg, &services.RealMinioFactory{})

	// Start Server
	e.Logger.Fatal(e.Start(cfg.Server.Address))
}

func newServer(cfg *config.Config, minioFactory services.MinioClientFactory) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	level := logLevel(cfg.Logging.Level)
	e.Logger.SetLevel(level)
	stream.Logger.SetLevel(level)

	// Handlers
	calcHandler := handlers.NewCalcHandler()
	textHandler := handlers.NewTextHandler()
	datesHandler := handlers.NewDatesHandler(time.Local)
	filesHandler := handlers.NewFilesHandler(cfg.Files.Root)
	drivesHandler := handlers.NewDrivesHandler(minioFactory, cfg.Files.Root)
	objectsHandler := handlers.NewObjectsHandler(minioFactory)

	// Middleware
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogStatus:    true,
		LogURI:       true,
		LogRequestID: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			e.Logger.Infof("REQUEST: id: %v, uri: %v, status: %v", v.RequestID, v.URI, v.Status)
			return nil
		},
	}))
	e.Use(middleware.Recover())
	e.Use(customMiddleware.SecurityHeaders())
	// Token auth skips public routes internally
	e.Use(customMiddleware.TokenAuth(cfg.Server.Token))
	if cfg.MinioEnabled() {
		e.Use(customMiddleware.WithCredentials(services.Credentials{
			Endpoint:  cfg.Minio.Endpoint,
			AccessKey: cfg.Minio.AccessKey,
			SecretKey: cfg.Minio.SecretKey,
		}))
	}

	// Public Routes
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "OK")
	})

	// Arithmetic and text
	e.GET("/calc/:op", calcHandler.Calculate)
	e.GET("/text/check", textHandler.Check)
	e.GET("/text/mask", textHandler.Mask)

	// Dates
	e.GET("/dates/age", datesHandler.Age)
	e.GET("/dates/month", datesHandler.Month)
	e.GET("/dates/offset", datesHandler.Offset)
	e.GET("/dates/season", datesHandler.Season)
	e.GET("/dates/display", datesHandler.Display)

	// Local files
	e.GET("/files/info", filesHandler.Info)
	e.GET("/files/download", filesHandler.Download)
	e.GET("/files/space", filesHandler.Space)
	e.GET("/drives", drivesHandler.ListDrives)

	// Object Browser
	e.GET("/objects/:bucketName", objectsHandler.ListObjects)
	e.GET("/objects/:bucketName/download", objectsHandler.DownloadObject)

	return e
}

func logLevel(name string) log.Lvl {
	switch strings.ToLower(name) {
	case "debug":
		return log.DEBUG
	case "warn":
		return log.WARN
	case "error":
		return log.ERROR
	case "off":
		return log.OFF
	default:
		return log.INFO
	}
}
