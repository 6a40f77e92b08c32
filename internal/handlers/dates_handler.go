package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/damacus/iron-kit/internal/date"
	"github.com/damacus/iron-kit/internal/web"
	"github.com/labstack/echo/v4"
)

// DatesHandler exposes the date helpers
type DatesHandler struct {
	location *time.Location
}

func NewDatesHandler(location *time.Location) *DatesHandler {
	if location == nil {
		location = time.Local
	}
	return &DatesHandler{location: location}
}

// Age returns the age for a birthday given as YYYY-MM-DD
func (h *DatesHandler) Age(c echo.Context) error {
	birthday, err := time.ParseInLocation(time.DateOnly, web.StringParam(c, "birthday", ""), h.location)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "birthday must be YYYY-MM-DD")
	}

	age, err := date.Age(birthday)
	if err != nil {
		return badRequest(err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"url": web.RequestURL(c),
		"age": age,
	})
}

// Month returns the first and last instant of the month holding date (default today)
func (h *DatesHandler) Month(c echo.Context) error {
	at := time.Now().In(h.location)
	if raw := web.StringParam(c, "date", ""); raw != "" {
		parsed, err := time.ParseInLocation(time.DateOnly, raw, h.location)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "date must be YYYY-MM-DD")
		}
		at = parsed
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"url":   web.RequestURL(c),
		"first": date.FirstDayOfMonth(at).Format(time.RFC3339Nano),
		"last":  date.LastDayOfMonth(at).Format(time.RFC3339Nano),
	})
}

// Offset returns today moved by the days parameter, which may be negative
func (h *DatesHandler) Offset(c echo.Context) error {
	days, err := strconv.Atoi(web.StringParam(c, "days", "0"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "days must be an integer")
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"url":  web.RequestURL(c),
		"date": date.OffsetDate(days).In(h.location).Format(time.DateOnly),
	})
}

// Season returns the current season
func (h *DatesHandler) Season(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"url":    web.RequestURL(c),
		"season": date.CurrentSeason().String(),
	})
}

// Display renders an RFC 3339 timestamp relative to now
func (h *DatesHandler) Display(c echo.Context) error {
	at, err := time.Parse(time.RFC3339, web.StringParam(c, "at", ""))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "at must be an RFC 3339 timestamp")
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"url":     web.RequestURL(c),
		"display": date.DisplayTime(at.In(h.location)),
	})
}
