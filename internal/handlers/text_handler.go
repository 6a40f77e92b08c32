package handlers

import (
	"net/http"

	"github.com/damacus/iron-kit/internal/text"
	"github.com/damacus/iron-kit/internal/web"
	"github.com/labstack/echo/v4"
)

// TextHandler exposes the string validation and masking helpers
type TextHandler struct{}

func NewTextHandler() *TextHandler {
	return &TextHandler{}
}

// Check runs every predicate against the value parameter
func (h *TextHandler) Check(c echo.Context) error {
	value := c.FormValue("value")
	return c.JSON(http.StatusOK, map[string]interface{}{
		"url":       web.RequestURL(c),
		"hasLength": text.HasLength(value),
		"hasText":   text.HasText(value),
		"email":     text.IsEmail(value),
		"phone":     text.IsPhone(value),
		"letter":    text.IsLetter(value),
	})
}

// Mask hides value between the start and end indexes, both inclusive
func (h *TextHandler) Mask(c echo.Context) error {
	value := c.FormValue("value")
	start := web.IntParam(c, "start", text.Unset)
	end := web.IntParam(c, "end", text.Unset)

	return c.JSON(http.StatusOK, map[string]interface{}{
		"url":    web.RequestURL(c, "value"),
		"masked": text.Hidden(value, start, end),
	})
}
