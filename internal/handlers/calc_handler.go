package handlers

import (
	"fmt"
	"net/http"

	"github.com/damacus/iron-kit/internal/number"
	"github.com/damacus/iron-kit/internal/web"
	"github.com/labstack/echo/v4"
)

// maxScale bounds the scale a request may ask for.
const maxScale = 1000

// CalcHandler exposes the decimal arithmetic helpers
type CalcHandler struct{}

func NewCalcHandler() *CalcHandler {
	return &CalcHandler{}
}

// Calculate applies :op (add, sub, mul, div, round) to the a and b query parameters.
// div and round honour scale; div defaults to number.DefaultScale and round to 0.
func (h *CalcHandler) Calculate(c echo.Context) error {
	op := c.Param("op")

	a, err := floatArg(c, "a")
	if err != nil {
		return err
	}

	defaultScale := number.DefaultScale
	if op == "round" {
		defaultScale = 0
	}
	scale := web.IntParam(c, "scale", defaultScale)
	if scale > maxScale {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("scale must not exceed %d", maxScale))
	}

	var result float64
	switch op {
	case "round":
		result, err = number.Round(a, scale)
	case "add", "sub", "mul", "div":
		b, argErr := floatArg(c, "b")
		if argErr != nil {
			return argErr
		}
		switch op {
		case "add":
			result = number.Add(a, b)
		case "sub":
			result = number.Sub(a, b)
		case "mul":
			result = number.Mul(a, b)
		default:
			result, err = number.DivScale(a, b, scale)
		}
	default:
		return echo.NewHTTPError(http.StatusNotFound, "Unknown operation: "+op)
	}
	if err != nil {
		return badRequest(err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"url":    web.RequestURL(c),
		"op":     op,
		"result": number.Format(result),
	})
}

func floatArg(c echo.Context, name string) (float64, error) {
	raw := web.StringParam(c, name, "")
	if raw == "" {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "Missing parameter: "+name)
	}
	v, err := number.Parse(raw)
	if err != nil {
		return 0, badRequest(err)
	}
	return v, nil
}
