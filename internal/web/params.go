// Package web provides echo helpers for reading typed request parameters
// and streaming downloads.
package web

import (
	"net/url"
	"sort"
	"strconv"
	"strings"

	"github.com/damacus/iron-kit/internal/number"
	"github.com/damacus/iron-kit/internal/text"
	"github.com/labstack/echo/v4"
)

// StringParam returns the named query or form parameter, or def when it is
// absent or blank.
func StringParam(c echo.Context, name, def string) string {
	value := c.FormValue(name)
	if text.HasText(value) {
		return value
	}
	return def
}

// IntParam returns the named parameter as a non-negative int, or def when it
// is absent, not all digits, or too large for int.
func IntParam(c echo.Context, name string, def int) int {
	value := c.FormValue(name)
	if !text.HasText(value) || !number.IsNumber(value) {
		return def
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return def
	}
	return n
}

// BoolParam returns the named parameter parsed by strconv.ParseBool, or def.
func BoolParam(c echo.Context, name string, def bool) bool {
	b, err := strconv.ParseBool(strings.TrimSpace(c.FormValue(name)))
	if err != nil {
		return def
	}
	return b
}

// FloatParam returns the named parameter as a float64 when it is a plain
// decimal number, or def.
func FloatParam(c echo.Context, name string, def float64) float64 {
	value := strings.TrimSpace(c.FormValue(name))
	if !number.IsReal(value) {
		return def
	}
	v, err := number.Parse(value)
	if err != nil {
		return def
	}
	return v
}

// RequestURL rebuilds the full request URL with every query and form
// parameter except the ignored names. Parameters are sorted by name and only
// the first value of each is kept.
func RequestURL(c echo.Context, ignore ...string) string {
	req := c.Request()
	var b strings.Builder
	b.WriteString(c.Scheme())
	b.WriteString("://")
	b.WriteString(req.Host)
	b.WriteString(req.URL.EscapedPath())

	params, err := c.FormParams()
	if err != nil {
		params = c.QueryParams()
	}

	skip := make(map[string]struct{}, len(ignore))
	for _, name := range ignore {
		skip[name] = struct{}{}
	}

	names := make([]string, 0, len(params))
	for name := range params {
		if _, ok := skip[name]; !ok {
			names = append(names, name)
		}
	}
	sort.Strings(names)

	for i, name := range names {
		if i == 0 {
			b.WriteByte('?')
		} else {
			b.WriteByte('&')
		}
		b.WriteString(url.QueryEscape(name))
		b.WriteByte('=')
		if values := params[name]; len(values) > 0 {
			b.WriteString(url.QueryEscape(values[0]))
		}
	}
	return b.String()
}
