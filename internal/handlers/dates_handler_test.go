package handlers

import (
	"net/http"
	"testing"
	"time"

	"github.com/damacus/iron-kit/internal/date"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDatesAge(t *testing.T) {
	h := NewDatesHandler(time.UTC)

	c, rec := newContext("/dates/age?birthday=2000-01-01")
	require.NoError(t, h.Age(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	expected, err := date.Age(time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, float64(expected), decode(t, rec)["age"])
}

func TestDatesAgeErrors(t *testing.T) {
	h := NewDatesHandler(time.UTC)

	c, _ := newContext("/dates/age?birthday=01/01/2000")
	requireHTTPError(t, h.Age(c), http.StatusBadRequest)

	future := time.Now().AddDate(1, 0, 0).Format(time.DateOnly)
	c, _ = newContext("/dates/age?birthday=" + future)
	requireHTTPError(t, h.Age(c), http.StatusBadRequest)
}

func TestDatesMonth(t *testing.T) {
	h := NewDatesHandler(time.UTC)

	c, rec := newContext("/dates/month?date=2018-11-11")
	require.NoError(t, h.Month(c))

	body := decode(t, rec)
	assert.Equal(t, "2018-11-01T00:00:00Z", body["first"])
	assert.Equal(t, "2018-11-30T23:59:59.999Z", body["last"])
}

func TestDatesMonthLeapYear(t *testing.T) {
	h := NewDatesHandler(time.UTC)

	c, rec := newContext("/dates/month?date=2024-02-10")
	require.NoError(t, h.Month(c))
	assert.Equal(t, "2024-02-29T23:59:59.999Z", decode(t, rec)["last"])
}

func TestDatesOffset(t *testing.T) {
	h := NewDatesHandler(time.UTC)

	c, rec := newContext("/dates/offset?days=-3")
	require.NoError(t, h.Offset(c))
	assert.Equal(t, date.OffsetDate(-3).In(time.UTC).Format(time.DateOnly), decode(t, rec)["date"])

	c, _ = newContext("/dates/offset?days=three")
	requireHTTPError(t, h.Offset(c), http.StatusBadRequest)
}

func TestDatesSeason(t *testing.T) {
	h := NewDatesHandler(nil)

	c, rec := newContext("/dates/season")
	require.NoError(t, h.Season(c))
	assert.Equal(t, date.CurrentSeason().String(), decode(t, rec)["season"])
}

func TestDatesDisplay(t *testing.T) {
	h := NewDatesHandler(time.UTC)

	at := time.Now().Add(-5 * time.Minute).UTC().Format(time.RFC3339)
	c, rec := newContext("/dates/display?at=" + at)
	require.NoError(t, h.Display(c))
	assert.Equal(t, "5 minutes ago", decode(t, rec)["display"])

	c, rec = newContext("/dates/display?at=2001-02-03T04:05:06Z")
	require.NoError(t, h.Display(c))
	assert.Equal(t, "2001-02-03", decode(t, rec)["display"])

	c, _ = newContext("/dates/display?at=yesterday")
	requireHTTPError(t, h.Display(c), http.StatusBadRequest)
}
