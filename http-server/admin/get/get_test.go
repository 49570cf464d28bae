package get

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/render"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"care-payroll/internal/service/payroll"
)

type staticSettings struct {
	rates    payroll.Rates
	calendar payroll.Calendar
}

func (s staticSettings) Rates() payroll.Rates       { return s.rates }
func (s staticSettings) Calendar() payroll.Calendar { return s.calendar }

func TestGetSettingsAdmin(t *testing.T) {
	cal, err := payroll.NewCalendar([]string{"10/10", "6/4"})
	require.NoError(t, err)

	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	h := GetSettingsAdmin(log, staticSettings{rates: payroll.DefaultRates(), calendar: cal})

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/admin/settings", nil))

	require.Equal(t, http.StatusOK, rr.Code)

	var resp Settings
	require.NoError(t, render.DecodeJSON(rr.Body, &resp))

	assert.Equal(t, "220", resp.BaseHourly.String())
	assert.Equal(t, "1.34", resp.Tier2Multiplier.String())
	assert.Equal(t, "1.67", resp.Tier3Multiplier.String())
	assert.Equal(t, "2", resp.HolidayFactor.String())
	assert.Equal(t, "35", resp.TransitionFlat.String())
	assert.Equal(t, "650", resp.SecondaryFlat.String())
	assert.Equal(t, []string{"06/04", "10/10"}, resp.Holidays)
}
