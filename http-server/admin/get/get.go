package get

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/render"
	"github.com/shopspring/decimal"

	"care-payroll/internal/service/payroll"
)

type SettingsProvider interface {
	Rates() payroll.Rates
	Calendar() payroll.Calendar
}

type Settings struct {
	BaseHourly      decimal.Decimal `json:"base_hourly"`
	Tier2Multiplier decimal.Decimal `json:"tier2_multiplier"`
	Tier3Multiplier decimal.Decimal `json:"tier3_multiplier"`
	HolidayFactor   decimal.Decimal `json:"holiday_multiplier"`
	TransitionFlat  decimal.Decimal `json:"transition_flat"`
	SecondaryFlat   decimal.Decimal `json:"secondary_flat"`
	Holidays        []string        `json:"holidays"`
}

// GetSettingsAdmin отдаёт действующие ставки и список праздников.
func GetSettingsAdmin(log *slog.Logger, settings SettingsProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.admin.GetSettingsAdmin"

		rates := settings.Rates()

		log.Debug("settings requested", slog.String("op", op))

		render.JSON(w, r, Settings{
			BaseHourly:      rates.Base,
			Tier2Multiplier: rates.Tier2,
			Tier3Multiplier: rates.Tier3,
			HolidayFactor:   rates.Holiday,
			TransitionFlat:  rates.Transition,
			SecondaryFlat:   rates.Secondary,
			Holidays:        settings.Calendar().Holidays(),
		})
	}
}
