package payroll

import (
	"github.com/shopspring/decimal"

	"care-payroll/internal/config"
)

var minutesPerHour = decimal.NewFromInt(60)

type Rates struct {
	Base       decimal.Decimal
	Tier2      decimal.Decimal
	Tier3      decimal.Decimal
	Holiday    decimal.Decimal
	Transition decimal.Decimal
	Secondary  decimal.Decimal
}

func NewRates(p config.Pay) Rates {
	return Rates{
		Base:       decimal.NewFromFloat(p.BaseHourly),
		Tier2:      decimal.NewFromFloat(p.Tier2Multiplier),
		Tier3:      decimal.NewFromFloat(p.Tier3Multiplier),
		Holiday:    decimal.NewFromFloat(p.HolidayFactor),
		Transition: decimal.NewFromFloat(p.TransitionFlat),
		Secondary:  decimal.NewFromFloat(p.SecondaryFlat),
	}
}

// DefaultRates — ставки по умолчанию: 220 в час, 35 за переход, 650 за визит GA/SC.
func DefaultRates() Rates {
	return NewRates(config.Pay{
		BaseHourly:      220,
		Tier2Multiplier: 1.34,
		Tier3Multiplier: 1.67,
		HolidayFactor:   2,
		TransitionFlat:  35,
		SecondaryFlat:   650,
	})
}

// PrimaryPay считается по точным минутам, округление только при выводе.
func (r Rates) PrimaryPay(t TierResult) decimal.Decimal {
	weighted := decimal.NewFromInt(int64(t.Tier1)).
		Add(decimal.NewFromInt(int64(t.Tier2)).Mul(r.Tier2)).
		Add(decimal.NewFromInt(int64(t.Tier3)).Mul(r.Tier3)).
		Add(decimal.NewFromInt(int64(t.Holiday)).Mul(r.Holiday))

	hourly := weighted.Mul(r.Base).Div(minutesPerHour)
	return hourly.Add(decimal.NewFromInt(int64(t.Transitions)).Mul(r.Transition))
}

func (r Rates) SecondaryPay(quantity int) decimal.Decimal {
	return decimal.NewFromInt(int64(quantity)).Mul(r.Secondary)
}

// Hours переводит минуты в часы с двумя знаками.
func Hours(minutes int) decimal.Decimal {
	return decimal.NewFromInt(int64(minutes)).Div(minutesPerHour).Round(2)
}
