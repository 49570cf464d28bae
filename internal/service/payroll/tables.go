package payroll

import (
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"care-payroll/internal/constants"
	"care-payroll/internal/storage"
)

type HoursRow struct {
	Employee    string          `json:"employee"`
	Tier1       decimal.Decimal `json:"tier1_hours"`
	Tier2       decimal.Decimal `json:"tier2_hours"`
	Tier3       decimal.Decimal `json:"tier3_hours"`
	Holiday     decimal.Decimal `json:"holiday_hours"`
	Transitions int             `json:"transitions"`
	Pay         decimal.Decimal `json:"pay"`
}

// DailyRow — минуты по дням для пары сотрудник/кейс. Total=true у итоговой строки сотрудника.
type DailyRow struct {
	Employee string `json:"employee"`
	Case     string `json:"case"`
	Minutes  []int  `json:"minutes"`
	Sum      int    `json:"sum"`
	Total    bool   `json:"total"`
}

type DailyMatrix struct {
	Days []time.Time `json:"days"`
	Rows []DailyRow  `json:"rows"`
}

type SecondaryRow struct {
	Employee string          `json:"employee"`
	Count    int             `json:"count"`
	Pay      decimal.Decimal `json:"pay"`
}

type PrimaryCoverRow struct {
	Employee    string          `json:"employee"`
	Substitute  string          `json:"substitute"`
	Tier1       decimal.Decimal `json:"tier1_hours"`
	Tier2       decimal.Decimal `json:"tier2_hours"`
	Tier3       decimal.Decimal `json:"tier3_hours"`
	Holiday     decimal.Decimal `json:"holiday_hours"`
	Transitions int             `json:"transitions"`
	Pay         decimal.Decimal `json:"pay"`
}

type SecondaryCoverRow struct {
	Employee   string          `json:"employee"`
	Substitute string          `json:"substitute"`
	Count      int             `json:"count"`
	Pay        decimal.Decimal `json:"pay"`
}

// Report — все пять таблиц прогона и сводка пропусков.
type Report struct {
	Hours          []HoursRow          `json:"hours"`
	Daily          DailyMatrix         `json:"daily"`
	Secondary      []SecondaryRow      `json:"secondary"`
	PrimaryCover   []PrimaryCoverRow   `json:"primary_cover"`
	SecondaryCover []SecondaryCoverRow `json:"secondary_cover"`
	Skipped        SkipSummary         `json:"skipped"`
}

// BuildReport собирает таблицы только из состояния аккумулятора.
func BuildReport(acc *Accumulator, rates Rates) *Report {
	report := &Report{Daily: buildDaily(acc)}

	for _, emp := range acc.Employees() {
		t := acc.Tiers(emp)
		report.Hours = append(report.Hours, HoursRow{
			Employee:    emp,
			Tier1:       Hours(t.Tier1),
			Tier2:       Hours(t.Tier2),
			Tier3:       Hours(t.Tier3),
			Holiday:     Hours(t.Holiday),
			Transitions: t.Transitions,
			Pay:         rates.PrimaryPay(t).Round(0),
		})

		if qty := acc.employees[emp].secondary; qty != 0 {
			report.Secondary = append(report.Secondary, SecondaryRow{
				Employee: emp,
				Count:    qty,
				Pay:      rates.SecondaryPay(qty).Round(0),
			})
		}
	}

	for _, k := range acc.coverPairs(true) {
		t := *acc.primaryCover[k]
		if t.Minutes() == 0 && t.Transitions == 0 {
			continue
		}
		report.PrimaryCover = append(report.PrimaryCover, PrimaryCoverRow{
			Employee:    k.Employee,
			Substitute:  k.Substitute,
			Tier1:       Hours(t.Tier1),
			Tier2:       Hours(t.Tier2),
			Tier3:       Hours(t.Tier3),
			Holiday:     Hours(t.Holiday),
			Transitions: t.Transitions,
			Pay:         rates.PrimaryPay(t).Round(0),
		})
	}

	for _, k := range acc.coverPairs(false) {
		qty := acc.secondaryCover[k]
		if qty == 0 {
			continue
		}
		report.SecondaryCover = append(report.SecondaryCover, SecondaryCoverRow{
			Employee:   k.Employee,
			Substitute: k.Substitute,
			Count:      qty,
			Pay:        rates.SecondaryPay(qty).Round(0),
		})
	}

	return report
}

// buildDaily строит колонки от первой до последней даты, встреченной во входе.
func buildDaily(acc *Accumulator) DailyMatrix {
	var first, last time.Time
	for _, l := range acc.employees {
		for _, cells := range l.cases {
			for d := range cells {
				if first.IsZero() || d.Before(first) {
					first = d
				}
				if last.IsZero() || d.After(last) {
					last = d
				}
			}
		}
	}

	var matrix DailyMatrix
	if first.IsZero() {
		return matrix
	}
	for d := first; !d.After(last); d = d.AddDate(0, 0, 1) {
		matrix.Days = append(matrix.Days, d)
	}

	for _, emp := range acc.Employees() {
		l := acc.employees[emp]
		if len(l.cases) == 0 {
			continue
		}

		cases := make([]string, 0, len(l.cases))
		for c := range l.cases {
			cases = append(cases, c)
		}
		sort.Strings(cases)

		total := DailyRow{Employee: emp, Case: constants.DailyTotalLabel, Minutes: make([]int, len(matrix.Days)), Total: true}
		for _, c := range cases {
			row := DailyRow{Employee: emp, Case: c, Minutes: make([]int, len(matrix.Days))}
			for i, d := range matrix.Days {
				m := l.cases[c][d]
				row.Minutes[i] = m
				row.Sum += m
				total.Minutes[i] += m
			}
			total.Sum += row.Sum
			matrix.Rows = append(matrix.Rows, row)
		}
		matrix.Rows = append(matrix.Rows, total)
	}

	return matrix
}

// Tables раскладывает отчёт по листам итоговой книги.
func (r *Report) Tables() []storage.Table {
	hours := storage.Table{Sheet: constants.SheetHours, Header: constants.HoursHeader}
	for _, h := range r.Hours {
		hours.Rows = append(hours.Rows, []any{
			h.Employee, num(h.Tier1), num(h.Tier2), num(h.Tier3), num(h.Holiday), h.Transitions, h.Pay.IntPart(),
		})
	}

	daily := storage.Table{Sheet: constants.SheetDaily}
	daily.Header = append(daily.Header, constants.DailyHeaderHead...)
	for _, d := range r.Daily.Days {
		daily.Header = append(daily.Header, fmt.Sprintf("%d/%d", int(d.Month()), d.Day()))
	}
	daily.Header = append(daily.Header, constants.DailyHeaderTail)
	for _, row := range r.Daily.Rows {
		cells := []any{row.Employee, row.Case}
		for _, m := range row.Minutes {
			if m == 0 {
				cells = append(cells, nil)
				continue
			}
			cells = append(cells, m)
		}
		cells = append(cells, row.Sum)
		daily.Rows = append(daily.Rows, cells)
	}

	secondary := storage.Table{Sheet: constants.SheetSecondary, Header: constants.SecondaryHeader}
	for _, s := range r.Secondary {
		secondary.Rows = append(secondary.Rows, []any{s.Employee, s.Count, s.Pay.IntPart()})
	}

	primaryCover := storage.Table{Sheet: constants.SheetPrimaryCover, Header: constants.PrimaryCoverHeader}
	for _, c := range r.PrimaryCover {
		primaryCover.Rows = append(primaryCover.Rows, []any{
			c.Employee, c.Substitute, num(c.Tier1), num(c.Tier2), num(c.Tier3), num(c.Holiday), c.Transitions, c.Pay.IntPart(),
		})
	}

	secondaryCover := storage.Table{Sheet: constants.SheetSecondaryCover, Header: constants.SecondaryCoverHeader}
	for _, c := range r.SecondaryCover {
		secondaryCover.Rows = append(secondaryCover.Rows, []any{c.Employee, c.Substitute, c.Count, c.Pay.IntPart()})
	}

	return []storage.Table{hours, daily, secondary, primaryCover, secondaryCover}
}

func num(d decimal.Decimal) float64 {
	return d.InexactFloat64()
}
