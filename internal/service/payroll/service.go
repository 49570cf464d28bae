package payroll

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"care-payroll/internal/metrics"
	"care-payroll/internal/storage"
)

// Source — откуда берутся записи и замены.
type Source interface {
	LoadRecords(ctx context.Context) ([]storage.RecordRow, error)
	LoadSubstitutions(ctx context.Context) ([]storage.SubstitutionRow, error)
}

type PayrollService struct {
	log      *slog.Logger
	rates    Rates
	calendar Calendar
}

func NewPayrollService(log *slog.Logger, rates Rates, calendar Calendar) *PayrollService {
	return &PayrollService{log: log, rates: rates, calendar: calendar}
}

func (s *PayrollService) Rates() Rates {
	return s.rates
}

func (s *PayrollService) Calendar() Calendar {
	return s.calendar
}

// Calculate читает оба источника, затем считает всё за один проход.
func (s *PayrollService) Calculate(ctx context.Context, src Source) (*Report, error) {
	const op = "service.payroll.Calculate"

	started := time.Now()

	var (
		rows  []storage.RecordRow
		cover []storage.SubstitutionRow
	)

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		rows, err = src.LoadRecords(gCtx)
		if err != nil {
			return fmt.Errorf("records: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		cover, err = src.LoadSubstitutions(gCtx)
		if err != nil {
			return fmt.Errorf("substitutions: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	var skipped SkipSummary

	subs, bad := BuildSubstitutions(cover)
	for _, e := range bad {
		skipped.Add(e)
		metrics.RowsSkipped.WithLabelValues(e.Source, Reason(e)).Inc()
	}
	metrics.SubstitutionsLoaded.Set(float64(len(subs)))
	s.log.Debug("substitutions loaded", slog.String("op", op), slog.Int("count", len(subs)))

	records := make([]ServiceRecord, 0, len(rows))
	for i, row := range rows {
		rec, err := Normalize(i, row)
		if err != nil {
			e := &RowError{Source: "records", Line: row.Line, Err: err}
			skipped.Add(e)
			metrics.RowsSkipped.WithLabelValues(e.Source, Reason(e)).Inc()
			continue
		}
		records = append(records, rec)
	}
	metrics.RecordsParsed.Add(float64(len(records)))

	report := s.Compute(records, subs)
	report.Skipped = skipped

	metrics.EmployeesProcessed.Set(float64(len(report.Hours)))
	metrics.CoverPairs.WithLabelValues("primary").Set(float64(len(report.PrimaryCover)))
	metrics.CoverPairs.WithLabelValues("secondary").Set(float64(len(report.SecondaryCover)))
	metrics.RunDurationSeconds.Observe(time.Since(started).Seconds())

	for _, e := range skipped.Errors {
		s.log.Warn("row skipped", slog.String("op", op), slog.String("error", e.Error()))
	}
	s.log.Info("payroll calculated",
		slog.String("op", op),
		slog.Int("records", len(records)),
		slog.Int("skipped", skipped.Total()),
		slog.Any("skipped_by_reason", skipped.ByReason),
		slog.Int("employees", len(report.Hours)),
	)

	return report, nil
}

// Compute — чистый расчёт по уже нормализованным записям.
func (s *PayrollService) Compute(records []ServiceRecord, subs SubstitutionMap) *Report {
	resolve := subs.Resolver()
	logged := func(rec ServiceRecord) Payee {
		p := resolve(rec)
		if p.Covered() {
			s.log.Debug("substitution hit",
				slog.String("employee", rec.Employee),
				slog.String("case", rec.Case),
				slog.String("date", rec.Date.Format(time.DateOnly)),
				slog.String("substitute", p.Substitute),
			)
		}
		return p
	}

	acc := NewAccumulator(s.calendar, logged)
	acc.Run(records)

	return BuildReport(acc, s.rates)
}
