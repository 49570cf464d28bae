package summary

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/render"

	"care-payroll/http-server/payroll/upload"
	"care-payroll/internal/service/payroll"
	"care-payroll/internal/storage/sheet"
)

type ReportCalculator interface {
	Calculate(ctx context.Context, src payroll.Source) (*payroll.Report, error)
}

type SkippedRow struct {
	Source string `json:"source"`
	Line   int    `json:"line"`
	Reason string `json:"reason"`
	Error  string `json:"error"`
}

type Resp struct {
	Report  *payroll.Report `json:"report"`
	Skipped []SkippedRow    `json:"skipped_rows"`
}

func CalculateSummary(log *slog.Logger, calc ReportCalculator, sheets upload.Sheets, timeout time.Duration) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handler.payroll.CalculateSummary"

		src, err := upload.Source(r, sheets)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), timeout)
		defer cancel()

		report, err := calc.Calculate(ctx, src)
		if err != nil {
			if errors.Is(err, sheet.ErrSchemaMismatch) || errors.Is(err, sheet.ErrSheetNotFound) {
				http.Error(w, err.Error(), http.StatusUnprocessableEntity)
				return
			}
			log.Error("failed to calculate payroll", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Internal error", http.StatusInternalServerError)
			return
		}

		skipped := make([]SkippedRow, 0, len(report.Skipped.Errors))
		for _, e := range report.Skipped.Errors {
			skipped = append(skipped, SkippedRow{
				Source: e.Source,
				Line:   e.Line,
				Reason: payroll.Reason(e),
				Error:  e.Err.Error(),
			})
		}

		render.JSON(w, r, Resp{Report: report, Skipped: skipped})
	}
}
