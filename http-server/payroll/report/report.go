package report

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"care-payroll/http-server/payroll/upload"
	generate_excel "care-payroll/internal/service/generate-excel"
	"care-payroll/internal/service/payroll"
	"care-payroll/internal/storage/sheet"
)

type ExcelGenerator interface {
	GenerateExcel(ctx context.Context, src payroll.Source) ([]byte, *payroll.Report, error)
}

func GenerateReportExcel(log *slog.Logger, gen ExcelGenerator, sheets upload.Sheets, timeout time.Duration) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handler.payroll.GenerateReportExcel"

		src, err := upload.Source(r, sheets)
		if err != nil {
			log.Warn("bad upload", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), timeout)
		defer cancel()

		excelBytes, report, err := gen.GenerateExcel(ctx, src)
		if err != nil {
			if errors.Is(err, sheet.ErrSchemaMismatch) || errors.Is(err, sheet.ErrSheetNotFound) {
				log.Warn("unusable workbook", slog.String("op", op), slog.String("error", err.Error()))
				http.Error(w, err.Error(), http.StatusUnprocessableEntity)
				return
			}
			log.Error("failed to generate excel", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Internal error", http.StatusInternalServerError)
			return
		}

		fileName := generate_excel.FileName(time.Now())

		w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename*=UTF-8''%s", url.PathEscape(fileName)))
		w.Header().Set("X-Skipped-Rows", fmt.Sprint(report.Skipped.Total()))
		w.Write(excelBytes)
	}
}
