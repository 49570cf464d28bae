package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"time"

	"care-payroll/internal/config"
	"care-payroll/internal/metrics"
	generate_excel "care-payroll/internal/service/generate-excel"
	"care-payroll/internal/service/payroll"
	"care-payroll/internal/storage/sheet"
)

func main() {
	cfg := config.MustConfig()

	log, closeLog := setupLogger(cfg.Env, os.Stdout)
	defer closeLog()

	calendar, err := payroll.NewCalendar(cfg.Holidays)
	if err != nil {
		log.Error("invalid holidays", slog.String("error", err.Error()))
		os.Exit(1)
	}

	payrollService := payroll.NewPayrollService(log, payroll.NewRates(cfg.Pay), calendar)
	genService := generate_excel.NewGenerateService(payrollService)

	switch cfg.Mode {
	case config.ModeServer:
		serve(cfg, log, payrollService, genService)
	default:
		if err := runBatch(context.Background(), cfg, log, genService); err != nil {
			log.Error("payroll run failed", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}
}

func runBatch(ctx context.Context, cfg *config.Config, log *slog.Logger, gen *generate_excel.GenerateExcelService) error {
	src := sheet.New(
		sheet.FileWorkbook(cfg.Input.RecordsPath, cfg.Input.RecordsSheet),
		sheet.FileWorkbook(cfg.Input.CoverPath, cfg.Input.CoverSheet),
	)

	excelBytes, report, err := gen.GenerateExcel(ctx, src)
	if err != nil {
		return err
	}

	path, err := generate_excel.WriteFile(cfg.OutputDir, time.Now(), excelBytes)
	if err != nil {
		return err
	}

	log.Info("report written",
		slog.String("path", path),
		slog.Int("employees", len(report.Hours)),
		slog.Int("primary_cover_pairs", len(report.PrimaryCover)),
		slog.Int("secondary_cover_pairs", len(report.SecondaryCover)),
		slog.Int("skipped_rows", report.Skipped.Total()),
	)

	if cfg.Metrics.PushURL != "" {
		if err := metrics.Push(cfg.Metrics.PushURL, cfg.Metrics.JobName); err != nil {
			log.Warn("failed to push metrics", slog.String("error", err.Error()))
		}
	}

	return nil
}

func serve(cfg *config.Config, log *slog.Logger, payrollService *payroll.PayrollService, genService *generate_excel.GenerateExcelService) {
	log.Info("server started", slog.String("address", cfg.Address))

	srv := &http.Server{
		Addr:         cfg.Address,
		Handler:      routes(*cfg, log, payrollService, genService),
		ReadTimeout:  cfg.HTTPServer.Timeout,
		WriteTimeout: cfg.HTTPServer.Timeout,
		IdleTimeout:  cfg.HTTPServer.IdleTimeout,
	}

	if err := srv.ListenAndServe(); err != nil {
		log.Error("failed start server", slog.String("error", err.Error()))
	}

	log.Error("server stopped")
}
