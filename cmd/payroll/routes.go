package main

import (
	"log/slog"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"

	getadmin "care-payroll/http-server/admin/get"
	"care-payroll/http-server/payroll/report"
	"care-payroll/http-server/payroll/summary"
	"care-payroll/http-server/payroll/upload"
	"care-payroll/internal/config"
	"care-payroll/internal/metrics"
	"care-payroll/internal/middleware/auth"
	generate_excel "care-payroll/internal/service/generate-excel"
	"care-payroll/internal/service/payroll"
)

func routes(cfg config.Config, log *slog.Logger, payrollService *payroll.PayrollService, genService *generate_excel.GenerateExcelService) *chi.Mux {
	router := chi.NewRouter()

	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   []string{"http://localhost:8081", "http://localhost:5173"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Content-Disposition", "X-Skipped-Rows"},
		AllowCredentials: true,
	})

	router.Use(corsHandler.Handler)
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)

	sheets := upload.Sheets{
		Records: cfg.Input.RecordsSheet,
		Cover:   cfg.Input.CoverSheet,
		MaxSize: cfg.HTTPServer.MaxUpload,
	}

	router.Post("/api/payroll/report", report.GenerateReportExcel(log, genService, sheets, cfg.HTTPServer.Timeout))
	router.Post("/api/payroll/summary", summary.CalculateSummary(log, payrollService, sheets, cfg.HTTPServer.Timeout))

	router.Handle("/metrics", promhttp.HandlerFor(metrics.Registry, promhttp.HandlerOpts{}))

	adminRouter := chi.NewRouter()
	adminRouter.Use(auth.BasicAuth(cfg.AdminLogin, cfg.AdminPass))
	adminRouter.Get("/settings", getadmin.GetSettingsAdmin(log, payrollService))

	router.Mount("/api/admin", adminRouter)

	return router
}
