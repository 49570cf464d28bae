package main

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
)

const (
	envLocal = "local"
	envDev   = "dev"
	envProd  = "prod"
)

const errorLogFile = "errors.log"

// teeHandler пишет всё в основной вывод, а ошибки ещё и в файл.
type teeHandler struct {
	core   slog.Handler
	errLog slog.Handler
}

func (h *teeHandler) Enabled(ctx context.Context, lvl slog.Level) bool {
	return h.core.Enabled(ctx, lvl) || h.errLog.Enabled(ctx, lvl)
}

func (h *teeHandler) Handle(ctx context.Context, r slog.Record) error {
	var errs []error

	if h.core.Enabled(ctx, r.Level) {
		errs = append(errs, h.core.Handle(ctx, r))
	}
	if h.errLog.Enabled(ctx, r.Level) {
		errs = append(errs, h.errLog.Handle(ctx, r.Clone()))
	}

	return errors.Join(errs...)
}

func (h *teeHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &teeHandler{core: h.core.WithAttrs(attrs), errLog: h.errLog.WithAttrs(attrs)}
}

func (h *teeHandler) WithGroup(name string) slog.Handler {
	return &teeHandler{core: h.core.WithGroup(name), errLog: h.errLog.WithGroup(name)}
}

func setupLogger(env string, out io.Writer) (*slog.Logger, func()) {
	level := slog.LevelDebug
	if env == envProd {
		level = slog.LevelInfo
	}

	var core slog.Handler
	switch env {
	case envDev:
		core = slog.NewJSONHandler(out, &slog.HandlerOptions{Level: level})
	default:
		core = slog.NewTextHandler(out, &slog.HandlerOptions{Level: level})
	}

	errorFile, err := os.OpenFile(errorLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		log := slog.New(core)
		log.Warn("cannot open error log file", slog.String("error", err.Error()))
		return log, func() {}
	}

	handler := &teeHandler{
		core:   core,
		errLog: slog.NewTextHandler(errorFile, &slog.HandlerOptions{Level: slog.LevelError}),
	}

	return slog.New(handler), func() { _ = errorFile.Close() }
}
