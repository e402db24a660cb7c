package main

import (
	"context"
	"io"
	"log/slog"
	"os"
)

const (
	envLocal = "local"
	envDev   = "dev"
	envProd  = "prod"
)

// errorTee manda cada registro para o console e copia os de nível >= Error
// para o arquivo de erros. Falha de escrita no arquivo não afeta o console.
type errorTee struct {
	console slog.Handler
	errors  slog.Handler
}

func (t errorTee) Enabled(ctx context.Context, lvl slog.Level) bool {
	return t.console.Enabled(ctx, lvl) || lvl >= slog.LevelError
}

func (t errorTee) Handle(ctx context.Context, r slog.Record) error {
	if r.Level >= slog.LevelError {
		_ = t.errors.Handle(ctx, r.Clone())
	}
	if !t.console.Enabled(ctx, r.Level) {
		return nil
	}
	return t.console.Handle(ctx, r)
}

func (t errorTee) WithAttrs(attrs []slog.Attr) slog.Handler {
	return errorTee{console: t.console.WithAttrs(attrs), errors: t.errors.WithAttrs(attrs)}
}

func (t errorTee) WithGroup(name string) slog.Handler {
	return errorTee{console: t.console.WithGroup(name), errors: t.errors.WithGroup(name)}
}

// newLogger: JSON no console em dev, texto nos demais; Debug fora de prod.
// errOut nil desliga a cópia de erros.
func newLogger(env string, console, errOut io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: slog.LevelDebug}
	if env == envProd {
		opts.Level = slog.LevelInfo
	}

	var h slog.Handler = slog.NewTextHandler(console, opts)
	if env == envDev {
		h = slog.NewJSONHandler(console, opts)
	}

	if errOut == nil {
		return slog.New(h)
	}

	return slog.New(errorTee{
		console: h,
		errors:  slog.NewTextHandler(errOut, &slog.HandlerOptions{Level: slog.LevelError}),
	})
}

func setupLogger(env, errorLogPath string) *slog.Logger {
	errorFile, err := os.OpenFile(errorLogPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		slog.Warn("cannot open error log file", "path", errorLogPath, "error", err)
		return newLogger(env, os.Stdout, nil)
	}

	return newLogger(env, os.Stdout, errorFile)
}
