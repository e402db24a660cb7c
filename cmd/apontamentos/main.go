package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"google.golang.org/api/option"

	"injetora-apontamentos/internal/config"
	"injetora-apontamentos/internal/credentials"
	"injetora-apontamentos/internal/service/reference"
	"injetora-apontamentos/internal/service/report"
	"injetora-apontamentos/internal/storage/mysql"
	"injetora-apontamentos/internal/token"
)

func main() {
	cfg := config.MustConfig()

	log := setupLogger(cfg.Env, cfg.ErrorLogPath)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	storage, err := mysql.New(ctx, cfg.DB)
	if err != nil {
		log.Error("failed to open db", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer storage.Close()

	if cfg.DB.Migrate {
		if err := storage.Migrate(ctx); err != nil {
			log.Error("failed to migrate db", slog.String("error", err.Error()))
			os.Exit(1)
		}
		log.Info("schema ok")
	}

	source, err := credentialSource(ctx, cfg.Credentials)
	if err != nil {
		log.Error("failed to open credential store", slog.String("error", err.Error()))
		os.Exit(1)
	}

	deps := Deps{
		Storage:       storage,
		Lists:         reference.NewService(storage),
		Excel:         report.NewExcelService(storage),
		Authenticator: credentials.NewAuthenticator(source),
		Tokens:        token.NewIssuer(cfg.JWTSecret),
	}

	srv := &http.Server{
		Addr:         cfg.Address,
		Handler:      routes(*cfg, log, deps),
		ReadTimeout:  cfg.HTTPServer.Timeout,
		WriteTimeout: cfg.HTTPServer.Timeout,
		IdleTimeout:  cfg.HTTPServer.IdleTimeout,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error("shutdown", slog.String("error", err.Error()))
		}
	}()

	log.Info("server started", slog.String("address", cfg.Address), slog.String("env", cfg.Env))

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Error("failed start server", slog.String("error", err.Error()))
	}

	log.Info("server stopped")
}

// credentialSource prefere a Google Sheet; sem SHEET_ID usa o .xlsx local.
func credentialSource(ctx context.Context, c config.Credentials) (credentials.Source, error) {
	if c.SheetID != "" {
		return credentials.NewSheetsSource(ctx, c.SheetID, c.SheetRange,
			option.WithCredentialsFile(c.GoogleCredentialsFile),
		)
	}

	return credentials.NewXLSXSource(c.XLSXPath, c.XLSXSheet), nil
}
