package save

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"

	"injetora-apontamentos/internal/lib/api"
	"injetora-apontamentos/internal/middleware/auth"
	"injetora-apontamentos/internal/storage"
)

type TargetSaver interface {
	UpsertDailyTarget(ctx context.Context, valor int, updatedBy string) (storage.DailyTarget, error)
}

type Request struct {
	Valor int `json:"valor" validate:"gt=0"`
}

func SaveDailyTarget(log *slog.Logger, saver TargetSaver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.target.SaveDailyTarget"

		log := log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		claims, ok := auth.ClaimsFrom(r.Context())
		if !ok {
			api.Error(w, r, http.StatusUnauthorized, "token não informado")
			return
		}

		var req Request
		if err := render.DecodeJSON(r.Body, &req); err != nil {
			api.Error(w, r, http.StatusBadRequest, "JSON inválido")
			return
		}

		if fields := api.Validate(req); fields != nil {
			api.ValidationError(w, r, fields)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		target, err := saver.UpsertDailyTarget(ctx, req.Valor, claims.Username)
		if err != nil {
			log.Error("erro ao salvar meta de produção", slog.String("error", err.Error()))
			api.Internal(w, r, "erro ao salvar meta de produção", err)
			return
		}

		log.Info("meta de produção atualizada", slog.Int("valor", target.Valor), slog.String("by", claims.Username))

		render.JSON(w, r, target)
	}
}
