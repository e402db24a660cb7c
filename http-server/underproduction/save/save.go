package save

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"

	"injetora-apontamentos/internal/lib/api"
	"injetora-apontamentos/internal/middleware/auth"
	"injetora-apontamentos/internal/storage"
)

type UnderproductionCreator interface {
	CreateUnderproduction(ctx context.Context, ev storage.UnderproductionEvent) (storage.UnderproductionEvent, error)
}

func SaveUnderproduction(log *slog.Logger, creator UnderproductionCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.underproduction.SaveUnderproduction"

		log := log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		claims, ok := auth.ClaimsFrom(r.Context())
		if !ok {
			api.Error(w, r, http.StatusUnauthorized, "token não informado")
			return
		}

		var req storage.UnderproductionEvent
		if err := render.DecodeJSON(r.Body, &req); err != nil {
			api.Error(w, r, http.StatusBadRequest, "JSON inválido")
			return
		}

		req.Hora = api.CanonicalHour(req.Hora)

		if fields := api.Validate(req); fields != nil {
			log.Warn("improdutividade inválida", slog.Any("fields", fields))
			api.ValidationError(w, r, fields)
			return
		}
		if req.SetorID < 0 {
			api.ValidationError(w, r, map[string]string{"SetorID": "gte"})
			return
		}

		req.ID = 0
		req.SetorNome = ""
		req.RegistradoPor = claims.Username

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		created, err := creator.CreateUnderproduction(ctx, req)
		if err != nil {
			switch {
			case errors.Is(err, storage.ErrSectorNotFound):
				api.Error(w, r, http.StatusNotFound, storage.ErrSectorNotFound.Error())
			case errors.Is(err, storage.ErrReadingNotFound):
				api.Error(w, r, http.StatusNotFound, storage.ErrReadingNotFound.Error())
			default:
				log.Error("erro ao salvar improdutividade", slog.String("error", err.Error()))
				api.Internal(w, r, "erro ao salvar improdutividade", err)
			}
			return
		}

		log.Info("improdutividade registrada",
			slog.Int64("id", created.ID),
			slog.Int64("setor_id", created.SetorID),
			slog.Int("pecas", created.PecasDesviadas),
		)

		render.Status(r, http.StatusCreated)
		render.JSON(w, r, created)
	}
}
