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
	"injetora-apontamentos/internal/service/shift"
	"injetora-apontamentos/internal/storage"
)

type ReadingCreator interface {
	CreateReading(ctx context.Context, r storage.Reading) (storage.Reading, error)
}

func SaveReading(log *slog.Logger, creator ReadingCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.readings.SaveReading"

		log := log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		var req storage.Reading
		if err := render.DecodeJSON(r.Body, &req); err != nil {
			log.Error("invalid JSON", slog.String("error", err.Error()))
			api.Error(w, r, http.StatusBadRequest, "JSON inválido")
			return
		}

		req.ID = 0
		req.Turno = shift.Normalize(req.Turno)
		req.HoraApontamento = api.CanonicalHour(req.HoraApontamento)
		if req.TipoRegistro == "" {
			req.TipoRegistro = storage.KindProduction
		}

		if fields := api.Validate(req); fields != nil {
			log.Warn("apontamento inválido", slog.Any("fields", fields))
			api.ValidationError(w, r, fields)
			return
		}

		// efetiva sempre calculada aqui, o valor enviado pelo cliente é ignorado
		req.ComputeEffective()

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		created, err := creator.CreateReading(ctx, req)
		if err != nil {
			if errors.Is(err, storage.ErrDuplicateReading) {
				api.Error(w, r, http.StatusConflict, storage.ErrDuplicateReading.Error())
				return
			}
			log.Error("erro ao salvar apontamento", slog.String("error", err.Error()))
			api.Internal(w, r, "erro ao salvar apontamento", err)
			return
		}

		log.Info("apontamento salvo",
			slog.Int64("id", created.ID),
			slog.String("maquina", created.Maquina),
			slog.String("hora", created.HoraApontamento),
		)

		render.Status(r, http.StatusCreated)
		render.JSON(w, r, created)
	}
}
