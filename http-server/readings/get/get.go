package get

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"

	"injetora-apontamentos/internal/lib/api"
	"injetora-apontamentos/internal/storage"
)

type ReadingsProvider interface {
	ListReadings(ctx context.Context, f storage.ReadingFilter) ([]storage.Reading, error)
}

func GetReadings(log *slog.Logger, provider ReadingsProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.readings.GetReadings"

		log := log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		filter, err := api.ReadingFilterFromQuery(r)
		if err != nil {
			api.Error(w, r, http.StatusBadRequest, err.Error())
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		readings, err := provider.ListReadings(ctx, filter)
		if err != nil {
			log.Error("erro ao listar apontamentos", slog.String("error", err.Error()))
			api.Internal(w, r, "erro ao listar apontamentos", err)
			return
		}

		render.JSON(w, r, readings)
	}
}
