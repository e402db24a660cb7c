package remove

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"injetora-apontamentos/internal/lib/api"
)

type ReadingDeleter interface {
	DeleteReading(ctx context.Context, id int64) error
}

// DeleteReading responde 204 mesmo quando o apontamento não existe.
func DeleteReading(log *slog.Logger, deleter ReadingDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.readings.DeleteReading"

		log := log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil || id <= 0 {
			api.Error(w, r, http.StatusBadRequest, "id inválido")
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		if err := deleter.DeleteReading(ctx, id); err != nil {
			log.Error("erro ao excluir apontamento", slog.Int64("id", id), slog.String("error", err.Error()))
			api.Internal(w, r, "erro ao excluir apontamento", err)
			return
		}

		log.Info("apontamento excluído", slog.Int64("id", id))

		w.WriteHeader(http.StatusNoContent)
	}
}
