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

type TargetProvider interface {
	GetDailyTarget(ctx context.Context) (storage.DailyTarget, bool, error)
}

// GetDailyTarget devolve a meta diária; sem registro no banco vale 1000.
func GetDailyTarget(log *slog.Logger, provider TargetProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.target.GetDailyTarget"

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		target, ok, err := provider.GetDailyTarget(ctx)
		if err != nil {
			log.Error("erro ao buscar meta de produção",
				slog.String("op", op),
				slog.String("request_id", middleware.GetReqID(r.Context())),
				slog.String("error", err.Error()),
			)
			api.Internal(w, r, "erro ao buscar meta de produção", err)
			return
		}

		if !ok {
			target = storage.DailyTarget{Chave: storage.DailyTargetKey, Valor: storage.DefaultDailyTarget}
		}

		render.JSON(w, r, target)
	}
}
