package get

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"

	"injetora-apontamentos/internal/lib/api"
	"injetora-apontamentos/internal/service/dashboard"
	"injetora-apontamentos/internal/storage"
)

type DashboardStorage interface {
	ListReadings(ctx context.Context, f storage.ReadingFilter) ([]storage.Reading, error)
	GetDailyTarget(ctx context.Context) (storage.DailyTarget, bool, error)
}

func GetDashboard(log *slog.Logger, st DashboardStorage) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.dashboard.GetDashboard"

		log := log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		filter, err := api.ReadingFilterFromQuery(r)
		if err != nil {
			api.Error(w, r, http.StatusBadRequest, err.Error())
			return
		}

		period := dashboard.PeriodOf(filter)
		if _, err := period.Days(); err != nil {
			api.Error(w, r, http.StatusBadRequest, err.Error())
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		target, ok, err := st.GetDailyTarget(ctx)
		if err != nil {
			log.Error("erro ao buscar meta", slog.String("error", err.Error()))
			api.Internal(w, r, "erro ao buscar meta de produção", err)
			return
		}
		if !ok {
			target.Valor = storage.DefaultDailyTarget
		}

		readings, err := st.ListReadings(ctx, filter)
		if err != nil {
			log.Error("erro ao buscar apontamentos", slog.String("error", err.Error()))
			api.Internal(w, r, "erro ao buscar apontamentos", err)
			return
		}

		summary, err := dashboard.Aggregate(readings, target.Valor, period)
		if err != nil {
			api.Error(w, r, http.StatusBadRequest, err.Error())
			return
		}

		render.JSON(w, r, summary)
	}
}
