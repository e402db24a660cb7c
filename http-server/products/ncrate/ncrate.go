package ncrate

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

type NCTotalsProvider interface {
	NCTotalsByPart(ctx context.Context, f storage.ReadingFilter) ([]storage.PartNCRate, error)
}

func GetNCRateByPart(log *slog.Logger, provider NCTotalsProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.products.GetNCRateByPart"

		filter, err := api.ReadingFilterFromQuery(r)
		if err != nil {
			api.Error(w, r, http.StatusBadRequest, err.Error())
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		totals, err := provider.NCTotalsByPart(ctx, filter)
		if err != nil {
			log.Error("erro ao calcular taxa NC por peça",
				slog.String("op", op),
				slog.String("request_id", middleware.GetReqID(r.Context())),
				slog.String("error", err.Error()),
			)
			api.Internal(w, r, "erro ao calcular taxa NC", err)
			return
		}

		render.JSON(w, r, dashboard.PartRates(totals))
	}
}
